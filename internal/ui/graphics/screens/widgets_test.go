package screens

import (
	"testing"

	"github.com/Nilesh-194/snake-game-mobile/internal/domain"
)

type fakeButton struct {
	clicked bool
	updates int
}

func (b *fakeButton) Update() bool {
	b.updates++
	return b.clicked
}

type fakeSteerer struct {
	dir     domain.Direction
	updates int
}

func (s *fakeSteerer) Update() domain.Direction {
	s.updates++
	return s.dir
}

func TestUpdateAllUpdatesEveryButton(t *testing.T) {
	first := &fakeButton{}
	second := &fakeButton{clicked: true}
	third := &fakeButton{clicked: true}

	if got := updateAll(first, second, third); got != 1 {
		t.Errorf("Expected the first clicked index 1, got %d", got)
	}
	for i, b := range []*fakeButton{first, second, third} {
		if b.updates != 1 {
			t.Errorf("Expected button %d updated once, got %d", i, b.updates)
		}
	}

	if got := updateAll(&fakeButton{}, &fakeButton{}); got != -1 {
		t.Errorf("Expected -1 with nothing clicked, got %d", got)
	}
}

func TestSteerAllUpdatesEverySource(t *testing.T) {
	keys := &fakeSteerer{dir: domain.DirectionLeft}
	pad := &fakeSteerer{dir: domain.DirectionUp}
	swipe := &fakeSteerer{}

	if got := steerAll(keys, pad, swipe); got != domain.DirectionLeft {
		t.Errorf("Expected %v from the first source, got %v", domain.DirectionLeft, got)
	}
	for i, s := range []*fakeSteerer{keys, pad, swipe} {
		if s.updates != 1 {
			t.Errorf("Expected source %d updated once, got %d", i, s.updates)
		}
	}

	if got := steerAll(&fakeSteerer{}, &fakeSteerer{}); got != 0 {
		t.Errorf("Expected no direction, got %v", got)
	}
}
