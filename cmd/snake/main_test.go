package main

import "testing"

func TestRunReturnsSetupErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"help", []string{"-h"}, false},
		{"unknown flag", []string{"-no-such-flag"}, true},
		{"unknown level", []string{"-level", "impossible"}, true},
		{"bad log level", []string{"-log-level", "loud"}, true},
		{"missing config", []string{"-config", "testdata/does-not-exist.toml"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
