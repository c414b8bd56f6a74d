package domain

// HighScoreTable keeps the best score per level for the life of the process.
type HighScoreTable struct {
	scores map[string]int
}

func NewHighScoreTable() *HighScoreTable {
	return &HighScoreTable{scores: make(map[string]int)}
}

func (t *HighScoreTable) Get(level string) int {
	return t.scores[level]
}

// Record stores score if it beats the current entry and reports whether it did.
func (t *HighScoreTable) Record(level string, score int) bool {
	if score <= t.scores[level] {
		return false
	}
	t.scores[level] = score
	return true
}

func (t *HighScoreTable) Copy() map[string]int {
	out := make(map[string]int, len(t.scores))
	for k, v := range t.scores {
		out[k] = v
	}
	return out
}
