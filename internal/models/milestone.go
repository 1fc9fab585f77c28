package models

import "time"

// Milestone is a step on the entrepreneur's journey. CompletedAt is set once Completed is.
type Milestone struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Category    string     `json:"category"`
}

// Clone returns a copy that does not share CompletedAt with m.
func (m Milestone) Clone() Milestone {
	if m.CompletedAt != nil {
		t := *m.CompletedAt
		m.CompletedAt = &t
	}
	return m
}
