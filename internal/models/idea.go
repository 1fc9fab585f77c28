package models

import (
	"github.com/google/uuid"
	"time"
)

type IdeaStatus string

const (
	IdeaStatusAnalyzing     IdeaStatus = "analyzing"
	IdeaStatusCompleted     IdeaStatus = "completed"
	IdeaStatusNeedsRevision IdeaStatus = "needs_revision"
)

// BusinessIdea is an idea submitted by the user for analysis. Newly submitted ideas stay in analyzing status since
// nothing produces the analysis.
type BusinessIdea struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	SubmittedAt time.Time  `json:"submittedAt"`
	Status      IdeaStatus `json:"status"`
}

// NewIdea creates an idea in analyzing status.
func NewIdea(title, description, category string, now time.Time) BusinessIdea {
	return BusinessIdea{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Category:    category,
		SubmittedAt: now,
		Status:      IdeaStatusAnalyzing,
	}
}

// IdeaCategories are the categories offered when submitting an idea.
var IdeaCategories = []string{ //nolint:gochecknoglobals // constant list
	"Technology",
	"Health & Fitness",
	"Consumer Goods",
	"Marketplace",
	"Education",
	"Finance",
	"Entertainment",
	"B2B Services",
	"Other",
}
