package appstate

import (
	"github.com/myrjola/ideacoach/internal/models"
	"strings"
)

// CurrentIdea returns the selected idea.
func (s State) CurrentIdea() (models.BusinessIdea, bool) {
	return s.IdeaByID(s.CurrentIdeaID)
}

func (s State) IdeaByID(id string) (models.BusinessIdea, bool) {
	if id == "" {
		return models.BusinessIdea{}, false
	}
	for _, idea := range s.Ideas {
		if idea.ID == id {
			return idea, true
		}
	}
	return models.BusinessIdea{}, false
}

// CountIdeas counts the ideas with the given status.
func (s State) CountIdeas(status models.IdeaStatus) int {
	n := 0
	for _, idea := range s.Ideas {
		if idea.Status == status {
			n++
		}
	}
	return n
}

// RecentIdeas returns at most n ideas, newest first.
func (s State) RecentIdeas(n int) []models.BusinessIdea {
	return s.Ideas[:min(n, len(s.Ideas))]
}

// FeedbackWithIdea joins feedback with the idea it analyzes. Idea is nil when the idea is missing.
type FeedbackWithIdea struct {
	Feedback models.AIFeedback
	Idea     *models.BusinessIdea
}

// RecentFeedback returns at most n feedback entries, newest first.
func (s State) RecentFeedback(n int) []FeedbackWithIdea {
	recent := s.Feedback[:min(n, len(s.Feedback))]
	joined := make([]FeedbackWithIdea, 0, len(recent))
	for _, f := range recent {
		entry := FeedbackWithIdea{Feedback: f, Idea: nil}
		if idea, ok := s.IdeaByID(f.IdeaID); ok {
			entry.Idea = &idea
		}
		joined = append(joined, entry)
	}
	return joined
}

// FeedbackForIdea returns the newest feedback for the idea.
func (s State) FeedbackForIdea(ideaID string) (models.AIFeedback, bool) {
	for _, f := range s.Feedback {
		if f.IdeaID == ideaID {
			return f, true
		}
	}
	return models.AIFeedback{}, false
}

func (s State) CompletedMilestones() int {
	n := 0
	for _, m := range s.Milestones {
		if m.Completed {
			n++
		}
	}
	return n
}

// MilestoneProgress is the share of completed milestones as a whole percentage. It is 0 without milestones.
func (s State) MilestoneProgress() int {
	if len(s.Milestones) == 0 {
		return 0
	}
	return s.CompletedMilestones() * 100 / len(s.Milestones) //nolint:mnd // percentage
}

// FilterAll is the filter value that matches every category or type.
const FilterAll = "All"

// ResourceFilter narrows down the resource library. Empty or FilterAll values match everything.
type ResourceFilter struct {
	Query    string
	Category string
	Type     string
}

// IsEmpty reports whether the filter matches every resource.
func (f ResourceFilter) IsEmpty() bool {
	return strings.TrimSpace(f.Query) == "" && isAll(f.Category) && isAll(f.Type)
}

func isAll(v string) bool {
	return v == "" || v == FilterAll
}

func (f ResourceFilter) matches(r models.Resource) bool {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	if query != "" &&
		!strings.Contains(strings.ToLower(r.Title), query) &&
		!strings.Contains(strings.ToLower(r.Description), query) {
		return false
	}
	if !isAll(f.Category) && r.Category != f.Category {
		return false
	}
	if !isAll(f.Type) && string(r.Type) != f.Type {
		return false
	}
	return true
}

// FilterResources returns the resources matching f in library order.
func (s State) FilterResources(f ResourceFilter) []models.Resource {
	var filtered []models.Resource
	for _, r := range s.Resources {
		if f.matches(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FeaturedResources are highlighted on top of the unfiltered library.
func (s State) FeaturedResources() []models.Resource {
	return s.Resources[:min(3, len(s.Resources))] //nolint:mnd // three featured resources
}

type Achievement struct {
	Title       string
	Description string
	Icon        string
	Earned      bool
}

const (
	highScoreThreshold      = 80
	milestoneMasterRequired = 5
)

// Achievements lists every achievement and whether the state has earned it.
func (s State) Achievements() []Achievement {
	highScore := false
	for _, f := range s.Feedback {
		if f.OverallScore > highScoreThreshold {
			highScore = true
		}
	}
	return []Achievement{
		{
			Title:       "First Idea",
			Description: "Submitted your first business idea",
			Icon:        "🚀",
			Earned:      len(s.Ideas) > 0,
		},
		{
			Title:       "Validator",
			Description: "Completed market validation for an idea",
			Icon:        "🎯",
			Earned:      s.CountIdeas(models.IdeaStatusCompleted) > 0,
		},
		{
			Title:       "High Scorer",
			Description: "Received an overall score above 80",
			Icon:        "⭐",
			Earned:      highScore,
		},
		{
			Title:       "Milestone Master",
			Description: "Completed 5 business milestones",
			Icon:        "🏆",
			Earned:      s.CompletedMilestones() >= milestoneMasterRequired,
		},
	}
}
