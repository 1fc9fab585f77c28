// Package mockdata holds the seed records every fresh workspace starts with.
//
// Each function returns new slices so that callers may take ownership of the result.
package mockdata

import (
	"github.com/myrjola/ideacoach/internal/models"
	"time"
)

func date(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

// User is the signed in user of a fresh workspace.
func User() models.User {
	return models.User{
		ID:       "user-1",
		Name:     "Alex Morgan",
		Email:    "alex.morgan@example.com",
		Avatar:   "",
		JoinDate: date(2024, time.January, 15, 9),
	}
}

func Ideas() []models.BusinessIdea {
	return []models.BusinessIdea{
		{
			ID:    "idea-1",
			Title: "EcoTrack: Carbon Footprint App",
			Description: "A mobile app that tracks personal carbon emissions from daily purchases and travel, " +
				"and suggests small, rewarding changes to reduce them.",
			Category:    "Technology",
			SubmittedAt: date(2024, time.January, 20, 14),
			Status:      models.IdeaStatusCompleted,
		},
		{
			ID:    "idea-2",
			Title: "FitBox: Personalized Meal Kits",
			Description: "Subscription meal kits tailored to fitness goals, with recipes adjusted weekly based on " +
				"data from the customer's wearable.",
			Category:    "Health & Fitness",
			SubmittedAt: date(2024, time.January, 21, 10),
			Status:      models.IdeaStatusCompleted,
		},
		{
			ID:    "idea-3",
			Title: "SkillSwap: Local Skill Exchange",
			Description: "A neighbourhood marketplace where people trade lessons and services using time credits " +
				"instead of money.",
			Category:    "Marketplace",
			SubmittedAt: date(2024, time.January, 24, 16),
			Status:      models.IdeaStatusAnalyzing,
		},
	}
}

func Feedback() []models.AIFeedback {
	return []models.AIFeedback{
		{
			ID:               "feedback-1",
			IdeaID:           "idea-1",
			MarketScore:      82,
			FeasibilityScore: 75,
			CompetitionScore: 64,
			OverallScore:     74,
			Strengths: []string{
				"Growing consumer interest in sustainability",
				"Clear habit-forming loop with rewards",
			},
			Weaknesses: []string{
				"Emission estimates depend on incomplete purchase data",
				"Retention is hard for tracking apps",
			},
			Opportunities: []string{
				"Partnerships with banks for automatic transaction import",
				"Corporate wellness and ESG programs",
			},
			Threats: []string{
				"Large banks shipping built-in carbon insights",
				"Privacy regulation around financial data",
			},
			NextSteps: []string{
				"Interview 20 eco-conscious consumers",
				"Prototype the receipt scanning flow",
				"Estimate data partnership costs",
			},
			MarketAnalysis: models.MarketAnalysis{
				Demand: "High",
				Trends: []string{
					"Open banking adoption",
					"Gamified personal finance",
					"Climate awareness among millennials",
				},
				TargetAudience: "Urban professionals aged 25-40 who want to live more sustainably",
			},
			Competitors: []models.Competitor{
				{Name: "Joro", Similarity: 80, Differentiation: "Focus on rewards from partner brands"},
				{Name: "Klima", Similarity: 60, Differentiation: "Tracking purchases instead of offset subscriptions"},
			},
			GeneratedAt: date(2024, time.January, 20, 15),
		},
		{
			ID:               "feedback-2",
			IdeaID:           "idea-2",
			MarketScore:      78,
			FeasibilityScore: 68,
			CompetitionScore: 55,
			OverallScore:     67,
			Strengths: []string{
				"Recurring subscription revenue",
				"Personalization backed by wearable data",
			},
			Weaknesses: []string{
				"Cold chain logistics are capital intensive",
				"Thin margins on fresh ingredients",
			},
			Opportunities: []string{
				"Gym and personal trainer partnerships",
				"B2B offering for corporate wellness",
			},
			Threats: []string{
				"Established meal kit brands adding fitness plans",
				"Customer churn after the first month",
			},
			NextSteps: []string{
				"Run a two week pilot with a local gym",
				"Calculate unit economics per box",
			},
			MarketAnalysis: models.MarketAnalysis{
				Demand: "Medium",
				Trends: []string{
					"Wearable health tracking",
					"Convenience food subscriptions",
				},
				TargetAudience: "Fitness enthusiasts with busy schedules",
			},
			Competitors: []models.Competitor{
				{Name: "HelloFresh", Similarity: 70, Differentiation: "Meals adapt to training load"},
				{Name: "Trifecta Nutrition", Similarity: 85, Differentiation: "Integration with wearables"},
			},
			GeneratedAt: date(2024, time.January, 21, 12),
		},
	}
}

func Resources() []models.Resource {
	return []models.Resource{
		{
			ID:            "resource-1",
			Title:         "The Lean Startup Validation Guide",
			Description:   "Learn how to test your riskiest assumptions with minimal investment.",
			Category:      "Market Research",
			Type:          models.ResourceTypeArticle,
			URL:           "https://example.com/lean-validation",
			Difficulty:    models.DifficultyBeginner,
			EstimatedTime: "15 min read",
		},
		{
			ID:            "resource-2",
			Title:         "Customer Interview Masterclass",
			Description:   "How to run interviews that uncover real problems instead of polite answers.",
			Category:      "Customer Development",
			Type:          models.ResourceTypeVideo,
			URL:           "https://example.com/interview-masterclass",
			Difficulty:    models.DifficultyBeginner,
			EstimatedTime: "45 min",
		},
		{
			ID:            "resource-3",
			Title:         "Financial Model Template",
			Description:   "A spreadsheet template for revenue projections, unit economics and runway.",
			Category:      "Finance",
			Type:          models.ResourceTypeTemplate,
			URL:           "https://example.com/financial-model",
			Difficulty:    models.DifficultyIntermediate,
			EstimatedTime: "1 hour",
		},
		{
			ID:            "resource-4",
			Title:         "Market Sizing Calculator",
			Description:   "Estimate TAM, SAM and SOM for your idea with guided inputs.",
			Category:      "Market Research",
			Type:          models.ResourceTypeTool,
			URL:           "https://example.com/market-sizing",
			Difficulty:    models.DifficultyIntermediate,
			EstimatedTime: "20 min",
		},
		{
			ID:            "resource-5",
			Title:         "Pitch Deck Essentials",
			Description:   "The slides investors expect to see and how to tell a compelling story.",
			Category:      "Fundraising",
			Type:          models.ResourceTypeArticle,
			URL:           "https://example.com/pitch-deck",
			Difficulty:    models.DifficultyIntermediate,
			EstimatedTime: "20 min read",
		},
		{
			ID:            "resource-6",
			Title:         "Building Your MVP",
			Description:   "Scope a minimum viable product and ship it in weeks instead of months.",
			Category:      "Product Development",
			Type:          models.ResourceTypeVideo,
			URL:           "https://example.com/building-mvp",
			Difficulty:    models.DifficultyBeginner,
			EstimatedTime: "30 min",
		},
		{
			ID:            "resource-7",
			Title:         "Growth Marketing Playbook",
			Description:   "Channel experiments, funnels and metrics for early stage growth.",
			Category:      "Marketing",
			Type:          models.ResourceTypeArticle,
			URL:           "https://example.com/growth-playbook",
			Difficulty:    models.DifficultyAdvanced,
			EstimatedTime: "25 min read",
		},
		{
			ID:            "resource-8",
			Title:         "Term Sheet Negotiation",
			Description:   "Understand valuation, dilution and investor rights before you sign.",
			Category:      "Fundraising",
			Type:          models.ResourceTypeVideo,
			URL:           "https://example.com/term-sheets",
			Difficulty:    models.DifficultyAdvanced,
			EstimatedTime: "40 min",
		},
	}
}

func Milestones() []models.Milestone {
	completedAt := date(2024, time.January, 20, 14)
	validatedAt := date(2024, time.January, 21, 11)
	return []models.Milestone{
		{
			ID:          "milestone-1",
			Title:       "Submit your first idea",
			Description: "Describe a business idea and get it analyzed.",
			Completed:   true,
			CompletedAt: &completedAt,
			Category:    "Ideation",
		},
		{
			ID:          "milestone-2",
			Title:       "Validate the problem",
			Description: "Talk to at least ten potential customers about the problem.",
			Completed:   true,
			CompletedAt: &validatedAt,
			Category:    "Validation",
		},
		{
			ID:          "milestone-3",
			Title:       "Size the market",
			Description: "Estimate the total, serviceable and obtainable market.",
			Completed:   false,
			CompletedAt: nil,
			Category:    "Research",
		},
		{
			ID:          "milestone-4",
			Title:       "Build a landing page",
			Description: "Collect sign ups to measure demand before building.",
			Completed:   false,
			CompletedAt: nil,
			Category:    "Validation",
		},
		{
			ID:          "milestone-5",
			Title:       "Draft a financial model",
			Description: "Project revenue and costs for the next three years.",
			Completed:   false,
			CompletedAt: nil,
			Category:    "Finance",
		},
	}
}
