package models

import "time"

// AIFeedback is the mock analysis of a BusinessIdea. Scores are on a 0-100 scale.
type AIFeedback struct {
	ID               string         `json:"id"`
	IdeaID           string         `json:"ideaId"`
	MarketScore      int            `json:"marketScore"`
	FeasibilityScore int            `json:"feasibilityScore"`
	CompetitionScore int            `json:"competitionScore"`
	OverallScore     int            `json:"overallScore"`
	Strengths        []string       `json:"strengths"`
	Weaknesses       []string       `json:"weaknesses"`
	Opportunities    []string       `json:"opportunities"`
	Threats          []string       `json:"threats"`
	NextSteps        []string       `json:"nextSteps"`
	MarketAnalysis   MarketAnalysis `json:"marketAnalysis"`
	Competitors      []Competitor   `json:"competitors"`
	GeneratedAt      time.Time      `json:"generatedAt"`
}

type MarketAnalysis struct {
	Demand         string   `json:"demand"`
	Trends         []string `json:"trends"`
	TargetAudience string   `json:"targetAudience"`
}

type Competitor struct {
	Name            string `json:"name"`
	Similarity      int    `json:"similarity"`
	Differentiation string `json:"differentiation"`
}

// Clone returns a deep copy of the feedback.
func (f AIFeedback) Clone() AIFeedback {
	f.Strengths = cloneStrings(f.Strengths)
	f.Weaknesses = cloneStrings(f.Weaknesses)
	f.Opportunities = cloneStrings(f.Opportunities)
	f.Threats = cloneStrings(f.Threats)
	f.NextSteps = cloneStrings(f.NextSteps)
	f.MarketAnalysis.Trends = cloneStrings(f.MarketAnalysis.Trends)
	if f.Competitors != nil {
		f.Competitors = append([]Competitor(nil), f.Competitors...)
	}
	return f
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
