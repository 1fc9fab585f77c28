package main

import (
	"github.com/myrjola/ideacoach/internal/appstate"
	"github.com/myrjola/ideacoach/internal/chatbot"
	"github.com/myrjola/ideacoach/internal/contexthelpers"
	"github.com/myrjola/ideacoach/internal/models"
	"net/http"
)

const (
	recentIdeasOnHome         = 2
	recentFeedbackOnDashboard = 2
)

type BaseTemplateData struct {
	Authenticated bool
}

func newBaseTemplateData(r *http.Request) BaseTemplateData {
	return BaseTemplateData{
		Authenticated: contexthelpers.IsAuthenticated(r.Context()),
	}
}

type loginTemplateData struct {
	BaseTemplateData
	Form loginForm
}

type navItem struct {
	Page   models.Page
	Label  string
	Active bool
}

// ideaForm is the idea submission form. Every field is required but only title, description and category are
// stored on the idea.
type ideaForm struct {
	Title         string
	Description   string
	Category      string
	TargetMarket  string
	Problem       string
	BusinessModel string
	FieldErrors   map[string]string
}

type profileForm struct {
	Name        string
	Email       string
	FieldErrors map[string]string
}

// appTemplateData is everything the signed in application shell needs to render any page.
type appTemplateData struct {
	BaseTemplateData
	State          appstate.State
	Page           models.Page
	Transitioning  bool
	Nav            []navItem
	PendingReplies []string

	// Home
	RecentIdeas []models.BusinessIdea

	// Submit
	IdeaForm       ideaForm
	IdeaCategories []string

	// Dashboard
	CurrentIdea       *models.BusinessIdea
	CurrentFeedback   *models.AIFeedback
	RecentFeedback    []appstate.FeedbackWithIdea
	MilestoneProgress int

	// Chat
	SuggestedQuestions []string

	// Resources
	Filter             appstate.ResourceFilter
	Resources          []models.Resource
	FeaturedResources  []models.Resource
	ResourceCategories []string
	ResourceTypes      []models.ResourceType

	// Profile
	ProfileForm  profileForm
	Achievements []appstate.Achievement
}

func newAppTemplateData(r *http.Request, s appstate.State, page models.Page, transitioning bool,
	pending []string) appTemplateData {
	data := appTemplateData{ //nolint:exhaustruct // page specific fields are filled below
		BaseTemplateData: newBaseTemplateData(r),
		State:            s,
		Page:             page,
		Transitioning:    transitioning,
		PendingReplies:   pending,
	}
	for _, p := range models.Pages {
		data.Nav = append(data.Nav, navItem{Page: p, Label: p.Label(), Active: p == page})
	}

	switch page {
	case models.PageHome:
		data.RecentIdeas = s.RecentIdeas(recentIdeasOnHome)
	case models.PageSubmit:
		data.IdeaCategories = models.IdeaCategories
		data.IdeaForm = ideaForm{} //nolint:exhaustruct // empty form
	case models.PageDashboard:
		if idea, ok := s.CurrentIdea(); ok {
			data.CurrentIdea = &idea
			if feedback, found := s.FeedbackForIdea(idea.ID); found {
				data.CurrentFeedback = &feedback
			}
		}
		data.RecentFeedback = s.RecentFeedback(recentFeedbackOnDashboard)
		data.MilestoneProgress = s.MilestoneProgress()
	case models.PageChat:
		data.SuggestedQuestions = chatbot.SuggestedQuestions()
	case models.PageResources:
		query := r.URL.Query()
		data.Filter = appstate.ResourceFilter{
			Query:    query.Get("q"),
			Category: query.Get("category"),
			Type:     query.Get("type"),
		}
		data.Resources = s.FilterResources(data.Filter)
		if data.Filter.IsEmpty() {
			data.FeaturedResources = s.FeaturedResources()
		}
		data.ResourceCategories = models.ResourceCategories
		data.ResourceTypes = models.ResourceTypes
	case models.PageProfile:
		if s.User != nil {
			data.ProfileForm = profileForm{Name: s.User.Name, Email: s.User.Email, FieldErrors: nil}
		}
		data.Achievements = s.Achievements()
	}

	return data
}
