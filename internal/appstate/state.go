// Package appstate holds the authoritative record of a workspace and the closed set of actions that change it.
//
// [Reduce] is a pure function from a state and an action to the next state. [Store] serializes dispatches so that
// readers never observe a partially applied action.
package appstate

import (
	"github.com/myrjola/ideacoach/internal/mockdata"
	"github.com/myrjola/ideacoach/internal/models"
	"slices"
	"time"
)

// State is the whole application record. Treat it as a value: Reduce never mutates the slices of its input and
// Store.Snapshot returns deep copies.
type State struct {
	User          *models.User
	Authenticated bool
	// CurrentIdeaID is empty or the ID of an element of Ideas.
	CurrentIdeaID  string
	Ideas          []models.BusinessIdea
	Feedback       []models.AIFeedback
	ChatMessages   []models.ChatMessage
	Resources      []models.Resource
	Milestones     []models.Milestone
	Loading        bool
	EditingProfile bool
}

// Initial returns the state of a fresh workspace: signed in as the mock user with the mock records loaded.
func Initial() State {
	user := mockdata.User()
	return State{
		User:           &user,
		Authenticated:  true,
		CurrentIdeaID:  "",
		Ideas:          mockdata.Ideas(),
		Feedback:       mockdata.Feedback(),
		ChatMessages:   nil,
		Resources:      mockdata.Resources(),
		Milestones:     mockdata.Milestones(),
		Loading:        false,
		EditingProfile: false,
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	s.Ideas = slices.Clone(s.Ideas)
	if s.Feedback != nil {
		feedback := make([]models.AIFeedback, len(s.Feedback))
		for i, f := range s.Feedback {
			feedback[i] = f.Clone()
		}
		s.Feedback = feedback
	}
	s.ChatMessages = slices.Clone(s.ChatMessages)
	s.Resources = slices.Clone(s.Resources)
	if s.Milestones != nil {
		milestones := make([]models.Milestone, len(s.Milestones))
		for i, m := range s.Milestones {
			milestones[i] = m.Clone()
		}
		s.Milestones = milestones
	}
	return s
}

// Action is one of the state transitions defined in this package.
type Action interface {
	// Name identifies the action in logs and metrics.
	Name() string
	action()
}

// Authenticate signs in User.
type Authenticate struct{ User models.User }

// Logout clears the user, the authentication flag and the chat log.
type Logout struct{}

// SetCurrentIdea selects the active idea. Unknown IDs are ignored.
type SetCurrentIdea struct{ IdeaID string }

// AddIdea prepends Idea so that the newest idea comes first.
type AddIdea struct{ Idea models.BusinessIdea }

// AddFeedback prepends Feedback.
type AddFeedback struct{ Feedback models.AIFeedback }

// AppendChatMessage appends Message to the chat log.
type AppendChatMessage struct{ Message models.ChatMessage }

// CompleteMilestone marks the milestone with ID completed. Unknown IDs are ignored.
type CompleteMilestone struct{ ID string }

type SetLoading struct{ Loading bool }

type SetEditMode struct{ Editing bool }

// UpdateUser merges Patch into the current user. It does nothing when no user is signed in.
type UpdateUser struct{ Patch models.UserPatch }

func (Authenticate) Name() string      { return "authenticate" }
func (Logout) Name() string            { return "logout" }
func (SetCurrentIdea) Name() string    { return "set_current_idea" }
func (AddIdea) Name() string           { return "add_idea" }
func (AddFeedback) Name() string       { return "add_feedback" }
func (AppendChatMessage) Name() string { return "append_chat_message" }
func (CompleteMilestone) Name() string { return "complete_milestone" }
func (SetLoading) Name() string        { return "set_loading" }
func (SetEditMode) Name() string       { return "set_edit_mode" }
func (UpdateUser) Name() string        { return "update_user" }

func (Authenticate) action()      {}
func (Logout) action()            {}
func (SetCurrentIdea) action()    {}
func (AddIdea) action()           {}
func (AddFeedback) action()       {}
func (AppendChatMessage) action() {}
func (CompleteMilestone) action() {}
func (SetLoading) action()        {}
func (SetEditMode) action()       {}
func (UpdateUser) action()        {}

// Reduce returns the state that results from applying a to s. now is used for timestamps stamped by the action.
// Reduce does not modify s.
func Reduce(s State, a Action, now time.Time) State {
	switch a := a.(type) {
	case Authenticate:
		user := a.User
		s.User = &user
		s.Authenticated = true
	case Logout:
		s.User = nil
		s.Authenticated = false
		s.ChatMessages = nil
	case SetCurrentIdea:
		if slices.ContainsFunc(s.Ideas, func(idea models.BusinessIdea) bool { return idea.ID == a.IdeaID }) {
			s.CurrentIdeaID = a.IdeaID
		}
	case AddIdea:
		s.Ideas = append([]models.BusinessIdea{a.Idea}, s.Ideas...)
	case AddFeedback:
		s.Feedback = append([]models.AIFeedback{a.Feedback.Clone()}, s.Feedback...)
	case AppendChatMessage:
		s.ChatMessages = append(slices.Clip(s.ChatMessages), a.Message)
	case CompleteMilestone:
		i := slices.IndexFunc(s.Milestones, func(m models.Milestone) bool { return m.ID == a.ID })
		if i == -1 {
			break
		}
		milestones := slices.Clone(s.Milestones)
		completedAt := now
		milestones[i].Completed = true
		milestones[i].CompletedAt = &completedAt
		s.Milestones = milestones
	case SetLoading:
		s.Loading = a.Loading
	case SetEditMode:
		s.EditingProfile = a.Editing
	case UpdateUser:
		if s.User != nil {
			user := a.Patch.Apply(*s.User)
			s.User = &user
		}
	}
	return s
}
