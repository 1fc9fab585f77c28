package appstate_test

import (
	"github.com/myrjola/ideacoach/internal/appstate"
	"github.com/myrjola/ideacoach/internal/models"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
	"time"
)

var now = time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC)

func TestInitial(t *testing.T) {
	s := appstate.Initial()
	require.True(t, s.Authenticated)
	require.NotNil(t, s.User)
	require.Empty(t, s.ChatMessages)
	require.NotEmpty(t, s.Ideas)
	require.NotEmpty(t, s.Feedback)
	require.NotEmpty(t, s.Resources)
	require.NotEmpty(t, s.Milestones)
	require.Empty(t, s.CurrentIdeaID)
	require.False(t, s.Loading)
	require.False(t, s.EditingProfile)
}

func TestReduce_Logout(t *testing.T) {
	s := appstate.Initial()
	s = appstate.Reduce(s, appstate.AppendChatMessage{Message: models.NewChatMessage("hi", models.SenderUser, now)}, now)
	require.Len(t, s.ChatMessages, 1)

	s = appstate.Reduce(s, appstate.Logout{}, now)
	require.Nil(t, s.User)
	require.False(t, s.Authenticated)
	require.Empty(t, s.ChatMessages)

	// Logging out twice is fine.
	s = appstate.Reduce(s, appstate.Logout{}, now)
	require.Nil(t, s.User)
	require.False(t, s.Authenticated)
}

func TestReduce_Authenticate(t *testing.T) {
	s := appstate.Reduce(appstate.Initial(), appstate.Logout{}, now)
	user := models.NewUser("Jamie Rivera", "jamie@example.com", now)

	s = appstate.Reduce(s, appstate.Authenticate{User: user}, now)
	require.True(t, s.Authenticated)
	require.Equal(t, user, *s.User)
}

func TestReduce_CompleteMilestone(t *testing.T) {
	initial := appstate.Initial()

	t.Run("unknown id", func(t *testing.T) {
		s := appstate.Reduce(initial, appstate.CompleteMilestone{ID: "does-not-exist"}, now)
		require.Equal(t, initial.Milestones, s.Milestones)
	})

	t.Run("known id", func(t *testing.T) {
		target := initial.Milestones[2]
		require.False(t, target.Completed)

		s := appstate.Reduce(initial, appstate.CompleteMilestone{ID: target.ID}, now)
		require.True(t, s.Milestones[2].Completed)
		require.NotNil(t, s.Milestones[2].CompletedAt)
		require.False(t, s.Milestones[2].CompletedAt.IsZero())
		require.Equal(t, now, *s.Milestones[2].CompletedAt)

		for i := range s.Milestones {
			if i != 2 {
				require.Equal(t, initial.Milestones[i], s.Milestones[i])
			}
		}
		require.False(t, initial.Milestones[2].Completed, "input state must not change")
	})
}

func TestReduce_UpdateUser(t *testing.T) {
	name := "Alex M."

	t.Run("no user", func(t *testing.T) {
		s := appstate.Reduce(appstate.Initial(), appstate.Logout{}, now)
		s = appstate.Reduce(s, appstate.UpdateUser{Patch: models.UserPatch{Name: &name, Email: nil, Avatar: nil}}, now)
		require.Nil(t, s.User)
	})

	t.Run("merges into user", func(t *testing.T) {
		initial := appstate.Initial()
		s := appstate.Reduce(initial, appstate.UpdateUser{Patch: models.UserPatch{Name: &name, Email: nil, Avatar: nil}}, now)
		require.Equal(t, name, s.User.Name)
		require.Equal(t, initial.User.Email, s.User.Email)
		require.NotEqual(t, name, initial.User.Name, "input state must not change")
	})
}

func TestReduce_Ideas(t *testing.T) {
	initial := appstate.Initial()
	idea := models.NewIdea("Drone Deliveries", "Deliver groceries by drone.", "Technology", now)

	s := appstate.Reduce(initial, appstate.AddIdea{Idea: idea}, now)
	require.Len(t, s.Ideas, len(initial.Ideas)+1)
	require.Equal(t, idea, s.Ideas[0])
	require.Equal(t, models.IdeaStatusAnalyzing, s.Ideas[0].Status)

	s = appstate.Reduce(s, appstate.SetCurrentIdea{IdeaID: idea.ID}, now)
	current, ok := s.CurrentIdea()
	require.True(t, ok)
	require.Equal(t, idea, current)

	// Ideas outside the list are never selected.
	s = appstate.Reduce(s, appstate.SetCurrentIdea{IdeaID: "unknown"}, now)
	require.Equal(t, idea.ID, s.CurrentIdeaID)
}

func TestReduce_FeedbackAndFlags(t *testing.T) {
	initial := appstate.Initial()
	feedback := initial.Feedback[1].Clone()
	feedback.ID = "feedback-new"

	s := appstate.Reduce(initial, appstate.AddFeedback{Feedback: feedback}, now)
	require.Equal(t, "feedback-new", s.Feedback[0].ID)
	require.Len(t, s.Feedback, len(initial.Feedback)+1)

	s = appstate.Reduce(s, appstate.SetLoading{Loading: true}, now)
	require.True(t, s.Loading)
	s = appstate.Reduce(s, appstate.SetEditMode{Editing: true}, now)
	require.True(t, s.EditingProfile)
	s = appstate.Reduce(s, appstate.SetEditMode{Editing: false}, now)
	require.False(t, s.EditingProfile)
}

func TestReduce_ChatMessagesDoNotAlias(t *testing.T) {
	s := appstate.Initial()
	s = appstate.Reduce(s, appstate.AppendChatMessage{Message: models.NewChatMessage("one", models.SenderUser, now)}, now)
	a := appstate.Reduce(s, appstate.AppendChatMessage{Message: models.NewChatMessage("two", models.SenderAI, now)}, now)
	b := appstate.Reduce(s, appstate.AppendChatMessage{Message: models.NewChatMessage("three", models.SenderAI, now)}, now)

	require.Len(t, s.ChatMessages, 1)
	require.Equal(t, "two", a.ChatMessages[1].Text)
	require.Equal(t, "three", b.ChatMessages[1].Text)
}

func TestStore(t *testing.T) {
	store := appstate.NewStore(appstate.Initial(), appstate.WithClock(func() time.Time { return now }))

	milestoneID := store.Snapshot().Milestones[3].ID
	s := store.Dispatch(appstate.CompleteMilestone{ID: milestoneID})
	require.Equal(t, now, *s.Milestones[3].CompletedAt)

	// Snapshots are independent copies.
	snapshot := store.Snapshot()
	snapshot.Milestones[0].Title = "changed"
	snapshot.User.Name = "changed"
	require.NotEqual(t, "changed", store.Snapshot().Milestones[0].Title)
	require.NotEqual(t, "changed", store.Snapshot().User.Name)

	// Concurrent dispatches are serialized.
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Dispatch(appstate.AppendChatMessage{Message: models.NewChatMessage("hello", models.SenderUser, now)})
		}()
	}
	wg.Wait()
	require.Len(t, store.Snapshot().ChatMessages, 50)
}
