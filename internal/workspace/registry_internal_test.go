package workspace

import (
	"context"
	"github.com/myrjola/ideacoach/internal/broker"
	"github.com/myrjola/ideacoach/internal/chatbot"
	"github.com/myrjola/ideacoach/internal/models"
	"github.com/myrjola/ideacoach/internal/testhelpers"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
	"time"
)

func TestRegistry_EvictIdle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	replies := broker.NewChannelBroker[string, models.ChatMessage]()
	go replies.Start(ctx)
	defer replies.Stop()

	registry := NewRegistry(ctx, Config{
		NavigationDelay: time.Hour,
		TypingDelay:     time.Hour,
		IdleTimeout:     10 * time.Minute,
		Selector:        chatbot.New(),
		Replies:         replies,
		Observer:        nil,
		Logger:          testhelpers.NewLogger(io.Discard),
	})
	clock := time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC)
	registry.now = func() time.Time { return clock }

	idle := registry.Create()
	active := registry.Create()

	// The idle workspace has a reply being typed and a pending page switch.
	_, ok := idle.Ask("hello")
	require.True(t, ok)
	require.True(t, idle.Navigate(models.PageChat))

	clock = clock.Add(8 * time.Minute)
	_, ok = registry.Get(active.ID)
	require.True(t, ok)

	clock = clock.Add(5 * time.Minute)
	require.Equal(t, 1, registry.EvictIdle())
	require.Equal(t, 1, registry.Len())

	_, ok = registry.Get(idle.ID)
	require.False(t, ok)
	_, ok = registry.Get(active.ID)
	require.True(t, ok)

	// Closing released the timers.
	require.Empty(t, idle.PendingReplies())
	require.False(t, idle.Nav.Transitioning())
	require.NoError(t, idle.Nav.Wait(ctx))
}
