package workspace_test

import (
	"context"
	"github.com/myrjola/ideacoach/internal/broker"
	"github.com/myrjola/ideacoach/internal/chatbot"
	"github.com/myrjola/ideacoach/internal/models"
	"github.com/myrjola/ideacoach/internal/testhelpers"
	"github.com/myrjola/ideacoach/internal/workspace"
	"github.com/stretchr/testify/require"
	"io"
	"sync"
	"testing"
	"time"
)

type recordingObserver struct {
	mu     sync.Mutex
	pages  []models.Page
	topics []string
}

func (o *recordingObserver) PageCommitted(page models.Page) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pages = append(o.pages, page)
}

func (o *recordingObserver) ChatReplied(topic string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.topics = append(o.topics, topic)
}

func newRegistry(t *testing.T, typingDelay time.Duration) (*workspace.Registry, *recordingObserver) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	replies := broker.NewChannelBroker[string, models.ChatMessage]()
	go replies.Start(ctx)
	t.Cleanup(func() {
		replies.Stop()
		cancel()
	})
	observer := &recordingObserver{mu: sync.Mutex{}, pages: nil, topics: nil}
	registry := workspace.NewRegistry(ctx, workspace.Config{
		NavigationDelay: time.Millisecond,
		TypingDelay:     typingDelay,
		IdleTimeout:     time.Hour,
		Selector:        chatbot.New(chatbot.WithRandom(func(int) int { return 0 })),
		Replies:         replies,
		Observer:        observer,
		Logger:          testhelpers.NewLogger(io.Discard),
	})
	return registry, observer
}

func TestWorkspace_Ask(t *testing.T) {
	registry, observer := newRegistry(t, 10*time.Millisecond)
	w := registry.Create()

	replyID, ok := w.Ask("What's the best way to price my product?")
	require.True(t, ok)
	require.Equal(t, []string{replyID}, w.PendingReplies())

	chat := w.Store.Snapshot().ChatMessages
	require.Len(t, chat, 1)
	require.Equal(t, models.SenderUser, chat[0].Sender)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	msg, ok, err := w.AwaitReply(ctx, replyID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, replyID, msg.ID)
	require.Equal(t, models.SenderAI, msg.Sender)
	require.Contains(t, msg.Text, "pricing strategy")

	chat = w.Store.Snapshot().ChatMessages
	require.Len(t, chat, 2)
	require.Equal(t, msg, chat[1])
	require.Empty(t, w.PendingReplies())

	// Polling again after delivery reads the reply from the store.
	again, ok, err := w.AwaitReply(ctx, replyID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, msg, again)

	observer.mu.Lock()
	require.Equal(t, []string{"pricing"}, observer.topics)
	observer.mu.Unlock()
}

func TestWorkspace_AskIgnoresBlankMessages(t *testing.T) {
	registry, _ := newRegistry(t, time.Millisecond)
	w := registry.Create()

	for _, text := range []string{"", "   ", "\n\t"} {
		_, ok := w.Ask(text)
		require.False(t, ok)
	}
	require.Empty(t, w.Store.Snapshot().ChatMessages)
	require.Empty(t, w.PendingReplies())
}

func TestWorkspace_LogoutCancelsPendingReply(t *testing.T) {
	registry, _ := newRegistry(t, 50*time.Millisecond)
	w := registry.Create()

	replyID, ok := w.Ask("hello")
	require.True(t, ok)
	w.Logout()

	s := w.Store.Snapshot()
	require.False(t, s.Authenticated)
	require.Nil(t, s.User)
	require.Empty(t, s.ChatMessages)
	require.Empty(t, w.PendingReplies())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, ok, err := w.AwaitReply(ctx, replyID)
	require.NoError(t, err)
	require.False(t, ok)

	// Give a stale reply the chance to land.
	time.Sleep(100 * time.Millisecond)
	require.Empty(t, w.Store.Snapshot().ChatMessages)
}

func TestWorkspace_AskWhileSignedOut(t *testing.T) {
	registry, _ := newRegistry(t, time.Millisecond)
	w := registry.Create()
	w.Logout()

	replyID, ok := w.Ask("hello")
	require.False(t, ok)
	require.Empty(t, replyID)
	require.Empty(t, w.Store.Snapshot().ChatMessages)
	require.Empty(t, w.PendingReplies())
}

func TestWorkspace_ConcurrentAskAndLogout(t *testing.T) {
	const (
		rounds      = 50
		typingDelay = 5 * time.Millisecond
	)
	registry, _ := newRegistry(t, typingDelay)

	for range rounds {
		w := registry.Create()
		start := make(chan struct{})
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			<-start
			w.Ask("How do I get funding?")
		}()
		go func() {
			defer wg.Done()
			<-start
			w.Logout()
		}()
		close(start)
		wg.Wait()

		// Whichever goroutine won, a signed out workspace ends up with an empty chat log.
		require.Never(t, func() bool {
			return len(w.Store.Snapshot().ChatMessages) > 0
		}, 4*typingDelay, time.Millisecond)
		require.False(t, w.Store.Snapshot().Authenticated)
		require.Empty(t, w.PendingReplies())
	}
}

func TestWorkspace_AwaitReplyHonoursContextBehindFirstSubscriber(t *testing.T) {
	registry, _ := newRegistry(t, time.Hour)
	w := registry.Create()
	replyID, ok := w.Ask("hello")
	require.True(t, ok)

	firstCtx, firstCancel := context.WithCancel(context.Background())
	defer firstCancel()
	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		_, _, _ = w.AwaitReply(firstCtx, replyID)
	}()
	// Let the first request take the reply channel so that the next one parks behind it.
	time.Sleep(20 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	started := time.Now()
	_, ok, err := w.AwaitReply(ctx, replyID)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.False(t, ok)
	require.Less(t, time.Since(started), time.Second)

	firstCancel()
	<-firstDone
	w.Close()
}

func TestWorkspace_AwaitUnknownReply(t *testing.T) {
	registry, _ := newRegistry(t, time.Millisecond)
	w := registry.Create()

	_, ok, err := w.AwaitReply(context.Background(), "unknown")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestWorkspace_Navigate(t *testing.T) {
	registry, observer := newRegistry(t, time.Millisecond)
	w := registry.Create()

	require.False(t, w.Navigate(models.PageHome))
	require.True(t, w.Navigate(models.PageChat))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, w.Nav.Wait(ctx))
	require.Equal(t, models.PageChat, w.Nav.Current())

	// The commit callback runs right after waiters are released.
	require.Eventually(t, func() bool {
		observer.mu.Lock()
		defer observer.mu.Unlock()
		return len(observer.pages) == 1 && observer.pages[0] == models.PageChat
	}, time.Second, time.Millisecond)
}

func TestRegistry(t *testing.T) {
	registry, _ := newRegistry(t, time.Millisecond)

	a := registry.Create()
	b := registry.Create()
	require.NotEqual(t, a.ID, b.ID)
	require.Equal(t, 2, registry.Len())

	got, ok := registry.Get(a.ID)
	require.True(t, ok)
	require.Same(t, a, got)

	registry.Remove(a.ID)
	_, ok = registry.Get(a.ID)
	require.False(t, ok)
	require.Equal(t, 1, registry.Len())

	// Workspaces are isolated from each other.
	_, ok = b.Ask("hello")
	require.True(t, ok)
	c := registry.Create()
	require.Empty(t, c.Store.Snapshot().ChatMessages)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	registry, _ := newRegistry(t, time.Millisecond)

	w, created := registry.GetOrCreate("")
	require.True(t, created)

	again, created := registry.GetOrCreate(w.ID)
	require.False(t, created)
	require.Same(t, w, again)

	registry.Remove(w.ID)
	fresh, created := registry.GetOrCreate(w.ID)
	require.True(t, created)
	require.NotEqual(t, w.ID, fresh.ID)
}
