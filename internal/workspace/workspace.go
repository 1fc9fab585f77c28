// Package workspace composes the state store, the navigation controller and the chat responder for one browser
// session.
package workspace

import (
	"context"
	"github.com/google/uuid"
	"github.com/myrjola/ideacoach/internal/appstate"
	"github.com/myrjola/ideacoach/internal/broker"
	"github.com/myrjola/ideacoach/internal/chatbot"
	"github.com/myrjola/ideacoach/internal/models"
	"github.com/myrjola/ideacoach/internal/navigation"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"
)

// replyHandoffTimeout limits how long a finished reply waits for the long-polling request to pick it up. The reply
// is in the store already, so a late request still finds it.
const replyHandoffTimeout = 5 * time.Second

// ReplyBroker hands finished chat replies from the goroutine producing them to the request waiting for them.
type ReplyBroker = broker.ChannelBroker[string, models.ChatMessage]

// Observer is notified about events worth counting.
type Observer interface {
	PageCommitted(page models.Page)
	ChatReplied(topic string)
}

type nopObserver struct{}

func (nopObserver) PageCommitted(models.Page) {}
func (nopObserver) ChatReplied(string)        {}

// Workspace is the application state of one browser session.
type Workspace struct {
	ID    string
	Store *appstate.Store
	Nav   *navigation.Controller

	ctx         context.Context
	selector    *chatbot.Selector
	replies     *ReplyBroker
	typingDelay time.Duration
	observer    Observer
	logger      *slog.Logger

	mu sync.Mutex
	// pending maps the IDs of replies that are still being typed to their cancel functions.
	pending    map[string]context.CancelFunc
	pendingIDs []string
	lastActive time.Time
}

// Ask appends the user's message to the chat log and schedules the mentor's reply after the typing delay. It returns
// the ID the reply will have. Messages consisting only of whitespace are ignored and ok is false, as are messages
// asked while signed out.
func (w *Workspace) Ask(text string) (replyID string, ok bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	reply := w.selector.Reply(text)
	replyID = uuid.NewString()
	c := make(chan models.ChatMessage)

	// The message, the publication and the cancel func are registered in one critical section with Logout so
	// that a concurrent sign out either sees the pending reply or stops the message from landing.
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.Store.Snapshot().Authenticated {
		return "", false
	}
	w.Store.Dispatch(appstate.AppendChatMessage{Message: models.NewChatMessage(text, models.SenderUser, time.Now())})
	replyCtx, cancel := context.WithCancel(w.ctx)
	w.replies.Publish(replyCtx, replyID, c)
	w.pending[replyID] = cancel
	w.pendingIDs = append(w.pendingIDs, replyID)

	go w.deliver(replyCtx, replyID, reply, c)

	return replyID, true
}

func (w *Workspace) deliver(ctx context.Context, replyID string, reply chatbot.Reply, c chan models.ChatMessage) {
	defer func() {
		close(c)
		unpublishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		w.replies.Unpublish(unpublishCtx, replyID)
		cancel()
		w.finish(replyID)
	}()

	timer := time.NewTimer(w.typingDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		w.logger.LogAttrs(ctx, slog.LevelDebug, "chat reply cancelled", slog.String("replyID", replyID))
		return
	case <-timer.C:
	}

	msg := models.ChatMessage{
		ID:        replyID,
		Text:      reply.Text,
		Sender:    models.SenderAI,
		Timestamp: time.Now(),
	}
	// Holding the lock orders the append with Logout so that a cancelled reply never lands.
	w.mu.Lock()
	if ctx.Err() != nil {
		w.mu.Unlock()
		return
	}
	w.Store.Dispatch(appstate.AppendChatMessage{Message: msg})
	w.pendingIDs = slices.DeleteFunc(w.pendingIDs, func(id string) bool { return id == replyID })
	w.mu.Unlock()
	w.observer.ChatReplied(reply.Topic)
	w.logger.LogAttrs(ctx, slog.LevelDebug, "chat reply delivered",
		slog.String("replyID", replyID), slog.String("topic", reply.Topic))

	select {
	case c <- msg:
	case <-ctx.Done():
	case <-time.After(replyHandoffTimeout):
	}
}

func (w *Workspace) finish(replyID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if cancel, ok := w.pending[replyID]; ok {
		cancel()
		delete(w.pending, replyID)
	}
	w.pendingIDs = slices.DeleteFunc(w.pendingIDs, func(id string) bool { return id == replyID })
}

// PendingReplies returns the IDs of replies that are still being typed in the order they were asked.
func (w *Workspace) PendingReplies() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.pendingIDs)
}

// AwaitReply waits until the reply with replyID is delivered. ok is false when no such reply exists or it was
// cancelled.
func (w *Workspace) AwaitReply(ctx context.Context, replyID string) (models.ChatMessage, bool, error) {
	var c chan models.ChatMessage
	select {
	case c = <-w.replies.Subscribe(ctx, replyID):
	case <-ctx.Done():
		return models.ChatMessage{}, false, ctx.Err() //nolint:wrapcheck // caller knows the context
	}
	if c != nil {
		select {
		case msg, ok := <-c:
			if ok {
				return msg, true, nil
			}
		case <-ctx.Done():
			return models.ChatMessage{}, false, ctx.Err() //nolint:wrapcheck // caller knows the context
		}
	}
	if err := ctx.Err(); err != nil {
		return models.ChatMessage{}, false, err //nolint:wrapcheck // caller knows the context
	}

	// The producer has finished. Look up the result from the store.
	for _, msg := range w.Store.Snapshot().ChatMessages {
		if msg.ID == replyID && msg.Sender == models.SenderAI {
			return msg, true, nil
		}
	}
	return models.ChatMessage{}, false, nil
}

// Navigate requests a page switch and reports whether one was started.
func (w *Workspace) Navigate(page models.Page) bool {
	return w.Nav.NavigateTo(page)
}

// Logout signs out and cancels replies that are still being typed so that they never land in the cleared chat log.
func (w *Workspace) Logout() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cancelPendingLocked()
	w.Store.Dispatch(appstate.Logout{})
}

// Close releases the timers of the workspace.
func (w *Workspace) Close() {
	w.mu.Lock()
	w.cancelPendingLocked()
	w.mu.Unlock()
	w.Nav.Stop()
}

func (w *Workspace) cancelPendingLocked() {
	for id, cancel := range w.pending {
		cancel()
		delete(w.pending, id)
	}
	w.pendingIDs = nil
}

func (w *Workspace) touch(now time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastActive = now
}

func (w *Workspace) idleSince() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastActive
}
