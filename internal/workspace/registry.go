package workspace

import (
	"context"
	"github.com/google/uuid"
	"github.com/myrjola/ideacoach/internal/appstate"
	"github.com/myrjola/ideacoach/internal/chatbot"
	"github.com/myrjola/ideacoach/internal/models"
	"github.com/myrjola/ideacoach/internal/navigation"
	"log/slog"
	"sync"
	"time"
)

type Config struct {
	NavigationDelay time.Duration
	TypingDelay     time.Duration
	// IdleTimeout is how long a workspace may go unused before it is evicted.
	IdleTimeout time.Duration
	Selector    *chatbot.Selector
	Replies     *ReplyBroker
	// Observer may be nil.
	Observer Observer
	Logger   *slog.Logger
}

// Registry keeps the workspaces of active sessions in memory.
type Registry struct {
	ctx        context.Context
	cfg        Config
	now        func() time.Time
	mu         sync.Mutex
	workspaces map[string]*Workspace
}

// NewRegistry creates a registry. Chat replies of its workspaces are cancelled when ctx is done.
func NewRegistry(ctx context.Context, cfg Config) *Registry {
	if cfg.Observer == nil {
		cfg.Observer = nopObserver{}
	}
	return &Registry{
		ctx:        ctx,
		cfg:        cfg,
		now:        time.Now,
		mu:         sync.Mutex{},
		workspaces: map[string]*Workspace{},
	}
}

// Create adds a workspace with fresh state.
func (r *Registry) Create() *Workspace {
	observer := r.cfg.Observer
	w := &Workspace{
		ID:    uuid.NewString(),
		Store: appstate.NewStore(appstate.Initial()),
		Nav: navigation.New(
			navigation.WithDelay(r.cfg.NavigationDelay),
			navigation.WithOnCommit(func(_, to models.Page) {
				observer.PageCommitted(to)
			}),
		),
		ctx:         r.ctx,
		selector:    r.cfg.Selector,
		replies:     r.cfg.Replies,
		typingDelay: r.cfg.TypingDelay,
		observer:    observer,
		logger:      r.cfg.Logger,
		mu:          sync.Mutex{},
		pending:     map[string]context.CancelFunc{},
		pendingIDs:  nil,
		lastActive:  r.now(),
	}

	r.mu.Lock()
	r.workspaces[w.ID] = w
	r.mu.Unlock()

	return w
}

// Get returns the workspace with id and marks it active.
func (r *Registry) Get(id string) (*Workspace, bool) {
	r.mu.Lock()
	w, ok := r.workspaces[id]
	r.mu.Unlock()
	if ok {
		w.touch(r.now())
	}
	return w, ok
}

// GetOrCreate returns the workspace with id or a fresh one when id is unknown, e.g., because the workspace was
// evicted. created reports whether a new workspace was made.
func (r *Registry) GetOrCreate(id string) (w *Workspace, created bool) {
	if id != "" {
		var ok bool
		if w, ok = r.Get(id); ok {
			return w, false
		}
	}
	return r.Create(), true
}

// Remove closes and forgets the workspace with id.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	w, ok := r.workspaces[id]
	delete(r.workspaces, id)
	r.mu.Unlock()
	if ok {
		w.Close()
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}

// EvictIdle removes the workspaces that have been idle for longer than the idle timeout and returns how many were
// removed.
func (r *Registry) EvictIdle() int {
	deadline := r.now().Add(-r.cfg.IdleTimeout)
	var evicted []*Workspace

	r.mu.Lock()
	for id, w := range r.workspaces {
		if w.idleSince().Before(deadline) {
			evicted = append(evicted, w)
			delete(r.workspaces, id)
		}
	}
	r.mu.Unlock()

	for _, w := range evicted {
		w.Close()
	}
	return len(evicted)
}

// StartEviction evicts idle workspaces every interval until ctx is done.
func (r *Registry) StartEviction(ctx context.Context, interval time.Duration) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
			if n := r.EvictIdle(); n > 0 {
				r.cfg.Logger.LogAttrs(ctx, slog.LevelInfo, "evicted idle workspaces",
					slog.Int("count", n), slog.Int("remaining", r.Len()))
			}
		}
	}
}
