// Package navigation tracks which page a workspace shows and animates switches between pages.
//
// A switch is requested with [Controller.NavigateTo]. The transition flag is raised immediately and the new page is
// committed after a short delay. A newer request cancels the pending one, so the last request wins.
package navigation

import (
	"context"
	"github.com/myrjola/ideacoach/internal/models"
	"sync"
	"time"
)

// DefaultDelay is how long a transition lasts before the target page is committed.
const DefaultDelay = 150 * time.Millisecond

// Timer is the part of [time.Timer] the controller needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run after d. It has the semantics of [time.AfterFunc].
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Controller holds the current page and the transition flag.
type Controller struct {
	mu            sync.Mutex
	current       models.Page
	transitioning bool
	// generation identifies the latest request. Commits scheduled by older requests are discarded.
	generation uint64
	timer      Timer
	// settled is closed when no transition is pending. It is replaced when a transition starts.
	settled   chan struct{}
	delay     time.Duration
	afterFunc AfterFunc
	onCommit  func(from, to models.Page)
}

type Option func(*Controller)

func WithDelay(d time.Duration) Option {
	return func(c *Controller) {
		c.delay = d
	}
}

// WithAfterFunc replaces the timer factory, e.g., with a manually triggered one in tests.
func WithAfterFunc(f AfterFunc) Option {
	return func(c *Controller) {
		c.afterFunc = f
	}
}

// WithOnCommit registers a callback that runs after a page switch is committed. It runs outside the controller's
// lock.
func WithOnCommit(f func(from, to models.Page)) Option {
	return func(c *Controller) {
		c.onCommit = f
	}
}

// New creates a controller showing the home page.
func New(opts ...Option) *Controller {
	settled := make(chan struct{})
	close(settled)
	c := &Controller{
		mu:            sync.Mutex{},
		current:       models.PageHome,
		transitioning: false,
		generation:    0,
		timer:         nil,
		settled:       settled,
		delay:         DefaultDelay,
		afterFunc:     realAfterFunc,
		onCommit:      nil,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current page and whether a transition is pending.
func (c *Controller) State() (models.Page, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current, c.transitioning
}

func (c *Controller) Current() models.Page {
	page, _ := c.State()
	return page
}

func (c *Controller) Transitioning() bool {
	_, transitioning := c.State()
	return transitioning
}

// NavigateTo requests a switch to page. Requesting the committed current page has no effect and returns false, even
// while a transition elsewhere is pending. Otherwise the transition flag is raised at once, any pending switch is
// cancelled, and page is committed after the delay.
func (c *Controller) NavigateTo(page models.Page) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if page == c.current {
		return false
	}

	if c.timer != nil {
		c.timer.Stop()
	}
	if !c.transitioning {
		c.transitioning = true
		c.settled = make(chan struct{})
	}
	c.generation++
	generation := c.generation
	c.timer = c.afterFunc(c.delay, func() {
		c.commit(generation, page)
	})
	return true
}

func (c *Controller) commit(generation uint64, page models.Page) {
	c.mu.Lock()
	if generation != c.generation || !c.transitioning {
		c.mu.Unlock()
		return
	}
	from := c.current
	c.current = page
	c.transitioning = false
	c.timer = nil
	close(c.settled)
	onCommit := c.onCommit
	c.mu.Unlock()

	if onCommit != nil {
		onCommit(from, page)
	}
}

// Wait blocks until no transition is pending or ctx is done.
func (c *Controller) Wait(ctx context.Context) error {
	c.mu.Lock()
	settled := c.settled
	c.mu.Unlock()

	select {
	case <-settled:
		return nil
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck // caller knows the context
	}
}

// Stop cancels a pending switch. The current page stays as it is and the transition flag is cleared.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	// Invalidate a commit that already fired but is waiting for the lock.
	c.generation++
	if c.transitioning {
		c.transitioning = false
		close(c.settled)
	}
}
