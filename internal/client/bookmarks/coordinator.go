// Package bookmarks keeps the currently selected bookmark list consistent
// across sibling views. Selection runs a small state machine
// (NoSelection -> Loading -> Loaded | NotFound); superseded selections are
// resolved by a monotonically increasing request token checked at apply
// time, not by cancelling the underlying calls. A list deleted server-side
// self-heals: the selection pointer is cleared and the list-of-lists view
// is signaled to refresh so the stale entry disappears.
package bookmarks

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/econdash/internal/client/api"
	"github.com/dmitrijs2005/econdash/internal/client/gateway"
	"github.com/dmitrijs2005/econdash/internal/client/models"
	"github.com/dmitrijs2005/econdash/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Phase of the selection state machine.
type Phase int

const (
	NoSelection Phase = iota
	Loading
	Loaded
	NotFound
	Failed
)

func (p Phase) String() string {
	switch p {
	case NoSelection:
		return "no selection"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case NotFound:
		return "not found"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the rendered view of the machine. SelectedListID is a weak
// reference: an identifier, never an owning link.
type State struct {
	Phase          Phase
	SelectedListID string
	List           *models.BookmarkList
	Items          *models.ListItems
	Err            error
}

type Coordinator struct {
	api api.Client
	log logging.Logger

	mu         sync.Mutex
	selectTok  uint64
	state      State
	bookmarked map[string]struct{}
	subs       []func()
}

func New(apiClient api.Client, log logging.Logger) *Coordinator {
	return &Coordinator{api: apiClient, log: log}
}

// Snapshot returns a copy of the current selection state.
func (c *Coordinator) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// OnListsRefresh registers fn to run whenever the list-of-lists view must
// refetch (currently: after a deleted-list selection self-heals).
func (c *Coordinator) OnListsRefresh(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

// Select makes listID the current selection and loads its contents and
// metadata concurrently. Each call supersedes any in-flight one: when a
// stale response resolves after a newer selection, its result is discarded
// at apply time and the newer selection's state is left untouched.
func (c *Coordinator) Select(ctx context.Context, listID string) error {
	c.mu.Lock()
	c.selectTok++
	tok := c.selectTok
	c.state = State{Phase: Loading, SelectedListID: listID}
	c.mu.Unlock()

	var (
		meta  *models.BookmarkList
		items *models.ListItems
	)
	var g errgroup.Group
	g.Go(func() error {
		m, err := c.api.BookmarkList(ctx, listID)
		meta = m
		return err
	})
	g.Go(func() error {
		it, err := c.api.ListItems(ctx, listID)
		items = it
		return err
	})
	err := g.Wait()

	c.mu.Lock()
	if tok != c.selectTok {
		// Superseded by a newer selection; this result is stale.
		c.mu.Unlock()
		return nil
	}

	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			// The list vanished server-side. Clear the dangling pointer
			// and let the sidebar refetch so the entry disappears.
			c.state = State{Phase: NoSelection, Err: err}
			subs := make([]func(), len(c.subs))
			copy(subs, c.subs)
			c.mu.Unlock()

			c.log.Warn(ctx, "selected list no longer exists, clearing selection", "list_id", listID)
			for _, fn := range subs {
				fn()
			}
			return err
		}
		c.state = State{Phase: Failed, SelectedListID: listID, Err: err}
		c.mu.Unlock()
		return err
	}

	c.state = State{Phase: Loaded, SelectedListID: listID, List: meta, Items: items}
	c.mu.Unlock()
	return nil
}

// ClearSelection returns the machine to NoSelection without any fetches.
func (c *Coordinator) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectTok++
	c.state = State{}
}

// Lists fetches the list-of-lists view.
func (c *Coordinator) Lists(ctx context.Context) ([]models.BookmarkList, error) {
	res, err := c.api.BookmarkLists(ctx)
	if err != nil {
		return nil, err
	}
	return res.Lists, nil
}

// RefreshBookmarked rebuilds the cross-list bookmarked-item set from
// scratch: all lists, then every list's items concurrently. It is never
// patched incrementally, which keeps it honest after any list mutation.
func (c *Coordinator) RefreshBookmarked(ctx context.Context) (map[string]struct{}, error) {
	lists, err := c.Lists(ctx)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	set := make(map[string]struct{})
	var g errgroup.Group
	for _, l := range lists {
		l := l
		g.Go(func() error {
			items, err := c.api.ListItems(ctx, l.ID)
			if err != nil {
				return err
			}
			mu.Lock()
			for _, a := range items.Articles {
				set[a.ID] = struct{}{}
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.bookmarked = set
	c.mu.Unlock()
	return set, nil
}

// Bookmarked reports whether the item appeared in any list at the last
// RefreshBookmarked.
func (c *Coordinator) Bookmarked(itemID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.bookmarked[itemID]
	return ok
}
