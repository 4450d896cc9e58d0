package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"watchlist_backend/internal/feature/watchlist/domain"
)

// bannerTTL is how long transient error/success messages stay visible.
const bannerTTL = 3 * time.Second

// WatchlistAPI defines the server operations the view depends on.
// Following Go convention: interfaces are defined by the consumer (view), not the provider (Client).
type WatchlistAPI interface {
	List(ctx context.Context) ([]Stock, error)
	Add(ctx context.Context, name string) (*Stock, bool, error)
	Remove(ctx context.Context, name string) error
}

// Scheduler abstracts delayed execution so banner expiry is an explicit
// timed state transition instead of ad hoc timers in view logic.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// TimerScheduler is the production Scheduler backed by time.AfterFunc.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// View holds the client-side watchlist state: the entry list, a free-text
// search filter, transient banners, and in-flight flags. All methods are
// safe for concurrent use; banner expiry fires from the scheduler goroutine.
type View struct {
	api   WatchlistAPI
	sched Scheduler

	mu       sync.Mutex
	entries  []Stock
	filter   string
	errMsg   string
	okMsg    string
	okGen    int // invalidates stale banner expirations
	adding   bool
	fetching bool
}

// NewView creates a View over the given API client and scheduler.
func NewView(api WatchlistAPI, sched Scheduler) *View {
	return &View{api: api, sched: sched}
}

// Refresh reloads the full watchlist from the server.
func (v *View) Refresh(ctx context.Context) error {
	v.mu.Lock()
	v.fetching = true
	v.errMsg = ""
	v.mu.Unlock()

	stocks, err := v.api.List(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.fetching = false
	if err != nil {
		v.errMsg = "Could not load watchlist from server."
		return err
	}
	v.entries = stocks
	return nil
}

// Add validates the raw symbol locally, rejects local duplicates without a
// round trip, then submits it. On success the entry is appended (or replaced
// in the enriched case) in local state instead of refetching.
func (v *View) Add(ctx context.Context, raw string) error {
	v.mu.Lock()
	v.errMsg = ""
	v.okMsg = ""

	symbol, err := domain.NormalizeSymbol(raw)
	if err != nil {
		v.errMsg = "Stock symbol must be 1-5 uppercase letters only."
		v.mu.Unlock()
		return err
	}
	if v.indexOfLocked(symbol) >= 0 {
		v.errMsg = fmt.Sprintf("%s is already in your watchlist.", symbol)
		v.mu.Unlock()
		return fmt.Errorf("%s already in watchlist", symbol)
	}
	v.adding = true
	v.mu.Unlock()

	stock, updated, err := v.api.Add(ctx, symbol)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.adding = false
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			v.errMsg = apiErr.Msg
		} else {
			v.errMsg = "Server not reachable."
		}
		return err
	}

	if i := v.indexOfLocked(stock.Name); updated && i >= 0 {
		v.entries[i] = *stock
	} else {
		v.entries = append(v.entries, *stock)
	}
	v.setSuccessLocked(fmt.Sprintf("%s added successfully!", symbol))
	return nil
}

// Remove optimistically drops the entry from local state, then issues the
// delete. A failed delete restores nothing: the next Refresh reconciles.
func (v *View) Remove(ctx context.Context, name string) error {
	v.mu.Lock()
	if i := v.indexOfLocked(name); i >= 0 {
		v.entries = append(v.entries[:i], v.entries[i+1:]...)
	}
	v.mu.Unlock()

	err := v.api.Remove(ctx, name)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.errMsg = "Failed to remove stock."
		return err
	}
	v.setSuccessLocked(fmt.Sprintf("%s removed successfully!", name))
	return nil
}

// ClearAll issues one delete per entry and clears local state once all
// complete. The first failure is reported but remaining deletes still run.
func (v *View) ClearAll(ctx context.Context) error {
	v.mu.Lock()
	names := make([]string, len(v.entries))
	for i, s := range v.entries {
		names[i] = s.Name
	}
	v.mu.Unlock()

	var firstErr error
	for _, name := range names {
		if err := v.api.Remove(ctx, name); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if firstErr != nil {
		v.errMsg = "Failed to clear watchlist."
		return firstErr
	}
	v.entries = nil
	v.setSuccessLocked("Watchlist cleared.")
	return nil
}

// SetFilter updates the free-text search filter.
func (v *View) SetFilter(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = term
}

// Visible returns the entries matching the current filter, case-insensitive
// substring match on the symbol.
func (v *View) Visible() []Stock {
	v.mu.Lock()
	defer v.mu.Unlock()

	term := strings.ToLower(v.filter)
	out := make([]Stock, 0, len(v.entries))
	for _, s := range v.entries {
		if term == "" || strings.Contains(strings.ToLower(s.Name), term) {
			out = append(out, s)
		}
	}
	return out
}

// Error returns the current error banner, empty when none.
func (v *View) Error() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.errMsg
}

// Success returns the current success banner, empty when none or expired.
func (v *View) Success() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.okMsg
}

// Busy reports whether an add or a full fetch is in flight.
func (v *View) Busy() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.adding || v.fetching
}

// setSuccessLocked shows a success banner and schedules its expiry. The
// generation counter keeps an old expiry from wiping a newer banner.
// Caller must hold v.mu.
func (v *View) setSuccessLocked(msg string) {
	v.okMsg = msg
	v.okGen++
	gen := v.okGen
	v.sched.AfterFunc(bannerTTL, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if v.okGen == gen {
			v.okMsg = ""
		}
	})
}

// indexOfLocked returns the position of a symbol in local state, -1 when
// absent. Caller must hold v.mu.
func (v *View) indexOfLocked(name string) int {
	for i, s := range v.entries {
		if s.Name == name {
			return i
		}
	}
	return -1
}
