package store

import (
	"errors"
	"sync"

	"github.com/koldex/weatherview/internal/view"
)

// ErrNoData is returned before the first successful refresh has published a
// view.
var ErrNoData = errors.New("no weather view available yet")

// ViewHolder is a concurrency-safe holder for the most recent assembled
// view. It deliberately keeps a single snapshot and no history: each refresh
// replaces the previous view wholesale.
type ViewHolder struct {
	mu      sync.RWMutex
	current view.LocalizedView
	set     bool
}

// NewViewHolder creates an empty ViewHolder.
func NewViewHolder() *ViewHolder {
	return &ViewHolder{}
}

// Set replaces the held view.
func (h *ViewHolder) Set(v view.LocalizedView) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = v
	h.set = true
}

// Latest returns the most recently published view, or ErrNoData when no
// refresh has completed yet.
func (h *ViewHolder) Latest() (view.LocalizedView, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if !h.set {
		return view.LocalizedView{}, ErrNoData
	}
	return h.current, nil
}
