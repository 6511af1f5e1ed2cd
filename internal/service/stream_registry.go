// Package service contains long lived components shared by the handlers
package service

import (
	"sync"

	"github.com/PowerNightVS/discord-web/internal/model"
)

// DefaultMaxStreams is how many active streams are kept for display
const DefaultMaxStreams = 10

// StreamRegistry holds the streams the bot reported as live, newest first.
// Each streamer appears at most once and the list never grows past max.
type StreamRegistry struct {
	mu      sync.RWMutex
	max     int
	streams []model.Stream
}

func NewStreamRegistry(max int) *StreamRegistry {
	if max <= 0 {
		max = DefaultMaxStreams
	}

	return &StreamRegistry{
		max:     max,
		streams: make([]model.Stream, 0, max),
	}
}

// Add puts s at the front, replacing an earlier entry of the same streamer
// and evicting the oldest entry once the list is full
func (r *StreamRegistry) Add(s model.Stream) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]model.Stream, 0, r.max)
	next = append(next, s)

	for _, cur := range r.streams {
		if len(next) == r.max {
			break
		}

		if cur.Streamer != s.Streamer {
			next = append(next, cur)
		}
	}

	r.streams = next
}

// Remove drops every entry of the given streamer and reports whether
// anything was removed
func (r *StreamRegistry) Remove(streamer string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.streams[:0]
	for _, cur := range r.streams {
		if cur.Streamer != streamer {
			kept = append(kept, cur)
		}
	}

	removed := len(kept) != len(r.streams)
	clear(r.streams[len(kept):])
	r.streams = kept

	return removed
}

// List returns a copy of the current entries, newest first
func (r *StreamRegistry) List() []model.Stream {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Stream, len(r.streams))
	copy(out, r.streams)

	return out
}

func (r *StreamRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.streams)
}
