package chat

import (
	"context"
	"errors"
)

// ErrNoSession is returned by mutating store operations when the session id
// has never been reset.
var ErrNoSession = errors.New("chat: session does not exist")

// Store holds per-session conversation state keyed by session id. The engine
// serializes all calls for one session id; implementations only need to be
// safe across different ids.
type Store interface {
	// Get returns a snapshot of the session, or nil if it does not exist.
	// Mutating the snapshot does not affect stored state.
	Get(ctx context.Context, id string) (*Session, error)

	// Reset replaces the session with a fresh one for the language: the
	// transcript becomes a single system turn and the order list is cleared.
	Reset(ctx context.Context, id, lang string) error

	// AppendTurn appends one transcript entry.
	AppendTurn(ctx context.Context, id, role, content string) error

	// DropLastTurn removes the most recent transcript entry. The system
	// turn at index 0 is never dropped. Used to revert an orphan user turn
	// after a failed model call.
	DropLastTurn(ctx context.Context, id string) error

	// AppendItems appends order items, preserving their order.
	AppendItems(ctx context.Context, id string, items []Item) error

	// TrimTranscript drops the oldest non-system turns until the transcript
	// holds at most max entries. The system turn is always kept.
	TrimTranscript(ctx context.Context, id string, max int) error
}

// trimTranscript applies the drop-oldest-after-system-prompt policy in place.
func trimTranscript(s *Session, max int) {
	if max <= 0 || len(s.Transcript) <= max {
		return
	}
	excess := len(s.Transcript) - max
	kept := make([]Turn, 0, max)
	kept = append(kept, s.Transcript[0])
	kept = append(kept, s.Transcript[1+excess:]...)
	s.Transcript = kept
}
