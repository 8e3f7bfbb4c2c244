// Package session holds the state of a transliteration view and the rules
// for how keystrokes, conversion results, copy and clear actions change it.
//
// State is not safe for concurrent use. It is owned by a single event loop;
// conversions run elsewhere and report back through Finish.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/f3rmion/lipi/internal/logging"
	"github.com/f3rmion/lipi/internal/translit"
)

// StalePolicy decides what happens to a conversion result that completes
// after a newer request was dispatched.
type StalePolicy string

const (
	// ApplyInOrder applies every result in completion order. An older, slower
	// response may overwrite a newer one until the next keystroke.
	ApplyInOrder StalePolicy = "apply"

	// DiscardStale applies a result only if it belongs to the newest request.
	DiscardStale StalePolicy = "discard"
)

// ParseStalePolicy validates a policy name. Empty means ApplyInOrder.
func ParseStalePolicy(s string) (StalePolicy, error) {
	switch StalePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", ApplyInOrder:
		return ApplyInOrder, nil
	case DiscardStale:
		return DiscardStale, nil
	default:
		return "", fmt.Errorf("unknown stale policy %q (want %q or %q)", s, ApplyInOrder, DiscardStale)
	}
}

// Ticket identifies one dispatched conversion request.
type Ticket struct {
	Seq  uint64
	Text string
}

// Writer is the clipboard primitive used by CopyOutput.
type Writer interface {
	Write(text string) error
}

// State is the view state: what the user typed, what is displayed, and the
// two flags driving the loading and "Copied!" indicators.
type State struct {
	RawInput           string
	ConvertedOutput    string
	ConversionInFlight bool
	CopyFeedbackActive bool

	policy  StalePolicy
	seq     uint64 // newest dispatched ticket
	changes uint64 // newest input change, for debouncing
	copies  uint64 // newest copy activation
}

// New creates an empty state using policy for stale results.
func New(policy StalePolicy) *State {
	if policy == "" {
		policy = ApplyInOrder
	}
	return &State{policy: policy}
}

// Policy returns the stale-result policy.
func (s *State) Policy() StalePolicy {
	return s.policy
}

// SetInput replaces RawInput verbatim and returns the change generation.
// No validation or length limit applies.
func (s *State) SetInput(text string) uint64 {
	s.RawInput = text
	s.changes++
	return s.changes
}

// IsLatestChange reports whether gen is still the newest input change.
func (s *State) IsLatestChange(gen uint64) bool {
	return gen == s.changes
}

// Begin starts a conversion of text. Whitespace-only text clears the output
// and returns false: no request must be sent. Otherwise the loading flag is
// raised and the ticket for the request is returned.
func (s *State) Begin(text string) (Ticket, bool) {
	if strings.TrimSpace(text) == "" {
		s.ConvertedOutput = ""
		if s.policy == DiscardStale {
			s.invalidate()
		}
		return Ticket{}, false
	}

	s.seq++
	s.ConversionInFlight = true
	return Ticket{Seq: s.seq, Text: text}, true
}

// Finish records the outcome of the request identified by t and reports
// whether it changed ConvertedOutput.
func (s *State) Finish(t Ticket, converted string, err error) bool {
	stale := t.Seq != s.seq

	if s.policy == DiscardStale && stale {
		logging.Debugf("discarding stale result #%d for %q", t.Seq, t.Text)
		return false
	}

	s.ConversionInFlight = false
	s.ConvertedOutput = Resolve(t.Text, converted, err)
	return true
}

// Clear resets both strings. Requests already in flight are not cancelled;
// under DiscardStale their results are ignored when they arrive.
func (s *State) Clear() {
	s.RawInput = ""
	s.ConvertedOutput = ""
	s.changes++
	if s.policy == DiscardStale {
		s.invalidate()
	}
}

func (s *State) invalidate() {
	s.seq++
	s.ConversionInFlight = false
}

// CopyOutput writes ConvertedOutput to w. It returns the activation
// generation and true when the copy feedback was raised. Empty output is a
// no-op; a failed write is logged and leaves the feedback off.
func (s *State) CopyOutput(w Writer) (uint64, bool) {
	if s.ConvertedOutput == "" {
		return 0, false
	}

	if err := w.Write(s.ConvertedOutput); err != nil {
		logging.Errorf("clipboard write failed: %v", err)
		return 0, false
	}

	s.copies++
	s.CopyFeedbackActive = true
	return s.copies, true
}

// ResetCopyFeedback lowers the copy feedback raised by activation gen. A
// reset for an older activation is ignored.
func (s *State) ResetCopyFeedback(gen uint64) {
	if gen == s.copies {
		s.CopyFeedbackActive = false
	}
}

// Resolve picks the text to display for a finished request: the candidate on
// success, otherwise the original text. Transport and decoding failures are
// logged; a plain non-SUCCESS answer is not.
func Resolve(text, converted string, err error) string {
	if err == nil {
		return converted
	}
	if !errors.Is(err, translit.ErrNotSuccess) {
		logging.Errorf("transliteration API error: %v", err)
	}
	return text
}

// ConvertOnce runs a single conversion outside any view, with the same
// empty-input and fallback rules as the view.
func ConvertOnce(ctx context.Context, tr translit.Transliterator, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	converted, err := tr.Transliterate(ctx, text)
	return Resolve(text, converted, err)
}
