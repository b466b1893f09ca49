// Package fieldset tracks which field or variant IDs have already been
// seen while decoding a single record, so a repeated ID can be rejected
// as errs.ErrDuplicateFieldID rather than silently overwritten.
// Last-wins is not a supported mode for record field IDs.
package fieldset

import (
	"github.com/tephrocactus/lbs-go/errs"
)

// Tracker records the set of field IDs seen so far within one record
// decode and rejects a repeat.
type Tracker struct {
	seen map[uint16]struct{}
}

// NewTracker creates an empty tracker, pre-sized for n expected fields.
func NewTracker(n int) *Tracker {
	return &Tracker{seen: make(map[uint16]struct{}, n)}
}

// See records id as seen. It returns errs.ErrDuplicateFieldID if id was
// already recorded.
func (t *Tracker) See(id uint16) error {
	if _, ok := t.seen[id]; ok {
		return errs.ErrDuplicateFieldID
	}
	t.seen[id] = struct{}{}

	return nil
}

// Count returns the number of distinct IDs seen so far.
func (t *Tracker) Count() int {
	return len(t.seen)
}

// Reset clears the tracker, preserving its backing map for reuse across
// successive record decodes.
func (t *Tracker) Reset() {
	for k := range t.seen {
		delete(t.seen, k)
	}
}
