package domain

import "errors"

// ErrRosterCorrupt reports a broken rotation invariant: participant positions
// that are not a contiguous 1..N sequence, or more than one participant on
// duty. It is not recoverable by retrying and stops the orchestrator.
var ErrRosterCorrupt = errors.New("duty roster state is corrupt")
