// Package status models the review lifecycle of an evolution proposal as a
// closed tagged union, plus the codec that converts it to and from the
// generic "discriminator + fields" JSON object used on the wire.
package status

import "strings"

// State identifies which lifecycle variant a Status carries. The string
// values are the wire discriminators; they are case-sensitive and stable.
type State string

const (
	// StateAwaitingReview indicates the proposal is queued but not scheduled.
	StateAwaitingReview State = "awaitingReview"

	// StateScheduledForReview indicates a review window has been planned.
	StateScheduledForReview State = "scheduledForReview"

	// StateActiveReview indicates the review window is currently open.
	StateActiveReview State = "activeReview"

	// StateAccepted is terminal: the proposal was accepted.
	StateAccepted State = "accepted"

	// StateAcceptedWithRevisions is terminal: accepted pending edits.
	StateAcceptedWithRevisions State = "acceptedWithRevisions"

	// StatePreviewing indicates the implementation preview stage.
	StatePreviewing State = "previewing"

	// StateImplemented is terminal: shipped in the given release.
	StateImplemented State = "implemented"

	// StateReturnedForRevision indicates the proposal went back to its author.
	StateReturnedForRevision State = "returnedForRevision"

	// StateRejected is terminal: the proposal was rejected.
	StateRejected State = "rejected"

	// StateWithdrawn is terminal: withdrawn by the author.
	StateWithdrawn State = "withdrawn"

	// StateError is the extraction/parsing failure sentinel. It is reachable
	// only through decode-time recovery or the explicit error constructors,
	// never as a genuine lifecycle state.
	StateError State = "error"
)

// stateOrder fixes a total order over variants. The order is positional
// (table order) and carries no lifecycle meaning; it exists only so Status
// values can be sorted deterministically.
var stateOrder = map[State]int{
	StateAwaitingReview:        0,
	StateScheduledForReview:    1,
	StateActiveReview:          2,
	StateAccepted:              3,
	StateAcceptedWithRevisions: 4,
	StatePreviewing:            5,
	StateImplemented:           6,
	StateReturnedForRevision:   7,
	StateRejected:              8,
	StateWithdrawn:             9,
	StateError:                 10,
}

// Status is one proposal's review status: exactly one State plus the payload
// fields that variant defines. Values are immutable once constructed and
// comparable with ==. Payload fields not belonging to the active variant are
// always zero.
type Status struct {
	State   State
	Start   string // scheduledForReview, activeReview
	End     string // scheduledForReview, activeReview
	Version string // implemented
	Reason  string // error
}

// AwaitingReview returns the queued-but-unscheduled status.
func AwaitingReview() Status { return Status{State: StateAwaitingReview} }

// ScheduledForReview returns a status with a planned review window.
func ScheduledForReview(start, end string) Status {
	return Status{State: StateScheduledForReview, Start: start, End: end}
}

// ActiveReview returns a status with an open review window.
func ActiveReview(start, end string) Status {
	return Status{State: StateActiveReview, Start: start, End: end}
}

// Accepted returns the terminal accepted status.
func Accepted() Status { return Status{State: StateAccepted} }

// AcceptedWithRevisions returns the terminal accepted-pending-edits status.
func AcceptedWithRevisions() Status { return Status{State: StateAcceptedWithRevisions} }

// Previewing returns the implementation-preview status.
func Previewing() Status { return Status{State: StatePreviewing} }

// Implemented returns the terminal shipped status for the given release.
func Implemented(version string) Status {
	return Status{State: StateImplemented, Version: version}
}

// ReturnedForRevision returns the sent-back-to-author status.
func ReturnedForRevision() Status { return Status{State: StateReturnedForRevision} }

// Rejected returns the terminal rejected status.
func Rejected() Status { return Status{State: StateRejected} }

// Withdrawn returns the terminal withdrawn status.
func Withdrawn() Status { return Status{State: StateWithdrawn} }

// Errored returns the extraction-failure sentinel with the given reason.
func Errored(reason string) Status {
	return Status{State: StateError, Reason: reason}
}

// ExtractionNotAttempted is the sentinel for records whose status extraction
// was never run. It is an ordinary error status distinguished only by its
// fixed reason string.
func ExtractionNotAttempted() Status {
	return Errored("Status extraction not attempted")
}

// ExtractionFailed is the sentinel for records whose status extraction ran
// and failed.
func ExtractionFailed() Status {
	return Errored("Status extraction failed")
}

// IsError reports whether s is the extraction-failure sentinel.
func (s Status) IsError() bool { return s.State == StateError }

// Compare returns -1, 0, or 1 ordering s against other. The order is total
// (variant position, then payload fields) but has no meaning beyond identity:
// Compare(a, b) == 0 exactly when a == b.
func (s Status) Compare(other Status) int {
	if d := stateOrder[s.State] - stateOrder[other.State]; d != 0 {
		if d < 0 {
			return -1
		}
		return 1
	}
	for _, pair := range [][2]string{
		{s.Start, other.Start},
		{s.End, other.End},
		{s.Version, other.Version},
		{s.Reason, other.Reason},
	} {
		if c := strings.Compare(pair[0], pair[1]); c != 0 {
			return c
		}
	}
	return 0
}
