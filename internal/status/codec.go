package status

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingDiscriminator is returned when the generic status object has no
// "state" key at all. This is fatal to decoding the enclosing record.
var ErrMissingDiscriminator = errors.New(`status object missing "state" discriminator`)

// MissingFieldError is returned when the discriminator names a variant whose
// required payload field is absent from the object.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("status is missing required field %q", e.Field)
}

// wire is the generic tagged JSON shape. Field declaration order fixes the
// emission order (state first, then the variant payload); downstream line
// rewriters depend on that order, not on a JSON parser. Pointers distinguish
// absent fields from empty strings on both encode and decode.
type wire struct {
	State   *string `json:"state,omitempty"`
	Version *string `json:"version,omitempty"`
	Start   *string `json:"start,omitempty"`
	End     *string `json:"end,omitempty"`
	Reason  *string `json:"reason,omitempty"`
}

// MarshalJSON encodes s as the generic tagged object. Only the active
// variant's payload fields are emitted; everything else is omitted, not null.
func (s Status) MarshalJSON() ([]byte, error) {
	state := string(s.State)
	w := wire{State: &state}
	switch s.State {
	case StateScheduledForReview, StateActiveReview:
		start, end := s.Start, s.End
		w.Start, w.End = &start, &end
	case StateImplemented:
		version := s.Version
		w.Version = &version
	case StateError:
		reason := s.Reason
		w.Reason = &reason
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the generic tagged object. An unknown discriminator
// value is not a failure: it is recovered into the error sentinel so the
// enclosing record still decodes.
func (s *Status) UnmarshalJSON(data []byte) error {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.State == nil {
		return ErrMissingDiscriminator
	}

	state := State(*w.State)
	switch state {
	case StateAwaitingReview, StateAccepted, StateAcceptedWithRevisions,
		StatePreviewing, StateReturnedForRevision, StateRejected, StateWithdrawn:
		*s = Status{State: state}
	case StateScheduledForReview, StateActiveReview:
		if w.Start == nil {
			return &MissingFieldError{Field: "start"}
		}
		if w.End == nil {
			return &MissingFieldError{Field: "end"}
		}
		*s = Status{State: state, Start: *w.Start, End: *w.End}
	case StateImplemented:
		if w.Version == nil {
			return &MissingFieldError{Field: "version"}
		}
		*s = Status{State: state, Version: *w.Version}
	case StateError:
		if w.Reason == nil {
			return &MissingFieldError{Field: "reason"}
		}
		*s = Errored(*w.Reason)
	default:
		*s = Errored(fmt.Sprintf("Unknown status value '%s'", *w.State))
	}
	return nil
}
