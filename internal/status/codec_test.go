package status

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTripEveryVariant(t *testing.T) {
	variants := []Status{
		AwaitingReview(),
		ScheduledForReview("2026-03-01T00:00:00Z", "2026-03-14T00:00:00Z"),
		ActiveReview("2026-03-01T00:00:00Z", "2026-03-14T00:00:00Z"),
		Accepted(),
		AcceptedWithRevisions(),
		Previewing(),
		Implemented("5.9"),
		ReturnedForRevision(),
		Rejected(),
		Withdrawn(),
		Errored("boom"),
	}

	for _, v := range variants {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("%s: marshal failed: %v", v.State, err)
		}
		var back Status
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("%s: unmarshal failed: %v", v.State, err)
		}
		if back != v {
			t.Errorf("%s: round trip changed value: %+v != %+v", v.State, back, v)
		}
	}
}

func TestCodec_EncodeShape(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{AwaitingReview(), `{"state":"awaitingReview"}`},
		{Implemented("5.9"), `{"state":"implemented","version":"5.9"}`},
		{ScheduledForReview("a", "b"), `{"state":"scheduledForReview","start":"a","end":"b"}`},
		{ActiveReview("a", "b"), `{"state":"activeReview","start":"a","end":"b"}`},
		{Errored("why"), `{"state":"error","reason":"why"}`},
		{Accepted(), `{"state":"accepted"}`},
		{Withdrawn(), `{"state":"withdrawn"}`},
	}

	for _, tc := range cases {
		data, err := json.Marshal(tc.status)
		require.NoError(t, err)
		// Byte comparison on purpose: field presence AND order are the wire
		// contract the line rewriters depend on.
		assert.Equal(t, tc.want, string(data), "state %s", tc.status.State)
	}
}

func TestCodec_EncodeEmptyPayloadStillEmitsRequiredFields(t *testing.T) {
	data, err := json.Marshal(Implemented(""))
	require.NoError(t, err)
	assert.Equal(t, `{"state":"implemented","version":""}`, string(data))
}

func TestCodec_UnknownValueRecovers(t *testing.T) {
	var s Status
	err := json.Unmarshal([]byte(`{"state": "bogus"}`), &s)
	require.NoError(t, err, "unknown discriminator must not abort decoding")
	assert.Equal(t, Errored("Unknown status value 'bogus'"), s)
}

func TestCodec_MissingDiscriminator(t *testing.T) {
	var s Status
	err := json.Unmarshal([]byte(`{"version": "5.9"}`), &s)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingDiscriminator)
}

func TestCodec_MissingRequiredField(t *testing.T) {
	cases := []struct {
		input string
		field string
	}{
		{`{"state": "implemented"}`, "version"},
		{`{"state": "scheduledForReview", "end": "b"}`, "start"},
		{`{"state": "scheduledForReview", "start": "a"}`, "end"},
		{`{"state": "activeReview"}`, "start"},
		{`{"state": "error"}`, "reason"},
	}

	for _, tc := range cases {
		var s Status
		err := json.Unmarshal([]byte(tc.input), &s)
		require.Error(t, err, "input %s", tc.input)

		var mfe *MissingFieldError
		require.True(t, errors.As(err, &mfe), "input %s: got %v", tc.input, err)
		assert.Equal(t, tc.field, mfe.Field, "input %s", tc.input)
	}
}

func TestCodec_DecodeIgnoresStrayFields(t *testing.T) {
	var s Status
	err := json.Unmarshal([]byte(`{"state": "accepted", "version": "5.9"}`), &s)
	require.NoError(t, err)
	assert.Equal(t, Accepted(), s, "stray payload fields must not leak into the value")
}
