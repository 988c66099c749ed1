// Package proposal defines the extracted proposal record and the snapshot
// document that evometa renders. The packages here deal only with in-memory
// values and strings; file and network I/O belong to the callers.
package proposal

import (
	"context"
	"encoding/json"
	"sync"

	"golang.org/x/sync/errgroup"

	"evometa/internal/status"
)

// Person is an author or review manager reference.
type Person struct {
	Name string `json:"name"`
	Link string `json:"link,omitempty"`
}

// Proposal is one extracted proposal record. Its Status is constructed once,
// either by the codec or by an upstream extraction step, and is immutable
// thereafter.
//
// Title is declared after Status on purpose: the block compactor recognizes
// the end of a status block by the trailing comma on its closing brace, so a
// non-omitted field must always serialize after "status".
type Proposal struct {
	ID            string        `json:"id"`
	Number        int           `json:"number,omitempty"`
	Link          string        `json:"link,omitempty"`
	Status        status.Status `json:"status"`
	Title         string        `json:"title"`
	Summary       string        `json:"summary,omitempty"`
	Authors       []Person      `json:"authors,omitempty"`
	ReviewManager *Person       `json:"reviewManager,omitempty"`
}

// Snapshot is the full metadata document. ProposalNumbers is a flat numeric
// index of every proposal in the snapshot; it is the designated reflow array
// in the rendered output.
type Snapshot struct {
	CreationDate    string     `json:"creationDate,omitempty"`
	Proposals       []Proposal `json:"proposals"`
	ProposalNumbers []int      `json:"proposalNumbers,omitempty"`
}

// DecodeSnapshot parses a serialized snapshot in the generic status shape.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// DecodeResult is the outcome of decoding one record in DecodeAll.
type DecodeResult struct {
	Proposal Proposal
	Err      error
}

// DecodeAll decodes many serialized proposal records concurrently, at most
// limit at a time. Every record is independent, so a codec failure in one is
// recorded in its result and never aborts the others; only context
// cancellation stops the whole batch early.
func DecodeAll(ctx context.Context, payloads map[string][]byte, limit int) (map[string]DecodeResult, error) {
	if limit < 1 {
		limit = 1
	}

	var mu sync.Mutex
	results := make(map[string]DecodeResult, len(payloads))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for name, data := range payloads {
		name, data := name, data
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var p Proposal
			err := json.Unmarshal(data, &p)

			mu.Lock()
			results[name] = DecodeResult{Proposal: p, Err: err}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
