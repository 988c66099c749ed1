package proposal

import (
	"encoding/json"

	"evometa/internal/rewrite"
)

// DefaultArrayField is the snapshot field reflowed into grouped lines.
const DefaultArrayField = "proposalNumbers"

// RenderOptions parameterizes the rewrite pipeline. Zero values select the
// defaults.
type RenderOptions struct {
	ArrayField string
	GroupSize  int
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.ArrayField == "" {
		o.ArrayField = DefaultArrayField
	}
	if o.GroupSize < 1 {
		o.GroupSize = rewrite.DefaultGroupSize
	}
	return o
}

// Render serializes the snapshot into its final JSON shape: a structured
// encode (two-space indent, field order fixed by struct declaration) followed
// by the rewrite pipeline that nests each status object under its variant key
// and reflows the proposal-number index. The result ends with a newline.
func Render(s Snapshot, opts RenderOptions) (string, error) {
	opts = opts.withDefaults()

	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", err
	}

	pipeline := rewrite.Pipeline{
		rewrite.CompactStateBlocks,
		rewrite.ReflowArray(opts.ArrayField, opts.GroupSize),
	}
	return pipeline.Apply(string(raw)) + "\n", nil
}
