// Package rewrite post-processes serialized snapshot JSON with line-oriented
// text passes. The passes are cosmetic: they rewrite the generic status
// object into a variant-keyed nested object and reflow long flat arrays, but
// never change the logical content of the document. Malformed input is
// passed through rather than rejected; correctness of the data itself is
// owned by the status codec, not by these rewriters.
//
// Both rewriters assume encoder-produced text: stable field order, two-space
// indentation increments, one array element per line, and standard JSON
// comma placement (trailing comma on every object field except the last).
package rewrite

// A Rewriter transforms one serialized text into another.
type Rewriter func(text string) string

// Pipeline applies rewriters in order. Order is significant in general,
// though the two passes shipped here operate on disjoint line ranges.
type Pipeline []Rewriter

// Apply runs every rewriter over text, feeding each one's output to the next.
func (p Pipeline) Apply(text string) string {
	for _, r := range p {
		text = r(text)
	}
	return text
}

// indentUnit is one nesting level of encoder output.
const indentUnit = "  "
