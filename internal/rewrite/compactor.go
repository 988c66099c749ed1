package rewrite

import (
	"regexp"
	"strings"
)

// Line patterns of the generic status block. The separator group tolerates
// both `"key": v` (Go encoder) and `"key" : v` spacing; whichever style the
// discriminator line uses is preserved in the rewritten line.
var (
	statusOpenRe  = regexp.MustCompile(`^\s*"status"(\s*:\s*)\{\s*$`)
	statusCloseRe = regexp.MustCompile(`^\s*\},\s*$`)
	stateLineRe   = regexp.MustCompile(`^(\s*)"state"(\s*:\s*)"([^"]*)",?\s*$`)
)

// compactorState is the scan state of CompactStateBlocks.
type compactorState int

const (
	scanNormal compactorState = iota
	scanInStatusBlock
)

// CompactStateBlocks rewrites every generic status block
//
//	"status" : {
//	  "state" : "<variant>",
//	  "field" : v
//	},
//
// into a nested object keyed by the variant discriminator:
//
//	"status" : {
//	  "<variant>" : {
//	    "field" : v
//	  }
//	},
//
// Fields that precede the discriminator in the source are buffered until the
// discriminator line fixes the rewrite, then flushed one indent level deeper
// with the final field's trailing comma stripped. Fields that follow the
// discriminator pass straight through one indent level deeper. The nested
// object's closing brace takes the discriminator line's own indentation.
//
// A block that closes without a discriminator line is emitted unchanged; the
// pass is idempotent on its own output because the nested form no longer
// contains a "state" line to match.
func CompactStateBlocks(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	state := scanNormal
	var buffered []string
	stateIndent := ""
	discriminatorFound := false

	for _, line := range lines {
		switch state {
		case scanNormal:
			out = append(out, line)
			if statusOpenRe.MatchString(line) {
				state = scanInStatusBlock
				buffered = buffered[:0]
				discriminatorFound = false
			}

		case scanInStatusBlock:
			if statusCloseRe.MatchString(line) {
				if discriminatorFound {
					out = append(out, stateIndent+"}")
				} else {
					// No discriminator ever matched: the block is either
					// already nested or malformed. Flush it untouched.
					out = append(out, buffered...)
				}
				out = append(out, line)
				state = scanNormal
				buffered = buffered[:0]
				discriminatorFound = false
				continue
			}

			if discriminatorFound {
				out = append(out, indentUnit+line)
				continue
			}

			if m := stateLineRe.FindStringSubmatch(line); m != nil {
				indent, sep, value := m[1], m[2], m[3]
				stateIndent = indent
				out = append(out, indent+`"`+value+`"`+sep+"{")
				for i, pending := range buffered {
					demoted := indentUnit + pending
					if i == len(buffered)-1 {
						// The last buffered field becomes the final member
						// of the nested object.
						demoted = strings.TrimSuffix(demoted, ",")
					}
					out = append(out, demoted)
				}
				buffered = buffered[:0]
				discriminatorFound = true
				continue
			}

			// Field ahead of the discriminator: comma handling is unknown
			// until the block's shape is fixed, so hold the line back.
			buffered = append(buffered, line)
		}
	}

	return strings.Join(out, "\n")
}
