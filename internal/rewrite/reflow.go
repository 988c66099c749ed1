package rewrite

import (
	"regexp"
	"strings"
)

// DefaultGroupSize is the number of array elements packed onto one visual
// line by ReflowArray.
const DefaultGroupSize = 10

var arrayCloseRe = regexp.MustCompile(`^\s*\],?\s*$`)

// ReflowArray returns a rewriter that reflows the flat one-element-per-line
// array under the named field into grouped lines of groupSize elements. The
// first element of each group keeps its original line (and indentation);
// subsequent elements are whitespace-trimmed and appended after a single
// space, their source trailing commas serving as separators. The closing
// bracket line is preceded by one blank line.
//
// The reflow is purely cosmetic: element values, order, and count are
// untouched, and re-parsing the output yields the original array.
func ReflowArray(field string, groupSize int) Rewriter {
	if groupSize < 1 {
		groupSize = DefaultGroupSize
	}
	openRe := regexp.MustCompile(`^\s*"` + regexp.QuoteMeta(field) + `"\s*:\s*\[\s*$`)

	return func(text string) string {
		lines := strings.Split(text, "\n")
		out := make([]string, 0, len(lines))

		inArray := false
		count := 0

		for _, line := range lines {
			if !inArray {
				out = append(out, line)
				if openRe.MatchString(line) {
					inArray = true
					count = 0
				}
				continue
			}

			if arrayCloseRe.MatchString(line) {
				out = append(out, "", line)
				inArray = false
				count = 0
				continue
			}

			if count%groupSize == 0 {
				out = append(out, line)
			} else {
				out[len(out)-1] += " " + strings.TrimSpace(line)
			}
			count++
		}

		return strings.Join(out, "\n")
	}
}
