package rewrite

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// flatArrayDoc builds an encoder-shaped document with n numeric elements,
// one per line, under the given field.
func flatArrayDoc(field string, n int) string {
	var b strings.Builder
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  %q : [\n", field)
	for i := 1; i <= n; i++ {
		comma := ","
		if i == n {
			comma = ""
		}
		fmt.Fprintf(&b, "    %d%s\n", i, comma)
	}
	b.WriteString("  ]\n")
	b.WriteString("}")
	return b.String()
}

func TestReflowArray_GroupsOfTen(t *testing.T) {
	got := ReflowArray("proposalNumbers", 10)(flatArrayDoc("proposalNumbers", 23))

	want := strings.Join([]string{
		`{`,
		`  "proposalNumbers" : [`,
		`    1, 2, 3, 4, 5, 6, 7, 8, 9, 10,`,
		`    11, 12, 13, 14, 15, 16, 17, 18, 19, 20,`,
		`    21, 22, 23`,
		``,
		`  ]`,
		`}`,
	}, "\n")

	if got != want {
		t.Fatalf("unexpected reflow:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestReflowArray_PreservesElements(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 23, 100} {
		got := ReflowArray("proposalNumbers", 10)(flatArrayDoc("proposalNumbers", n))

		var doc struct {
			ProposalNumbers []int `json:"proposalNumbers"`
		}
		if err := json.Unmarshal([]byte(got), &doc); err != nil {
			t.Fatalf("n=%d: reflowed output is not valid JSON: %v\n%s", n, err, got)
		}

		want := make([]int, 0, n)
		for i := 1; i <= n; i++ {
			want = append(want, i)
		}
		if diff := cmp.Diff(want, doc.ProposalNumbers); diff != "" {
			t.Errorf("n=%d: elements changed (-want +got):\n%s", n, diff)
		}
	}
}

func TestReflowArray_IgnoresOtherFields(t *testing.T) {
	input := flatArrayDoc("trackingNumbers", 23)
	if got := ReflowArray("proposalNumbers", 10)(input); got != input {
		t.Fatalf("reflow touched a non-designated field:\nwant:\n%s\ngot:\n%s", input, got)
	}
}

func TestReflowArray_StringElements(t *testing.T) {
	input := strings.Join([]string{
		`  "versions" : [`,
		`    "5.8",`,
		`    "5.9",`,
		`    "6.0"`,
		`  ],`,
	}, "\n")

	want := strings.Join([]string{
		`  "versions" : [`,
		`    "5.8", "5.9", "6.0"`,
		``,
		`  ],`,
	}, "\n")

	if got := ReflowArray("versions", 10)(input); got != want {
		t.Fatalf("unexpected reflow:\nwant:\n%s\ngot:\n%s", want, got)
	}
}
