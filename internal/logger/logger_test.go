package logger

import (
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	type testRow struct {
		name    string
		verbose bool
		expect  string
	}

	testData := [...]testRow{
		{name: "quiet", verbose: false, expect: "huffman: [INFO] a=1\nhuffman: [ERROR] b=2\n"},
		{name: "verbose", verbose: true, expect: "huffman: [DEBUG] c=3\nhuffman: [INFO] a=1\nhuffman: [ERROR] b=2\n"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var buf strings.Builder
			l := New(&buf, row.verbose)
			l.Debugf("c=%d", 3)
			l.Infof("a=%d", 1)
			l.Errorf("b=%d", 2)
			actual := buf.String()
			if row.expect != actual {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, actual)
			}
		})
	}
}
