package huffman

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	report, err := Run([]byte("abracadabra"), nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	expectEntries := []Entry{
		{Symbol: 'a', Freq: 5, Code: Bits{0}},
		{Symbol: 'b', Freq: 2, Code: Bits{1, 1, 0}},
		{Symbol: 'r', Freq: 2, Code: Bits{1, 1, 1}},
		{Symbol: 'c', Freq: 1, Code: Bits{1, 0, 0}},
		{Symbol: 'd', Freq: 1, Code: Bits{1, 0, 1}},
	}
	if !reflect.DeepEqual(expectEntries, report.Entries) {
		t.Errorf("wrong entries:\n\texpect: %v\n\tactual: %v", expectEntries, report.Entries)
	}
	if expect, actual := "01101110100010101101110", report.Encoded.String(); expect != actual {
		t.Errorf("wrong encoding:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if expect, actual := "abracadabra", report.DecodedString(); expect != actual {
		t.Errorf("wrong decoding:\n\texpect: %s\n\tactual: %s", expect, actual)
	}

	expectReport := strings.Join([]string{
		"Symbol  Frequency  Code\n",
		"'a'     5          0\n",
		"'b'     2          110\n",
		"'r'     2          111\n",
		"'c'     1          100\n",
		"'d'     1          101\n",
		"\n",
		"Encoded: 01101110100010101101110\n",
		"Decoded: abracadabra\n",
		"Size: 88 bits in, 23 bits out (3 bytes packed)\n",
	}, "")

	var buf strings.Builder
	_, _ = report.WriteTo(&buf)
	actualReport := buf.String()
	if expectReport != actualReport {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectReport, actualReport)
	}
}

func TestRun_Canonical(t *testing.T) {
	report, err := Run([]byte("abracadabra"), &Options{Canonical: true})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if expect, actual := "01001110101011001001110", report.Encoded.String(); expect != actual {
		t.Errorf("wrong encoding:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if expect, actual := "abracadabra", report.DecodedString(); expect != actual {
		t.Errorf("wrong decoding:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestRun_Empty(t *testing.T) {
	for _, o := range []*Options{nil, {Canonical: true}} {
		report, err := Run(nil, o)
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if len(report.Entries) != 0 || len(report.Encoded) != 0 || len(report.Decoded) != 0 || len(report.Packed) != 0 {
			t.Errorf("expected an empty report, got %+v", report)
		}
	}
}

func TestRun_SingleSymbol(t *testing.T) {
	report, err := Run([]byte("aaaa"), nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if expect, actual := "0000", report.Encoded.String(); expect != actual {
		t.Errorf("wrong encoding:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if expect, actual := "aaaa", report.DecodedString(); expect != actual {
		t.Errorf("wrong decoding:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestStageError(t *testing.T) {
	err := error(&StageError{Stage: "decode", Err: ErrTruncatedStream})
	if expect, actual := "decode: bit stream ends mid-code", err.Error(); expect != actual {
		t.Errorf("expected %q, got %q", expect, actual)
	}
	if !errors.Is(err, ErrTruncatedStream) {
		t.Errorf("StageError does not unwrap to its cause")
	}
}
