package main

import (
	"strings"
	"testing"
)

func TestRun_Stdin(t *testing.T) {
	var stdout, stderr strings.Builder
	code := run(nil, strings.NewReader("abracadabra\nignored\n"), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d; stderr: %s", code, stderr.String())
	}

	actual := stdout.String()
	for _, expect := range []string{
		"Enter a string to encode: ",
		"Symbol",
		"'a'",
		"Decoded: abracadabra\n",
		"Size: 88 bits in, 23 bits out (3 bytes packed)\n",
	} {
		if !strings.Contains(actual, expect) {
			t.Errorf("output missing %q:\n%s", expect, actual)
		}
	}
}

func TestRun_TextFlag(t *testing.T) {
	var stdout, stderr strings.Builder
	code := run([]string{"-text", "aaaa", "-hex", "-canonical"}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d; stderr: %s", code, stderr.String())
	}

	actual := stdout.String()
	for _, expect := range []string{
		"Encoded: 0000\n",
		"Decoded: aaaa\n",
		"Packed: 00\n",
	} {
		if !strings.Contains(actual, expect) {
			t.Errorf("output missing %q:\n%s", expect, actual)
		}
	}
	if strings.Contains(actual, "Enter a string") {
		t.Errorf("prompted despite -text:\n%s", actual)
	}
}

func TestRun_Verbose(t *testing.T) {
	var stdout, stderr strings.Builder
	code := run([]string{"-v", "-text", "abc"}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d; stderr: %s", code, stderr.String())
	}
	for _, expect := range []string{"[DEBUG] initial queue:", "PriorityQueue{", "Tree{"} {
		if !strings.Contains(stderr.String(), expect) {
			t.Errorf("stderr missing %q:\n%s", expect, stderr.String())
		}
	}
}

func TestRun_BadFlag(t *testing.T) {
	var stdout, stderr strings.Builder
	if code := run([]string{"-nope"}, strings.NewReader(""), &stdout, &stderr); code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
}

func TestReadLine(t *testing.T) {
	type testRow struct {
		input  string
		expect string
	}

	testData := [...]testRow{
		{input: "", expect: ""},
		{input: "abc", expect: "abc"},
		{input: "abc\n", expect: "abc"},
		{input: "abc\r\ndef\n", expect: "abc"},
	}
	for _, row := range testData {
		actual, err := readLine(strings.NewReader(row.input))
		if err != nil {
			t.Errorf("readLine(%q) failed: %v", row.input, err)
		}
		if row.expect != actual {
			t.Errorf("readLine(%q):\n\texpect: %q\n\tactual: %q", row.input, row.expect, actual)
		}
	}
}
