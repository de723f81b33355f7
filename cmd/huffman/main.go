// Command huffman reads one line of text, builds its Huffman code, and prints
// the code table together with the encoded and decoded forms of the line.
package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	huffman "github.com/chronos-tachyon/huffman-text"
	"github.com/chronos-tachyon/huffman-text/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("huffman", flag.ContinueOnError)
	fs.SetOutput(stderr)
	text := fs.String("text", "", "text to encode; if empty, one line is read from standard input")
	canonical := fs.Bool("canonical", false, "use the canonical code with the same code lengths")
	showHex := fs.Bool("hex", false, "also print the packed bits in hexadecimal")
	verbose := fs.Bool("v", false, "log the priority queue and tree")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logg := logger.New(stderr, *verbose)

	input := *text
	if input == "" {
		fmt.Fprint(stdout, "Enter a string to encode: ")
		line, err := readLine(stdin)
		if err != nil {
			logg.Errorf("read input: %v", err)
			return 1
		}
		input = line
	}

	if *verbose {
		dumpStructures(logg, input)
	}

	report, err := huffman.Run([]byte(input), &huffman.Options{Canonical: *canonical})
	if err != nil {
		var se *huffman.StageError
		if errors.As(err, &se) {
			logg.Errorf("stage %q failed: %v", se.Stage, se.Err)
		} else {
			logg.Errorf("%v", err)
		}
		return 1
	}
	logg.Debugf("%d symbols, %d distinct, %d bits", report.InputLen, len(report.Entries), len(report.Encoded))

	fmt.Fprintln(stdout)
	if _, err := report.WriteTo(stdout); err != nil {
		logg.Errorf("write report: %v", err)
		return 1
	}
	if *showHex {
		fmt.Fprintf(stdout, "Packed: %s\n", hex.EncodeToString(report.Packed))
	}
	return 0
}

// readLine returns the first line of r without its line terminator.  Input
// that ends without a newline is returned as-is.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func dumpStructures(logg logger.Logger, input string) {
	freqs := huffman.CountString(input)

	leaves := make([]*huffman.Node, 0, len(freqs))
	for _, symbol := range freqs.Symbols() {
		leaves = append(leaves, huffman.NewLeaf(symbol, freqs[symbol]))
	}
	var buf strings.Builder
	_, _ = huffman.NewPriorityQueue(leaves...).Dump(&buf)
	logg.Debugf("initial queue:\n%s", buf.String())

	buf.Reset()
	_, _ = huffman.BuildTree(freqs).Dump(&buf)
	logg.Debugf("tree:\n%s", buf.String())
}
