package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// errInvalidInput signals that at least one input line failed validation.
// The details have already been printed.
var errInvalidInput = errors.New("one or more scrambles are invalid")

// inputScrambles returns args as separate scrambles, or the non-blank lines
// of r when no args are given.
func inputScrambles(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	return readLines(r)
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
