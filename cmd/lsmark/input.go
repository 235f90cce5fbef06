package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// inputLines returns args when given, otherwise the lines of r.
func inputLines(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}
