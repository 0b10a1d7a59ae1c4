package main

import (
	"fmt"
	"io"
	"strings"
)

// separator is the only character words are split on
const separator = " "

// readInput reads the whole stream before any processing starts
func readInput(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}

// preparse removes newlines from the buffer so line breaks never end up
// inside a word. Lines are joined without a separator.
func preparse(content string, keepNewlines bool) string {
	if keepNewlines {
		return content
	}
	return strings.ReplaceAll(content, "\n", "")
}

// splitWords splits on single spaces. Consecutive spaces yield empty words,
// which are kept so the output reproduces the input spacing.
func splitWords(content string) []string {
	return strings.Split(content, separator)
}
