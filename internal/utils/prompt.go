package utils

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// PromptPassword prints label and reads a password from the terminal with
// echo disabled. When stdin is not a terminal (piped input, tests) it
// falls back to reading a single line with echo.
func PromptPassword(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}

	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return line, nil
}
