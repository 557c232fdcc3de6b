package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

// promptLine prints a prompt and reads a single trimmed line from stdin.
func promptLine(prompt string) (string, error) {
	fmt.Printf("%s: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword prints a prompt and reads a password without echo.
func promptPassword(prompt string) (string, error) {
	fmt.Printf("%s: ", prompt)
	pw, err := readPassword()
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
