package support

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ReadSecret prompts on stderr and reads a line without echo.
func ReadSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	byteSecret, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}
	fmt.Fprintln(os.Stderr) // Add a newline after the secret entry
	return trimLineEnd(string(byteSecret)), nil
}

// ReadLine reads one line from r, without the line terminator.
func ReadLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return trimLineEnd(line), nil
}

// trimLineEnd drops the line terminator only; spaces are part of a secret.
func trimLineEnd(s string) string {
	return strings.TrimRight(s, "\r\n")
}
