package cli

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"

	"github.com/alapierre/credstore/internal/support"
)

const (
	typeString = "string"
	typeBool   = "bool"
	typeBytes  = "bytes"
)

// value is a secret given on the command line, already decoded.
type value struct {
	kind string
	str  string
	b    bool
	raw  []byte
}

func parseValue(kind, input string) (value, error) {
	v := value{kind: kind}
	switch kind {
	case typeString:
		v.str = input
	case typeBool:
		b, err := strconv.ParseBool(input)
		if err != nil {
			return v, fmt.Errorf("invalid bool %q: %w", input, err)
		}
		v.b = b
	case typeBytes:
		raw, err := base64.StdEncoding.DecodeString(input)
		if err != nil {
			return v, fmt.Errorf("bytes must be base64 encoded: %w", err)
		}
		v.raw = raw
	default:
		return v, fmt.Errorf("unknown value type %q", kind)
	}
	return v, nil
}

func formatBytes(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}

// readValue returns the argument if given, even when empty. Otherwise it
// prompts on a terminal or reads one line from piped stdin.
func readValue(arg *string, key string, nonInteractive bool) (string, error) {
	if arg != nil {
		return *arg, nil
	}
	if support.IsInteractive() {
		if nonInteractive {
			return "", fmt.Errorf("value for %s is required in non-interactive mode", key)
		}
		return support.ReadSecret(fmt.Sprintf("Enter value for %s: ", key))
	}
	return support.ReadLine(os.Stdin)
}
