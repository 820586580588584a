package support

import (
	"strings"
	"testing"
)

func TestReadLineKeepsSpaces(t *testing.T) {
	got, err := ReadLine(strings.NewReader("  secret with spaces \r\nnext line\n"))
	if err != nil {
		t.Fatalf("ReadLine failed: %v", err)
	}
	if got != "  secret with spaces " {
		t.Errorf("Expected surrounding spaces kept, got %q", got)
	}
}

func TestTrimLineEnd(t *testing.T) {
	if got := trimLineEnd(" pass word \n"); got != " pass word " {
		t.Errorf("Expected only the terminator removed, got %q", got)
	}
}
