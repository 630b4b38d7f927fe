package model

import (
	"bytes"
	"strings"
	"testing"
)

func TestBarWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	bar := NewBar(&buf, 4, "Boxes")
	bar.Goto(2)
	bar.Describe("Boxes claimed")
	bar.Close()

	out := buf.String()
	if !strings.Contains(out, "Boxes") {
		t.Fatalf("expected description in %q", out)
	}
	if !strings.Contains(out, "4/4") {
		t.Fatalf("expected finished count in %q", out)
	}
}
