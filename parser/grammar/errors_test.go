package grammar

import (
	"strings"
	"testing"
)

// Syntax errors carry the 1-based position of the offending token.
func TestSyntaxErrorPosition(t *testing.T) {
	_, err := ParseString("100m free @1:30\n100m free @bad")
	synErr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T: %v", err, err)
	}
	if synErr.Pos.Line != 2 || synErr.Pos.Column != 12 {
		t.Fatalf("expected error at 2:12, got %d:%d", synErr.Pos.Line, synErr.Pos.Column)
	}
	if !strings.Contains(synErr.Error(), "line 2, column 12") {
		t.Fatalf("unexpected error string %q", synErr.Error())
	}
}

// The filename threads from ParseWithFilename into error positions.
func TestErrorPositionWithFilename(t *testing.T) {
	_, err := ParseWithFilename(strings.NewReader("100m free @bad"), "tuesday.swim")
	synErr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T: %v", err, err)
	}
	if !strings.Contains(synErr.Error(), "tuesday.swim:1:12") {
		t.Fatalf("unexpected error string %q", synErr.Error())
	}
}

// FormatWithSource renders the offending line with a caret under the column.
func TestFormatWithSource(t *testing.T) {
	src := "100m free @1:30\n100m free @bad"
	_, err := ParseString(src)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	out := FormatWithSource(err, src)
	if !strings.Contains(out, "   2 | 100m free @bad") {
		t.Fatalf("missing source line in:\n%s", out)
	}
	caret := "     | " + strings.Repeat(" ", 11) + "^"
	if !strings.Contains(out, caret) {
		t.Fatalf("missing caret line in:\n%s", out)
	}
}

// Errors FormatWithSource does not recognize pass through unchanged.
func TestFormatWithSourcePassthrough(t *testing.T) {
	err := &ValidationError{Msg: "distance must be greater than zero"}
	if out := FormatWithSource(err, "0m free @30s"); out != err.Error() {
		t.Fatalf("expected passthrough, got %q", out)
	}
}

// Lex errors at EOF still render a caret without panicking.
func TestFormatWithSourceAtEOF(t *testing.T) {
	src := "100m /* oops"
	_, err := ParseString(src)
	out := FormatWithSource(err, src)
	if !strings.Contains(out, "unterminated block comment") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("missing caret in:\n%s", out)
	}
}
