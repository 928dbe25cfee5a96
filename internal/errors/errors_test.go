package errors

import (
	"strings"
	"testing"

	"github.com/objc2swift/transpiler/internal/source"
)

func TestCompilerErrorFormat(t *testing.T) {
	err := NewCompilerError(source.Position{Line: 2, Column: 5}, "cannot resolve type 'Foo'", "let x: Foo\nlet y = 1\n", "Widget.swift")
	out := err.Format(false)
	if !strings.Contains(out, "Widget.swift:2:5") {
		t.Fatalf("expected header with file:line:col, got %q", out)
	}
	if !strings.Contains(out, "cannot resolve type 'Foo'") {
		t.Fatalf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("expected caret indicator, got %q", out)
	}
}

func TestCompilerErrorFormatWithoutFile(t *testing.T) {
	err := NewCompilerError(source.Position{Line: 1, Column: 1}, "boom", "", "")
	out := err.Format(false)
	if !strings.Contains(out, "Error at line 1:1") {
		t.Fatalf("expected line-only header, got %q", out)
	}
}

func TestFormatWithContext(t *testing.T) {
	src := "line1\nline2\nline3\nline4\nline5\n"
	err := NewCompilerError(source.Position{Line: 3, Column: 1}, "oops", src, "f.swift")
	out := err.FormatWithContext(1, false)
	if !strings.Contains(out, "line2") || !strings.Contains(out, "line3") || !strings.Contains(out, "line4") {
		t.Fatalf("expected surrounding context lines, got %q", out)
	}
}

func TestFormatErrorsSingle(t *testing.T) {
	err := NewCompilerError(source.Position{Line: 1, Column: 1}, "oops", "", "f.swift")
	out := FormatErrors([]*CompilerError{err}, false)
	if strings.Contains(out, "Compilation failed with") {
		t.Fatalf("single error should not get the multi-error banner, got %q", out)
	}
}

func TestFormatErrorsMultiple(t *testing.T) {
	errs := []*CompilerError{
		NewCompilerError(source.Position{Line: 1, Column: 1}, "first", "", "f.swift"),
		NewCompilerError(source.Position{Line: 2, Column: 1}, "second", "", "f.swift"),
	}
	out := FormatErrors(errs, false)
	if !strings.Contains(out, "2 error(s)") {
		t.Fatalf("expected error count banner, got %q", out)
	}
	if !strings.Contains(out, "[Error 1 of 2]") || !strings.Contains(out, "[Error 2 of 2]") {
		t.Fatalf("expected per-error headers, got %q", out)
	}
}

func TestFromStringErrorsParsesPosition(t *testing.T) {
	errs := FromStringErrors([]string{"unexpected token at 3:7"}, "", "f.swift")
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if errs[0].Pos.Line != 3 || errs[0].Pos.Column != 7 {
		t.Fatalf("unexpected position: %+v", errs[0].Pos)
	}
	if errs[0].Message != "unexpected token" {
		t.Fatalf("unexpected message: %q", errs[0].Message)
	}
}

func TestFromStringErrorsWithoutPosition(t *testing.T) {
	errs := FromStringErrors([]string{"something broke"}, "", "f.swift")
	if len(errs) != 1 || errs[0].Pos.Line != 0 {
		t.Fatalf("expected zero position for unparseable string, got %+v", errs[0].Pos)
	}
}
