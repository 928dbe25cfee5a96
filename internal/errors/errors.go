// Package errors provides error formatting utilities for the transpiler.
// It formats compiler errors with source context, line/column information,
// and visual indicators (carets) pointing to the error location.
package errors

import (
	"fmt"
	"strings"

	"github.com/objc2swift/transpiler/internal/source"
)

// Severity classifies a Diagnostic as fatal to the run or merely informational.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is the shared interface every kind produced while transpiling a
// translation unit implements: a CompilerError for outright parse/collect
// failures, and the narrower kinds below for conditions that stop short of
// a hard failure (a type left unresolved, a pattern match that found no
// transformer, a fixpoint pass that never converged) or that have no
// sensible source position at all.
type Diagnostic interface {
	error
	Severity() Severity
	Position() source.Position
}

// CompilerError represents a single transpilation error with position and context.
type CompilerError struct {
	Message string
	Source  string
	File    string
	Pos     source.Position
}

// NewCompilerError creates a new compiler error.
func NewCompilerError(pos source.Position, message, src, file string) *CompilerError {
	return &CompilerError{
		Pos:     pos,
		Message: message,
		Source:  src,
		File:    file,
	}
}

// Error implements the error interface.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Severity reports that a CompilerError is always fatal to the unit it
// belongs to; warnings use the narrower Diagnostic kinds below instead.
func (e *CompilerError) Severity() Severity { return SeverityError }

// Position implements Diagnostic.
func (e *CompilerError) Position() source.Position { return e.Pos }

// Format formats the error message with source context.
// If color is true, ANSI color codes are used for terminal output.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	// File and position header
	if e.File != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("Error at line %d:%d\n", e.Pos.Line, e.Pos.Column))
	}

	// Extract the relevant source line
	sourceLine := e.getSourceLine(e.Pos.Line)
	if sourceLine != "" {
		// Line number and source
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		// Caret indicator
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m") // Red bold
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m") // Reset
		}
		sb.WriteString("\n")
	}

	// Error message
	if color {
		sb.WriteString("\033[1m") // Bold
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m") // Reset
	}

	return sb.String()
}

// getSourceLine extracts a specific line from the source code.
// Lines are 1-indexed.
func (e *CompilerError) getSourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}

	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}

	return lines[lineNum-1]
}

// getSourceContext extracts multiple lines around the error for context.
// Returns lines from (lineNum - contextBefore) to (lineNum + contextAfter).
func (e *CompilerError) getSourceContext(lineNum, contextBefore, contextAfter int) []string {
	if e.Source == "" {
		return nil
	}

	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return nil
	}

	start := lineNum - contextBefore
	if start < 1 {
		start = 1
	}

	end := lineNum + contextAfter
	if end > len(lines) {
		end = len(lines)
	}

	return lines[start-1 : end]
}

// FormatWithContext formats the error with surrounding source context.
func (e *CompilerError) FormatWithContext(contextLines int, color bool) string {
	var sb strings.Builder

	// File and position header
	if e.File != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("Error at line %d:%d\n", e.Pos.Line, e.Pos.Column))
	}

	// Get context lines
	contextLinesList := e.getSourceContext(e.Pos.Line, contextLines, contextLines)
	if len(contextLinesList) == 0 {
		// Fallback to single line
		return e.Format(color)
	}

	// Calculate starting line number
	startLine := e.Pos.Line - contextLines
	if startLine < 1 {
		startLine = 1
	}

	// Display context
	for i, line := range contextLinesList {
		currentLine := startLine + i
		lineNumStr := fmt.Sprintf("%4d | ", currentLine)

		// Highlight the error line
		if currentLine == e.Pos.Line {
			if color {
				sb.WriteString("\033[1m") // Bold
			}
			sb.WriteString(lineNumStr)
			sb.WriteString(line)
			if color {
				sb.WriteString("\033[0m") // Reset
			}
			sb.WriteString("\n")

			// Caret indicator
			sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
			if color {
				sb.WriteString("\033[1;31m") // Red bold
			}
			sb.WriteString("^")
			if color {
				sb.WriteString("\033[0m") // Reset
			}
			sb.WriteString("\n")
		} else {
			// Context lines (dimmed if color enabled)
			if color {
				sb.WriteString("\033[2m") // Dim
			}
			sb.WriteString(lineNumStr)
			sb.WriteString(line)
			if color {
				sb.WriteString("\033[0m") // Reset
			}
			sb.WriteString("\n")
		}
	}

	// Error message
	sb.WriteString("\n")
	if color {
		sb.WriteString("\033[1m") // Bold
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m") // Reset
	}

	return sb.String()
}

// FormatErrors formats multiple compiler errors.
// Each error is formatted individually with source context.
func FormatErrors(errors []*CompilerError, color bool) string {
	if len(errors) == 0 {
		return ""
	}

	if len(errors) == 1 {
		return errors[0].Format(color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Compilation failed with %d error(s):\n\n", len(errors)))

	for i, err := range errors {
		sb.WriteString(fmt.Sprintf("[Error %d of %d]\n", i+1, len(errors)))
		sb.WriteString(err.Format(color))
		if i < len(errors)-1 {
			sb.WriteString("\n\n")
		}
	}

	return sb.String()
}

// FormatErrorsWithContext formats multiple compiler errors with source context.
func FormatErrorsWithContext(errors []*CompilerError, contextLines int, color bool) string {
	if len(errors) == 0 {
		return ""
	}

	if len(errors) == 1 {
		return errors[0].FormatWithContext(contextLines, color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Compilation failed with %d error(s):\n\n", len(errors)))

	for i, err := range errors {
		sb.WriteString(fmt.Sprintf("[Error %d of %d]\n", i+1, len(errors)))
		sb.WriteString(err.FormatWithContext(contextLines, color))
		if i < len(errors)-1 {
			sb.WriteString("\n\n")
		}
	}

	return sb.String()
}

// TypeResolutionWarning reports that a declared or inferred type could not
// be resolved against the intention graph (an unknown class name, a typedef
// never collected). Transpilation continues, falling back to AnyObject.
type TypeResolutionWarning struct {
	TypeName string
	Pos      source.Position
}

func (w *TypeResolutionWarning) Error() string {
	return fmt.Sprintf("line %d:%d: could not resolve type %q, falling back to AnyObject", w.Pos.Line, w.Pos.Column, w.TypeName)
}

func (w *TypeResolutionWarning) Severity() Severity        { return SeverityWarning }
func (w *TypeResolutionWarning) Position() source.Position { return w.Pos }

// TransformSkipped reports that a call site matched no registered
// invocation transformer and was emitted unchanged (spec §5's "no
// transformer found" fallback, not an error).
type TransformSkipped struct {
	FunctionName string
	Pos          source.Position
}

func (w *TransformSkipped) Error() string {
	return fmt.Sprintf("line %d:%d: no invocation transformer registered for %q, emitted as-is", w.Pos.Line, w.Pos.Column, w.FunctionName)
}

func (w *TransformSkipped) Severity() Severity        { return SeverityWarning }
func (w *TransformSkipped) Position() source.Position { return w.Pos }

// FixpointExceeded reports that Pipeline.RunToFixpoint hit its iteration cap
// before two consecutive passes produced identical output.
type FixpointExceeded struct {
	UnitName   string
	Iterations int
	Pos        source.Position
}

func (e *FixpointExceeded) Error() string {
	return fmt.Sprintf("fixpoint iteration cap (%d) exceeded in translation unit %s", e.Iterations, e.UnitName)
}

func (e *FixpointExceeded) Severity() Severity        { return SeverityError }
func (e *FixpointExceeded) Position() source.Position { return e.Pos }

// Internal reports a condition this repo's own invariants say cannot
// happen (an ast.Node kind the printer has no case for, a Graph lookup
// that a prior Add should have guaranteed). It carries no source position
// because it reflects a bug in the transpiler, not in the input.
type Internal struct {
	Message string
}

func (e *Internal) Error() string            { return "internal error: " + e.Message }
func (e *Internal) Severity() Severity        { return SeverityError }
func (e *Internal) Position() source.Position { return source.Position{} }

// FromStringErrors converts the []string errors a sub-parser accumulates
// (e.g. objcparse.Parser.Errors(), each formatted "message at LINE:COL")
// into CompilerErrors, the same conversion the teacher's compile command
// applies to its analyzer's string errors before formatting them for
// display.
// Position information must be extracted from the error string (format: "message at line:column").
func FromStringErrors(stringErrors []string, source, file string) []*CompilerError {
	errors := make([]*CompilerError, 0, len(stringErrors))

	for _, errStr := range stringErrors {
		// Try to extract position from error string
		pos, message := parseErrorString(errStr)
		errors = append(errors, NewCompilerError(pos, message, source, file))
	}

	return errors
}

// parseErrorString attempts to extract position information from an error string.
// Expected format: "...at LINE:COLUMN" or "message"
func parseErrorString(errStr string) (source.Position, string) {
	// Look for " at LINE:COLUMN" pattern
	atIndex := strings.LastIndex(errStr, " at ")
	if atIndex == -1 {
		// No position information found
		return source.Position{Line: 0, Column: 0}, errStr
	}

	// Extract position part
	posStr := errStr[atIndex+4:] // Skip " at "
	message := strings.TrimSpace(errStr[:atIndex])

	// Parse LINE:COLUMN
	var line, column int
	_, err := fmt.Sscanf(posStr, "%d:%d", &line, &column)
	if err != nil {
		// Failed to parse, return as-is
		return source.Position{Line: 0, Column: 0}, errStr
	}

	return source.Position{Line: line, Column: column}, message
}
