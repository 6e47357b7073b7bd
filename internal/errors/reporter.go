package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"metaquot/internal/ast"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error ErrorLevel = "error"
	Note  ErrorLevel = "note"
	Help  ErrorLevel = "help"
)

// CompilerError is a structured elaboration-time diagnostic. Every failure in
// this pass is fatal to the compilation unit; the reporter formats them and
// the driver aborts without emitting generated code.
type CompilerError struct {
	Level    ErrorLevel
	Code     string       // Error code like E0202
	Message  string       // Primary error message
	Position ast.Position // Location in source
	Length   int          // Length of the problematic region
	Notes    []string     // Additional context notes
	HelpText string       // Help text for the error
}

// Error implements the error interface so embedding toolchains get a
// catchable channel while the driver keeps the fatal-exit behavior.
func (ce CompilerError) Error() string {
	if ce.Code != "" {
		return fmt.Sprintf("%s[%s]: %s", ce.Level, ce.Code, ce.Message)
	}
	return fmt.Sprintf("%s: %s", ce.Level, ce.Message)
}

// New builds an error-level diagnostic anchored at pos.
func New(code string, pos ast.Position, format string, args ...interface{}) CompilerError {
	return CompilerError{
		Level:    Error,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Position: pos,
		Length:   1,
	}
}

// WithHelp attaches help text to a diagnostic.
func (ce CompilerError) WithHelp(format string, args ...interface{}) CompilerError {
	ce.HelpText = fmt.Sprintf(format, args...)
	return ce
}

// WithNote attaches a context note to a diagnostic.
func (ce CompilerError) WithNote(format string, args ...interface{}) CompilerError {
	ce.Notes = append(ce.Notes, fmt.Sprintf(format, args...))
	return ce
}

// WithSpan widens the underlined region to a full source span.
func (ce CompilerError) WithSpan(span ast.Span) CompilerError {
	ce.Position = span.Start
	if span.End.Line == span.Start.Line && span.End.Column > span.Start.Column {
		ce.Length = span.End.Column - span.Start.Column
	}
	return ce
}

// ErrorReporter handles consistent diagnostic formatting for one source file
type ErrorReporter struct {
	filename string
	lines    []string
}

// NewErrorReporter creates a new error reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError formats a diagnostic with Rust-like styling
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var result strings.Builder

	levelColor := er.getLevelColor(err.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// Header: error[E0202]: message
	if err.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(err.Level)), err.Code, err.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(err.Level)), err.Message))
	}

	// Location line: --> filename:line:column
	lineNumberWidth := er.getLineNumberWidth(err.Position.Line)
	indent := strings.Repeat(" ", lineNumberWidth)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), er.filename, err.Position.Line, err.Position.Column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	// Offending line with underline marker
	if err.Position.Line <= len(er.lines) && err.Position.Line > 0 {
		lineContent := er.lines[err.Position.Line-1]
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", lineNumberWidth, err.Position.Line)),
			dim("│"),
			lineContent))

		marker := er.createMarker(err.Position.Column, err.Length)
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			indent, dim("│"), marker))
	}

	for _, note := range err.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), noteColor("note:"), note))
	}

	if err.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), helpColor("help:"), err.HelpText))
	}

	result.WriteString("\n")
	return result.String()
}

func (er *ErrorReporter) getLevelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func (er *ErrorReporter) createMarker(column, length int) string {
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", max(0, column-1))
	markerColor := color.New(color.FgRed, color.Bold).SprintFunc()
	return spaces + markerColor(strings.Repeat("^", length))
}

func (er *ErrorReporter) getLineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
