package errors

// Error codes for the metaquot expander
// These codes appear in diagnostics so the harness toolchain can identify
// failures consistently.
//
// Error code ranges:
// E0100-E0199: Scanner/parser errors
// E0200-E0299: Quotation and lifting errors
// E0300-E0399: Signature reification errors
// E0400-E0499: Driver/manifest errors

const (
	// E0100: Syntax error in the unit or a fragment
	ErrorSyntax = "E0100"

	// E0101: Integer literal does not fit its declared width
	ErrorLiteralOverflow = "E0101"

	// E0102: Malformed char literal
	ErrorBadCharLiteral = "E0102"

	// E0200: Marker not recognized at this position
	ErrorUnknownMarker = "E0200"

	// E0201: Quotation marker nested inside a quoted fragment without an escape
	ErrorNestedQuote = "E0201"

	// E0202: Escape tag does not match the sub-grammar of its slot
	ErrorEscapeSlotMismatch = "E0202"

	// E0203: Sequence escape where exactly one item is required
	ErrorSequenceNotAllowed = "E0203"

	// E0204: Escape payload is not a single evaluable fragment of the
	// expected sub-grammar
	ErrorMalformedEscape = "E0204"

	// E0205: Sequence escape inside a pattern-mode lift
	ErrorSequenceInPattern = "E0205"

	// E0300: Signature reification applied to a non-arrow type
	ErrorArrowExpected = "E0300"

	// E0400: Harness-symbol manifest could not be loaded
	ErrorBadManifest = "E0400"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorSyntax:
		return "Source text does not parse under the fragment grammar"
	case ErrorLiteralOverflow:
		return "Integer literal does not fit its declared width"
	case ErrorBadCharLiteral:
		return "Char literal is malformed"
	case ErrorUnknownMarker:
		return "Marker is not recognized at this grammar position"
	case ErrorNestedQuote:
		return "Quotation markers cannot be nested without an escape"
	case ErrorEscapeSlotMismatch:
		return "Escape tag is not valid for the sub-grammar of its slot"
	case ErrorSequenceNotAllowed:
		return "Sequence escape used where exactly one item is required"
	case ErrorMalformedEscape:
		return "Escape payload is not a single evaluable fragment of the expected sub-grammar"
	case ErrorSequenceInPattern:
		return "Sequence escapes cannot be matched in pattern mode"
	case ErrorArrowExpected:
		return "Signature reification requires an arrow type"
	case ErrorBadManifest:
		return "Harness-symbol manifest could not be loaded"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0200" && code < "E0300":
		return "Quotation"
	case code >= "E0300" && code < "E0400":
		return "Reification"
	case code >= "E0400" && code < "E0500":
		return "Driver"
	default:
		return "Unknown"
	}
}
