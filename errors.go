package toml

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Use errors.Is to test against these; each concrete
// error type below wraps the sentinel matching its kind so callers can
// write errors.Is(err, ErrDuplicateKey) without caring about the concrete
// type carrying the extra context.
var (
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrNonExistentKey      = errors.New("no such key")
	ErrMixedArrayTypes     = errors.New("mixed types found in array")
	ErrInvalidNumberOrDate = errors.New("invalid number or date format")
	ErrUnexpectedChar      = errors.New("unexpected character")
	ErrUnexpectedEOF       = errors.New("unexpected end of input")
	ErrInvalidCharInString = errors.New("invalid character in string")
	ErrParseString         = errors.New("value is not a string")
	ErrAPIWrongItem        = errors.New("operation not valid for this item")
	ErrInternalParser      = errors.New("internal parser error")
)

// ParseError reports a parse failure with its source position. Line and
// Column are 1-based. It wraps the sentinel error identifying the failure
// kind, so callers can use errors.Is(err, ErrMixedArrayTypes) and similar
// against the error returned from Parse.
type ParseError struct {
	Message string
	Line    int
	Column  int
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("TOML parse error line %d column %d: %s", e.Line, e.Column, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// duplicateKeyError reports an Append onto a key that already has a live
// entry (outside the AoT-merge case, which is not an error).
type duplicateKeyError struct{ Key string }

func (e *duplicateKeyError) Error() string { return fmt.Sprintf("duplicate key: %q", e.Key) }
func (e *duplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// nonExistentKeyError reports a Remove or indexing lookup against a key
// with no live entry.
type nonExistentKeyError struct{ Key string }

func (e *nonExistentKeyError) Error() string { return fmt.Sprintf("no such key: %q", e.Key) }
func (e *nonExistentKeyError) Unwrap() error { return ErrNonExistentKey }

// mixedArrayTypesError reports an array whose value-like elements do not
// all share a discriminant.
type mixedArrayTypesError struct{}

func (e *mixedArrayTypesError) Error() string { return ErrMixedArrayTypes.Error() }
func (e *mixedArrayTypesError) Unwrap() error { return ErrMixedArrayTypes }

// invalidNumberOrDateError reports a numeric-looking token that matched
// neither integer, float, nor RFC 3339 date-time grammar.
type invalidNumberOrDateError struct{ Raw string }

func (e *invalidNumberOrDateError) Error() string {
	return fmt.Sprintf("invalid number or date: %q", e.Raw)
}
func (e *invalidNumberOrDateError) Unwrap() error { return ErrInvalidNumberOrDate }

// unexpectedCharError reports a byte the parser could not classify at the
// start of a value.
type unexpectedCharError struct{ Char byte }

func (e *unexpectedCharError) Error() string {
	return fmt.Sprintf("unexpected character %q", e.Char)
}
func (e *unexpectedCharError) Unwrap() error { return ErrUnexpectedChar }

// unexpectedEOFError reports input that ended mid-production (an
// unterminated string, an unclosed array/inline-table/table header).
type unexpectedEOFError struct{ Context string }

func (e *unexpectedEOFError) Error() string {
	return fmt.Sprintf("unexpected end of input: %s", e.Context)
}
func (e *unexpectedEOFError) Unwrap() error { return ErrUnexpectedEOF }

// invalidCharInStringError reports an unescaped control character or a
// malformed/unknown escape sequence inside a basic string.
type invalidCharInStringError struct{ Detail string }

func (e *invalidCharInStringError) Error() string {
	return fmt.Sprintf("invalid character in string: %s", e.Detail)
}
func (e *invalidCharInStringError) Unwrap() error { return ErrInvalidCharInString }

// parseStringError reports that the String factory was given input that
// parses as a non-string value.
type parseStringError struct{ Raw string }

func (e *parseStringError) Error() string { return fmt.Sprintf("not a string: %q", e.Raw) }
func (e *parseStringError) Unwrap() error { return ErrParseString }

// apiWrongItemError reports an API call made against an Item variant that
// does not support it (e.g. Append on a scalar).
type apiWrongItemError struct{ Op string }

func (e *apiWrongItemError) Error() string {
	return fmt.Sprintf("operation %q not valid for this item", e.Op)
}
func (e *apiWrongItemError) Unwrap() error { return ErrAPIWrongItem }

// internalParserError signals an invariant violation: always a bug, never
// something caller input should be able to trigger.
type internalParserError struct{ Message string }

func (e *internalParserError) Error() string { return "internal parser error: " + e.Message }
func (e *internalParserError) Unwrap() error { return ErrInternalParser }

// lineCol converts a byte offset into src to a 1-based (line, column)
// pair by scanning the input.
func lineCol(src string, idx int) (int, int) {
	if idx > len(src) {
		idx = len(src)
	}
	line, col := 1, 1
	for i := 0; i < idx; i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// wrapParseError wraps err (one of the concrete error types above) with
// the (line, column) derived from idx, so lower-level parse failures
// surface as a ParseError at the point of failure.
func wrapParseError(src string, idx int, err error) error {
	line, col := lineCol(src, idx)
	return &ParseError{Message: err.Error(), Line: line, Column: col, Err: err}
}
