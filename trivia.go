package toml

import "runtime"

// Trivia is the per-value decoration record that makes round-tripping
// possible: the exact bytes surrounding a value that carry no semantic
// weight of their own.
type Trivia struct {
	// Indent is the whitespace before the item on its line.
	Indent string
	// CommentWS is the whitespace between the value and a trailing '#'.
	CommentWS string
	// Comment is the comment text starting after '#' (excludes '#' itself).
	Comment string
	// Trail is the trailing spaces and line terminator of the item's own
	// line plus, when present, the leading spaces and line terminator of
	// at most one following line; further blank lines become separate WS
	// items.
	Trail string
}

// defaultNL is the host newline, used when constructing a document or
// Trivia from scratch with no source bytes to imitate. A parsed document
// uses the convention it observed instead, fixed per-document by
// Document.NewlineStyle rather than by any process-wide state, see
// document.go.
var defaultNL = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()

// emptyTrivia returns a zero Trivia using the host default newline as
// Trail.
func emptyTrivia() Trivia {
	return Trivia{Trail: defaultNL}
}

// renderSuffix renders the comment_ws + ("#"+comment) + trail portion of a
// line, the part that follows a value or header.
func (t Trivia) renderSuffix() string {
	if t.Comment != "" {
		return t.CommentWS + "#" + t.Comment + t.Trail
	}
	return t.CommentWS + t.Trail
}
