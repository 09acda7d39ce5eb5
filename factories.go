package toml

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// This file is the public construction surface for building a Document
// programmatically rather than by parsing source text. The scalar, array and
// table factories return a freshly rendered Item with emptyTrivia() (host
// default newline, no comment) so the caller gets valid, reprintable TOML
// immediately; AoT carries no trivia of its own, and the Parse* functions at
// the end build their Items from source text instead. The parser itself
// never calls these, it builds Items field by field from the bytes it
// observed.

// Integer builds an IntegerItem from v, rendering Raw as a plain decimal.
func Integer(v int64) *IntegerItem {
	return &IntegerItem{Value: v, Raw: strconv.FormatInt(v, 10), Meta: emptyTrivia()}
}

// Float builds a FloatItem from v. Raw always carries a decimal point or an
// exponent so the rendered literal can't be re-read back as an integer.
func Float(v float64) *FloatItem {
	raw := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(raw, ".eE") {
		raw += ".0"
	}
	return &FloatItem{Value: v, Raw: raw, Meta: emptyTrivia()}
}

// Bool builds a BoolItem.
func Bool(v bool) *BoolItem {
	return &BoolItem{Value: v, Meta: emptyTrivia()}
}

// DateTime builds a DateTimeItem, rendering Raw in RFC 3339.
func DateTime(v time.Time) *DateTimeItem {
	return &DateTimeItem{Value: v, Raw: v.Format(time.RFC3339), Meta: emptyTrivia()}
}

// escapeBasicString renders s as the body of a basic ("…") string,
// escaping quotes, backslashes and every control character (tab included,
// though decodeBasicEscapes would accept a raw tab).
func escapeBasicString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			b.WriteString(`\"`)
		case c == '\\':
			b.WriteString(`\\`)
		case c == '\b':
			b.WriteString(`\b`)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\f':
			b.WriteString(`\f`)
		case c == '\r':
			b.WriteString(`\r`)
		case c < 0x20 || c == 0x7F:
			b.WriteString(fmt.Sprintf(`\u%04X`, c))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// String builds an SLB StrItem from v, escaping it as needed. Use
// StringLiteral for a raw ('…') string that carries v unescaped.
func String(v string) *StrItem {
	escaped := escapeBasicString(v)
	return &StrItem{Kind: StringSLB, Value: v, Original: escaped, Meta: emptyTrivia()}
}

// StringLiteral builds an SLL StrItem ('…'), valid only when v contains
// neither a single quote nor a control character other than tab.
func StringLiteral(v string) (*StrItem, error) {
	for i := 0; i < len(v); i++ {
		if v[i] == '\'' || (v[i] < 0x20 && v[i] != '\t') || v[i] == 0x7F {
			return nil, &parseStringError{Raw: v}
		}
	}
	return &StrItem{Kind: StringSLL, Value: v, Original: v, Meta: emptyTrivia()}, nil
}

// Array builds an ArrayItem from value-like items only; WS/Comment
// spacing, if wanted, should be spliced into Items directly afterward.
func Array(items ...Item) (*ArrayItem, error) {
	arr := &ArrayItem{Items: items, Meta: emptyTrivia()}
	if !arr.isHomogeneous() {
		return nil, &mixedArrayTypesError{}
	}
	return arr, nil
}

// Table builds an empty TableItem, ready to have entries Appended to its
// Body.
func Table() *TableItem {
	return &TableItem{Body: NewContainer(), Meta: emptyTrivia()}
}

// InlineTable builds an empty InlineTableItem.
func InlineTable() *InlineTableItem {
	return &InlineTableItem{Body: NewContainer(), Meta: emptyTrivia()}
}

// AoT builds an AoTItem holding the given tables as one contiguous
// segment, marking each as an array-of-tables element.
func AoT(tables ...*TableItem) *AoTItem {
	for _, t := range tables {
		t.IsAoTElem = true
	}
	return &AoTItem{Segments: [][]*TableItem{tables}}
}

// Value infers and builds the appropriate scalar Item from a Go value.
// It accepts the
// handful of concrete types the public API deals in; anything else is a
// caller bug, not a parse error, so it panics like a failed type assertion
// would.
func Value(v any) Item {
	switch x := v.(type) {
	case int:
		return Integer(int64(x))
	case int64:
		return Integer(x)
	case float64:
		return Float(x)
	case bool:
		return Bool(x)
	case string:
		return String(x)
	case time.Time:
		return DateTime(x)
	default:
		panic(fmt.Sprintf("toml.Value: unsupported type %T", v))
	}
}

// KeyValue builds a bare Key and an inferred Item from a Go value in one
// call, the common case for programmatic construction.
func KeyValue(key string, v any) (*Key, Item) {
	return NewKey(key), Value(v)
}

// ParseValue parses src as a single TOML value literal of any kind.
func ParseValue(src string) (Item, error) {
	p := &parser{src: src}
	it, err := p.parseVal()
	if err != nil {
		return nil, wrapParseError(src, p.idx, err)
	}
	for isWS(p.current()) && p.inc() {
	}
	if !p.atEnd() {
		return nil, wrapParseError(src, p.idx, &unexpectedCharError{Char: p.current()})
	}
	if meta := itemMeta(it); meta != nil {
		meta.Trail = ""
	}
	return it, nil
}

// ParseKeyValue parses src as a single "key = value" line, trailing
// comment included.
func ParseKeyValue(src string) (*Key, Item, error) {
	p := &parser{src: src}
	key, val, err := p.parseKeyValue(true)
	if err != nil {
		return nil, nil, wrapParseError(src, p.idx, err)
	}
	if !p.atEnd() {
		return nil, nil, wrapParseError(src, p.idx, &unexpectedCharError{Char: p.current()})
	}
	return key, val, nil
}

// ParseString parses src as a TOML string literal in any of the four
// flavors, failing when src holds a valid value of some other kind.
func ParseString(src string) (*StrItem, error) {
	it, err := ParseValue(src)
	if err != nil {
		return nil, err
	}
	s, ok := it.(*StrItem)
	if !ok {
		return nil, &parseStringError{Raw: src}
	}
	return s, nil
}
