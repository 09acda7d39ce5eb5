package toml

import "time"

// StringKind identifies which of the four TOML string flavors a Str item
// used. Each has a fixed pair of delimiters.
type StringKind int

const (
	StringSLB StringKind = iota // "…"
	StringMLB                   // """…"""
	StringSLL                   // '…'
	StringMLL                   // '''…'''
)

func (k StringKind) delimiters() (open, close string) {
	switch k {
	case StringMLB:
		return `"""`, `"""`
	case StringSLL:
		return `'`, `'`
	case StringMLL:
		return `'''`, `'''`
	default:
		return `"`, `"`
	}
}

// Discriminant is the variant tag of an Item, used to compare kinds cheaply
// for array-homogeneity checks. WS/Comment are never compared against
// value discriminants since is_homogeneous filters them out first.
type Discriminant int

const (
	DiscWS Discriminant = iota
	DiscComment
	DiscInteger
	DiscFloat
	DiscBool
	DiscDateTime
	DiscArray
	DiscTable
	DiscInlineTable
	DiscString
	DiscAoT
	DiscNone
)

// Item is the tagged union of all document nodes. Concrete variants are the
// pointer types below; Go has no sum types, so exhaustive behavior is
// implemented with type switches over this interface rather than a
// discriminant field, per the identity-predicate functions at the bottom of
// this file.
type Item interface {
	AsString() string
	Discriminant() Discriminant
}

// WSItem is a pure whitespace span; it may contain multiple newlines and
// carries no Trivia of its own.
type WSItem struct {
	Text string
}

func (i *WSItem) AsString() string { return i.Text }
func (i *WSItem) Discriminant() Discriminant { return DiscWS }

// CommentItem is a standalone comment line. CommentWS is unused for a
// standalone comment (it is always empty); Indent/Comment/Trail carry the
// line's shape.
type CommentItem struct {
	Meta Trivia
}

func (i *CommentItem) AsString() string {
	return i.Meta.Indent + "#" + i.Meta.Comment + i.Meta.Trail
}
func (i *CommentItem) Discriminant() Discriminant { return DiscComment }

// IntegerItem is a decimal integer literal.
type IntegerItem struct {
	Value int64
	Raw   string
	Meta  Trivia
}

func (i *IntegerItem) AsString() string { return i.Raw }
func (i *IntegerItem) Discriminant() Discriminant { return DiscInteger }

// FloatItem is a decimal float literal.
type FloatItem struct {
	Value float64
	Raw   string
	Meta  Trivia
}

func (i *FloatItem) AsString() string { return i.Raw }
func (i *FloatItem) Discriminant() Discriminant { return DiscFloat }

// BoolItem is a true/false literal.
type BoolItem struct {
	Value bool
	Meta  Trivia
}

func (i *BoolItem) AsString() string {
	if i.Value {
		return "true"
	}
	return "false"
}
func (i *BoolItem) Discriminant() Discriminant { return DiscBool }

// DateTimeItem is an RFC 3339 offset date-time literal.
type DateTimeItem struct {
	Value time.Time
	Raw   string
	Meta  Trivia
}

func (i *DateTimeItem) AsString() string { return i.Raw }
func (i *DateTimeItem) Discriminant() Discriminant { return DiscDateTime }

// StrItem is a string literal in any of the four flavors. Value is the
// logical (decoded) content; Original is the exact bytes between
// delimiters, used for lossless serialization.
type StrItem struct {
	Kind     StringKind
	Value    string
	Original string
	Meta     Trivia
}

func (i *StrItem) AsString() string {
	open, close := i.Kind.delimiters()
	return open + i.Original + close
}
func (i *StrItem) Discriminant() Discriminant { return DiscString }

// ArrayItem is an ordered sequence of Items, which may include interleaved
// WS/Comment items for fidelity.
type ArrayItem struct {
	Items []Item
	Meta  Trivia
}

func (i *ArrayItem) AsString() string {
	s := "["
	for _, it := range i.Items {
		s += it.AsString()
	}
	return s + "]"
}
func (i *ArrayItem) Discriminant() Discriminant { return DiscArray }

// isHomogeneous reports whether all value-like elements of an array share a
// discriminant; WS and Comment elements do not count.
func (i *ArrayItem) isHomogeneous() bool {
	seen := -1
	for _, it := range i.Items {
		d := it.Discriminant()
		if d == DiscWS || d == DiscComment {
			continue
		}
		if seen == -1 {
			seen = int(d)
		} else if seen != int(d) {
			return false
		}
	}
	return true
}

// TableItem is a [name] or [[name]] header's body. The header itself is
// rendered by the owning Container from the entry's Key, not by the item.
type TableItem struct {
	IsAoTElem bool
	Body      *Container
	Meta      Trivia
}

func (i *TableItem) AsString() string { return i.Body.AsString() }
func (i *TableItem) Discriminant() Discriminant { return DiscTable }

// Append adds a keyed entry to the table's body, defaulting the entry's
// trail to a newline so the rendered body stays line-per-entry.
func (i *TableItem) Append(key *Key, item Item) error {
	if meta := itemMeta(item); meta != nil && meta.Trail == "" {
		meta.Trail = defaultNL
	}
	return i.Body.Append(key, item)
}

// InlineTableItem is a { k = v, ... } value. Interior whitespace and commas
// are held as keyless WS entries in Body, so serialization walks the body
// verbatim instead of inventing separators.
type InlineTableItem struct {
	Body *Container
	Meta Trivia
}

func (i *InlineTableItem) AsString() string {
	s := "{"
	for _, e := range i.Body.body {
		if e.Key == nil {
			s += e.Item.AsString()
			continue
		}
		meta := itemMeta(e.Item)
		var indent, suffix string
		if meta != nil {
			indent, suffix = meta.Indent, meta.renderSuffix()
		}
		s += indent + e.Key.AsString() + e.Key.Sep() + e.Item.AsString() + suffix
	}
	return s + "}"
}

func (i *InlineTableItem) Discriminant() Discriminant { return DiscInlineTable }

// Append adds a keyed entry, clearing any newline trail (newlines are not
// valid inside braces) and inserting a ", " separator before every entry
// after the first.
func (i *InlineTableItem) Append(key *Key, item Item) error {
	if meta := itemMeta(item); meta != nil {
		meta.Trail = ""
	}
	if key != nil && len(i.Body.index) > 0 {
		if err := i.Body.Append(nil, &WSItem{Text: ", "}); err != nil {
			return err
		}
	}
	return i.Body.Append(key, item)
}

// AoTItem is an array-of-tables group, held as a list of segments: each
// segment is one contiguous run of [[name]] blocks in source order. An AoT
// broken up by unrelated tables has more than one segment; the extra
// segments are rendered in place by aotSegmentItem entries the merging
// Container plants at the position where each later run appeared.
type AoTItem struct {
	key      *Key
	Segments [][]*TableItem
	// Trailing segments rendered by aotSegmentItem body entries rather
	// than at the keyed entry's own position.
	proxied int
}

// Tables returns every table element across all segments, in source order.
func (i *AoTItem) Tables() []*TableItem {
	var out []*TableItem
	for _, seg := range i.Segments {
		out = append(out, seg...)
	}
	return out
}

// renderSegment renders one segment's tables, header included, using the
// key recorded when the AoT was appended to its container.
func (i *AoTItem) renderSegment(seg int) string {
	s := ""
	for _, t := range i.Segments[seg] {
		s += t.Meta.Indent + "[[" + i.key.AsString() + "]]" + t.Meta.renderSuffix() + t.Body.AsString()
	}
	return s
}

func (i *AoTItem) AsString() string {
	if i.key == nil {
		s := ""
		for _, t := range i.Tables() {
			s += t.AsString()
		}
		return s
	}
	s := ""
	for seg := range i.Segments {
		s += i.renderSegment(seg)
	}
	return s
}
func (i *AoTItem) Discriminant() Discriminant { return DiscAoT }

// aotSegmentItem marks the body position of a non-adjacent AoT segment.
// The keyed AoT entry renders only the segments that appeared at its own
// position; each later run renders here, where it occurred in the source.
type aotSegmentItem struct {
	owner *AoTItem
	seg   int
}

func (i *aotSegmentItem) AsString() string { return i.owner.renderSegment(i.seg) }
func (i *aotSegmentItem) Discriminant() Discriminant { return DiscNone }

// NoneItem is the tombstone left behind by Container.Remove.
type NoneItem struct{}

func (i *NoneItem) AsString() string { return "" }
func (i *NoneItem) Discriminant() Discriminant { return DiscNone }

// Append adds child under key inside any container-like item: keyed into a
// Table or InlineTable body, keyless onto an Array (where homogeneity is
// re-checked). Every other variant rejects the operation.
func Append(it Item, key *Key, child Item) error {
	switch v := it.(type) {
	case *TableItem:
		return v.Append(key, child)
	case *InlineTableItem:
		return v.Append(key, child)
	case *ArrayItem:
		if key != nil {
			return &apiWrongItemError{Op: "append keyed entry to array"}
		}
		v.Items = append(v.Items, child)
		if !v.isHomogeneous() {
			v.Items = v.Items[:len(v.Items)-1]
			return &mixedArrayTypesError{}
		}
		return nil
	default:
		return &apiWrongItemError{Op: "append"}
	}
}

// --- identity predicates over the Item variants ---

func IsValue(it Item) bool {
	switch it.Discriminant() {
	case DiscWS, DiscComment, DiscNone:
		return false
	default:
		return true
	}
}

func IsTrivia(it Item) bool {
	switch it.Discriminant() {
	case DiscWS, DiscComment:
		return true
	default:
		return false
	}
}

func IsWS(it Item) bool { _, ok := it.(*WSItem); return ok }
func IsComment(it Item) bool { _, ok := it.(*CommentItem); return ok }
func IsInteger(it Item) bool { _, ok := it.(*IntegerItem); return ok }
func IsFloat(it Item) bool { _, ok := it.(*FloatItem); return ok }
func IsBool(it Item) bool { _, ok := it.(*BoolItem); return ok }
func IsDateTime(it Item) bool { _, ok := it.(*DateTimeItem); return ok }
func IsString(it Item) bool { _, ok := it.(*StrItem); return ok }
func IsArray(it Item) bool { _, ok := it.(*ArrayItem); return ok }
func IsTable(it Item) bool { _, ok := it.(*TableItem); return ok }
func IsInlineTable(it Item) bool { _, ok := it.(*InlineTableItem); return ok }
func IsAoT(it Item) bool { _, ok := it.(*AoTItem); return ok }
func IsNone(it Item) bool { _, ok := it.(*NoneItem); return ok }

// itemMeta returns the Trivia carried by standalone comments and value-like
// items, or nil for WS/AoT/None, which carry none of their own.
func itemMeta(it Item) *Trivia {
	switch v := it.(type) {
	case *CommentItem:
		return &v.Meta
	case *IntegerItem:
		return &v.Meta
	case *FloatItem:
		return &v.Meta
	case *BoolItem:
		return &v.Meta
	case *DateTimeItem:
		return &v.Meta
	case *StrItem:
		return &v.Meta
	case *ArrayItem:
		return &v.Meta
	case *TableItem:
		return &v.Meta
	case *InlineTableItem:
		return &v.Meta
	default:
		return nil
	}
}
