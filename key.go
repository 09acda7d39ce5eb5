package toml

// KeyKind distinguishes the three ways a key can be spelled.
type KeyKind int

const (
	KeyBare KeyKind = iota
	KeyBasic
	KeyLiteral
)

// Key is a bare, basic-quoted, or literal-quoted TOML key. Raw retains the
// exact inner bytes as they appeared in the source (without surrounding
// quotes); Sep retains the exact key/value separator bytes. Equality and
// hashing are over the logical key only, so quote style never affects
// identity.
type Key struct {
	kind KeyKind
	key  string
	raw  string
	sep  string
}

// NewKey creates a bare key with the standard " = " separator, the way a
// freshly constructed key-value pair is expected to render.
func NewKey(k string) *Key {
	return &Key{kind: KeyBare, key: k, raw: k, sep: " = "}
}

// newKey builds a Key of the given kind, used by the parser once it has
// extracted the raw text and logical value for a key occurrence.
func newKey(kind KeyKind, logical, raw, sep string) *Key {
	return &Key{kind: kind, key: logical, raw: raw, sep: sep}
}

// Logical returns the value used for equality and map lookups.
func (k *Key) Logical() string { return k.key }

// Raw returns the exact inner bytes of the key as it appeared in the
// source, without quotes.
func (k *Key) Raw() string { return k.raw }

// Sep returns the exact separator bytes between the key and its value.
func (k *Key) Sep() string { return k.sep }

// Kind returns which of Bare/Basic/Literal this key is.
func (k *Key) Kind() KeyKind { return k.kind }

// Equal compares two keys by their logical value only.
func (k *Key) Equal(other *Key) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.key == other.key
}

// AsString renders the key with the quoting appropriate to its kind.
func (k *Key) AsString() string {
	switch k.kind {
	case KeyBasic:
		return `"` + k.raw + `"`
	case KeyLiteral:
		return `'` + k.raw + `'`
	default:
		return k.raw
	}
}
