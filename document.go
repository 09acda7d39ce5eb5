package toml

import "strings"

// Document is a thin wrapper on the root Container adding top-level append
// policy and per-document newline-style tracking. Detecting the newline
// convention per document (rather than relying on a process-wide constant)
// keeps a freshly-appended value consistent with whatever the source file
// already used.
type Document struct {
	root       *Container
	newline    string
	sawNewline bool
}

// NewDocument returns an empty Document using the host default newline
// until a real one is observed by the parser or set explicitly.
func NewDocument() *Document {
	return &Document{root: NewContainer(), newline: defaultNL}
}

// setNewlineStyle records the newline convention observed in the source,
// the first time it is seen. Later appends reuse this convention rather
// than defaulting back to the host style.
func (d *Document) setNewlineStyle(nl string) {
	if d.sawNewline {
		return
	}
	d.newline = nl
	d.sawNewline = true
}

// NewlineStyle reports the newline convention this document uses for
// freshly constructed Trivia.
func (d *Document) NewlineStyle() string {
	return d.newline
}

// Root returns the document's root Container.
func (d *Document) Root() *Container {
	return d.root
}

// Append adds a top-level (key, item) pair. Table-like items
// (TableItem/AoTItem) are appended straight to the end; non-table items are
// inserted before the first table-like item already present, so that a
// scalar added after tables exist still produces syntactically valid TOML
// (a bare key-value line appearing after a [table] header would otherwise
// be read as belonging to that table). A freshly constructed item's
// default trail is rewritten to the document's detected newline style, and
// a separator newline is injected when the document does not already end
// in one.
func (d *Document) Append(key *Key, item Item) error {
	if key != nil {
		if meta := itemMeta(item); meta != nil && meta.Trail == defaultNL {
			meta.Trail = d.newline
		}
	}

	switch item.(type) {
	case *TableItem, *AoTItem:
		if key != nil && !d.endsWithNewline() {
			if err := d.root.Append(nil, &WSItem{Text: d.newline}); err != nil {
				return err
			}
		}
		return d.root.Append(key, item)
	}

	firstTable := -1
	for i, e := range d.root.body {
		switch e.Item.(type) {
		case *TableItem, *AoTItem, *aotSegmentItem:
			firstTable = i
		}
		if firstTable >= 0 {
			break
		}
	}
	if firstTable < 0 {
		if key != nil && !d.endsWithNewline() {
			if err := d.root.Append(nil, &WSItem{Text: d.newline}); err != nil {
				return err
			}
		}
		return d.root.Append(key, item)
	}

	if key != nil {
		if _, exists := d.root.index[key.Logical()]; exists {
			return &duplicateKeyError{Key: key.Logical()}
		}
	}
	newEntry := entry{Key: key, Item: item}
	d.root.body = append(d.root.body[:firstTable], append([]entry{newEntry}, d.root.body[firstTable:]...)...)
	for i := firstTable; i < len(d.root.body); i++ {
		if d.root.body[i].Key != nil {
			d.root.index[d.root.body[i].Key.Logical()] = i
		}
	}
	return nil
}

// endsWithNewline reports whether the document's rendered text, as it
// stands, ends in a line terminator. Tombstones and other empty-rendering
// slots are skipped; an empty document counts as terminated (nothing needs
// separating from it).
func (d *Document) endsWithNewline() bool {
	for i := len(d.root.body) - 1; i >= 0; i-- {
		s := renderEntry(d.root.body[i])
		if s == "" {
			continue
		}
		return s[len(s)-1] == '\n'
	}
	return true
}

// Remove deletes the top-level entry for key.
func (d *Document) Remove(key string) error {
	return d.root.Remove(key)
}

// AsString serializes the document back to text.
func (d *Document) AsString() string {
	return d.root.AsString()
}

// detectNewline inspects src for its first line terminator, returning
// "\r\n" or "\n"; callers fall back to the host default when src contains
// no newline at all.
func detectNewline(src string) string {
	if idx := strings.IndexByte(src, '\n'); idx >= 0 {
		if idx > 0 && src[idx-1] == '\r' {
			return "\r\n"
		}
		return "\n"
	}
	return defaultNL
}
