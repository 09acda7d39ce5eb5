package toml

// entry is one (key?, item) slot in a Container's body. Key is nil for
// interleaved WS/Comment items and for tombstones left by Remove.
type entry struct {
	Key  *Key
	Item Item
}

// Container is an ordered body of (key?, item) pairs plus a key→index map
// for lookup, shared by the document root, every Table/InlineTable body,
// and not directly by AoT (whose elements each have their own body).
type Container struct {
	body  []entry
	index map[string]int
}

// NewContainer returns an empty Container.
func NewContainer() *Container {
	return &Container{index: make(map[string]int)}
}

// Append adds a (key, item) pair. A nil key is used for whitespace,
// comments, and tombstones; consecutive WS items with a nil key are
// coalesced into one spanning item. Re-appending an array-of-tables
// header name is a merge, not a duplicate: the incoming segment joins the
// existing AoT entry and renders at the position it occurred, via an
// unkeyed segment marker pushed here.
func (c *Container) Append(key *Key, item Item) error {
	if key == nil {
		if ws, ok := item.(*WSItem); ok && len(c.body) > 0 {
			last := &c.body[len(c.body)-1]
			if last.Key == nil {
				if lastWS, ok := last.Item.(*WSItem); ok {
					lastWS.Text += ws.Text
					return nil
				}
			}
		}
		c.body = append(c.body, entry{Item: item})
		return nil
	}

	if idx, ok := c.index[key.Logical()]; ok {
		existing := c.body[idx].Item
		switch incoming := item.(type) {
		case *TableItem:
			if !incoming.IsAoTElem {
				break
			}
			if aot, ok := existing.(*AoTItem); ok {
				last := len(aot.Segments) - 1
				aot.Segments[last] = append(aot.Segments[last], incoming)
				return nil
			}
			if et, ok := existing.(*TableItem); ok && et.IsAoTElem {
				c.body[idx].Item = &AoTItem{key: key, Segments: [][]*TableItem{{et, incoming}}}
				return nil
			}
		case *AoTItem:
			if aot, ok := existing.(*AoTItem); ok {
				for _, seg := range incoming.Segments {
					aot.Segments = append(aot.Segments, seg)
					aot.proxied++
					c.body = append(c.body, entry{Item: &aotSegmentItem{owner: aot, seg: len(aot.Segments) - 1}})
				}
				return nil
			}
		}
		return &duplicateKeyError{Key: key.Logical()}
	}

	if aot, ok := item.(*AoTItem); ok && aot.key == nil {
		aot.key = key
	}
	c.body = append(c.body, entry{Key: key, Item: item})
	c.index[key.Logical()] = len(c.body) - 1
	return nil
}

// Remove deletes the live entry for key, replacing its slot with a
// tombstone so serialization of that position emits nothing. Removing an
// AoT also tombstones the markers of its non-adjacent segments.
func (c *Container) Remove(key string) error {
	idx, ok := c.index[key]
	if !ok {
		return &nonExistentKeyError{Key: key}
	}
	if aot, ok := c.body[idx].Item.(*AoTItem); ok {
		for i, e := range c.body {
			if seg, ok := e.Item.(*aotSegmentItem); ok && seg.owner == aot {
				c.body[i] = entry{Item: &NoneItem{}}
			}
		}
	}
	c.body[idx] = entry{Item: &NoneItem{}}
	delete(c.index, key)
	return nil
}

// Keys returns the container's live keys in source order.
func (c *Container) Keys() []string {
	out := make([]string, 0, len(c.index))
	for _, e := range c.body {
		if e.Key != nil {
			if _, ok := c.index[e.Key.Logical()]; ok {
				out = append(out, e.Key.Logical())
			}
		}
	}
	return out
}

// Get returns the live item stored under key, if any.
func (c *Container) Get(key string) (Item, bool) {
	idx, ok := c.index[key]
	if !ok {
		return nil, false
	}
	return c.body[idx].Item, true
}

// LastItem returns the most recently appended item, or nil for an empty
// container. After WS coalescing in Append, that is the combined WS item.
func (c *Container) LastItem() Item {
	if len(c.body) == 0 {
		return nil
	}
	return c.body[len(c.body)-1].Item
}

// Iter returns the value-like items in source order, skipping WS, Comment,
// and tombstones.
func (c *Container) Iter() []Item {
	out := make([]Item, 0, len(c.body))
	for _, e := range c.body {
		if IsValue(e.Item) {
			out = append(out, e.Item)
		}
	}
	return out
}

// IterExhaustive returns every item in order, trivia included.
func (c *Container) IterExhaustive() []Item {
	out := make([]Item, 0, len(c.body))
	for _, e := range c.body {
		out = append(out, e.Item)
	}
	return out
}

// Len reports the number of value-like entries (the same count Iter would
// return), used for usize indexing.
func (c *Container) Len() int {
	n := 0
	for _, e := range c.body {
		if IsValue(e.Item) {
			n++
		}
	}
	return n
}

// renderEntry reproduces the exact bytes one body slot contributes.
func renderEntry(e entry) string {
	if e.Key == nil {
		return e.Item.AsString()
	}
	switch v := e.Item.(type) {
	case *TableItem:
		open, close := "[", "]"
		if v.IsAoTElem {
			open, close = "[[", "]]"
		}
		return v.Meta.Indent + open + e.Key.AsString() + close + v.Meta.renderSuffix() + v.Body.AsString()
	case *AoTItem:
		s := ""
		for seg := 0; seg < len(v.Segments)-v.proxied; seg++ {
			s += v.renderSegment(seg)
		}
		return s
	default:
		meta := itemMeta(e.Item)
		var indent, suffix string
		if meta != nil {
			indent, suffix = meta.Indent, meta.renderSuffix()
		}
		return indent + e.Key.AsString() + e.Key.Sep() + e.Item.AsString() + suffix
	}
}

// AsString reproduces the concatenation of the container's body in order:
// the single serialization routine the whole model is built around.
func (c *Container) AsString() string {
	s := ""
	for _, e := range c.body {
		s += renderEntry(e)
	}
	return s
}
