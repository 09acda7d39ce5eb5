package toml

import "strconv"

// Indexing is intentionally finite rather than a recursive trait-object
// hierarchy: arrays and AoTs index by position, tables and inline tables by
// key. Each case is enumerated explicitly instead of threading a generic
// Index interface through every Item variant.

// Index returns the i-th value-like item of the document's root
// container, skipping trivia.
func (d *Document) Index(i int) (Item, error) {
	return d.root.Index(i)
}

// IndexKey returns the live item stored under key at the document's root.
func (d *Document) IndexKey(key string) (Item, error) {
	it, ok := d.root.Get(key)
	if !ok {
		return nil, &nonExistentKeyError{Key: key}
	}
	return it, nil
}

// Index returns the i-th value-like item in the container, in source
// order, skipping WS/Comment/tombstones.
func (c *Container) Index(i int) (Item, error) {
	n := 0
	for _, e := range c.body {
		if !IsValue(e.Item) {
			continue
		}
		if n == i {
			return e.Item, nil
		}
		n++
	}
	return nil, &nonExistentKeyError{Key: strconv.Itoa(i)}
}

// ArrayIndex returns the i-th value-like element of an array, skipping any
// interleaved whitespace and comments.
func ArrayIndex(it Item, i int) (Item, error) {
	arr, ok := it.(*ArrayItem)
	if !ok {
		return nil, &apiWrongItemError{Op: "index by position"}
	}
	n := 0
	for _, el := range arr.Items {
		if !IsValue(el) {
			continue
		}
		if n == i {
			return el, nil
		}
		n++
	}
	return nil, &nonExistentKeyError{Key: strconv.Itoa(i)}
}

// AoTIndex returns the i-th table element of an array-of-tables, counting
// across segments in source order.
func AoTIndex(it Item, i int) (*TableItem, error) {
	aot, ok := it.(*AoTItem)
	if !ok {
		return nil, &apiWrongItemError{Op: "index by position"}
	}
	tables := aot.Tables()
	if i < 0 || i >= len(tables) {
		return nil, &nonExistentKeyError{Key: strconv.Itoa(i)}
	}
	return tables[i], nil
}

// TableIndexKey returns the child stored under key inside a Table or
// InlineTable's body.
func TableIndexKey(it Item, key string) (Item, error) {
	var body *Container
	switch v := it.(type) {
	case *TableItem:
		body = v.Body
	case *InlineTableItem:
		body = v.Body
	default:
		return nil, &apiWrongItemError{Op: "index by key"}
	}
	child, ok := body.Get(key)
	if !ok {
		return nil, &nonExistentKeyError{Key: key}
	}
	return child, nil
}
