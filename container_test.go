package toml

import "testing"

func TestContainerAppendAndGet(t *testing.T) {
	c := NewContainer()
	if err := c.Append(NewKey("a"), Integer(1)); err != nil {
		t.Fatal(err)
	}
	it, ok := c.Get("a")
	if !ok {
		t.Fatalf("expected key a to be present")
	}
	if ii, ok := it.(*IntegerItem); !ok || ii.Value != 1 {
		t.Errorf("a = %#v, want 1", it)
	}
}

func TestContainerDuplicateKeyRejected(t *testing.T) {
	c := NewContainer()
	if err := c.Append(NewKey("a"), Integer(1)); err != nil {
		t.Fatal(err)
	}
	err := c.Append(NewKey("a"), Integer(2))
	if err == nil {
		t.Fatalf("expected duplicate key error")
	}
}

func TestContainerRemove(t *testing.T) {
	c := NewContainer()
	_ = c.Append(NewKey("a"), Integer(1))
	if err := c.Remove("a"); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get("a"); ok {
		t.Errorf("key a should be gone after Remove")
	}
	if err := c.Remove("a"); err == nil {
		t.Errorf("expected nonExistentKeyError removing twice")
	}
}

func TestContainerWSCoalescing(t *testing.T) {
	c := NewContainer()
	_ = c.Append(nil, &WSItem{Text: "\n"})
	_ = c.Append(nil, &WSItem{Text: "\n"})
	if len(c.body) != 1 {
		t.Fatalf("expected adjacent WS items to coalesce, got %d entries", len(c.body))
	}
	ws := c.body[0].Item.(*WSItem)
	if ws.Text != "\n\n" {
		t.Errorf("coalesced WS = %q, want %q", ws.Text, "\n\n")
	}
	if c.LastItem() != ws {
		t.Errorf("LastItem() should return the coalesced WS item")
	}
}

func TestContainerAoTMergeOnAppend(t *testing.T) {
	c := NewContainer()
	t1 := Table()
	t1.IsAoTElem = true
	t2 := Table()
	t2.IsAoTElem = true
	if err := c.Append(NewKey("a"), t1); err != nil {
		t.Fatal(err)
	}
	if err := c.Append(NewKey("a"), t2); err != nil {
		t.Fatal(err)
	}
	it, _ := c.Get("a")
	aot, ok := it.(*AoTItem)
	if !ok || len(aot.Tables()) != 2 {
		t.Fatalf("expected merged AoT of 2, got %#v", it)
	}
}

func TestContainerRemoveBrokenAoTRemovesAllSegments(t *testing.T) {
	doc := mustParse(t, "[[a]]\nx = 1\n\n[b]\ny = 2\n\n[[a]]\nx = 2\n")
	if err := doc.Remove("a"); err != nil {
		t.Fatal(err)
	}
	want := "[b]\ny = 2\n\n"
	if got := doc.AsString(); got != want {
		t.Errorf("AsString() after remove = %q, want %q", got, want)
	}
}

func TestContainerKeysOrder(t *testing.T) {
	c := NewContainer()
	_ = c.Append(NewKey("b"), Integer(1))
	_ = c.Append(NewKey("a"), Integer(2))
	keys := c.Keys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Errorf("Keys() = %v, want source order [b a]", keys)
	}
}

func TestContainerIterSkipsTrivia(t *testing.T) {
	c := NewContainer()
	_ = c.Append(nil, &WSItem{Text: "\n"})
	_ = c.Append(NewKey("a"), Integer(1))
	_ = c.Append(nil, &CommentItem{Meta: Trivia{Comment: "hi"}})
	if got := c.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
	if got := len(c.Iter()); got != 1 {
		t.Errorf("len(Iter()) = %d, want 1", got)
	}
	if got := len(c.IterExhaustive()); got != 3 {
		t.Errorf("len(IterExhaustive()) = %d, want 3", got)
	}
}
