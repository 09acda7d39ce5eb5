package toml

import "testing"

func TestDocumentIndexPositional(t *testing.T) {
	doc := mustParse(t, "a = 1\nb = 2\nc = 3\n")
	it, err := doc.Index(1)
	if err != nil {
		t.Fatal(err)
	}
	if ii, ok := it.(*IntegerItem); !ok || ii.Value != 2 {
		t.Errorf("Index(1) = %#v, want 2", it)
	}
}

func TestArrayIndex(t *testing.T) {
	doc := mustParse(t, "a = [10, 20, 30]\n")
	arr, _ := doc.IndexKey("a")
	it, err := ArrayIndex(arr, 2)
	if err != nil {
		t.Fatal(err)
	}
	if ii, ok := it.(*IntegerItem); !ok || ii.Value != 30 {
		t.Errorf("ArrayIndex(2) = %#v, want 30", it)
	}
	if _, err := ArrayIndex(arr, 99); err == nil {
		t.Errorf("expected out-of-range error")
	}
}

func TestAoTIndex(t *testing.T) {
	doc := mustParse(t, "[[a]]\nx = 1\n\n[[a]]\nx = 2\n")
	it, _ := doc.IndexKey("a")
	tbl, err := AoTIndex(it, 1)
	if err != nil {
		t.Fatal(err)
	}
	x, _ := tbl.Body.Get("x")
	if ii, ok := x.(*IntegerItem); !ok || ii.Value != 2 {
		t.Errorf("AoTIndex(1).x = %#v, want 2", x)
	}
}

func TestTableIndexKey(t *testing.T) {
	doc := mustParse(t, "[table]\nname = \"x\"\n")
	tbl, _ := doc.IndexKey("table")
	it, err := TableIndexKey(tbl, "name")
	if err != nil {
		t.Fatal(err)
	}
	if s, ok := it.(*StrItem); !ok || s.Value != "x" {
		t.Errorf("TableIndexKey(name) = %#v, want \"x\"", it)
	}
	if _, err := TableIndexKey(tbl, "missing"); err == nil {
		t.Errorf("expected nonExistentKeyError for missing key")
	}
}

func TestInlineTableIndexKey(t *testing.T) {
	doc := mustParse(t, "a = { x = 1 }\n")
	inline, _ := doc.IndexKey("a")
	it, err := TableIndexKey(inline, "x")
	if err != nil {
		t.Fatal(err)
	}
	if ii, ok := it.(*IntegerItem); !ok || ii.Value != 1 {
		t.Errorf("TableIndexKey(x) = %#v, want 1", it)
	}
}
