package toml

import (
	"errors"
	"testing"
)

func TestItemDiscriminantIdentityPredicates(t *testing.T) {
	items := []struct {
		item Item
		is   func(Item) bool
	}{
		{&WSItem{}, IsWS},
		{&CommentItem{}, IsComment},
		{&IntegerItem{}, IsInteger},
		{&FloatItem{}, IsFloat},
		{&BoolItem{}, IsBool},
		{&DateTimeItem{}, IsDateTime},
		{&StrItem{}, IsString},
		{&ArrayItem{}, IsArray},
		{&TableItem{}, IsTable},
		{&InlineTableItem{}, IsInlineTable},
		{&AoTItem{}, IsAoT},
		{&NoneItem{}, IsNone},
	}
	for _, tc := range items {
		if !tc.is(tc.item) {
			t.Errorf("%T failed its own identity predicate", tc.item)
		}
	}
}

func TestIsValueExcludesTriviaAndTombstones(t *testing.T) {
	for _, it := range []Item{&WSItem{}, &CommentItem{}, &NoneItem{}} {
		if IsValue(it) {
			t.Errorf("%T should not be a value", it)
		}
	}
	if !IsValue(&IntegerItem{}) {
		t.Errorf("IntegerItem should be a value")
	}
}

func TestArrayIsHomogeneous(t *testing.T) {
	homo := &ArrayItem{Items: []Item{&IntegerItem{Value: 1}, &IntegerItem{Value: 2}}}
	if !homo.isHomogeneous() {
		t.Errorf("array of integers should be homogeneous")
	}
	mixed := &ArrayItem{Items: []Item{&IntegerItem{Value: 1}, &StrItem{}}}
	if mixed.isHomogeneous() {
		t.Errorf("mixed-type array should not be homogeneous")
	}
	withTrivia := &ArrayItem{Items: []Item{&IntegerItem{Value: 1}, &WSItem{Text: " "}, &IntegerItem{Value: 2}}}
	if !withTrivia.isHomogeneous() {
		t.Errorf("interleaved whitespace should not break homogeneity")
	}
}

func TestStrItemAsStringUsesDelimitersByKind(t *testing.T) {
	cases := []struct {
		kind StringKind
		want string
	}{
		{StringSLB, `"abc"`},
		{StringMLB, `"""abc"""`},
		{StringSLL, `'abc'`},
		{StringMLL, `'''abc'''`},
	}
	for _, c := range cases {
		s := &StrItem{Kind: c.kind, Original: "abc"}
		if got := s.AsString(); got != c.want {
			t.Errorf("kind %v: AsString() = %q, want %q", c.kind, got, c.want)
		}
	}
}

func TestAppendOnContainerLikeItems(t *testing.T) {
	tbl := Table()
	if err := Append(tbl, NewKey("a"), Integer(1)); err != nil {
		t.Fatal(err)
	}
	if got := tbl.AsString(); got != "a = 1\n" {
		t.Errorf("table body = %q, want \"a = 1\\n\"", got)
	}

	inline := InlineTable()
	if err := Append(inline, NewKey("x"), Integer(1)); err != nil {
		t.Fatal(err)
	}
	if err := Append(inline, NewKey("y"), Integer(2)); err != nil {
		t.Fatal(err)
	}
	if got := inline.AsString(); got != "{x = 1, y = 2}" {
		t.Errorf("inline table = %q, want \"{x = 1, y = 2}\"", got)
	}

	arr, _ := Array(Integer(1))
	if err := Append(arr, nil, Integer(2)); err != nil {
		t.Fatal(err)
	}
	if err := Append(arr, nil, String("nope")); !errors.Is(err, ErrMixedArrayTypes) {
		t.Errorf("err = %v, want ErrMixedArrayTypes", err)
	}
	if got := len(arr.Items); got != 2 {
		t.Errorf("failed append must not leave the element behind, len = %d", got)
	}
}

func TestAppendOnScalarRejected(t *testing.T) {
	if err := Append(Integer(1), NewKey("a"), Integer(2)); !errors.Is(err, ErrAPIWrongItem) {
		t.Errorf("err = %v, want ErrAPIWrongItem", err)
	}
}

func TestItemMetaNilForWSAndAoT(t *testing.T) {
	if itemMeta(&WSItem{}) != nil {
		t.Errorf("itemMeta(WSItem) should be nil")
	}
	if itemMeta(&AoTItem{}) != nil {
		t.Errorf("itemMeta(AoTItem) should be nil")
	}
	if itemMeta(&IntegerItem{}) == nil {
		t.Errorf("itemMeta(IntegerItem) should not be nil")
	}
}
