package toml

import "testing"

func TestKeyEqualityByLogicalValueOnly(t *testing.T) {
	bare := newKey(KeyBare, "a", "a", " = ")
	basic := newKey(KeyBasic, "a", "a", " = ")
	if !bare.Equal(basic) {
		t.Errorf("keys with the same logical value but different quoting should be equal")
	}
}

func TestKeyAsStringQuoting(t *testing.T) {
	cases := []struct {
		key  *Key
		want string
	}{
		{newKey(KeyBare, "a", "a", ""), "a"},
		{newKey(KeyBasic, "a b", "a b", ""), `"a b"`},
		{newKey(KeyLiteral, "a b", "a b", ""), `'a b'`},
	}
	for _, c := range cases {
		if got := c.key.AsString(); got != c.want {
			t.Errorf("AsString() = %q, want %q", got, c.want)
		}
	}
}

func TestNewKeyDefaults(t *testing.T) {
	k := NewKey("name")
	if k.Kind() != KeyBare {
		t.Errorf("NewKey should produce a bare key")
	}
	if k.Sep() != " = " {
		t.Errorf("NewKey separator = %q, want \" = \"", k.Sep())
	}
}
