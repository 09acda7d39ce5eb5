package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/maurice/tomlmodel"
	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode",
		Short: "Encode BurntSushi-style tagged JSON on stdin to TOML on stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readAll(os.Stdin)
			if err != nil {
				log.WithError(err).Error("reading stdin")
				return err
			}
			var input map[string]any
			if err := json.Unmarshal(data, &input); err != nil {
				log.WithError(err).Error("parsing input JSON")
				return err
			}
			doc := toml.NewDocument()
			if err := fillContainer(doc.Root(), input); err != nil {
				log.WithError(err).Error("building document")
				return err
			}
			fmt.Print(doc.AsString())
			return nil
		},
	}
}

// fillContainer appends one entry per key of data, sorted for
// deterministic output, to c.
func fillContainer(c *toml.Container, data map[string]any) error {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		item, err := valueToItem(data[k])
		if err != nil {
			return err
		}
		if err := c.Append(toml.NewKey(k), item); err != nil {
			return err
		}
	}
	return nil
}

// valueToItem converts one decoded-JSON value back into an Item. Tagged
// leaves ({"type": ..., "value": ...}) become scalars; any other map
// becomes a Table; a slice becomes either an Array of scalars or, when its
// elements are themselves tables, an AoT.
func valueToItem(v any) (toml.Item, error) {
	switch x := v.(type) {
	case map[string]any:
		if typ, val, ok := asTagged(x); ok {
			return taggedToItem(typ, val)
		}
		t := toml.Table()
		if err := fillContainer(t.Body, x); err != nil {
			return nil, err
		}
		return t, nil
	case []any:
		return sliceToItem(x)
	default:
		return nil, fmt.Errorf("tomlfmt: unsupported JSON value %T", v)
	}
}

func asTagged(m map[string]any) (typ, val string, ok bool) {
	if len(m) != 2 {
		return "", "", false
	}
	t, hasType := m["type"].(string)
	v, hasValue := m["value"].(string)
	return t, v, hasType && hasValue
}

func taggedToItem(typ, val string) (toml.Item, error) {
	switch typ {
	case "string":
		return toml.String(val), nil
	case "integer":
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("tomlfmt: invalid integer %q: %w", val, err)
		}
		return toml.Integer(n), nil
	case "float":
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("tomlfmt: invalid float %q: %w", val, err)
		}
		return toml.Float(f), nil
	case "bool":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return nil, fmt.Errorf("tomlfmt: invalid bool %q: %w", val, err)
		}
		return toml.Bool(b), nil
	case "datetime":
		t, err := time.Parse(time.RFC3339, val)
		if err != nil {
			return nil, fmt.Errorf("tomlfmt: invalid datetime %q: %w", val, err)
		}
		return toml.DateTime(t), nil
	default:
		return nil, fmt.Errorf("tomlfmt: unsupported tagged type %q", typ)
	}
}

func sliceToItem(elems []any) (toml.Item, error) {
	if len(elems) == 0 {
		arr, err := toml.Array()
		return arr, err
	}
	if _, _, ok := firstIsTaggedOrTable(elems[0]); ok {
		tables := make([]*toml.TableItem, 0, len(elems))
		for _, e := range elems {
			m, ok := e.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("tomlfmt: mixed array-of-tables element %T", e)
			}
			t := toml.Table()
			if err := fillContainer(t.Body, m); err != nil {
				return nil, err
			}
			tables = append(tables, t)
		}
		return toml.AoT(tables...), nil
	}

	items := make([]toml.Item, 0, len(elems))
	for _, e := range elems {
		item, err := valueToItem(e)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return toml.Array(items...)
}

// firstIsTaggedOrTable reports whether v is a bare (non-tagged) map,
// identifying an array-of-tables rather than a scalar array.
func firstIsTaggedOrTable(v any) (string, string, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return "", "", false
	}
	if _, _, tagged := asTagged(m); tagged {
		return "", "", false
	}
	return "", "", true
}
