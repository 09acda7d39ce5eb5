package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/maurice/tomlmodel"
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode",
		Short: "Decode TOML on stdin to BurntSushi-style tagged JSON on stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readAll(os.Stdin)
			if err != nil {
				log.WithError(err).Error("reading stdin")
				return err
			}
			doc, err := parseOrLog(data)
			if err != nil {
				return err
			}
			out, err := json.Marshal(documentToTaggedJSON(doc))
			if err != nil {
				log.WithError(err).Error("marshaling tagged JSON")
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}

// documentToTaggedJSON walks the document's root container and tags every
// scalar value with its TOML type, the shape the toml-test fixture runner
// expects from a decoder under test. The conformance package keeps its own
// copy of this walk; that copy reports integers, floats and datetimes by
// their raw source text instead of the normalised forms produced here.
func documentToTaggedJSON(doc *toml.Document) map[string]any {
	return containerToTagged(doc.Root())
}

func containerToTagged(c *toml.Container) map[string]any {
	out := make(map[string]any)
	for _, key := range c.Keys() {
		if item, ok := c.Get(key); ok {
			out[key] = itemToTagged(item)
		}
	}
	return out
}

func itemToTagged(it toml.Item) any {
	switch v := it.(type) {
	case *toml.IntegerItem:
		return tagged("integer", fmt.Sprintf("%d", v.Value))
	case *toml.FloatItem:
		return tagged("float", formatFloat(v.Value))
	case *toml.BoolItem:
		return tagged("bool", fmt.Sprintf("%t", v.Value))
	case *toml.DateTimeItem:
		return tagged("datetime", v.Value.Format(time.RFC3339))
	case *toml.StrItem:
		return tagged("string", v.Value)
	case *toml.ArrayItem:
		out := make([]any, 0, len(v.Items))
		for _, el := range v.Items {
			if !toml.IsValue(el) {
				continue
			}
			out = append(out, itemToTagged(el))
		}
		return out
	case *toml.InlineTableItem:
		return containerToTagged(v.Body)
	case *toml.TableItem:
		return containerToTagged(v.Body)
	case *toml.AoTItem:
		tables := v.Tables()
		out := make([]any, 0, len(tables))
		for _, t := range tables {
			out = append(out, containerToTagged(t.Body))
		}
		return out
	default:
		return tagged("string", it.AsString())
	}
}

func tagged(typ, val string) map[string]string {
	return map[string]string{"type": typ, "value": val}
}

func formatFloat(f float64) string {
	return fmt.Sprintf("%v", f)
}
