package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (o *options) render(cmd *cobra.Command, v any) error {
	return Render(cmd.OutOrStdout(), v, o.format, o.query)
}

// Render writes v as json or yaml, optionally reduced to the values
// selected by a JSONPath query.
func Render(w io.Writer, v any, format, query string) error {
	doc, err := toDocument(v)
	if err != nil {
		return err
	}

	if query != "" {
		doc, err = jsonpath.Get(query, doc)
		if err != nil {
			return fmt.Errorf("query %q: %w", query, err)
		}
	}

	switch format {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q (expected json|yaml)", format)
	}
}

// toDocument converts v into generic JSON values so queries and the yaml
// encoder see the same field names as the API.
func toDocument(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return doc, nil
}
