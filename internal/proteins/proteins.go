// Package proteins serves amino acid sequences and CRISPR repeat summaries
// keyed by protein id.
package proteins

import "encoding/json"

// Protein is a sequence record.
type Protein struct {
	ID       string `json:"id"`
	Sequence string `json:"sequence"`
}

// Repeat is the stored repeat summary of a protein. Data holds the whole
// document as imported.
type Repeat struct {
	Name string          `json:"name"`
	Data json.RawMessage `json:"data"`
}
