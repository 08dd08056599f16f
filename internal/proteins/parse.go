package proteins

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidRecord = errors.New("invalid protein record")

// ParseSequences reads a JSON list of {"id", "sequence"} records.
func ParseSequences(data []byte) ([]Protein, error) {
	var records []Protein
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse sequences: %w", err)
	}

	for i, p := range records {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: sequence %d has no id", ErrInvalidRecord, i)
		}
	}

	return records, nil
}

// ParseRepeats reads a JSON list of repeat documents. Each document is kept
// whole and keyed by its name.
func ParseRepeats(data []byte) ([]Repeat, error) {
	var docs []json.RawMessage
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parse repeats: %w", err)
	}

	repeats := make([]Repeat, 0, len(docs))
	for i, doc := range docs {
		var head struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(doc, &head); err != nil {
			return nil, fmt.Errorf("%w: repeat %d: %v", ErrInvalidRecord, i, err)
		}
		if head.Name == "" {
			return nil, fmt.Errorf("%w: repeat %d has no name", ErrInvalidRecord, i)
		}

		repeats = append(repeats, Repeat{Name: head.Name, Data: doc})
	}

	return repeats, nil
}
