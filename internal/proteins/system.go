package proteins

import "context"

// System reads protein sequences and repeat summaries.
type System interface {
	// Sequence returns the sequence of id or ErrNotFound.
	Sequence(ctx context.Context, id string) (string, error)

	// Repeats returns the repeat summary of name. A protein without repeats
	// yields a Repeat with nil Data and no error.
	Repeats(ctx context.Context, name string) (*Repeat, error)
}
