package recipex

import "context"

// ExtractProgress reports progress during batch extraction.
type ExtractProgress struct {
	Path      string
	Completed int
	Total     int
	Error     error
}

// ExtractProgressFunc is called as corpus files are processed.
type ExtractProgressFunc func(ExtractProgress)

// RecipeStore persists extracted recipe records with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type RecipeStore interface {
	Save(ctx context.Context, recipe *Recipe) error
	Commit() error
	Abort() error
}
