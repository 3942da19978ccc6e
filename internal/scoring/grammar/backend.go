// Package grammar provides grammar checking backends for communication
// scoring. LanguageTool is the primary checker; a small heuristic pattern
// matcher covers the offline case.
package grammar

import "context"

// Issue describes a single grammar problem found in a text.
type Issue struct {
	Message string
	Rule    string
}

// Backend checks a text and returns the grammar issues found.
type Backend interface {
	Check(ctx context.Context, text string) ([]Issue, error)
}

// Fallback tries the primary checker and degrades to the secondary when it
// fails.
type Fallback struct {
	Primary   Backend
	Secondary Backend
}

func NewFallback(primary, secondary Backend) *Fallback {
	return &Fallback{Primary: primary, Secondary: secondary}
}

func (f *Fallback) Check(ctx context.Context, text string) ([]Issue, error) {
	if f.Primary != nil {
		issues, err := f.Primary.Check(ctx, text)
		if err == nil {
			return issues, nil
		}
	}
	return f.Secondary.Check(ctx, text)
}
