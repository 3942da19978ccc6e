package similarity

import "context"

// Fallback tries the primary backend and falls back to the secondary when
// the primary fails. Errors from the primary are swallowed on purpose: a
// degraded similarity estimate is better than a failed evaluation.
type Fallback struct {
	Primary   Backend
	Secondary Backend
}

func NewFallback(primary, secondary Backend) *Fallback {
	return &Fallback{Primary: primary, Secondary: secondary}
}

func (f *Fallback) Similarity(ctx context.Context, a, b string) (float64, error) {
	if f.Primary != nil {
		sim, err := f.Primary.Similarity(ctx, a, b)
		if err == nil {
			return sim, nil
		}
	}
	return f.Secondary.Similarity(ctx, a, b)
}
