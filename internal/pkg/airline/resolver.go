package airline

import (
	"context"
	"log/slog"
)

// Lookup resolves a carrier code against external reference data.
type Lookup interface {
	AirlineName(ctx context.Context, code string) (string, error)
}

// Resolver maps 2-letter carrier codes to human readable airline names.
// It holds no cache; every Resolve re-queries the lookup.
type Resolver struct {
	lookup Lookup
}

func NewResolver(lookup Lookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// Resolve returns the airline's common name for a single carrier code.
// Resolution is best-effort: a failed lookup, unknown code, or empty result
// yields ok == false and the caller falls back to displaying the raw code.
func (r *Resolver) Resolve(ctx context.Context, code string) (string, bool) {
	if code == "" {
		return "", false
	}

	name, err := r.lookup.AirlineName(ctx, code)
	if err != nil {
		slog.WarnContext(ctx, "airline name lookup failed",
			slog.String("carrier_code", code),
			slog.String("error", err.Error()))

		return "", false
	}

	if name == "" {
		return "", false
	}

	return name, true
}
