package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ptorres/flight-tracker/internal/pkg/amadeus"
)

// Writer persists the raw pre-normalization offer payload to a timestamped
// JSON file so an audit can see exactly what the provider returned without
// re-querying it.
type Writer struct {
	dir string
	now func() time.Time
}

func NewWriter(dir string) *Writer {
	return &Writer{
		dir: dir,
		now: time.Now,
	}
}

// Write serializes the offers verbatim and returns the artifact path.
func (w *Writer) Write(ctx context.Context, query amadeus.SearchQuery, offers []amadeus.Offer) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create archive dir: %w", err)
	}

	name := fmt.Sprintf("flight_offers_%s_%s_%s_%s.json",
		query.Origin, query.Destination, query.DepartureDate,
		w.now().UTC().Format("20060102T150405Z"))
	path := filepath.Join(w.dir, name)

	data, err := json.MarshalIndent(offers, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal offers: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write archive file: %w", err)
	}

	slog.DebugContext(ctx, "archived raw flight offers",
		slog.String("path", path),
		slog.Int("offers", len(offers)))

	return path, nil
}
