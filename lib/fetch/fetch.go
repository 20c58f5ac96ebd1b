package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("v2ex.lib.fetch")

// Fetcher is a single strategy for retrieving the raw text of a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// ErrAllFailed is returned by a Chain once every strategy has been
// tried and none produced a response.
var ErrAllFailed = errors.New("every fetch strategy failed")

// Chain tries each fetcher in order and returns the first successful
// body. Strategies are not retried individually.
type Chain []Fetcher

func (c Chain) Fetch(ctx context.Context, url string) (string, error) {
	ctx, span := tracer.Start(ctx, "chain:Fetch")
	defer span.End()

	var errlist []error
	for _, fetcher := range c {
		body, err := fetcher.Fetch(ctx, url)
		if err != nil {
			slog.WarnContext(
				ctx, "fetch strategy failed, falling back",
				"strategy", fmt.Sprintf("%T", fetcher),
				"err", err,
			)
			span.RecordError(err)
			errlist = append(errlist, fmt.Errorf("%T: %w", fetcher, err))
			continue
		}
		return body, nil
	}

	span.SetStatus(codes.Error, "every fetch strategy failed")
	return "", fmt.Errorf("%w: %w", ErrAllFailed, errors.Join(errlist...))
}
