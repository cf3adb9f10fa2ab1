// Package crawl orchestrates collection of CNES bed tables: link
// discovery, per-page table extraction, retries against the unstable
// registry, and region/national aggregation.
package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/gmfreire/cnesbeds"
)

// Policy bounds retries around one remote fetch-and-parse operation. The
// Timeout field is carried for logging; the fetcher enforces it per
// request. One Policy value is shared by all call sites; the attempt
// counter lives in each Do call, never in the Policy itself.
type Policy struct {
	MaxAttempts int
	Timeout     time.Duration
	Logger      *slog.Logger
}

// NewPolicy creates a Policy from the process configuration.
func NewPolicy(cfg cnesbeds.Config, logger *slog.Logger) *Policy {
	return &Policy{
		MaxAttempts: cfg.MaxAttempts,
		Timeout:     cfg.Timeout,
		Logger:      logger,
	}
}

// Do runs op until it succeeds, fails fatally, or the attempt budget is
// exhausted. Outcomes are classified by error code:
//
//   - nil: success, Do returns immediately.
//   - EUNAVAILABLE, EEMPTY: retryable; both draw on the same counter.
//   - EUNREACHABLE: the host cannot be reached at all; logged at error
//     severity and returned immediately, bypassing the remaining budget.
//   - anything else: fatal, returned immediately (e.g. a malformed row).
//
// When the counter reaches MaxAttempts on a retryable outcome, Do logs
// the failing URL with the configured limits and returns ERETRYLIMIT.
// Concurrent Do calls never share a counter.
func (p *Policy) Do(ctx context.Context, url string, op func(context.Context) error) error {
	attempts := 0
	for {
		err := op(ctx)
		attempts++

		if err == nil {
			return nil
		}

		switch cnesbeds.ErrorCode(err) {
		case cnesbeds.EUNREACHABLE:
			p.log("cannot establish connection with the registry",
				"url", url,
				"error", cnesbeds.ErrorMessage(err),
			)
			return err

		case cnesbeds.EUNAVAILABLE, cnesbeds.EEMPTY:
			if attempts >= p.MaxAttempts {
				p.log("maximum request attempts reached",
					"url", url,
					"maxAttempts", p.MaxAttempts,
					"timeout", p.Timeout,
				)
				return cnesbeds.Errorf(cnesbeds.ERETRYLIMIT,
					"maximum request attempts to url %s: made %d attempts with %s timeout",
					url, p.MaxAttempts, p.Timeout)
			}

			// Check context before retrying
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

		default:
			return err
		}
	}
}

func (p *Policy) log(msg string, args ...any) {
	if p.Logger != nil {
		p.Logger.Error(msg, args...)
	}
}
