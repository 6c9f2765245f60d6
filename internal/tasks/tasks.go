// package tasks implements performance orchestration: streaming a verse range
// to an output, pacing it to a tempo, and recording it to history.
//
// Operations emit progress updates via channels for non-blocking status reporting to CLI/UI layers.
package tasks

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/desertthunder/bottles/internal/models"
	"github.com/desertthunder/bottles/internal/song"
	"golang.org/x/time/rate"
)

// Recorder persists completed performances. Satisfied by
// repositories.PerformanceRepository; nil disables history.
type Recorder interface {
	Create(p *models.Performance) error
}

// PerformOpts contains configuration for one performance.
type PerformOpts struct {
	Start       uint    // First verse (high end of the range)
	End         uint    // Last verse (low end of the range)
	Tempo       float64 // Verses per second; 0 or negative streams unpaced
	Source      string  // models.SourceCLI or models.SourceTUI
	SkipHistory bool    // Don't record this performance
}

// PerformanceEngine streams verse ranges and records them.
type PerformanceEngine struct {
	recorder Recorder
}

// NewPerformanceEngine creates a PerformanceEngine with the provided recorder.
// A nil recorder is allowed; performances are then never persisted.
func NewPerformanceEngine(recorder Recorder) *PerformanceEngine {
	return &PerformanceEngine{recorder: recorder}
}

// Perform sings the range in opts verse by verse into w, pacing output with a
// rate limiter when a tempo is set, then records the performance. Progress
// updates are emitted per verse; the channel may be nil.
//
// The context cancels pacing between verses. A cancelled performance is not
// recorded.
func (e *PerformanceEngine) Perform(ctx context.Context, progress chan<- ProgressUpdate, w io.Writer, opts PerformOpts) (*models.Performance, error) {
	if opts.End > opts.Start {
		opts.End = opts.Start
	}
	if opts.Source == "" {
		opts.Source = models.SourceCLI
	}

	var limiter *rate.Limiter
	if opts.Tempo > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.Tempo), 1)
	}

	total := int(opts.Start-opts.End) + 1

	for n := int(opts.Start); n >= int(opts.End); n-- {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("performance interrupted: %w", err)
			}
		} else if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("performance interrupted: %w", err)
		}

		verse := strings.Join(song.Verse(uint(n)), "\n")
		if _, err := fmt.Fprintf(w, "%s\n", verse); err != nil {
			return nil, fmt.Errorf("failed to write verse %d: %w", n, err)
		}
		if n > int(opts.End) {
			if _, err := fmt.Fprintln(w); err != nil {
				return nil, fmt.Errorf("failed to write verse separator: %w", err)
			}
		}

		e.sendProgress(progress, ProgressUpdate{
			Phase:   SingVerse,
			Step:    int(opts.Start) - n + 1,
			Total:   total,
			Message: fmt.Sprintf("verse %d", n),
			Verse:   uint(n),
		})
	}

	performance := &models.Performance{
		StartVerse: opts.Start,
		EndVerse:   opts.End,
		VerseCount: uint(total),
		Source:     opts.Source,
	}

	if e.recorder != nil && !opts.SkipHistory {
		e.sendProgress(progress, ProgressUpdate{Phase: Record, Step: 1, Total: 1, Message: "recording performance"})
		if err := e.recorder.Create(performance); err != nil {
			return nil, fmt.Errorf("failed to record performance: %w", err)
		}
	}

	return performance, nil
}

// sendProgress delivers an update without blocking; a slow or absent consumer
// never stalls the performance.
func (e *PerformanceEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}
