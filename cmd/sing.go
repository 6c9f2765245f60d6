package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/desertthunder/bottles/internal/formatter"
	"github.com/desertthunder/bottles/internal/models"
	"github.com/desertthunder/bottles/internal/shared"
	"github.com/desertthunder/bottles/internal/song"
	"github.com/desertthunder/bottles/internal/tasks"
	"github.com/desertthunder/bottles/internal/verses"
	"github.com/urfave/cli/v3"
)

// resolveRange pushes the raw flag text through the range model so CLI input
// obeys the same clamping and ordering rules as the TUI fields. Missing flags
// fall back to the configured defaults.
func (r *Runner) resolveRange(startRaw, endRaw string) (uint, uint) {
	rng := verses.NewFull()

	if startRaw == "" {
		startRaw = strconv.FormatUint(uint64(r.config.Song.DefaultStart), 10)
	}
	if endRaw == "" {
		endRaw = strconv.FormatUint(uint64(r.config.Song.DefaultEnd), 10)
	}

	rng.SetStart(startRaw)
	rng.SetEnd(endRaw)
	return rng.Bounds()
}

// Sing performs a verse range to stdout or a file.
func (r *Runner) Sing(ctx context.Context, cmd *cli.Command) error {
	start, end := r.resolveRange(cmd.String("start"), cmd.String("end"))
	format := cmd.String("format")
	outputPath := cmd.String("output")
	skipHistory := cmd.Bool("no-history")

	tempo := cmd.Float("tempo")
	if !cmd.IsSet("tempo") {
		tempo = r.config.Song.Tempo
	}

	r.logger.Infof("singing %s", shared.FormatRange(start, end))

	// Formatted exports are rendered whole; pacing only applies to plain
	// streaming output.
	if outputPath != "" || (format != "" && format != formatter.FormatText) {
		if outputPath != "" {
			if err := formatter.WriteToFile(start, end, format, outputPath); err != nil {
				return err
			}
			r.writePlainln("✓ Wrote %s to %s", shared.FormatRange(start, end), outputPath)
		} else {
			data, err := formatter.Export(start, end, format)
			if err != nil {
				return err
			}
			if _, err := r.output.Write(data); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		return r.record(start, end, skipHistory)
	}

	engine := r.performanceEngine(skipHistory)
	opts := tasks.PerformOpts{
		Start:       start,
		End:         end,
		Tempo:       tempo,
		Source:      models.SourceCLI,
		SkipHistory: skipHistory,
	}

	if _, err := engine.Perform(ctx, nil, r.output, opts); err != nil {
		return err
	}

	return nil
}

// Verse prints a single verse of the song.
func (r *Runner) Verse(ctx context.Context, cmd *cli.Command) error {
	raw := cmd.StringArg("number")
	if raw == "" {
		return fmt.Errorf("%w: verse number", shared.ErrMissingArgument)
	}

	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return fmt.Errorf("%w: %q is not a verse number", shared.ErrInvalidArgument, raw)
	}

	for _, line := range song.Verse(uint(n)) {
		if err := r.writePlainln("%s", line); err != nil {
			return err
		}
	}

	return nil
}

// record persists a non-streamed performance (formatted export paths).
func (r *Runner) record(start, end uint, skip bool) error {
	if skip {
		return nil
	}

	repo, err := r.history()
	if err != nil {
		r.logger.Warnf("history disabled: %v", err)
		return nil
	}

	p := &models.Performance{
		StartVerse: start,
		EndVerse:   end,
		VerseCount: start - end + 1,
		Source:     models.SourceCLI,
		SungAt:     time.Now(),
	}

	if err := repo.Create(p); err != nil {
		return fmt.Errorf("failed to record performance: %w", err)
	}

	return nil
}
