package main

import (
	"context"

	"github.com/desertthunder/bottles/internal/shared"
	"github.com/urfave/cli/v3"
)

// HistoryList prints recorded performances, newest first.
func (r *Runner) HistoryList(ctx context.Context, cmd *cli.Command) error {
	repo, err := r.history()
	if err != nil {
		return err
	}

	criteria := map[string]any{
		"limit": cmd.Int("limit"),
	}
	if source := cmd.String("source"); source != "" {
		criteria["source"] = source
	}

	performances, err := repo.List(criteria)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(performances, cmd.Bool("pretty"))
	}

	if len(performances) == 0 {
		return r.writePlainln("No performances recorded yet. Try `bottles sing`.")
	}

	for _, p := range performances {
		if err := r.writePlainln("#%d  %s  %d verses  (%s, %s)",
			p.Sequence,
			shared.FormatRange(p.StartVerse, p.EndVerse),
			p.VerseCount,
			p.Source,
			p.SungAt.Format("2006-01-02 15:04"),
		); err != nil {
			return err
		}
	}

	return nil
}

// HistoryClear deletes all recorded performances.
func (r *Runner) HistoryClear(ctx context.Context, cmd *cli.Command) error {
	repo, err := r.history()
	if err != nil {
		return err
	}

	removed, err := repo.Clear()
	if err != nil {
		return err
	}

	r.logger.Infof("cleared %d performances", removed)
	return r.writePlainln("✓ Removed %d performances", removed)
}
