// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// singCommand performs a verse range
func singCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "sing",
		Usage: "Sing a range of verses",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "start",
				Aliases: []string{"s"},
				Usage:   "First verse of the range (0-99)",
			},
			&cli.StringFlag{
				Name:    "end",
				Aliases: []string{"e"},
				Usage:   "Last verse of the range (0-99)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, markdown or json",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the song sheet to a file instead of stdout",
			},
			&cli.FloatFlag{
				Name:  "tempo",
				Usage: "Verses per second (0 prints everything at once)",
			},
			&cli.BoolFlag{
				Name:  "no-history",
				Usage: "Don't record this performance",
			},
		},
		Action: r.Sing,
	}
}

// verseCommand prints a single verse
func verseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "verse",
		Usage:     "Print a single verse",
		ArgsUsage: "<number>",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "number",
			},
		},
		Action: r.Verse,
	}
}

// tuiCommand returns the top-level TUI command for the interactive verse picker.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive verse picker",
		Action:  r.TUI,
	}
}

// historyCommand handles past performances
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Inspect past performances",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List recorded performances, newest first",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of performances to return",
						Value: 20,
					},
					&cli.StringFlag{
						Name:  "source",
						Usage: "Filter by source (cli or tui)",
					},
				},
				Action: r.HistoryList,
			},
			{
				Name:   "clear",
				Usage:  "Delete all recorded performances",
				Action: r.HistoryClear,
			},
		},
	}
}

// setupCommand handles setup operations for configuration and the database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create config.toml and initialize the history database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}
