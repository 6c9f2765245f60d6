package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/desertthunder/bottles/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup creates a config file and initializes the history database.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if err := shared.CreateConfigFile(configPath); err != nil {
		if _, statErr := os.Stat(configPath); statErr == nil {
			r.logger.Infof("config already exists at %s", configPath)
		} else {
			return fmt.Errorf("failed to create config: %w", err)
		}
	} else {
		r.writePlainln("✓ Created %s", configPath)
		if loaded, err := shared.LoadConfig(configPath); err == nil {
			r.config = loaded
		}
	}

	repo, err := r.history()
	if err != nil {
		return err
	}
	if repo == nil {
		return errors.New("history repository unavailable")
	}

	r.logger.Infof("database ready at %s", r.config.Database.Path)
	return r.writePlainln("✓ History database initialized at %s", r.config.Database.Path)
}
