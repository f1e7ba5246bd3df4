package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tordrt/schemats/internal/formatter"
)

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	s, res, err := generate(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	if err := formatter.NewSummaryFormatter(cmd.OutOrStdout(), cfg.Generation).Format(s, res); err != nil {
		return fmt.Errorf("failed to format summary: %w", err)
	}
	return nil
}
