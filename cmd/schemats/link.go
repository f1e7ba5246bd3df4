package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tordrt/schemats/internal/formatter"
	"github.com/tordrt/schemats/internal/typescript"
)

func newLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link FILE...",
		Short: "Resolve join placeholders in generated files against table registries",
		Long: `Link rewrites the unresolved join types left in generated files, for example when
foreign keys point at tables generated into another file. Every registry.json
given with --registry is merged; later registries win on conflicts. Files are
rewritten in place unless --output is set.`,
		Example: "  schemats link src/db/orders.ts --registry src/db/registry.json --registry ../auth/registry.json",
		Args:    cobra.MinimumNArgs(1),
		RunE:    runLink,
	}
	cmd.Flags().StringSliceP("registry", "r", nil, "Registry file written by generate --output-dir (repeatable)")
	cmd.Flags().StringP("output", "o", "", "Write the linked file here instead of in place (single FILE only)")
	_ = cmd.MarkFlagRequired("registry")
	return cmd
}

func runLink(cmd *cobra.Command, args []string) error {
	registryPaths, _ := cmd.Flags().GetStringSlice("registry")
	output, _ := cmd.Flags().GetString("output")
	if output != "" && len(args) > 1 {
		return fmt.Errorf("--output requires exactly one FILE, got %d", len(args))
	}

	regs := make([]typescript.Registry, 0, len(registryPaths))
	for _, path := range registryPaths {
		reg, err := formatter.ReadRegistry(path)
		if err != nil {
			return err
		}
		regs = append(regs, reg)
	}
	reg := formatter.MergeRegistries(regs...)

	stderr := cmd.ErrOrStderr()
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		linked := typescript.AttachJoinTypes(string(data), reg)

		target := path
		if output != "" {
			target = output
		}
		if err := os.WriteFile(target, []byte(linked), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}

		if remaining := typescript.UnresolvedTables(linked); len(remaining) > 0 {
			_, _ = fmt.Fprintf(stderr, "%s %s: unresolved join types for %s\n",
				color.New(color.FgYellow).Sprint("!"), target, strings.Join(remaining, ", "))
			continue
		}
		_, _ = fmt.Fprintf(stderr, "%s %s\n", color.New(color.FgGreen).Sprint("✓"), target)
	}
	return nil
}
