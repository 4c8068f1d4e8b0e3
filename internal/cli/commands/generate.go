package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/recordkit/recordkit/internal/cli/config"
	"github.com/recordkit/recordkit/internal/codegen"
	"github.com/recordkit/recordkit/internal/loader"
	"github.com/recordkit/recordkit/internal/schema"
	ustrings "github.com/recordkit/recordkit/internal/util/strings"
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"g"},
		Short:   "Generate variant structs from record definitions",
		Long: `Load record definitions, derive the five schema variants for each
record type, and write one Go source file per type.

Definitions are discovered through the globs in recordkit.yml.

Examples:
  recordkit generate
  recordkit g --verbose`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := buildLogger(verbose)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			files, err := loader.Discover(cfg.Definitions)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no definition files matched %v", cfg.Definitions)
			}

			registry := schema.NewRegistry()
			loaded, err := loader.New(registry, log).Load(files)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			generator := codegen.NewGenerator(registry, log)
			successColor := color.New(color.FgGreen, color.Bold)
			infoColor := color.New(color.FgCyan)

			for _, l := range loaded {
				source, err := generator.Generate(l.Type, l.Options, cfg.Output.Package)
				if err != nil {
					return fmt.Errorf("record %s: %w", l.Type.Name, err)
				}

				outFile := filepath.Join(cfg.Output.Dir, ustrings.ToSnakeCase(l.Type.Name)+"_schemas.go")
				if err := os.WriteFile(outFile, []byte(source), 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", outFile, err)
				}
				infoColor.Printf("  %s -> %s\n", l.Type.Name, outFile)
			}

			successColor.Printf("Generated schemas for %d record type(s)\n", len(loaded))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}

// buildLogger creates the command logger; verbose enables debug output
func buildLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
		return log, nil
	}
	return zap.NewNop(), nil
}
