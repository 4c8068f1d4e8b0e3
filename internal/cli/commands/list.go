package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/recordkit/recordkit/internal/cli/config"
	"github.com/recordkit/recordkit/internal/cli/ui"
	"github.com/recordkit/recordkit/internal/loader"
	"github.com/recordkit/recordkit/internal/schema"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List record types and their resolved fields",
		Long: `Load record definitions and print each record type with its merged
field rules, including fields inherited through extends.

Examples:
  recordkit list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}

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
			loaded, err := loader.New(registry, zap.NewNop()).Load(files)
			if err != nil {
				return err
			}

			for _, l := range loaded {
				title := l.Type.Name
				if l.Table != "" {
					title += " (" + l.Table + ")"
				}
				if l.Type.Parent != nil {
					title += " extends " + l.Type.Parent.Name
				}
				ui.Header(os.Stdout, title, noColor)

				table := ui.NewTable(os.Stdout, []string{"FIELD", "FLAGS", "SKIP"}, &ui.TableOptions{NoColor: noColor})
				for _, rule := range registry.Resolve(l.Type) {
					table.AddRow(rule.Name, ruleFlags(rule), ruleSkips(rule))
				}
				table.Render()
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	return cmd
}

// ruleFlags summarizes a field schema's capabilities for display
func ruleFlags(rule schema.FieldRule) string {
	var flags []string
	if rule.Schema.IsOptional() {
		flags = append(flags, "optional")
	}
	if rule.Schema.IsNullable() {
		flags = append(flags, "nullable")
	}
	if rule.Schema.IsDefaulted() {
		flags = append(flags, "defaulted")
	}
	if len(flags) == 0 {
		return "required"
	}
	return strings.Join(flags, ",")
}

func ruleSkips(rule schema.FieldRule) string {
	if len(rule.Skip) == 0 {
		return "-"
	}
	skips := make([]string, len(rule.Skip))
	for i, v := range rule.Skip {
		skips[i] = v.String()
	}
	return strings.Join(skips, ",")
}
