package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	ustrings "github.com/recordkit/recordkit/internal/util/strings"
)

const definitionTemplate = `record: %s
%sfields:
  - name: id
    type: uuid
    skip: [create, update]
  - name: created_at
    type: timestamp
    skip: [create]
  - name: updated_at
    type: timestamp
    skip: [create]
`

// NewNewCommand creates the new command
func NewNewCommand() *cobra.Command {
	var extends string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Scaffold a record definition file",
		Long: `Create a new record definition YAML with the conventional identifier
and timestamp fields.

Examples:
  recordkit new Post
  recordkit new Post --extends Content
  recordkit new --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			successColor := color.New(color.FgGreen, color.Bold)

			var recordName string

			if len(args) > 0 {
				recordName = args[0]
			} else if interactive {
				prompt := &survey.Input{
					Message: "Record name (singular, CamelCase):",
				}
				if err := survey.AskOne(prompt, &recordName, survey.WithValidator(survey.Required)); err != nil {
					return err
				}

				extendsPrompt := &survey.Input{
					Message: "Extends (blank for none):",
				}
				if err := survey.AskOne(extendsPrompt, &extends); err != nil {
					return err
				}
			} else {
				return fmt.Errorf("record name required\n\nUsage: recordkit new <name>")
			}

			if recordName == "" {
				return fmt.Errorf("record name cannot be empty")
			}

			filename := filepath.Join("defs", ustrings.ToSnakeCase(recordName)+".yml")
			if _, err := os.Stat(filename); err == nil {
				return fmt.Errorf("file %s already exists", filename)
			}

			if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
				return fmt.Errorf("failed to create defs directory: %w", err)
			}

			extendsLine := ""
			if extends != "" {
				extendsLine = fmt.Sprintf("extends: %s\n", extends)
			}

			content := fmt.Sprintf(definitionTemplate, recordName, extendsLine)
			if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", filename, err)
			}

			successColor.Printf("Created %s\n", filename)
			return nil
		},
	}

	cmd.Flags().StringVar(&extends, "extends", "", "Parent record to extend")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for record details")
	return cmd
}
