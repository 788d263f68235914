package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/readmegen/internal/render"
)

// templateDescriptions holds one-line summaries of the embedded templates.
var templateDescriptions = map[string]string{
	"basic":   "Full README with badges, table of contents, features, technologies and install steps",
	"minimal": "Title, description, metadata list and optional feature/technology lists",
}

func newTemplatesCmd() *cobra.Command {
	templatesCmd := &cobra.Command{
		Use:   "templates",
		Short: "Inspect the built-in README templates",
		Long: `List and print the templates embedded in readmegen.

Print a template to use it as the starting point for your own:

  readmegen templates show basic > docs/readme.hbs
  readmegen --template docs/readme.hbs`,
	}

	templatesCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all available templates",
		Args:  cobra.NoArgs,
		RunE:  runTemplatesList,
	})
	templatesCmd.AddCommand(&cobra.Command{
		Use:               "show <template_name>",
		Short:             "Print the source of a template",
		Args:              RequireTemplateName,
		ValidArgsFunction: completeTemplateNames,
		RunE:              runTemplatesShow,
	})
	return templatesCmd
}

func runTemplatesList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Available templates:")
	fmt.Fprintln(out)

	for _, name := range render.ListTemplates() {
		desc, ok := templateDescriptions[name]
		if !ok {
			desc = "No description available"
		}
		fmt.Fprintf(out, "  %-10s %s\n", name, desc)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Use: readmegen --template-name <template_name>")
	return nil
}

func runTemplatesShow(cmd *cobra.Command, args []string) error {
	src, err := render.Embedded(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), src)
	return err
}
