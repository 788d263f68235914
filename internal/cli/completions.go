package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/readmegen/internal/render"
)

// boolValues are the only values accepted by --logo and --preview.
var boolValues = []string{"true", "false"}

// completeTemplateNames provides shell completion for embedded template names.
func completeTemplateNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return matchPrefix(render.ListTemplates(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeTemplateFlag provides shell completion for --template-name. The
// root command takes arbitrary positional arguments, so args are ignored.
func completeTemplateFlag(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return matchPrefix(render.ListTemplates(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeBoolValues provides shell completion for --logo and --preview.
func completeBoolValues(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return matchPrefix(boolValues, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func matchPrefix(candidates []string, prefix string) []string {
	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			matches = append(matches, c)
		}
	}
	return matches
}
