package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/distpatch/pkg/patch"
)

// NewRulesCommand creates the command that lists the builtin rule set.
func NewRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List builtin patch rules",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.AppendHeader(table.Row{"#", "Name", "Pattern"})

			for i, rule := range patch.BuiltinRules() {
				tw.AppendRow(table.Row{i + 1, rule.Name, rule.Pattern.String()})
			}

			tw.Render()
		},
	}
}
