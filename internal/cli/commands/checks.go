package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/kotoha-works/articleqc/internal/cli/output"
	"github.com/kotoha-works/articleqc/pkg/qc"
	_ "github.com/kotoha-works/articleqc/pkg/qc/checks" // register checks
)

// NewChecksCommand creates the checks command, which lists the registered
// check set.
func NewChecksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "checks",
		Short: "List the registered QC checks",
		Example: `  # Show all checks with their groups and descriptions
  articleqc checks`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := output.FromContext(cmd.Context())

			if r.EffectiveMode() == output.ModeJSON {
				type checkInfo struct {
					ID          string   `json:"id"`
					Name        string   `json:"name"`
					Group       string   `json:"group"`
					Description string   `json:"description"`
					ConfigKeys  []string `json:"config_keys,omitempty"`
				}
				infos := make([]checkInfo, 0, qc.Count())
				for _, def := range qc.All() {
					infos = append(infos, checkInfo{
						ID:          def.ID,
						Name:        def.Name,
						Group:       def.Group,
						Description: def.Description,
						ConfigKeys:  def.ConfigKeys,
					})
				}
				return r.JSON(infos)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "Name", "Group", "Description"})
			for _, def := range qc.All() {
				t.AppendRow(table.Row{def.ID, def.Name, def.Group, def.Description})
			}
			t.Render()
			return nil
		},
	}
}
