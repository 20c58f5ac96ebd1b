package commands

import (
	"os"

	"github.com/fuzy112/v2ex-tui/lib/scrapers/v2ex"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var listFile *string

func init() {
	listFile = listCmd.Flags().String("file", "nodes.json", "The node list to render.")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [--file <path/to/nodes.json>]",
	Short: "Renders a previously extracted node list as a table.",
	Run: func(cmd *cobra.Command, args []string) {
		nodes, err := v2ex.ReadNodes(*listFile)
		if err != nil {
			fatal("failed to read node list", err)
		}

		t := table.NewWriter()
		t.SetStyle(table.StyleRounded)
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"#", "Node", "Title"})
		for i, n := range nodes {
			t.AppendRow(table.Row{i + 1, n.Name, n.Title})
		}
		t.Render()
	},
}
