package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/omniviewdev/dockerclient-sdk/internal/delegategen"
)

var (
	listSource    string
	listInterface string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List interface methods and their shapes",
	Long: `Lists every method of the interface with its shape: answer,
answer+error, void or void+error. Methods delegategen cannot handle make the
command fail with the offending method named.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listSource, "source", "s", ".", "package pattern declaring the interface")
	listCmd.Flags().StringVarP(&listInterface, "interface", "i", "", "interface type name")
	_ = listCmd.MarkFlagRequired("interface")
}

func runList(cmd *cobra.Command, _ []string) error {
	iface, err := delegategen.Load(cmd.Context(), "", listSource, listInterface)
	if err != nil {
		return err
	}
	logger.Debug("loaded interface", "path", iface.ImportPath, "name", iface.Name, "methods", len(iface.Methods))

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Shape", "Method")
	for _, m := range iface.Methods {
		if err := table.Append(m.Shape(), m.Signature()); err != nil {
			return err
		}
	}
	return table.Render()
}
