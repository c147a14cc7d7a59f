package cmd

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/omniviewdev/dockerclient-sdk/internal/delegategen"
)

var (
	renderSource    string
	renderInterface string
	renderPackage   string
	renderOutput    string
	wrapperType     string
	mockType        string
)

var wrapperCmd = &cobra.Command{
	Use:   "wrapper",
	Short: "Render a forwarding wrapper",
	Long: `Renders one forwarding method per interface method on the given type.
The type must provide Delegate, InterceptVoid and the generic answer helper,
as delegating.Client does.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runRender(cmd, delegategen.KindWrapper, wrapperType)
	},
}

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Render a testify mock",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runRender(cmd, delegategen.KindMock, mockType)
	},
}

func init() {
	rootCmd.AddCommand(wrapperCmd)
	rootCmd.AddCommand(mockCmd)

	for _, c := range []*cobra.Command{wrapperCmd, mockCmd} {
		c.Flags().StringVarP(&renderSource, "source", "s", ".", "package pattern declaring the interface")
		c.Flags().StringVarP(&renderInterface, "interface", "i", "", "interface type name")
		c.Flags().StringVarP(&renderPackage, "package", "p", "", "import path of the generated file's package")
		c.Flags().StringVarP(&renderOutput, "output", "o", "-", "output file, - for stdout")
		_ = c.MarkFlagRequired("interface")
		_ = c.MarkFlagRequired("package")
	}
	wrapperCmd.Flags().StringVarP(&wrapperType, "type", "t", "Client", "receiver type of the generated methods")
	mockCmd.Flags().StringVarP(&mockType, "type", "t", "MockClient", "name of the mock type")
}

func runRender(cmd *cobra.Command, kind, typeName string) error {
	target := delegategen.Target{
		Name:      kind,
		Kind:      kind,
		Source:    renderSource,
		Interface: renderInterface,
		Package:   renderPackage,
		Type:      typeName,
		Output:    renderOutput,
	}
	logger.Debug("rendering", "kind", kind, "source", target.Source, "interface", target.Interface)

	// Render fully before touching the output so a failure leaves it intact.
	var buf bytes.Buffer
	if err := delegategen.Render(cmd.Context(), &buf, "", target); err != nil {
		logger.Error("render failed", "error", err)
		return err
	}

	w, err := openOutput(cmd, renderOutput)
	if err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	logger.Info("rendered", "kind", kind, "interface", target.Interface, "output", renderOutput)
	return nil
}
