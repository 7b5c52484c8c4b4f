package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resolveIndexPath string

var resolveCmd = &cobra.Command{
	Use:   "resolve <connection-type> [manifest files...]",
	Short: "Resolve a connection type to its hook",
	Long:  `Resolves a connection-type tag to the hook module reference handling it. Unknown tags are an error.`,
	Args:  cobra.MinimumNArgs(1),
	Run:   runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveIndexPath, "index", "", "Read manifests from an index.yaml")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) {
	tag := args[0]

	reg, _, err := loadRegistry(args[1:], resolveIndexPath)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}

	hook, err := reg.ResolveConnectionType(tag)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}

	fmt.Println(hook)
}
