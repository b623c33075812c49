package main

import (
	"os"

	"github.com/spf13/cobra"

	common "github.com/arloliu/anvil/cmd/regionlens/internal"
	"github.com/arloliu/anvil/cmd/regionlens/internal/lens"
)

var command = &cobra.Command{
	Use:   "regionlens",
	Short: "Region file lens",
	Long:  `Region file lens provides tools to browse the chunks and documents stored in region files.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		return common.InitLogger(debug)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// use stdout as default output for cmd.Print()
	command.SetOut(os.Stdout)
	command.PersistentFlags().Bool("debug", false, "Log region allocation details")
	command.AddCommand(
		lens.List,
		lens.Get,
		lens.Dump,
		lens.Stat,
	)
}

func main() {
	err := command.Execute()
	common.ExitOnErr(command, err)
}
