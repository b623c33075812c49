package lens

import (
	"github.com/spf13/cobra"

	common "github.com/arloliu/anvil/cmd/regionlens/internal"
)

// Get defines the command extracting one chunk.
var Get = &cobra.Command{
	Use:   "get",
	Short: "Get chunk",
	Long:  `Write the decompressed bytes of one chunk to a file or stdout.`,
	Args:  cobra.NoArgs,
	RunE:  getFunc,
}

func init() {
	common.AddPathFlag(Get, &vPath)
	common.AddCoordFlags(Get, &vX, &vZ)
	common.AddOutputFileFlag(Get, &vOut)
}

func getFunc(cmd *cobra.Command, _ []string) error {
	f, err := common.OpenRegion(vPath, false)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := f.ReadChunk(vX, vZ)
	if err != nil {
		return common.Errf("failed to read chunk: %w", err)
	}

	return common.WriteToFile(cmd, vOut, data)
}
