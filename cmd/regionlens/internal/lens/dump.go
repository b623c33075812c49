package lens

import (
	"bytes"
	"errors"

	"github.com/spf13/cobra"

	common "github.com/arloliu/anvil/cmd/regionlens/internal"
	"github.com/arloliu/anvil/nbt"
)

// Dump defines the command pretty-printing a document.
var Dump = &cobra.Command{
	Use:   "dump",
	Short: "Print chunk document",
	Long: `Print the document stored in one chunk of a region file as an indented
tree. With --document, print a standalone document file instead; its
compression is detected automatically.`,
	Args: cobra.NoArgs,
	RunE: dumpFunc,
}

func init() {
	Dump.Flags().StringVarP(&vPath, "path", "p", "", "Path to the region file")
	common.AddCoordFlags(Dump, &vX, &vZ)
	common.AddDocumentFlag(Dump, &vDocument)
	Dump.MarkFlagsMutuallyExclusive("path", "document")
}

func dumpFunc(cmd *cobra.Command, _ []string) error {
	var (
		root *nbt.Compound
		err  error
	)

	switch {
	case vDocument != "":
		root, err = nbt.ReadFile(vDocument)
		if err != nil {
			return common.Errf("failed to read document: %w", err)
		}
	case vPath != "":
		f, err := common.OpenRegion(vPath, false)
		if err != nil {
			return err
		}
		defer f.Close()

		data, err := f.ReadChunk(vX, vZ)
		if err != nil {
			return common.Errf("failed to read chunk: %w", err)
		}
		root, err = nbt.ParseDocument(bytes.NewReader(data))
		if err != nil {
			return common.Errf("failed to parse chunk document: %w", err)
		}
	default:
		return errors.New("either --path or --document is required")
	}

	return nbt.Dump(cmd.OutOrStdout(), root)
}
