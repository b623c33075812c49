package lens

import (
	"fmt"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/anvil"
	common "github.com/arloliu/anvil/cmd/regionlens/internal"
)

var (
	vPath     string
	vX, vZ    int
	vOut      string
	vDocument string
	vRepair   bool
)

// List defines the command listing stored chunks.
var List = &cobra.Command{
	Use:   "list",
	Short: "Chunk listing",
	Long: `List every chunk stored in a region file with its location, record size,
compression, last write time and the xxHash64 digest of its decompressed bytes.`,
	Args: cobra.NoArgs,
	RunE: listFunc,
}

func init() {
	common.AddPathFlag(List, &vPath)
}

func listFunc(cmd *cobra.Command, _ []string) error {
	f, err := common.OpenRegion(vPath, false)
	if err != nil {
		return err
	}
	defer f.Close()

	out := tablewriter.NewWriter(cmd.OutOrStdout())
	out.SetHeader([]string{"X", "Z", "Sector", "Sectors", "Compressed", "Version", "Modified", "XXH64"})
	out.SetAutoWrapText(false)

	for x, z := range f.Chunks() {
		entry := f.Offset(x, z)
		row := []string{
			strconv.Itoa(x),
			strconv.Itoa(z),
			strconv.Itoa(entry.Sector()),
			strconv.Itoa(entry.Count()),
			"-", "-",
			formatTime(f.Timestamp(x, z)),
			"unreadable",
		}

		if version, payload, err := f.ReadRaw(x, z); err == nil {
			row[4] = strconv.Itoa(len(payload))
			row[5] = version.String()
		}
		if data, err := f.ReadChunk(x, z); err == nil {
			row[7] = fmt.Sprintf("%016x", anvil.Digest(data))
		} else {
			common.Logger().Warn("chunk unreadable", zap.Int("x", x), zap.Int("z", z), zap.Error(err))
		}

		out.Append(row)
	}

	out.Render()

	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.UTC().Format(time.RFC3339)
}
