package lens

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	common "github.com/arloliu/anvil/cmd/regionlens/internal"
)

// Stat defines the command summarizing sector usage.
var Stat = &cobra.Command{
	Use:   "stat",
	Short: "Sector accounting",
	Long: `Show sector usage of a region file. With --repair the file is opened for
writing, so a missing header is initialized and a partial trailing sector is
padded; the repairs made are reported.`,
	Args: cobra.NoArgs,
	RunE: statFunc,
}

func init() {
	common.AddPathFlag(Stat, &vPath)
	Stat.Flags().BoolVar(&vRepair, "repair", false, "Repair the file while opening it")
}

func statFunc(cmd *cobra.Command, _ []string) error {
	f, err := common.OpenRegion(vPath, vRepair)
	if err != nil {
		return err
	}
	defer f.Close()

	chunks := 0
	for range f.Chunks() {
		chunks++
	}

	stats := f.SectorStats()
	salvage := f.Salvage()

	out := tablewriter.NewWriter(cmd.OutOrStdout())
	out.SetHeader([]string{"Property", "Value"})
	out.SetAlignment(tablewriter.ALIGN_LEFT)
	out.AppendBulk([][]string{
		{"Chunks", strconv.Itoa(chunks)},
		{"Total sectors", strconv.Itoa(stats.Total)},
		{"Occupied sectors", strconv.Itoa(stats.Occupied)},
		{"Free sectors", strconv.Itoa(stats.Free)},
		{"Header initialized", strconv.FormatBool(salvage.HeaderInitialized)},
		{"Padded bytes", strconv.FormatInt(salvage.PaddedBytes, 10)},
	})
	out.Render()

	return nil
}
