package common

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arloliu/anvil/region"
)

const (
	flagPath     = "path"
	flagX        = "x"
	flagZ        = "z"
	flagOut      = "out"
	flagDocument = "document"
)

var log = zap.NewNop()

// InitLogger builds the console logger shared by all commands. Region
// diagnostics at warn level are always shown; debug adds allocation and
// creation messages.
func InitLogger(debug bool) error {
	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if debug {
		c.Level.SetLevel(zap.DebugLevel)
	}
	c.Encoding = "console"
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	c.DisableStacktrace = true

	l, err := c.Build()
	if err != nil {
		return fmt.Errorf("failed to build zap logger: %w", err)
	}
	log = l

	return nil
}

// Logger returns the logger built by InitLogger, or a no-op logger.
func Logger() *zap.Logger {
	return log
}

// Errf returns formatted error in errFmt format if err is not nil.
func Errf(errFmt string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf(errFmt, err)
}

// ExitOnErr prints err via cmd and exits with code 1. Does nothing if err
// is nil.
func ExitOnErr(cmd *cobra.Command, err error) {
	if err != nil {
		cmd.PrintErrln(err)
		os.Exit(1)
	}
}

// AddPathFlag adds the required region file path flag.
func AddPathFlag(cmd *cobra.Command, v *string) {
	cmd.Flags().StringVarP(v, flagPath, "p", "", "Path to the region file")
	_ = cmd.MarkFlagRequired(flagPath)
}

// AddCoordFlags adds the local chunk coordinate flags.
func AddCoordFlags(cmd *cobra.Command, x, z *int) {
	cmd.Flags().IntVar(x, flagX, 0, "Local chunk X coordinate (0-31)")
	cmd.Flags().IntVar(z, flagZ, 0, "Local chunk Z coordinate (0-31)")
}

// AddOutputFileFlag adds the output file flag.
func AddOutputFileFlag(cmd *cobra.Command, v *string) {
	cmd.Flags().StringVarP(v, flagOut, "o", "", "File to write the chunk to (stdout when empty)")
}

// AddDocumentFlag adds the standalone document path flag.
func AddDocumentFlag(cmd *cobra.Command, v *string) {
	cmd.Flags().StringVar(v, flagDocument, "", "Path to a standalone document file such as level.dat")
}

// OpenRegion opens the region file at path. Unless writable is set the file
// is opened read-only, so inspecting never repairs or grows it.
func OpenRegion(path string, writable bool) (*region.File, error) {
	opts := []region.Option{region.WithLogger(log)}
	if !writable {
		opts = append(opts, region.WithReadOnly())
	}

	f, err := region.Open(path, opts...)
	if err != nil {
		return nil, Errf("failed to open region file: %w", err)
	}

	return f, nil
}

// WriteToFile writes data to path, or to the command output when path is
// empty.
func WriteToFile(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec
		return Errf("could not write file: %w", err)
	}
	cmd.Printf("Chunk written to %s (%d bytes)\n", path, len(data))

	return nil
}
