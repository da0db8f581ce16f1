package cmd

import (
	"compress/gzip"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gzcurl/compress"
	"gzcurl/curlcmd"
	"gzcurl/hexescape"
	"gzcurl/logger"
	"gzcurl/payload"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:     "encode",
	Short:   "compress a JSON payload and print it as a \\xHH escaped string",
	RunE:    cmdEncode,
	Version: buildString(),
}

var (
	fPayloadPath string
	fLevel       int
	fCurlURL     string
)

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.PersistentFlags().StringVar(&fPayloadPath, "input", "", "specifies a JSON payload file -- default is the built-in demo record")
	encodeCmd.PersistentFlags().IntVar(&fLevel, "level", gzip.DefaultCompression, "specifies the gzip compression level")
	encodeCmd.PersistentFlags().StringVar(&fCurlURL, "curl", "", "emit a full curl command targeting this URL instead of the bare string")
}

func cmdEncode(cmd *cobra.Command, args []string) error {
	log := logger.Logger()

	record := payload.Default()
	if fPayloadPath != "" {
		var err error
		record, err = payload.FromFile(fPayloadPath)
		if err != nil {
			return err
		}
		log.Info().Str("input", fPayloadPath).Msg("loaded payload")
	}

	serialized, err := payload.Marshal(record)
	if err != nil {
		return err
	}

	// the header timestamp makes output bytes differ run to run; only the
	// decompressed content is invariant
	compressed, err := compress.GzipStamped(serialized, "", time.Now(), fLevel)
	if err != nil {
		return err
	}
	log.Debug().Int("raw", len(serialized)).Int("compressed", len(compressed)).Msg("gzipped payload")

	escaped := hexescape.Escape(compressed)
	if fCurlURL != "" {
		fmt.Fprintln(cmd.OutOrStdout(), curlcmd.Command(fCurlURL, "application/json", escaped))
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Gzipped Data:\n%s\n", escaped)
	return nil
}
