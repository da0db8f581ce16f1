package cmd

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gzcurl/compress"
	"gzcurl/curlcmd"
	"gzcurl/hexescape"
	"gzcurl/logger"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:     "decode",
	Short:   "recover the JSON body from a captured curl command",
	RunE:    cmdDecode,
	Version: buildString(),
}

var (
	fCurlPath   string
	fOutputPath string
)

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.PersistentFlags().StringVar(&fCurlPath, "input", "curl_command.txt", "specifies the file holding the curl command")
	decodeCmd.PersistentFlags().StringVar(&fOutputPath, "output", "decoded_curl_command.txt", "specifies the file the decoded body is written to")
}

func cmdDecode(cmd *cobra.Command, args []string) error {
	log := logger.Logger()
	log.Info().Str("input", fCurlPath).Str("output", fOutputPath).Msg("decoding curl command")

	raw, err := os.ReadFile(fCurlPath)
	if err != nil {
		return err
	}

	escaped, err := curlcmd.ExtractDataRaw(string(raw))
	if err != nil {
		return err
	}

	// a leading space inside $'...' would corrupt the gzip stream
	trimmed := strings.TrimSpace(escaped)
	if len(trimmed) != len(escaped) {
		log.Warn().Int("before", len(escaped)).Int("after", len(trimmed)).Msg("trimmed whitespace around --data-raw payload")
	}

	body, err := hexescape.Unescape(trimmed)
	if err != nil {
		return err
	}
	log.Debug().Str("payload", hexescape.Repr(preview(body))).Msg("decoded escape sequences")

	if compress.IsGzip(body) {
		plain, err := compress.Gunzip(body)
		if err != nil {
			// magic bytes can occur in non-gzip payloads; keep the raw bytes
			log.Warn().Err(err).Msg("decompression failed, keeping raw bytes")
		} else {
			body = plain
			log.Debug().Str("payload", hexescape.Repr(preview(body))).Msg("decompressed gzip stream")
		}
	} else {
		log.Debug().Msg("no gzip magic, skipping decompression")
	}

	out := body
	if pretty, err := prettyJSON(body); err != nil {
		log.Warn().Err(err).Msg("body is not JSON, writing raw bytes")
	} else {
		out = pretty
	}

	if err := os.WriteFile(fOutputPath, out, 0o644); err != nil {
		return err
	}
	log.Info().Str("output", fOutputPath).Int("bytes", len(out)).Msg("wrote decoded body")
	return nil
}

// preview caps log output at 100 bytes.
func preview(b []byte) []byte {
	const n = 100
	if len(b) > n {
		return b[:n]
	}
	return b
}

func prettyJSON(body []byte) ([]byte, error) {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, err
	}
	return json.MarshalIndent(v, "", "  ")
}
