// Package gzcurl prepares gzip-compressed JSON bodies for curl --data-raw
// arguments, and recovers the JSON from captured curl commands.
//
// The encode direction serializes a record to JSON, compresses it with gzip
// and renders every compressed byte as a \xHH escape sequence, ready to paste
// into a shell's $'...' quoting. The decode direction reverses the trip: it
// extracts the --data-raw payload from a curl command, decodes the escape
// sequences, decompresses the gzip stream and pretty-prints the JSON.
package gzcurl

import "github.com/blang/semver/v4"

var Version = semver.MustParse("0.1.0")
