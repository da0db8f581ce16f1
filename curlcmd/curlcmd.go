// Package curlcmd extracts and assembles curl invocations carrying escaped
// request bodies.
package curlcmd

import (
	"errors"
	"fmt"
	"regexp"
)

// (?s) lets the payload span lines; the body of $'...' stays escaped.
var dataRawRe = regexp.MustCompile(`(?s)--data-raw \$'(.*)'`)

// ErrNoDataRaw is returned when a command carries no --data-raw $'...'
// argument.
var ErrNoDataRaw = errors.New("curlcmd: no --data-raw $'...' argument found")

// ExtractDataRaw returns the still-escaped payload of a curl command's
// --data-raw argument.
func ExtractDataRaw(command string) (string, error) {
	m := dataRawRe.FindStringSubmatch(command)
	if len(m) < 2 {
		return "", ErrNoDataRaw
	}
	return m[1], nil
}

// Command assembles a ready-to-paste curl invocation around an escaped body.
func Command(url, contentType, escapedBody string) string {
	return fmt.Sprintf("curl '%s' -H 'Content-Type: %s' -H 'Content-Encoding: gzip' --data-raw $'%s'",
		url, contentType, escapedBody)
}
