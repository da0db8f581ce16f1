package curlcmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractDataRaw(t *testing.T) {
	testCases := []struct {
		name        string
		command     string
		expected    string
		expectError bool
	}{
		{
			name:     "valid command",
			command:  "curl 'url' --data-raw $'content'",
			expected: "content",
		},
		{
			name:     "multiline content",
			command:  "curl 'url' --data-raw $'line1\nline2'",
			expected: "line1\nline2",
		},
		{
			name:     "empty content",
			command:  "curl 'url' --data-raw $''",
			expected: "",
		},
		{
			name:        "no data-raw",
			command:     "curl 'url'",
			expectError: true,
		},
		{
			name:        "missing dollar quoting",
			command:     "curl 'url' --data-raw 'content'",
			expectError: true,
		},
		{
			name:        "missing quotes",
			command:     "curl 'url' --data-raw $content",
			expectError: true,
		},
		{
			name:     "other args in command",
			command:  `curl -X POST 'url' -H 'Content-Type: application/json' --data-raw $'{"key":"value"}' --compressed`,
			expected: `{"key":"value"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractDataRaw(tc.command)
			if tc.expectError {
				require.ErrorIs(t, err, ErrNoDataRaw)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestCommandExtractRoundTrip(t *testing.T) {
	assert := require.New(t)

	body := `\x1f\x8b\x08\x00\x01\x02`
	command := Command("http://localhost:8080/ingest", "application/json", body)
	assert.Contains(command, "curl 'http://localhost:8080/ingest'")
	assert.Contains(command, "Content-Encoding: gzip")

	got, err := ExtractDataRaw(command)
	assert.NoError(err)
	assert.Equal(body, got)
}
