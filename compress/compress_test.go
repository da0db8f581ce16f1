package compress

import (
	"bytes"
	"compress/gzip"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestGzipRoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		input []byte
	}{
		{
			name:  "empty",
			input: []byte{},
		},
		{
			name:  "small",
			input: []byte("hello world"),
		},
		{
			name:  "json",
			input: []byte(`{"message":"Hello, Gzip World!","status":"success"}`),
		},
		{
			name:  "repeated",
			input: bytes.Repeat([]byte{42}, 10000),
		},
		{
			name:  "binary",
			input: []byte{0x00, 0xff, 0x1f, 0x8b, 0x00},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := require.New(t)

			compressed, err := Gzip(tc.input)
			assert.NoError(err)
			assert.True(IsGzip(compressed))

			out, err := Gunzip(compressed)
			assert.NoError(err)
			assert.True(bytes.Equal(tc.input, out), "input/output mismatch")
		})
	}
}

func TestRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("gunzip(gzip(data)) == data", prop.ForAll(
		func(a string) bool {
			compressed, err := Gzip([]byte(a))
			if err != nil {
				return false
			}
			out, err := Gunzip(compressed)
			if err != nil {
				return false
			}
			return bytes.Equal([]byte(a), out)
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestGzipStampedHeaderVariesContentDoesNot(t *testing.T) {
	assert := require.New(t)
	input := []byte("determinism of content, non-determinism of header")

	early := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	a, err := GzipStamped(input, "", early, gzip.DefaultCompression)
	assert.NoError(err)
	b, err := GzipStamped(input, "", late, gzip.DefaultCompression)
	assert.NoError(err)

	// the header timestamp differs, so the raw bytes must too
	assert.NotEqual(a, b)

	outA, err := Gunzip(a)
	assert.NoError(err)
	outB, err := Gunzip(b)
	assert.NoError(err)
	assert.Equal(outA, outB)
	assert.Equal(input, outA)
}

func TestGzipStampedLevels(t *testing.T) {
	assert := require.New(t)
	input := bytes.Repeat([]byte("abcd"), 1000)

	for level := gzip.BestSpeed; level <= gzip.BestCompression; level++ {
		compressed, err := GzipStamped(input, "", time.Time{}, level)
		assert.NoError(err)

		out, err := Gunzip(compressed)
		assert.NoError(err)
		assert.Equal(input, out)
	}

	_, err := GzipStamped(input, "", time.Time{}, 42)
	assert.Error(err)
}

func TestGunzipErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input []byte
	}{
		{
			name:  "plain text",
			input: []byte("just plain text"),
		},
		{
			name:  "empty",
			input: []byte{},
		},
		{
			name:  "valid header, corrupted body",
			input: []byte{0x1f, 0x8b, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0x01, 0x02},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Gunzip(tc.input)
			require.Error(t, err)
		})
	}
}

func TestIsGzip(t *testing.T) {
	assert := require.New(t)

	compressed, err := Gzip([]byte("x"))
	assert.NoError(err)
	assert.True(IsGzip(compressed))

	assert.False(IsGzip(nil))
	assert.False(IsGzip([]byte{0x1f}))
	assert.False(IsGzip([]byte("no magic here")))
}
