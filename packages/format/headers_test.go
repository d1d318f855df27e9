package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeaderBlock(t *testing.T) {
	headers, err := ParseHeaderBlock("Content-Type: application/json\nX-Test:  1 \n")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"Content-Type": "application/json",
		"X-Test":       "1",
	}, headers)
}

func TestParseHeaderBlock_BlankLinesSkipped(t *testing.T) {
	headers, err := ParseHeaderBlock("\n\nAccept: text/html\n\n   \nX-Token: abc\n")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"Accept":  "text/html",
		"X-Token": "abc",
	}, headers)
}

func TestParseHeaderBlock_ValueWithColon(t *testing.T) {
	headers, err := ParseHeaderBlock("Referer: https://example.com/page")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/page", headers["Referer"])
}

func TestParseHeaderBlock_Malformed(t *testing.T) {
	_, err := ParseHeaderBlock("Content-Type: application/json\nnot-a-header\n")
	require.Error(t, err)

	var lineErr *HeaderLineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, "not-a-header", lineErr.Line)
}

func TestParseHeaderBlock_Empty(t *testing.T) {
	headers, err := ParseHeaderBlock("")
	require.NoError(t, err)
	assert.Empty(t, headers)
}
