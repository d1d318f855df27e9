package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchRequiresFileBody(t *testing.T) {
	defer func() {
		dataFlag = ""
		watchFlag = false
	}()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"post", "http://127.0.0.1:1", "-d", `{"a":1}`, "--watch"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch requires a file body")
	assert.Equal(t, ExitInputError, exitCode(err))
}
