package cli

// ABOUTME: Unit tests for JSON output helper functions.

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonEnabled_Default(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().Bool("json", false, "")
	assert.False(t, jsonEnabled(cmd))
}

func TestJsonEnabled_Set(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().Bool("json", false, "")
	require.NoError(t, cmd.Flags().Set("json", "true"))
	assert.True(t, jsonEnabled(cmd))
}

func TestJsonEnabled_Unregistered(t *testing.T) {
	assert.False(t, jsonEnabled(&cobra.Command{}))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, whichResult{Command: "less -R", Argv: []string{"less", "-R"}}))
	assert.JSONEq(t, `{"command": "less -R", "argv": ["less", "-R"], "terminal": false, "would_page": false}`, buf.String())
	assert.Equal(t, byte('\n'), buf.Bytes()[buf.Len()-1])
}

func TestWriteJSON_Unsupported(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, make(chan int))
	assert.ErrorContains(t, err, "marshal JSON")
}
