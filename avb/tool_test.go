package avb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTool(t *testing.T) {
	assert.Equal(t, DefaultToolPath, NewTool("").Path, "Empty path falls back to PATH lookup")
	assert.Equal(t, "/opt/avb/avbtool", NewTool("/opt/avb/avbtool").Path)
}

func TestTool_ExtractMissingBinary(t *testing.T) {
	dir := t.TempDir()
	tool := NewTool(filepath.Join(dir, "no-such-avbtool"))

	err := tool.Extract(context.Background(), filepath.Join(dir, "key.pem"), filepath.Join(dir, "key.avbpubkey"))
	require.Error(t, err, "A missing binary must surface as an extraction failure")
	assert.ErrorContains(t, err, "extract_public_key")
}

func TestTool_ExtractToolFailure(t *testing.T) {
	dir := t.TempDir()
	// `false` exits non-zero without writing anything, standing in for
	// a tool that rejects its input.
	tool := NewTool("false")

	err := tool.Extract(context.Background(), filepath.Join(dir, "key.pem"), filepath.Join(dir, "out"))
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "out"))
}
