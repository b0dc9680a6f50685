package avb

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// DefaultToolPath is used when no explicit avbtool location is
// configured; the binary is resolved through PATH.
const DefaultToolPath = "avbtool"

// PublicKeyExtractor writes the public key corresponding to a
// private-key file into the binary container format understood by the
// verification tooling.
type PublicKeyExtractor interface {
	Extract(ctx context.Context, keyPath, outputPath string) error
}

// Tool runs the external avbtool binary to extract public keys. The
// tool is treated as a black box: it either writes the output file or
// fails, and its diagnostics are folded into the returned error.
type Tool struct {
	// Path is the avbtool executable, either absolute or resolved
	// through PATH.
	Path string
}

// NewTool returns a Tool running the given executable. An empty path
// selects DefaultToolPath.
func NewTool(path string) *Tool {
	if path == "" {
		path = DefaultToolPath
	}
	return &Tool{Path: path}
}

// Extract invokes `avbtool extract_public_key` with the given source
// key and destination. Stdout and stderr are captured and returned as
// part of the error on failure.
func (t *Tool) Extract(ctx context.Context, keyPath, outputPath string) error {
	cmd := exec.CommandContext(ctx, t.Path, "extract_public_key", "--key", keyPath, "--output", outputPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if msg := bytes.TrimSpace(out); len(msg) > 0 {
			return fmt.Errorf("%s extract_public_key: %w: %s", t.Path, err, msg)
		}
		return fmt.Errorf("%s extract_public_key: %w", t.Path, err)
	}
	return nil
}
