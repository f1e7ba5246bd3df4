// Package formatter writes generation results to their destinations: a single
// stream, an output directory with a registry file, or a compact text summary
// for inspection.
package formatter

import (
	"fmt"
	"io"

	"github.com/tordrt/schemats/internal/generator"
)

// CodeWriter writes generated source to a single stream
type CodeWriter struct {
	writer io.Writer
}

// NewCodeWriter creates a new code writer
func NewCodeWriter(w io.Writer) *CodeWriter {
	return &CodeWriter{writer: w}
}

// Write writes the generated source of res
func (f *CodeWriter) Write(res *generator.Result) error {
	if _, err := io.WriteString(f.writer, res.Code); err != nil {
		return fmt.Errorf("failed to write generated code: %w", err)
	}
	return nil
}
