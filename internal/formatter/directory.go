package formatter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tordrt/schemats/internal/generator"
	"github.com/tordrt/schemats/internal/typescript"
)

const (
	// DefaultFileName is the generated source file written by a DirectoryWriter.
	DefaultFileName = "schema.ts"
	// RegistryFileName holds the table registry next to the generated source.
	RegistryFileName = "registry.json"
)

// DirectoryWriter writes the generated source and its registry into a directory.
// The registry lets files generated separately be linked later.
type DirectoryWriter struct {
	OutputDir string
	FileName  string
}

// NewDirectoryWriter creates a new directory writer. An empty fileName
// selects DefaultFileName.
func NewDirectoryWriter(outputDir, fileName string) *DirectoryWriter {
	if fileName == "" {
		fileName = DefaultFileName
	}
	return &DirectoryWriter{
		OutputDir: outputDir,
		FileName:  fileName,
	}
}

// Write writes res into the output directory, creating it when missing.
func (f *DirectoryWriter) Write(res *generator.Result) error {
	if err := os.MkdirAll(f.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	codePath := filepath.Join(f.OutputDir, f.FileName)
	if err := os.WriteFile(codePath, []byte(res.Code), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", codePath, err)
	}

	if err := WriteRegistry(filepath.Join(f.OutputDir, RegistryFileName), res.Registry); err != nil {
		return fmt.Errorf("failed to write registry: %w", err)
	}

	return nil
}

// WriteRegistry stores reg as indented JSON. Keys are written in sorted order.
func WriteRegistry(path string, reg typescript.Registry) error {
	if reg == nil {
		reg = typescript.Registry{}
	}
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// ReadRegistry loads a registry written by WriteRegistry.
func ReadRegistry(path string) (typescript.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}
	var reg typescript.Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse registry %s: %w", path, err)
	}
	if reg == nil {
		reg = typescript.Registry{}
	}
	return reg, nil
}

// MergeRegistries combines registries into a new one. Later entries win.
func MergeRegistries(regs ...typescript.Registry) typescript.Registry {
	merged := typescript.Registry{}
	for _, reg := range regs {
		for raw, names := range reg {
			merged[raw] = names
		}
	}
	return merged
}
