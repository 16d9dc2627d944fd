package todo

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultExportName is the file name offered for exports
const DefaultExportName = "todos.json"

// Document is an exported task list ready to be written out
type Document struct {
	Data  []byte
	Count int
}

// Empty reports whether the document holds no tasks, in which case callers
// usually skip writing it.
func (d Document) Empty() bool {
	return d.Count == 0
}

// Export renders tasks as an indented JSON document
func Export(tasks []Task) (Document, error) {
	data, err := EncodeIndent(tasks)
	if err != nil {
		return Document{}, err
	}
	return Document{Data: data, Count: len(tasks)}, nil
}

// WriteFile writes doc into dir under name and returns the full path
func WriteFile(dir, name string, doc Document) (string, error) {
	if name == "" {
		name = DefaultExportName
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, doc.Data, 0644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

// ReadFile reads an import document from path
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	return data, nil
}
