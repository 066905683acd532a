// Package schema implements domain.SchemaResolver by reading the schema
// definition from disk.
package schema

import (
	"fmt"
	"os"
	"strings"

	"github.com/schemaguard/schemaguard/internal/domain"
)

type FileResolver struct{}

func New() *FileResolver {
	return &FileResolver{}
}

// Resolve reads the schema file at path. A missing or empty file is a
// resolution error; the run cannot continue without a contract to check.
func (r *FileResolver) Resolve(path string) (domain.SchemaDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.SchemaDocument{}, fmt.Errorf("reading schema: %w", err)
	}

	body := strings.TrimPrefix(string(data), "\uFEFF")
	if strings.TrimSpace(body) == "" {
		return domain.SchemaDocument{}, fmt.Errorf("schema %s is empty", path)
	}

	return domain.SchemaDocument{Path: path, Body: body}, nil
}
