// Package registry builds the model catalog: the configured checkpoints plus
// any GGUF files found in a model directory.
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"genhost/internal/common/fsutil"
	"genhost/pkg/types"
)

// LoadDir scans a directory for *.gguf files and builds catalog entries from filenames.
// ID is the full filename (including extension); Path is the absolute file path.
// GGUF files are served by the in-process chat loader, so Kind is chat.
func LoadDir(dir string) ([]types.Model, error) {
	abs, err := fsutil.Resolve(dir)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var models []types.Model
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".gguf") {
			continue
		}
		models = append(models, types.Model{
			ID:   name,
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Kind: types.KindChat,
			Path: filepath.Join(abs, name),
		})
	}
	sort.Slice(models, func(i, j int) bool { return models[i].ID < models[j].ID })
	return models, nil
}

// Build merges configured entries with the GGUF files in dir (if set).
// Configured entries win on ID clashes. Missing kinds are inferred from the
// identifier and missing names default to the ID.
func Build(configured []types.Model, dir string) ([]types.Model, error) {
	seen := make(map[string]bool, len(configured))
	out := make([]types.Model, 0, len(configured))
	for _, m := range configured {
		m.ID = strings.TrimSpace(m.ID)
		if m.ID == "" {
			continue
		}
		if seen[m.ID] {
			return nil, fmt.Errorf("duplicate model id %q", m.ID)
		}
		if m.Kind == "" {
			m.Kind = types.InferKind(m.ID)
		}
		if !m.Kind.Valid() {
			return nil, fmt.Errorf("model %q: unknown kind %q", m.ID, m.Kind)
		}
		if m.Name == "" {
			m.Name = m.ID
		}
		seen[m.ID] = true
		out = append(out, m)
	}
	if dir == "" {
		return out, nil
	}
	found, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, m := range found {
		if !seen[m.ID] {
			seen[m.ID] = true
			out = append(out, m)
		}
	}
	return out, nil
}

// PathResolver returns a func mapping an identifier to a local model file:
// the catalog path when one is known, else the identifier itself when it
// names an existing file.
func PathResolver(models []types.Model) func(id string) (string, error) {
	paths := make(map[string]string, len(models))
	for _, m := range models {
		if m.Path != "" {
			paths[m.ID] = m.Path
		}
	}
	return func(id string) (string, error) {
		if p, ok := paths[id]; ok {
			return p, nil
		}
		p, err := fsutil.Resolve(id)
		if err != nil {
			return "", err
		}
		if !fsutil.PathExists(p) {
			return "", fmt.Errorf("no local file for model %q", id)
		}
		return p, nil
	}
}
