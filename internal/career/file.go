package career

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileSource serves recommendations loaded from a file (see LoadFile). The
// file is read on every call so edits show up without a restart.
type FileSource struct {
	Path string
}

// Recommend satisfies Source.
func (f FileSource) Recommend(ctx context.Context, _ Profile) ([]Profession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r, err := LoadFile(f.Path)
	if err != nil {
		return nil, err
	}
	return r.Professions, nil
}

// LoadFile reads a recommendations file. .json files are decoded strictly and
// .yaml/.yml files are converted to JSON first; both go through schema
// validation. Any other file is treated as a saved free-form analysis reply
// and goes through ParseResponse, so it never fails to decode.
func LoadFile(path string) (Recommendations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Recommendations{}, fmt.Errorf("reading recommendations: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Recommendations{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		// Re-encode so YAML and JSON share one validation path.
		data, err = json.Marshal(doc)
		if err != nil {
			return Recommendations{}, fmt.Errorf("converting %s: %w", path, err)
		}
	default:
		return ParseResponse(string(data)), nil
	}

	r, err := Decode(data)
	if err != nil {
		return Recommendations{}, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}
