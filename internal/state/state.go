// Package state persists bookkeeping between runs: the analysis quota counter
// and the files exported so far. Wizard progress is never saved.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const maxExports = 20

type State struct {
	LastRun           time.Time `json:"last_run"`
	DailyAnalyses     int       `json:"daily_analyses"`
	QuotaResetAt      time.Time `json:"quota_reset_at"`
	Exports           []string  `json:"exports"`
	CareerPathVersion string    `json:"careerpath_version"`
}

func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &State{}, nil
		}
		return nil, err
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func Save(path string, s *State) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// AddExport records an exported file, most recent last. Re-exporting a path
// moves it to the end. Only the newest maxExports entries are kept.
func (s *State) AddExport(path string) {
	kept := s.Exports[:0]
	for _, p := range s.Exports {
		if p != path {
			kept = append(kept, p)
		}
	}
	s.Exports = append(kept, path)
	if len(s.Exports) > maxExports {
		s.Exports = s.Exports[len(s.Exports)-maxExports:]
	}
}

// SetQuota records the limiter's daily counter.
func (s *State) SetQuota(daily int, resetAt time.Time) {
	s.DailyAnalyses = daily
	s.QuotaResetAt = resetAt
}
