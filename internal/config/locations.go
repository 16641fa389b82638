package config

import (
	"os"
	"path/filepath"
)

func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "careerpath")
	}
	return filepath.Join(home, ".config", "careerpath")
}

func ConfigFilePath() string {
	exe, err := os.Executable()
	if err == nil {
		adjacent := filepath.Join(filepath.Dir(exe), "careerpath.toml")
		if _, err := os.Stat(adjacent); err == nil {
			return adjacent
		}
	}
	return filepath.Join(ConfigDir(), "careerpath.toml")
}

func StateFilePath() string {
	return filepath.Join(ConfigDir(), "state.json")
}

func LogFilePath() string {
	return filepath.Join(ConfigDir(), "careerpath.log")
}

// ExportPath resolves the PDF destination. A relative filename is placed in
// dir, or the working directory when dir is empty.
func ExportPath(dir, filename string) string {
	if filepath.IsAbs(filename) || dir == "" {
		return filename
	}
	return filepath.Join(dir, filename)
}
