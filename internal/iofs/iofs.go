package iofs

import (
	_ "embed"
	"io"
	"os"

	"github.com/rachluis/data-clean-pinyin/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	// Write embedded config.yaml to the config directory
	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// CopyFile duplicates src to dst, used for pre-save backups.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return CopyFileError(src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return CopyFileError(dst, err)
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return CopyFileError(dst, err)
	}
	if err = out.Sync(); err != nil {
		return CopyFileError(dst, err)
	}
	return nil
}
