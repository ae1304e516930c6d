// Package config handles configuration loading and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the per-user bgm-tray directory.
	GlobalDirName = ".bg-music-tray"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "config.yaml"

	// NowPlayingLogName is the controller's now-playing log, kept in the home directory.
	NowPlayingLogName = ".bg-music-nowplaying.log"

	// StateFileName is the controller's state file, kept in the temp directory.
	StateFileName = "my-bg-music.state"
)

// GlobalDir returns the path to the bgm-tray directory (~/.bg-music-tray/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalConfigFile returns the path to the config.yaml file.
func GlobalConfigFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// DefaultNowPlayingLog returns the path the controller appends track changes to.
func DefaultNowPlayingLog() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, NowPlayingLogName), nil
}

// DefaultStateFile returns the path the controller writes its play state to.
func DefaultStateFile() string {
	return filepath.Join(os.TempDir(), StateFileName)
}
