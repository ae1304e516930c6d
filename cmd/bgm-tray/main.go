// Package main is the entry point for the bgm-tray system tray.
package main

import (
	"os"

	"github.com/bg-music/bgm-tray/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
