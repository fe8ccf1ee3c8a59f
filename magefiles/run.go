//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/spaghettifunk/tinyphong/engine/config"
)

type Run mg.Namespace

// Runs the headless testbed against settings.toml.
func (Run) Testbed() error {
	mg.Deps(Run.Settings)
	fmt.Println("Run testbed...")
	if _, err := executeCmd("go", withArgs("run", "main.go"), withStream()); err != nil {
		return err
	}
	return nil
}

// Writes a default settings.toml unless one already exists.
func (Run) Settings() error {
	if _, err := os.Stat(settingsFile); err == nil {
		return nil
	}
	fmt.Printf("Writing default %s\n", settingsFile)
	return config.Default().Save(settingsFile)
}
