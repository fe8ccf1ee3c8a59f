//go:build mage

package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/magefile/mage/mg"
)

const settingsFile = "settings.toml"

type cmdOptions struct {
	args   []string
	stream bool
}

type cmdOption func(*cmdOptions)

func withArgs(args ...string) cmdOption {
	return func(o *cmdOptions) {
		o.args = args
	}
}

// withStream sends the command output to the terminal as it runs.
func withStream() cmdOption {
	return func(o *cmdOptions) {
		o.stream = true
	}
}

// executeCmd runs command and returns its combined output. Quiet commands
// only print their output when they fail.
func executeCmd(command string, options ...cmdOption) (string, error) {
	opts := cmdOptions{}
	for _, o := range options {
		o(&opts)
	}
	line := strings.TrimSpace(command + " " + strings.Join(opts.args, " "))
	fmt.Printf("Executing: %s\n", line)

	cmd := exec.Command(command, opts.args...)
	if opts.stream || mg.Verbose() {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return "", fmt.Errorf("%s: %w", line, err)
		}
		return "", nil
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		fmt.Println(out.String())
		return out.String(), fmt.Errorf("%s: %w", line, err)
	}
	return out.String(), nil
}
