// Package controller launches the external music controller script.
package controller

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/rs/zerolog"
)

// Verb is a command understood by the controller script.
type Verb string

// Controller verbs.
const (
	VerbPause  Verb = "pause"
	VerbResume Verb = "resume"
	VerbNext   Verb = "next"
)

// ErrUnknownVerb is returned by ParseVerb for unsupported commands.
var ErrUnknownVerb = errors.New("unknown controller verb")

// Verbs lists every supported verb in menu order.
var Verbs = []Verb{VerbPause, VerbResume, VerbNext}

// ParseVerb converts a command-line argument into a Verb.
func ParseVerb(s string) (Verb, error) {
	for _, v := range Verbs {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVerb, s)
}

// Dispatcher starts the controller script with a single verb argument.
type Dispatcher struct {
	script string
	logger zerolog.Logger
}

// NewDispatcher creates a Dispatcher for the given script path.
func NewDispatcher(script string, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{script: script, logger: logger}
}

// Script returns the configured controller path.
func (d *Dispatcher) Script() string {
	return d.script
}

// Dispatch starts "<script> <verb>" and returns once the process has been
// started. It never waits for the script to finish; the child is reaped in
// the background. The returned error only reports launch failures.
func (d *Dispatcher) Dispatch(verb Verb) error {
	cmd := exec.Command(d.script, string(verb))
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s %s: %w", d.script, verb, err)
	}

	d.logger.Debug().Str("verb", string(verb)).Int("pid", cmd.Process.Pid).Msg("controller started")

	go func() {
		if err := cmd.Wait(); err != nil {
			d.logger.Debug().Err(err).Str("verb", string(verb)).Msg("controller exited")
		}
	}()

	return nil
}
