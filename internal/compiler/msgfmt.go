package compiler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	ErrNoWorkingMsgfmtExecutableFound = errors.New("could not find a working msgfmt executable")
	ErrEmptyCommand                   = errors.New("could not work with empty compiler command")
)

// Compiler turns a text catalog into a binary one.
type Compiler interface {
	Compile(ctx context.Context, input, output string) error
}

// CompilerFunc adapts a function to the Compiler interface.
type CompilerFunc func(ctx context.Context, input, output string) error

func (f CompilerFunc) Compile(ctx context.Context, input, output string) error {
	return f(ctx, input, output)
}

// ExitError is returned when the compiler exits with a non-zero status.
type ExitError struct {
	Command string
	Code    int
	Stderr  string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%v exited with status %v: %v", e.Command, e.Code, strings.TrimSpace(e.Stderr))
}

// Msgfmt runs GNU msgfmt (or a compatible command) as `<Command...> -o <output> <input>`.
type Msgfmt struct {
	Command []string
}

func NewMsgfmt(command ...string) *Msgfmt {
	return &Msgfmt{command}
}

func (m *Msgfmt) Compile(ctx context.Context, input, output string) error {
	if len(m.Command) == 0 {
		return ErrEmptyCommand
	}

	args := append(append([]string{}, m.Command[1:]...), "-o", output, input)

	log.Debug().
		Str("command", m.Command[0]).
		Strs("args", args).
		Msg("Running compiler")

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, m.Command[0], args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{
				Command: strings.Join(m.Command, " "),
				Code:    exitErr.ExitCode(),
				Stderr:  stderr.String(),
			}
		}

		return err
	}

	if stdout.Len() > 0 || stderr.Len() > 0 {
		log.Debug().
			Str("stdout", stdout.String()).
			Str("stderr", stderr.String()).
			Msg("Compiler output")
	}

	return nil
}

// DiscoverMsgfmt returns the first msgfmt invocation that answers --version,
// preferring the host's msgfmt when running inside a Flatpak sandbox.
func DiscoverMsgfmt() ([]string, error) {
	if _, err := os.Stat("/.flatpak-info"); err == nil {
		if err := exec.Command("flatpak-spawn", "--host", "msgfmt", "--version").Run(); err == nil {
			return []string{"flatpak-spawn", "--host", "msgfmt"}, nil
		}
	}

	if err := exec.Command("msgfmt", "--version").Run(); err == nil {
		return []string{"msgfmt"}, nil
	}

	return nil, ErrNoWorkingMsgfmtExecutableFound
}
