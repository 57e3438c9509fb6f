package toolchain

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// DefaultTarget is the simulation target injected when the caller passes none
const DefaultTarget = "local-simulation"

// SimulateOptions controls how arguments are forwarded to the platform CLI
type SimulateOptions struct {
	// InjectTarget adds "--target <Target>" when the extra arguments do not
	// already carry a --target flag.
	InjectTarget bool
	Target       string
}

// BuildSimulateArgs assembles the argument list for "cre workflow simulate".
// An explicit --target in extra is never duplicated or overridden.
func BuildSimulateArgs(path string, extra []string, opts SimulateOptions) []string {
	args := []string{"workflow", "simulate", path}
	args = append(args, extra...)

	if opts.InjectTarget && !hasTargetFlag(extra) {
		target := opts.Target
		if target == "" {
			target = DefaultTarget
		}
		args = append(args, "--target", target)
	}

	return args
}

func hasTargetFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--target" || strings.HasPrefix(arg, "--target=") {
			return true
		}
	}
	return false
}

// Simulate runs the platform CLI's simulate subcommand against path,
// streaming its output and returning its exit code verbatim. A missing
// binary or path is reported as an error with exit code 1.
func Simulate(path string, extra []string, opts SimulateOptions) (int, error) {
	bin, err := exec.LookPath(BinaryName)
	if err != nil {
		return 1, fmt.Errorf("%s CLI not found on PATH", BinaryName)
	}
	if _, err := os.Stat(path); err != nil {
		return 1, fmt.Errorf("workflow path does not exist: %s", path)
	}

	cmd := exec.Command(bin, BuildSimulateArgs(path, extra, opts)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("failed to run %s: %w", BinaryName, err)
	}

	return 0, nil
}
