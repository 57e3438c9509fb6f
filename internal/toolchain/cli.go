package toolchain

import (
	"os/exec"
	"strings"

	"github.com/sitthaveet/cre-ts-skill/internal/report"
)

// BinaryName is the platform CLI every workflow project is built with
const BinaryName = "cre"

// InstallHint points at the CLI installation docs when the binary is absent
const InstallHint = "CRE CLI not found. Install it from https://docs.chain.link/cre/getting-started/cli-installation and ensure 'cre' is on your PATH"

// CheckCLI reports whether the platform CLI is installed. The check itself
// always succeeds; absence of the binary is data, not a failure.
func CheckCLI() report.CLIStatus {
	location, err := exec.LookPath(BinaryName)
	if err != nil {
		return report.CLIStatus{
			Success:   true,
			Installed: false,
			Info:      InstallHint,
		}
	}

	status := report.CLIStatus{
		Success:   true,
		Installed: true,
		Location:  location,
	}

	out, err := exec.Command(location, "--version").Output()
	if err == nil {
		status.Version = strings.TrimSpace(string(out))
	}

	return status
}
