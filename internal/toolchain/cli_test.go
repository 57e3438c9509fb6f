package toolchain

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCLIAbsent(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	status := CheckCLI()

	assert.True(t, status.Success)
	assert.False(t, status.Installed)
	assert.Equal(t, InstallHint, status.Info)
	assert.Empty(t, status.Version)
	assert.Empty(t, status.Location)
}

func TestCheckCLIPresent(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake binary is a shell script")
	}

	dir := t.TempDir()
	bin := filepath.Join(dir, BinaryName)
	script := "#!/bin/sh\necho 'cre version 0.3.1'\n"
	require.NoError(t, os.WriteFile(bin, []byte(script), 0o755))
	t.Setenv("PATH", dir)

	status := CheckCLI()

	assert.True(t, status.Success)
	assert.True(t, status.Installed)
	assert.Equal(t, bin, status.Location)
	assert.Equal(t, "cre version 0.3.1", status.Version)
	assert.Empty(t, status.Info)
}
