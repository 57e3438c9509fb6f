package workflow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestValidateMissingEntryPoint(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "workflow.yaml"), "workflow-name: demo\n")

	result := Validate(dir)

	assert.True(t, result.Success)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "entry point")
}

func TestValidateMissingManifestIsWarningOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.ts"), "// entry\n")
	writeFile(t, filepath.Join(dir, "workflow.yaml"), "workflow-name: demo\n")
	writeFile(t, filepath.Join(dir, "tsconfig.json"), "{}\n")

	result := Validate(dir)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "package.json")
}

func TestValidateAcceptsNestedEntryPoint(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "main.ts"), "// entry\n")
	writeFile(t, filepath.Join(dir, "workflow.yaml"), "workflow-name: demo\n")

	result := Validate(dir)

	assert.True(t, result.Valid)
	assert.Contains(t, result.FoundFiles, filepath.Join("src", "main.ts"))
}

func TestValidateMissingWorkflowManifestIsError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.ts"), "// entry\n")

	result := Validate(dir)

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "workflow.yaml")
}

func TestValidateWarnsOnMissingWorkflowName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.ts"), "// entry\n")
	writeFile(t, filepath.Join(dir, "workflow.yaml"), "owner: someone\n")

	result := Validate(dir)

	assert.True(t, result.Valid)
	assert.Contains(t, result.Warnings, "workflow.yaml has no workflow-name field")
}

func TestValidateWarnsOnMissingSDKDependency(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.ts"), "// entry\n")
	writeFile(t, filepath.Join(dir, "workflow.yaml"), "workflow-name: demo\n")
	writeFile(t, filepath.Join(dir, "package.json"), `{"dependencies":{"left-pad":"1.0.0"}}`)

	result := Validate(dir)

	assert.True(t, result.Valid)

	found := false
	for _, w := range result.Warnings {
		if w == "package.json does not depend on "+SDKPackage {
			found = true
		}
	}
	assert.True(t, found, "expected an SDK dependency warning, got %v", result.Warnings)
}

func TestValidateCompleteProject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.ts"), "// entry\n")
	writeFile(t, filepath.Join(dir, "workflow.yaml"), "workflow-name: demo\n")
	writeFile(t, filepath.Join(dir, "package.json"), `{"dependencies":{"@chainlink/cre-sdk":"^1.0.0"}}`)
	writeFile(t, filepath.Join(dir, "tsconfig.json"), "{}\n")
	writeFile(t, filepath.Join(dir, "config", "config.json"), "{}\n")

	result := Validate(dir)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Info)
	assert.Len(t, result.FoundFiles, 5)
}

func TestValidateOptionalConfigIsInfoOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.ts"), "// entry\n")
	writeFile(t, filepath.Join(dir, "workflow.yaml"), "workflow-name: demo\n")

	result := Validate(dir)

	require.Len(t, result.Info, 1)
	assert.Contains(t, result.Info[0], "config/config.json")
}
