package workflow

import (
	"os"
	"path/filepath"

	"github.com/sitthaveet/cre-ts-skill/internal/report"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// SDKPackage is the npm package every workflow project is expected to
// depend on.
const SDKPackage = "@chainlink/cre-sdk"

// entryPoints are the accepted locations for the workflow entry file,
// in preference order.
var entryPoints = []string{"main.ts", filepath.Join("src", "main.ts")}

// Manifest is the subset of workflow.yaml the validator cares about
type Manifest struct {
	WorkflowName string `yaml:"workflow-name"`
}

// Validate checks that root has the expected workflow project layout.
// Structural misses are reported as data, never as an error: the returned
// report always has Success true, and Valid reflects only hard misses
// (missing entry point or workflow manifest).
func Validate(root string) *report.Validation {
	result := &report.Validation{
		Success:    true,
		Valid:      true,
		Path:       root,
		FoundFiles: []string{},
		Errors:     []string{},
		Warnings:   []string{},
		Info:       []string{},
	}

	// Entry point: one of two accepted locations.
	entry := ""
	for _, candidate := range entryPoints {
		if fileExists(filepath.Join(root, candidate)) {
			entry = candidate
			break
		}
	}
	if entry != "" {
		result.FoundFiles = append(result.FoundFiles, entry)
	} else {
		result.Valid = false
		result.Errors = append(result.Errors, "missing entry point: expected main.ts or src/main.ts")
	}

	// Workflow manifest is required.
	if fileExists(filepath.Join(root, "workflow.yaml")) {
		result.FoundFiles = append(result.FoundFiles, "workflow.yaml")
		checkManifest(root, result)
	} else {
		result.Valid = false
		result.Errors = append(result.Errors, "missing workflow.yaml manifest")
	}

	// Recommended files are only warnings.
	if fileExists(filepath.Join(root, "package.json")) {
		result.FoundFiles = append(result.FoundFiles, "package.json")
		checkSDKDependency(root, result)
	} else {
		result.Warnings = append(result.Warnings, "missing package.json")
	}

	if fileExists(filepath.Join(root, "tsconfig.json")) {
		result.FoundFiles = append(result.FoundFiles, "tsconfig.json")
	} else {
		result.Warnings = append(result.Warnings, "missing tsconfig.json")
	}

	// Optional config directory.
	if fileExists(filepath.Join(root, "config", "config.json")) {
		result.FoundFiles = append(result.FoundFiles, filepath.Join("config", "config.json"))
	} else {
		result.Info = append(result.Info, "no config/config.json found (optional)")
	}

	return result
}

// checkManifest parses workflow.yaml and warns on missing required fields
func checkManifest(root string, result *report.Validation) {
	data, err := os.ReadFile(filepath.Join(root, "workflow.yaml"))
	if err != nil {
		result.Warnings = append(result.Warnings, "workflow.yaml could not be read")
		return
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		result.Warnings = append(result.Warnings, "workflow.yaml is not valid YAML")
		return
	}
	if manifest.WorkflowName == "" {
		result.Warnings = append(result.Warnings, "workflow.yaml has no workflow-name field")
	}
}

// checkSDKDependency probes package.json for the platform SDK
func checkSDKDependency(root string, result *report.Validation) {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return
	}

	deps := gjson.GetBytes(data, "dependencies")
	if !deps.IsObject() {
		result.Warnings = append(result.Warnings, "package.json has no dependencies declared")
		return
	}
	if _, ok := deps.Map()[SDKPackage]; !ok {
		result.Warnings = append(result.Warnings, "package.json does not depend on "+SDKPackage)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
