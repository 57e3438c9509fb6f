package analyzer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sitthaveet/cre-ts-skill/internal/config"
	"github.com/sitthaveet/cre-ts-skill/internal/limits"
	"github.com/sitthaveet/cre-ts-skill/internal/report"

	"github.com/fatih/color"
)

// Analyzer performs static limit analysis on workflow source directories
type Analyzer struct {
	verbose bool
	engine  *limits.Engine
}

// NewAnalyzer creates a new analyzer instance
func NewAnalyzer(verbose bool, configPath string) (*Analyzer, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	engine := limits.NewEngine()
	engine.ApplyConfig(cfg)

	return &Analyzer{
		verbose: verbose,
		engine:  engine,
	}, nil
}

// Analyze scans all TypeScript files under root and reports heuristic
// quota warnings. The scan is read-only and purely textual.
func (a *Analyzer) Analyze(root string) (*report.Analysis, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("cannot analyze %s: %w", root, err)
	}

	files, err := findSourceFiles(root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	result := &report.Analysis{
		Success:       true,
		Path:          root,
		Warnings:      []string{},
		Info:          []string{},
		FilesAnalyzed: len(files),
	}

	if len(files) == 0 {
		result.Info = append(result.Info, fmt.Sprintf("No TypeScript files found under %s", root))
		return result, nil
	}

	totals := make(limits.Totals)
	for _, path := range files {
		if a.verbose {
			color.New(color.FgCyan).Fprintf(os.Stderr, "[*] Scanning %s\n", path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		totals.Add(a.engine.CountLines(data))
	}

	result.Warnings, result.Info = a.engine.Evaluate(totals)
	return result, nil
}

// findSourceFiles collects .ts files under root, skipping dependency
// installs and hidden directories.
func findSourceFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "node_modules" || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".ts") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
