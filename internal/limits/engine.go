package limits

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"

	"github.com/sitthaveet/cre-ts-skill/internal/config"
)

// Category defines one heuristic indicator group checked against platform
// quotas. Counting is purely line-oriented: a line matching any of the
// category's patterns counts once, with no awareness of comments or string
// literals.
type Category struct {
	Name        string
	Pattern     *regexp.Regexp
	WarnAbove   int    // -1 disables the warning
	InfoAbove   int    // -1 disables the note
	WarnMessage string // fmt template receiving (count, threshold)
	InfoMessage string // fmt template receiving (count)
}

// Engine counts quota indicators across workflow source files
type Engine struct {
	categories []Category
}

// Totals holds per-category line counts accumulated over a scan
type Totals map[string]int

// Add merges other into t
func (t Totals) Add(other Totals) {
	for name, n := range other {
		t[name] += n
	}
}

// NewEngine creates a new engine with the default categories and thresholds
func NewEngine() *Engine {
	engine := &Engine{}
	engine.registerDefaultCategories()
	return engine
}

// registerDefaultCategories registers the built-in quota indicator groups
func (e *Engine) registerDefaultCategories() {
	// Outbound HTTP calls count against the per-execution call quota.
	e.categories = append(e.categories, Category{
		Name:        "http",
		Pattern:     regexp.MustCompile(`sendRequest|fetch\(|httpClient`),
		WarnAbove:   5,
		InfoAbove:   0,
		WarnMessage: "High HTTP usage: %d call sites found (recommended max %d per execution)",
		InfoMessage: "%d HTTP call sites found",
	})

	// On-chain reads go through the EVM client capability.
	e.categories = append(e.categories, Category{
		Name:        "chain_reads",
		Pattern:     regexp.MustCompile(`readContract|callContract|balanceAt|getLogs`),
		WarnAbove:   10,
		InfoAbove:   0,
		WarnMessage: "High chain read usage: %d read sites found (recommended max %d per execution)",
		InfoMessage: "%d chain read sites found",
	})

	e.categories = append(e.categories, Category{
		Name:        "serialization",
		Pattern:     regexp.MustCompile(`JSON\.parse|JSON\.stringify`),
		WarnAbove:   10,
		InfoAbove:   -1,
		WarnMessage: "Heavy serialization: %d JSON parse/stringify sites found (recommended max %d)",
	})

	// Loops burn execution time inside the sandbox.
	e.categories = append(e.categories, Category{
		Name:        "loops",
		Pattern:     regexp.MustCompile(`while\s*\(|for\s*\(`),
		WarnAbove:   5,
		InfoAbove:   -1,
		WarnMessage: "%d loop constructs found (recommended max %d; long loops risk the execution time limit)",
	})

	e.categories = append(e.categories, Category{
		Name:        "logging",
		Pattern:     regexp.MustCompile(`console\.log|runtime\.log`),
		WarnAbove:   20,
		InfoAbove:   -1,
		WarnMessage: "%d log statements found (recommended max %d; logs count against the log budget)",
	})

	// Secret access is never a warning, only worth surfacing.
	e.categories = append(e.categories, Category{
		Name:        "secrets",
		Pattern:     regexp.MustCompile(`getSecret|secrets\.`),
		WarnAbove:   -1,
		InfoAbove:   0,
		InfoMessage: "%d secret accesses found; ensure each secret is declared in the workflow manifest",
	})
}

// ApplyConfig applies per-category overrides from the configuration
func (e *Engine) ApplyConfig(cfg *config.Config) {
	kept := e.categories[:0]
	for _, cat := range e.categories {
		override, ok := cfg.Categories[cat.Name]
		if ok {
			if override.Disabled {
				continue
			}
			if override.WarnThreshold != nil {
				cat.WarnAbove = *override.WarnThreshold
			}
			if override.InfoThreshold != nil {
				cat.InfoAbove = *override.InfoThreshold
			}
		}
		kept = append(kept, cat)
	}
	e.categories = kept
}

// CountLines counts, per category, the lines of data matching that
// category's patterns.
func (e *Engine) CountLines(data []byte) Totals {
	totals := make(Totals, len(e.categories))

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		for _, cat := range e.categories {
			if cat.Pattern.MatchString(line) {
				totals[cat.Name]++
			}
		}
	}

	return totals
}

// Evaluate applies each category's thresholds to the accumulated totals and
// renders the warning and informational messages.
func (e *Engine) Evaluate(totals Totals) (warnings, info []string) {
	warnings = []string{}
	info = []string{}

	for _, cat := range e.categories {
		count := totals[cat.Name]
		switch {
		case cat.WarnAbove >= 0 && count > cat.WarnAbove:
			warnings = append(warnings, fmt.Sprintf(cat.WarnMessage, count, cat.WarnAbove))
		case cat.InfoAbove >= 0 && count > cat.InfoAbove:
			info = append(info, fmt.Sprintf(cat.InfoMessage, count))
		}
	}

	return warnings, info
}
