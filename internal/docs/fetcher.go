package docs

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
)

// DefaultURL is the canonical platform documentation bundle
const DefaultURL = "https://docs.chain.link/cre/llms-full.txt"

// DefaultPath is where the documentation lands, relative to the working
// directory.
const DefaultPath = ".cre/docs/cre-reference.md"

// Fetch downloads url to dest in a single request. There is no retry and no
// partial-download recovery: on any failure the incomplete file is removed.
// Returns the number of bytes written.
func Fetch(url, dest string, verbose bool) (int64, error) {
	resp, err := http.Get(url)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("failed to fetch %s: HTTP %d", url, resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", filepath.Dir(dest), err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", dest, err)
	}
	defer f.Close()

	var out io.Writer = f
	if verbose {
		bar := progressbar.DefaultBytes(resp.ContentLength, "downloading docs")
		out = io.MultiWriter(f, bar)
	}

	n, err := io.Copy(out, resp.Body)
	if err != nil {
		f.Close()
		os.Remove(dest)
		return 0, fmt.Errorf("download of %s interrupted: %w", url, err)
	}

	return n, nil
}
