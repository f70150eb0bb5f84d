package docchat

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/omarselim0/shopmate/internal/progress"
)

// IngestStats summarizes one ingestion run.
type IngestStats struct {
	Files  int
	Chunks int
	Failed []string
}

// IngestDir discovers PDFs under root matching the include patterns (minus
// the exclude patterns) and ingests each one. Extraction failures skip the
// file rather than aborting the run.
func (e *Engine) IngestDir(ctx context.Context, root string, include, exclude []string, reporter progress.Reporter) (*IngestStats, error) {
	files, err := DiscoverFiles(root, include, exclude)
	if err != nil {
		return nil, err
	}
	if reporter == nil {
		reporter = progress.NilReporter{}
	}

	stats := &IngestStats{}
	reporter.Start(len(files))
	defer reporter.Finish()

	for i, path := range files {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		reporter.Update(i+1, filepath.Base(path))

		chunks, err := e.IngestFile(ctx, path)
		if err != nil {
			log.Printf("docchat: skipping %s: %v", path, err)
			stats.Failed = append(stats.Failed, path)
			continue
		}
		stats.Files++
		stats.Chunks += chunks
	}

	return stats, nil
}

// DiscoverFiles walks root and returns relative-pattern-matched file paths.
// Include patterns support ** globs; empty include matches every .pdf file.
func DiscoverFiles(root string, include, exclude []string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Skip entries we cannot read instead of aborting.
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			return nil
		}

		if !matchesInclude(relPath, include) {
			return nil
		}
		if matchesAny(relPath, exclude) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return files, nil
}

// matchesInclude defaults to PDFs when no include patterns are configured.
func matchesInclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return filepath.Ext(relPath) == ".pdf"
	}
	return matchesAny(relPath, patterns)
}

// matchesAny checks relPath against the glob patterns, with ** support and
// a basename fallback so bare filename patterns work.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}

		base := filepath.Base(normalized)
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
