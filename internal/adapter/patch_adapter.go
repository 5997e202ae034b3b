package adapter

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sourcegraph/go-diff/diff"

	m "ctlint.dev/pkg/ctlint/internal/model"
)

// PatchAdapter produces and summarizes unified patches.
type PatchAdapter interface {
	// UnifiedDiff renders a unified diff of one file before and after the
	// linter's fixes. Returns the empty string when nothing changed.
	UnifiedDiff(original, fixed []byte, path m.Path) (string, error)

	// Stats parses a (possibly multi-file) unified patch into per-file
	// line statistics.
	Stats(patch []byte) ([]m.FilePatchStat, error)
}

// DifflibPatchAdapter implements PatchAdapter on go-difflib for rendering
// and go-diff for parsing.
type DifflibPatchAdapter struct{}

// NewDifflibPatchAdapter constructs a DifflibPatchAdapter.
func NewDifflibPatchAdapter() *DifflibPatchAdapter {
	return &DifflibPatchAdapter{}
}

// UnifiedDiff implements PatchAdapter.
func (p *DifflibPatchAdapter) UnifiedDiff(original, fixed []byte, path m.Path) (string, error) {
	unified := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(original)),
		B:        difflib.SplitLines(string(fixed)),
		FromFile: "a/" + string(path),
		ToFile:   "b/" + string(path),
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(unified)
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", path, err)
	}

	return text, nil
}

// Stats implements PatchAdapter.
func (p *DifflibPatchAdapter) Stats(patch []byte) ([]m.FilePatchStat, error) {
	if len(patch) == 0 {
		return nil, nil
	}

	fileDiffs, err := diff.ParseMultiFileDiff(patch)
	if err != nil {
		return nil, fmt.Errorf("parse patch: %w", err)
	}

	stats := make([]m.FilePatchStat, 0, len(fileDiffs))

	for _, fileDiff := range fileDiffs {
		stat := fileDiff.Stat()
		stats = append(stats, m.FilePatchStat{
			File:    m.Path(strings.TrimPrefix(fileDiff.NewName, "b/")),
			Added:   int(stat.Added),
			Changed: int(stat.Changed),
			Deleted: int(stat.Deleted),
		})
	}

	return stats, nil
}
