package domain

import (
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	m "ctlint.dev/pkg/ctlint/internal/model"
)

// catchAllHeaderFilter matches every header. It is the fallback when a
// target's headers span multiple independent directories: a single anchored
// prefix would silently skip findings, so completeness wins over precision.
const catchAllHeaderFilter = ".*"

// BuildHeaderFilter derives a clang-tidy -header-filter regex from a
// target's header files. An empty result means no filter at all: a target
// without headers lints no headers.
func BuildHeaderFilter(headers []m.Path) string {
	dirs := dropParentDirs(headerDirs(headers))

	switch len(dirs) {
	case 0:
		return ""
	case 1:
		if dirs[0] == "." {
			// Headers at the project root cannot be anchored any tighter.
			return catchAllHeaderFilter
		}

		return "^" + regexp.QuoteMeta(dirs[0]) + "/.*"
	default:
		return catchAllHeaderFilter
	}
}

func headerDirs(headers []m.Path) []string {
	seen := make(map[string]struct{}, len(headers))

	var dirs []string

	for _, header := range headers {
		dir := path.Dir(filepath.ToSlash(string(header)))
		if _, ok := seen[dir]; ok {
			continue
		}

		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}

	sort.Strings(dirs)

	return dirs
}

// dropParentDirs keeps only the leaf-most directories: any entry that is a
// parent of another entry is removed.
func dropParentDirs(dirs []string) []string {
	var out []string

	for _, dir := range dirs {
		parent := false

		for _, other := range dirs {
			if other != dir && strings.HasPrefix(other, dir+"/") {
				parent = true

				break
			}
		}

		if !parent {
			out = append(out, dir)
		}
	}

	return out
}
