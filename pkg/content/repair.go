package content

import (
	"os"

	"github.com/coursemd/coursemd/pkg/errors"
	"github.com/coursemd/coursemd/pkg/mermaid"
)

// RepairResult summarizes a repair pass over a content tree.
type RepairResult struct {
	Total int      // MDX files examined
	Fixed []string // paths that were modified
}

// RepairFile rewrites the mermaid blocks of a single MDX file in place.
// Returns true when the file changed. Text outside mermaid blocks is
// preserved byte for byte.
func RepairFile(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	fixed, modified := mermaid.FixDocument(string(data))
	if !modified {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(fixed), 0o644); err != nil {
		return false, errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return true, nil
}

// RepairTree runs RepairFile over every MDX file under contentDir.
func RepairTree(contentDir string) (RepairResult, error) {
	paths, err := Discover(contentDir)
	if err != nil {
		return RepairResult{}, err
	}

	res := RepairResult{Total: len(paths)}
	for _, path := range paths {
		modified, err := RepairFile(path)
		if err != nil {
			return res, err
		}
		if modified {
			res.Fixed = append(res.Fixed, path)
		}
	}
	return res, nil
}
