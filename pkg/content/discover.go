package content

import (
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/coursemd/coursemd/pkg/errors"
)

// Discover finds every MDX file under contentDir, recursively, in sorted
// order.
func Discover(contentDir string) ([]string, error) {
	pattern := filepath.Join(contentDir, "**", "*.mdx")
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "glob %s", pattern)
	}
	sort.Strings(paths)
	return paths, nil
}
