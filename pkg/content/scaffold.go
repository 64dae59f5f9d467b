package content

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/coursemd/coursemd/pkg/errors"
)

// skeletonBody is the placeholder lecture body written by Scaffold until
// real content is generated from the transcript.
func skeletonBody(lectureTitle string) string {
	return fmt.Sprintf(`

## 概要

このレクチャーでは，%sについて解説します．

## 主要なポイント

- ポイント1（トランスクリプトから生成予定）
- ポイント2
- ポイント3

## まとめ

- %sの基本概念を理解した
- 実践的な応用方法を学んだ
`, lectureTitle, lectureTitle)
}

// Scaffold writes a skeleton MDX file for the lecture described by fm.
// Existing files are left alone unless overwrite is set. Returns true
// when a file was written.
func Scaffold(path string, fm Frontmatter, overwrite bool) (bool, error) {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		}
	}
	front, err := fm.Marshal()
	if err != nil {
		return false, err
	}
	if err := WriteLecture(path, front+skeletonBody(fm.LectureTitle)); err != nil {
		return false, err
	}
	return true, nil
}

// WriteLecture writes a complete MDX document to path, creating parent
// directories as needed.
func WriteLecture(path, doc string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
