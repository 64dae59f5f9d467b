package authoring

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/coursemd/coursemd/pkg/content"
	"github.com/coursemd/coursemd/pkg/errors"
	"github.com/coursemd/coursemd/pkg/lms"
	"github.com/coursemd/coursemd/pkg/transcripts"
)

// SectionMeta carries the per-section values stamped into generated
// frontmatter.
type SectionMeta struct {
	Title      string
	Category   string
	Difficulty string
}

// Options configures a batch generation run.
type Options struct {
	Generator  Generator
	Store      *transcripts.Store
	ContentDir string
	CourseTags []string

	// Sections limits the run to the listed section numbers. Empty
	// means all sections.
	Sections []int

	// Metadata resolves section metadata by number. Required.
	Metadata func(section int) (SectionMeta, bool)

	Logger *log.Logger
}

// Result summarizes a batch generation run.
type Result struct {
	RunID     uuid.UUID
	Generated []string // written MDX paths
	Skipped   []string // lectures skipped, with reasons
	Failed    []string // lectures that errored, with reasons
}

// Run generates MDX content for every video lecture that has a
// transcript. Lectures without a transcript are skipped, not failed,
// so the run can be repeated as transcripts trickle in. Generation
// errors are collected per lecture rather than aborting the batch.
func Run(ctx context.Context, videos []lms.VideoLecture, opts Options) (*Result, error) {
	if opts.Generator == nil || opts.Store == nil || opts.Metadata == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "generator, store, and metadata are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	res := &Result{RunID: uuid.New()}
	logger.Info("starting generation run", "run", res.RunID, "lectures", len(videos))

	for _, v := range videos {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if len(opts.Sections) > 0 && !slices.Contains(opts.Sections, v.Section) {
			continue
		}

		label := fmt.Sprintf("S%d-L%d", v.Section, v.Lecture)

		meta, ok := opts.Metadata(v.Section)
		if !ok {
			res.Skipped = append(res.Skipped, label+": unknown section")
			logger.Warn("skipping lecture", "lecture", label, "reason", "unknown section")
			continue
		}

		transcript, err := opts.Store.Load(v.ID)
		if err != nil {
			res.Skipped = append(res.Skipped, fmt.Sprintf("%s: %s", label, errors.UserMessage(err)))
			logger.Warn("skipping lecture", "lecture", label, "reason", errors.UserMessage(err))
			continue
		}

		logger.Info("generating", "lecture", label, "title", v.Title)
		body, err := opts.Generator.Generate(ctx, transcript, v.Title, meta.Title)
		if err != nil {
			res.Failed = append(res.Failed, fmt.Sprintf("%s: %v", label, err))
			logger.Error("generation failed", "lecture", label, "err", err)
			continue
		}

		fm := content.BuildFrontmatter(v, meta.Title, meta.Category, meta.Difficulty, opts.CourseTags)
		front, err := fm.Marshal()
		if err != nil {
			res.Failed = append(res.Failed, fmt.Sprintf("%s: %v", label, err))
			continue
		}

		path := content.LecturePath(opts.ContentDir, v.Section, v.Lecture)
		if err := content.WriteLecture(path, front+"\n\n"+body+"\n"); err != nil {
			res.Failed = append(res.Failed, fmt.Sprintf("%s: %v", label, err))
			continue
		}
		res.Generated = append(res.Generated, path)
	}

	logger.Info("generation run finished",
		"run", res.RunID,
		"generated", len(res.Generated),
		"skipped", len(res.Skipped),
		"failed", len(res.Failed))
	return res, nil
}
