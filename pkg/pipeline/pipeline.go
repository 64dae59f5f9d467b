// Package pipeline chains the course maintenance stages: fetching the
// curriculum from the LMS, scaffolding skeleton MDX files for new
// lectures, and repairing mermaid syntax across the content tree.
//
// The CLI sync command is a thin wrapper around [Runner.Execute]; the
// individual stages are exported so single-purpose commands can reuse
// them.
package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/coursemd/coursemd/pkg/content"
	"github.com/coursemd/coursemd/pkg/course"
	"github.com/coursemd/coursemd/pkg/errors"
	"github.com/coursemd/coursemd/pkg/lms"
)

// CurriculumSource fetches a course curriculum. *lms.Client satisfies
// this; tests substitute a fake.
type CurriculumSource interface {
	Curriculum(ctx context.Context, courseID int64, refresh bool) (*lms.Curriculum, error)
}

// Options configures one pipeline run.
type Options struct {
	// Refresh bypasses the LMS response cache.
	Refresh bool

	// Overwrite regenerates skeletons for lectures that already have
	// an MDX file.
	Overwrite bool

	Logger *log.Logger
}

// Stats records per-stage timings.
type Stats struct {
	FetchTime    time.Duration
	ScaffoldTime time.Duration
	RepairTime   time.Duration
}

// Result is the outcome of a full pipeline run.
type Result struct {
	RunID      uuid.UUID
	Items      []lms.Item
	Videos     []lms.VideoLecture
	Scaffolded int
	Repaired   content.RepairResult
	Stats      Stats
}

// Runner executes the maintenance pipeline for one course. It is
// stateless apart from the source and logger, so a single Runner can
// serve multiple runs.
type Runner struct {
	Source CurriculumSource
	Config *course.Config
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to the default.
func NewRunner(source CurriculumSource, cfg *course.Config, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Source: source, Config: cfg, Logger: logger}
}

// Execute runs fetch, scaffold, and repair in order.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if r.Source == nil || r.Config == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "runner needs a curriculum source and a config")
	}
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}

	result := &Result{RunID: uuid.New()}

	fetchStart := time.Now()
	items, videos, err := r.Fetch(ctx, opts)
	if err != nil {
		return nil, stageWrap(err, "fetch stage")
	}
	result.Items = items
	result.Videos = videos
	result.Stats.FetchTime = time.Since(fetchStart)
	r.Logger.Info("fetched curriculum",
		"items", len(items),
		"videos", len(videos),
		"duration", result.Stats.FetchTime)

	scaffoldStart := time.Now()
	scaffolded, err := r.Scaffold(ctx, videos, opts)
	if err != nil {
		return nil, stageWrap(err, "scaffold stage")
	}
	result.Scaffolded = scaffolded
	result.Stats.ScaffoldTime = time.Since(scaffoldStart)
	r.Logger.Info("scaffolded lectures",
		"written", scaffolded,
		"duration", result.Stats.ScaffoldTime)

	repairStart := time.Now()
	repaired, err := content.RepairTree(r.Config.ContentDir)
	if err != nil {
		return nil, stageWrap(err, "repair stage")
	}
	result.Repaired = repaired
	result.Stats.RepairTime = time.Since(repairStart)
	r.Logger.Info("repaired diagrams",
		"files", repaired.Total,
		"fixed", len(repaired.Fixed),
		"duration", result.Stats.RepairTime)

	return result, nil
}

// stageWrap adds the stage name while keeping the structured code of
// the underlying error.
func stageWrap(err error, stage string) error {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	return errors.Wrap(code, err, "%s", stage)
}

// Fetch pulls the curriculum, parses it, and writes the JSON snapshots
// under the data directory.
func (r *Runner) Fetch(ctx context.Context, opts Options) ([]lms.Item, []lms.VideoLecture, error) {
	cur, err := r.Source.Curriculum(ctx, r.Config.CourseID, opts.Refresh)
	if err != nil {
		return nil, nil, err
	}
	items, videos := lms.ParseCurriculum(cur, r.Config.CategoryFor)
	if err := lms.WriteSnapshots(r.Config.DataDir, cur, items, videos); err != nil {
		return nil, nil, err
	}
	return items, videos, nil
}

// Scaffold writes skeleton MDX files for the given video lectures and
// returns how many files were written.
func (r *Runner) Scaffold(ctx context.Context, videos []lms.VideoLecture, opts Options) (int, error) {
	written := 0
	for _, v := range videos {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		sec, ok := r.Config.Section(v.Section)
		if !ok {
			r.Logger.Warn("no section config, skipping scaffold", "section", v.Section, "lecture", v.Lecture)
			continue
		}

		fm := content.BuildFrontmatter(v, sec.Title, sec.Category, sec.Difficulty, r.Config.Tags)
		path := content.LecturePath(r.Config.ContentDir, v.Section, v.Lecture)
		ok, err := content.Scaffold(path, fm, opts.Overwrite)
		if err != nil {
			return written, err
		}
		if ok {
			written++
		}
	}
	return written, nil
}
