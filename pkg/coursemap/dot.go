package coursemap

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/coursemd/coursemd/pkg/errors"
	"github.com/coursemd/coursemd/pkg/lms"
)

// Options configures course map rendering.
type Options struct {
	// Detailed includes per-lecture asset types in node labels. When
	// false, only titles are shown.
	Detailed bool
}

// ToDOT converts a course outline to Graphviz DOT format. Sections hang
// off a single course root and every item hangs off its section. Quizzes
// are drawn with dashed outlines to set them apart from lectures.
func ToDOT(courseTitle string, items []lms.Item, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph course {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.25;\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  course [label=%q, fillcolor=lightblue];\n", courseTitle)

	seen := map[int]bool{}
	for _, it := range items {
		if !seen[it.Section] {
			seen[it.Section] = true
			fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=lightyellow];\n",
				sectionID(it.Section), fmt.Sprintf("S%d: %s", it.Section, it.SectionTitle))
			fmt.Fprintf(&buf, "  course -> %q;\n", sectionID(it.Section))
		}

		id := itemID(it)
		fmt.Fprintf(&buf, "  %q [%s];\n", id, fmtAttrs(it, opts.Detailed))
		fmt.Fprintf(&buf, "  %q -> %q;\n", sectionID(it.Section), id)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func sectionID(n int) string { return fmt.Sprintf("s%d", n) }

func itemID(it lms.Item) string { return fmt.Sprintf("s%dl%d", it.Section, it.Lecture) }

func fmtAttrs(it lms.Item, detailed bool) string {
	label := fmt.Sprintf("L%d: %s", it.Lecture, it.Title)
	if detailed {
		label += "\n" + it.AssetType
	}
	attrs := fmt.Sprintf("label=%q", label)
	if it.Type == "quiz" {
		attrs += `, style="rounded,filled,dashed", fillcolor=lightgrey`
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render SVG")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root SVG tag so the image scales to its
// container instead of carrying Graphviz's point-based size.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
