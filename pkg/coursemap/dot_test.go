package coursemap

import (
	"strings"
	"testing"

	"github.com/coursemd/coursemd/pkg/lms"
)

func sampleItems() []lms.Item {
	return []lms.Item{
		{Type: "lecture", Section: 1, Lecture: 1, ID: 101, Title: "Welcome", AssetType: "Video", SectionTitle: "Intro"},
		{Type: "quiz", Section: 1, Lecture: 2, ID: 102, Title: "Quiz", AssetType: "Quiz", SectionTitle: "Intro"},
		{Type: "lecture", Section: 2, Lecture: 1, ID: 201, Title: "Install", AssetType: "Video", SectionTitle: "Setup"},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT("CUDA Course", sampleItems(), Options{})

	if !strings.HasPrefix(dot, "digraph course {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("malformed digraph:\n%s", dot)
	}
	for _, want := range []string{
		`course [label="CUDA Course"`,
		`"s1" [label="S1: Intro"`,
		`course -> "s1";`,
		`"s1l1" [label="L1: Welcome"];`,
		`"s1" -> "s1l1";`,
		`"s2" [label="S2: Setup"`,
		`"s2" -> "s2l1";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}

	// Each section node is declared once even with multiple items.
	if strings.Count(dot, `"s1" [label=`) != 1 {
		t.Errorf("section declared more than once:\n%s", dot)
	}

	// Quizzes get the dashed style.
	if !strings.Contains(dot, `"s1l2" [label="L2: Quiz", style="rounded,filled,dashed", fillcolor=lightgrey];`) {
		t.Errorf("quiz node missing dashed style:\n%s", dot)
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT("C", sampleItems(), Options{Detailed: true})
	if !strings.Contains(dot, `label="L1: Welcome\nVideo"`) {
		t.Errorf("detailed label missing asset type:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?>` + "\n" +
		`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg">` +
		`<g></g></svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 100.00 50.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="100" height="50"`) {
		t.Errorf("pixel size not set: %s", out)
	}
	if strings.Contains(out, "100pt") {
		t.Errorf("point size survived: %s", out)
	}
}

func TestNormalizeViewBoxPassThrough(t *testing.T) {
	in := []byte(`<svg><g></g></svg>`)
	if got := string(normalizeViewBox(in)); got != string(in) {
		t.Errorf("SVG without viewBox should pass through, got %s", got)
	}
}
