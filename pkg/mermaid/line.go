package mermaid

import "strings"

// lineKind is the construct a block line is classified as. Every line maps
// to exactly one kind; unrecognized syntax falls back to lineContent and is
// only changed where a label site positively matches.
type lineKind int

const (
	lineContent     lineKind = iota // node/edge line, scanned for label sites
	lineBlank                       // whitespace only, passed through
	lineDeclaration                 // diagram type header or bare "end" keyword
	lineStyle                       // style directive, passed through
	lineSubgraph                    // subgraph header, name is a label candidate
)

// declarations are lines the renderer treats as structure rather than
// content. They never carry labels and must not be touched.
var declarations = map[string]bool{
	"graph TD":        true,
	"graph LR":        true,
	"graph TB":        true,
	"flowchart TD":    true,
	"flowchart LR":    true,
	"flowchart TB":    true,
	"sequenceDiagram": true,
	"classDiagram":    true,
	"end":             true,
}

// classifyLine decides which construct applies to a single block line.
// The checks run in priority order; the first match wins.
func classifyLine(line string) lineKind {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return lineBlank
	case declarations[trimmed]:
		return lineDeclaration
	case strings.HasPrefix(trimmed, "style "):
		return lineStyle
	case strings.HasPrefix(trimmed, "subgraph"):
		return lineSubgraph
	default:
		return lineContent
	}
}

// fixBlock repairs all lines of a single mermaid block. Subgraph headers get
// their name quoted first, then go through the same label-site scan as
// content lines so that "subgraph ID[label]" forms are handled by the
// bracket fixer.
func fixBlock(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		switch classifyLine(line) {
		case lineBlank, lineDeclaration, lineStyle:
			// structural, pass through unchanged
		case lineSubgraph:
			lines[i] = fixLabelSites(fixSubgraph(line))
		case lineContent:
			lines[i] = fixLabelSites(line)
		}
	}
	return strings.Join(lines, "\n")
}
