package mermaid

import (
	"regexp"
	"strings"
)

// structuralChars are characters the Mermaid grammar treats as syntax when
// they appear in an unquoted label. The set is fixed by what the renderer
// actually rejects; do not generalize it.
const structuralChars = ":=/+*?（）→←×✓<>"

// NeedsQuoting reports whether a label must be quoted to render safely.
// True when the text contains wide-script runes (Hiragana, Katakana, CJK
// ideographs, or the fullwidth forms block) or any structural character.
// Plain ASCII identifiers and English words return false.
func NeedsQuoting(s string) bool {
	for _, r := range s {
		if r >= 0x3000 && r <= 0x9fff {
			return true
		}
		if r >= 0xff00 && r <= 0xffef {
			return true
		}
	}
	return strings.ContainsAny(s, structuralChars)
}

// alreadyQuoted reports whether content is wrapped in straight double
// quotes. Quoted content is always left alone so repeated runs are no-ops
// and legitimately quoted literal text is never corrupted.
func alreadyQuoted(s string) bool {
	return len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)
}

// quoteLabel returns the quoted form of a label site's raw content, or the
// content unchanged when no quoting is needed. Internal double quotes are
// downgraded to single quotes so they cannot terminate the new enclosing
// pair.
func quoteLabel(content string) string {
	if alreadyQuoted(content) || !NeedsQuoting(content) {
		return content
	}
	return `"` + strings.ReplaceAll(content, `"`, `'`) + `"`
}

// Label site patterns. Each pattern scopes the match to the nearest
// enclosing delimiter pair: the bracket classes exclude their own closer,
// and arrow labels exclude pipes, so an unterminated delimiter simply never
// matches and its content stays untouched.
var (
	squareLabelRe = regexp.MustCompile(`(\w+)\[([^\]]*?)\]`)
	curlyLabelRe  = regexp.MustCompile(`(\w+)\{([^}]*?)\}`)
	arrowLabelRe  = regexp.MustCompile(`\|([^|]+?)\|`)
)

// fixLabelSites rewrites every label site on a line: arrow labels first,
// then square-bracket and curly-brace node labels. The delimiters
// themselves are never altered, only the content between a matched pair.
func fixLabelSites(line string) string {
	line = rewriteSites(line, arrowLabelRe, 1, false)
	line = rewriteSites(line, squareLabelRe, 2, true)
	line = rewriteSites(line, curlyLabelRe, 2, false)
	return line
}

// rewriteSites applies quoteLabel to capture group `group` of every match
// of re, rebuilding the line left to right so replacements of different
// length cannot shift the spans of sites still to be processed. When
// skipLink is true, a site immediately followed by '(' is left alone so
// markdown-style "label](url)" text is not mistaken for a node label.
func rewriteSites(line string, re *regexp.Regexp, group int, skipLink bool) string {
	matches := re.FindAllStringSubmatchIndex(line, -1)
	if matches == nil {
		return line
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		if skipLink && m[1] < len(line) && line[m[1]] == '(' {
			continue
		}
		cs, ce := m[2*group], m[2*group+1]
		content := line[cs:ce]
		fixed := quoteLabel(content)
		if fixed == content {
			continue
		}
		b.WriteString(line[last:cs])
		b.WriteString(fixed)
		last = ce
	}
	if last == 0 {
		return line
	}
	b.WriteString(line[last:])
	return b.String()
}

// subgraphRe captures the subgraph keyword (with leading indentation) and
// the remainder of the line. A bare "subgraph" with no name does not match.
var subgraphRe = regexp.MustCompile(`^(\s*subgraph\s+)(.*)$`)

// nodeRefRe matches a subgraph remainder of the form "identifier[" which
// carries its own bracket label and is handled by the bracket fixer instead.
var nodeRefRe = regexp.MustCompile(`^\w+\[`)

// fixSubgraph quotes the name of a subgraph header when needed. Names that
// already start with a quote, or that are node references with their own
// bracket label, are left for other fixers.
func fixSubgraph(line string) string {
	m := subgraphRe.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	name := strings.TrimSpace(m[2])
	if strings.HasPrefix(name, `"`) || nodeRefRe.MatchString(name) || !NeedsQuoting(name) {
		return line
	}
	return m[1] + `"` + strings.ReplaceAll(name, `"`, `'`) + `"`
}
