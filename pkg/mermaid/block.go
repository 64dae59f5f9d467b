package mermaid

import "regexp"

// Block is a fenced mermaid region inside a larger document. Start and End
// are byte offsets into the original document covering the block content
// only, excluding the opening "```mermaid" line and the closing fence.
type Block struct {
	Start int    // offset of the first content byte
	End   int    // offset just past the last content byte
	Text  string // raw content between the fences
}

// blockRe matches a fenced mermaid block non-greedily, so each opening fence
// pairs with the nearest following closing fence rather than the last one in
// the document.
var blockRe = regexp.MustCompile("(?s)```mermaid\n(.*?)```")

// ExtractBlocks scans doc and returns every fenced mermaid block in document
// order. A document without blocks yields an empty slice; that is not an
// error. The scan is read-only and never modifies doc.
func ExtractBlocks(doc string) []Block {
	matches := blockRe.FindAllStringSubmatchIndex(doc, -1)
	blocks := make([]Block, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, Block{
			Start: m[2],
			End:   m[3],
			Text:  doc[m[2]:m[3]],
		})
	}
	return blocks
}

// FixDocument repairs every mermaid block in doc and returns the new document
// text along with a flag reporting whether any block actually changed.
// Replacements are applied from the last block to the first so earlier
// offsets stay valid while splicing. Text outside the blocks is preserved
// byte-for-byte.
func FixDocument(doc string) (string, bool) {
	blocks := ExtractBlocks(doc)
	if len(blocks) == 0 {
		return doc, false
	}

	out := doc
	modified := false
	for i := len(blocks) - 1; i >= 0; i-- {
		b := blocks[i]
		fixed := fixBlock(b.Text)
		if fixed == b.Text {
			continue
		}
		out = out[:b.Start] + fixed + out[b.End:]
		modified = true
	}
	return out, modified
}
