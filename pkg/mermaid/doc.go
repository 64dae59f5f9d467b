// Package mermaid repairs Mermaid diagram syntax embedded in MDX documents.
//
// Generated course content frequently contains diagram labels with Japanese
// text or structural characters (colons, slashes, arrows) that the Mermaid
// grammar treats as syntax when unquoted. This package finds every fenced
// ```mermaid block in a document and rewrites offending node, subgraph, and
// edge labels into quoted form, leaving everything else byte-for-byte intact.
//
// # Pipeline
//
// The repair is a pure function over text, built from four stages:
//
//  1. Extract: locate fenced blocks with exact byte offsets ([ExtractBlocks])
//  2. Classify: decide per line which construct applies
//  3. Fix: quote label sites that need it ([NeedsQuoting])
//  4. Reassemble: splice fixed blocks back into the document ([FixDocument])
//
// The engine is conservative: it only rewrites patterns it positively
// recognizes. Unterminated delimiters, unknown directives, and anything
// outside a mermaid fence pass through unchanged, so re-running the engine
// on its own output is always a no-op.
//
// # Usage
//
//	fixed, modified := mermaid.FixDocument(text)
//	if modified {
//	    os.WriteFile(path, []byte(fixed), 0o644)
//	}
package mermaid
