// Package content manages the MDX lecture files of a course: locating
// them on disk, building their frontmatter, scaffolding skeletons for
// lectures that have no content yet, and repairing mermaid diagram
// syntax inside existing files.
package content
