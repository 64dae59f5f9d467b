// Package authoring turns English lecture transcripts into Japanese
// MDX lecture bodies using the Gemini API, and runs batch generation
// over a whole course.
package authoring
