// Package transcripts stores lecture transcripts on disk and runs a
// small local HTTP endpoint that a browser userscript can POST them to.
package transcripts
