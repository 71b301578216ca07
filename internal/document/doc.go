// Package document implements the line-addressed document model and
// the command loop that drives it. Each command is a short line read
// through the interactive line editor; the document itself is an
// ordered sequence of text lines with a current-line pointer.
package document
