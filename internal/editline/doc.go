// Package editline implements the interactive line-editing engine.
//
// A LineBuffer holds the in-memory line being edited, a Renderer keeps
// the visible terminal line synchronized with it, and an Editor drives
// the key-event loop between the two. The Editor's ReadLine and
// EditLine are the two entry points the document editor consumes.
package editline
