// Package domain contains the core entities of the flashcard trainer: cards,
// the term/definition pairs they are built from, and the validation errors
// shared by every layer above it. It has no knowledge of storage, files or
// terminal I/O.
package domain
