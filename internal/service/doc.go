// Package service contains the session use cases of the flashcard trainer.
//
// A Session owns one deck, the transcript of everything said during the
// session, and the filesystem used for imports, exports and saved logs. It
// coordinates the store with the quiz engine and the stats reporter, emits
// session events and translates lower-level failures into SessionError
// values. Rendering is left to the caller (see internal/shell).
//
// There is no global state: every piece of mutable data hangs off the
// Session value created in main.
package service
