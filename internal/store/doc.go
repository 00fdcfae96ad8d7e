// Package store holds the in-memory card deck: the term/definition index and
// the mistake ledger that shares its key space. Both are exposed as separate
// interfaces (CardStore and MistakeLedger) implemented by a single Deck, so a
// term can never exist in one view without the other.
package store
