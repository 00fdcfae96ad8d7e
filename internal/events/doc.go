// Package events lets the session announce what happened without knowing who
// is listening.
//
// Every Event carries one of the Type* constants and a JSON payload:
//
//	card.added        domain.Pair of the new card
//	answer.evaluated  quiz.Result of one quiz round
//	stats.reset       number of cards whose counts were cleared
//	cards.imported    card file path and resulting deck size
//	cards.exported    card file path and number of cards written
//
// InMemoryEventEmitter delivers events synchronously to its handlers.
// LogHandler writes them to the debug log; NoopEmitter drops them.
package events
