// Package quiz runs question rounds over the deck.
//
// Terms are presented in round-robin insertion order. Each answer is judged
// against the term's definition; a wrong answer adds a mistake to the term
// and, when the answer is the definition of some other card, the result
// names that card.
package quiz
