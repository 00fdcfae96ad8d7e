// Package testutils provides helpers shared by the package tests.
//
// Decks are built with functional options:
//
//	deck := testutils.MustCreateDeck(t,
//	    testutils.WithCards("dog", "woof", "cat", "meow"),
//	    testutils.WithMistakes("dog", 3),
//	)
//
// Card files live on an in-memory filesystem:
//
//	fs := testutils.NewMemFs(t, map[string]string{"cards.txt": "dog:woof\n"})
package testutils
