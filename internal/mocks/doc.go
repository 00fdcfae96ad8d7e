// Package mocks provides shared mock implementations for testing.
//
// Mocks are built on testify/mock so expectations and call order can be
// asserted from any test package:
//
//	asker := &mocks.MockAsker{}
//	asker.On("Ask", mock.Anything, "dog").Return("woof", nil)
//	asker.On("Feedback", mock.Anything, mock.Anything).Return(nil)
//	defer asker.AssertExpectations(t)
package mocks
