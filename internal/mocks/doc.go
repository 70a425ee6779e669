// Package mocks provides centralized mock implementations for testing.
//
// Each mock implements one interface with a function field per method, so a
// test overrides only the behavior it cares about. Unset fields fall back to a
// harmless default. Mocks record their calls for verification.
//
//	gen := &mocks.MockGenerator{
//	    GenerateFn: func(ctx context.Context, prompt string) (string, error) {
//	        return `{"category": "work"}`, nil
//	    },
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Track calls behind a mutex so the mock is safe for parallel tests
package mocks
