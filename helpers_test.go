package lingo_test

import (
	"context"

	"github.com/dmitrymomot/lingo"
)

// stubResolver returns a resolver that always resolves with frag.
func stubResolver(frag map[string]any) lingo.Resolver {
	return func(_ context.Context, _ string) (map[string]any, error) {
		return frag, nil
	}
}

// failingResolver returns a resolver that always fails with err.
func failingResolver(err error) lingo.Resolver {
	return func(_ context.Context, _ string) (map[string]any, error) {
		return nil, err
	}
}
