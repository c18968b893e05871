// Package middleware provides composable wrappers around ports.OutcomeStore.
package middleware

import "github.com/aretw0/spindle/pkg/ports"

// Middleware allows wrapping an OutcomeStore to add behavior.
type Middleware func(ports.OutcomeStore) ports.OutcomeStore

// Chain applies middlewares to a store, first middleware outermost.
func Chain(store ports.OutcomeStore, middlewares ...Middleware) ports.OutcomeStore {
	for i := len(middlewares) - 1; i >= 0; i-- {
		store = middlewares[i](store)
	}
	return store
}
