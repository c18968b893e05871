// Package ports defines the interfaces between the interpreter core and its
// adapters (HTTP, MCP, CLI, stores). Adapters depend on these contracts, not
// on concrete implementations, so transports and storage backends can be
// swapped without touching the core.
package ports
