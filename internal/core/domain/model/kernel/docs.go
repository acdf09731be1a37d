// Package kernel provides core domain primitives used throughout the
// trade-fulfillment domain model.
//
// The package includes:
//   - UUID: a value object for entity identifiers with validation and comparison
//
// Primitives here are immutable and thread-safe. Every aggregate, tenant and
// cross-entity reference in the system is identified by a kernel.UUID.
package kernel
