// Package kernel provides core domain primitives used throughout the
// marketplace domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - ConstructorGuard: a defensive pattern ensuring objects are built via constructors
//
// These primitives are immutable and thread-safe.
package kernel
