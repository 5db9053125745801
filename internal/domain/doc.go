// Package domain contains the conversion engine for unitconv.
//
// The domain does not depend on YAML parsing, terminals, or the filesystem.
// Infra/adapters map into/from these types.
//
// Conversions never fail: missing or invalid input degrades to 0 and a
// rejected factor table is a no-op. Errors in this package (OpError) are for
// the layers around the engine.
package domain
