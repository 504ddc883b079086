// Package revision resolves Raspberry Pi revision codes into board records.
//
// The revision table is a YAML document embedded into the binary and decoded
// once during package initialization. After that it is only read, so lookups
// are safe from any number of goroutines without locking.
//
// Resolution is split into two explicit operations:
//   - ResolveFromCode performs a pure lookup of a code the caller already has
//   - ResolveFromHostInfo reads the host's system info source first, then
//     resolves the Revision it found and attaches the board serial
package revision
