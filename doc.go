// Package tradelog reconstructs discrete trading positions from a raw stream
// of exchange order fills, and records them in a local, auditable journal.
//
// The heart of the package is the position reconstruction engine: given the
// time-ordered fills for one account and symbol, it partitions them into
// position groups (periods where net exposure is non-zero), splitting any
// fill that simultaneously closes one position and opens the next, and
// computes for every group its peak exposure, weighted-average entry and
// exit prices, and realized profit-and-loss net of fees using first-in
// first-out lot matching.
//
// The engine is a pure, synchronous computation over an in-memory slice of
// fills: it performs no I/O, retains no state between calls, and never
// errors on well-formed input. Everything around it is a collaborator
// consumed through a narrow surface:
//   - Fetching order history from an exchange REST API (exchange.go).
//   - Persisting fills and reconstructed positions to human-readable,
//     version-controllable JSONL files (encode.go, book.go).
//
// All quantities and monetary amounts are fixed-point decimals; rounding is
// applied only at two documented points, when splitting an overshooting
// fill's fee and when reporting a group's final realized PnL.
//
// This package serves as the foundational logic for the `tl` command-line
// tool.
package tradelog
