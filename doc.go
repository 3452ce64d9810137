// Package tradebook computes net holdings, FIFO cost basis and target
// selling prices from a chronological record of buy/sell equity trades.
//
// The core functionalities include:
//   - Trade Normalization: Validating and ordering loosely-typed broker
//     trade rows into a canonical, per-instrument chronological Ledger,
//     with optional instrument aliasing and exited-instrument suppression.
//   - FIFO Lot Book: Replaying an instrument's trades into an ordered queue
//     of open purchase lots, consumed oldest-first by sells, exposing the
//     current position, its weighted average cost, and the remaining lots.
//   - Pricing: Computing the minimum per-share selling price required to
//     realize a target profit percentage on a given quantity, against a
//     point-in-time snapshot of the lot queue.
//
// This package serves as the foundational logic for the `tb` command-line
// tool. The engine itself performs no I/O: hosts map their inputs onto
// RawTradeRecord values and render the structured results it returns.
package tradebook
