// Package kasir provides the core logic of a small point-of-sale tool:
// a product catalog, a cart, an append-only ledger of completed sales, and
// import/export of tabular product and transaction data.
//
// The core functionalities include:
//   - Catalog Store: products with unique monotonic ids, persisted as a
//     single JSON blob through an abstract key-value store.
//   - Cart: ephemeral lines referencing catalog products by value copy, one
//     line per product id.
//   - Ledger: committed transactions snapshotting name and price at sale
//     time; entries are addressed by position for deletion.
//   - Import Normalizer: heuristic column detection over heterogeneous
//     spreadsheet or delimited-text rows (Indonesian and English headers
//     mixed), with price sanitization and subtotal/quantity derivation.
//   - Export Formatters: an always-quoted delimited text rendering and a
//     styled spreadsheet rendering of the ledger.
//
// This package serves as the foundational logic for the `pos` command-line
// tool. Persistence is read-modify-write on whole blobs: two processes
// mutating the same data directory concurrently can lose updates. The tool
// is single-user by design and does not arbitrate such races.
package kasir
