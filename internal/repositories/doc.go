// Package repositories implements SQLite persistence for the performance history.
//
// [PerformanceRepository] handles CRUD for sung ranges with atomic sequence
// generation for human-readable ordering. Sequence numbers (e.g., performance
// #42) are stable across UUID regeneration and clock skew; the [NextSequence]
// function atomically increments the per-table counter in a dedicated
// sequence table.
package repositories
