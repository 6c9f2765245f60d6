// Package models defines domain entities and persistence interfaces for the bottles performance history.
//
// [Performance] is the one persistent entity: a record of a verse range that
// was sung to completion, whether from the CLI or the TUI. It implements the
// [Model] interface providing ID generation, timestamps and validation; the
// [Repository] interface defines the standard data access operations backed
// by SQLite in the repositories package.
package models
