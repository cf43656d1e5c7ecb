// Package queue persists the per-track processing ledger in SQLite.
//
// Every audio/lyric pair discovered by the workflow gets one row tracking
// its lifecycle (pending, processing, completed, failed) plus the outcome
// counters a later `queue list` wants to show: line count, detected silence
// count, and whether silence analysis degraded. The database is transient
// job state, not an archive; schema changes bump schemaVersion and users
// clear the ledger to adopt the new schema.
package queue
