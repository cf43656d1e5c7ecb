// Package workflow drives batch alignment runs.
//
// A run discovers audio/lyric pairs under the configured directories,
// registers them in the ledger, and fans them out to a bounded worker pool.
// Each pair is segmented, probed, analyzed for silence, allocated a
// timeline, and written out as LRC; per-pair failures mark the ledger row
// failed and never abort the rest of the batch. A lock file keeps two runs from sharing a base
// directory.
package workflow
