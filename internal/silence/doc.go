// Package silence finds low-energy intervals in a decoded audio signal.
//
// Pauses between sung phrases show up as sustained drops in short-time RMS
// energy. Detect frames the signal, converts each frame's RMS to decibels,
// and reports every maximal run of sub-threshold frames that lasts long
// enough to plausibly mark a phrase boundary. Analyze wraps decoding plus
// detection and degrades to an empty result instead of failing, because the
// timestamp allocator has a defined fallback for missing silence data.
package silence
