// Package timeline maps lyric lines onto an audio recording's time axis.
//
// Allocate assigns one timestamp per display line using detected silence
// boundaries when available and a synthesized uniform or extrapolated
// timeline when they are missing or insufficient.
package timeline
