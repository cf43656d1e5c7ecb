package workflow

import "errors"

var (
	// ErrMissingInput marks a pair whose audio or lyric file is absent.
	ErrMissingInput = errors.New("missing input file")
	// ErrEmptySegmentation marks a lyric file that strips down to nothing.
	ErrEmptySegmentation = errors.New("no lyric lines after segmentation")
	// ErrSerialization marks a failure writing the output LRC file.
	ErrSerialization = errors.New("write synchronized lyrics")
	// ErrLocked is returned when another process holds the run lock.
	ErrLocked = errors.New("another lyrsync process is already running")
)
