// Package media shells out to ffprobe and ffmpeg for audio inspection and
// PCM decoding.
//
// ffprobe supplies the container duration used by the timestamp allocator.
// ffmpeg decodes the recording to mono float32 samples over a pipe for the
// silence detector. Both are exposed behind small interfaces so the
// workflow stays testable without the binaries installed.
package media
