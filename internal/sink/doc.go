// Package sink delivers rendered sample batches to the outside world: an
// audio device through PortAudio, or a 16-bit PCM WAV file.
//
// Sinks only ever see closed batches. They never hold an engine, so a bind on
// the editing side cannot race with playback.
//
// Building with the "headless" tag replaces the PortAudio sink with a stub
// that returns ErrUnavailable, for machines without the native library.
package sink
