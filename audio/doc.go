// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// This package contains the building blocks of the batch pipeline:
//   - Source interface for streaming audio input
//   - Buffer for fully decoded audio plus its metadata
//   - Trim for leading/trailing silence removal
//   - Measure and Normalize for integrated loudness
//   - Convert for sample-rate and bit-depth conversion
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of audio decoding:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders implement this interface. ReadAll drains a Source
// into a Buffer, which the transform stages then pass along:
//
//	buf, err := audio.ReadAll(src)
//	buf = audio.Trim(buf, 60)
//	buf, err = audio.Normalize(buf, -12.0)
//	buf, err = audio.Convert(buf, 44100, 16)
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to process audio without worrying
// about bit depths and ensures no clipping during intermediate processing.
// A Buffer still carries its origin bit depth so the conversion stage and
// the encoder know the quantization grid to work against.
//
// # Silence Trimming
//
// Trim strips contiguous runs of quiet frames from both ends of a buffer.
// The threshold is a positive dB magnitude below full scale; a frame whose
// peak stays under it counts as silence. A fully silent buffer trims to an
// empty buffer — callers must treat zero frames as a valid outcome.
//
// # Loudness
//
// Measure implements ITU-R BS.1770-4 integrated loudness (K-weighting,
// 400 ms gated blocks). Normalize applies a uniform linear gain so the
// result measures the target LUFS, clamping anything pushed past full
// scale. Silent buffers have no defined loudness; Normalize passes them
// through untouched rather than failing.
//
// # Conversion
//
// Convert resamples with cubic interpolation (see Resampler) and then
// requantizes by rounding to the target depth's grid. Both halves skip
// work when the buffer is already at the target, which makes Convert
// idempotent for fixed targets.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// The batch runner resolves decoders by file extension through a registry.
//
// # Error Handling
//
// Streaming reads return io.EOF when no more data is available. Transform
// errors are sentinel values (ErrInvalidTargetRate, ErrInvalidTargetDepth,
// ErrLoudnessUndefined) suitable for errors.Is.
package audio
