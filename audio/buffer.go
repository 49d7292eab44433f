// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Buffer holds a fully decoded stretch of audio: interleaved float32
// samples in [-1, 1] plus the metadata the pipeline stages need.
// Stages take a Buffer and return a new one; they never mutate the input.
type Buffer struct {
	Data       []float32
	SampleRate int
	BitDepth   int
	Channels   int
}

// Frames returns the number of frames (samples per channel).
func (b *Buffer) Frames() int {
	if b.Channels == 0 {
		return 0
	}
	return len(b.Data) / b.Channels
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	data := make([]float32, len(b.Data))
	copy(data, b.Data)
	return &Buffer{
		Data:       data,
		SampleRate: b.SampleRate,
		BitDepth:   b.BitDepth,
		Channels:   b.Channels,
	}
}

// Source wraps the buffer as a streaming Source so it can feed
// stream-based processors like the Resampler.
func (b *Buffer) Source() Source {
	return &bufferSource{buf: b}
}

// ReadAll drains src into a Buffer. The buffer's bit depth comes from the
// source when it reports one (all built-in decoders do); otherwise 16 is
// assumed. The source is not closed.
func ReadAll(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels < 1 {
		channels = 1
	}

	depth := 16
	if dr, ok := src.(DepthReporter); ok {
		depth = dr.BitDepth()
	}

	var data []float32
	buf := make([]float32, 1024*channels)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			data = append(data, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	out := &Buffer{
		Data:       data,
		SampleRate: src.SampleRate(),
		BitDepth:   depth,
		Channels:   channels,
	}

	if len(out.Data)%channels != 0 {
		return nil, ErrInvalidBuffer
	}

	return out, nil
}

type bufferSource struct {
	buf *Buffer
	pos int
}

func (s *bufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *bufferSource) Channels() int   { return s.buf.Channels }
func (s *bufferSource) BitDepth() int   { return s.buf.BitDepth }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.buf.Data) {
		return 0, io.EOF
	}

	n := copy(dst, s.buf.Data[s.pos:])
	s.pos += n

	if s.pos >= len(s.buf.Data) {
		return n, io.EOF
	}
	return n, nil
}
