package flac

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"

	"github.com/ik5/audiobatch/audio"
)

// flacStream is an interface for flac.Stream to allow testing
type flacStream interface {
	ParseNext() (*frameData, error)
}

// frameData is the per-frame sample payload: one slice per channel.
type frameData struct {
	channels [][]int32
}

// streamAdapter narrows *flac.Stream to flacStream.
type streamAdapter struct {
	stream *flac.Stream
}

func (a *streamAdapter) ParseNext() (*frameData, error) {
	frame, err := a.stream.ParseNext()
	if err != nil {
		return nil, err
	}

	data := &frameData{channels: make([][]int32, len(frame.Subframes))}
	for ch, sub := range frame.Subframes {
		data.channels[ch] = sub.Samples
	}
	return data, nil
}

type source struct {
	dec        flacStream
	sampleRate int
	channels   int
	bitDepth   int
	pending    []float32 // interleaved samples left over from the last frame
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BitDepth() int   { return s.bitDepth }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// Refill from the next FLAC frame when drained. FLAC stores samples
	// planar per subframe; interleave them here.
	for len(s.pending) == 0 {
		frame, err := s.dec.ParseNext()
		if err == io.EOF {
			return 0, io.EOF
		}
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}

		if len(frame.channels) == 0 {
			continue
		}

		frames := len(frame.channels[0])
		scale := float32(int64(1) << (s.bitDepth - 1))
		s.pending = make([]float32, 0, frames*s.channels)

		for f := 0; f < frames; f++ {
			for ch := 0; ch < s.channels; ch++ {
				s.pending = append(s.pending, float32(frame.channels[ch][f])/scale)
			}
		}
	}

	n := copy(dst, s.pending)
	s.pending = s.pending[n:]
	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	info := stream.Info
	if info == nil {
		return nil, ErrNotFlacFile
	}

	return &source{
		dec:        &streamAdapter{stream: stream},
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   int(info.BitsPerSample),
	}, nil
}
