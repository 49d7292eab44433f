package audio

import "fmt"

func ExampleTrim() {
	buf := &Buffer{
		Data:       []float32{0, 0, 0.5, 0.4, 0, 0, 0},
		SampleRate: 44100,
		BitDepth:   16,
		Channels:   1,
	}

	trimmed := Trim(buf, 60)

	fmt.Printf("%d -> %d frames\n", buf.Frames(), trimmed.Frames())
	// Output: 7 -> 2 frames
}

func ExampleRequantize() {
	buf := &Buffer{
		Data:       []float32{0.3},
		SampleRate: 44100,
		BitDepth:   24,
		Channels:   1,
	}

	snapped := Requantize(buf, 16)

	fmt.Printf("%.6f at %d-bit\n", snapped.Data[0], snapped.BitDepth)
	// Output: 0.299988 at 16-bit
}
