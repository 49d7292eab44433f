// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FloatToPCM converts a float32 sample in [-1, 1] to a signed PCM integer
// at the given bit depth (16, 24 or 32). Input is clamped first and the
// scaled value is rounded, not truncated.
func FloatToPCM(x float32, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use the positive maximum for both directions to avoid overflow at +1.0.
	maxVal := float64(int64(1)<<(bitDepth-1) - 1)
	return int(math.Round(float64(x) * maxVal))
}

// PCMToFloat converts a signed PCM integer at the given bit depth to a
// float32 sample in [-1, 1].
func PCMToFloat(v int, bitDepth int) float32 {
	scale := float64(int64(1) << (bitDepth - 1))
	return float32(float64(v) / scale)
}
