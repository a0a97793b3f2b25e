// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Int8ToFloat32 scales a signed 8-bit sample into [-1, 1).
func Int8ToFloat32(v int8) float32 {
	return float32(v) / 128.0
}

// Word16ToFloat32 reads a 16-bit word as two's complement PCM and scales it into [-1, 1).
func Word16ToFloat32(w uint16) float32 {
	return float32(int16(w)) / 32768.0
}

// AmplitudeToDBFS converts a linear peak amplitude to decibels relative to full scale.
// Silence maps to negative infinity.
func AmplitudeToDBFS(a float32) float64 {
	if a <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(float64(a))
}
