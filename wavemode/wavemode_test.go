/*
File    : milkconv/wavemode/wavemode_test.go
*/
package wavemode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_KnownModeProducesSingleDrawWave(t *testing.T) {
	for _, mode := range []int{0, 2, 3, 4, 5, 6, 7, 8} {
		out := Generate(mode)
		assert.Equal(t, 1, strings.Count(out, "float draw_wave("), "mode %d", mode)
	}
}

func TestGenerate_UnknownModeFallsBackToNoOp(t *testing.T) {
	out := Generate(99)
	assert.Equal(t, 1, strings.Count(out, "float draw_wave("))
	assert.Contains(t, out, "return 0.0;")
}

func TestCallPattern_Mode3TakesVolumeArgument(t *testing.T) {
	assert.Contains(t, CallPattern(3, DefaultMaxIters), "iAudioBands.z")
}

func TestCallPattern_OtherModesOmitVolumeArgument(t *testing.T) {
	assert.NotContains(t, CallPattern(6, DefaultMaxIters), "iAudioBands.z")
}

func TestCallPattern_UsesGivenMaxIters(t *testing.T) {
	assert.Contains(t, CallPattern(6, 32), "pixelUV, iAudioBands.xy, 32,")
}
