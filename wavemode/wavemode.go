/*
File    : milkconv/wavemode/wavemode.go

Package wavemode implements the WaveRenderer strategy selector:
a finite set of strategies keyed by the preset's `nwavemode` integer, each
contributing a vertex helper and a `draw_wave` function. Modes outside the
supported set fall back to a no-op renderer returning 0.0.
*/
package wavemode

import "fmt"

// Strategy is one wave-mode code generator. Implementations are stateless;
// they carry no preset data because, like the original renderer, none of
// the supported modes read per-preset tuning values beyond wave_x/wave_y/
// wave_mystery, which are ordinary control uniforms threaded in by the
// shader assembler's call pattern, not by the strategy itself.
type Strategy interface {
	// VertexFunction returns the mode-specific vertex helper, or "" if none.
	VertexFunction() string
	// DrawFunction returns the mode's draw_wave(...) implementation.
	DrawFunction() string
}

// registry is the closed lookup table mapping nwavemode to a Strategy.
// Adding a mode means adding a new Strategy and one entry here.
var registry = map[int]Strategy{
	0: circleWave{},
	2: centeredSpiro{},
	3: centeredSpiroVolume{},
	4: derivativeLine{},
	5: explosiveHash{},
	6: lineWave{},
	7: doubleLineWave{},
	8: spectrumLine{},
}

// DefaultMode is the wave mode for presets that omit `nwavemode`. Nothing
// in this package reads it; the CLI takes its fallback from
// profile.Profile.DefaultWave, whose default is the same value.
const DefaultMode = 6

// DefaultMaxIters is the segment/sample count draw_wave is called with when
// no tuning profile overrides it — the original renderer's fixed 128.
const DefaultMaxIters = 128

// Generate returns the common helpers plus the mode-specific vertex and
// draw functions for mode, or the common helpers plus the fallback
// draw_wave when mode has no registered Strategy.
func Generate(mode int) string {
	strat, ok := registry[mode]
	if !ok {
		return commonHelpers + fallbackDraw
	}
	return commonHelpers + strat.VertexFunction() + strat.DrawFunction()
}

// CallPattern returns the draw_wave(...) invocation the shader assembler
// splices into the post-pipeline epilogue for the given mode, passing
// maxIters as the segment/sample count. Mode 3 is the only strategy taking
// an extra volume_level argument.
func CallPattern(mode, maxIters int) string {
	if mode == 3 {
		return fmt.Sprintf("draw_wave(pixelUV, iAudioBands.xy, %d, wave_x, wave_y, wave_mystery, iAudioBands.z)", maxIters)
	}
	return fmt.Sprintf("draw_wave(pixelUV, iAudioBands.xy, %d, wave_x, wave_y, wave_mystery)", maxIters)
}
