/*
File    : milkconv/shader/assembler_test.go
*/
package shader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milkconv/milkconv/symtab"
)

func TestAssemble_ContainsFixedPreambleAndMain(t *testing.T) {
	a := &Assembler{WaveMode: wavemode_default()}
	out := a.Assemble("", "")
	assert.Contains(t, out, "#version 330 core")
	assert.Contains(t, out, "float float_from_bool(bool b)")
	assert.Contains(t, out, "void main() {")
	assert.Contains(t, out, "FragColor = vec4(")
}

func TestAssemble_PresetOverrideWidensViolatedBoundOnly(t *testing.T) {
	a := &Assembler{
		WaveMode:    wavemode_default(),
		WidenBounds: true,
		ControlValue: func(name string) (string, bool) {
			if name == "zoom" {
				return "2.5", true
			}
			return "", false
		},
	}
	out := a.Assemble("", "")
	assert.Contains(t, out, "uniform float u_zoom = 2.5;")
	line := extractLine(out, "uniform float u_zoom")
	assert.Contains(t, line, `"max":2.5`)
	assert.Contains(t, line, `"min":0.5`)
}

func TestAssemble_WidenBoundsFalseLeavesSliderBoundsUntouched(t *testing.T) {
	a := &Assembler{
		WaveMode:    wavemode_default(),
		WidenBounds: false,
		ControlValue: func(name string) (string, bool) {
			if name == "zoom" {
				return "2.5", true
			}
			return "", false
		},
	}
	out := a.Assemble("", "")
	line := extractLine(out, "uniform float u_zoom")
	assert.Contains(t, line, `"max":1.5`)
	assert.NotContains(t, line, `"max":2.5`)
}

func TestAssemble_PrecisionQualifierEmittedWhenSet(t *testing.T) {
	a := &Assembler{WaveMode: wavemode_default(), Precision: "highp"}
	out := a.Assemble("", "")
	assert.Contains(t, out, "precision highp float;")
}

func TestAssemble_PrecisionQualifierOmittedWhenUnset(t *testing.T) {
	a := &Assembler{WaveMode: wavemode_default()}
	out := a.Assemble("", "")
	assert.NotContains(t, out, "precision")
}

func TestAssemble_MaxWaveItersOverridesDrawWaveCallArgument(t *testing.T) {
	a := &Assembler{WaveMode: wavemode_default(), MaxWaveIters: 16}
	out := a.Assemble("", "")
	assert.Contains(t, out, "pixelUV, iAudioBands.xy, 16,")
}

func TestAssemble_DeclaresUserLocalsInFirstSeenOrder(t *testing.T) {
	a := &Assembler{
		WaveMode: wavemode_default(),
		UserLocals: []*symtab.VariableEntry{
			{Name: "myvar2"},
			{Name: "myvar1"},
		},
	}
	out := a.Assemble("", "")
	assert.True(t, strings.Index(out, "float myvar2 = 0.0;") < strings.Index(out, "float myvar1 = 0.0;"))
}

func TestAssemble_UnknownWaveModeFallback(t *testing.T) {
	a := &Assembler{WaveMode: 99}
	out := a.Assemble("", "")
	assert.Equal(t, 1, strings.Count(out, "float draw_wave("))
	assert.Contains(t, out, "return 0.0;")
}

func extractLine(text, marker string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, marker) {
			return line
		}
	}
	return ""
}

func wavemode_default() int { return 6 }
