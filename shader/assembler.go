/*
File    : milkconv/shader/assembler.go

Package shader implements the final assembly stage: fixed
preamble, injected helpers, wave-mode GLSL, uniform declarations carrying
UI metadata, and a main() built from local declarations, the translated
per-frame/per-pixel blocks, and a fixed post-pipeline epilogue.
*/
package shader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/milkconv/milkconv/symtab"
	"github.com/milkconv/milkconv/wavemode"
)

const preamble = `#version 330 core

out vec4 FragColor;

float float_from_bool(bool b) { return b ? 1.0 : 0.0; }

float rand(vec2 co){
    return fract(sin(dot(co.xy ,vec2(12.9898,78.233))) * 43758.5453);
}
const float EPSILON_EEL = 0.00001;
float sigmoid_eel(float value, float response) {
    float t = 1.0 + exp(-(value) * response);
    return (abs(t) > EPSILON_EEL) ? (1.0 / t) : 0.0;
}
float boolean_and_op_eel(float lhs, float rhs) {
    return (abs(lhs) > EPSILON_EEL && abs(rhs) > EPSILON_EEL) ? 1.0 : 0.0;
}
float boolean_or_op_eel(float lhs, float rhs) {
    return (abs(lhs) > EPSILON_EEL) ? 1.0 : ((abs(rhs) > EPSILON_EEL) ? 1.0 : 0.0);
}
float exec2_helper(float first, float second) {
    return second;
}
float exec3_helper(float first, float second, float third) {
    return third;
}
`

const standardUniforms = `
// Standard host uniforms
uniform float iTime;
uniform vec2 iResolution;
uniform float iFps;
uniform float iFrame;
uniform float iProgress;
uniform vec4 iAudioBands;
uniform vec4 iAudioBandsAtt;
uniform sampler2D iChannel0; // Feedback buffer
uniform sampler2D iChannel1;
uniform sampler2D iChannel2;
uniform sampler2D iChannel3;

`

const epilogue = `
    // Apply coordinate transformations using per-pixel state.
    vec2 pixelCenter = vec2(cx, cy);
    vec2 pixelTranslate = vec2(dx, dy);
    vec2 pixelScale = vec2(sx, sy);
    float pixelZoom = zoom;
    float pixelZoomExp = zoomexp;
    float pixelWarp = warp;
    float pixelRotate = rot;
    float pixelDecay = decay;
    pixelColor = vec4(r, g, b, a);
    vec2 pixelUV = uv;

    vec2 centeredUV = pixelUV - pixelCenter;
    mat2 rotationMatrix = mat2(cos(pixelRotate), -sin(pixelRotate), sin(pixelRotate), cos(pixelRotate));
    centeredUV = rotationMatrix * centeredUV;

    float zoomDenominator = max(0.0001, pow(max(0.0001, pixelZoom), pixelZoomExp));
    vec2 scaleMagnitude = max(abs(pixelScale), vec2(0.0001));
    vec2 scaleSign = vec2(pixelScale.x >= 0.0 ? 1.0 : -1.0, pixelScale.y >= 0.0 ? 1.0 : -1.0);
    vec2 safeScale = scaleSign * scaleMagnitude;
    vec2 scaledUV = centeredUV / safeScale;
    scaledUV /= zoomDenominator;
    scaledUV *= pixelWarp;

    vec2 sampleUV = pixelCenter + scaledUV + pixelTranslate;
    sampleUV = clamp(sampleUV, vec2(0.001), vec2(0.999));

    // Fetch feedback using the transformed UV and apply decay.
    vec4 feedback = texture(iChannel0, sampleUV);
    float decayFactor = clamp(pixelDecay, 0.0, 1.0);
    feedback.rgb *= decayFactor;

    // Blend feedback with per-pixel color output.
    vec4 perPixelColor = clamp(pixelColor, 0.0, 1.0);
    float perPixelAlpha = clamp(perPixelColor.a, 0.0, 1.0);
    vec4 composedColor = mix(feedback, perPixelColor, perPixelAlpha);

    // Preserve existing border tint.
    vec4 border_color = clamp(vec4(ob_r, ob_g, ob_b, ob_a), 0.0, 1.0);
    composedColor = mix(composedColor, border_color, border_color.a);

    // Overlay waveforms.
    vec4 wave_color = clamp(vec4(wave_r, wave_g, wave_b, wave_a), 0.0, 1.0);
    float wave_intensity = %s;
    composedColor.rgb = mix(composedColor.rgb, wave_color.rgb, clamp(wave_intensity * wave_color.a, 0.0, 1.0));

    FragColor = vec4(clamp(composedColor.rgb, 0.0, 1.0), clamp(composedColor.a, 0.0, 1.0));
}
`

// Assembler holds everything the final stitching step needs beyond the
// two translated code blocks.
type Assembler struct {
	WaveMode     int
	ControlValue func(name string) (value string, fromPreset bool)
	UserLocals   []*symtab.VariableEntry

	// Precision, when set, emits a GLSL `precision <x> float;` directive
	// right after the injected helper functions, before the wave-mode GLSL.
	Precision string
	// MaxWaveIters caps the loop bound draw_wave's segment/sample count
	// is called with; zero falls back to the original renderer's fixed 128.
	MaxWaveIters int
	// WidenBounds enables widening a slider's [min,max] to admit a
	// preset override that falls outside it; when false, out-of-range
	// overrides still become the uniform's default value but the
	// advertised slider bounds are left untouched.
	WidenBounds bool
}

// Assemble concatenates preamble, helpers, wave-mode GLSL, uniforms, and
// main() (local declarations + perFrameGLSL + perPixelGLSL + epilogue)
// into one compilable GLSL 330 shader string.
func (a *Assembler) Assemble(perFrameGLSL, perPixelGLSL string) string {
	var b strings.Builder
	b.WriteString(preamble)
	if a.Precision != "" {
		fmt.Fprintf(&b, "precision %s float;\n\n", a.Precision)
	}
	b.WriteString(wavemode.Generate(a.WaveMode))
	b.WriteString(standardUniforms)
	b.WriteString("// Preset-specific uniforms with UI annotations\n")

	for _, ctrl := range symtab.Controls {
		b.WriteString(a.uniformLine(ctrl))
	}

	b.WriteString("\nvoid main() {\n")
	b.WriteString("    vec2 uv = gl_FragCoord.xy / iResolution.xy;\n\n")
	b.WriteString("    // Initialize local variables from uniforms\n")
	for _, ctrl := range symtab.Controls {
		fmt.Fprintf(&b, "    float %s = u_%s;\n", ctrl.Name, ctrl.Name)
	}

	b.WriteString("\n    // State variables\n")
	for i := 1; i <= 32; i++ {
		fmt.Fprintf(&b, "    float q%d = 0.0;\n", i)
	}
	for i := 1; i <= 8; i++ {
		fmt.Fprintf(&b, "    float t%d = 0.0;\n", i)
	}

	// Declared in first-seen order, not
	// alphabetically as the reference implementation's std::set happened to.
	for _, e := range a.UserLocals {
		fmt.Fprintf(&b, "    float %s = 0.0;\n", e.Name)
	}

	b.WriteString("    vec4 pixelColor = vec4(0.0, 0.0, 0.0, 0.0);\n")

	b.WriteString("\n    // Per-frame logic\n")
	b.WriteString(perFrameGLSL)
	b.WriteString("\n    // Per-pixel logic\n")
	b.WriteString(perPixelGLSL)

	maxWaveIters := a.MaxWaveIters
	if maxWaveIters <= 0 {
		maxWaveIters = wavemode.DefaultMaxIters
	}
	fmt.Fprintf(&b, epilogue, wavemode.CallPattern(a.WaveMode, maxWaveIters))

	return b.String()
}

// uniformLine renders `uniform float u_<name> = <default>;` followed by
// the trailing JSON-comment the host UI parses to materialize a control.
// A preset override outside [min,max] widens only the violated bound —
// it never widens the bound the override already satisfies.
func (a *Assembler) uniformLine(ctrl symtab.ControlDescriptor) string {
	defaultValue := ctrl.Default
	sliderMin := ctrl.Min
	sliderMax := ctrl.Max

	if a.ControlValue != nil {
		if raw, ok := a.ControlValue(ctrl.Name); ok {
			if _, err := strconv.ParseFloat(raw, 64); err == nil {
				defaultValue = raw
			}
		}
	}

	if a.WidenBounds {
		numericDefault, defaultErr := strconv.ParseFloat(defaultValue, 64)
		if defaultErr == nil {
			minNumeric, minErr := strconv.ParseFloat(ctrl.Min, 64)
			maxNumeric, maxErr := strconv.ParseFloat(ctrl.Max, 64)
			if minErr == nil && numericDefault < minNumeric {
				sliderMin = defaultValue
			}
			if maxErr == nil && numericDefault > maxNumeric {
				sliderMax = defaultValue
			}
		}
	}

	return fmt.Sprintf(
		"uniform float u_%s = %s; // {\"widget\":\"%s\",\"default\":%s,\"min\":%s,\"max\":%s,\"step\":%s}\n",
		ctrl.Name, defaultValue, ctrl.Widget, defaultValue, sliderMin, sliderMax, ctrl.Step,
	)
}
