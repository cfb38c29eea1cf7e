/*
File    : milkconv/translate/translate_test.go
*/
package translate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milkconv/milkconv/preset"
	"github.com/milkconv/milkconv/profile"
)

func TestNormalize_StripsCommentsAndJoinsContinuations(t *testing.T) {
	src := "wave_r = 0.5; // set red\nq1 = max(bass,\n  treb);\nwave_b = 0.3"
	got := Normalize(src)
	assert.NotContains(t, got, "//")
	assert.Contains(t, got, "q1 = max(bass, treb);")
	assert.Contains(t, got, "wave_b = 0.3;")
}

func TestNormalize_BlankLinesDoNotProduceEmptyStatements(t *testing.T) {
	got := Normalize("wave_r = 0.5;\n\n\nwave_g = 0.1;")
	assert.Equal(t, "wave_r = 0.5;\nwave_g = 0.1;", got)
}

func TestTranslate_RedGreenBlueAlphaRewriteToPixelColor(t *testing.T) {
	p, err := preset.Parse(strings.NewReader(
		"per_pixel_1=red = min(max(zoomexp, 0.0), 1.0);\nper_pixel_2=alpha = 1;\n"))
	assert.NoError(t, err)

	result := Translate(p, 6, profile.Default())
	assert.Empty(t, result.Diagnostics)
	assert.Contains(t, result.GLSL, "pixelColor.r =")
	assert.Contains(t, result.GLSL, "pixelColor.a =")
	assert.NotContains(t, result.GLSL, "/* unknown node */")
}

func TestTranslate_PresetScalarOverridePropagatesIntoUniform(t *testing.T) {
	p, err := preset.Parse(strings.NewReader("warp=1.42\nper_pixel_1=zoom = zoom + 0.001;\n"))
	assert.NoError(t, err)

	result := Translate(p, 6, profile.Default())
	assert.Contains(t, result.GLSL, "uniform float u_warp = 1.42;")
}

func TestTranslate_PlainAssignment(t *testing.T) {
	p, err := preset.Parse(strings.NewReader("per_frame_1=wave_r = 0.5;\n"))
	assert.NoError(t, err)
	result := Translate(p, 6, profile.Default())
	assert.Contains(t, result.GLSL, "wave_r = 0.5;")
}

func TestTranslate_SqrAndRandCalls(t *testing.T) {
	p, err := preset.Parse(strings.NewReader("per_frame_1=q1 = sqr(bass) + rand(100);\n"))
	assert.NoError(t, err)
	result := Translate(p, 6, profile.Default())
	assert.Contains(t, result.GLSL, "iAudioBands.x")
	assert.Contains(t, result.GLSL, "rand(uv)")
}

func TestTranslate_UnsupportedWaveModeFallsBackWithoutAbortingTranslation(t *testing.T) {
	p, err := preset.Parse(strings.NewReader("nWaveMode=42\nper_frame_1=q1 = 1;\n"))
	assert.NoError(t, err)
	result := Translate(p, 42, profile.Default())
	assert.Empty(t, result.Diagnostics)
	assert.Contains(t, result.GLSL, "return 0.0;")
}

func TestTranslate_MalformedStatementYieldsDiagnosticNotAbort(t *testing.T) {
	p, err := preset.Parse(strings.NewReader("per_frame_1=q1 = ;\nper_frame_2=q2 = 1;\n"))
	assert.NoError(t, err)
	result := Translate(p, 6, profile.Default())
	assert.NotEmpty(t, result.Diagnostics)
	assert.Equal(t, "per_frame", result.Diagnostics[0].Block)
	assert.Contains(t, result.GLSL, "q2 = 1.0;")
}

func TestTranslate_UserLocalsDeclaredInFirstSeenOrder(t *testing.T) {
	p, err := preset.Parse(strings.NewReader("per_frame_1=myvar2 = 1;\nper_frame_2=myvar1 = 2;\n"))
	assert.NoError(t, err)
	result := Translate(p, 6, profile.Default())
	assert.True(t, strings.Index(result.GLSL, "float myvar2 = 0.0;") < strings.Index(result.GLSL, "float myvar1 = 0.0;"))
}

func TestNormalize_IsIdempotent(t *testing.T) {
	src := "wave_r = 0.5; // set red\nq1 = max(bass,\n  treb)\nwave_b = 0.3;"
	once := Normalize(src)
	twice := Normalize(once)
	assert.Equal(t, once, twice)
}

func TestTranslate_IsDeterministic(t *testing.T) {
	p, err := preset.Parse(strings.NewReader("warp=1.42\nper_frame_1=q1 = bass*2;\nper_pixel_1=red = min(max(zoomexp, 0.0), 1.0);\n"))
	assert.NoError(t, err)
	first := Translate(p, 6, profile.Default())
	second := Translate(p, 6, profile.Default())
	assert.Equal(t, first.GLSL, second.GLSL)
	assert.Equal(t, first.Diagnostics, second.Diagnostics)
}
