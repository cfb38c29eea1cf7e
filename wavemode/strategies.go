/*
File    : milkconv/wavemode/strategies.go

GLSL bodies for each wave mode, carried over verbatim from the reference
waveform renderer: this is domain data (shader source text), not Go logic,
so it is not rewritten — only repackaged as one Strategy per mode.
*/
package wavemode

type circleWave struct{}

func (circleWave) VertexFunction() string {
	return `
vec2 wave_mode0_vertex(float radius, float angle, vec2 center, vec2 aspect)
{
    float safeRadius = clamp(radius, -2.0, 2.0);
    float c = wave_safe_cos(angle);
    float s = wave_safe_sin(angle);
    return vec2(safeRadius * c * aspect.y + center.x,
                safeRadius * s * aspect.x + center.y);
}
`
}

func (circleWave) DrawFunction() string {
	return `
// Mode 0: Spectrum circle bars
float draw_wave(vec2 uv, vec2 audio_data, int samples, float wave_x, float wave_y, float wave_mystery)
{
    vec2 audio = wave_clamp_audio(audio_data);
    float intensity = 0.0;
    vec2 center = vec2(wave_x, wave_y);
    vec2 aspect = wave_aspect();
    float wave_scale = 0.25;
    float mystery = clamp(wave_mystery * 0.5 + 0.5, -1.0, 1.0);
    mystery = abs(fract(mystery));
    mystery = mystery * 2.0 - 1.0;

    int raw_samples = max(samples / 2, 2);
    int sample_count = min(raw_samples, MODE0_MAX_WAVE_ITERATIONS + 1);
    int segment_count = max(sample_count - 1, 1);
    float sample_count_f = float(sample_count);
    float angle_base = iTime * 0.2;
    float angle_step = WAVE_TWO_PI / max(sample_count_f, 1.0);

    for (int i = 0; i < segment_count; ++i)
    {
        float displacement1 = (i % 2 == 0) ? audio.x : audio.y;
        float displacement2 = ((i + 1) % 2 == 0) ? audio.x : audio.y;
        float radius1 = clamp(0.5 + 0.4 * displacement1 * wave_scale + mystery, -2.0, 2.0);
        float radius2 = clamp(0.5 + 0.4 * displacement2 * wave_scale + mystery, -2.0, 2.0);
        float angle1 = angle_base + angle_step * float(i);
        float angle2 = angle1 + angle_step;
        vec2 p1 = wave_mode0_vertex(radius1, angle1, center, aspect);
        vec2 p2 = wave_mode0_vertex(radius2, angle2, center, aspect);
        float dist = wave_distance_to_segment(uv, p1, p2);
        float contribution = wave_contribution(dist, 0.01);
        intensity += contribution;
        if (wave_should_exit(i, contribution))
        {
            break;
        }
    }

    return intensity;
}
`
}

type centeredSpiro struct{}

func (centeredSpiro) VertexFunction() string {
	return `
vec2 wave_mode2_vertex(float displacement_x, float displacement_y, vec2 center, vec2 aspect, float wave_scale)
{
    return vec2(displacement_x * wave_scale * aspect.y + center.x,
                displacement_y * wave_scale * aspect.x + center.y);
}
`
}

func (centeredSpiro) DrawFunction() string {
	return `
// Mode 2: Centered dots with trails
float draw_wave(vec2 uv, vec2 audio_data, int samples, float wave_x, float wave_y, float wave_mystery)
{
    vec2 audio = wave_clamp_audio(audio_data);
    float intensity = 0.0;
    vec2 center = vec2(wave_x, wave_y);
    vec2 aspect = wave_aspect();
    float wave_scale = 0.25;
    int sample_count = max(min(samples, MODE2_MAX_WAVE_ITERATIONS), 1);
    float sample_count_f = float(sample_count);

    for (int i = 0; i < sample_count; ++i)
    {
        float displacement_x = (i % 2 == 0) ? audio.x : audio.y;
        float displacement_y = ((i + 32) % 2 == 0) ? audio.x : audio.y;
        vec2 point = wave_mode2_vertex(displacement_x, displacement_y, center, aspect, wave_scale);
        float fade = 1.0 - float(i) / max(sample_count_f, 1.0);
        float dist = wave_safe_distance(uv, point);
        float contribution = wave_contribution(dist, 0.005 + 0.01 * fade);
        intensity += contribution;
        if (wave_should_exit(i, contribution))
        {
            break;
        }
    }

    return intensity;
}
`
}

type centeredSpiroVolume struct{}

func (centeredSpiroVolume) VertexFunction() string {
	return `
vec2 wave_mode3_vertex(float displacement_x, float displacement_y, vec2 center, vec2 aspect, float wave_scale)
{
    return vec2(displacement_x * wave_scale * aspect.y + center.x,
                displacement_y * wave_scale * aspect.x + center.y);
}
`
}

func (centeredSpiroVolume) DrawFunction() string {
	return `
// Mode 3: Volume-modulated centered dots
float draw_wave(vec2 uv, vec2 audio_data, int samples, float wave_x, float wave_y, float wave_mystery, float volume_level)
{
    vec2 audio = wave_clamp_audio(audio_data);
    float intensity = 0.0;
    vec2 center = vec2(wave_x, wave_y);
    vec2 aspect = wave_aspect();
    float base_scale = 0.25;
    float volume = clamp(volume_level, -1.0, 1.0);
    float volume_factor = clamp(volume * volume * 1.3, 0.1, 2.5);
    float wave_scale = base_scale * volume_factor;
    int sample_count = max(min(samples, MODE3_MAX_WAVE_ITERATIONS), 1);
    float sample_count_f = float(sample_count);

    for (int i = 0; i < sample_count; ++i)
    {
        float displacement_x = (i % 2 == 0) ? audio.x : audio.y;
        float displacement_y = ((i + 32) % 2 == 0) ? audio.x : audio.y;
        vec2 point = wave_mode3_vertex(displacement_x, displacement_y, center, aspect, wave_scale);
        float fade = 1.0 - float(i) / max(sample_count_f, 1.0);
        float dist = wave_safe_distance(uv, point);
        float contribution = wave_contribution(dist, 0.007 + 0.01 * fade);
        intensity += contribution;
        if (wave_should_exit(i, contribution))
        {
            break;
        }
    }

    return intensity;
}
`
}

type derivativeLine struct{}

func (derivativeLine) VertexFunction() string {
	return `
vec2 wave_mode_line_vertex(float edge_x, float edge_y, float distance_x, float distance_y,
                           float perpendicular_dx, float perpendicular_dy, float index,
                           float displacement, float wave_scale)
{
    return vec2(edge_x + distance_x * index + perpendicular_dx * 0.25 * displacement * wave_scale,
                edge_y + distance_y * index + perpendicular_dy * 0.25 * displacement * wave_scale);
}
`
}

func (derivativeLine) DrawFunction() string {
	return `
// Mode 4: Derivative line (scripted horizontal display)
float draw_wave(vec2 uv, vec2 audio_data, int samples, float wave_x, float wave_y, float wave_mystery)
{
    vec2 audio = wave_clamp_audio(audio_data);
    float intensity = 0.0;
    float wave_scale = 0.25;

    int raw_samples = max(samples / 2, 2);
    int sample_count = min(raw_samples, MODE4_MAX_WAVE_ITERATIONS + 1);
    int segment_count = max(sample_count - 1, 1);

    float edge_x;
    float edge_y;
    float distance_x;
    float distance_y;
    float perpendicular_dx;
    float perpendicular_dy;
    clip_waveform_edges(0.0, wave_x, wave_y, float(sample_count), edge_x, edge_y,
                        distance_x, distance_y, perpendicular_dx, perpendicular_dy);

    for (int i = 0; i < segment_count; ++i)
    {
        float displacement1 = (i % 2 == 0) ? audio.x : audio.y;
        float displacement2 = ((i + 1) % 2 == 0) ? audio.x : audio.y;
        vec2 p1 = wave_mode_line_vertex(edge_x, edge_y, distance_x, distance_y,
                                        perpendicular_dx, perpendicular_dy, float(i), displacement1, wave_scale);
        vec2 p2 = wave_mode_line_vertex(edge_x, edge_y, distance_x, distance_y,
                                        perpendicular_dx, perpendicular_dy, float(i + 1), displacement2, wave_scale);
        float dist = wave_distance_to_segment(uv, p1, p2);
        float contribution = wave_contribution(dist, 0.01);
        intensity += contribution;
        if (wave_should_exit(i, contribution))
        {
            break;
        }
    }

    return intensity;
}
`
}

type explosiveHash struct{}

func (explosiveHash) VertexFunction() string {
	return `
vec2 wave_mode5_vertex(float radius, float angle, vec2 center, vec2 aspect)
{
    float safeRadius = clamp(radius, -2.0, 2.0);
    float c = wave_safe_cos(angle);
    float s = wave_safe_sin(angle);
    return vec2(safeRadius * c * aspect.y + center.x,
                safeRadius * s * aspect.x + center.y);
}
`
}

func (explosiveHash) DrawFunction() string {
	return `
// Mode 5: Explosive hash radial pattern
float draw_wave(vec2 uv, vec2 audio_data, int samples, float wave_x, float wave_y, float wave_mystery)
{
    vec2 audio = wave_clamp_audio(audio_data);
    float intensity = 0.0;
    vec2 center = vec2(wave_x, wave_y);
    vec2 aspect = wave_aspect();
    float wave_scale = 0.25;

    int raw_samples = max(samples / 2, 1);
    int sample_count = max(min(raw_samples, MODE5_MAX_WAVE_ITERATIONS), 1);
    float sample_count_f = float(sample_count);

    for (int i = 0; i < sample_count; ++i)
    {
        float displacement = (i % 2 == 0) ? audio.x : audio.y;
        float t = float(i) / max(sample_count_f, 1.0);
        float angle = wave_mystery + WAVE_TWO_PI * t;
        float radius = clamp(0.5 + 0.5 * displacement * wave_scale, 0.0, 2.0);
        vec2 point = wave_mode5_vertex(radius, angle, center, aspect);
        float dist = wave_safe_distance(uv, point);
        float contribution = wave_contribution(dist, 0.008);
        intensity += contribution;
        if (wave_should_exit(i, contribution))
        {
            break;
        }
    }

    return intensity;
}
`
}

type lineWave struct{}

func (lineWave) VertexFunction() string {
	return `
vec2 wave_mode6_vertex(float edge_x, float edge_y, float distance_x, float distance_y,
                       float perpendicular_dx, float perpendicular_dy, float index,
                       float displacement, float wave_scale)
{
    return vec2(edge_x + distance_x * index + perpendicular_dx * 0.25 * displacement * wave_scale,
                edge_y + distance_y * index + perpendicular_dy * 0.25 * displacement * wave_scale);
}
`
}

func (lineWave) DrawFunction() string {
	return `
// Mode 6: Angle-adjustable line spectrum
float draw_wave(vec2 uv, vec2 audio_data, int samples, float wave_x, float wave_y, float wave_mystery)
{
    vec2 audio = wave_clamp_audio(audio_data);
    float intensity = 0.0;
    float wave_scale = 0.25;

    int raw_samples = max(samples / 2, 2);
    int sample_count = min(raw_samples, MODE6_MAX_WAVE_ITERATIONS + 1);
    int segment_count = max(sample_count - 1, 1);

    float orientation = 1.57 + clamp(wave_mystery, -1.0, 1.0);

    float edge_x;
    float edge_y;
    float distance_x;
    float distance_y;
    float perpendicular_dx;
    float perpendicular_dy;
    clip_waveform_edges(orientation, wave_x, wave_y, float(sample_count), edge_x, edge_y,
                        distance_x, distance_y, perpendicular_dx, perpendicular_dy);

    for (int i = 0; i < segment_count; ++i)
    {
        float displacement1 = (i % 2 == 0) ? audio.x : audio.y;
        float displacement2 = ((i + 1) % 2 == 0) ? audio.x : audio.y;
        vec2 p1 = wave_mode6_vertex(edge_x, edge_y, distance_x, distance_y,
                                    perpendicular_dx, perpendicular_dy, float(i), displacement1, wave_scale);
        vec2 p2 = wave_mode6_vertex(edge_x, edge_y, distance_x, distance_y,
                                    perpendicular_dx, perpendicular_dy, float(i + 1), displacement2, wave_scale);
        float dist = wave_distance_to_segment(uv, p1, p2);
        float contribution = wave_contribution(dist, 0.01);
        intensity += contribution;
        if (wave_should_exit(i, contribution))
        {
            break;
        }
    }

    return intensity;
}
`
}

type doubleLineWave struct{}

func (doubleLineWave) VertexFunction() string {
	return `
vec2 wave_mode7_vertex(float edge_x, float edge_y, float distance_x, float distance_y,
                       float perpendicular_dx, float perpendicular_dy, float index,
                       float displacement, float wave_scale, float separation)
{
    return vec2(edge_x + distance_x * index + perpendicular_dx * (0.25 * displacement * wave_scale + separation),
                edge_y + distance_y * index + perpendicular_dy * (0.25 * displacement * wave_scale + separation));
}
`
}

func (doubleLineWave) DrawFunction() string {
	return `
// Mode 7: Double spectrum lines
float draw_wave(vec2 uv, vec2 audio_data, int samples, float wave_x, float wave_y, float wave_mystery)
{
    vec2 audio = wave_clamp_audio(audio_data);
    float intensity = 0.0;
    float wave_scale = 0.25;

    int raw_samples = max(samples / 2, 2);
    int sample_count = min(raw_samples, MODE7_MAX_WAVE_ITERATIONS + 1);
    int segment_count = max(sample_count - 1, 1);

    float orientation = 1.57 * max(wave_mystery, 0.1);

    float edge_x;
    float edge_y;
    float distance_x;
    float distance_y;
    float perpendicular_dx;
    float perpendicular_dy;
    clip_waveform_edges(orientation, wave_x, wave_y, float(sample_count), edge_x, edge_y,
                        distance_x, distance_y, perpendicular_dx, perpendicular_dy);

    float separation = pow(clamp(wave_y * 0.5 + 0.5, 0.0, 1.0), 2.0);

    for (int i = 0; i < segment_count; ++i)
    {
        vec2 p1L = wave_mode7_vertex(edge_x, edge_y, distance_x, distance_y,
                                     perpendicular_dx, perpendicular_dy, float(i), audio.x, wave_scale, separation);
        vec2 p2L = wave_mode7_vertex(edge_x, edge_y, distance_x, distance_y,
                                     perpendicular_dx, perpendicular_dy, float(i + 1), audio.x, wave_scale, separation);
        float distL = wave_distance_to_segment(uv, p1L, p2L);
        float contributionL = wave_contribution(distL, 0.01);
        intensity += contributionL;

        vec2 p1R = wave_mode7_vertex(edge_x, edge_y, distance_x, distance_y,
                                     perpendicular_dx, perpendicular_dy, float(i), audio.y, wave_scale, -separation);
        vec2 p2R = wave_mode7_vertex(edge_x, edge_y, distance_x, distance_y,
                                     perpendicular_dx, perpendicular_dy, float(i + 1), audio.y, wave_scale, -separation);
        float distR = wave_distance_to_segment(uv, p1R, p2R);
        float contributionR = wave_contribution(distR, 0.01);
        intensity += contributionR;

        if (wave_should_exit(i, contributionL + contributionR))
        {
            break;
        }
    }

    return intensity;
}
`
}

type spectrumLine struct{}

func (spectrumLine) VertexFunction() string {
	return `
vec2 wave_mode8_vertex(float edge_x, float edge_y, float distance_x, float distance_y,
                       float perpendicular_dx, float perpendicular_dy, float index, float displacement)
{
    float f = 0.1 * log(max(abs(displacement), 0.0001));
    return vec2(edge_x + distance_x * index + perpendicular_dx * f,
                edge_y + distance_y * index + perpendicular_dy * f);
}
`
}

func (spectrumLine) DrawFunction() string {
	return `
// Mode 8: Spectrum line (angled analyser)
float draw_wave(vec2 uv, vec2 audio_data, int samples, float wave_x, float wave_y, float wave_mystery)
{
    vec2 audio = wave_clamp_audio(audio_data);
    float intensity = 0.0;

    int raw_samples = max(min(samples, 256), 2);
    int sample_count = min(raw_samples, MODE8_MAX_WAVE_ITERATIONS + 1);
    int segment_count = max(sample_count - 1, 1);

    float orientation = 1.57 * max(wave_mystery, 0.1);

    float edge_x;
    float edge_y;
    float distance_x;
    float distance_y;
    float perpendicular_dx;
    float perpendicular_dy;
    clip_waveform_edges(orientation, wave_x, wave_y, float(sample_count), edge_x, edge_y,
                        distance_x, distance_y, perpendicular_dx, perpendicular_dy);

    for (int i = 0; i < segment_count; ++i)
    {
        float displacement1 = (i % 2 == 0) ? audio.x : audio.y;
        float displacement2 = ((i + 1) % 2 == 0) ? audio.x : audio.y;
        vec2 p1 = wave_mode8_vertex(edge_x, edge_y, distance_x, distance_y,
                                    perpendicular_dx, perpendicular_dy, float(i), displacement1);
        vec2 p2 = wave_mode8_vertex(edge_x, edge_y, distance_x, distance_y,
                                    perpendicular_dx, perpendicular_dy, float(i + 1), displacement2);
        float dist = wave_distance_to_segment(uv, p1, p2);
        float contribution = wave_contribution(dist, 0.01);
        intensity += contribution;
        if (wave_should_exit(i, contribution))
        {
            break;
        }
    }

    return intensity;
}
`
}
