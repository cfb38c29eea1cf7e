/*
File    : milkconv/wavemode/helpers.go

Helper GLSL shared by every strategy, plus the no-op fallback for
unsupported nwavemode values. Carried over verbatim as domain data.
*/
package wavemode

const commonHelpers = `
const float WAVE_EPSILON = 1e-5;
const float WAVE_INTENSITY_CUTOFF = 1e-4;
const float WAVE_DISTANCE_CLAMP = 8.0;
const float WAVE_MAX_ANGLE = 8192.0;
const float WAVE_TWO_PI = 6.28318530718;
const int WAVE_MIN_WARMUP_ITERATIONS = 4;

const int MODE0_MAX_WAVE_ITERATIONS = 48;
const int MODE2_MAX_WAVE_ITERATIONS = 48;
const int MODE3_MAX_WAVE_ITERATIONS = 48;
const int MODE4_MAX_WAVE_ITERATIONS = 64;
const int MODE5_MAX_WAVE_ITERATIONS = 48;
const int MODE6_MAX_WAVE_ITERATIONS = 64;
const int MODE7_MAX_WAVE_ITERATIONS = 48;
const int MODE8_MAX_WAVE_ITERATIONS = 64;

vec2 wave_aspect()
{
    return vec2(1.0, 1.0);
}

float wave_clamp_angle(float angle)
{
    return clamp(angle, -WAVE_MAX_ANGLE, WAVE_MAX_ANGLE);
}

float wave_safe_cos(float angle)
{
    return cos(wave_clamp_angle(angle));
}

float wave_safe_sin(float angle)
{
    return sin(wave_clamp_angle(angle));
}

vec2 wave_clamp_vec(vec2 value)
{
    return clamp(value, vec2(-WAVE_DISTANCE_CLAMP), vec2(WAVE_DISTANCE_CLAMP));
}

float wave_safe_length(vec2 value)
{
    vec2 clamped = wave_clamp_vec(value);
    return length(clamped);
}

float wave_safe_distance(vec2 a, vec2 b)
{
    return wave_safe_length(a - b);
}

float wave_contribution(float distance, float softness)
{
    float safeSoftness = max(softness, WAVE_EPSILON);
    float clampedDistance = clamp(distance, 0.0, WAVE_DISTANCE_CLAMP);
    return 1.0 - smoothstep(0.0, safeSoftness, clampedDistance);
}

float wave_distance_to_segment(vec2 p, vec2 v, vec2 w)
{
    vec2 clampedDiff = wave_clamp_vec(w - v);
    float l2 = max(dot(clampedDiff, clampedDiff), WAVE_EPSILON);
    vec2 clampedP = wave_clamp_vec(p - v);
    float t = clamp(dot(clampedP, clampedDiff) / l2, 0.0, 1.0);
    vec2 projection = v + clampedDiff * t;
    return wave_safe_distance(p, projection);
}

float wave_safe_divide(float numerator, float denominator)
{
    float denom = abs(denominator) < WAVE_EPSILON
        ? (denominator >= 0.0 ? WAVE_EPSILON : -WAVE_EPSILON)
        : denominator;
    return numerator / denom;
}

vec2 wave_clamp_audio(vec2 audio)
{
    return clamp(audio, vec2(-1.0), vec2(1.0));
}

bool wave_should_exit(int index, float contribution)
{
    return (index >= WAVE_MIN_WARMUP_ITERATIONS) && (contribution <= WAVE_INTENSITY_CUTOFF);
}

void clip_waveform_edges(float angle, float wave_x, float wave_y, float sample_count,
                         out float edge_x, out float edge_y,
                         out float distance_x, out float distance_y,
                         out float perpendicular_dx, out float perpendicular_dy)
{
    float safeAngle = wave_clamp_angle(angle);
    float orthoAngle = safeAngle + 1.57;
    vec2 direction = vec2(wave_safe_cos(safeAngle), wave_safe_sin(safeAngle));
    float orthoCos = wave_safe_cos(orthoAngle);
    float orthoSin = wave_safe_sin(orthoAngle);

    vec2 edge[2];
    edge[0] = wave_clamp_vec(vec2(wave_x * orthoCos - direction.x * 3.0,
                                  wave_y * orthoSin - direction.y * 3.0));
    edge[1] = wave_clamp_vec(vec2(wave_x * orthoCos + direction.x * 3.0,
                                  wave_y * orthoSin + direction.y * 3.0));

    for (int i = 0; i < 2; ++i)
    {
        for (int j = 0; j < 4; ++j)
        {
            float t = 0.0;
            bool clip = false;
            if (j == 0 && edge[i].x > 1.1)
            {
                t = wave_safe_divide(1.1 - edge[1 - i].x, edge[i].x - edge[1 - i].x);
                clip = true;
            }
            else if (j == 1 && edge[i].x < -1.1)
            {
                t = wave_safe_divide(-1.1 - edge[1 - i].x, edge[i].x - edge[1 - i].x);
                clip = true;
            }
            else if (j == 2 && edge[i].y > 1.1)
            {
                t = wave_safe_divide(1.1 - edge[1 - i].y, edge[i].y - edge[1 - i].y);
                clip = true;
            }
            else if (j == 3 && edge[i].y < -1.1)
            {
                t = wave_safe_divide(-1.1 - edge[1 - i].y, edge[i].y - edge[1 - i].y);
                clip = true;
            }

            if (clip)
            {
                t = clamp(t, 0.0, 1.0);
                vec2 diff = edge[i] - edge[1 - i];
                edge[i] = wave_clamp_vec(edge[1 - i] + diff * t);
            }
        }
    }

    vec2 diff = wave_clamp_vec(edge[1] - edge[0]);
    float inv_samples = 1.0 / max(sample_count, 1.0);
    vec2 delta = diff * inv_samples;

    edge_x = edge[0].x;
    edge_y = edge[0].y;
    distance_x = delta.x;
    distance_y = delta.y;

    float angle2 = atan(delta.y, delta.x);
    perpendicular_dx = wave_safe_cos(angle2 + 1.57);
    perpendicular_dy = wave_safe_sin(angle2 + 1.57);
}
`

const fallbackDraw = `
// Fallback waveform renderer when the mode is unsupported
float draw_wave(vec2 uv, vec2 audio_data, int samples, float wave_x, float wave_y, float wave_mystery)
{
    return 0.0;
}
`
