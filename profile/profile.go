/*
File    : milkconv/profile/profile.go

Package profile loads optional compiler tuning settings from a TOML file
passed via --profile, mirroring the pack's BurntSushi/toml config-loading
pattern. Tuning never changes dialect semantics — only GLSL emission
knobs (precision qualifiers, wave iteration caps, whether out-of-range
preset overrides widen the emitted slider bounds).
*/
package profile

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Profile holds every compiler tuning knob a .toml profile file may set.
type Profile struct {
	Precision    string `toml:"precision"`     // "highp", "mediump", "lowp"
	MaxWaveIters int    `toml:"max_wave_iters"`
	WidenBounds  bool   `toml:"widen_bounds"`
	DefaultWave  int    `toml:"default_wave_mode"`
}

// Default returns the tuning used when no --profile flag is given.
func Default() Profile {
	return Profile{
		Precision:    "highp",
		MaxWaveIters: 64,
		WidenBounds:  true,
		DefaultWave:  6,
	}
}

// Load reads and decodes path, filling unset fields from Default().
func Load(path string) (Profile, error) {
	p := Default()
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return Profile{}, fmt.Errorf("profile: decode %s: %w", path, err)
	}
	return p, nil
}
