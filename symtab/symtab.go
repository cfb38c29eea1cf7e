/*
File    : milkconv/symtab/symtab.go

Package symtab classifies every identifier the parser encounters into one
of four kinds and keeps insertion-order records so uniform/declaration
emission is deterministic for a given input.
*/
package symtab

import (
	"regexp"

	"github.com/milkconv/milkconv/ast"
)

// VarKind classifies an identifier's role in the generated shader.
type VarKind int

const (
	BuiltinReadOnly VarKind = iota
	Control
	StateRegister
	UserLocal
)

func (k VarKind) String() string {
	switch k {
	case BuiltinReadOnly:
		return "BuiltinReadOnly"
	case Control:
		return "Control"
	case StateRegister:
		return "StateRegister"
	case UserLocal:
		return "UserLocal"
	default:
		return "Unknown"
	}
}

// VariableEntry records one distinct identifier seen while parsing.
type VariableEntry struct {
	ID        int
	Name      string
	Kind      VarKind
	FirstSeen ast.Span
}

// BuiltinVar maps a read-only built-in identifier to its GLSL expression.
// Exhaustive.
var BuiltinVar = map[string]string{
	"time":     "iTime",
	"fps":      "iFps",
	"frame":    "iFrame",
	"progress": "iProgress",
	"bass":     "iAudioBands.x",
	"mid":      "iAudioBands.y",
	"treb":     "iAudioBands.z",
	"bass_att": "iAudioBandsAtt.x",
	"mid_att":  "iAudioBandsAtt.y",
	"treb_att": "iAudioBandsAtt.z",
	"x":        "uv.x",
	"y":        "uv.y",
	"rad":      "length(uv - vec2(0.5))",
	"ang":      "atan(uv.y - 0.5, uv.x - 0.5)",
	"aspectx":  "(iResolution.y / iResolution.x)",
	"aspecty":  "(iResolution.x / iResolution.y)",
}

// ControlDescriptor is a writable control exposed as a `u_<name>` uniform.
type ControlDescriptor struct {
	Name    string
	Default string
	Widget  string
	Min     string
	Max     string
	Step    string
}

// Controls is the exhaustive 51-entry writable-control table, in the
// declaration order uniforms and locals are emitted.
var Controls = []ControlDescriptor{
	{"zoom", "1.0", "slider", "0.5", "1.5", "0.01"},
	{"zoomexp", "1.0", "slider", "0.5", "2.0", "0.01"},
	{"rot", "0.0", "slider", "-0.1", "0.1", "0.001"},
	{"warp", "1.0", "slider", "0.0", "2.0", "0.01"},
	{"cx", "0.5", "slider", "0.0", "1.0", "0.01"},
	{"cy", "0.5", "slider", "0.0", "1.0", "0.01"},
	{"dx", "0.0", "slider", "-0.1", "0.1", "0.001"},
	{"dy", "0.0", "slider", "-0.1", "0.1", "0.001"},
	{"sx", "1.0", "slider", "0.5", "1.5", "0.01"},
	{"sy", "1.0", "slider", "0.5", "1.5", "0.01"},
	{"wave_r", "0.5", "slider", "0.0", "1.0", "0.01"},
	{"wave_g", "0.5", "slider", "0.0", "1.0", "0.01"},
	{"wave_b", "0.5", "slider", "0.0", "1.0", "0.01"},
	{"wave_a", "1.0", "slider", "0.0", "1.0", "0.01"},
	{"wave_x", "0.5", "slider", "0.0", "1.0", "0.01"},
	{"wave_y", "0.5", "slider", "0.0", "1.0", "0.01"},
	{"wave_mystery", "0.0", "slider", "-1.0", "1.0", "0.01"},
	{"decay", "0.98", "slider", "0.9", "1.0", "0.001"},
	{"gamma", "1.0", "slider", "0.1", "5.0", "0.01"},
	{"brighten", "0.0", "slider", "0.0", "1.0", "1.0"},
	{"darken", "0.0", "slider", "0.0", "1.0", "1.0"},
	{"solarize", "0.0", "slider", "0.0", "1.0", "1.0"},
	{"wrap", "1.0", "slider", "0.0", "1.0", "1.0"},
	{"invert", "0.0", "slider", "0.0", "1.0", "1.0"},
	{"darken_center", "0.0", "slider", "0.0", "1.0", "1.0"},
	{"r", "0.0", "slider", "0.0", "1.0", "0.01"},
	{"g", "0.0", "slider", "0.0", "1.0", "0.01"},
	{"b", "0.0", "slider", "0.0", "1.0", "0.01"},
	{"a", "1.0", "slider", "0.0", "1.0", "0.01"},
	{"ob_size", "0.01", "slider", "0.0", "0.1", "0.001"},
	{"ob_r", "0.0", "slider", "0.0", "1.0", "0.01"},
	{"ob_g", "0.0", "slider", "0.0", "1.0", "0.01"},
	{"ob_b", "0.0", "slider", "0.0", "1.0", "0.01"},
	{"ob_a", "1.0", "slider", "0.0", "1.0", "0.01"},
	{"ib_size", "0.01", "slider", "0.0", "0.1", "0.001"},
	{"ib_r", "0.0", "slider", "0.0", "1.0", "0.01"},
	{"ib_g", "0.0", "slider", "0.0", "1.0", "0.01"},
	{"ib_b", "0.0", "slider", "0.0", "1.0", "0.01"},
	{"ib_a", "1.0", "slider", "0.0", "1.0", "0.01"},
	{"mv_x", "12.0", "slider", "0.0", "64.0", "1.0"},
	{"mv_y", "9.0", "slider", "0.0", "48.0", "1.0"},
	{"mv_dx", "0.0", "slider", "-0.1", "0.1", "0.001"},
	{"mv_dy", "0.0", "slider", "-0.1", "0.1", "0.001"},
	{"mv_l", "0.5", "slider", "0.0", "2.0", "0.01"},
	{"mv_r", "1.0", "slider", "0.0", "1.0", "0.01"},
	{"mv_g", "1.0", "slider", "0.0", "1.0", "0.01"},
	{"mv_b", "1.0", "slider", "0.0", "1.0", "0.01"},
	{"mv_a", "0.0", "slider", "0.0", "1.0", "0.01"},
	{"echo_zoom", "1.0", "slider", "0.5", "2.0", "0.01"},
	{"echo_alpha", "0.0", "slider", "0.0", "1.0", "0.01"},
	{"echo_orient", "0.0", "slider", "0.0", "3.0", "1.0"},
}

// controlIndex maps a control name to its position in Controls.
var controlIndex = func() map[string]int {
	m := make(map[string]int, len(Controls))
	for i, c := range Controls {
		m[c.Name] = i
	}
	return m
}()

// PerPixelRewrites renames per-pixel output variables to the pixelColor
// swizzle the epilogue reads back.
var PerPixelRewrites = map[string]string{
	"red":   "pixelColor.r",
	"green": "pixelColor.g",
	"blue":  "pixelColor.b",
	"alpha": "pixelColor.a",
}

// controlAlias maps the per-pixel program's long-form color names to the
// control they alias, so they classify as Control rather than UserLocal
// (PerPixelRewrites then handles renaming them to pixelColor.* at emission).
var controlAlias = map[string]string{
	"red":   "r",
	"green": "g",
	"blue":  "b",
	"alpha": "a",
}

var stateRegisterPattern = regexp.MustCompile(`^(q([1-9]|[12][0-9]|3[0-2])|t[1-8])$`)

// IsStateRegister reports whether name matches q1..q32 or t1..t8.
func IsStateRegister(name string) bool {
	return stateRegisterPattern.MatchString(name)
}

// Classify determines the VarKind a bare identifier belongs to.
func Classify(name string) VarKind {
	if _, ok := BuiltinVar[name]; ok {
		return BuiltinReadOnly
	}
	if _, ok := controlIndex[name]; ok {
		return Control
	}
	if _, ok := controlAlias[name]; ok {
		return Control
	}
	if IsStateRegister(name) {
		return StateRegister
	}
	return UserLocal
}

// Table is the symbol table built while parsing one preset's expression
// blocks. Entries are recorded in first-seen order for deterministic
// uniform/declaration emission.
type Table struct {
	entries []*VariableEntry
	byName  map[string]*VariableEntry
}

// New creates an empty symbol table.
func New() *Table {
	return &Table{byName: make(map[string]*VariableEntry)}
}

// Resolve looks up or registers name, returning its entry. The first
// occurrence of a name fixes its FirstSeen span and VarKind.
func (t *Table) Resolve(name string, pos ast.Span) *VariableEntry {
	if e, ok := t.byName[name]; ok {
		return e
	}
	e := &VariableEntry{
		ID:        len(t.entries),
		Name:      name,
		Kind:      Classify(name),
		FirstSeen: pos,
	}
	t.entries = append(t.entries, e)
	t.byName[name] = e
	return e
}

// Lookup returns the entry for name without registering it, and whether
// it was found.
func (t *Table) Lookup(name string) (*VariableEntry, bool) {
	e, ok := t.byName[name]
	return e, ok
}

// UserLocals returns every UserLocal entry in first-seen order.
func (t *Table) UserLocals() []*VariableEntry {
	var out []*VariableEntry
	for _, e := range t.entries {
		if e.Kind == UserLocal {
			out = append(out, e)
		}
	}
	return out
}

// Entries returns every registered entry in first-seen order.
func (t *Table) Entries() []*VariableEntry {
	return t.entries
}
