package ember

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EmitterSpec is one child emitter inside a Composition. Exactly one emitter
// type is built per spec; fields not used by that type are ignored. The zero
// value of every field falls back to the type's defaults.
type EmitterSpec struct {
	// Type selects the emitter: "burst", "trail", "glow", or "confetti".
	Type string `yaml:"type"`
	// Sub selects the debris flavor for bursts: "normal", "fire", "ice",
	// "electric".
	Sub      string  `yaml:"sub,omitempty"`
	Count    int     `yaml:"count,omitempty"`
	Rate     float64 `yaml:"rate,omitempty"`
	Duration float64 `yaml:"duration,omitempty"`
	Speed    Range   `yaml:"speed,omitempty"`
	Angle    Range   `yaml:"angle,omitempty"`
	Size     Range   `yaml:"size,omitempty"`
	Life     Range   `yaml:"life,omitempty"`
	Shock    Range   `yaml:"shock,omitempty"`
	Spin     Range   `yaml:"spin,omitempty"`
	Drift    Range   `yaml:"drift,omitempty"`
	Color    Color   `yaml:"color,omitempty"`
	Friction float64 `yaml:"friction,omitempty"`
	Scatter  float64 `yaml:"scatter,omitempty"`
	Jitter   float64 `yaml:"jitter,omitempty"`
	ShrinkTo float64 `yaml:"shrinkTo,omitempty"`
	Gravity  float64 `yaml:"gravity,omitempty"`
	Pulse    float64 `yaml:"pulse,omitempty"`
	PulseHz  float64 `yaml:"pulseSpeed,omitempty"`
}

// Composition is a named bundle of child emitter configurations. Triggering
// a composition builds a CompositeEmitter without hard-coding the recipe at
// every call site.
type Composition struct {
	Name     string        `yaml:"name"`
	Emitters []EmitterSpec `yaml:"emitters"`
}

// ParseCompositions decodes a YAML document of the form:
//
//	compositions:
//	  - name: fire-explosion
//	    emitters:
//	      - type: burst
//	        sub: fire
//	        count: 24
//	      - type: glow
//	        duration: 1.2
//
// The caller supplies the bytes; the engine does no file I/O.
func ParseCompositions(data []byte) ([]Composition, error) {
	var doc struct {
		Compositions []Composition `yaml:"compositions"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse compositions: %w", err)
	}
	if len(doc.Compositions) == 0 {
		return nil, fmt.Errorf("parse compositions: no compositions")
	}
	for _, c := range doc.Compositions {
		if c.Name == "" {
			return nil, fmt.Errorf("parse compositions: composition without a name")
		}
	}
	return doc.Compositions, nil
}

// subKindFromName maps a spec sub name to a SubKind. Unknown names fall back
// to the normal flavor.
func subKindFromName(name string) SubKind {
	switch name {
	case "fire":
		return DebrisFire
	case "ice":
		return DebrisIce
	case "electric":
		return DebrisElectric
	default:
		return DebrisNormal
	}
}

// kindForSpecType returns the pool kind a spec type draws from.
func kindForSpecType(t string) (Kind, bool) {
	switch t {
	case "burst":
		return KindDebris, true
	case "trail":
		return KindTrail, true
	case "glow":
		return KindGlow, true
	case "confetti":
		return KindBasic, true
	default:
		return 0, false
	}
}

// BuiltinCompositions returns the stock effect library. The slice is fresh on
// every call; callers may append or modify freely.
func BuiltinCompositions() []Composition {
	return []Composition{
		{
			Name: "fire-explosion",
			Emitters: []EmitterSpec{
				{Type: "burst", Sub: "fire", Count: 24, Shock: Range{30, 50}},
				{Type: "glow", Duration: 0.8, Rate: 10, Color: Color{1, 0.6, 0.2, 1}, Scatter: 8},
			},
		},
		{
			Name: "ice-shatter",
			Emitters: []EmitterSpec{
				{Type: "burst", Sub: "ice", Count: 20, Shock: Range{20, 35}},
				{Type: "trail", Duration: 0.5, Rate: 40, Color: Color{0.7, 0.9, 1, 1}},
			},
		},
		{
			Name: "electric-storm",
			Emitters: []EmitterSpec{
				{Type: "burst", Sub: "electric", Count: 18, Shock: Range{25, 40}},
				{Type: "trail", Duration: 0.8, Rate: 50, Color: Color{0.8, 0.85, 1, 1}, Friction: 0.92},
				{Type: "glow", Duration: 0.8, Rate: 8, Color: Color{0.7, 0.75, 1, 1}, Scatter: 12},
			},
		},
		{
			Name: "score-burst",
			Emitters: []EmitterSpec{
				{Type: "confetti", Count: 16, Spin: Range{-8, 8}},
				{Type: "glow", Duration: 0.4, Rate: 12, Size: Range{3, 5}},
			},
		},
	}
}
