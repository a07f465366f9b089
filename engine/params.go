package engine

import (
	"fmt"
	"math"
)

// ConfigError reports an invalid parameter detected before a sweep
// begins (spec §7: configuration errors fail fast).
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("hachure: invalid %s: %s", e.Field, e.Reason)
}

// Params is the frozen parameter block of spec §3, specifying a
// hachure build. All fields are map-unit/degree values; CellSize is
// used to derive Min/MaxSpacing and JumpDistance when those are left
// zero (spec §6's pixel-count-derived spacing), and as the step of
// the slope sampling along contour segments.
type Params struct {
	// Spacing, in map units. If both are zero, they are derived from
	// MinSpacingPixels/MaxSpacingPixels * CellSize.
	MinSpacing float64 `yaml:"min_spacing"`
	MaxSpacing float64 `yaml:"max_spacing"`

	MinSpacingPixels float64 `yaml:"min_hachure_spacing"`
	MaxSpacingPixels float64 `yaml:"max_hachure_spacing"`

	// Slope range, in degrees, remapped once through the slope-shift
	// transform.
	MinSlope float64 `yaml:"min_slope"`
	MaxSlope float64 `yaml:"max_slope"`

	SlopeShiftExponent float64 `yaml:"slope_shift_exponent"`

	SpacingChecks int `yaml:"spacing_checks"`

	// JumpDistance is the tracer step size. If zero, derived as
	// 3*CellSize.
	JumpDistance   float64 `yaml:"jump_distance"`
	MaxTracerSteps int     `yaml:"max_tracer_steps"`

	// Dash thermostat constants (spec §3); zero means "use default".
	TooShortFactor float64 `yaml:"too_short_factor"`
	TooLongFactor  float64 `yaml:"too_long_factor"`

	// CellSize is the average pixel size of the source rasters, used
	// to derive any of the above left at zero.
	CellSize float64 `yaml:"cell_size"`
}

// DefaultParams returns a Params with the engine's documented
// defaults (spec §3/§6), leaving the spacing/slope range and cell
// size for the caller to fill in.
func DefaultParams() Params {
	return Params{
		SlopeShiftExponent: 1,
		SpacingChecks:      20,
		MaxTracerSteps:     150,
		TooShortFactor:     0.9,
		TooLongFactor:      2.2,
	}
}

// withDefaults returns a copy of p with zero-valued optional fields
// filled in, deriving map-unit spacing/jump-distance from CellSize
// when needed (spec §6).
func (p Params) withDefaults() Params {
	out := p
	if out.SlopeShiftExponent == 0 {
		out.SlopeShiftExponent = 1
	}
	if out.SpacingChecks == 0 {
		out.SpacingChecks = 20
	}
	if out.MaxTracerSteps == 0 {
		out.MaxTracerSteps = 150
	}
	if out.TooShortFactor == 0 {
		out.TooShortFactor = 0.9
	}
	if out.TooLongFactor == 0 {
		out.TooLongFactor = 2.2
	}
	if out.MinSpacing == 0 && out.MaxSpacing == 0 && out.CellSize > 0 {
		if out.MinSpacingPixels > 0 {
			out.MinSpacing = out.MinSpacingPixels * out.CellSize
		}
		if out.MaxSpacingPixels > 0 {
			out.MaxSpacing = out.MaxSpacingPixels * out.CellSize
		}
	}
	if out.JumpDistance == 0 && out.CellSize > 0 {
		out.JumpDistance = 3 * out.CellSize
	}
	return out
}

// Validate implements spec §7's configuration-error class, failing
// fast before any sweep step executes.
func (p Params) Validate() error {
	if p.MinSpacing <= 0 || p.MaxSpacing <= 0 {
		return &ConfigError{"min_spacing/max_spacing", "must be positive (or derivable from cell_size and pixel counts)"}
	}
	if p.MinSpacing >= p.MaxSpacing {
		return &ConfigError{"min_spacing/max_spacing", "min_spacing must be < max_spacing"}
	}
	if p.MinSlope >= p.MaxSlope {
		return &ConfigError{"min_slope/max_slope", "min_slope must be < max_slope"}
	}
	if p.SlopeShiftExponent <= 0 {
		return &ConfigError{"slope_shift_exponent", "must be > 0"}
	}
	if p.SpacingChecks <= 0 {
		return &ConfigError{"spacing_checks", "must be a positive integer"}
	}
	if p.JumpDistance <= 0 {
		return &ConfigError{"jump_distance", "must be positive (or derivable from cell_size)"}
	}
	if p.MaxTracerSteps <= 0 {
		return &ConfigError{"max_tracer_steps", "must be a positive integer"}
	}
	return nil
}

// shift implements spec §3's slope-shift transform: maps v in
// [d0,d1] to [r0,r1] by r0 + (r1-r0)*((v-d0)/(d1-d0))^e, clamped
// outside. Returns (0, false) if d0 >= d1 or e <= 0 (undefined).
func shift(v, d0, d1, r0, r1, e float64) (float64, bool) {
	if d0 >= d1 || e <= 0 {
		return 0, false
	}
	if v <= d0 {
		return r0, true
	}
	if v >= d1 {
		return r1, true
	}
	t := (v - d0) / (d1 - d0)
	return r0 + (r1-r0)*math.Pow(t, e), true
}

// idealSpacing implements spec §3's ideal_spacing for a local slope s
// in degrees. min_slope and max_slope are remapped through the same
// slope-shift transform as s itself (spec §3: "applied to min_slope,
// max_slope, and to every slope value used in ideal_spacing") — the
// gate and the interpolation fraction both live in shifted space, not
// a mix of shifted samples against raw thresholds. ok is false when s
// maps below the shifted min_slope (no hachures belong here).
func (p Params) idealSpacing(s float64) (spacing float64, ok bool) {
	sPrime, valid := shift(s, 0, 90, 0, 90, p.SlopeShiftExponent)
	if !valid {
		return 0, false
	}
	minPrime, valid := shift(p.MinSlope, 0, 90, 0, 90, p.SlopeShiftExponent)
	if !valid {
		return 0, false
	}
	maxPrime, valid := shift(p.MaxSlope, 0, 90, 0, 90, p.SlopeShiftExponent)
	if !valid {
		return 0, false
	}
	if sPrime < minPrime {
		return 0, false
	}
	if sPrime > maxPrime {
		sPrime = maxPrime
	}
	frac := (sPrime - minPrime) / (maxPrime - minPrime)
	return p.MaxSpacing - frac*(p.MaxSpacing-p.MinSpacing), true
}
