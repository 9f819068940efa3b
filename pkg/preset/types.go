package preset

import "cloudmarch/internal/cloud"

// Preset describes a named generation configuration loaded from JSON.
// Fields are pointers so that unset values can be filled from an
// inherited parent preset, and finally from the reference defaults.
type Preset struct {
	Inherit         string   `json:"inherit"`
	Seed            *int64   `json:"seed"`
	DomainSize      *float64 `json:"domain_size"`
	SphereCount     *int     `json:"sphere_count"`
	DeltaRatio      *float64 `json:"delta_ratio"`
	SigmaRatio      *float64 `json:"sigma_ratio"`
	Alpha           *float64 `json:"alpha"`
	Beta            *float64 `json:"beta"`
	BaseRadiusRatio *float64 `json:"base_radius_ratio"`
	TextureSize     *int     `json:"texture_size"`
	Frequency       *float64 `json:"frequency"`
}

// Params converts the preset into cloud generation parameters. Unset
// fields fall back to the reference defaults.
func (p *Preset) Params() cloud.Params {
	l := 10.0
	if p.DomainSize != nil {
		l = *p.DomainSize
	}
	n := 20
	if p.SphereCount != nil {
		n = *p.SphereCount
	}
	params := cloud.DefaultParams(l, n)
	if p.DeltaRatio != nil {
		params.DeltaRatio = *p.DeltaRatio
	}
	if p.SigmaRatio != nil {
		params.SigmaRatio = *p.SigmaRatio
	}
	if p.Alpha != nil {
		params.Alpha = *p.Alpha
	}
	if p.Beta != nil {
		params.Beta = *p.Beta
	}
	if p.BaseRadiusRatio != nil {
		params.BaseRadiusRatio = *p.BaseRadiusRatio
	}
	return params
}
