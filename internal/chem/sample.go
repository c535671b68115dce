package chem

// Sample holds the measured mass concentrations [mg/L] of a water sample.
// Chloride, fluoride and alkalinity are optional: nil means "not measured"
// and triggers estimation or a documented default during speciation.
// Negative concentrations are treated as zero.
type Sample struct {
	Na float64 `json:"na"`
	Ca float64 `json:"ca"`
	Mg float64 `json:"mg"`
	K  float64 `json:"k"`
	Sr float64 `json:"sr"`
	Br float64 `json:"br"`
	// S is elemental sulfur, used as a proxy for sulfate.
	S float64 `json:"s"`
	// B is total boron, split into B(OH)3/B(OH)4- during speciation.
	B      float64  `json:"b"`
	Cl     *float64 `json:"cl,omitempty"`
	F      *float64 `json:"f,omitempty"`
	AlkDKH *float64 `json:"alk_dkh,omitempty"`
}

// Assumptions collects the environmental and chemical assumptions a
// calculation runs under. The zero value is not useful; start from
// DefaultAssumptions and override fields as needed.
type Assumptions struct {
	// Temperature is the in-situ temperature [deg C].
	Temperature float64 `json:"temp"`
	// PressureDbar is the in-situ pressure [dbar].
	PressureDbar float64 `json:"pressure_dbar"`
	// AlkDKH is the assumed total alkalinity [dKH] when the sample does
	// not carry a measured value.
	AlkDKH *float64 `json:"alkalinity,omitempty"`
	// AssumeBorate enables the borate split; when false all boron is
	// treated as boric acid.
	AssumeBorate bool `json:"assume_borate"`
	// DefaultFMgL substitutes for an unmeasured fluoride concentration
	// [mg/L].
	DefaultFMgL float64 `json:"default_f_mg_l"`
	// RefAlkDKH is the reference alkalinity [dKH] added to the reference
	// composition total. nil contributes nothing.
	RefAlkDKH *float64 `json:"ref_alk_dkh,omitempty"`
	// SalinityNorm is the practical salinity the component tables are
	// normalized to.
	SalinityNorm float64 `json:"salinity_norm"`
	// ReturnComponents requests the per-species component tables.
	ReturnComponents bool `json:"return_components"`
	// BorateFraction overrides the default borate fraction when set.
	BorateFraction *float64 `json:"borate_fraction,omitempty"`
	// AlkMgPerMeq overrides the alkalinity mass equivalent [mg/meq].
	AlkMgPerMeq *float64 `json:"alk_mg_per_meq,omitempty"`
	// AltRefAlk switches an unset or default RefAlkDKH to the alternate
	// 6.2 dKH preset.
	AltRefAlk bool `json:"alt_ref_alk"`
}

// DefaultAssumptions returns the documented defaults: 20 deg C at the
// surface, borate split enabled, 8.0 dKH sample and reference alkalinity.
func DefaultAssumptions() Assumptions {
	alk := DefaultRefAlkDKH
	refAlk := DefaultRefAlkDKH
	return Assumptions{
		Temperature:  20.0,
		PressureDbar: 0.0,
		AlkDKH:       &alk,
		AssumeBorate: true,
		DefaultFMgL:  DefaultFluorideMgL,
		RefAlkDKH:    &refAlk,
		SalinityNorm: 35.0,
	}
}

// Normalized applies the alternate reference-alkalinity preset. It only
// rewrites RefAlkDKH when the field is unset or still at the default, so an
// explicit non-default choice wins over the preset.
func (a Assumptions) Normalized() Assumptions {
	if a.AltRefAlk {
		if a.RefAlkDKH == nil || *a.RefAlkDKH == DefaultRefAlkDKH {
			alt := AltRefAlkDKH
			a.RefAlkDKH = &alt
		}
	}
	return a
}

// borateFraction resolves the effective borate fraction, clamped to [0, 1].
func (a Assumptions) borateFraction() float64 {
	if !a.AssumeBorate {
		return 0
	}
	f := DefaultBorateFraction
	if a.BorateFraction != nil {
		f = *a.BorateFraction
	}
	return min(max(f, 0), 1)
}

// alkMgPerMeq resolves the alkalinity mass equivalent [mg/meq].
func (a Assumptions) alkMgPerMeq() float64 {
	if a.AlkMgPerMeq != nil {
		return *a.AlkMgPerMeq
	}
	return MgPerMeqAsCaCO3
}

// refAlkDKH resolves the reference alkalinity; unset contributes nothing.
func (a Assumptions) refAlkDKH() float64 {
	if a.RefAlkDKH == nil {
		return 0
	}
	return max(*a.RefAlkDKH, 0)
}

// Float returns a pointer to v, for filling optional fields.
func Float(v float64) *float64 { return &v }
