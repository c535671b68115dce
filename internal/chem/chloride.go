package chem

// Chloride estimation for samples where chloride was not measured. Two
// independent estimates are formed and blended:
//
//  1. Charge balance: the residual negative charge required for
//     electroneutrality is assigned to chloride. Physically grounded, but
//     it underestimates when the measured anion set is incomplete or noisy.
//  2. Reference ratios: each major ion implies a chloride concentration via
//     its molar ratio in standard seawater. Robust for near-standard
//     compositions, degrades for atypical ones.
//
// When the charge-balance estimate falls well below the ratio estimate the
// ratio value is trusted outright; otherwise a fixed blend leaning on the
// charge balance is used.

const (
	// ratioTrustThreshold: below this fraction of the ratio estimate the
	// charge-balance value is considered an underestimate and discarded.
	ratioTrustThreshold = 0.8
	// chargeBlendWeight is the charge-balance share of the blend.
	chargeBlendWeight = 0.6
)

// ratioSpecies are the ions with reliable reference ratios to chloride,
// with their reference concentrations [mmol/kg] doubling as blend weights.
var ratioSpecies = []struct {
	species Species
	refMmol float64
}{
	{Sodium, refMmolNa},
	{Magnesium, refMmolMg},
	{Calcium, refMmolCa},
	{Potassium, refMmolK},
	{Strontium, refMmolSr},
	{Bromide, refMmolBr},
	{Sulfate, refMmolSO4},
}

// chargeBalanceChloride computes the chloride concentration [mol/L] that
// closes the charge balance over all known ions, clamped at zero.
func chargeBalanceChloride(c *Composition) float64 {
	pos := c.mol[Sodium] +
		2*c.mol[Magnesium] +
		2*c.mol[Calcium] +
		c.mol[Potassium] +
		2*c.mol[Strontium]

	neg := 2*c.mol[Sulfate] +
		c.mol[Bromide] +
		c.mol[Fluoride] +
		c.mol[Borate] +
		c.mol[Bicarbonate] +
		2*c.mol[Carbonate] +
		c.mol[Hydroxide]

	return max(pos-neg, 0)
}

// ratioChloride computes the weighted mean of the per-species chloride
// candidates [mol/L]. ok is false when no candidate species is present, in
// which case the weighted mean is undefined.
func ratioChloride(c *Composition) (nCl float64, ok bool) {
	var sumW, sumWN float64
	for _, rs := range ratioSpecies {
		n := c.mol[rs.species]
		r := rs.refMmol / refMmolCl
		if rs.refMmol <= 0 || r <= 0 || n <= 0 {
			continue
		}
		sumW += rs.refMmol
		sumWN += rs.refMmol * (n / r)
	}
	if sumW <= 0 {
		return 0, false
	}
	return max(sumWN/sumW, 0), true
}

// EstimateChloride blends the charge-balance and reference-ratio chloride
// estimates into a single concentration [mol/L]. When every ratio species
// is absent the weighted mean degenerates and the charge-balance value is
// used alone.
func EstimateChloride(c *Composition) float64 {
	nCharge := chargeBalanceChloride(c)
	nRatio, ok := ratioChloride(c)
	if !ok || nRatio <= 0 {
		return nCharge
	}
	if nCharge < ratioTrustThreshold*nRatio {
		return nRatio
	}
	return chargeBlendWeight*nCharge + (1-chargeBlendWeight)*nRatio
}
