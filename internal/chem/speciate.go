package chem

// Composition is the speciated form of a sample: molar and mass
// concentrations per species. It is immutable after Speciate except for the
// chloride slot, which Speciate itself fills by estimation when chloride
// was not measured.
type Composition struct {
	mol   map[Species]float64 // [mol/L]
	grams map[Species]float64 // [g/L], table species only
	// ChlorideEstimated records whether the chloride concentration came
	// from the estimator rather than a measurement.
	ChlorideEstimated bool
}

// Moles returns the molar concentration of a species [mol/L]. The aggregate
// Alkalinity species reports charge equivalents [eq/L].
func (c *Composition) Moles(s Species) float64 { return c.mol[s] }

// Mass returns the mass concentration of a table species [g/L].
func (c *Composition) Mass(s Species) float64 { return c.grams[s] }

// TotalMass sums the mass concentrations of all table species [g/L].
func (c *Composition) TotalMass() float64 {
	var sum float64
	for _, s := range tableOrder {
		sum += c.grams[s]
	}
	return sum
}

// TableSpecies returns the species of the component tables in display order.
func TableSpecies() []Species {
	out := make([]Species, len(tableOrder))
	copy(out, tableOrder)
	return out
}

// alkSpecies partitions total alkalinity [dKH] into bicarbonate, carbonate
// and hydroxide moles [mol/L] plus an aggregate alkalinity mass [mg/L]. The
// 0.89/0.10/0.01 fractions apply to charge equivalents; carbonate carries
// charge 2, so its molar share is half its equivalent share.
func alkSpecies(alkDKH, mgPerMeq float64) (nHCO3, nCO3, nOH, massMgL float64) {
	if alkDKH <= 0 {
		return 0, 0, 0, 0
	}
	meqL := alkDKH * DKHToMeqL
	eqL := meqL / 1000

	nHCO3 = alkFracHCO3 * eqL
	nCO3 = alkFracCO3 * eqL / 2
	nOH = alkFracOH * eqL
	massMgL = meqL * mgPerMeq
	return nHCO3, nCO3, nOH, massMgL
}

// boronPartition splits total boron [mg/L] into boric acid and borate moles
// [mol/L] at borate fraction alpha.
func boronPartition(bMgL, alpha float64) (nBoric, nBorate float64) {
	if bMgL <= 0 {
		return 0, 0
	}
	nTotal := molPerL(bMgL, mwB)
	alpha = min(max(alpha, 0), 1)
	nBorate = alpha * nTotal
	nBoric = nTotal - nBorate
	return nBoric, nBorate
}

// Speciate resolves a measured sample against the given assumptions into a
// full ionic composition. Optional fields are resolved once, up front:
// missing fluoride takes the configured default, missing alkalinity falls
// back to the assumed value, and missing chloride is estimated from the
// other ions after everything else is speciated.
func Speciate(s Sample, a Assumptions) *Composition {
	fMgL := a.DefaultFMgL
	if s.F != nil {
		fMgL = *s.F
	}
	alkDKH := 0.0
	switch {
	case s.AlkDKH != nil:
		alkDKH = *s.AlkDKH
	case a.AlkDKH != nil:
		alkDKH = *a.AlkDKH
	}

	nHCO3, nCO3, nOH, alkMassMgL := alkSpecies(alkDKH, a.alkMgPerMeq())
	nBoric, nBorate := boronPartition(s.B, a.borateFraction())
	so4 := sulfateMgL(s.S)

	c := &Composition{
		mol: map[Species]float64{
			Sodium:      molPerL(s.Na, mwNa),
			Calcium:     molPerL(s.Ca, mwCa),
			Magnesium:   molPerL(s.Mg, mwMg),
			Potassium:   molPerL(s.K, mwK),
			Strontium:   molPerL(s.Sr, mwSr),
			Bromide:     molPerL(s.Br, mwBr),
			Sulfate:     molPerL(so4, mwSO4),
			Fluoride:    molPerL(fMgL, mwF),
			BoricAcid:   nBoric,
			Borate:      nBorate,
			Bicarbonate: nHCO3,
			Carbonate:   nCO3,
			Hydroxide:   nOH,
			Alkalinity:  alkDKH * DKHToMeqL / 1000,
		},
		grams: map[Species]float64{
			Sodium:     max(s.Na, 0) / 1000,
			Calcium:    max(s.Ca, 0) / 1000,
			Magnesium:  max(s.Mg, 0) / 1000,
			Potassium:  max(s.K, 0) / 1000,
			Strontium:  max(s.Sr, 0) / 1000,
			Bromide:    max(s.Br, 0) / 1000,
			Sulfate:    so4 / 1000,
			Fluoride:   max(fMgL, 0) / 1000,
			Alkalinity: alkMassMgL / 1000,
			BoricAcid:  nBoric * mwBoric,
			Borate:     nBorate * mwBorate,
		},
	}

	if s.Cl != nil && *s.Cl > 0 {
		c.setChloride(molPerL(*s.Cl, mwCl))
	} else {
		c.setChloride(EstimateChloride(c))
		c.ChlorideEstimated = true
	}
	return c
}

// setChloride fills the chloride slot [mol/L].
func (c *Composition) setChloride(nCl float64) {
	nCl = max(nCl, 0)
	c.mol[Chloride] = nCl
	c.grams[Chloride] = nCl * mwCl
}
