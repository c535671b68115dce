package chem

import "sync"

// Reference composition handling. The reference total is the dissolved mass
// per kilogram implied by standard seawater, adjusted to the same borate
// fraction and reference alkalinity the sample is evaluated under, so the
// measured and reference totals stay comparable.

// refTable pairs the reference concentrations [mmol/kg] with molar masses.
var refTable = []struct {
	mmolPerKg float64
	molarMass float64
}{
	{refMmolCl, mwCl},
	{refMmolNa, mwNa},
	{refMmolSO4, mwSO4},
	{refMmolMg, mwMg},
	{refMmolCa, mwCa},
	{refMmolK, mwK},
	{refMmolBr, mwBr},
	{refMmolSr, mwSr},
	{refMmolF, mwF},
	{refMmolB, mwB},
}

// baseReferenceMass is the reference total with boron counted elementally
// and no alkalinity contribution [g/kg].
func baseReferenceMass() float64 {
	var sum float64
	for _, e := range refTable {
		sum += e.mmolPerKg * e.molarMass / 1000
	}
	return sum
}

type refKey struct {
	alphaB, refAlkDKH, mgPerMeq float64
}

var refCache struct {
	sync.Mutex
	m map[refKey]float64
}

// ReferenceMass returns the reference total dissolved mass [g/kg] for the
// given borate fraction, reference alkalinity [dKH] and alkalinity mass
// equivalent [mg/meq]. Elemental boron is replaced by the speciated
// B(OH)3/B(OH)4- masses at alphaB, and the reference alkalinity mass is
// added the same way the sample's is. Values are cached per configuration;
// the result depends on nothing sample-specific.
func ReferenceMass(alphaB, refAlkDKH, mgPerMeq float64) float64 {
	key := refKey{alphaB, refAlkDKH, mgPerMeq}
	refCache.Lock()
	defer refCache.Unlock()
	if v, ok := refCache.m[key]; ok {
		return v
	}

	nB := refMmolB / 1000 // [mol/kg]
	alphaB = min(max(alphaB, 0), 1)
	nBorate := alphaB * nB
	nBoric := nB - nBorate

	sum := baseReferenceMass()
	sum -= nB * mwB
	sum += nBorate*mwBorate + nBoric*mwBoric

	if refAlkDKH > 0 {
		_, _, _, alkMgL := alkSpecies(refAlkDKH, mgPerMeq)
		sum += alkMgL / 1000
	}

	if refCache.m == nil {
		refCache.m = make(map[refKey]float64)
	}
	refCache.m[key] = sum
	return sum
}

// ReferenceMassFor resolves the reference total from assumptions.
func ReferenceMassFor(a Assumptions) float64 {
	return ReferenceMass(a.borateFraction(), a.refAlkDKH(), a.alkMgPerMeq())
}
