package chem

import (
	"math"
	"testing"
)

func closeTo(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %g, want %g (tol %g)", name, got, want, tol)
	}
}

func TestMolPerL(t *testing.T) {
	tests := []struct {
		name      string
		mgL, mass float64
		want      float64
	}{
		{"sodium", 10780, mwNa, 10.780 / mwNa},
		{"zero", 0, mwCl, 0},
		{"negative clamped", -5, mwCl, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closeTo(t, "molPerL", molPerL(tt.mgL, tt.mass), tt.want, 1e-12)
		})
	}
}

func TestSulfateConversion(t *testing.T) {
	closeTo(t, "sulfateMgL(900)", sulfateMgL(900), 900/mwS*mwSO4, 1e-9)
	if got := sulfateMgL(-10); got != 0 {
		t.Errorf("sulfateMgL(-10) = %g, want 0", got)
	}
}

func TestAlkalinitySplit(t *testing.T) {
	nHCO3, nCO3, nOH, mass := alkSpecies(8.0, MgPerMeqAsCaCO3)

	meqL := 8.0 * DKHToMeqL // 2.856
	eqL := meqL / 1000
	closeTo(t, "nHCO3", nHCO3, 0.89*eqL, 1e-15)
	// Carbonate carries charge 2: molar share is half the 0.10 equivalent
	// share.
	closeTo(t, "nCO3", nCO3, 0.05*eqL, 1e-15)
	closeTo(t, "nOH", nOH, 0.01*eqL, 1e-15)
	closeTo(t, "mass", mass, meqL*MgPerMeqAsCaCO3, 1e-9)

	for _, dkh := range []float64{0, -3} {
		nHCO3, nCO3, nOH, mass := alkSpecies(dkh, MgPerMeqAsCaCO3)
		if nHCO3 != 0 || nCO3 != 0 || nOH != 0 || mass != 0 {
			t.Errorf("alkSpecies(%g) nonzero: %g %g %g %g", dkh, nHCO3, nCO3, nOH, mass)
		}
	}
}

func TestBoronPartitionBounds(t *testing.T) {
	const bMgL = 4.4
	total := molPerL(bMgL, mwB)

	for _, alpha := range []float64{0, 0.2, 0.5, 1} {
		nBoric, nBorate := boronPartition(bMgL, alpha)
		if nBoric < 0 || nBorate < 0 || math.IsNaN(nBoric) || math.IsNaN(nBorate) {
			t.Fatalf("alpha=%g: invalid split %g / %g", alpha, nBoric, nBorate)
		}
		closeTo(t, "boron total", nBoric+nBorate, total, 1e-15)
		closeTo(t, "borate share", nBorate, alpha*total, 1e-15)
	}

	// Out-of-range fractions clamp rather than extrapolate.
	nBoric, nBorate := boronPartition(bMgL, 1.7)
	closeTo(t, "clamped borate", nBorate, total, 1e-15)
	closeTo(t, "clamped boric", nBoric, 0, 1e-15)
}

func TestSpeciateDefaults(t *testing.T) {
	a := DefaultAssumptions()
	c := Speciate(Sample{Na: 10780, S: 900, B: 4.4}, a)

	// Unmeasured fluoride takes the configured default.
	closeTo(t, "fluoride mass", c.Mass(Fluoride), DefaultFluorideMgL/1000, 1e-12)
	// Sample without measured alkalinity falls back to the assumed value.
	closeTo(t, "alk mass", c.Mass(Alkalinity), 8.0*DKHToMeqL*MgPerMeqAsCaCO3/1000, 1e-9)
	// Sulfate is derived from elemental sulfur.
	closeTo(t, "sulfate mass", c.Mass(Sulfate), sulfateMgL(900)/1000, 1e-9)

	measured := 1.14
	alk := 0.0
	c = Speciate(Sample{Na: 10780, F: &measured, AlkDKH: &alk}, a)
	closeTo(t, "measured fluoride", c.Mass(Fluoride), measured/1000, 1e-12)
	if got := c.Mass(Alkalinity); got != 0 {
		t.Errorf("explicit zero alkalinity contributed mass %g", got)
	}
}

func TestSpeciateClampsNegativeConcentrations(t *testing.T) {
	c := Speciate(Sample{Na: -100, Ca: -1, S: -900}, DefaultAssumptions())
	for _, s := range []Species{Sodium, Calcium, Sulfate} {
		if c.Mass(s) != 0 || c.Moles(s) != 0 {
			t.Errorf("%s not clamped: mass %g, moles %g", s, c.Mass(s), c.Moles(s))
		}
	}
}

func TestSpeciateMeasuredChloride(t *testing.T) {
	cl := 19570.0
	c := Speciate(Sample{Na: 11980, Cl: &cl}, DefaultAssumptions())
	if c.ChlorideEstimated {
		t.Error("measured chloride reported as estimated")
	}
	closeTo(t, "chloride mass", c.Mass(Chloride), molPerL(cl, mwCl)*mwCl, 1e-12)

	// A non-positive measurement is treated as missing.
	zero := 0.0
	c = Speciate(Sample{Na: 11980, Cl: &zero}, DefaultAssumptions())
	if !c.ChlorideEstimated {
		t.Error("zero chloride measurement should trigger estimation")
	}
}

func TestTotalMassSumsTableSpecies(t *testing.T) {
	c := Speciate(Sample{Na: 10780, Mg: 1290, Ca: 420, K: 400, S: 900, B: 4.4}, DefaultAssumptions())
	var sum float64
	for _, s := range TableSpecies() {
		sum += c.Mass(s)
	}
	closeTo(t, "total mass", c.TotalMass(), sum, 1e-12)
}

func TestNormalizedAltRefAlk(t *testing.T) {
	a := DefaultAssumptions()
	a.AltRefAlk = true
	if got := a.Normalized().refAlkDKH(); got != AltRefAlkDKH {
		t.Errorf("alt preset not applied to default: got %g", got)
	}

	// An explicit non-default reference alkalinity wins over the preset.
	a.RefAlkDKH = Float(7.0)
	if got := a.Normalized().refAlkDKH(); got != 7.0 {
		t.Errorf("alt preset overrode explicit value: got %g", got)
	}

	a.RefAlkDKH = nil
	if got := a.Normalized().refAlkDKH(); got != AltRefAlkDKH {
		t.Errorf("alt preset not applied to unset value: got %g", got)
	}
}
