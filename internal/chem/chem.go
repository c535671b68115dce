// Package chem turns a macro chemical analysis of a water sample (mass
// concentrations of the major ions) into a fully speciated ionic
// composition: moles and grams per liter for every species, including the
// carbonate system derived from alkalinity, the boric acid / borate split,
// and an estimated chloride concentration when chloride was not measured.
package chem

// Molar masses [g/mol]
const (
	mwNa     = 22.98976928
	mwCa     = 40.078
	mwMg     = 24.305
	mwK      = 39.0983
	mwSr     = 87.62
	mwBr     = 79.904
	mwCl     = 35.45
	mwF      = 18.998403163
	mwS      = 32.065
	mwSO4    = 96.06
	mwB      = 10.81
	mwBoric  = 61.83 // B(OH)3
	mwBorate = 60.83 // B(OH)4-
)

// SRRef is the TEOS-10 Reference Salinity of standard seawater [g/kg].
const SRRef = 35.16504

// Reference composition of standard seawater [mmol/kg].
const (
	refMmolCl  = 545.8696
	refMmolNa  = 468.9674
	refMmolSO4 = 28.2359
	refMmolMg  = 52.8116
	refMmolCa  = 10.2821
	refMmolK   = 10.2070
	refMmolBr  = 0.8434
	refMmolSr  = 0.0906
	refMmolF   = 0.0680
	refMmolB   = 0.4160
)

// Alkalinity handling. The fixed fractional split of total alkalinity into
// bicarbonate, carbonate and hydroxide is a deliberate simplification; a
// pH/DIC-aware carbonate model is out of scope.
const (
	alkFracHCO3 = 0.89
	alkFracCO3  = 0.10
	alkFracOH   = 0.01

	// DKHToMeqL converts degrees of carbonate hardness to meq/L.
	DKHToMeqL = 0.357
	// MgPerMeqAsCaCO3 is the default alkalinity mass equivalent [mg/meq],
	// expressed as CaCO3.
	MgPerMeqAsCaCO3 = 50.043
)

const (
	// DefaultBorateFraction is the fraction of total boron assumed to be
	// present as B(OH)4- when no explicit value is given.
	DefaultBorateFraction = 0.20
	// DefaultRefAlkDKH is the reference alkalinity [dKH] backing the
	// reference composition total.
	DefaultRefAlkDKH = 8.0
	// AltRefAlkDKH is the alternate reference alkalinity preset [dKH].
	AltRefAlkDKH = 6.2
	// DefaultFluorideMgL substitutes for an unmeasured fluoride
	// concentration [mg/L].
	DefaultFluorideMgL = 1.296
)

const tiny = 1e-20

// Species identifies a dissolved species tracked by a Composition. The
// string values double as display labels in component tables.
type Species string

const (
	Sodium      Species = "Na+"
	Calcium     Species = "Ca2+"
	Magnesium   Species = "Mg2+"
	Potassium   Species = "K+"
	Strontium   Species = "Sr2+"
	Bromide     Species = "Br-"
	Sulfate     Species = "SO4^2-"
	Fluoride    Species = "F-"
	Alkalinity  Species = "Alk."
	BoricAcid   Species = "B(OH)3"
	Borate      Species = "B(OH)4-"
	Chloride    Species = "Cl-"
	Bicarbonate Species = "HCO3-"
	Carbonate   Species = "CO3^2-"
	Hydroxide   Species = "OH-"
)

// tableOrder is the stable ordering of species in component tables. The
// carbonate system appears as the aggregate "Alk." row; the individual
// HCO3-/CO3^2-/OH- moles stay available through Composition.Moles.
var tableOrder = []Species{
	Sodium, Calcium, Magnesium, Potassium, Strontium, Bromide,
	Sulfate, Fluoride, Alkalinity, BoricAcid, Borate, Chloride,
}

// molPerL converts a mass concentration [mg/L] to a molar concentration
// [mol/L]. Negative concentrations are clamped to zero.
func molPerL(mgL, molarMass float64) float64 {
	if mgL < 0 {
		mgL = 0
	}
	return mgL / 1000 / max(molarMass, tiny)
}

// sulfateMgL converts elemental sulfur [mg/L] to sulfate mass [mg/L] by
// molar mass ratio. Sulfur is reported elementally by ICP analyses and is
// used here as a proxy for sulfate.
func sulfateMgL(sMgL float64) float64 {
	return max(sMgL, 0) / mwS * mwSO4
}
