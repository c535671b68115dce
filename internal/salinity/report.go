package salinity

import (
	"math"

	"github.com/sumwatshade/saltwater/internal/chem"
	"github.com/sumwatshade/saltwater/internal/teos10"
)

// Result is the summary every calculation produces. SA is always derived
// from the reported SP through the reference salinity ratio, so the two can
// never disagree.
type Result struct {
	SP      float64 `json:"sp"`
	SA      float64 `json:"sa"`
	Density float64 `json:"density_kg_per_m3"`
	SG2020  float64 `json:"sg_20_20"`
	SG2525  float64 `json:"sg_25_25"`
	// Converged is false when the solver ran out of iterations and the
	// values above are best-effort.
	Converged  bool `json:"converged"`
	Iterations int  `json:"iterations"`
}

// ComponentRow is one species in the detailed component table.
type ComponentRow struct {
	Species chem.Species `json:"species"`
	MgPerL  float64      `json:"mg_per_l"`
	MgPerKg float64      `json:"mg_per_kg"`
	// MgPerLNorm and MgPerKgNorm are scaled to the normalization salinity
	// (35 by default) for comparison against reference seawater.
	MgPerLNorm  float64 `json:"mg_per_l_norm"`
	MgPerKgNorm float64 `json:"mg_per_kg_norm"`
}

// Detailed extends Result with the per-species component table.
type Detailed struct {
	Result
	Components []ComponentRow `json:"components"`
	NormFactor float64        `json:"norm_factor"`
	// ChlorideEstimated records whether chloride was estimated rather
	// than measured.
	ChlorideEstimated bool `json:"chloride_estimated"`
}

// Calculate is the convenience entry point: speciate the sample, resolve
// the reference total and solve with the default TEOS-10 provider and
// solver settings.
func Calculate(s chem.Sample, a chem.Assumptions) (Result, error) {
	a = a.Normalized()
	comp := chem.Speciate(s, a)
	return summarize(teos10.New(), comp, a, NewSolver(teos10.New()))
}

// CalculateDetailed is Calculate plus the component table.
func CalculateDetailed(s chem.Sample, a chem.Assumptions) (Detailed, error) {
	a = a.Normalized()
	comp := chem.Speciate(s, a)
	p := teos10.New()
	res, err := summarize(p, comp, a, NewSolver(p))
	if err != nil {
		return Detailed{}, err
	}
	rows, norm := ComponentTable(comp, res.Density, res.SP, a.SalinityNorm)
	return Detailed{
		Result:            res,
		Components:        rows,
		NormFactor:        norm,
		ChlorideEstimated: comp.ChlorideEstimated,
	}, nil
}

// summarize solves and assembles a Result. The reported density and
// specific gravities are recomputed from the rounded SP so that every
// number in the result is consistent with the one salinity it shows.
func summarize(p Provider, comp *chem.Composition, a chem.Assumptions, solver *Solver) (Result, error) {
	sol, err := solver.Solve(comp, chem.ReferenceMassFor(a), a)
	if err != nil {
		return Result{}, err
	}

	sp := roundTo(sol.SP, 4)
	sa := teos10.SAFromSP(sp)

	ct, err := p.ConservativeTemperature(sa, a.Temperature, a.PressureDbar)
	if err != nil {
		return Result{}, err
	}
	rho, err := p.Density(sa, ct, a.PressureDbar)
	if err != nil {
		return Result{}, err
	}
	sg20, err := SpecificGravity(p, sp, 20.0, 0.0)
	if err != nil {
		return Result{}, err
	}
	sg25, err := SpecificGravity(p, sp, 25.0, 0.0)
	if err != nil {
		return Result{}, err
	}

	return Result{
		SP:         sp,
		SA:         sa,
		Density:    rho,
		SG2020:     sg20,
		SG2525:     sg25,
		Converged:  sol.Status == Converged,
		Iterations: sol.Iterations,
	}, nil
}

// ComponentTable builds the per-species table: mg/L as measured, mg/kg via
// the converged density, and both normalized to salinity norm. A pure
// transformation of already-computed state.
func ComponentTable(comp *chem.Composition, rho, sp, norm float64) ([]ComponentRow, float64) {
	kgPerL := rho / 1000
	factor := norm / max(sp, tiny)

	species := chem.TableSpecies()
	rows := make([]ComponentRow, 0, len(species))
	for _, sc := range species {
		mgL := comp.Mass(sc) * 1000
		mgKg := mgL / kgPerL
		rows = append(rows, ComponentRow{
			Species:     sc,
			MgPerL:      mgL,
			MgPerKg:     mgKg,
			MgPerLNorm:  mgL * factor,
			MgPerKgNorm: mgKg * factor,
		})
	}
	return rows, factor
}

func roundTo(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}
