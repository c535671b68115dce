// Package salinity reconciles a speciated ionic composition with seawater
// density. Salinity and density depend on each other: the measured masses
// are per liter, the reference composition is per kilogram, and the
// conversion between them needs the density that salinity itself
// determines. A fixed-point iteration resolves the cycle; it converges in a
// handful of steps because density varies only weakly with salinity over
// the relevant range.
package salinity

import (
	"fmt"
	"math"

	"github.com/sumwatshade/saltwater/internal/chem"
)

// Provider supplies the TEOS-10 conservative temperature and density
// functions the solver calls each iteration. Implementations must be pure;
// the solver assumes nothing about them beyond the signatures.
type Provider interface {
	// ConservativeTemperature computes CT [deg C] from absolute salinity
	// [g/kg], in-situ temperature [deg C] and pressure [dbar].
	ConservativeTemperature(sa, t, pDbar float64) (float64, error)
	// Density computes in-situ density [kg/m^3] from absolute salinity
	// [g/kg], conservative temperature [deg C] and pressure [dbar].
	Density(sa, ct, pDbar float64) (float64, error)
}

// Status reports how a solve run terminated.
type Status int

const (
	// Converged means successive practical salinities agreed within the
	// tolerance.
	Converged Status = iota
	// MaxIterReached means the iteration budget ran out first. The
	// accompanying solution holds the last computed values; callers decide
	// whether to warn or retry with a larger budget.
	MaxIterReached
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case MaxIterReached:
		return "max iterations reached"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Solver defaults, suitable for the weak density feedback in the seawater
// regime.
const (
	DefaultMaxIter   = 30
	DefaultTolerance = 1e-8
	initialSP        = 35.0
)

const tiny = 1e-20

// Solver runs the fixed-point iteration. The zero value is not useful; use
// NewSolver.
type Solver struct {
	Provider Provider
	// MaxIter caps the number of iterations.
	MaxIter int
	// Tolerance is the convergence threshold on successive SP values.
	Tolerance float64
	// InitialSP seeds the iteration; zero means the standard 35.
	InitialSP float64
}

// NewSolver returns a solver with the documented defaults.
func NewSolver(p Provider) *Solver {
	return &Solver{Provider: p, MaxIter: DefaultMaxIter, Tolerance: DefaultTolerance}
}

// state is the iteration variable: the current salinity estimate and the
// last density and conservative temperature computed for it.
type state struct {
	sp, sa, rho, ct float64
}

// Solution is a converged (or best-effort) salinity/density triple.
type Solution struct {
	// SP is practical salinity (dimensionless, conductivity scale).
	SP float64
	// SA is absolute salinity [g/kg], tied to SP through the reference
	// salinity ratio.
	SA float64
	// Rho is in-situ density [kg/m^3] at SA and the solve conditions.
	Rho float64
	// CT is conservative temperature [deg C] at SA.
	CT float64
	// Iterations is the number of iteration steps performed.
	Iterations int
	Status     Status
}

// Solve iterates the salinity/density fixed point for a composition against
// the reference total refMass [g/kg] under the given assumptions. Provider
// failures abort the solve; running out of iterations does not, it is
// reported through Solution.Status.
func (s *Solver) Solve(c *chem.Composition, refMass float64, a chem.Assumptions) (Solution, error) {
	st := state{sp: s.InitialSP}
	if st.sp == 0 {
		st.sp = initialSP
	}
	st.sa = st.sp * chem.SRRef / 35.0

	totalGL := c.TotalMass()
	sol := Solution{Status: MaxIterReached}

	for i := 0; i < s.MaxIter; i++ {
		ct, err := s.Provider.ConservativeTemperature(st.sa, a.Temperature, a.PressureDbar)
		if err != nil {
			return Solution{}, fmt.Errorf("conservative temperature at SA=%.4f: %w", st.sa, err)
		}
		rho, err := s.Provider.Density(st.sa, ct, a.PressureDbar)
		if err != nil {
			return Solution{}, fmt.Errorf("density at SA=%.4f: %w", st.sa, err)
		}
		st.ct, st.rho = ct, rho

		kgPerL := rho / 1000
		totalGKg := totalGL / kgPerL

		srNew := chem.SRRef * totalGKg / max(refMass, tiny)
		spNew := 35.0 * srNew / chem.SRRef
		sol.Iterations = i + 1

		done := math.Abs(spNew-st.sp) < s.Tolerance
		st.sp, st.sa = spNew, srNew
		if done {
			sol.Status = Converged
			break
		}
	}

	sol.SP = st.sp
	sol.SA = st.sa
	sol.Rho = st.rho
	sol.CT = st.ct
	return sol, nil
}

// SpecificGravity is the ratio of seawater density at practical salinity sp
// to pure-water density, both at the reference temperature [deg C] and
// pressure [dbar].
func SpecificGravity(p Provider, sp, tRef, pRef float64) (float64, error) {
	sa := sp * chem.SRRef / 35.0
	ctSW, err := p.ConservativeTemperature(sa, tRef, pRef)
	if err != nil {
		return 0, fmt.Errorf("seawater conservative temperature: %w", err)
	}
	rhoSW, err := p.Density(sa, ctSW, pRef)
	if err != nil {
		return 0, fmt.Errorf("seawater density: %w", err)
	}
	ctPW, err := p.ConservativeTemperature(0, tRef, pRef)
	if err != nil {
		return 0, fmt.Errorf("pure water conservative temperature: %w", err)
	}
	rhoPW, err := p.Density(0, ctPW, pRef)
	if err != nil {
		return 0, fmt.Errorf("pure water density: %w", err)
	}
	if rhoPW == 0 {
		return 1.0, nil
	}
	return rhoSW / rhoPW, nil
}
