package salinity

import (
	"errors"
	"math"
	"testing"

	"github.com/sumwatshade/saltwater/internal/chem"
	"github.com/sumwatshade/saltwater/internal/teos10"
)

func closeTo(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %g, want %g (tol %g)", name, got, want, tol)
	}
}

// constProvider returns a fixed density regardless of salinity, which makes
// the fixed point land in a single step.
type constProvider struct{ rho float64 }

func (p constProvider) ConservativeTemperature(sa, t, pDbar float64) (float64, error) {
	return t, nil
}

func (p constProvider) Density(sa, ct, pDbar float64) (float64, error) {
	return p.rho, nil
}

// documented example analysis: reference-like composition, chloride
// unmeasured
func docExample() chem.Sample {
	return chem.Sample{
		Na: 10780, Mg: 1290, Ca: 420, K: 400, Sr: 8, Br: 65,
		S: 900, B: 4.4, AlkDKH: chem.Float(8.0),
	}
}

func TestSolveConstantDensity(t *testing.T) {
	a := chem.DefaultAssumptions()
	comp := chem.Speciate(docExample(), a)
	refMass := chem.ReferenceMassFor(a)

	s := NewSolver(constProvider{rho: 1024})
	sol, err := s.Solve(comp, refMass, a)
	if err != nil {
		t.Fatal(err)
	}
	if sol.Status != Converged {
		t.Fatalf("status = %v, want converged", sol.Status)
	}
	// First step jumps to the fixed point, second confirms it.
	if sol.Iterations != 2 {
		t.Errorf("iterations = %d, want 2", sol.Iterations)
	}

	want := 35.0 * (comp.TotalMass() / 1.024) / refMass
	closeTo(t, "SP", sol.SP, want, 1e-9)
	closeTo(t, "SA", sol.SA, sol.SP*chem.SRRef/35, 1e-9)
	closeTo(t, "rho", sol.Rho, 1024, 0)
}

func TestSolveZeroIterationBudget(t *testing.T) {
	a := chem.DefaultAssumptions()
	comp := chem.Speciate(docExample(), a)

	s := NewSolver(teos10.New())
	s.MaxIter = 0
	sol, err := s.Solve(comp, chem.ReferenceMassFor(a), a)
	if err != nil {
		t.Fatal(err)
	}
	if sol.Status != MaxIterReached {
		t.Errorf("status = %v, want max iterations reached", sol.Status)
	}
	if sol.Iterations != 0 {
		t.Errorf("iterations = %d, want 0", sol.Iterations)
	}
	// The initial guess comes back untouched.
	closeTo(t, "SP", sol.SP, 35, 0)
	closeTo(t, "SA", sol.SA, chem.SRRef, 1e-12)
}

func TestSolveConvergesQuicklyFromStandardGuess(t *testing.T) {
	a := chem.DefaultAssumptions()
	comp := chem.Speciate(docExample(), a)

	s := NewSolver(teos10.New())
	sol, err := s.Solve(comp, chem.ReferenceMassFor(a), a)
	if err != nil {
		t.Fatal(err)
	}
	if sol.Status != Converged {
		t.Fatalf("status = %v, want converged", sol.Status)
	}
	// Density feedback is weak; a handful of steps suffices even at 1e-8.
	if sol.Iterations > 10 {
		t.Errorf("iterations = %d, want <= 10", sol.Iterations)
	}
}

func TestSolveIdempotentFromConvergedState(t *testing.T) {
	a := chem.DefaultAssumptions()
	comp := chem.Speciate(docExample(), a)
	refMass := chem.ReferenceMassFor(a)

	s := NewSolver(teos10.New())
	sol, err := s.Solve(comp, refMass, a)
	if err != nil {
		t.Fatal(err)
	}
	if sol.Status != Converged {
		t.Fatalf("status = %v, want converged", sol.Status)
	}

	// Restarting from the converged salinity must confirm it immediately.
	s2 := NewSolver(teos10.New())
	s2.InitialSP = sol.SP
	sol2, err := s2.Solve(comp, refMass, a)
	if err != nil {
		t.Fatal(err)
	}
	if sol2.Status != Converged {
		t.Fatalf("restart status = %v, want converged", sol2.Status)
	}
	if sol2.Iterations > 1 {
		t.Errorf("restart iterations = %d, want <= 1", sol2.Iterations)
	}
	closeTo(t, "restart SP", sol2.SP, sol.SP, 1e-6)
}

func TestSolvePropagatesProviderFailure(t *testing.T) {
	a := chem.DefaultAssumptions()
	a.Temperature = 500 // outside any provider's validity range
	comp := chem.Speciate(docExample(), a)

	s := NewSolver(teos10.New())
	_, err := s.Solve(comp, chem.ReferenceMassFor(a), a)
	if err == nil {
		t.Fatal("expected provider failure to propagate")
	}
	var re *teos10.RangeError
	if !errors.As(err, &re) {
		t.Errorf("error %v does not unwrap to a RangeError", err)
	}
}

func TestSpecificGravityNearUnity(t *testing.T) {
	sg, err := SpecificGravity(teos10.New(), 35, 20, 0)
	if err != nil {
		t.Fatal(err)
	}
	// SP=35 seawater against pure water at 20/20.
	closeTo(t, "SG 20/20", sg, 1.0266, 0.001)

	fresh, err := SpecificGravity(teos10.New(), 0, 20, 0)
	if err != nil {
		t.Fatal(err)
	}
	closeTo(t, "SG fresh", fresh, 1.0, 1e-9)
}
