// Package teos10 provides the density and conservative-temperature
// functions the salinity solver depends on. Conservative temperature is
// obtained through a reduced TEOS-10 potential-temperature iteration;
// density comes from the UNESCO 1983 (EOS-80) equation of state evaluated
// at the practical salinity corresponding to the given absolute salinity.
// Both are pure functions of their arguments.
package teos10

import "fmt"

// Constants mirroring GSW_TEOS10_CONSTANTS. Duplicated here so the package
// stands alone.
const (
	gswSfac = 0.0248826675584615
	gswCp0  = 3991.86795711963 // [J/(kg K)]
	gswT0   = 273.15           // [K]
	gswSSO  = 35.16504         // standard ocean reference salinity [g/kg]
	gswUPS  = 35.0             // SSO is this many practical salinity units
)

// Validity envelope. Outside it the polynomial fits are extrapolations and
// a RangeError is returned instead of a guessed value.
const (
	minSA, maxSA     = 0.0, 50.0
	minTC, maxTC     = -6.0, 45.0
	minDbar, maxDbar = 0.0, 11000.0
)

// RangeError reports an argument outside the provider's validity envelope.
type RangeError struct {
	Name     string
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("teos10: %s %g outside validity range [%g, %g]",
		e.Name, e.Value, e.Min, e.Max)
}

func checkRange(name string, v, lo, hi float64) error {
	if v < lo || v > hi {
		return &RangeError{Name: name, Value: v, Min: lo, Max: hi}
	}
	return nil
}

// SAFromSP returns the Reference Salinity [g/kg] for a practical salinity.
// For standard seawater composition SR approximates Absolute Salinity.
func SAFromSP(sp float64) float64 { return sp * gswSSO / gswUPS }

// spFromSA inverts SAFromSP.
func spFromSA(sa float64) float64 { return sa * gswUPS / gswSSO }

// Provider computes conservative temperature and in-situ density following
// the reduced TEOS-10 chain described in the package comment.
type Provider struct{}

// New returns the default provider.
func New() Provider { return Provider{} }

// ConservativeTemperature computes CT [deg C] from absolute salinity
// [g/kg], in-situ temperature [deg C] and pressure [dbar]. The reduced
// chain identifies CT with the potential temperature referenced to the
// surface, which is exact at p=0 and accurate to a few hundredths of a
// degree over the shallow-water range this tool targets.
func (Provider) ConservativeTemperature(sa, t, pDbar float64) (float64, error) {
	if err := checkRange("absolute salinity", sa, minSA, maxSA); err != nil {
		return 0, err
	}
	if err := checkRange("temperature", t, minTC, maxTC); err != nil {
		return 0, err
	}
	if err := checkRange("pressure", pDbar, minDbar, maxDbar); err != nil {
		return 0, err
	}
	return pt0FromT(sa, t, pDbar), nil
}

// Density computes in-situ density [kg/m^3] from absolute salinity [g/kg],
// conservative temperature [deg C] and pressure [dbar].
func (Provider) Density(sa, ct, pDbar float64) (float64, error) {
	if err := checkRange("absolute salinity", sa, minSA, maxSA); err != nil {
		return 0, err
	}
	if err := checkRange("temperature", ct, minTC, maxTC); err != nil {
		return 0, err
	}
	if err := checkRange("pressure", pDbar, minDbar, maxDbar); err != nil {
		return 0, err
	}
	return rho(spFromSA(sa), ct, pDbar/10), nil
}

// Approx is the aquarium/shallow-water provider variant: it skips the
// potential-temperature iteration and takes CT equal to the in-situ
// temperature. Density is shared with the default provider.
type Approx struct{ Provider }

// ConservativeTemperature returns the in-situ temperature unchanged after
// range validation.
func (a Approx) ConservativeTemperature(sa, t, pDbar float64) (float64, error) {
	if err := checkRange("absolute salinity", sa, minSA, maxSA); err != nil {
		return 0, err
	}
	if err := checkRange("temperature", t, minTC, maxTC); err != nil {
		return 0, err
	}
	if err := checkRange("pressure", pDbar, minDbar, maxDbar); err != nil {
		return 0, err
	}
	return t, nil
}
