package teos10

import "math"

// UNESCO 1983 (EOS-80) equation of state: density of seawater as a function
// of practical salinity, temperature [deg C, IPTS-68 assumed equal to
// ITS-90 at this precision] and pressure [bar].

// rhoSMOW is the density of Standard Mean Ocean Water [kg/m^3].
func rhoSMOW(t float64) float64 {
	return 999.842594 +
		t*(6.793952e-2+
			t*(-9.095290e-3+
				t*(1.001685e-4+
					t*(-1.120083e-6+
						t*6.536332e-9))))
}

// rhoAtm is the density at one standard atmosphere (p=0) [kg/m^3].
func rhoAtm(s, t float64) float64 {
	a := 8.24493e-1 + t*(-4.0899e-3+t*(7.6438e-5+t*(-8.2467e-7+t*5.3875e-9)))
	b := -5.72466e-3 + t*(1.0227e-4+t*-1.6546e-6)
	const c = 4.8314e-4
	return rhoSMOW(t) + s*(a+b*math.Sqrt(s)+c*s)
}

// secantBulkModulus is K(S,t,p) [bar].
func secantBulkModulus(s, t, pBar float64) float64 {
	kw := 19652.21 +
		t*(148.4206+
			t*(-2.327105+
				t*(1.360477e-2+
					t*-5.155288e-5)))
	k0 := kw +
		s*(54.6746+t*(-0.603459+t*(1.09987e-2+t*-6.1670e-5))) +
		s*math.Sqrt(s)*(7.944e-2+t*(1.6483e-2+t*-5.3009e-4))
	if pBar == 0 {
		return k0
	}

	aw := 3.239908 + t*(1.43713e-3+t*(1.16092e-4+t*-5.77905e-7))
	a := aw +
		s*(2.2838e-3+t*(-1.0981e-5+t*-1.6078e-6)) +
		s*math.Sqrt(s)*1.91075e-4

	bw := 8.50935e-5 + t*(-6.12293e-6+t*5.2787e-8)
	b := bw + s*(-9.9348e-7+t*(2.0816e-8+t*9.1697e-10))

	return k0 + pBar*(a+pBar*b)
}

// rho is the in-situ density [kg/m^3] at practical salinity s, temperature
// t [deg C] and pressure [bar].
func rho(s, t, pBar float64) float64 {
	if s < 0 {
		s = 0
	}
	r0 := rhoAtm(s, t)
	if pBar == 0 {
		return r0
	}
	k := secantBulkModulus(s, t, pBar)
	return r0 / (1 - pBar/k)
}
