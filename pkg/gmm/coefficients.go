package gmm

// Regression coefficients for the Abrahamson & Silva (1997) horizontal
// attenuation relation, one row per tabulated spectral period. Rows 0 and 1
// are both peak ground acceleration; row 1 (0.01s) is the one the rock-PGA
// sub-model reads. The table is initialized once and never mutated.
type coefficients struct {
	period float64
	c4     float64
	a1     float64
	a2     float64
	a3     float64
	a4     float64
	a5     float64
	a6     float64
	a9     float64
	a10    float64
	a11    float64
	a12    float64
	a13    float64
	c1     float64
	c5     float64
	n      float64
	b5     float64
	b6     float64
}

// rockPGAIndex is the row used by the period-independent rock-PGA sub-model
// that feeds the nonlinear soil term.
const rockPGAIndex = 1

var table = []coefficients{
	{period: 0.00, c4: 5.60, a1: 1.640, a2: 0.512, a3: -1.145, a4: -0.144, a5: 0.610, a6: 0.260, a9: 0.370, a10: -0.417, a11: -0.230, a12: 0.0000, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.70, b6: 0.135},
	{period: 0.01, c4: 5.60, a1: 1.640, a2: 0.512, a3: -1.145, a4: -0.144, a5: 0.610, a6: 0.260, a9: 0.370, a10: -0.417, a11: -0.230, a12: 0.0000, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.70, b6: 0.135},
	{period: 0.02, c4: 5.60, a1: 1.690, a2: 0.512, a3: -1.145, a4: -0.144, a5: 0.610, a6: 0.260, a9: 0.370, a10: -0.470, a11: -0.230, a12: 0.0143, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.70, b6: 0.135},
	{period: 0.03, c4: 5.60, a1: 1.780, a2: 0.512, a3: -1.145, a4: -0.144, a5: 0.610, a6: 0.260, a9: 0.370, a10: -0.555, a11: -0.230, a12: 0.0245, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.70, b6: 0.135},
	{period: 0.04, c4: 5.60, a1: 1.870, a2: 0.512, a3: -1.145, a4: -0.144, a5: 0.610, a6: 0.260, a9: 0.370, a10: -0.620, a11: -0.230, a12: 0.0280, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.71, b6: 0.135},
	{period: 0.05, c4: 5.60, a1: 1.940, a2: 0.512, a3: -1.145, a4: -0.144, a5: 0.610, a6: 0.260, a9: 0.370, a10: -0.665, a11: -0.230, a12: 0.0300, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.71, b6: 0.135},
	{period: 0.06, c4: 5.60, a1: 2.040, a2: 0.512, a3: -1.145, a4: -0.144, a5: 0.610, a6: 0.260, a9: 0.370, a10: -0.628, a11: -0.230, a12: 0.0300, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.72, b6: 0.135},
	{period: 0.075, c4: 5.58, a1: 2.170, a2: 0.512, a3: -1.145, a4: -0.144, a5: 0.610, a6: 0.260, a9: 0.370, a10: -0.609, a11: -0.230, a12: 0.0300, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.73, b6: 0.135},
	{period: 0.09, c4: 5.54, a1: 2.246, a2: 0.512, a3: -1.145, a4: -0.144, a5: 0.610, a6: 0.260, a9: 0.370, a10: -0.598, a11: -0.230, a12: 0.0300, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.74, b6: 0.135},
	{period: 0.10, c4: 5.50, a1: 2.320, a2: 0.512, a3: -1.145, a4: -0.144, a5: 0.610, a6: 0.260, a9: 0.370, a10: -0.591, a11: -0.230, a12: 0.0280, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.74, b6: 0.135},
	{period: 0.12, c4: 5.39, a1: 2.460, a2: 0.512, a3: -1.145, a4: -0.144, a5: 0.610, a6: 0.260, a9: 0.370, a10: -0.567, a11: -0.230, a12: 0.0180, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.75, b6: 0.135},
	{period: 0.15, c4: 5.27, a1: 2.565, a2: 0.512, a3: -1.145, a4: -0.144, a5: 0.610, a6: 0.260, a9: 0.370, a10: -0.538, a11: -0.230, a12: 0.0050, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.75, b6: 0.135},
	{period: 0.17, c4: 5.19, a1: 2.600, a2: 0.512, a3: -1.135, a4: -0.144, a5: 0.610, a6: 0.260, a9: 0.370, a10: -0.505, a11: -0.230, a12: -0.0040, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.76, b6: 0.135},
	{period: 0.20, c4: 5.10, a1: 2.620, a2: 0.512, a3: -1.115, a4: -0.144, a5: 0.610, a6: 0.260, a9: 0.370, a10: -0.460, a11: -0.230, a12: -0.0138, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.77, b6: 0.135},
	{period: 0.24, c4: 4.97, a1: 2.580, a2: 0.512, a3: -1.079, a4: -0.144, a5: 0.610, a6: 0.232, a9: 0.370, a10: -0.423, a11: -0.230, a12: -0.0238, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.77, b6: 0.135},
	{period: 0.30, c4: 4.80, a1: 2.540, a2: 0.512, a3: -1.035, a4: -0.144, a5: 0.610, a6: 0.198, a9: 0.370, a10: -0.370, a11: -0.230, a12: -0.0360, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.78, b6: 0.135},
	{period: 0.36, c4: 4.62, a1: 2.414, a2: 0.512, a3: -1.005, a4: -0.144, a5: 0.586, a6: 0.170, a9: 0.370, a10: -0.320, a11: -0.195, a12: -0.0460, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.79, b6: 0.135},
	{period: 0.40, c4: 4.52, a1: 2.330, a2: 0.512, a3: -0.988, a4: -0.144, a5: 0.578, a6: 0.154, a9: 0.370, a10: -0.280, a11: -0.160, a12: -0.0518, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.79, b6: 0.135},
	{period: 0.46, c4: 4.38, a1: 2.160, a2: 0.512, a3: -0.965, a4: -0.144, a5: 0.555, a6: 0.132, a9: 0.370, a10: -0.250, a11: -0.121, a12: -0.0594, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.80, b6: 0.135},
	{period: 0.50, c4: 4.30, a1: 2.045, a2: 0.512, a3: -0.952, a4: -0.144, a5: 0.540, a6: 0.119, a9: 0.370, a10: -0.232, a11: -0.095, a12: -0.0635, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.80, b6: 0.135},
	{period: 0.60, c4: 4.12, a1: 1.755, a2: 0.512, a3: -0.922, a4: -0.144, a5: 0.498, a6: 0.091, a9: 0.370, a10: -0.180, a11: -0.085, a12: -0.0740, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.81, b6: 0.135},
	{period: 0.75, c4: 3.90, a1: 1.462, a2: 0.512, a3: -0.885, a4: -0.144, a5: 0.447, a6: 0.057, a9: 0.331, a10: -0.066, a11: -0.055, a12: -0.0862, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.81, b6: 0.135},
	{period: 0.85, c4: 3.81, a1: 1.290, a2: 0.512, a3: -0.865, a4: -0.144, a5: 0.430, a6: 0.038, a9: 0.309, a10: 0.020, a11: -0.020, a12: -0.0927, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.82, b6: 0.135},
	{period: 1.00, c4: 3.70, a1: 1.096, a2: 0.512, a3: -0.838, a4: -0.144, a5: 0.400, a6: 0.014, a9: 0.281, a10: 0.140, a11: 0.000, a12: -0.1020, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.83, b6: 0.135},
	{period: 1.50, c4: 3.55, a1: 0.407, a2: 0.512, a3: -0.772, a4: -0.144, a5: 0.330, a6: -0.046, a9: 0.210, a10: 0.310, a11: 0.000, a12: -0.1200, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.84, b6: 0.135},
	{period: 2.00, c4: 3.50, a1: -0.150, a2: 0.512, a3: -0.725, a4: -0.144, a5: 0.281, a6: -0.090, a9: 0.160, a10: 0.510, a11: 0.000, a12: -0.1400, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.85, b6: 0.135},
	{period: 3.00, c4: 3.50, a1: -0.900, a2: 0.512, a3: -0.725, a4: -0.144, a5: 0.210, a6: -0.150, a9: 0.089, a10: 0.720, a11: 0.000, a12: -0.1726, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.87, b6: 0.135},
	{period: 4.00, c4: 3.50, a1: -1.400, a2: 0.512, a3: -0.725, a4: -0.144, a5: 0.160, a6: -0.200, a9: 0.039, a10: 0.805, a11: 0.000, a12: -0.1956, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.88, b6: 0.135},
	{period: 5.00, c4: 3.50, a1: -1.780, a2: 0.512, a3: -0.725, a4: -0.144, a5: 0.120, a6: -0.240, a9: 0.000, a10: 0.865, a11: 0.000, a12: -0.2150, a13: 0.17, c1: 6.4, c5: 0.03, n: 2, b5: 0.89, b6: 0.135},
}

// anchorPeriods is the strictly increasing search slice: rows 1..end
// (0.01s through 5.0s). Row 0 duplicates row 1, so the bracketing search
// never needs it.
var anchorPeriods = func() []float64 {
	p := make([]float64, len(table)-1)
	for i := 1; i < len(table); i++ {
		p[i-1] = table[i].period
	}
	return p
}()

// Periods returns the tabulated anchor periods, including the leading 0.0s
// PGA row. Callers offering index-based period selection should validate
// indices against this slice.
func Periods() []float64 {
	p := make([]float64, len(table))
	for i := range table {
		p[i] = table[i].period
	}
	return p
}
