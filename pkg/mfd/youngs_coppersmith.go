package mfd

import "math"

// YoungsCoppersmith is the characteristic-earthquake magnitude-frequency
// model of Youngs & Coppersmith (1985): an exponential branch between mMin
// and the lower edge of the characteristic plateau, plus a uniform plateau
// of width dmChar centered at mChar carrying probability pChar.
type YoungsCoppersmith struct {
	mMin   float64
	mChar  float64
	dmChar float64
	pChar  float64
	bValue float64
	rate   float64

	beta   float64
	mBreak float64 // mChar - dmChar/2, lower edge of the plateau
	mUpper float64 // mChar + dmChar/2, upper end of the support
	norm   float64 // 1 - exp(-beta·(mBreak-mMin))
}

// NewYoungsCoppersmith constructs a characteristic-earthquake distribution.
// rate is the annual rate of earthquakes with magnitude >= mMin.
func NewYoungsCoppersmith(mMin, mChar, dmChar, pChar, bValue, rate float64) (*YoungsCoppersmith, error) {
	if dmChar <= 0 {
		return nil, &InvalidParameterError{Param: "delta_m_char", Value: dmChar, Constraint: "delta_m_char > 0"}
	}
	if mMin >= mChar-dmChar/2 {
		return nil, &InvalidParameterError{Param: "m_min", Value: mMin, Constraint: "m_min < m_char - delta_m_char/2"}
	}
	if pChar < 0 || pChar > 1 {
		return nil, &InvalidParameterError{Param: "p_char", Value: pChar, Constraint: "0 <= p_char <= 1"}
	}
	if bValue <= 0 {
		return nil, &InvalidParameterError{Param: "b_value", Value: bValue, Constraint: "b_value > 0"}
	}
	if rate < 0 {
		return nil, &InvalidParameterError{Param: "rate", Value: rate, Constraint: "rate >= 0"}
	}

	beta := bValue * math.Ln10
	mBreak := mChar - dmChar/2
	return &YoungsCoppersmith{
		mMin:   mMin,
		mChar:  mChar,
		dmChar: dmChar,
		pChar:  pChar,
		bValue: bValue,
		rate:   rate,
		beta:   beta,
		mBreak: mBreak,
		mUpper: mChar + dmChar/2,
		norm:   1 - math.Exp(-beta*(mBreak-mMin)),
	}, nil
}

func (y *YoungsCoppersmith) PDF(m float64) float64 {
	switch {
	case m < y.mMin || m > y.mUpper:
		return 0
	case m < y.mBreak:
		return (1 - y.pChar) * y.beta * math.Exp(-y.beta*(m-y.mMin)) / y.norm
	}
	return y.pChar / y.dmChar
}

func (y *YoungsCoppersmith) CDF(m float64) float64 {
	switch {
	case m < y.mMin:
		return 0
	case m > y.mUpper:
		return 1
	case m < y.mBreak:
		return (1 - y.pChar) * (1 - math.Exp(-y.beta*(m-y.mMin))) / y.norm
	}
	// Linear ramp across the characteristic plateau.
	return (1 - y.pChar) + y.pChar*(m-y.mBreak)/y.dmChar
}

func (y *YoungsCoppersmith) CCDF(m float64) float64 { return 1 - y.CDF(m) }

func (y *YoungsCoppersmith) MMin() float64       { return y.mMin }
func (y *YoungsCoppersmith) MMax() float64       { return y.mUpper }
func (y *YoungsCoppersmith) AnnualRate() float64 { return y.rate }
