// Package spfunc provides the special functions the statistical detectors
// use to turn test statistics into p-values: the complementary error
// function and the regularized incomplete gamma functions.
package spfunc

import "math"

const (
	machEp = 1.11022302462515654042e-16
	maxLog = 7.09782712893383996732e2
	big    = 4.503599627370496e15
	bigInv = 2.22044604925031308085e-16
)

// Erf returns the error function of x.
func Erf(x float64) float64 {
	return math.Erf(x)
}

// Erfc returns the complementary error function of x.
func Erfc(x float64) float64 {
	return math.Erfc(x)
}

// Lgam returns the natural logarithm of the absolute value of the gamma
// function of x.
func Lgam(x float64) float64 {
	l, _ := math.Lgamma(x)
	return l
}

// Igamc returns the regularized upper incomplete gamma function Q(a, x).
// For x < 1 or x < a the complement of the series expansion of Igam is
// used; otherwise the continued fraction converges directly.
func Igamc(a, x float64) float64 {
	if x <= 0 || a <= 0 {
		return 1
	}

	if x < 1 || x < a {
		return 1 - Igam(a, x)
	}

	ax := a*math.Log(x) - x - Lgam(a)
	if ax < -maxLog {
		// Underflow: the true value is indistinguishable from zero.
		return 0
	}

	ax = math.Exp(ax)

	// Continued fraction, Lentz-style with periodic renormalization.
	y := 1 - a
	z := x + y + 1
	c := 0.0
	pkm2 := 1.0
	qkm2 := x
	pkm1 := x + 1
	qkm1 := z * x
	ans := pkm1 / qkm1

	for {
		c++
		y++
		z += 2
		yc := y * c
		pk := pkm1*z - pkm2*yc
		qk := qkm1*z - qkm2*yc

		t := 1.0
		if qk != 0 {
			r := pk / qk
			t = math.Abs((ans - r) / r)
			ans = r
		}

		pkm2, pkm1 = pkm1, pk
		qkm2, qkm1 = qkm1, qk

		if math.Abs(pk) > big {
			pkm2 *= bigInv
			pkm1 *= bigInv
			qkm2 *= bigInv
			qkm1 *= bigInv
		}

		if t <= machEp {
			break
		}
	}

	return ans * ax
}

// Igam returns the regularized lower incomplete gamma function P(a, x).
func Igam(a, x float64) float64 {
	if x <= 0 || a <= 0 {
		return 0
	}

	if x > 1 && x > a {
		return 1 - Igamc(a, x)
	}

	ax := a*math.Log(x) - x - Lgam(a)
	if ax < -maxLog {
		return 0
	}

	ax = math.Exp(ax)

	// Power series for the lower function.
	r := a
	c := 1.0
	ans := 1.0

	for c/ans > machEp {
		r++
		c *= x / r
		ans += c
	}

	return ans * ax / a
}
