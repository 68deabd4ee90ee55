package calculator

import "math"

// Complex is a complex number whose real and imaginary parts are Scalars.
// Each part is independently numeric or symbolic, and arithmetic follows the
// usual formulas through Scalar arithmetic, so symbolic text propagates part
// by part.
type Complex struct {
	Re, Im Scalar
}

// ComplexOf returns the complex number re + i*im.
func ComplexOf(re, im Scalar) Complex {
	return Complex{Re: re, Im: im}
}

// NewComplex returns re + i*im after coercing each part with ToScalar.
func NewComplex(re, im any) (Complex, error) {
	r, err := ToScalar(re)
	if err != nil {
		return Complex{}, err
	}
	i, err := ToScalar(im)
	if err != nil {
		return Complex{}, err
	}
	return Complex{Re: r, Im: i}, nil
}

// IsNum returns whether both parts of z are numeric.
func (z Complex) IsNum() bool {
	return !z.Re.sym && !z.Im.sym
}

// String formats z as (re + i * im).
func (z Complex) String() string {
	return "(" + z.Re.String() + " + i * " + z.Im.String() + ")"
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{Re: z.Re.Add(w.Re), Im: z.Im.Add(w.Im)}
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{Re: z.Re.Sub(w.Re), Im: z.Im.Sub(w.Im)}
}

// Mul returns z * w.
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		Re: z.Re.Mul(w.Re).Sub(z.Im.Mul(w.Im)),
		Im: z.Re.Mul(w.Im).Add(z.Im.Mul(w.Re)),
	}
}

// Div returns z / w. If |w|² is a numeric zero, the error is
// ErrDivisionByZero. If either part of w is symbolic, the quotient is
// symbolic and unchecked.
func (z Complex) Div(w Complex) (Complex, error) {
	d := w.normSqr()
	if !d.sym && d.num == 0 {
		return Complex{}, ErrDivisionByZero
	}
	re, err := z.Re.Mul(w.Re).Add(z.Im.Mul(w.Im)).Div(d)
	if err != nil {
		return Complex{}, err
	}
	im, err := z.Im.Mul(w.Re).Sub(z.Re.Mul(w.Im)).Div(d)
	if err != nil {
		return Complex{}, err
	}
	return Complex{Re: re, Im: im}, nil
}

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{Re: z.Re.Neg(), Im: z.Im.Neg()}
}

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex {
	return Complex{Re: z.Re, Im: z.Im.Neg()}
}

// normSqr returns re² + im².
func (z Complex) normSqr() Scalar {
	return z.Re.Mul(z.Re).Add(z.Im.Mul(z.Im))
}

// Norm returns |z|. For numeric z it is computed directly in float64;
// otherwise it is the text sqrt(re² + im²).
func (z Complex) Norm() Scalar {
	if z.IsNum() {
		return Num(math.Hypot(z.Re.num, z.Im.num))
	}
	return z.normSqr().Sqrt()
}

// Abs is the same as Norm.
func (z Complex) Abs() Scalar {
	return z.Norm()
}

// Arg returns the argument of z, atan2(im, re).
func (z Complex) Arg() Scalar {
	return z.Im.Atan2(z.Re)
}

// Recip returns 1/z, computed as conj(z)/|z|². The zero policy is the same as
// Div.
func (z Complex) Recip() (Complex, error) {
	d := z.normSqr()
	if !d.sym && d.num == 0 {
		return Complex{}, ErrDivisionByZero
	}
	re, err := z.Re.Div(d)
	if err != nil {
		return Complex{}, err
	}
	im, err := z.Im.Neg().Div(d)
	if err != nil {
		return Complex{}, err
	}
	return Complex{Re: re, Im: im}, nil
}

// Equal returns whether both parts of z and w are Equal.
func (z Complex) Equal(w Complex) bool {
	return z.Re.Equal(w.Re) && z.Im.Equal(w.Im)
}

// IsClose returns whether both parts of z and w are IsClose.
func (z Complex) IsClose(w Complex) bool {
	return z.Re.IsClose(w.Re) && z.Im.IsClose(w.Im)
}

// IsCloseEps returns whether both parts of z and w are within eps.
func (z Complex) IsCloseEps(w Complex, eps float64) bool {
	return z.Re.IsCloseEps(w.Re, eps) && z.Im.IsCloseEps(w.Im, eps)
}

// Complex128 returns z as a complex128. If either part is symbolic, the error
// is ErrSymbolic.
func (z Complex) Complex128() (complex128, error) {
	if !z.IsNum() {
		return 0, ErrSymbolic
	}
	return complex(z.Re.num, z.Im.num), nil
}

// Float64 returns the real part of z when z is a real number. If either part
// is symbolic, the error is ErrSymbolic; if the imaginary part is a nonzero
// number, the error wraps ErrNotConvertible.
func (z Complex) Float64() (float64, error) {
	if !z.IsNum() {
		return 0, ErrSymbolic
	}
	if z.Im.num != 0 {
		return 0, &ConvertError{Type: "Complex with nonzero imaginary part", To: "float64"}
	}
	return z.Re.num, nil
}
