package calculator

import "fmt"

// ToScalar coerces x to a Scalar. It accepts a Scalar or non-nil *Scalar,
// which is returned unchanged; any Go integer or floating-point type, which
// becomes a number; and a string, which becomes symbolic text without being
// parsed. Anything else gives a *ConvertError.
func ToScalar(x any) (Scalar, error) {
	switch x := x.(type) {
	case Scalar:
		return x, nil
	case *Scalar:
		if x != nil {
			return *x, nil
		}
	case float64:
		return Num(x), nil
	case float32:
		return Num(float64(x)), nil
	case int:
		return Num(float64(x)), nil
	case int8:
		return Num(float64(x)), nil
	case int16:
		return Num(float64(x)), nil
	case int32:
		return Num(float64(x)), nil
	case int64:
		return Num(float64(x)), nil
	case uint:
		return Num(float64(x)), nil
	case uint8:
		return Num(float64(x)), nil
	case uint16:
		return Num(float64(x)), nil
	case uint32:
		return Num(float64(x)), nil
	case uint64:
		return Num(float64(x)), nil
	case string:
		return Sym(x), nil
	}
	return Scalar{}, &ConvertError{Type: fmt.Sprintf("%T", x), To: "Scalar"}
}

// ToComplex coerces x to a Complex. It accepts a Complex or non-nil *Complex,
// returned unchanged; a complex128 or complex64; or anything ToScalar
// accepts, which becomes the real part with a zero imaginary part.
func ToComplex(x any) (Complex, error) {
	switch x := x.(type) {
	case Complex:
		return x, nil
	case *Complex:
		if x != nil {
			return *x, nil
		}
	case complex128:
		return Complex{Re: Num(real(x)), Im: Num(imag(x))}, nil
	case complex64:
		return Complex{Re: Num(float64(real(x))), Im: Num(float64(imag(x)))}, nil
	default:
		re, err := ToScalar(x)
		if err == nil {
			return Complex{Re: re}, nil
		}
	}
	return Complex{}, &ConvertError{Type: fmt.Sprintf("%T", x), To: "Complex"}
}
