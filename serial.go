package calculator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Pair returns the serialized form of x: whether it is numeric, and its
// float64 or its string.
func (x Scalar) Pair() (isFloat bool, value any) {
	if x.sym {
		return false, x.text
	}
	return true, x.num
}

// ScalarFromPair reconstructs a Scalar from the results of Pair. An integer
// value is accepted in place of a float64.
func ScalarFromPair(isFloat bool, value any) (Scalar, error) {
	_, str := value.(string)
	if isFloat == str {
		return Scalar{}, &ConvertError{Type: fmt.Sprintf("%T", value), To: "Scalar pair"}
	}
	return ToScalar(value)
}

// Pair returns the parts of z.
func (z Complex) Pair() (re, im Scalar) {
	return z.Re, z.Im
}

// ComplexFromPair reconstructs a Complex from a pair of parts, each either a
// Scalar or anything ToScalar accepts.
func ComplexFromPair(re, im any) (Complex, error) {
	return NewComplex(re, im)
}

// nonfinite parses the canonical text of a non-finite float.
func nonfinite(s string) (float64, bool) {
	switch s {
	case "inf":
		return math.Inf(1), true
	case "-inf":
		return math.Inf(-1), true
	case "NaN":
		return math.NaN(), true
	}
	return 0, false
}

// MarshalJSON encodes x as a JSON number, or a JSON string if x is symbolic.
// JSON has no non-finite numbers, so those encode as the strings inf, -inf
// and NaN.
func (x Scalar) MarshalJSON() ([]byte, error) {
	if !x.sym && !math.IsInf(x.num, 0) && !math.IsNaN(x.num) {
		return json.Marshal(x.num)
	}
	return json.Marshal(x.String())
}

// UnmarshalJSON decodes a JSON number or string. The strings inf, -inf and
// NaN decode to numbers.
func (x *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if f, ok := nonfinite(s); ok {
			*x = Num(f)
			return nil
		}
		*x = Sym(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%w: %v", ErrNotConvertible, err)
	}
	*x = Num(f)
	return nil
}

// complexDoc is the document form of a Complex.
type complexDoc struct {
	IsCalculatorComplex bool   `json:"is_calculator_complex" yaml:"is_calculator_complex"`
	Real                Scalar `json:"real" yaml:"real"`
	Imag                Scalar `json:"imag" yaml:"imag"`
}

// MarshalJSON encodes z as {"is_calculator_complex": true, "real": re, "imag": im}.
func (z Complex) MarshalJSON() ([]byte, error) {
	return json.Marshal(complexDoc{IsCalculatorComplex: true, Real: z.Re, Imag: z.Im})
}

// UnmarshalJSON decodes the object form of a Complex or a two-element array
// [re, im].
func (z *Complex) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var parts []Scalar
		if err := json.Unmarshal(data, &parts); err != nil {
			return err
		}
		if len(parts) != 2 {
			return fmt.Errorf("%w: complex pair has %d elements", ErrNotConvertible, len(parts))
		}
		*z = Complex{Re: parts[0], Im: parts[1]}
		return nil
	}
	var doc complexDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*z = Complex{Re: doc.Real, Im: doc.Imag}
	return nil
}

// MarshalYAML encodes x as a YAML float, or a YAML string if x is symbolic.
func (x Scalar) MarshalYAML() (interface{}, error) {
	if x.sym {
		return x.text, nil
	}
	return x.num, nil
}

// UnmarshalYAML decodes a YAML scalar node. Nodes resolving to !!float or
// !!int become numbers, and nodes resolving to !!str become symbolic.
func (x *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a YAML scalar", ErrNotConvertible, node.Line)
	}
	switch node.ShortTag() {
	case "!!float", "!!int":
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		*x = Num(f)
	case "!!str":
		*x = Sym(node.Value)
	default:
		return fmt.Errorf("%w: line %d: YAML %s", ErrNotConvertible, node.Line, node.ShortTag())
	}
	return nil
}

// MarshalYAML encodes z as a mapping with is_calculator_complex, real and
// imag keys.
func (z Complex) MarshalYAML() (interface{}, error) {
	return complexDoc{IsCalculatorComplex: true, Real: z.Re, Imag: z.Im}, nil
}

// UnmarshalYAML decodes the mapping form of a Complex or a two-element
// sequence [re, im].
func (z *Complex) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var parts []Scalar
		if err := node.Decode(&parts); err != nil {
			return err
		}
		if len(parts) != 2 {
			return fmt.Errorf("%w: line %d: complex pair has %d elements", ErrNotConvertible, node.Line, len(parts))
		}
		*z = Complex{Re: parts[0], Im: parts[1]}
	case yaml.MappingNode:
		var doc complexDoc
		if err := node.Decode(&doc); err != nil {
			return err
		}
		*z = Complex{Re: doc.Real, Im: doc.Imag}
	default:
		// A lone scalar is a real number or expression.
		var re Scalar
		if err := re.UnmarshalYAML(node); err != nil {
			return err
		}
		*z = Complex{Re: re}
	}
	return nil
}
