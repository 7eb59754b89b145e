package lqg

import "encoding/json"

// Quantity is a thermodynamic value together with its domain flag. The
// mass, Gibbs free energy and heat capacity are partial functions of the
// horizon radius; where they leave their domain of validity the quantity
// is Defined == false and Value is meaningless.
//
// Undefined quantities marshal to JSON null so that charts and exports
// show gaps instead of fabricated numbers. The sqlite archive maps the
// same states to SQL NULL.
type Quantity struct {
	Value   float64
	Defined bool
}

func defined(v float64) Quantity { return Quantity{Value: v, Defined: true} }

// MarshalJSON renders defined quantities as plain numbers and undefined
// ones as null.
func (q Quantity) MarshalJSON() ([]byte, error) {
	if !q.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(q.Value)
}

// UnmarshalJSON accepts a number or null.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*q = Quantity{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*q = Quantity{Value: v, Defined: true}
	return nil
}
