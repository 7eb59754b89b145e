package lqg

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestQuantityJSON(t *testing.T) {
	// Scenario: defined quantities are plain numbers, undefined ones are
	// null, and both survive the round trip.
	b, err := json.Marshal(Quantity{Value: 2.5, Defined: true})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "2.5" {
		t.Errorf("defined marshals to %s, want 2.5", b)
	}

	b, err = json.Marshal(Quantity{})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "null" {
		t.Errorf("undefined marshals to %s, want null", b)
	}

	var q Quantity
	if err := json.Unmarshal([]byte("null"), &q); err != nil {
		t.Fatal(err)
	}
	if q.Defined {
		t.Error("null unmarshaled as defined")
	}
	if err := json.Unmarshal([]byte("3.25"), &q); err != nil {
		t.Fatal(err)
	}
	if !q.Defined || q.Value != 3.25 {
		t.Errorf("number unmarshaled as %+v", q)
	}
	t.Logf("✓ null ↔ undefined, number ↔ defined")
}

func TestSampleJSONGap(t *testing.T) {
	// Scenario: a sample below the horizon boundary exports its mass and
	// Gibbs energy as null while the total quantities stay numeric, which
	// is what the gallery and the archive rely on.
	p := DefaultParameters()
	b, err := json.Marshal(p.Sample(2.0))
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	if !strings.Contains(s, `"m":null`) || !strings.Contains(s, `"g":null`) {
		t.Errorf("expected null mass and Gibbs energy, got %s", s)
	}
	if strings.Contains(s, `"t":null`) {
		t.Errorf("temperature must never be null, got %s", s)
	}

	var got ThermoSample
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	if got.M.Defined || got.G.Defined {
		t.Error("gap lost in the round trip")
	}
	if !got.Cp.Defined {
		t.Error("heat capacity at r₊ = 2 should survive the round trip defined")
	}
	t.Logf("✓ gaps render as null and round-trip intact")
}
