package symbols

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Symbols cross the wire as their plain name string, never as their
// numeric ID. Decoding re-interns the name, so a symbol decoded in a
// process with a different interning order still compares correctly
// against symbols created there.

// MarshalText encodes the symbol as its name. Through
// encoding.TextMarshaler this is also what encoding/json sees, so a
// symbol serializes as a plain JSON string (and works as a JSON map
// key).
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.Name()), nil
}

// UnmarshalText re-interns the name. It never fails.
func (s *Symbol) UnmarshalText(text []byte) error {
	*s = New(string(text))
	return nil
}

// MarshalCBOR encodes the symbol as a CBOR text string.
func (s Symbol) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(s.Name())
}

// UnmarshalCBOR decodes a CBOR text string and re-interns it.
func (s *Symbol) UnmarshalCBOR(data []byte) error {
	var name string
	if err := cbor.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("symbols: unmarshal symbol: %w", err)
	}
	*s = New(name)
	return nil
}

// MarshalYAML encodes the symbol as a YAML scalar.
func (s Symbol) MarshalYAML() (any, error) {
	return s.Name(), nil
}

// UnmarshalYAML decodes a YAML scalar and re-interns it.
func (s *Symbol) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return fmt.Errorf("symbols: unmarshal symbol: %w", err)
	}
	*s = New(name)
	return nil
}
