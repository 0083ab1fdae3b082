package cwa

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Status represents the overall outcome of one solve.
type Status int

const (
	StatusOptimal        Status = iota + 1 // Minimal feasible score assignment found.
	StatusInfeasible                       // No assignment within [0, 100] reaches the target.
	StatusNumericalIssue                   // Solver failed for numerical reasons; scores unavailable.
)

var (
	statusNames = [...]string{
		StatusOptimal:        "Optimal",
		StatusInfeasible:     "Infeasible",
		StatusNumericalIssue: "NumericalIssue",
	}
	statusByName = map[string]Status{
		"Optimal":        StatusOptimal,
		"Infeasible":     StatusInfeasible,
		"NumericalIssue": StatusNumericalIssue,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Status(0)
	_ json.Marshaler           = Status(0)
	_ json.Unmarshaler         = (*Status)(nil)
	_ encoding.TextMarshaler   = Status(0)
	_ encoding.TextUnmarshaler = (*Status)(nil)
)

// String returns the name of the status ("Optimal", "Infeasible",
// "NumericalIssue"). For invalid values it returns "Status(n)".
func (s Status) String() string {
	if s.IsValid() {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// IsValid reports whether s is a valid status (StatusOptimal through
// StatusNumericalIssue).
func (s Status) IsValid() bool {
	return s >= StatusOptimal && s <= StatusNumericalIssue
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
	}
	return []byte(statusNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	v, ok := statusByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, text)
	}
	*s = v
	return nil
}

// MarshalJSON implements json.Marshaler. Status serializes as a JSON string.
func (s Status) MarshalJSON() ([]byte, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (s *Status) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, data)
	}
	return s.UnmarshalText([]byte(str))
}
