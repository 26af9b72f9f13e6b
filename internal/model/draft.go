package model

// MaxBullets caps how many highlight lines a draft carries.
const MaxBullets = 5

// Draft represents a structured article draft extracted from pasted copy
type Draft struct {
	Title      string   `json:"title,omitempty"`       // First headline line above the date line
	Subtitle   string   `json:"subtitle,omitempty"`    // Second headline line, if present
	Bullets    []string `json:"bullets,omitempty"`     // Up to MaxBullets highlight lines, markers stripped
	Body       string   `json:"body,omitempty"`        // Copy after the date line (or the whole input)
	PlaceQuery string   `json:"place_query,omitempty"` // Candidate dateline place for location search
}

// HasDateline reports whether a dateline place was detected
func (d *Draft) HasDateline() bool {
	return d.PlaceQuery != ""
}

// Tenant identifies the publishing brand whose names must never appear in
// extracted places or in text forwarded to an external rewriting service
type Tenant struct {
	Name       string `json:"name,omitempty" yaml:"name"`               // Display name (e.g., "Kaburlu News")
	NativeName string `json:"native_name,omitempty" yaml:"native_name"` // Native-script name
}

// Names returns the non-empty tenant names
func (t Tenant) Names() []string {
	var names []string
	if t.Name != "" {
		names = append(names, t.Name)
	}
	if t.NativeName != "" {
		names = append(names, t.NativeName)
	}
	return names
}
