package models

// Venue is a discovered results-provider venue record offered to the resolver.
type Venue struct {
	Name           string `json:"name" validate:"required"`
	State          string `json:"state"`
	NormalizedForm string `json:"normalized_form"`
	URL            string `json:"url"`
}
