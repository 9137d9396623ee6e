package models

// Interest is both a catalog entry and a per-user selection.
type Interest struct {
	ID     string  `json:"id,omitempty"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}
