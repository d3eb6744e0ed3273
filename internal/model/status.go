package model

// Status reports the reachability of backing services.
type Status struct {
	Redis bool `json:"redis"`
	DB    bool `json:"db"`
}

// Stats holds catalog totals.
type Stats struct {
	Users int64 `json:"users"`
	Files int64 `json:"files"`
}
