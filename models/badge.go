package models

// Badge is a derived achievement. Badges are computed from a trailing window
// of logs on every read and never persisted.
type Badge struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}
