package models

// Property is a client-side mirror of a property record owned by one admin.
// The portal never persists these; every navigation re-fetches from the
// backend.
type Property struct {
	ID           int64  `json:"id"`
	AdminID      int64  `json:"admin_id"`
	PropertyName string `json:"property_name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}
