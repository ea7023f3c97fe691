package models

import "time"

// Station is one EV charging point in the directory. It is a plain data
// record; persistence lives in the repository layer.
type Station struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Location  string    `db:"location" json:"location"`
	Status    string    `db:"status" json:"status"`
	PowerKW   float64   `db:"power_kw" json:"power_kw"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Defaults applied when a create request leaves the optional fields unset.
const (
	DefaultStatus  = "available"
	DefaultPowerKW = 50.0
)
