package repository

import (
	"context"
	"database/sql"
	"errors"

	"evcharge/backend/services/station-service/internal/models"
)

// ErrStationNotFound indicates the requested station id does not exist.
var ErrStationNotFound = errors.New("station not found")

// CreateStation carries the fields of a create request. Status and PowerKW
// are optional; unset values take the documented defaults.
type CreateStation struct {
	Name     string
	Location string
	Status   *string
	PowerKW  *float64
}

// StationPatch carries a partial update. Nil means "leave the column
// untouched", which keeps absent distinguishable from an explicit zero.
type StationPatch struct {
	Name     *string
	Location *string
	Status   *string
	PowerKW  *float64
}

// IsEmpty reports whether the patch names no fields at all.
func (p StationPatch) IsEmpty() bool {
	return p.Name == nil && p.Location == nil && p.Status == nil && p.PowerKW == nil
}

// StationRepository handles persistence of stations.
type StationRepository struct {
	db *sql.DB
}

// NewStationRepository returns repository.
func NewStationRepository(db *sql.DB) *StationRepository {
	return &StationRepository{db: db}
}

const schemaDDL = `
	CREATE TABLE IF NOT EXISTS stations (
		id         BIGSERIAL PRIMARY KEY,
		name       TEXT NOT NULL,
		location   TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT 'available',
		power_kw   DOUBLE PRECISION NOT NULL DEFAULT 50.0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// CreateSchema creates the stations table if it does not exist yet.
func (r *StationRepository) CreateSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schemaDDL)
	return err
}

// Create inserts a station and returns the fully materialized row. The id
// and created_at are assigned by the storage layer.
func (r *StationRepository) Create(ctx context.Context, input CreateStation) (*models.Station, error) {
	station := &models.Station{
		Name:     input.Name,
		Location: input.Location,
		Status:   models.DefaultStatus,
		PowerKW:  models.DefaultPowerKW,
	}
	if input.Status != nil {
		station.Status = *input.Status
	}
	if input.PowerKW != nil {
		station.PowerKW = *input.PowerKW
	}

	const query = `
		INSERT INTO stations (name, location, status, power_kw)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		station.Name,
		station.Location,
		station.Status,
		station.PowerKW,
	).Scan(&station.ID, &station.CreatedAt)
	if err != nil {
		return nil, err
	}
	return station, nil
}

// List returns every station in storage order.
func (r *StationRepository) List(ctx context.Context) ([]models.Station, error) {
	const query = `
		SELECT id, name, location, status, power_kw, created_at
		FROM stations
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stations []models.Station
	for rows.Next() {
		var s models.Station
		if err := rows.Scan(&s.ID, &s.Name, &s.Location, &s.Status, &s.PowerKW, &s.CreatedAt); err != nil {
			return nil, err
		}
		stations = append(stations, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stations, nil
}

// GetByID returns one station or ErrStationNotFound.
func (r *StationRepository) GetByID(ctx context.Context, id int64) (*models.Station, error) {
	const query = `
		SELECT id, name, location, status, power_kw, created_at
		FROM stations
		WHERE id = $1
	`
	var s models.Station
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&s.ID, &s.Name, &s.Location, &s.Status, &s.PowerKW, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Update applies the fields present in the patch and returns the updated
// row. A patch with no fields still touches the row and hands back its
// current state; a missing id yields ErrStationNotFound either way.
func (r *StationRepository) Update(ctx context.Context, id int64, patch StationPatch) (*models.Station, error) {
	const query = `
		UPDATE stations
		SET name     = COALESCE($2, name),
		    location = COALESCE($3, location),
		    status   = COALESCE($4, status),
		    power_kw = COALESCE($5, power_kw)
		WHERE id = $1
		RETURNING id, name, location, status, power_kw, created_at
	`
	var s models.Station
	err := r.db.QueryRowContext(ctx, query, id, patch.Name, patch.Location, patch.Status, patch.PowerKW).
		Scan(&s.ID, &s.Name, &s.Location, &s.Status, &s.PowerKW, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes a station permanently.
func (r *StationRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM stations WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrStationNotFound
	}
	return nil
}
