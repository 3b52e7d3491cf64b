// Package repository contains the data access layer.  Each repository wraps
// a *sql.DB and exposes the queries one aggregate needs; methods suffixed
// with Tx run inside a caller-supplied transaction.  Missing rows are
// reported as sql.ErrNoRows so handlers can translate them to 404s.
package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/training-center-booking/internal/model"
)

// CenterRepo provides read access to the centers table.  Centers are
// created by an administrative process; this service never mutates them.
type CenterRepo struct {
	db *sql.DB
}

// NewCenterRepo constructs a CenterRepo given a DB handle.
func NewCenterRepo(db *sql.DB) *CenterRepo { return &CenterRepo{db: db} }

// List returns all centers, optionally filtered by governorate.  An empty
// governorate returns every center.  Results are ordered by id for
// deterministic output.
func (r *CenterRepo) List(ctx context.Context, governorate string) ([]model.Center, error) {
	const base = `SELECT id, name, governorate, address, license_number, created_at FROM centers`
	var (
		rows *sql.Rows
		err  error
	)
	if governorate != "" {
		rows, err = r.db.QueryContext(ctx, base+` WHERE governorate = ? ORDER BY id`, governorate)
	} else {
		rows, err = r.db.QueryContext(ctx, base+` ORDER BY id`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	centers := make([]model.Center, 0)
	for rows.Next() {
		var c model.Center
		if err := rows.Scan(&c.ID, &c.Name, &c.Governorate, &c.Address, &c.LicenseNumber, &c.CreatedAt); err != nil {
			return nil, err
		}
		centers = append(centers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return centers, nil
}

// GetByID returns a single center.  When no center with the given id
// exists, sql.ErrNoRows is returned.
func (r *CenterRepo) GetByID(ctx context.Context, id uint64) (*model.Center, error) {
	const q = `SELECT id, name, governorate, address, license_number, created_at FROM centers WHERE id = ?`
	var c model.Center
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&c.ID, &c.Name, &c.Governorate, &c.Address, &c.LicenseNumber, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
