package repository

import (
	"context"
	"database/sql"

	"github.com/aurakai/gatenav/internal/carousel"
)

// GateRepo stores the gate catalog in carousel order.
type GateRepo struct {
	db *sql.DB
}

func NewGateRepo(db *sql.DB) *GateRepo { return &GateRepo{db: db} }

func (r *GateRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM gates`).Scan(&n)
	return n, err
}

// ReplaceAll swaps the stored catalog for gates atomically.
func (r *GateRepo) ReplaceAll(ctx context.Context, gates []carousel.Gate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM gates`); err != nil {
		return err
	}
	for i, g := range gates {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO gates(id, route, title, description, region, accent, coming_soon, protected, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
		`, g.ID, g.Route, g.Title, g.Description, g.Region, g.Accent, g.ComingSoon, g.Protected, i)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *GateRepo) List(ctx context.Context) ([]carousel.Gate, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, route, title, description, region, accent, coming_soon, protected
	FROM gates ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []carousel.Gate
	for rows.Next() {
		var g carousel.Gate
		if err := rows.Scan(&g.ID, &g.Route, &g.Title, &g.Description, &g.Region, &g.Accent, &g.ComingSoon, &g.Protected); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// SetComingSoon flips the availability flag of one gate.
func (r *GateRepo) SetComingSoon(ctx context.Context, id string, comingSoon bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE gates SET coming_soon = ? WHERE id = ?`, comingSoon, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
