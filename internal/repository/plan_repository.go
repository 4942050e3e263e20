package repository // repository defines data access for stored bus plans

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"encoding/json"
	"errors" // errors for sentinel definitions
	"time"

	"github.com/adamovic6666/bus-layout-builder/internal/plan"
)

// StoredPlan is one row of the `plans` table: a named, owner-scoped bus
// layout whose full configuration state is kept as a JSON document.  The
// share token, when set, grants public read-only access.
type StoredPlan struct {
	ID         uint64    // primary key
	OwnerID    uint64    // FK -> users.id
	Name       string    // display name chosen by the editor
	Document   plan.Document
	ShareToken *string // nullable until the plan is shared
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ErrPlanNotFound is returned when a plan lookup yields no rows.
var ErrPlanNotFound = errors.New("plan not found")

// PlanRepo provides methods to work with stored plans in the database.
type PlanRepo struct {
	db *sql.DB
}

// NewPlanRepo constructs a PlanRepo with the given DB handle.
func NewPlanRepo(db *sql.DB) *PlanRepo {
	return &PlanRepo{db: db}
}

// Create inserts a plan row. On success the plan's ID is populated.
func (r *PlanRepo) Create(ctx context.Context, p *StoredPlan) error {
	doc, err := json.Marshal(p.Document)
	if err != nil {
		return err
	}
	const q = `INSERT INTO plans (owner_id, name, document) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, p.OwnerID, p.Name, doc)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// GetByIDAndOwner retrieves a plan by id while enforcing ownership.
func (r *PlanRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*StoredPlan, error) {
	const q = `SELECT id, owner_id, name, document, share_token, created_at, updated_at
	           FROM plans WHERE id = ? AND owner_id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id, ownerID))
}

// GetByShareToken retrieves a plan by its public share token.
func (r *PlanRepo) GetByShareToken(ctx context.Context, token string) (*StoredPlan, error) {
	const q = `SELECT id, owner_id, name, document, share_token, created_at, updated_at
	           FROM plans WHERE share_token = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, token))
}

// ListByOwner retrieves all plans of an owner, newest first.  Documents are
// included so clients can show seat/roster counts without extra round trips.
func (r *PlanRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]StoredPlan, error) {
	const q = `SELECT id, owner_id, name, document, share_token, created_at, updated_at
	           FROM plans
	           WHERE owner_id = ?
	           ORDER BY updated_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []StoredPlan
	for rows.Next() {
		p, err := scanPlan(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateDocument stores a new serialized configuration state for a plan.
// Writes are last-write-wins: each user action issues its own update in
// action order, and no stale in-flight response can overwrite a newer row.
// Returns ErrPlanNotFound when the plan does not exist or is not owned.
func (r *PlanRepo) UpdateDocument(ctx context.Context, id, ownerID uint64, doc plan.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	const q = `UPDATE plans SET document = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ? AND owner_id = ?`
	res, err := r.db.ExecContext(ctx, q, raw, id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// Rename updates a plan's display name.
func (r *PlanRepo) Rename(ctx context.Context, id, ownerID uint64, name string) error {
	const q = `UPDATE plans SET name = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ? AND owner_id = ?`
	res, err := r.db.ExecContext(ctx, q, name, id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// SetShareToken stores the public token for a plan.  Called once when the
// plan is first shared; subsequent shares reuse the stored token.
func (r *PlanRepo) SetShareToken(ctx context.Context, id, ownerID uint64, token string) error {
	const q = `UPDATE plans SET share_token = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ? AND owner_id = ?`
	res, err := r.db.ExecContext(ctx, q, token, id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// DeleteByIDAndOwner removes a plan owned by the given user.
func (r *PlanRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) error {
	const q = `DELETE FROM plans WHERE id = ? AND owner_id = ?`
	res, err := r.db.ExecContext(ctx, q, id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *PlanRepo) scanOne(row *sql.Row) (*StoredPlan, error) {
	p, err := scanPlan(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return p, nil
}

func scanPlan(scan func(dest ...any) error) (*StoredPlan, error) {
	var (
		p     StoredPlan
		raw   []byte
		token sql.NullString
	)
	if err := scan(&p.ID, &p.OwnerID, &p.Name, &raw, &token, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &p.Document); err != nil {
		return nil, err
	}
	if token.Valid {
		p.ShareToken = &token.String
	}
	return &p, nil
}
