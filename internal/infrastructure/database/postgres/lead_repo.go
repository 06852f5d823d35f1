package postgres

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/takweol/casematch/internal/domain/lead"
	"github.com/takweol/casematch/internal/infrastructure/monitoring/logging"
	"github.com/takweol/casematch/pkg/errors"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

const leadColumns = `id, category_id, category_name, confidence, win_rate,
	cost_min, cost_max, cost_unit, has_evidence, similar_case_count,
	transcript_digest, status, created_at, updated_at`

// LeadRepository is the pgx implementation of lead.Repository.
type LeadRepository struct {
	conn   *Connection
	logger logging.Logger
}

// NewLeadRepository wires the repository to a live connection.
func NewLeadRepository(conn *Connection, log logging.Logger) *LeadRepository {
	return &LeadRepository{conn: conn, logger: log}
}

// Create inserts a lead.  A duplicate (category_id, transcript_digest) pair
// maps to CodeConflict so the caller can treat resubmissions as idempotent.
func (r *LeadRepository) Create(ctx context.Context, l *lead.Lead) error {
	const q = `INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.conn.Pool().Exec(ctx, q,
		l.ID, l.CategoryID, l.CategoryName, l.Confidence, l.WinRate,
		l.CostMin, l.CostMax, l.CostUnit, l.HasEvidence, l.SimilarCaseCount,
		l.TranscriptDigest, string(l.Status), l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if stderrors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return errors.Conflict("lead already exists for this conversation").
				WithDetail("category_id=" + l.CategoryID)
		}
		return errors.Wrap(err, errors.CodeDatabaseError, "failed to insert lead")
	}

	r.logger.Debug("lead created",
		logging.String("lead_id", l.ID),
		logging.String("category_id", l.CategoryID),
	)
	return nil
}

// GetByID loads one lead by primary key.
func (r *LeadRepository) GetByID(ctx context.Context, id string) (*lead.Lead, error) {
	const q = `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	row := r.conn.Pool().QueryRow(ctx, q, id)
	l, err := scanLead(row)
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, errors.NotFound("lead not found").WithDetail("id=" + id)
		}
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to load lead")
	}
	return l, nil
}

// List returns leads matching the filter, newest first.
func (r *LeadRepository) List(ctx context.Context, filter lead.ListFilter) ([]*lead.Lead, error) {
	var (
		where []string
		args  []interface{}
	)
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		where = append(where, fmt.Sprintf("category_id = $%d", len(args)))
	}

	q := `SELECT ` + leadColumns + ` FROM leads`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		q += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.conn.Pool().Query(ctx, q, args...)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to list leads")
	}
	defer rows.Close()

	var out []*lead.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to scan lead row")
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "lead listing aborted")
	}
	return out, nil
}

// UpdateStatus persists a transition already validated by the entity.
func (r *LeadRepository) UpdateStatus(ctx context.Context, l *lead.Lead) error {
	const q = `UPDATE leads SET status = $1, updated_at = $2 WHERE id = $3`

	tag, err := r.conn.Pool().Exec(ctx, q, string(l.Status), l.UpdatedAt, l.ID)
	if err != nil {
		return errors.Wrap(err, errors.CodeDatabaseError, "failed to update lead status")
	}
	if tag.RowsAffected() == 0 {
		return errors.NotFound("lead not found").WithDetail("id=" + l.ID)
	}
	return nil
}

func scanLead(row pgx.Row) (*lead.Lead, error) {
	var (
		l      lead.Lead
		status string
	)
	err := row.Scan(
		&l.ID, &l.CategoryID, &l.CategoryName, &l.Confidence, &l.WinRate,
		&l.CostMin, &l.CostMax, &l.CostUnit, &l.HasEvidence, &l.SimilarCaseCount,
		&l.TranscriptDigest, &status, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	l.Status = lead.Status(status)
	return &l, nil
}
