package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/opsdeskhq/opsdesk-access/internal/access/domain"
	"github.com/opsdeskhq/opsdesk-access/internal/access/store"
)

type requestsRepo struct {
	q dbtx
}

func (r *requestsRepo) Create(ctx context.Context, req domain.RoleUpgradeRequest) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO role_upgrade_requests
		   (id, user_id, role, reason, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		req.ID, req.UserID, req.Role.String(), req.Reason, string(req.Status),
		req.CreatedAt, req.UpdatedAt)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

func (r *requestsRepo) GetByID(ctx context.Context, id string) (domain.RoleUpgradeRequest, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT id, user_id, role, reason, status, reviewed_by, reviewed_at, created_at, updated_at
		 FROM role_upgrade_requests WHERE id = ?`, id)

	req, err := scanRequest(row)
	if err != nil {
		return domain.RoleUpgradeRequest{}, mapNotFound(err)
	}
	return req, nil
}

func (r *requestsRepo) HasPendingForUser(ctx context.Context, userID string) (bool, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM role_upgrade_requests WHERE user_id = ? AND status = 'pending'`,
		userID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *requestsRepo) ListForUser(ctx context.Context, userID string) ([]domain.RoleUpgradeRequest, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, user_id, role, reason, status, reviewed_by, reviewed_at, created_at, updated_at
		 FROM role_upgrade_requests
		 WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RoleUpgradeRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (r *requestsRepo) ListPending(ctx context.Context) ([]domain.PendingRequest, error) {
	// Profile join is LEFT so a request never disappears from the review
	// queue just because the onboarding upsert has not landed yet.
	rows, err := r.q.QueryContext(ctx,
		`SELECT q.id, q.user_id, q.role, q.reason, q.status,
		        q.reviewed_by, q.reviewed_at, q.created_at, q.updated_at,
		        COALESCE(p.display_name, ''), COALESCE(p.email, '')
		 FROM role_upgrade_requests q
		 LEFT JOIN profiles p ON p.user_id = q.user_id
		 WHERE q.status = 'pending'
		 ORDER BY q.created_at ASC, q.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PendingRequest
	for rows.Next() {
		var p domain.PendingRequest
		var role, status string
		var reviewedBy sql.NullString
		var reviewedAt sql.NullTime
		err := rows.Scan(&p.ID, &p.UserID, &role, &p.Reason, &status,
			&reviewedBy, &reviewedAt, &p.CreatedAt, &p.UpdatedAt,
			&p.RequesterName, &p.RequesterEmail)
		if err != nil {
			return nil, err
		}
		p.Role = domain.Role(role)
		p.Status = domain.RequestStatus(status)
		if reviewedBy.Valid {
			v := reviewedBy.String
			p.ReviewedBy = &v
		}
		if reviewedAt.Valid {
			v := reviewedAt.Time
			p.ReviewedAt = &v
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *requestsRepo) MarkReviewed(
	ctx context.Context,
	id string,
	status domain.RequestStatus,
	reviewerID string,
	reviewedAt time.Time,
) error {
	// The status guard makes the pending->terminal transition atomic: a
	// request that already reached a terminal state matches zero rows.
	res, err := r.q.ExecContext(ctx,
		`UPDATE role_upgrade_requests
		 SET status = ?, reviewed_by = ?, reviewed_at = ?, updated_at = ?
		 WHERE id = ? AND status = 'pending'`,
		string(status), reviewerID, reviewedAt, reviewedAt, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *requestsRepo) DeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM role_upgrade_requests
		 WHERE status IN ('approved', 'rejected') AND reviewed_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRequest(s scanner) (domain.RoleUpgradeRequest, error) {
	var req domain.RoleUpgradeRequest
	var role, status string
	var reviewedBy sql.NullString
	var reviewedAt sql.NullTime

	err := s.Scan(&req.ID, &req.UserID, &role, &req.Reason, &status,
		&reviewedBy, &reviewedAt, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return domain.RoleUpgradeRequest{}, err
	}

	req.Role = domain.Role(role)
	req.Status = domain.RequestStatus(status)
	if reviewedBy.Valid {
		v := reviewedBy.String
		req.ReviewedBy = &v
	}
	if reviewedAt.Valid {
		v := reviewedAt.Time
		req.ReviewedAt = &v
	}
	return req, nil
}
