package sqlite

import (
	"context"

	"github.com/opsdeskhq/opsdesk-access/internal/access/domain"
	"github.com/opsdeskhq/opsdesk-access/internal/access/store"
)

type assignmentsRepo struct {
	q dbtx
}

func (r *assignmentsRepo) ListRolesForUser(ctx context.Context, userID string) ([]domain.Role, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT role FROM role_assignments WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, err
		}
		roles = append(roles, domain.Role(role))
	}
	return roles, rows.Err()
}

func (r *assignmentsRepo) ListForUser(ctx context.Context, userID string) ([]domain.RoleAssignment, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, user_id, role, granted_by, created_at
		 FROM role_assignments
		 WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RoleAssignment
	for rows.Next() {
		var a domain.RoleAssignment
		var role string
		if err := rows.Scan(&a.ID, &a.UserID, &role, &a.GrantedBy, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Role = domain.Role(role)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *assignmentsRepo) HasRole(ctx context.Context, userID string, role domain.Role) (bool, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM role_assignments WHERE user_id = ? AND role = ?`,
		userID, role.String()).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *assignmentsRepo) Create(ctx context.Context, a domain.RoleAssignment) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO role_assignments (id, user_id, role, granted_by, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.UserID, a.Role.String(), a.GrantedBy, a.CreatedAt)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

func (r *assignmentsRepo) CreateIfAbsent(ctx context.Context, a domain.RoleAssignment) (bool, error) {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO role_assignments (id, user_id, role, granted_by, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, role) DO NOTHING`,
		a.ID, a.UserID, a.Role.String(), a.GrantedBy, a.CreatedAt)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *assignmentsRepo) Delete(ctx context.Context, userID string, role domain.Role) error {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM role_assignments WHERE user_id = ? AND role = ?`,
		userID, role.String())
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

func (r *assignmentsRepo) CountForUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM role_assignments WHERE user_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}
