package sqlite

import (
	"context"

	"github.com/opsdeskhq/opsdesk-access/internal/access/domain"
)

type profilesRepo struct {
	q dbtx
}

func (r *profilesRepo) Upsert(ctx context.Context, p domain.Profile) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO profiles (user_id, email, display_name, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET
		   email = excluded.email,
		   display_name = excluded.display_name,
		   updated_at = excluded.updated_at`,
		p.UserID, p.Email, p.DisplayName, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *profilesRepo) GetByUserID(ctx context.Context, userID string) (domain.Profile, error) {
	var p domain.Profile
	err := r.q.QueryRowContext(ctx,
		`SELECT user_id, email, display_name, created_at, updated_at
		 FROM profiles WHERE user_id = ?`, userID).
		Scan(&p.UserID, &p.Email, &p.DisplayName, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	return p, nil
}
