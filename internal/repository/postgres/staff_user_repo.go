package postgres

import (
	"context"
	"database/sql"

	"medprep/internal/domain"
)

type staffUserRepository struct {
	DB *sql.DB
}

// NewStaffUserRepository returns a StaffUserRepository backed by Postgres.
func NewStaffUserRepository(db *sql.DB) domain.StaffUserRepository {
	return &staffUserRepository{DB: db}
}

func (r *staffUserRepository) GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error) {
	query := `
		SELECT id, email, password_hash, salt, name, role, COALESCE(tutor_id, ''), created_at, updated_at
		FROM staff_users
		WHERE email = $1
	`
	u := &domain.StaffUser{}
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Salt, &u.Name, &u.Role, &u.TutorID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *staffUserRepository) GetByID(ctx context.Context, id string) (*domain.StaffUser, error) {
	query := `
		SELECT id, email, password_hash, salt, name, role, COALESCE(tutor_id, ''), created_at, updated_at
		FROM staff_users
		WHERE id = $1
	`
	u := &domain.StaffUser{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Salt, &u.Name, &u.Role, &u.TutorID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
