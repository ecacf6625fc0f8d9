package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"appointment-booking-api/internal/model"
)

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (first_name, last_name, email, phone, password, role)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 RETURNING id, created_at`,
		u.FirstName, u.LastName, u.Email, u.Phone, u.PasswordHash, u.Role,
	).Scan(&u.ID, &u.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateEmail
	}
	return err
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, phone, password, role, created_at
		 FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Store) UserByID(ctx context.Context, id int64) (*model.User, error) {
	u := &model.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, phone, password, role, created_at
		 FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// SeedAdmin inserts the administrator account if it is absent. ON CONFLICT
// makes the bootstrap idempotent across restarts and racing replicas.
func (s *Store) SeedAdmin(ctx context.Context, email, passwordHash string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (first_name, last_name, email, phone, password, role)
		 VALUES ('Admin', 'User', $1, '0000000000', $2, 'admin')
		 ON CONFLICT (email) DO NOTHING`,
		email, passwordHash,
	)
	return err
}
