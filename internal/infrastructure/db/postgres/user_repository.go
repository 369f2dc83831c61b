package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/blogforge/blog-api/internal/core/domain"
)

const uniqueViolation = "23505"

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `INSERT INTO users (email, first_name, last_name, date_of_birth, password_hash, is_staff, is_superuser, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          RETURNING id`

	var dob sql.NullTime
	if user.DateOfBirth != nil {
		dob = sql.NullTime{Time: *user.DateOfBirth, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.FirstName, user.LastName, dob, user.PasswordHash,
		user.IsStaff, user.IsSuperuser, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := userSelect + ` WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	query := userSelect + ` WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

const userSelect = `SELECT id, email, first_name, last_name, date_of_birth, password_hash, is_staff, is_superuser, created_at, updated_at FROM users`

func (r *UserRepository) scanUser(row *sql.Row) (*domain.User, error) {
	var (
		user domain.User
		dob  sql.NullTime
	)
	err := row.Scan(
		&user.ID, &user.Email, &user.FirstName, &user.LastName, &dob,
		&user.PasswordHash, &user.IsStaff, &user.IsSuperuser, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if dob.Valid {
		t := dob.Time
		user.DateOfBirth = &t
	}
	return &user, nil
}
