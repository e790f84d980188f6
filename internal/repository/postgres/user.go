package postgres

import (
	"context"
	"database/sql"
	"time"

	"avocado-hub-backend/internal/domain"
	"avocado-hub-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (username, email, password_hash, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	u.CreatedOn = time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, u.Username, u.Email, u.PasswordHash, u.CreatedOn).Scan(&u.ID)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, username, email, password_hash, created_on FROM users WHERE email = $1`
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &createdOn)
	if err != nil {
		return nil, err
	}
	u.CreatedOn = createdOn.Format("2006-01-02")
	return u, nil
}
