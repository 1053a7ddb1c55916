package postgres

import (
	"context"
	"errors"

	"account-service/internal/models"
	"account-service/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type usersRepo struct{ pool *pgxpool.Pool }

func NewUsers(pool *pgxpool.Pool) repository.Users {
	return &usersRepo{pool: pool}
}

const userColumns = `id, username, password_hash, age, phone, email, created_at, updated_at`

func (r *usersRepo) FindByUsername(ctx context.Context, username string) (models.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username=$1`, username)
	return scanUser(row)
}

// Insert relies on the unique index on username: two concurrent inserts with
// the same name resolve to one row and one ErrUsernameTaken.
func (r *usersRepo) Insert(ctx context.Context, username, passwordHash string) (models.User, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO users(username, password_hash)
		 VALUES($1,$2)
		 RETURNING `+userColumns,
		username, passwordHash)
	u, err := scanUser(row)
	if err != nil {
		return models.User{}, mapConstraint(err)
	}
	return u, nil
}

func (r *usersRepo) UpdateProfile(ctx context.Context, id int64, f repository.ProfileFields) (models.User, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE users
		    SET username=$2, age=$3, phone=$4, email=$5, updated_at=now()
		  WHERE id=$1
		  RETURNING `+userColumns,
		id, f.Username, f.Age, f.Phone, f.Email)
	u, err := scanUser(row)
	if err != nil {
		return models.User{}, mapConstraint(err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Age, &u.Phone, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, repository.ErrNotFound
	}
	return u, err
}

func mapConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrUsernameTaken
	}
	return err
}
