package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/dbx"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// PostgresRepository persists credential records in PostgreSQL.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create runs the existence check and the insert in one transaction; the
// unique index on username is the backstop for concurrent inserts that
// race past the check.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {

		var exists bool
		query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`
		if err := tx.QueryRowContext(ctx, query, user.UserName).Scan(&exists); err != nil {
			return fmt.Errorf("error performing sql request: %v", err)
		}
		if exists {
			return common.ErrorAlreadyExists
		}

		insert :=
			`INSERT INTO users (id, username, hashed_password, current_token)
			 VALUES ($1, $2, $3, $4)
			 RETURNING created_at
			`
		if err := tx.QueryRowContext(ctx, insert,
			user.ID, user.UserName, user.HashedPassword, user.CurrentToken).Scan(&user.CreatedAt); err != nil {

			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return common.ErrorAlreadyExists
			}
			return fmt.Errorf("error performing sql request: %v", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *PostgresRepository) GetUserByName(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT id, username, hashed_password, current_token, created_at FROM users
		 WHERE username = $1
		`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.UserName, &user.HashedPassword, &user.CurrentToken, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return user, nil
}

func (r *PostgresRepository) SetToken(ctx context.Context, username string, token string) error {
	query := `UPDATE users SET current_token = $2 WHERE username = $1`

	res, err := r.db.ExecContext(ctx, query, username, token)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading rows affected: %v", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
