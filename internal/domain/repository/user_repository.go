package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"devfolio/internal/common"
	"devfolio/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository interface {
	GetAll(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// Create stores the user; insert.Password must already be hashed.
	Create(ctx context.Context, insert model.InsertUser) (*model.User, error)
	UpdateRole(ctx context.Context, id int, role string) (*model.User, error)
	Delete(ctx context.Context, id int) error
}

type pgUserRepository struct {
	db  *sql.DB
	ids *idSequence
}

func NewPgUserRepository(db *sql.DB, ids *idSequence) UserRepository {
	return &pgUserRepository{db: db, ids: ids}
}

const userColumns = `id, username, password, name, email, role`

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Username, &user.Password, &user.Name, &user.Email, &user.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *pgUserRepository) GetAll(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("pgUserRepository.GetAll: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("pgUserRepository.GetAll: %w", err)
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *pgUserRepository) GetByID(ctx context.Context, id int) (*model.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("pgUserRepository.GetByID: %w", err)
	}
	return user, nil
}

func (r *pgUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("pgUserRepository.GetByUsername: %w", err)
	}
	return user, nil
}

func (r *pgUserRepository) Create(ctx context.Context, insert model.InsertUser) (*model.User, error) {
	user := &model.User{
		ID:       r.ids.Next(),
		Username: insert.Username,
		Password: insert.Password,
		Name:     insert.Name,
		Email:    insert.Email,
		Role:     insert.Role,
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password, name, email, role) VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.Password, user.Name, user.Email, user.Role,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint violation
			return nil, fmt.Errorf("username already taken: %w", common.ErrConflict)
		}
		return nil, fmt.Errorf("pgUserRepository.Create: %w", err)
	}
	return user, nil
}

func (r *pgUserRepository) UpdateRole(ctx context.Context, id int, role string) (*model.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx,
		`UPDATE users SET role = $1 WHERE id = $2 RETURNING `+userColumns, role, id))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("pgUserRepository.UpdateRole: %w", err)
	}
	return user, nil
}

func (r *pgUserRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("pgUserRepository.Delete: %w", err)
	}
	return nil
}
