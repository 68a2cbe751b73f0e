package repositories

import (
	"context"
	"errors"

	"medequip-system/internal/entities"
	apperrors "medequip-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const userSelectFields = "id, name, email, phone, password, role, department, is_active, created_at"

type UserRepositoryInterface interface {
	FindUser(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByName(ctx context.Context, name string) (*entities.User, error)
	FindUsersByIDs(ctx context.Context, ids []uint64) (map[uint64]entities.User, error)
	CreateUser(ctx context.Context, user *entities.User) (*entities.User, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.Password,
		&u.Role, &u.Department, &u.IsActive, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	query := "SELECT " + userSelectFields + " FROM users WHERE id = $1"
	return scanUser(r.storage.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindUserByName(ctx context.Context, name string) (*entities.User, error) {
	query := "SELECT " + userSelectFields + " FROM users WHERE name = $1 AND is_active"
	return scanUser(r.storage.QueryRow(ctx, query, name))
}

// FindUsersByIDs is the batch lookup used for read-model enrichment:
// one query for the whole id set instead of a lookup per row.
func (r *UserRepository) FindUsersByIDs(ctx context.Context, ids []uint64) (map[uint64]entities.User, error) {
	result := make(map[uint64]entities.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := "SELECT " + userSelectFields + " FROM users WHERE id = ANY($1)"
	rows, err := r.storage.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result[u.ID] = *u
	}
	return result, rows.Err()
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	query := `
		INSERT INTO users (name, email, phone, password, role, department, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userSelectFields

	return scanUser(r.storage.QueryRow(ctx, query,
		user.Name, user.Email, user.Phone, user.Password,
		user.Role, user.Department, user.IsActive,
	))
}
