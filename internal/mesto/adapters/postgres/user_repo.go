package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"mesto/internal/mesto/domain/entities"
	"mesto/internal/mesto/ports/repositories"
	"mesto/pkg/logger"
)

const userColumns = `id, name, about, avatar, email, created_at, updated_at`

// UserRepository реализует интерфейс repositories.UserRepository для работы с Postgres.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.About,
		&user.Avatar,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create сохраняет нового пользователя и выдает ему идентификатор.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (id, name, about, avatar, email, password_hash)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + userColumns

	created, err := scanUser(r.pool.QueryRow(ctx, query,
		newID(),
		user.Name,
		user.About,
		user.Avatar,
		user.Email,
		user.PasswordHash,
	))
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			log.Debug(ctx, "email already registered", zap.String("email", user.Email))
			return nil, entities.ErrEmailAlreadyExists
		case pgCheckViolation:
			log.Debug(ctx, "user data rejected by constraints", zap.Error(err))
			return nil, fmt.Errorf("%w: %w", entities.ErrInvalidUserData, err)
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return created, nil
}

// FindAll возвращает всех пользователей.
func (r *UserRepository) FindAll(ctx context.Context) ([]*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindAll"))

	query := `
        SELECT ` + userColumns + `
        FROM users
        ORDER BY created_at
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		log.Error(ctx, "error querying users", zap.Error(err))
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := make([]*entities.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Error(ctx, "error scanning user row", zap.Error(err))
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating user rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

// FindByID находит пользователя по ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	if !isValidID(id) {
		log.Debug(ctx, "malformed user id", zap.String("id", id))
		return nil, entities.ErrInvalidUserID
	}

	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE id = $1
    `

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("id", id))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	return user, nil
}

// FindByEmail находит пользователя по email без хэша пароля.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByEmail"))

	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE email = $1
    `

	user, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("email", email))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by email", zap.Error(err))
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}

	return user, nil
}

// FindByEmailWithPassword находит пользователя по email вместе с хэшем пароля.
func (r *UserRepository) FindByEmailWithPassword(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByEmailWithPassword"))

	query := `
        SELECT ` + userColumns + `, password_hash
        FROM users
        WHERE email = $1
    `

	var user entities.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.About,
		&user.Avatar,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("email", email))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user credentials", zap.Error(err))
		return nil, fmt.Errorf("error querying user credentials: %w", err)
	}

	return &user, nil
}

// UpdateProfile обновляет заданные поля профиля и возвращает новую запись.
func (r *UserRepository) UpdateProfile(ctx context.Context, id string, update entities.ProfileUpdate) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "UpdateProfile"))

	if !isValidID(id) {
		log.Debug(ctx, "malformed user id", zap.String("id", id))
		return nil, entities.ErrInvalidUserID
	}

	query := `
        UPDATE users
        SET name = COALESCE($2, name),
            about = COALESCE($3, about),
            avatar = COALESCE($4, avatar),
            updated_at = $5
        WHERE id = $1
        RETURNING ` + userColumns

	user, err := scanUser(r.pool.QueryRow(ctx, query,
		id,
		update.Name,
		update.About,
		update.Avatar,
		time.Now().UTC(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found for update", zap.String("id", id))
			return nil, entities.ErrUserNotFound
		}
		if pgErrorCode(err) == pgCheckViolation {
			log.Debug(ctx, "profile update rejected by constraints", zap.Error(err))
			return nil, fmt.Errorf("%w: %w", entities.ErrInvalidUserData, err)
		}
		log.Error(ctx, "error updating user", zap.Error(err))
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	return user, nil
}
