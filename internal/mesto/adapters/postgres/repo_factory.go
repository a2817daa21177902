package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"mesto/internal/mesto/ports/repositories"
)

// RepositoryFactory создает все необходимые репозитории для работы с PostgreSQL.
type RepositoryFactory struct {
	userRepo repositories.UserRepository
	cardRepo repositories.CardRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool *pgxpool.Pool) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo: NewUserRepository(pool),
		cardRepo: NewCardRepository(pool),
	}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// CardRepository возвращает репозиторий карточек.
func (f *RepositoryFactory) CardRepository() repositories.CardRepository {
	return f.cardRepo
}
