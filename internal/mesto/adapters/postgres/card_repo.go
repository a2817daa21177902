package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"mesto/internal/mesto/domain/entities"
	"mesto/internal/mesto/ports/repositories"
	"mesto/pkg/logger"
)

const cardColumns = `id, name, link, owner_id, likes, created_at`

// CardRepository реализует интерфейс repositories.CardRepository для работы с Postgres.
type CardRepository struct {
	pool PgxPoolInterface
}

// NewCardRepository создает новый экземпляр репозитория карточек.
func NewCardRepository(pool PgxPoolInterface) repositories.CardRepository {
	return &CardRepository{pool: pool}
}

func scanCard(row pgx.Row) (*entities.Card, error) {
	var card entities.Card
	err := row.Scan(
		&card.ID,
		&card.Name,
		&card.Link,
		&card.OwnerID,
		&card.Likes,
		&card.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if card.Likes == nil {
		card.Likes = []string{}
	}
	return &card, nil
}

// Create сохраняет новую карточку с пустым списком лайков.
func (r *CardRepository) Create(ctx context.Context, card *entities.Card) (*entities.Card, error) {
	log := logger.Log(ctx).With(zap.String("repository", "card"), zap.String("method", "Create"))

	query := `
        INSERT INTO cards (id, name, link, owner_id)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + cardColumns

	created, err := scanCard(r.pool.QueryRow(ctx, query,
		newID(),
		card.Name,
		card.Link,
		card.OwnerID,
	))
	if err != nil {
		switch pgErrorCode(err) {
		case pgCheckViolation, pgForeignKeyViolation:
			log.Debug(ctx, "card data rejected by constraints", zap.Error(err))
			return nil, fmt.Errorf("%w: %w", entities.ErrInvalidCardData, err)
		}
		log.Error(ctx, "error creating card", zap.Error(err))
		return nil, fmt.Errorf("error creating card: %w", err)
	}

	return created, nil
}

// FindAll возвращает все карточки, новые первыми.
func (r *CardRepository) FindAll(ctx context.Context) ([]*entities.Card, error) {
	log := logger.Log(ctx).With(zap.String("repository", "card"), zap.String("method", "FindAll"))

	query := `
        SELECT ` + cardColumns + `
        FROM cards
        ORDER BY created_at DESC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		log.Error(ctx, "error querying cards", zap.Error(err))
		return nil, fmt.Errorf("error querying cards: %w", err)
	}
	defer rows.Close()

	cards := make([]*entities.Card, 0)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			log.Error(ctx, "error scanning card row", zap.Error(err))
			return nil, fmt.Errorf("error scanning card row: %w", err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating card rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating card rows: %w", err)
	}

	return cards, nil
}

// FindByID находит карточку по ID.
func (r *CardRepository) FindByID(ctx context.Context, id string) (*entities.Card, error) {
	log := logger.Log(ctx).With(zap.String("repository", "card"), zap.String("method", "FindByID"))

	if !isValidID(id) {
		log.Debug(ctx, "malformed card id", zap.String("id", id))
		return nil, entities.ErrInvalidCardID
	}

	query := `
        SELECT ` + cardColumns + `
        FROM cards
        WHERE id = $1
    `

	card, err := scanCard(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "card not found", zap.String("id", id))
			return nil, entities.ErrCardNotFound
		}
		log.Error(ctx, "error finding card by id", zap.Error(err))
		return nil, fmt.Errorf("error querying card by id: %w", err)
	}

	return card, nil
}

// Delete удаляет карточку. Условие по owner_id не дает удалить чужую карточку
// даже при гонке между проверкой владельца и удалением.
func (r *CardRepository) Delete(ctx context.Context, id, ownerID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "card"), zap.String("method", "Delete"))

	if !isValidID(id) {
		log.Debug(ctx, "malformed card id", zap.String("id", id))
		return entities.ErrInvalidCardID
	}

	query := `
        DELETE FROM cards
        WHERE id = $1 AND owner_id = $2
    `

	result, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		log.Error(ctx, "error deleting card", zap.Error(err))
		return fmt.Errorf("error deleting card: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "card not found for deletion", zap.String("id", id))
		return entities.ErrCardNotFound
	}

	return nil
}

// AddLike добавляет пользователя в лайки одним UPDATE, повторный вызов ничего не меняет.
func (r *CardRepository) AddLike(ctx context.Context, cardID, userID string) (*entities.Card, error) {
	query := `
        UPDATE cards
        SET likes = CASE
            WHEN $2::text = ANY(likes) THEN likes
            ELSE array_append(likes, $2::text)
        END
        WHERE id = $1
        RETURNING ` + cardColumns

	return r.updateLikes(ctx, "AddLike", query, cardID, userID)
}

// RemoveLike убирает пользователя из лайков.
func (r *CardRepository) RemoveLike(ctx context.Context, cardID, userID string) (*entities.Card, error) {
	query := `
        UPDATE cards
        SET likes = array_remove(likes, $2::text)
        WHERE id = $1
        RETURNING ` + cardColumns

	return r.updateLikes(ctx, "RemoveLike", query, cardID, userID)
}

func (r *CardRepository) updateLikes(ctx context.Context, method, query, cardID, userID string) (*entities.Card, error) {
	log := logger.Log(ctx).With(
		zap.String("repository", "card"),
		zap.String("method", method),
		zap.String("cardID", cardID),
	)

	if !isValidID(cardID) {
		log.Debug(ctx, "malformed card id")
		return nil, entities.ErrInvalidCardID
	}

	card, err := scanCard(r.pool.QueryRow(ctx, query, cardID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "card not found")
			return nil, entities.ErrCardNotFound
		}
		log.Error(ctx, "error updating card likes", zap.Error(err))
		return nil, fmt.Errorf("error updating card likes: %w", err)
	}

	return card, nil
}
