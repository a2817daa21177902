package postgres_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesto/internal/mesto/adapters/postgres"
	"mesto/internal/mesto/domain/entities"
)

var cardRowColumns = []string{"id", "name", "link", "owner_id", "likes", "created_at"}

const testLink = "https://example.com/photo.jpg"

func TestCardRepository_Create(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)
	input := &entities.Card{Name: "Карточка", Link: testLink, OwnerID: testUserID}

	t.Run("success with empty likes", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO cards").
			WithArgs(pgxmock.AnyArg(), input.Name, input.Link, input.OwnerID).
			WillReturnRows(pgxmock.NewRows(cardRowColumns).
				AddRow(testCardID, input.Name, input.Link, input.OwnerID, []string{}, now))

		card, err := postgres.NewCardRepository(mock).Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, testCardID, card.ID)
		assert.Equal(t, testUserID, card.OwnerID)
		assert.NotNil(t, card.Likes)
		assert.Empty(t, card.Likes)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown owner", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO cards").
			WithArgs(pgxmock.AnyArg(), input.Name, input.Link, input.OwnerID).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		_, err = postgres.NewCardRepository(mock).Create(ctx, input)
		require.ErrorIs(t, err, entities.ErrInvalidCardData)
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO cards").
			WithArgs(pgxmock.AnyArg(), input.Name, input.Link, input.OwnerID).
			WillReturnError(errors.New("broken pipe"))

		card, err := postgres.NewCardRepository(mock).Create(ctx, input)
		require.Error(t, err)
		assert.Nil(t, card)
		assert.NotErrorIs(t, err, entities.ErrInvalidCardData)
	})
}

func TestCardRepository_FindAll(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM cards ORDER BY created_at DESC").
		WillReturnRows(pgxmock.NewRows(cardRowColumns).
			AddRow(testCardID, "Новая", testLink, testUserID, []string{otherUserID}, now).
			AddRow(otherUserID, "Старая", testLink, otherUserID, []string{}, now.Add(-time.Hour)))

	cards, err := postgres.NewCardRepository(mock).FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "Новая", cards[0].Name)
	assert.Equal(t, []string{otherUserID}, cards[0].Likes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_FindByID(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM cards WHERE id = \\$1").
			WithArgs(testCardID).
			WillReturnRows(pgxmock.NewRows(cardRowColumns).
				AddRow(testCardID, "Карточка", testLink, testUserID, []string{}, now))

		card, err := postgres.NewCardRepository(mock).FindByID(ctx, testCardID)
		require.NoError(t, err)
		assert.True(t, card.IsOwnedBy(testUserID))
	})

	t.Run("not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM cards WHERE id = \\$1").
			WithArgs(testCardID).
			WillReturnError(pgx.ErrNoRows)

		_, err = postgres.NewCardRepository(mock).FindByID(ctx, testCardID)
		require.ErrorIs(t, err, entities.ErrCardNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		_, err = postgres.NewCardRepository(mock).FindByID(ctx, "not-an-id")
		require.ErrorIs(t, err, entities.ErrInvalidCardID)
	})
}

func TestCardRepository_Delete(t *testing.T) {
	ctx := testContext(t)

	t.Run("owner deletes", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM cards").
			WithArgs(testCardID, testUserID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err = postgres.NewCardRepository(mock).Delete(ctx, testCardID, testUserID)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing deleted", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM cards").
			WithArgs(testCardID, otherUserID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err = postgres.NewCardRepository(mock).Delete(ctx, testCardID, otherUserID)
		require.ErrorIs(t, err, entities.ErrCardNotFound)
	})

	t.Run("exec error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM cards").
			WithArgs(testCardID, testUserID).
			WillReturnError(errors.New("deadlock"))

		err = postgres.NewCardRepository(mock).Delete(ctx, testCardID, testUserID)
		require.Error(t, err)
		assert.NotErrorIs(t, err, entities.ErrCardNotFound)
	})
}

func TestCardRepository_Likes(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("add like", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE cards SET likes = CASE").
			WithArgs(testCardID, otherUserID).
			WillReturnRows(pgxmock.NewRows(cardRowColumns).
				AddRow(testCardID, "Карточка", testLink, testUserID, []string{otherUserID}, now))

		card, err := postgres.NewCardRepository(mock).AddLike(ctx, testCardID, otherUserID)
		require.NoError(t, err)
		assert.Contains(t, card.Likes, otherUserID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("remove like", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE cards SET likes = array_remove").
			WithArgs(testCardID, otherUserID).
			WillReturnRows(pgxmock.NewRows(cardRowColumns).
				AddRow(testCardID, "Карточка", testLink, testUserID, []string{}, now))

		card, err := postgres.NewCardRepository(mock).RemoveLike(ctx, testCardID, otherUserID)
		require.NoError(t, err)
		assert.NotContains(t, card.Likes, otherUserID)
	})

	t.Run("missing card", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE cards").
			WithArgs(testCardID, otherUserID).
			WillReturnError(pgx.ErrNoRows)

		_, err = postgres.NewCardRepository(mock).AddLike(ctx, testCardID, otherUserID)
		require.ErrorIs(t, err, entities.ErrCardNotFound)
	})

	t.Run("malformed card id", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		_, err = postgres.NewCardRepository(mock).RemoveLike(ctx, "abc", otherUserID)
		require.ErrorIs(t, err, entities.ErrInvalidCardID)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
