package postgres_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesto/internal/mesto/adapters/postgres"
	"mesto/pkg/logger"
)

const (
	testUserID  = "65a1b2c3d4e5f6a7b8c9d0e1"
	otherUserID = "65a1b2c3d4e5f6a7b8c9d0e2"
	testCardID  = "65a1b2c3d4e5f6a7b8c9d0f1"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func TestNewRepositoryFactory(t *testing.T) {
	factory := postgres.NewRepositoryFactory(&pgxpool.Pool{})

	require.NotNil(t, factory)
	assert.IsType(t, &postgres.UserRepository{}, factory.UserRepository())
	assert.IsType(t, &postgres.CardRepository{}, factory.CardRepository())
}
