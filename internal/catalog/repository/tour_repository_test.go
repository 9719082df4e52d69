package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourquote/internal/errors"
	"tourquote/internal/testutil"
)

// Unit Tests

func TestNewMySQLTourRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLTourRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestTourRepository_FindByID_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLTourRepository(db)

	result, err := db.Exec(`
		INSERT INTO Tour (name, description, basePrice, isActive)
		VALUES ('Kansai Highlights', 'Osaka, Kyoto and Nara over five days', 50000.00, 1)
	`)
	require.NoError(t, err)

	id, err := result.LastInsertId()
	require.NoError(t, err)

	tour, err := repo.FindByID(context.Background(), int(id))
	require.NoError(t, err)
	assert.NotNil(t, tour)
	assert.Equal(t, int(id), tour.ID)
	assert.Equal(t, "Kansai Highlights", tour.Name)
	assert.Equal(t, 50000.00, tour.BasePrice)
	assert.True(t, tour.IsActive)
}

func TestTourRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLTourRepository(db)

	tour, err := repo.FindByID(context.Background(), 9999)
	assert.Error(t, err)
	assert.Nil(t, tour)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
}

func TestTourRepository_FindAll_SkipsInactive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLTourRepository(db)

	_, err := db.Exec(`
		INSERT INTO Tour (name, description, basePrice, isActive) VALUES
		('Tokyo Express', 'Two days in Tokyo', 30000.00, 1),
		('Retired Route', 'No longer offered', 20000.00, 0)
	`)
	require.NoError(t, err)

	tours, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, tours, 1)
	assert.Equal(t, "Tokyo Express", tours[0].Name)
}
