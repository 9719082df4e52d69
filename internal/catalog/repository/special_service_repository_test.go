package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourquote/internal/errors"
)

func writeServicesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "services.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestYAMLSpecialServiceRepository_LoadsTable(t *testing.T) {
	path := writeServicesFile(t, `
services:
  - tag: airportTransfer
    label: Airport transfer
    priceJPY: 3000
  - tag: teaCeremony
    label: Tea ceremony
    priceJPY: 4000
`)

	repo, err := NewYAMLSpecialServiceRepository(path)
	require.NoError(t, err)

	all := repo.FindAll()
	require.Len(t, all, 2)

	svc, err := repo.FindByTag("airportTransfer")
	require.NoError(t, err)
	assert.Equal(t, "Airport transfer", svc.Label)
	assert.Equal(t, 3000.0, svc.PriceJPY)
}

func TestYAMLSpecialServiceRepository_UnknownTag(t *testing.T) {
	path := writeServicesFile(t, `
services:
  - tag: teaCeremony
    label: Tea ceremony
    priceJPY: 4000
`)

	repo, err := NewYAMLSpecialServiceRepository(path)
	require.NoError(t, err)

	svc, err := repo.FindByTag("helicopterTour")
	assert.Nil(t, svc)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
}

func TestYAMLSpecialServiceRepository_RejectsDuplicateTags(t *testing.T) {
	path := writeServicesFile(t, `
services:
  - tag: teaCeremony
    label: Tea ceremony
    priceJPY: 4000
  - tag: teaCeremony
    label: Tea ceremony again
    priceJPY: 5000
`)

	repo, err := NewYAMLSpecialServiceRepository(path)
	assert.Nil(t, repo)
	assert.Error(t, err)
}

func TestYAMLSpecialServiceRepository_RejectsMissingTag(t *testing.T) {
	path := writeServicesFile(t, `
services:
  - label: Nameless service
    priceJPY: 1000
`)

	repo, err := NewYAMLSpecialServiceRepository(path)
	assert.Nil(t, repo)
	assert.Error(t, err)
}

func TestYAMLSpecialServiceRepository_MissingFile(t *testing.T) {
	repo, err := NewYAMLSpecialServiceRepository(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Nil(t, repo)
	assert.Error(t, err)
}

func TestYAMLSpecialServiceRepository_FindAll_IsACopy(t *testing.T) {
	path := writeServicesFile(t, `
services:
  - tag: premiumDinner
    label: Premium dinner
    priceJPY: 12000
`)

	repo, err := NewYAMLSpecialServiceRepository(path)
	require.NoError(t, err)

	all := repo.FindAll()
	all[0].PriceJPY = 1

	again, err := repo.FindByTag("premiumDinner")
	require.NoError(t, err)
	assert.Equal(t, 12000.0, again.PriceJPY)
}
