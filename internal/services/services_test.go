package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"teamfortasks/internal/fixtures"
)

func TestNewEmbedded(t *testing.T) {
	svc, err := New("")
	require.NoError(t, err)
	require.Equal(t, []string{"store", "Kanhu", "dj"}, svc.Catalog.Names())

	page, err := svc.NewPage()
	require.NoError(t, err)
	require.Equal(t, "store", page.ActiveTeam())
}

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
teams:
  - name: floor
    progress: 20
    stats: {total: 3, pending: 1, verify: 1, done: 1}
    tasks:
      - {title: "Mop aisle 4", priority: low, due: "Today"}
`), 0o600))

	svc, err := New(path)
	require.NoError(t, err)
	require.Equal(t, []string{"floor"}, svc.Catalog.Names())
}

func TestNewRejectsInvalidFixtures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
teams:
  - name: floor
    stats: {total: 1, pending: 2}
`), 0o600))

	_, err := New(path)
	require.ErrorIs(t, err, fixtures.ErrInvalidFixture)
}
