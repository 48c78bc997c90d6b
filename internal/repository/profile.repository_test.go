package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"decisionengine/internal/domain"
)

func newProfileRepositoryForTests(t *testing.T) ProfileRepository {
	store, err := OpenProfileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewProfileRepository(store)
}

func Test_ProfileRepository_CreateAndGet(t *testing.T) {
	repo := newProfileRepositoryForTests(t)

	created, err := repo.Create("tech watchlist")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	require.Equal(t, "tech watchlist", created.Name)
	require.Empty(t, created.Tickers)

	fetched, err := repo.Get(created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, fetched.ID)
	require.Equal(t, created.Name, fetched.Name)
}

func Test_ProfileRepository_CreateBlankName(t *testing.T) {
	repo := newProfileRepositoryForTests(t)

	created, err := repo.Create("   ")
	require.NoError(t, err)
	require.Equal(t, "Unnamed profile", created.Name)
}

func Test_ProfileRepository_GetUnknown(t *testing.T) {
	repo := newProfileRepositoryForTests(t)

	_, err := repo.Get(uuid.New())
	var notFoundErr domain.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	require.Equal(t, "profile", notFoundErr.Resource)
}

func Test_ProfileRepository_UpdateTickers(t *testing.T) {
	repo := newProfileRepositoryForTests(t)

	created, err := repo.Create("mix")
	require.NoError(t, err)

	t.Run("adds canonicalize and dedupe", func(t *testing.T) {
		updated, err := repo.UpdateTickers(created.ID, []string{"aapl", "AAPL", "msft"}, nil)
		require.NoError(t, err)
		require.Equal(t, []string{"AAPL", "MSFT"}, updated.Tickers)
	})

	t.Run("changes persist across reads", func(t *testing.T) {
		fetched, err := repo.Get(created.ID)
		require.NoError(t, err)
		require.Equal(t, []string{"AAPL", "MSFT"}, fetched.Tickers)
	})

	t.Run("remove is case-insensitive and ignores absent symbols", func(t *testing.T) {
		updated, err := repo.UpdateTickers(created.ID, nil, []string{"aapl", "TSLA"})
		require.NoError(t, err)
		require.Equal(t, []string{"MSFT"}, updated.Tickers)
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := repo.UpdateTickers(uuid.New(), []string{"AAPL"}, nil)
		var notFoundErr domain.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
	})
}

func Test_ProfileRepository_ListOrder(t *testing.T) {
	repo := newProfileRepositoryForTests(t)

	first, err := repo.Create("first")
	require.NoError(t, err)
	second, err := repo.Create("second")
	require.NoError(t, err)
	third, err := repo.Create("third")
	require.NoError(t, err)

	profiles, err := repo.List()
	require.NoError(t, err)
	require.Len(t, profiles, 3)
	require.Equal(t, []uuid.UUID{first.ID, second.ID, third.ID},
		[]uuid.UUID{profiles[0].ID, profiles[1].ID, profiles[2].ID})
}

func Test_ProfileRepository_Delete(t *testing.T) {
	repo := newProfileRepositoryForTests(t)

	created, err := repo.Create("short lived")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(created.ID))

	_, err = repo.Get(created.ID)
	var notFoundErr domain.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)

	err = repo.Delete(created.ID)
	require.ErrorAs(t, err, &notFoundErr)
}
