package repository

import (
	"context"
	"testing"

	"magasin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAdherents(t *testing.T, repo AdherentRepository, pairs ...[2]string) []domain.Adherent {
	t.Helper()
	ctx := context.Background()

	var created []domain.Adherent
	for _, pair := range pairs {
		adherent, err := repo.Create(ctx, &domain.Adherent{Name: pair[0], Email: pair[1]})
		require.NoError(t, err)
		created = append(created, *adherent)
	}
	return created
}

func TestAdherentCreate_DuplicateEmail(t *testing.T) {
	repo := NewMemoryAdherentRepository()
	ctx := context.Background()

	seedAdherents(t, repo, [2]string{"Alice", "alice@x.com"})

	_, err := repo.Create(ctx, &domain.Adherent{Name: "Other", Email: "alice@x.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	_, count, err := repo.Find(ctx, ListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAdherentGetByID(t *testing.T) {
	repo := NewMemoryAdherentRepository()
	ctx := context.Background()

	created := seedAdherents(t, repo, [2]string{"Alice", "alice@x.com"})

	got, err := repo.GetByID(ctx, created[0].ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "alice@x.com", got.Email)
	assert.False(t, got.DateJoined.IsZero())

	_, err = repo.GetByID(ctx, "65f000000000000000000000")
	assert.ErrorIs(t, err, domain.ErrAdherentNotFound)

	_, err = repo.GetByID(ctx, "not-a-hex-id")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAdherentNotFound)
}

func TestAdherentFind_Search(t *testing.T) {
	repo := NewMemoryAdherentRepository()
	ctx := context.Background()

	seedAdherents(t, repo,
		[2]string{"Alice", "alice@x.com"},
		[2]string{"Bob", "bob@y.org"},
		[2]string{"Carol", "carol@alicorp.net"},
	)

	tests := []struct {
		search string
		want   []string
	}{
		{search: "", want: []string{"Alice", "Bob", "Carol"}},
		{search: "ALICE", want: []string{"Alice"}},
		{search: "ali", want: []string{"Alice", "Carol"}}, // matches email too
		{search: "y.org", want: []string{"Bob"}},
		{search: "nobody", want: []string{}},
	}

	for _, tt := range tests {
		t.Run("search="+tt.search, func(t *testing.T) {
			items, count, err := repo.Find(ctx, ListQuery{Page: 1, Limit: 10, Search: tt.search})
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.want)), count)

			var names []string
			for _, item := range items {
				names = append(names, item.Name)
			}
			assert.ElementsMatch(t, tt.want, names)
		})
	}
}

func TestAdherentFind_Pagination(t *testing.T) {
	repo := NewMemoryAdherentRepository()
	ctx := context.Background()

	seedAdherents(t, repo,
		[2]string{"A", "a@x.com"},
		[2]string{"B", "b@x.com"},
		[2]string{"C", "c@x.com"},
	)

	page1, count, err := repo.Find(ctx, ListQuery{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	require.Len(t, page1, 2)
	assert.Equal(t, "A", page1[0].Name)
	assert.Equal(t, "B", page1[1].Name)

	page2, count, err := repo.Find(ctx, ListQuery{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	require.Len(t, page2, 1)
	assert.Equal(t, "C", page2[0].Name)

	// Beyond the last page: empty items, full count.
	page9, count, err := repo.Find(ctx, ListQuery{Page: 9, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Empty(t, page9)
}

func TestAdherentUpdate_MergeSemantics(t *testing.T) {
	repo := NewMemoryAdherentRepository()
	ctx := context.Background()

	created := seedAdherents(t, repo, [2]string{"Alice", "alice@x.com"})
	id := created[0].ID.Hex()

	name := "Alicia"
	updated, err := repo.Update(ctx, id, domain.AdherentUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, "alice@x.com", updated.Email, "absent field must stay untouched")

	_, err = repo.Update(ctx, "65f000000000000000000000", domain.AdherentUpdate{Name: &name})
	assert.ErrorIs(t, err, domain.ErrAdherentNotFound)
}

func TestAdherentUpdate_DuplicateEmail(t *testing.T) {
	repo := NewMemoryAdherentRepository()
	ctx := context.Background()

	created := seedAdherents(t, repo,
		[2]string{"Alice", "alice@x.com"},
		[2]string{"Bob", "bob@x.com"},
	)

	email := "alice@x.com"
	_, err := repo.Update(ctx, created[1].ID.Hex(), domain.AdherentUpdate{Email: &email})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestAdherentDelete(t *testing.T) {
	repo := NewMemoryAdherentRepository()
	ctx := context.Background()

	created := seedAdherents(t, repo, [2]string{"Alice", "alice@x.com"})

	require.NoError(t, repo.Delete(ctx, created[0].ID.Hex()))

	err := repo.Delete(ctx, created[0].ID.Hex())
	assert.ErrorIs(t, err, domain.ErrAdherentNotFound)
}

func TestProductFind_SearchByCategory(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Product{Name: "Hammer", Price: 10, Category: "Tools"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Product{Name: "Screwdriver", Price: 5, Category: "Tools"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Product{Name: "Apple", Price: 1, Category: "Food"})
	require.NoError(t, err)

	items, count, err := repo.Find(ctx, ListQuery{Page: 1, Limit: 10, Search: "tool"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Len(t, items, 2)

	items, count, err = repo.Find(ctx, ListQuery{Page: 1, Limit: 10, Search: "apple"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, items, 1)
	assert.Equal(t, "Apple", items[0].Name)
}

func TestProductUpdate_DoesNotTouchImage(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Product{
		Name:     "Hammer",
		Price:    10,
		Category: "Tools",
		Image:    "1700000000000-hammer.png",
	})
	require.NoError(t, err)

	name := "Sledgehammer"
	price := 25.0
	updated, err := repo.Update(ctx, created.ID.Hex(), domain.ProductUpdate{Name: &name, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Sledgehammer", updated.Name)
	assert.Equal(t, 25.0, updated.Price)
	assert.Equal(t, "1700000000000-hammer.png", updated.Image)
}

func TestProductDelete_NotFound(t *testing.T) {
	repo := NewMemoryProductRepository()
	err := repo.Delete(context.Background(), "65f000000000000000000000")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
