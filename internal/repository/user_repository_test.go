package repository_test

import (
	"context"
	"testing"

	"github.com/lucsky/cuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remediation-portal/internal/domain"
	"remediation-portal/internal/repository"
)

func TestPostgresUserRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresUserRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		user := &domain.User{ID: cuid.New(), Email: "ada@example.com", Name: "Ada", Role: domain.RoleReviewer}
		require.NoError(t, repo.Create(ctx, user))
		assert.False(t, user.CreatedAt.IsZero())

		got, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "ada@example.com", got.Email)
		assert.Equal(t, domain.RoleReviewer, got.Role)
		assert.Nil(t, got.Phone)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		require.NoError(t, repo.Create(ctx, &domain.User{ID: cuid.New(), Email: "dup@example.com", Name: "A", Role: domain.RoleUser}))
		err := repo.Create(ctx, &domain.User{ID: cuid.New(), Email: "dup@example.com", Name: "B", Role: domain.RoleUser})
		require.Error(t, err)
		assert.Equal(t, domain.CodeConflict, domain.ErrorCodeOf(err))
	})

	t.Run("missing user returns nil", func(t *testing.T) {
		got, err := repo.GetByID(ctx, cuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("update profile sets and clears optional fields", func(t *testing.T) {
		testDB.TruncateTables(t, "users")
		user := testDB.CreateUser(t, domain.RoleUser)

		phone, company := "+1 555 0100", "Acme"
		updated, err := repo.UpdateProfile(ctx, user.ID, domain.ProfileUpdate{Name: "Grace", Phone: &phone, Company: &company})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Grace", updated.Name)
		require.NotNil(t, updated.Phone)
		assert.Equal(t, phone, *updated.Phone)

		cleared, err := repo.UpdateProfile(ctx, user.ID, domain.ProfileUpdate{Name: "Grace"})
		require.NoError(t, err)
		assert.Nil(t, cleared.Phone)
		assert.Nil(t, cleared.Company)
	})

	t.Run("update profile of missing user returns nil", func(t *testing.T) {
		got, err := repo.UpdateProfile(ctx, cuid.New(), domain.ProfileUpdate{Name: "Nobody"})
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
