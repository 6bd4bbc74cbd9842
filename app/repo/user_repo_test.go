package repo_test

import (
	"testing"

	"user-registry/app/db"
	"user-registry/app/models"
	"user-registry/app/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Connect(db.Config{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}))
	return gdb
}

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	users := repo.NewUserRepository(newTestDB(t))

	a := &models.User{Username: "alice", Password: "p1"}
	require.NoError(t, users.Create(a))
	b := &models.User{Username: "bob", Password: "p2"}
	require.NoError(t, users.Create(b))

	assert.Greater(t, b.ID, a.ID)
}

func TestCreateDuplicateUsernameViolatesUniqueIndex(t *testing.T) {
	users := repo.NewUserRepository(newTestDB(t))

	require.NoError(t, users.Create(&models.User{Username: "alice", Password: "p1"}))
	err := users.Create(&models.User{Username: "alice", Password: "p2"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestFindByUsername(t *testing.T) {
	users := repo.NewUserRepository(newTestDB(t))
	require.NoError(t, users.Create(&models.User{Username: "alice", Password: "p1"}))

	u, err := users.FindByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "p1", u.Password)

	_, err = users.FindByUsername("nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindByID(t *testing.T) {
	users := repo.NewUserRepository(newTestDB(t))
	u := &models.User{Username: "alice", Password: "p1"}
	require.NoError(t, users.Create(u))

	got, err := users.FindByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Username, got.Username)

	_, err = users.FindByID(u.ID + 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteByID(t *testing.T) {
	users := repo.NewUserRepository(newTestDB(t))
	u := &models.User{Username: "alice", Password: "p1"}
	require.NoError(t, users.Create(u))
	require.NoError(t, users.Create(&models.User{Username: "bob", Password: "p2"}))

	require.NoError(t, users.DeleteByID(u.ID))

	all, err := users.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "bob", all[0].Username)
}

func TestAllEmptyTable(t *testing.T) {
	users := repo.NewUserRepository(newTestDB(t))
	all, err := users.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}
