package db

import (
	"path/filepath"
	"testing"

	"github.com/PowerNightVS/discord-web/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SQLiteCreatesUsersTable(t *testing.T) {
	if runningInDocker() {
		t.Skip("sqlite file must be mounted when running in docker")
	}

	path := filepath.Join(t.TempDir(), "database.db")

	db, err := New("sqlite", path)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	assert.True(t, db.Migrator().HasTable("users"))
	assert.True(t, db.Migrator().HasColumn(&model.User{}, "command_count"))

	require.NoError(t, db.Create(&model.User{ID: "1", Username: "nelly"}).Error)

	var u model.User
	require.NoError(t, db.First(&u, "id = ?", "1").Error)
	assert.Equal(t, 0, u.CommandCount)

	// Running the setup twice must not fail
	again, err := New("sqlite", path)
	require.NoError(t, err)

	againDB, err := again.DB()
	require.NoError(t, err)
	againDB.Close()
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New("mysql", "whatever")
	assert.ErrorContains(t, err, "unsupported database driver")
}
