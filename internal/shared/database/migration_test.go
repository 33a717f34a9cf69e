package database_test

import (
	"testing"

	"github.com/changhyeonkim/memome/go-api-server/internal/config"
	"github.com/changhyeonkim/memome/go-api-server/internal/model"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func migrationConfig(env string, autoMigrate bool) *config.Config {
	return &config.Config{
		App:      config.AppConfig{Env: env},
		Database: config.DatabaseConfig{Driver: "sqlite", IsAutoMigrate: autoMigrate},
	}
}

func countMembers(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&model.Member{}).Count(&count).Error)
	return count
}

func TestMigrate_AutoMigrateKeepsData(t *testing.T) {
	// Given: a schema that already holds data
	db := testutil.SetupTestDB(t)
	owner := testutil.CreateTestMember(t, db, model.ProviderGoogle, "0123456789", "홍길동", "test@email.com")
	testutil.CreateTestMemo(t, db, owner, "장보기", "우유, 계란")

	// When: the server starts with auto migration enabled
	err := database.Migrate(db, migrationConfig("local", true))

	// Then: tables are kept as is
	require.NoError(t, err)
	assert.Equal(t, int64(1), countMembers(t, db))

	var memoCount int64
	require.NoError(t, db.Model(&model.Memo{}).Count(&memoCount).Error)
	assert.Equal(t, int64(1), memoCount)
}

func TestMigrate_Disabled(t *testing.T) {
	// Given
	db := testutil.SetupTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&model.Memo{}))

	// When
	err := database.Migrate(db, migrationConfig("local", false))

	// Then: nothing is created
	require.NoError(t, err)
	assert.False(t, db.Migrator().HasTable(&model.Memo{}))
}

func TestRecreate_DropsData(t *testing.T) {
	// Given
	db := testutil.SetupTestDB(t)
	testutil.CreateTestMember(t, db, model.ProviderGoogle, "0123456789", "홍길동", "test@email.com")

	// When
	err := database.Recreate(db, migrationConfig("local", false))

	// Then
	require.NoError(t, err)
	assert.Zero(t, countMembers(t, db))
}

func TestRecreate_BlockedInProduction(t *testing.T) {
	// Given
	db := testutil.SetupTestDB(t)
	testutil.CreateTestMember(t, db, model.ProviderGoogle, "0123456789", "홍길동", "test@email.com")

	// When
	err := database.Recreate(db, migrationConfig("prod", false))

	// Then
	require.Error(t, err)
	assert.Equal(t, int64(1), countMembers(t, db))
}
