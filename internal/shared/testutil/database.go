package testutil

import (
	"testing"

	"github.com/changhyeonkim/memome/go-api-server/internal/model"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database for testing
// The pool is pinned to one connection: every new ":memory:" connection
// would otherwise open an empty database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent), // Silent mode for tests
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	// Auto-migrate all models
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		CleanupTestDB(t, db)
	})

	return db
}

// CleanupTestDB cleans up the test database
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("Failed to get database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		t.Errorf("Failed to close database: %v", err)
	}
}

// CreateTestMember persists a member with the given provider identity
func CreateTestMember(t *testing.T, db *gorm.DB, providerType model.ProviderType, providerID, nickname, email string) *model.Member {
	t.Helper()

	identity, err := model.NewOAuthIdentity(providerType, providerID)
	require.NoError(t, err)

	member, err := model.NewMember(identity, nickname, email)
	require.NoError(t, err)
	require.NoError(t, db.Create(member).Error)

	return member
}

// CreateTestMemo persists a memo written by author
func CreateTestMemo(t *testing.T, db *gorm.DB, author *model.Member, title, body string) *model.Memo {
	t.Helper()

	memo, err := model.NewMemo(title, body, author)
	require.NoError(t, err)
	require.NoError(t, db.Omit("Author").Create(memo).Error)

	return memo
}
