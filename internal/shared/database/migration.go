package database

import (
	"fmt"
	"log/slog"

	"github.com/changhyeonkim/memome/go-api-server/internal/config"
	"github.com/changhyeonkim/memome/go-api-server/internal/model"

	"gorm.io/gorm"
)

// Models lists every table in dependency order (FK 참조 순서)
func Models() []interface{} {
	return []interface{}{
		// Independent tables (no foreign keys)
		&model.Member{},
		// memo.author_id -> member.id
		&model.Memo{},
	}
}

// Migrate runs the startup migration. It only creates or alters tables;
// dropping them is left to the explicit `migrate --recreate` command.
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		slog.Info("⏭️  데이터베이스 마이그레이션 비활성화됨",
			"auto_migrate", false, "env", cfg.App.Env,
		)
		return nil
	}

	slog.Info("📦 테이블 생성/변경 중...", "env", cfg.App.Env, "driver", cfg.Database.Driver)
	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("자동 마이그레이션 실패: %w", err)
	}
	return nil
}

// Recreate drops every table and creates them again from the model definitions
func Recreate(db *gorm.DB, cfg *config.Config) error {
	slog.Warn("🔧 데이터베이스 마이그레이션 시작 - 모든 테이블이 삭제되고 재생성됩니다!",
		"env", cfg.App.Env, "driver", cfg.Database.Driver,
	)

	// Safety check: prevent accidental data loss in production
	if cfg.App.Env == "prod" || cfg.App.Env == "production" {
		return fmt.Errorf("🚨 PRODUCTION 환경에서는 테이블 재생성을 사용할 수 없습니다! 데이터 손실 방지를 위해 차단됨")
	}

	// Step 1: Drop all tables
	slog.Info("🗑️  기존 테이블 삭제 중...")

	// Order matters: drop in reverse dependency order (FK constraints)
	models := Models()
	for i := len(models) - 1; i >= 0; i-- {
		m := models[i]
		if !db.Migrator().HasTable(m) {
			continue
		}
		if err := db.Migrator().DropTable(m); err != nil {
			slog.Debug("테이블 삭제 실패", "model", fmt.Sprintf("%T", m), "error", err)
		} else {
			slog.Debug("테이블 삭제 성공", "model", fmt.Sprintf("%T", m))
		}
	}

	// Step 2: Create tables with IDENTITY columns
	slog.Info("📦 새 테이블 생성 중...")
	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("테이블 생성 실패: %w", err)
	}

	slog.Info("✅ 마이그레이션 완료!")
	return nil
}

// AutoMigrate creates or alters tables based on model definitions
func AutoMigrate(db *gorm.DB) error {
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("%T 마이그레이션 실패: %w", m, err)
		}
		slog.Debug("테이블 생성됨", "model", fmt.Sprintf("%T", m))
	}

	return nil
}
