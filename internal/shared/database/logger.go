package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/changhyeonkim/memome/go-api-server/internal/config"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/logger"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// GormLogger routes GORM output through the request logger stored in the
// context, so SQL lines carry the same request_id as the access log.
type GormLogger struct {
	driver        string
	level         gormlogger.LogLevel
	slowThreshold time.Duration
	hideSQL       bool
}

func newLogger(cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Info
	if cfg.IsProduction() {
		level = gormlogger.Error
	}

	return &GormLogger{
		driver:        cfg.Database.Driver,
		level:         level,
		slowThreshold: slowQueryThreshold,
		hideSQL:       cfg.IsProduction(),
	}
}

func (l *GormLogger) from(ctx context.Context) *slog.Logger {
	return logger.FromContext(ctx).With("component", "gorm", "driver", l.driver)
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Info {
		l.from(ctx).InfoContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.from(ctx).WarnContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Error {
		l.from(ctx).ErrorContext(ctx, fmt.Sprintf(msg, data...))
	}
}

// Trace logs one executed statement. A missing row is a normal lookup result
// and a unique violation is the expected outcome of a first-login race, so
// neither is reported as an error.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	attrs := []any{"elapsed_ms", elapsed.Milliseconds(), "rows", rows}
	if !l.hideSQL {
		attrs = append(attrs, "sql", sql)
	}
	log := l.from(ctx)

	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		if l.level >= gormlogger.Info {
			log.DebugContext(ctx, "조회 결과 없음", attrs...)
		}
	case err != nil && IsDuplicateKey(err):
		if l.level >= gormlogger.Warn {
			log.WarnContext(ctx, "유니크 제약 조건 충돌", append(attrs, "error", err)...)
		}
	case err != nil:
		if l.level >= gormlogger.Error {
			log.ErrorContext(ctx, "쿼리 실행 실패", append(attrs, "error", err)...)
		}
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		if l.level >= gormlogger.Warn {
			log.WarnContext(ctx, "느린 쿼리 감지", append(attrs, "threshold_ms", l.slowThreshold.Milliseconds())...)
		}
	case l.level >= gormlogger.Info:
		log.DebugContext(ctx, "쿼리 실행", attrs...)
	}
}
