package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Provider owns the shared database handle for one process. It opens the
// resolved target once, runs the schema initializer, and degrades to the
// transient in-memory store instead of failing when the file-backed open is
// not possible. Query errors after a successful open are surfaced to the
// caller, never silently retried: losing a write silently is worse than
// reporting the failure.
type Provider struct {
	mu        sync.Mutex
	target    Target
	models    []any
	readOnly  bool
	transient bool
	db        *gorm.DB
}

// NewProvider opens a read-write provider for the target and ensures the
// schema exists. models is the full entity list handed to the schema
// initializer; initialization is create-if-absent and safe to re-run.
func NewProvider(target Target, models ...any) *Provider {
	p := &Provider{target: target, models: models}
	p.open()
	return p
}

// NewReadOnlyProvider opens the same target in read-only mode for the
// gateway process. The schema initializer is skipped for file-backed
// targets since the connection cannot write; an unopenable target degrades
// to an empty transient store so the gateway still serves its GET surface.
func NewReadOnlyProvider(target Target, models ...any) *Provider {
	p := &Provider{target: target, models: models, readOnly: true}
	p.open()
	return p
}

func (p *Provider) open() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.target.Transient() {
		p.openTransientLocked()
		return
	}

	dsn := p.target.DSN()
	if p.readOnly {
		dsn = p.target.ReadOnlyDSN()
	}

	db, err := p.openDSN(dsn, !p.readOnly)
	if err != nil {
		logrus.WithError(err).WithField("path", p.target.Path).
			Error("Failed to open file-backed store, degrading to in-memory")
		p.openTransientLocked()
		return
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}
	p.db = db
	p.transient = false
}

// openTransientLocked swaps in the in-memory store. The pool is pinned to a
// single never-expiring connection: every sqlite :memory: connection is its
// own database, so a second connection would see empty tables.
func (p *Provider) openTransientLocked() {
	db, err := p.openDSN(Target{}.DSN(), true)
	if err != nil {
		// Opening :memory: needs no filesystem at all, so this only
		// happens if the driver itself is broken.
		logrus.WithError(err).Error("Failed to open in-memory store")
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	}
	p.db = db
	p.transient = true
}

func (p *Provider) openDSN(dsn string, migrate bool) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", dsn, err)
	}

	if migrate {
		if err := db.AutoMigrate(p.models...); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	return db, nil
}

// DB returns the shared handle scoped to the request context, so the
// handler deadline bounds every query dispatched through it.
func (p *Provider) DB(ctx context.Context) (*gorm.DB, error) {
	p.mu.Lock()
	db := p.db
	p.mu.Unlock()
	if db == nil {
		return nil, fmt.Errorf("storage unavailable")
	}
	return db.WithContext(ctx), nil
}

// Transient reports whether the provider is serving from the in-memory
// store, either by resolution or by degradation.
func (p *Provider) Transient() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.transient
}

// Ping verifies the handle still answers. A failing file-backed handle is
// degraded to the transient store so the process keeps serving; the health
// endpoint reports the degradation.
func (p *Provider) Ping(ctx context.Context) error {
	p.mu.Lock()
	db := p.db
	p.mu.Unlock()
	if db == nil {
		return fmt.Errorf("storage unavailable")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		p.mu.Lock()
		if !p.transient && !p.readOnly {
			logrus.WithError(err).Warn("File-backed store stopped responding, degrading to in-memory")
			p.openTransientLocked()
		}
		p.mu.Unlock()
		return err
	}
	return nil
}

func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.db == nil {
		return nil
	}
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// IsConstraintViolation reports whether err is a relational-integrity
// failure raised at the storage boundary, e.g. a task pointing at a goal
// that does not exist.
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "constraint failed")
}
