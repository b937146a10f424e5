package database

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/applytrack/applytrack/internal/config"
	"github.com/applytrack/applytrack/internal/models"
)

// ErrMisconfigured is returned when the record-store endpoint or the
// session key is absent from the environment. Handlers turn it into an
// operator-actionable 500 instead of an opaque failure.
var ErrMisconfigured = errors.New("backend not configured: " +
	config.EnvDatabaseURL + " and " + config.EnvSessionKey + " must be set")

// DB is the lazily-constructed shared handle to the record store. The
// connection is opened on first use so a misconfigured process still
// starts and reports the problem per request. Safe for concurrent use.
type DB struct {
	cfg *config.Config

	mu   sync.Mutex
	conn *gorm.DB
}

func New(cfg *config.Config) *DB {
	return &DB{cfg: cfg}
}

// NewFromConn wraps an already-open connection. Used by tests.
func NewFromConn(conn *gorm.DB) *DB {
	return &DB{cfg: &config.Config{DatabaseURL: "-", SessionKey: "-"}, conn: conn}
}

// ConfigError reports the misconfiguration without touching the network.
func (d *DB) ConfigError() error {
	if err := d.cfg.Validate(); err != nil {
		return fmt.Errorf("%w (%v)", ErrMisconfigured, err)
	}
	return nil
}

// Handle returns the shared connection, opening and migrating it on first
// use. A failed attempt is not cached; the next request retries.
func (d *DB) Handle() (*gorm.DB, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.conn != nil {
		return d.conn, nil
	}
	if err := d.ConfigError(); err != nil {
		return nil, err
	}

	conn, err := gorm.Open(postgres.Open(d.cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	log.Println("Database connection established")
	if err := Migrate(conn); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	d.conn = conn
	return d.conn, nil
}

// Migrate creates the backing tables.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(&models.User{}, &models.JobApplication{})
}

// IsTableMissing reports whether err indicates the backing table was
// never provisioned, which callers surface with migration guidance
// instead of a generic failure.
func IsTableMissing(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "does not exist") ||
		strings.Contains(msg, "no such table") ||
		strings.Contains(msg, "SQLSTATE 42P01")
}
