package database

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Divyanshusamdani/Expense-Tracker/internal/logger"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/models"
)

func init() {
	logger.Init("test")
}

func TestNewConfig(t *testing.T) {
	t.Run("defaults to sqlite", func(t *testing.T) {
		t.Setenv("DB_DRIVER", DriverSQLite)
		t.Setenv("SQLITE_PATH", "ledger.db")

		cfg, err := NewConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(cfg.DSN(), "ledger.db?") {
			t.Errorf("unexpected sqlite DSN %q", cfg.DSN())
		}
		if cfg.MigrationURL() != "sqlite://ledger.db" {
			t.Errorf("unexpected migration URL %q", cfg.MigrationURL())
		}
	})

	t.Run("postgres", func(t *testing.T) {
		t.Setenv("DB_DRIVER", DriverPostgres)
		t.Setenv("DB_HOST", "db")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_USER", "me")
		t.Setenv("DB_PASSWORD", "p@ss")
		t.Setenv("DB_NAME", "ledger")
		t.Setenv("DB_SSLMODE", "require")

		cfg, err := NewConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "host=db port=5433 user=me password=p@ss dbname=ledger sslmode=require"
		if cfg.DSN() != want {
			t.Errorf("expected DSN %q, got %q", want, cfg.DSN())
		}
		if cfg.MigrationURL() != "postgres://me:p%40ss@db:5433/ledger?sslmode=require" {
			t.Errorf("unexpected migration URL %q", cfg.MigrationURL())
		}
	})

	t.Run("sqlite URI with query", func(t *testing.T) {
		cfg := &Config{Driver: DriverSQLite, SQLitePath: "file:mem1?mode=memory&cache=shared"}
		if !strings.HasPrefix(cfg.DSN(), "file:mem1?mode=memory&cache=shared&_pragma=") {
			t.Errorf("unexpected sqlite DSN %q", cfg.DSN())
		}
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "oracle")
		if _, err := NewConfig(); err == nil {
			t.Fatal("expected error for unknown driver")
		}
	})
}

func TestRunMigrations(t *testing.T) {
	cfg := &Config{Driver: DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "tracker.db")}

	mgr, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}
	defer func() { _ = mgr.Close() }()

	if err := mgr.RunMigrations(); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}
	// A second run has nothing to apply.
	if err := mgr.RunMigrations(); err != nil {
		t.Fatalf("second migration run failed: %v", err)
	}

	db := mgr.DB()
	user := &models.User{Username: "user1", Email: "user1@email.com", PasswordHash: "hash"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to insert user: %v", err)
	}

	expense := &models.Expense{
		Entry: models.Entry{
			UserID: user.ID,
			Amount: decimal.RequireFromString("12.34"),
			Note:   "Lunch",
			Date:   "2024-01-05",
		},
		Category: "Food",
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to insert expense: %v", err)
	}

	var stored models.Expense
	if err := db.First(&stored, expense.ID).Error; err != nil {
		t.Fatalf("failed to read expense: %v", err)
	}
	if !stored.Amount.Equal(decimal.RequireFromString("12.34")) {
		t.Errorf("expected amount 12.34, got %s", stored.Amount)
	}
	if stored.Category != "Food" || stored.Date != "2024-01-05" {
		t.Errorf("unexpected stored expense: %+v", stored)
	}

	duplicate := &models.User{Username: "user1", Email: "other@email.com", PasswordHash: "hash"}
	err = db.Create(duplicate).Error
	if !IsUniqueViolation(err) {
		t.Errorf("expected unique constraint violation on username, got %v", err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if IsUniqueViolation(nil) {
		t.Error("nil is not a violation")
	}
	if !IsUniqueViolation(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)) {
		t.Error("wrapped gorm.ErrDuplicatedKey should be a violation")
	}
	if IsUniqueViolation(errors.New("disk I/O error")) {
		t.Error("unrelated error should not be a violation")
	}
}
