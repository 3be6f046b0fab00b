package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"handball-tracker/internal/database"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

func testRepo(t *testing.T) *RoundRepository {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db, zerolog.Nop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return NewRoundRepository(db, zerolog.Nop())
}

func TestRoundRepository_GetMiss(t *testing.T) {
	repo := testRepo(t)

	_, _, err := repo.Get(context.Background(), "liga1", "20250901")
	if !errors.Is(err, ErrRoundNotFound) {
		t.Errorf("Get(miss) error = %v, want ErrRoundNotFound", err)
	}
}

func TestRoundRepository_PutThenGet(t *testing.T) {
	repo := testRepo(t)
	payload := []byte(`{"games":[]}`)

	if err := repo.Put(context.Background(), "liga1", "20250901", "stamp-1", payload); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, stamp, err := repo.Get(context.Background(), "liga1", "20250901")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("payload = %s, want %s", got, payload)
	}
	if stamp != "stamp-1" {
		t.Errorf("stamp = %q, want %q", stamp, "stamp-1")
	}
}

func TestRoundRepository_PutOverwrites(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	if err := repo.Put(ctx, "liga1", "20250901", "stamp-1", []byte("v1")); err != nil {
		t.Fatalf("first Put() error = %v", err)
	}
	if err := repo.Put(ctx, "liga1", "20250901", "stamp-2", []byte("v2")); err != nil {
		t.Fatalf("second Put() error = %v", err)
	}

	got, stamp, err := repo.Get(ctx, "liga1", "20250901")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != "v2" || stamp != "stamp-2" {
		t.Errorf("got %s/%s, want v2/stamp-2", got, stamp)
	}
}

func TestRoundRepository_DeleteLeague(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	if err := repo.Put(ctx, "liga1", "20250901", "s", []byte("x")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := repo.Put(ctx, "liga2", "20250901", "s", []byte("y")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	if err := repo.DeleteLeague(ctx, "liga1"); err != nil {
		t.Fatalf("DeleteLeague() error = %v", err)
	}

	if _, _, err := repo.Get(ctx, "liga1", "20250901"); !errors.Is(err, ErrRoundNotFound) {
		t.Errorf("liga1 still present after DeleteLeague")
	}
	if _, _, err := repo.Get(ctx, "liga2", "20250901"); err != nil {
		t.Errorf("liga2 removed by DeleteLeague of liga1: %v", err)
	}
}
