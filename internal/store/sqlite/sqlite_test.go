package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/trouvaille/lostfound/internal/store"
	"github.com/trouvaille/lostfound/internal/store/storetest"
)

// An in-memory database must stay visible on every pooled connection: a held
// transaction forces a second connection, which would see an empty private
// database if the pool were allowed to grow.
func TestInMemorySurvivesSecondConnection(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	defer func() { _ = db.Close() }()

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		t.Fatalf("query outside held tx: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected empty users table, got %d rows", n)
	}
}

func TestSQLiteStoreCompliance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		s, err := New(filepath.Join(t.TempDir(), "lostfound.db"))
		if err != nil {
			t.Fatalf("open sqlite store: %v", err)
		}
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}
