package cases

import (
	"fmt"

	"modlog-bot/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Init opens the case database and ensures one ledger table per case
// kind exists. All five tables share the same column shape; only
// Mute/PressBan records ever set duration_ms.
func Init(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	for _, kind := range model.AllKinds {
		createSQL := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS "%s" (
	          id INTEGER PRIMARY KEY AUTOINCREMENT,
	          user_id TEXT NOT NULL,
	          user_name TEXT NOT NULL,
	          moderator_id TEXT NOT NULL,
	          moderator_name TEXT NOT NULL,
	          reason TEXT NOT NULL,
	          token TEXT NOT NULL,
	          created_at INTEGER NOT NULL,
	          duration_ms INTEGER
	      );`, kind.Table())
		if _, err := db.Exec(createSQL); err != nil {
			return nil, fmt.Errorf("failed to create %s table: %w", kind.Table(), err)
		}

		indexSQL := fmt.Sprintf(`CREATE INDEX IF NOT EXISTS "idx_%s_user" ON "%s" (user_id, created_at);`,
			kind.Table(), kind.Table())
		if _, err := db.Exec(indexSQL); err != nil {
			return nil, fmt.Errorf("failed to create %s index: %w", kind.Table(), err)
		}
	}

	return db, nil
}
