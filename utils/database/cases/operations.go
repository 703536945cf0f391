package cases

import (
	"fmt"

	"modlog-bot/model"

	"github.com/jmoiron/sqlx"
)

// AddCaseRecord inserts a new case record into the kind's ledger and
// returns the new row's ID.
func AddCaseRecord(db *sqlx.DB, kind model.CaseKind, record model.CaseRecord) (int64, error) {
	query := fmt.Sprintf(`INSERT INTO "%s" (user_id, user_name, moderator_id, moderator_name, reason, token, created_at, duration_ms)
			  VALUES (:user_id, :user_name, :moderator_id, :moderator_name, :reason, :token, :created_at, :duration_ms)`, kind.Table())

	result, err := db.NamedExec(query, record)
	if err != nil {
		return 0, fmt.Errorf("failed to insert %s record: %w", kind.Label(), err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}

	return id, nil
}

// GetCaseRecordsPage retrieves one page of a user's records for a kind,
// newest first. Pages are 1-based and perPage wide.
func GetCaseRecordsPage(db *sqlx.DB, kind model.CaseKind, userID string, page, perPage int) ([]model.CaseRecord, error) {
	var records []model.CaseRecord
	query := fmt.Sprintf(`SELECT * FROM "%s" WHERE user_id = ? ORDER BY created_at DESC LIMIT ? OFFSET ?`, kind.Table())

	err := db.Select(&records, query, userID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s records for user %s: %w", kind.Label(), userID, err)
	}
	return records, nil
}

// CountCaseRecords returns the number of records a user has for a kind.
func CountCaseRecords(db *sqlx.DB, kind model.CaseKind, userID string) (int, error) {
	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM "%s" WHERE user_id = ?`, kind.Table())

	err := db.Get(&count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s records for user %s: %w", kind.Label(), userID, err)
	}
	return count, nil
}

// DeleteCaseRecord deletes the record matching (user, token) in the
// kind's ledger and returns the number of rows removed. The compound
// filter mirrors the reversal contract: a token alone is not enough.
func DeleteCaseRecord(db *sqlx.DB, kind model.CaseKind, userID, token string) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM "%s" WHERE user_id = ? AND token = ?`, kind.Table())

	result, err := db.Exec(query, userID, token)
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s record for user %s: %w", kind.Label(), userID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected for %s record: %w", kind.Label(), err)
	}
	return rowsAffected, nil
}
