package cases

import (
	"database/sql"
	"fmt"
	"time"

	"modlog-bot/model"
	"modlog-bot/utils"
	casedb "modlog-bot/utils/database/cases"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// Writer builds and persists case records. The enforcement action has
// already happened by the time Record runs; a failed write is the
// caller's to log, never to roll back.
type Writer struct {
	db  *sqlx.DB
	log zerolog.Logger
}

// NewWriter returns a Writer backed by the given case database.
func NewWriter(db *sqlx.DB, log zerolog.Logger) *Writer {
	return &Writer{db: db, log: log.With().Str("component", "case_writer").Logger()}
}

// NewToken issues a fresh case token. The command handler calls this
// before taking any platform action so the same token appears in the
// audit post and the stored record.
func (w *Writer) NewToken() string {
	return utils.GenerateToken(utils.TokenLength)
}

// Record persists one case record with the given token and the current
// timestamp, and returns the stored record. durationMs is nil for kinds
// without a duration.
func (w *Writer) Record(kind model.CaseKind, subjectID, subjectName, moderatorID, moderatorName, reason, token string, durationMs *int64) (*model.CaseRecord, error) {
	record := model.CaseRecord{
		UserID:        subjectID,
		UserName:      subjectName,
		ModeratorID:   moderatorID,
		ModeratorName: moderatorName,
		Reason:        reason,
		Token:         token,
		CreatedAt:     time.Now().Unix(),
	}
	if durationMs != nil {
		record.DurationMs = sql.NullInt64{Int64: *durationMs, Valid: true}
	}

	id, err := casedb.AddCaseRecord(w.db, kind, record)
	if err != nil {
		return nil, fmt.Errorf("failed to save %s record for user %s: %w", kind.Label(), subjectID, err)
	}
	record.ID = id

	w.log.Info().
		Str("kind", kind.Label()).
		Str("user_id", subjectID).
		Str("token", record.Token).
		Msg("case record saved")

	return &record, nil
}
