package cases

import (
	"errors"
	"fmt"

	"modlog-bot/model"
	casedb "modlog-bot/utils/database/cases"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned when no record matches (user, token) in the
// requested kind's ledger. No platform action is attempted in that case.
var ErrNotFound = errors.New("no matching case record")

// PlatformError reports that the ledger entry was deleted but the live
// platform reversal failed. The ledger and the guild state disagree
// until a moderator intervenes; the record is not re-inserted.
type PlatformError struct {
	Kind model.CaseKind
	Err  error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("%s record removed but live reversal failed: %v", e.Kind.Label(), e.Err)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

// Reverser deletes ledger entries and undoes their live platform
// effect. Kick and Warning leave no live effect, so for those reversal
// is deletion alone.
type Reverser struct {
	db       *sqlx.DB
	platform Platform
	log      zerolog.Logger
}

// NewReverser returns a Reverser over the given ledger and platform.
func NewReverser(db *sqlx.DB, platform Platform, log zerolog.Logger) *Reverser {
	return &Reverser{
		db:       db,
		platform: platform,
		log:      log.With().Str("component", "reverser").Logger(),
	}
}

// liveReversals maps each kind with a persistent platform effect to the
// call that clears it. Adding a kind with a live effect is one entry
// here plus its row in the model kind table.
var liveReversals = map[model.CaseKind]func(r *Reverser, guildID, userID, pressBanRoleID string) error{
	model.KindBan: func(r *Reverser, guildID, userID, _ string) error {
		return r.platform.Unban(guildID, userID)
	},
	model.KindMute: func(r *Reverser, guildID, userID, _ string) error {
		return r.platform.ClearTimeout(guildID, userID)
	},
	model.KindPressBan: func(r *Reverser, guildID, userID, pressBanRoleID string) error {
		return r.platform.RemoveRole(guildID, userID, pressBanRoleID)
	},
}

// Reverse deletes the record matching (user, token) in the kind's
// ledger, then clears the kind's live effect if it has one. The delete
// must succeed first: an unknown token returns ErrNotFound and touches
// nothing. A live-reversal failure after a successful delete returns a
// PlatformError so the caller can report exactly which half succeeded.
func (r *Reverser) Reverse(guildID string, kind model.CaseKind, userID, token, pressBanRoleID string) error {
	deleted, err := casedb.DeleteCaseRecord(r.db, kind, userID, token)
	if err != nil {
		return fmt.Errorf("failed to delete %s record: %w", kind.Label(), err)
	}
	if deleted == 0 {
		return ErrNotFound
	}

	r.log.Info().
		Str("kind", kind.Label()).
		Str("user_id", userID).
		Str("token", token).
		Msg("case record deleted")

	reverse, ok := liveReversals[kind]
	if !ok {
		return nil
	}
	if err := reverse(r, guildID, userID, pressBanRoleID); err != nil {
		r.log.Error().
			Err(err).
			Str("kind", kind.Label()).
			Str("user_id", userID).
			Msg("live reversal failed after ledger delete")
		return &PlatformError{Kind: kind, Err: err}
	}
	return nil
}
