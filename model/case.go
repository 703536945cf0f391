package model

import "database/sql"

// CaseKind identifies one of the moderation case ledgers. Each kind has
// its own table; the table below is the single place a new kind is added.
type CaseKind int

const (
	KindBan CaseKind = iota
	KindKick
	KindMute
	KindPressBan
	KindWarning
)

type kindInfo struct {
	table       string
	label       string
	hasDuration bool
}

var kindTable = map[CaseKind]kindInfo{
	KindBan:      {table: "bans", label: "Ban", hasDuration: false},
	KindKick:     {table: "kicks", label: "Kick", hasDuration: false},
	KindMute:     {table: "mutes", label: "Mute", hasDuration: true},
	KindPressBan: {table: "press_bans", label: "Press Ban", hasDuration: true},
	KindWarning:  {table: "warnings", label: "Warning", hasDuration: false},
}

// AllKinds lists every case kind in display order.
var AllKinds = []CaseKind{KindBan, KindKick, KindMute, KindPressBan, KindWarning}

// Table returns the sqlite table name backing this kind's ledger.
func (k CaseKind) Table() string {
	return kindTable[k].table
}

// Label returns the human-facing name of the kind.
func (k CaseKind) Label() string {
	return kindTable[k].label
}

// HasDuration reports whether records of this kind carry a duration.
func (k CaseKind) HasDuration() bool {
	return kindTable[k].hasDuration
}

// KindFromTable resolves a kind from its table name, as carried in
// component custom IDs.
func KindFromTable(table string) (CaseKind, bool) {
	for k, info := range kindTable {
		if info.table == table {
			return k, true
		}
	}
	return 0, false
}

// KindFromChoice resolves a kind from the /remove command's type choice.
func KindFromChoice(choice string) (CaseKind, bool) {
	switch choice {
	case "Ban":
		return KindBan, true
	case "Kick":
		return KindKick, true
	case "Mute":
		return KindMute, true
	case "PressBan":
		return KindPressBan, true
	case "Warning":
		return KindWarning, true
	}
	return 0, false
}

// CaseRecord is one persisted moderation action. Records are immutable
// once written; the only write paths are insert and delete.
type CaseRecord struct {
	ID            int64         `db:"id"` // Primary Key, Auto-increment
	UserID        string        `db:"user_id"`
	UserName      string        `db:"user_name"`
	ModeratorID   string        `db:"moderator_id"`
	ModeratorName string        `db:"moderator_name"`
	Reason        string        `db:"reason"`
	Token         string        `db:"token"`
	CreatedAt     int64         `db:"created_at"`
	DurationMs    sql.NullInt64 `db:"duration_ms"` // only set for Mute/PressBan
}
