package modlog

import (
	"fmt"
	"testing"
	"time"

	"modlog-bot/model"
	casedb "modlog-bot/utils/database/cases"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() *Session {
	return NewSession("msg-1", "chan-1", "owner-1", "target-1", "target")
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 1}, // empty history still renders a "no records" page
		{1, 1},
		{5, 1},
		{6, 2},
		{7, 2},
		{10, 2},
		{11, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.count), "count=%d", tt.count)
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 3))
	assert.Equal(t, 1, ClampPage(1, 3))
	assert.Equal(t, 2, ClampPage(2, 3))
	assert.Equal(t, 3, ClampPage(4, 3))
}

func TestSessionKindSelection(t *testing.T) {
	sess := newTestSession()

	state, _, _ := sess.Current()
	assert.Equal(t, StateIdle, state)

	require.True(t, sess.SelectKind(model.KindWarning))
	state, kind, page := sess.Current()
	assert.Equal(t, StateViewing, state)
	assert.Equal(t, model.KindWarning, kind)
	assert.Equal(t, 1, page)
}

func TestSessionPageBoundaries(t *testing.T) {
	sess := newTestSession()
	require.True(t, sess.SelectKind(model.KindBan))

	// "previous" at page 1 is a no-op re-render.
	page, ok := sess.GoToPage(0, 2)
	require.True(t, ok)
	assert.Equal(t, 1, page)

	page, ok = sess.GoToPage(2, 2)
	require.True(t, ok)
	assert.Equal(t, 2, page)

	// "next" at the last page stays on the last page.
	page, ok = sess.GoToPage(3, 2)
	require.True(t, ok)
	assert.Equal(t, 2, page)
}

func TestSessionRejectsInputAfterEnd(t *testing.T) {
	sess := newTestSession()
	require.True(t, sess.SelectKind(model.KindBan))
	sess.End()

	assert.False(t, sess.SelectKind(model.KindKick))
	_, ok := sess.GoToPage(2, 3)
	assert.False(t, ok)
}

func TestSessionOwnership(t *testing.T) {
	sess := newTestSession()
	assert.True(t, sess.Owns("owner-1"))
	assert.False(t, sess.Owns("intruder"))
}

func TestManagerSweepExpired(t *testing.T) {
	m := NewManager(zerolog.Nop())
	sess := newTestSession()
	m.Put(sess)

	// Before the deadline nothing expires.
	assert.Empty(t, m.SweepExpired(time.Now()))
	_, ok := m.Get("msg-1")
	assert.True(t, ok)

	expired := m.SweepExpired(time.Now().Add(SessionTTL + time.Second))
	require.Len(t, expired, 1)
	assert.Equal(t, "msg-1", expired[0].MessageID)

	state, _, _ := expired[0].Current()
	assert.Equal(t, StateEnded, state)

	_, ok = m.Get("msg-1")
	assert.False(t, ok)
}

func TestSessionInteractionExtendsDeadline(t *testing.T) {
	m := NewManager(zerolog.Nop())
	sess := newTestSession()
	m.Put(sess)

	require.True(t, sess.SelectKind(model.KindMute))

	// A fresh interaction pushes the deadline past the original TTL.
	assert.Empty(t, m.SweepExpired(time.Now().Add(SessionTTL-time.Second)))
	_, ok := m.Get("msg-1")
	assert.True(t, ok)
}

// paginationRow pulls the prev/next buttons out of a component row.
func paginationRow(t *testing.T, components []discordgo.MessageComponent) (discordgo.Button, discordgo.Button) {
	require.Len(t, components, 1)
	row, ok := components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 2)

	prev, ok := row.Components[0].(discordgo.Button)
	require.True(t, ok)
	next, ok := row.Components[1].(discordgo.Button)
	require.True(t, ok)
	return prev, next
}

func TestSevenWarningsPageThrough(t *testing.T) {
	db, err := casedb.Init(":memory:")
	require.NoError(t, err)
	defer db.Close()

	for n := 0; n < 7; n++ {
		record := model.CaseRecord{
			UserID:        "target-1",
			UserName:      "target",
			ModeratorID:   "mod-1",
			ModeratorName: "moderator",
			Reason:        "warning",
			Token:         fmt.Sprintf("WARNTOKEN%07d", n),
			CreatedAt:     int64(100 + n),
		}
		_, err := casedb.AddCaseRecord(db, model.KindWarning, record)
		require.NoError(t, err)
	}

	count, err := casedb.CountCaseRecords(db, model.KindWarning, "target-1")
	require.NoError(t, err)
	totalPages := TotalPages(count)
	assert.Equal(t, 2, totalPages)

	sess := newTestSession()
	require.True(t, sess.SelectKind(model.KindWarning))

	// Page 1: the 5 most recent records; next enabled, previous disabled.
	page1, err := casedb.GetCaseRecordsPage(db, model.KindWarning, "target-1", 1, PageSize)
	require.NoError(t, err)
	require.Len(t, page1, 5)
	assert.EqualValues(t, 106, page1[0].CreatedAt)

	prev, next := paginationRow(t, buildPageComponents(model.KindWarning, 1, totalPages))
	assert.True(t, prev.Disabled)
	assert.False(t, next.Disabled)

	// Click "next": page 2 with the remaining 2 records; next disabled.
	page, ok := sess.GoToPage(2, totalPages)
	require.True(t, ok)
	assert.Equal(t, 2, page)

	page2, err := casedb.GetCaseRecordsPage(db, model.KindWarning, "target-1", 2, PageSize)
	require.NoError(t, err)
	require.Len(t, page2, 2)

	prev, next = paginationRow(t, buildPageComponents(model.KindWarning, 2, totalPages))
	assert.False(t, prev.Disabled)
	assert.True(t, next.Disabled)
}

// stubBot satisfies model.Bot without a gateway connection.
type stubBot struct {
	db *sqlx.DB
}

var _ model.Bot = (*stubBot)(nil)

func (b *stubBot) GetConfig() *model.Config       { return &model.Config{} }
func (b *stubBot) GetSession() *discordgo.Session { return nil }
func (b *stubBot) GetDB() *sqlx.DB                { return b.db }
func (b *stubBot) Logger() zerolog.Logger         { return zerolog.Nop() }

func TestCountPages(t *testing.T) {
	db, err := casedb.Init(":memory:")
	require.NoError(t, err)
	defer db.Close()

	for n := 0; n < 6; n++ {
		record := model.CaseRecord{
			UserID:        "target-1",
			UserName:      "target",
			ModeratorID:   "mod-1",
			ModeratorName: "moderator",
			Reason:        "warning",
			Token:         fmt.Sprintf("WARNTOKEN%07d", n),
			CreatedAt:     int64(100 + n),
		}
		_, err := casedb.AddCaseRecord(db, model.KindWarning, record)
		require.NoError(t, err)
	}

	b := &stubBot{db: db}
	sess := newTestSession()

	totalPages, ok := countPages(nil, nil, b, sess, model.KindWarning)
	require.True(t, ok)
	assert.Equal(t, 2, totalPages)

	totalPages, ok = countPages(nil, nil, b, sess, model.KindBan)
	require.True(t, ok)
	assert.Equal(t, 1, totalPages)
}

func TestEmptyHistoryRendersNoRecordsView(t *testing.T) {
	sess := newTestSession()
	embed := buildLogEmbed(sess, model.KindBan, nil, 1, 1)
	assert.Contains(t, embed.Description, "No Ban logs found")
	assert.Empty(t, embed.Fields)
}

func TestLogEmbedDurationField(t *testing.T) {
	sess := newTestSession()
	records := []model.CaseRecord{
		{
			UserID:        "target-1",
			ModeratorName: "moderator",
			Reason:        "noise",
			Token:         "MUTETOKEN0000001",
			CreatedAt:     100,
		},
	}

	embed := buildLogEmbed(sess, model.KindMute, records, 1, 1)
	require.Len(t, embed.Fields, 1)
	assert.Contains(t, embed.Fields[0].Value, "**Duration:** N/A")

	embed = buildLogEmbed(sess, model.KindWarning, records, 1, 1)
	require.Len(t, embed.Fields, 1)
	assert.NotContains(t, embed.Fields[0].Value, "Duration")
}
