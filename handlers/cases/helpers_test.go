package cases

import (
	"errors"
	"testing"

	"modlog-bot/model"
	casedb "modlog-bot/utils/database/cases"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBot satisfies model.Bot without a gateway connection.
type stubBot struct {
	db *sqlx.DB
}

var _ model.Bot = (*stubBot)(nil)

func (b *stubBot) GetConfig() *model.Config       { return &model.Config{} }
func (b *stubBot) GetSession() *discordgo.Session { return nil }
func (b *stubBot) GetDB() *sqlx.DB                { return b.db }
func (b *stubBot) Logger() zerolog.Logger         { return zerolog.Nop() }

func TestFailedAppealDMDoesNotBlockCaseFlow(t *testing.T) {
	db, err := casedb.Init(":memory:")
	require.NoError(t, err)
	defer db.Close()

	orig := sendDM
	t.Cleanup(func() { sendDM = orig })

	dmAttempts := 0
	sendDM = func(s *discordgo.Session, userID string, embed *discordgo.MessageEmbed) error {
		dmAttempts++
		return errors.New("cannot send messages to this user")
	}

	b := &stubBot{db: db}
	target := &discordgo.User{ID: "u1", Username: "subject"}
	moderator := &discordgo.User{ID: "mod-1", Username: "moderator"}

	writer := NewWriter(db, zerolog.Nop())
	token := writer.NewToken()

	// The DM fails; the call returns normally and the rest of the flow
	// still writes exactly one record carrying the same token.
	sendAppealDM(nil, b, target, buildAppealEmbed("You have been banned", "reason", target))
	assert.Equal(t, 1, dmAttempts)

	persistCase(b, writer, model.KindBan, target, moderator, "spamming", token, nil)

	count, err := casedb.CountCaseRecords(db, model.KindBan, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	stored, err := casedb.GetCaseRecordsPage(db, model.KindBan, "u1", 1, 5)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, token, stored[0].Token)
}
