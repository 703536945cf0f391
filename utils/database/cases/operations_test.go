package cases

import (
	"database/sql"
	"testing"

	"modlog-bot/model"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	db, err := Init(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func testRecord(userID, token string, createdAt int64) model.CaseRecord {
	return model.CaseRecord{
		UserID:        userID,
		UserName:      "subject",
		ModeratorID:   "mod-1",
		ModeratorName: "moderator",
		Reason:        "test reason",
		Token:         token,
		CreatedAt:     createdAt,
	}
}

func TestAddAndCountCaseRecords(t *testing.T) {
	db := setupTestDB(t)

	id, err := AddCaseRecord(db, model.KindBan, testRecord("u1", "TOKEN0000000000A", 100))
	require.NoError(t, err)
	assert.Positive(t, id)

	count, err := CountCaseRecords(db, model.KindBan, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Other kinds and other users are untouched.
	count, err = CountCaseRecords(db, model.KindKick, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	count, err = CountCaseRecords(db, model.KindBan, "u2")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestGetCaseRecordsPageOrderAndWindow(t *testing.T) {
	db := setupTestDB(t)

	tokens := []string{"AAAA", "BBBB", "CCCC", "DDDD", "EEEE", "FFFF", "GGGG"}
	for n, token := range tokens {
		_, err := AddCaseRecord(db, model.KindWarning, testRecord("u1", token, int64(100+n)))
		require.NoError(t, err)
	}

	page1, err := GetCaseRecordsPage(db, model.KindWarning, "u1", 1, 5)
	require.NoError(t, err)
	require.Len(t, page1, 5)
	// Newest first: GGGG was inserted last with the highest timestamp.
	assert.Equal(t, "GGGG", page1[0].Token)
	assert.Equal(t, "CCCC", page1[4].Token)

	page2, err := GetCaseRecordsPage(db, model.KindWarning, "u1", 2, 5)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.Equal(t, "BBBB", page2[0].Token)
	assert.Equal(t, "AAAA", page2[1].Token)

	page3, err := GetCaseRecordsPage(db, model.KindWarning, "u1", 3, 5)
	require.NoError(t, err)
	assert.Empty(t, page3)
}

func TestDurationRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	withDuration := testRecord("u1", "MUTE000000000001", 100)
	withDuration.DurationMs = sql.NullInt64{Int64: 90000, Valid: true}
	_, err := AddCaseRecord(db, model.KindMute, withDuration)
	require.NoError(t, err)

	_, err = AddCaseRecord(db, model.KindMute, testRecord("u1", "MUTE000000000002", 200))
	require.NoError(t, err)

	records, err := GetCaseRecordsPage(db, model.KindMute, "u1", 1, 5)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first: the duration-less record leads.
	assert.False(t, records[0].DurationMs.Valid)
	assert.True(t, records[1].DurationMs.Valid)
	assert.EqualValues(t, 90000, records[1].DurationMs.Int64)
}

func TestDeleteCaseRecord(t *testing.T) {
	db := setupTestDB(t)

	_, err := AddCaseRecord(db, model.KindBan, testRecord("u1", "DELETEME00000001", 100))
	require.NoError(t, err)
	_, err = AddCaseRecord(db, model.KindBan, testRecord("u1", "KEEPME0000000001", 200))
	require.NoError(t, err)

	deleted, err := DeleteCaseRecord(db, model.KindBan, "u1", "DELETEME00000001")
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	count, err := CountCaseRecords(db, model.KindBan, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	t.Run("unknown token deletes nothing", func(t *testing.T) {
		deleted, err := DeleteCaseRecord(db, model.KindBan, "u1", "NOSUCHTOKEN00001")
		require.NoError(t, err)
		assert.EqualValues(t, 0, deleted)
	})

	t.Run("token scoped to user", func(t *testing.T) {
		deleted, err := DeleteCaseRecord(db, model.KindBan, "u2", "KEEPME0000000001")
		require.NoError(t, err)
		assert.EqualValues(t, 0, deleted)
	})
}
