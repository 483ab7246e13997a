package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestSessionTableName(t *testing.T) {
	assert.Equal(t, "sessions", Session{}.TableName())
}

func TestSearchTableName(t *testing.T) {
	assert.Equal(t, "searches", Search{}.TableName())
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Session{}, &Search{}))
	return db
}

func TestSessionSearchRoundTrip(t *testing.T) {
	db := openTestDB(t)

	client, err := json.Marshal(map[string]string{"tool": "findfx", "version": "0.1.0"})
	require.NoError(t, err)

	session := Session{UUID: "11111111-2222-3333-4444-555555555555", Client: datatypes.JSON(client)}
	require.NoError(t, db.Create(&session).Error)
	assert.NotZero(t, session.ID)
	assert.False(t, session.StartedAt.IsZero())

	search := Search{
		SessionID:      session.ID,
		Pattern:        "needle",
		Algorithm:      "boyermoore",
		Target:         "docs/",
		Found:          true,
		Offset:         42,
		FilesScanned:   10,
		FilesMatched:   3,
		DurationMicros: 1500,
	}
	require.NoError(t, db.Create(&search).Error)

	var loaded Session
	require.NoError(t, db.Preload("Searches").First(&loaded, session.ID).Error)
	require.Len(t, loaded.Searches, 1)
	assert.Equal(t, "needle", loaded.Searches[0].Pattern)
	assert.Equal(t, 42, loaded.Searches[0].Offset)
	assert.True(t, loaded.Searches[0].Found)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(loaded.Client, &decoded))
	assert.Equal(t, "findfx", decoded["tool"])
}

func TestSearchNotFoundDefaults(t *testing.T) {
	db := openTestDB(t)

	session := Session{UUID: "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"}
	require.NoError(t, db.Create(&session).Error)

	search := Search{SessionID: session.ID, Pattern: "absent", Algorithm: "kmp", Offset: -1}
	require.NoError(t, db.Create(&search).Error)

	var loaded Search
	require.NoError(t, db.First(&loaded, search.ID).Error)
	assert.False(t, loaded.Found)
	assert.Equal(t, -1, loaded.Offset)
}

func TestSessionClose(t *testing.T) {
	db := openTestDB(t)

	session := Session{UUID: "99999999-8888-7777-6666-555555555555"}
	require.NoError(t, db.Create(&session).Error)

	now := time.Now()
	require.NoError(t, db.Model(&session).Update("ended_at", &now).Error)

	var loaded Session
	require.NoError(t, db.First(&loaded, session.ID).Error)
	require.NotNil(t, loaded.EndedAt)
}
