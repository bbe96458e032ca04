package comment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ClaraVasseur/InstaLite-Back/internal/database"
	"github.com/ClaraVasseur/InstaLite-Back/internal/post"
)

func setupTestDB(t *testing.T) uint {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&post.Post{}, &Comment{}))

	originalDB := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = originalDB })

	created, err := post.Create(1, "ref", "hi")
	assert.NoError(t, err)
	return created.ID
}

func TestAdd(t *testing.T) {
	postID := setupTestDB(t)

	cmt, err := Add(postID, 2, "nice")
	assert.NoError(t, err)
	assert.NotZero(t, cmt.ID)
	assert.Equal(t, postID, cmt.PostID)
	assert.Equal(t, uint(2), cmt.AccountID)
	assert.Equal(t, "nice", cmt.Body)

	count, err := CountForPost(postID)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestAddValidation(t *testing.T) {
	postID := setupTestDB(t)

	tests := []struct {
		name        string
		postID      uint
		body        string
		expectedErr error
	}{
		{name: "Blank body", postID: postID, body: "   ", expectedErr: ErrEmptyBody},
		{name: "Empty body", postID: postID, body: "", expectedErr: ErrEmptyBody},
		{name: "Missing post", postID: 999, body: "hello", expectedErr: ErrPostNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Add(tt.postID, 2, tt.body)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestAddTrimsBody(t *testing.T) {
	postID := setupTestDB(t)

	cmt, err := Add(postID, 2, "  bonjour  ")
	assert.NoError(t, err)
	assert.Equal(t, "bonjour", cmt.Body)
}

func TestForPostAscendingOrder(t *testing.T) {
	postID := setupTestDB(t)

	now := time.Now()
	// Insertion directe pour contrôler created_at
	rows := []Comment{
		{PostID: postID, AccountID: 2, Body: "deuxième", CreatedAt: now.Add(-time.Minute)},
		{PostID: postID, AccountID: 3, Body: "premier", CreatedAt: now.Add(-2 * time.Minute)},
		{PostID: postID, AccountID: 2, Body: "troisième", CreatedAt: now},
	}
	for i := range rows {
		assert.NoError(t, database.DB.Create(&rows[i]).Error)
	}

	comments, err := ForPost(postID)
	assert.NoError(t, err)
	assert.Len(t, comments, 3)
	assert.Equal(t, "premier", comments[0].Body)
	assert.Equal(t, "deuxième", comments[1].Body)
	assert.Equal(t, "troisième", comments[2].Body)
}

func TestCountForPostScoped(t *testing.T) {
	postID := setupTestDB(t)

	other, err := post.Create(2, "ref2", "")
	assert.NoError(t, err)

	_, err = Add(postID, 2, "a")
	assert.NoError(t, err)
	_, err = Add(other.ID, 2, "b")
	assert.NoError(t, err)

	count, err := CountForPost(postID)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
