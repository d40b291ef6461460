package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"versenotes/internal/model"
	"versenotes/internal/platform/database"
	"versenotes/internal/platform/database/dbtest"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)
	return db, mock
}

func seedUser(t *testing.T, repo *UserRepository, email string) *model.User {
	t.Helper()
	u := &model.User{Email: email, Password: "hash"}
	require.NoError(t, repo.Create(context.Background(), u))
	require.NotZero(t, u.ID)
	return u
}

func TestUserRepository_CreateAndGetByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(dbtest.Open(t))

	created := seedUser(t, repo, "a@x.com")

	got, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "hash", got.Password)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	repo := NewUserRepository(dbtest.Open(t))

	got, err := repo.GetByEmail(context.Background(), "ghost@x.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	repo := NewUserRepository(dbtest.Open(t))
	seedUser(t, repo, "dup@x.com")

	err := repo.Create(context.Background(), &model.User{Email: "dup@x.com", Password: "other"})
	require.Error(t, err)
	assert.True(t, database.IsUniqueViolation(err), "got %v", err)
	assert.Contains(t, err.Error(), "create user failed")
}

func TestUserRepository_GetByEmail_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnError(errors.New("db down"))

	_, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query user by email failed")
	assert.Contains(t, err.Error(), "db down")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_ListWithAuthor_NewestFirst(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)

	alice := seedUser(t, users, "alice@x.com")
	bob := seedUser(t, users, "bob@x.com")

	old := &model.Post{UserID: alice.ID, Content: "older", CreatedAt: time.Now().Add(-time.Hour)}
	require.NoError(t, posts.Create(ctx, old))
	fresh := &model.Post{UserID: bob.ID, Content: "newer"}
	require.NoError(t, posts.Create(ctx, fresh))
	require.NotZero(t, fresh.ID)
	assert.False(t, fresh.CreatedAt.IsZero())

	list, err := posts.ListWithAuthor(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, fresh.ID, list[0].ID)
	assert.Equal(t, "newer", list[0].Content)
	assert.Equal(t, "bob@x.com", list[0].Email)
	assert.Equal(t, "older", list[1].Content)
	assert.Equal(t, "alice@x.com", list[1].Email)
}

func TestPostRepository_ListWithAuthor_EmptyIsNotNil(t *testing.T) {
	list, err := NewPostRepository(dbtest.Open(t)).ListWithAuthor(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestPostRepository_Create_UnknownUser(t *testing.T) {
	err := NewPostRepository(dbtest.Open(t)).Create(context.Background(), &model.Post{UserID: 42, Content: "x"})
	require.Error(t, err)
	assert.True(t, database.IsForeignKeyViolation(err), "got %v", err)
}

func TestPostRepository_ListWithAuthor_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`FROM "posts" JOIN users`).WillReturnError(errors.New("conn reset"))

	_, err := NewPostRepository(db).ListWithAuthor(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list posts failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHighlightRepository_ScopedByUser(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	users := NewUserRepository(db)
	highlights := NewHighlightRepository(db)

	u1 := seedUser(t, users, "one@x.com")
	u2 := seedUser(t, users, "two@x.com")

	first := &model.Highlight{UserID: u1.ID, VerseRef: "Gen 1:1", Word: "beginning", Note: "a", CreatedAt: time.Now().Add(-time.Minute)}
	second := &model.Highlight{UserID: u1.ID, VerseRef: "Gen 1:3", Word: "light", Note: "b"}
	other := &model.Highlight{UserID: u2.ID, VerseRef: "Ps 23:1", Word: "shepherd", Note: "c"}
	for _, h := range []*model.Highlight{first, second, other} {
		require.NoError(t, highlights.Create(ctx, h))
		require.NotZero(t, h.ID)
	}

	list, err := highlights.ListByUserID(ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, "light", list[0].Word)
	assert.Equal(t, u1.ID, list[0].UserID)

	none, err := highlights.ListByUserID(ctx, 12345)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestHighlightRepository_DeleteByID(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	u := seedUser(t, NewUserRepository(db), "del@x.com")
	highlights := NewHighlightRepository(db)

	h := &model.Highlight{UserID: u.ID, VerseRef: "Rom 8:28", Word: "good", Note: "n"}
	require.NoError(t, highlights.Create(ctx, h))

	n, err := highlights.DeleteByID(ctx, h.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = highlights.DeleteByID(ctx, h.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	list, err := highlights.ListByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestHighlightRepository_DBErrors(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHighlightRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "highlights" WHERE user_id = \$1`).WillReturnError(errors.New("timeout"))
	_, err := repo.ListByUserID(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list highlights failed")

	mock.ExpectExec(`DELETE FROM "highlights"`).WillReturnError(errors.New("read only"))
	_, err = repo.DeleteByID(context.Background(), 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete highlight failed")

	assert.NoError(t, mock.ExpectationsWereMet())
}
