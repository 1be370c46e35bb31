package mysql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"Go_Board/internal/model"
)

func newTestRepo(t *testing.T) *PostRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// 内存库按连接隔离，锁到单连接避免建表和查询落在不同库上
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Post{}))
	return &PostRepository{DB: db}
}

func seedPost(t *testing.T, r *PostRepository, title, content, author string, createdAt time.Time) *model.Post {
	t.Helper()
	post := &model.Post{
		Title:     title,
		Content:   content,
		Author:    author,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, r.Create(post))
	return post
}

func TestCreateAndFindByID(t *testing.T) {
	r := newTestRepo(t)
	now := time.Now()

	created := seedPost(t, r, "first", "body", "alice", now)
	require.NotZero(t, created.ID)

	found, err := r.FindByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, "first", found.Title)
	require.Equal(t, int64(0), found.ViewCount)
}

func TestFindByIDMissing(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.FindByID(42)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestIncrementView(t *testing.T) {
	r := newTestRepo(t)
	post := seedPost(t, r, "hit me", "body", "alice", time.Now())

	got, err := r.IncrementView(post.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.ViewCount)

	got, err = r.IncrementView(post.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), got.ViewCount)

	// updated_at 不随浏览变化
	reloaded, err := r.FindByID(post.ID)
	require.NoError(t, err)
	require.Equal(t, post.UpdatedAt.Unix(), reloaded.UpdatedAt.Unix())
}

func TestIncrementViewMissing(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.IncrementView(99)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateKeepsViewCount(t *testing.T) {
	r := newTestRepo(t)
	post := seedPost(t, r, "before", "body", "alice", time.Now())

	_, err := r.IncrementView(post.ID)
	require.NoError(t, err)

	post.Title = "after"
	post.UpdatedAt = post.UpdatedAt.Add(time.Minute)
	require.NoError(t, r.Update(post))

	reloaded, err := r.FindByID(post.ID)
	require.NoError(t, err)
	require.Equal(t, "after", reloaded.Title)
	require.Equal(t, int64(1), reloaded.ViewCount)
}

func TestDelete(t *testing.T) {
	r := newTestRepo(t)
	post := seedPost(t, r, "gone", "body", "alice", time.Now())

	affected, err := r.Delete(post.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)

	_, err = r.FindByID(post.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	affected, err = r.Delete(post.ID)
	require.NoError(t, err)
	require.Zero(t, affected)
}

func TestListLatestOrderAndPaging(t *testing.T) {
	r := newTestRepo(t)
	base := time.Now()
	old := seedPost(t, r, "old", "body", "alice", base.Add(-2*time.Hour))
	mid := seedPost(t, r, "mid", "body", "bob", base.Add(-time.Hour))
	fresh := seedPost(t, r, "fresh", "body", "carol", base)

	list, total, err := r.ListLatest(0, 2)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Len(t, list, 2)
	require.Equal(t, fresh.ID, list[0].ID)
	require.Equal(t, mid.ID, list[1].ID)

	list, total, err = r.ListLatest(2, 2)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Len(t, list, 1)
	require.Equal(t, old.ID, list[0].ID)
}

func TestListPopularOrderWithTieBreak(t *testing.T) {
	r := newTestRepo(t)
	now := time.Now()
	a := seedPost(t, r, "a", "body", "alice", now)
	b := seedPost(t, r, "b", "body", "bob", now)
	c := seedPost(t, r, "c", "body", "carol", now)

	_, err := r.IncrementView(b.ID)
	require.NoError(t, err)
	_, err = r.IncrementView(b.ID)
	require.NoError(t, err)

	list, total, err := r.ListPopular(0, 5)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Equal(t, b.ID, list[0].ID)
	// 浏览数相同按 id 升序
	require.Equal(t, a.ID, list[1].ID)
	require.Equal(t, c.ID, list[2].ID)
}

func TestSearchTitleCaseInsensitive(t *testing.T) {
	r := newTestRepo(t)
	seedPost(t, r, "Hello World", "body", "alice", time.Now())

	for _, term := range []string{"hello", "WORLD", "lo Wo"} {
		list, total, err := r.SearchTitle(term, 0, 5)
		require.NoError(t, err)
		require.Equal(t, int64(1), total, "term %q", term)
		require.Equal(t, "Hello World", list[0].Title)
	}
}

func TestSearchContentAndAuthor(t *testing.T) {
	r := newTestRepo(t)
	seedPost(t, r, "t1", "Entities and Contexts", "Alice", time.Now())
	seedPost(t, r, "t2", "something else", "bob", time.Now())

	list, total, err := r.SearchContent("entities", 0, 5)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, "t1", list[0].Title)

	list, total, err = r.SearchAuthor("ALICE", 0, 5)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, "t1", list[0].Title)
}

func TestSearchTitleOrContent(t *testing.T) {
	r := newTestRepo(t)
	now := time.Now()
	seedPost(t, r, "golang tips", "misc", "alice", now.Add(-time.Minute))
	seedPost(t, r, "misc", "all about golang", "bob", now)
	seedPost(t, r, "unrelated", "nothing here", "golang", now.Add(time.Minute))

	// 作者字段命中不算
	list, total, err := r.SearchTitleOrContent("golang", 0, 5)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	require.Equal(t, "misc", list[0].Title)
	require.Equal(t, "golang tips", list[1].Title)
}

func TestSearchAllFields(t *testing.T) {
	r := newTestRepo(t)
	seedPost(t, r, "golang tips", "misc", "alice", time.Now())
	seedPost(t, r, "misc", "all about golang", "bob", time.Now())
	seedPost(t, r, "unrelated", "nothing here", "golang fan", time.Now())

	_, total, err := r.SearchAll("golang", 0, 5)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)

	list, total, err := r.SearchAll("no-such-term", 0, 5)
	require.NoError(t, err)
	require.Equal(t, int64(0), total)
	require.Empty(t, list)
}

func TestListCreatedBetweenInclusive(t *testing.T) {
	r := newTestRepo(t)
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	onStart := seedPost(t, r, "on start", "body", "alice", start)
	onEnd := seedPost(t, r, "on end", "body", "bob", end)
	seedPost(t, r, "before", "body", "carol", start.Add(-time.Second))
	seedPost(t, r, "after", "body", "dave", end.Add(time.Second))

	list, total, err := r.ListCreatedBetween(start, end, 0, 5)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Equal(t, onEnd.ID, list[0].ID)
	require.Equal(t, onStart.ID, list[1].ID)
}
