//go:build integration
// +build integration

package repository_test

import (
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/linskybing/records-go/internal/domain/comment"
	"github.com/linskybing/records-go/internal/domain/file"
	"github.com/linskybing/records-go/internal/domain/group"
	"github.com/linskybing/records-go/internal/domain/record"
	"github.com/linskybing/records-go/internal/domain/session"
	"github.com/linskybing/records-go/internal/domain/user"
	"github.com/linskybing/records-go/internal/repository"
	"github.com/linskybing/records-go/internal/testutils"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	db, cleanup := testutils.SetupPostgresForIntegration()
	testDB = db

	code := m.Run()
	cleanup()
	os.Exit(code)
}

// resetDB wipes all rows so each test starts from a known state.
func resetDB(t *testing.T) {
	t.Helper()
	tables := []string{
		"record_last_access", "record_comment", "record_item_file",
		"record", "session", "category_group", "group_member",
		"file", "group_list", "users", "audit_log",
	}
	for _, table := range tables {
		if err := testDB.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("reset %s: %v", table, err)
		}
	}
}

func seedUser(t *testing.T, id uint, username, name string) {
	t.Helper()
	require.NoError(t, testDB.Create(&user.User{
		UserID: id, Username: username, Password: "x", Name: name,
	}).Error)
}

func seedGroup(t *testing.T, id uint, name string) {
	t.Helper()
	require.NoError(t, testDB.Create(&group.Group{GroupID: id, Name: name}).Error)
}

func seedRecord(t *testing.T, id string, status string, categoryID int, appGroup, createdBy uint, updatedAt time.Time) {
	t.Helper()
	require.NoError(t, testDB.Create(&record.Record{
		RecordID:         id,
		Status:           status,
		Title:            "title " + id,
		CategoryID:       categoryID,
		ApplicationGroup: appGroup,
		CreatedBy:        createdBy,
		CreatedAt:        updatedAt.Add(-time.Hour),
		UpdatedAt:        updatedAt,
	}).Error)
}

func TestSessionRepo_FindUserIDByValue(t *testing.T) {
	resetDB(t)
	repos := repository.NewRepositories(testDB)

	seedUser(t, 1, "alice", "Alice")
	require.NoError(t, repos.Session.CreateSession(&session.Session{Value: "tok-1", LinkedUserID: 1}))

	uid, err := repos.Session.FindUserIDByValue("tok-1")
	require.NoError(t, err)
	assert.Equal(t, uint(1), uid)

	_, err = repos.Session.FindUserIDByValue("tok-unknown")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repos.Session.DeleteByValue("tok-1"))
	_, err = repos.Session.FindUserIDByValue("tok-1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGroupRepo_GetPrimaryMembership(t *testing.T) {
	resetDB(t)
	repos := repository.NewRepositories(testDB)

	seedUser(t, 1, "alice", "Alice")
	seedGroup(t, 10, "Facilities")
	seedGroup(t, 11, "IT")

	// No membership at all.
	_, err := repos.Group.GetPrimaryMembership(1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Exactly one primary.
	require.NoError(t, testDB.Create(&group.GroupMember{UserID: 1, GroupID: 10, IsPrimary: true}).Error)
	require.NoError(t, testDB.Create(&group.GroupMember{UserID: 1, GroupID: 11, IsPrimary: false}).Error)

	m, err := repos.Group.GetPrimaryMembership(1)
	require.NoError(t, err)
	assert.Equal(t, uint(10), m.GroupID)

	// Two primaries is corrupt state and must fail, not pick one.
	require.NoError(t, testDB.Model(&group.GroupMember{}).
		Where("user_id = ? AND group_id = ?", 1, 11).
		Update("is_primary", true).Error)

	_, err = repos.Group.GetPrimaryMembership(1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRecordRepo_DetailAndItems(t *testing.T) {
	resetDB(t)
	repos := repository.NewRepositories(testDB)

	seedUser(t, 1, "alice", "Alice")
	seedGroup(t, 10, "Facilities")
	seedGroup(t, 20, "Helpdesk")
	require.NoError(t, testDB.Create(&group.GroupMember{UserID: 1, GroupID: 10, IsPrimary: true}).Error)

	now := time.Now().UTC().Truncate(time.Second)
	seedRecord(t, "rec-1", record.StatusOpen, 2, 20, 1, now)

	require.NoError(t, repos.File.CreateFiles([]file.File{
		{FileID: "f-1", ObjectKey: "f-1_a.png", Name: "a.png"},
		{FileID: "f-2", ObjectKey: "f-2_b.png", Name: "b.png"},
	}))
	require.NoError(t, repos.Record.CreateItems([]record.RecordItemFile{
		{LinkedRecordID: "rec-1", ItemID: 2, LinkedFileID: "f-2", LinkedThumbnailFileID: "f-2", CreatedAt: now},
		{LinkedRecordID: "rec-1", ItemID: 1, LinkedFileID: "f-1", LinkedThumbnailFileID: "f-1", CreatedAt: now},
	}))

	row, err := repos.Record.GetDetail("rec-1")
	require.NoError(t, err)
	assert.Equal(t, "rec-1", row.RecordID)
	require.NotNil(t, row.CreatedByName)
	assert.Equal(t, "Alice", *row.CreatedByName)
	require.NotNil(t, row.PrimaryGroupName)
	assert.Equal(t, "Facilities", *row.PrimaryGroupName)
	require.NotNil(t, row.ApplicationGroupName)
	assert.Equal(t, "Helpdesk", *row.ApplicationGroupName)

	items, err := repos.Record.ListItems("rec-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ItemID)
	assert.Equal(t, 2, items[1].ItemID)

	_, err = repos.Record.GetDetail("rec-missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRecordRepo_UpsertLastAccess(t *testing.T) {
	resetDB(t)
	repos := repository.NewRepositories(testDB)

	seedUser(t, 1, "alice", "Alice")
	seedGroup(t, 10, "Facilities")
	now := time.Now().UTC().Truncate(time.Second)
	seedRecord(t, "rec-1", record.StatusOpen, 1, 10, 1, now)

	first := now.Add(-time.Minute)
	require.NoError(t, repos.Record.UpsertLastAccess("rec-1", 1, first))
	require.NoError(t, repos.Record.UpsertLastAccess("rec-1", 1, now))

	var rows []record.RecordLastAccess
	require.NoError(t, testDB.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.WithinDuration(t, now, rows[0].AccessTime, time.Second)
}

func TestRecordView_ScopesAndAggregates(t *testing.T) {
	resetDB(t)
	repos := repository.NewRepositories(testDB)

	seedUser(t, 1, "alice", "Alice")
	seedUser(t, 2, "bob", "Bob")
	seedGroup(t, 10, "Facilities")
	seedGroup(t, 20, "Helpdesk")
	require.NoError(t, testDB.Create(&group.GroupMember{UserID: 1, GroupID: 10, IsPrimary: true}).Error)
	require.NoError(t, testDB.Create(&group.GroupMember{UserID: 2, GroupID: 20, IsPrimary: true}).Error)
	// Helpdesk members handle category 1 requests filed under Facilities.
	require.NoError(t, testDB.Create(&group.CategoryGroup{CategoryID: 1, ApplicationGroup: 10, GroupID: 20}).Error)

	base := time.Now().UTC().Truncate(time.Second)
	seedRecord(t, "rec-a", record.StatusOpen, 1, 10, 1, base.Add(-2*time.Minute))
	seedRecord(t, "rec-b", record.StatusOpen, 2, 10, 1, base.Add(-1*time.Minute))
	seedRecord(t, "rec-c", record.StatusOpen, 1, 20, 2, base)
	seedRecord(t, "rec-d", record.StatusClosed, 1, 10, 1, base)

	require.NoError(t, testDB.Create(&comment.RecordComment{
		LinkedRecordID: "rec-b", Value: "one", CreatedBy: 2, CreatedAt: base,
	}).Error)
	require.NoError(t, testDB.Create(&comment.RecordComment{
		LinkedRecordID: "rec-b", Value: "two", CreatedBy: 1, CreatedAt: base,
	}).Error)

	require.NoError(t, repos.File.CreateFiles([]file.File{
		{FileID: "f-1", ObjectKey: "k1", Name: "a.png"},
		{FileID: "f-2", ObjectKey: "k2", Name: "b.png"},
	}))
	require.NoError(t, repos.Record.CreateItems([]record.RecordItemFile{
		{LinkedRecordID: "rec-b", ItemID: 1, LinkedFileID: "f-1", LinkedThumbnailFileID: "f-1", CreatedAt: base},
		{LinkedRecordID: "rec-b", ItemID: 2, LinkedFileID: "f-2", LinkedThumbnailFileID: "f-2", CreatedAt: base},
	}))

	require.NoError(t, repos.Record.UpsertLastAccess("rec-b", 2, base))

	// all/open: rec-c, rec-b, rec-a (updated_at descending).
	count, err := repos.RecordView.CountRecords(record.StatusOpen, record.ScopeAll, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	rows, err := repos.RecordView.ListRecords(record.StatusOpen, record.ScopeAll, 2, 10, 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "rec-c", rows[0].RecordID)
	assert.Equal(t, "rec-b", rows[1].RecordID)
	assert.Equal(t, "rec-a", rows[2].RecordID)

	// Aggregates on rec-b: two comments stay two even with two attachment
	// rows in the join; the thumbnail slot is the lowest item id.
	recB := rows[1]
	assert.Equal(t, int64(2), recB.CommentCount)
	require.NotNil(t, recB.ThumbItemID)
	assert.Equal(t, 1, *recB.ThumbItemID)
	require.NotNil(t, recB.UserName)
	assert.Equal(t, "Alice", *recB.UserName)
	require.NotNil(t, recB.GroupName)
	assert.Equal(t, "Facilities", *recB.GroupName)
	require.NotNil(t, recB.AccessTime)

	// The same page viewed by user 1 has no access row for rec-b.
	rows, err = repos.RecordView.ListRecords(record.StatusOpen, record.ScopeAll, 1, 10, 0)
	require.NoError(t, err)
	assert.Nil(t, rows[1].AccessTime)

	// mine/open for user 1.
	count, err = repos.RecordView.CountRecords(record.StatusOpen, record.ScopeMine, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// tome/open for user 2: only rec-a matches the authorized
	// (category 1, Facilities) pair. rec-b has the wrong category and
	// rec-c the wrong application group.
	rows, err = repos.RecordView.ListRecords(record.StatusOpen, record.ScopeTome, 2, 10, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "rec-a", rows[0].RecordID)

	// all/closed.
	count, err = repos.RecordView.CountRecords(record.StatusClosed, record.ScopeAll, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Pagination: count reflects the full set while the page is windowed.
	rows, err = repos.RecordView.ListRecords(record.StatusOpen, record.ScopeAll, 1, 1, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "rec-b", rows[0].RecordID)
}

func TestFileRepo_ItemJoins(t *testing.T) {
	resetDB(t)
	repos := repository.NewRepositories(testDB)

	seedUser(t, 1, "alice", "Alice")
	seedGroup(t, 10, "Facilities")
	now := time.Now().UTC().Truncate(time.Second)
	seedRecord(t, "rec-1", record.StatusOpen, 1, 10, 1, now)

	require.NoError(t, repos.File.CreateFiles([]file.File{
		{FileID: "f-1", ObjectKey: "f-1_a.png", Name: "a.png"},
		{FileID: "t-1", ObjectKey: "t-1_thumb_a.png", Name: "thumb_a.png"},
	}))
	require.NoError(t, repos.Record.CreateItems([]record.RecordItemFile{
		{LinkedRecordID: "rec-1", ItemID: 1, LinkedFileID: "f-1", LinkedThumbnailFileID: "t-1", CreatedAt: now},
	}))

	f, err := repos.File.GetItemFile("rec-1", 1)
	require.NoError(t, err)
	assert.Equal(t, "f-1", f.FileID)
	assert.Equal(t, "a.png", f.Name)

	thumb, err := repos.File.GetItemThumbnail("rec-1", 1)
	require.NoError(t, err)
	assert.Equal(t, "t-1", thumb.FileID)
	assert.Equal(t, "thumb_a.png", thumb.Name)

	// A valid file id on the wrong item resolves nothing.
	_, err = repos.File.GetItemFile("rec-1", 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCommentRepo_ListByRecord(t *testing.T) {
	resetDB(t)
	repos := repository.NewRepositories(testDB)

	seedUser(t, 1, "alice", "Alice")
	seedGroup(t, 10, "Facilities")
	require.NoError(t, testDB.Create(&group.GroupMember{UserID: 1, GroupID: 10, IsPrimary: true}).Error)

	now := time.Now().UTC().Truncate(time.Second)
	seedRecord(t, "rec-1", record.StatusOpen, 1, 10, 1, now)

	require.NoError(t, repos.Comment.CreateComment(&comment.RecordComment{
		LinkedRecordID: "rec-1", Value: "first", CreatedBy: 1, CreatedAt: now.Add(-time.Minute),
	}))
	require.NoError(t, repos.Comment.CreateComment(&comment.RecordComment{
		LinkedRecordID: "rec-1", Value: "second", CreatedBy: 1, CreatedAt: now,
	}))

	rows, err := repos.Comment.ListByRecord("rec-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "second", rows[0].Value)
	assert.Equal(t, "first", rows[1].Value)
	require.NotNil(t, rows[0].UserName)
	assert.Equal(t, "Alice", *rows[0].UserName)
	require.NotNil(t, rows[0].GroupName)
	assert.Equal(t, "Facilities", *rows[0].GroupName)
}
