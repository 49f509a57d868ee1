package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/records-go/internal/domain/record"
	"github.com/linskybing/records-go/internal/repository"
	"github.com/linskybing/records-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindow(t *testing.T) {
	cases := []struct {
		name       string
		offset     string
		limit      string
		wantOffset int
		wantLimit  int
	}{
		{"valid pair", "20", "50", 20, 50},
		{"both empty", "", "", 0, 10},
		{"offset not a number", "abc", "5", 0, 10},
		{"limit not a number", "5", "abc", 0, 10},
		{"negative offset resets both", "-1", "50", 0, 10},
		{"zero limit resets both", "20", "0", 0, 10},
		{"limit above cap resets both", "20", "101", 0, 10},
		{"limit at cap kept", "0", "100", 0, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			offset, limit := parseWindow(tc.offset, tc.limit)
			assert.Equal(t, tc.wantOffset, offset)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}

func setupRecordViewServiceMocks(t *testing.T) (*RecordViewService, *mock.MockRecordViewRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockView := mock.NewMockRecordViewRepo(ctrl)
	repos := &repository.Repos{
		RecordView: mockView,
	}
	return NewRecordViewService(repos), mockView
}

func TestList_UnreadFlag(t *testing.T) {
	svc, mockView := setupRecordViewServiceMocks(t)

	updatedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	before := updatedAt.Add(-time.Minute)
	exact := updatedAt
	thumb := 1

	rows := []record.ListRow{
		{RecordID: "a", UpdatedAt: updatedAt, AccessTime: nil},
		{RecordID: "b", UpdatedAt: updatedAt, AccessTime: &before},
		{RecordID: "c", UpdatedAt: updatedAt, AccessTime: &exact, ThumbItemID: &thumb, CommentCount: 4},
	}

	mockView.EXPECT().CountRecords(record.StatusOpen, record.ScopeAll, uint(9)).Return(int64(3), nil)
	mockView.EXPECT().ListRecords(record.StatusOpen, record.ScopeAll, uint(9), 10, 0).Return(rows, nil)

	res, err := svc.List(9, record.StatusOpen, record.ScopeAll, "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Count)
	require.Len(t, res.Items, 3)

	// Never seen: unread.
	assert.True(t, res.Items[0].IsUnConfirmed)
	// Seen before the last change: unread again.
	assert.True(t, res.Items[1].IsUnConfirmed)
	// Seen at exactly updated_at: read.
	assert.False(t, res.Items[2].IsUnConfirmed)

	assert.Equal(t, &thumb, res.Items[2].ThumbNailItemID)
	assert.Equal(t, int64(4), res.Items[2].CommentCount)
}

func TestList_WindowForwarded(t *testing.T) {
	svc, mockView := setupRecordViewServiceMocks(t)

	mockView.EXPECT().CountRecords(record.StatusClosed, record.ScopeMine, uint(9)).Return(int64(0), nil)
	mockView.EXPECT().ListRecords(record.StatusClosed, record.ScopeMine, uint(9), 25, 50).Return(nil, nil)

	res, err := svc.List(9, record.StatusClosed, record.ScopeMine, "50", "25")
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Count)
	assert.Empty(t, res.Items)
}
