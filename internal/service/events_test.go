package service_test

import (
	"context"
	"testing"
	"time"

	"alumni_portal/internal/domain"
	"alumni_portal/internal/service"
	"alumni_portal/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// 2030-03-01 10:00 IST
var fixedNow = time.Date(2030, 3, 1, 10, 0, 0, 0, service.IST)

func newEventService(t *testing.T) (*service.EventService, func() int64) {
	t.Helper()
	svc, db := newEventServiceDB(t)
	count := func() int64 {
		var n int64
		require.NoError(t, db.Model(&domain.Event{}).Count(&n).Error)
		return n
	}
	return svc, count
}

func newEventServiceDB(t *testing.T) (*service.EventService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	svc := service.NewEventService(db)
	svc.Now = func() time.Time { return fixedNow }
	return svc, db
}

func eventInput(start, end string) service.EventInput {
	return service.EventInput{
		Title: "Reunion", Description: "Batch of 2010", Location: "Main Hall", Category: "Social",
		StartTime: start, EndTime: end,
	}
}

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()
	svc, count := newEventService(t)

	ev, err := svc.Create(ctx, eventInput("2030-03-01T10:01", "2030-03-01T12:00"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count())
	assert.Equal(t, "2030-03-01T10:01", ev.StartTime.Format(service.EventTimeLayout))
	assert.Equal(t, "2030-03-01T12:00", ev.EndTime.Format(service.EventTimeLayout))

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	stored := all[0]
	assert.Equal(t, "Reunion", stored.Title)
	assert.Equal(t, "Batch of 2010", stored.Description)
	assert.Equal(t, "Main Hall", stored.Location)
	assert.Equal(t, "Social", stored.Category)
	assert.True(t, stored.StartTime.Equal(time.Date(2030, 3, 1, 4, 31, 0, 0, time.UTC)))
	assert.Equal(t, service.IST, stored.StartTime.Location())
}

func TestCreateEventRejectsBadWindow(t *testing.T) {
	ctx := context.Background()
	svc, count := newEventService(t)

	tests := []struct {
		name       string
		start, end string
		wantErr    error
	}{
		{"start in the past", "2030-03-01T09:00", "2030-03-01T11:00", service.ErrInvalidEventWindow},
		{"start equals now", "2030-03-01T10:00", "2030-03-01T11:00", service.ErrInvalidEventWindow},
		{"end equals start", "2030-03-02T10:00", "2030-03-02T10:00", service.ErrInvalidEventWindow},
		{"end before start", "2030-03-02T10:00", "2030-03-02T09:00", service.ErrInvalidEventWindow},
		{"bad start", "tomorrow", "2030-03-02T09:00", service.ErrInvalidTimeFormat},
		{"bad end", "2030-03-02T10:00", "2030-03-02 11:00", service.ErrInvalidTimeFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, eventInput(tt.start, tt.end))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Zero(t, count())
}

func TestListUpcoming(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEventService(t)

	for _, start := range []string{"2030-03-05T18:00", "2030-03-01T11:00", "2030-03-02T09:30"} {
		_, err := svc.Create(ctx, eventInput(start, "2030-03-09T00:00"))
		require.NoError(t, err)
	}

	// Move the clock past the earliest event
	svc.Now = func() time.Time { return fixedNow.Add(90 * time.Minute) }
	upcoming, err := svc.ListUpcoming(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "2030-03-02T09:30", upcoming[0].StartTime.Format(service.EventTimeLayout))
	assert.Equal(t, "2030-03-05T18:00", upcoming[1].StartTime.Format(service.EventTimeLayout))

	total, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestListUpcomingReadsNaiveRowsAsIST(t *testing.T) {
	ctx := context.Background()
	svc, db := newEventServiceDB(t)

	// Rows written by another client carry no zone
	insert := "INSERT INTO events (title, description, location, category, start_time, end_time) VALUES (?, 'd', 'l', 'c', ?, ?)"
	require.NoError(t, db.Exec(insert, "Breakfast", "2030-03-01 08:00:00", "2030-03-01 09:00:00").Error)
	require.NoError(t, db.Exec(insert, "Lunch", "2030-03-01 13:00:00", "2030-03-01 14:00:00").Error)

	upcoming, err := svc.ListUpcoming(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Lunch", upcoming[0].Title)
	assert.Equal(t, "2030-03-01T13:00", upcoming[0].StartTime.Format(service.EventTimeLayout))
	assert.Equal(t, service.IST, upcoming[0].StartTime.Location())

	// Events created through the service share the convention
	_, err = svc.Create(ctx, eventInput("2030-03-01T12:00", "2030-03-01T12:30"))
	require.NoError(t, err)
	var raw struct{ StartTime time.Time }
	require.NoError(t, db.Table("events").Select("start_time").Where("title = ?", "Reunion").Scan(&raw).Error)
	assert.Equal(t, "2030-03-01 12:00", raw.StartTime.Format("2006-01-02 15:04"))

	upcoming, err = svc.ListUpcoming(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "Reunion", upcoming[0].Title)
	assert.Equal(t, "Lunch", upcoming[1].Title)
}
