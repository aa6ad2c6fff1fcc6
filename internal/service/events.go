package service

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata" // Asia/Kolkata must resolve on hosts without zoneinfo

	"alumni_portal/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// EventTimeLayout is the datetime-local format posted by the event form
const EventTimeLayout = "2006-01-02T15:04"

// IST is the fixed zone for event validation and display
var IST = mustLoadLocation("Asia/Kolkata")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// EventInput is the event creation form
type EventInput struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	Location    string `form:"location" binding:"required"`
	Category    string `form:"category" binding:"required"`
	StartTime   string `form:"start_time" binding:"required"` // wall-clock IST
	EndTime     string `form:"end_time" binding:"required"`   // wall-clock IST
}

// EventService creates and lists events
type EventService struct {
	db  *gorm.DB
	Now func() time.Time // Clock, replaceable in tests
}

// NewEventService creates an EventService using the wall clock
func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db, Now: time.Now}
}

// Create validates the window in IST and stores the event. Nothing is written on error.
func (s *EventService) Create(ctx context.Context, in EventInput) (domain.Event, error) {
	start, err := time.ParseInLocation(EventTimeLayout, in.StartTime, IST)
	if err != nil {
		return domain.Event{}, fmt.Errorf("%w: start %q", ErrInvalidTimeFormat, in.StartTime)
	}
	end, err := time.ParseInLocation(EventTimeLayout, in.EndTime, IST)
	if err != nil {
		return domain.Event{}, fmt.Errorf("%w: end %q", ErrInvalidTimeFormat, in.EndTime)
	}
	now := s.Now().In(IST)
	if !start.After(now) || !end.After(start) {
		return domain.Event{}, ErrInvalidEventWindow
	}
	event := domain.Event{
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Category:    in.Category,
		StartTime:   wallClock(start),
		EndTime:     wallClock(end),
	}
	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		logrus.WithFields(logrus.Fields{"title": in.Title, "error": err.Error()}).Error("Create event failed")
		return domain.Event{}, fmt.Errorf("create event: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"event_id":  event.ID,
		"start":     start.Format(time.RFC3339),
		"timestamp": time.Now().Format(time.RFC3339),
	}).Info("Event created")
	return localize(event), nil
}

// ListAll returns every event ordered by start time, in IST
func (s *EventService) ListAll(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	if err := s.db.WithContext(ctx).Order("start_time").Order("id").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	for i := range events {
		events[i] = localize(events[i])
	}
	return events, nil
}

// ListUpcoming returns events starting strictly after now, ordered by start time, in IST
func (s *EventService) ListUpcoming(ctx context.Context) ([]domain.Event, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	now := s.Now().In(IST)
	upcoming := make([]domain.Event, 0, len(all))
	for _, e := range all {
		if e.StartTime.After(now) {
			upcoming = append(upcoming, e)
		}
	}
	return upcoming, nil
}

// Count returns the number of stored events
func (s *EventService) Count(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&domain.Event{}).Count(&total).Error
	return total, err
}

// wallClock drops the zone of t after moving it to IST. The UTC label only keeps drivers from shifting it.
func wallClock(t time.Time) time.Time {
	t = t.In(IST)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// inIST reads a stored zone-less value as IST wall clock, whatever zone the driver labelled it with
func inIST(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), IST)
}

// localize turns stored wall-clock values into IST times for filtering and display
func localize(e domain.Event) domain.Event {
	e.StartTime = inIST(e.StartTime)
	e.EndTime = inIST(e.EndTime)
	return e
}
