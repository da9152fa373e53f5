package checkin

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitlife-service/internal/domain/checkin"
	"fitlife-service/internal/domain/member"
	xerrors "fitlife-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type fakeCheckinStore struct {
	created  []*checkin.Checkin
	byDate   map[string][]checkin.Checkin
	lastDate time.Time
}

func (s *fakeCheckinStore) Create(ctx context.Context, c *checkin.Checkin) error {
	c.ID = int64(len(s.created) + 1)
	c.CheckedAt = time.Now()
	s.created = append(s.created, c)
	return nil
}

func (s *fakeCheckinStore) ListByDate(ctx context.Context, date time.Time) ([]checkin.Checkin, error) {
	s.lastDate = date
	return s.byDate[date.Format("2006-01-02")], nil
}

func (s *fakeCheckinStore) ListByMember(ctx context.Context, memberID int64) ([]checkin.Checkin, error) {
	return nil, nil
}

type fakeMemberStore struct {
	members map[int64]*member.Member
}

func (s *fakeMemberStore) FindByID(ctx context.Context, id int64) (*member.Member, error) {
	m, ok := s.members[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return m, nil
}

type fakeEvents struct {
	published []string
}

func (e *fakeEvents) Publish(eventType string, data interface{}) {
	e.published = append(e.published, eventType)
}

func newTestService() (*CheckinService, *fakeCheckinStore, *fakeEvents) {
	store := &fakeCheckinStore{byDate: make(map[string][]checkin.Checkin)}
	members := &fakeMemberStore{members: map[int64]*member.Member{
		1: {ID: 1, Name: "Carlos Mondlane", Status: member.StatusActive},
	}}
	events := &fakeEvents{}
	svc := NewCheckinService(store, members, events, zap.NewNop())
	return svc, store, events
}

func TestCreateCheckinPublishesEvent(t *testing.T) {
	svc, store, events := newTestService()

	c, err := svc.CreateCheckin(context.Background(), &checkin.CreateCheckinRequest{
		MemberID:  1,
		CheckType: "entrada",
	})
	if err != nil {
		t.Fatalf("CreateCheckin: %v", err)
	}

	if c.CheckType != checkin.TypeEntry {
		t.Errorf("check type = %q, want entrada", c.CheckType)
	}
	if len(store.created) != 1 {
		t.Errorf("created = %d, want 1", len(store.created))
	}
	if len(events.published) != 1 || events.published[0] != "checkin" {
		t.Errorf("events = %v, want [checkin]", events.published)
	}
}

func TestCreateCheckinInvalidType(t *testing.T) {
	svc, store, _ := newTestService()

	_, err := svc.CreateCheckin(context.Background(), &checkin.CreateCheckinRequest{
		MemberID:  1,
		CheckType: "lunch",
	})
	if !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if len(store.created) != 0 {
		t.Error("invalid check type must not be recorded")
	}
}

func TestCreateCheckinUnknownMember(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateCheckin(context.Background(), &checkin.CreateCheckinRequest{
		MemberID:  999,
		CheckType: "entrada",
	})
	if !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListCheckinsDefaultsToToday(t *testing.T) {
	svc, store, _ := newTestService()

	if _, err := svc.ListCheckins(context.Background(), ""); err != nil {
		t.Fatalf("ListCheckins: %v", err)
	}

	today := time.Now().Format("2006-01-02")
	if store.lastDate.Format("2006-01-02") != today {
		t.Errorf("queried date = %v, want today", store.lastDate)
	}
}

func TestListCheckinsParsesDate(t *testing.T) {
	svc, store, _ := newTestService()

	if _, err := svc.ListCheckins(context.Background(), "2026-08-15"); err != nil {
		t.Fatalf("ListCheckins: %v", err)
	}
	if store.lastDate.Format("2006-01-02") != "2026-08-15" {
		t.Errorf("queried date = %v", store.lastDate)
	}

	if _, err := svc.ListCheckins(context.Background(), "15/08/2026"); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Errorf("bad date: err = %v, want ErrInvalidInput", err)
	}
}
