package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitlife-service/internal/domain/member"
	"fitlife-service/internal/domain/schedule"
	xerrors "fitlife-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeDB struct {
	txs []*fakeTx
}

func (db *fakeDB) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx := &fakeTx{}
	db.txs = append(db.txs, tx)
	return tx, nil
}

type fakeClassStore struct {
	classes map[int64]*schedule.GymClass
	locked  []int64
}

func (s *fakeClassStore) Create(ctx context.Context, c *schedule.GymClass) error {
	c.ID = int64(len(s.classes) + 1)
	if s.classes == nil {
		s.classes = make(map[int64]*schedule.GymClass)
	}
	s.classes[c.ID] = c
	return nil
}

func (s *fakeClassStore) FindByID(ctx context.Context, id int64) (*schedule.GymClass, error) {
	c, ok := s.classes[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return c, nil
}

func (s *fakeClassStore) FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*schedule.GymClass, error) {
	s.locked = append(s.locked, id)
	return s.FindByID(ctx, id)
}

func (s *fakeClassStore) List(ctx context.Context) ([]schedule.GymClass, error) {
	return nil, nil
}

func (s *fakeClassStore) Update(ctx context.Context, id int64, c *schedule.GymClass) error {
	s.classes[id] = c
	return nil
}

type fakeReservationStore struct {
	count    int
	exists   bool
	created  []*schedule.Reservation
	deleted  []int64
}

func (s *fakeReservationStore) CountForClassDateWithTx(ctx context.Context, tx pgx.Tx, classID int64, date time.Time) (int, error) {
	return s.count, nil
}

func (s *fakeReservationStore) ExistsWithTx(ctx context.Context, tx pgx.Tx, memberID, classID int64, date time.Time) (bool, error) {
	return s.exists, nil
}

func (s *fakeReservationStore) CreateWithTx(ctx context.Context, tx pgx.Tx, res *schedule.Reservation) error {
	res.ID = int64(len(s.created) + 1)
	s.created = append(s.created, res)
	return nil
}

func (s *fakeReservationStore) List(ctx context.Context, filters *schedule.ReservationListFilters) ([]schedule.Reservation, error) {
	return nil, nil
}

func (s *fakeReservationStore) Delete(ctx context.Context, id int64) error {
	s.deleted = append(s.deleted, id)
	return nil
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

func newTestService(count int, exists bool) (*ScheduleService, *fakeDB, *fakeReservationStore) {
	classes := &fakeClassStore{classes: map[int64]*schedule.GymClass{
		10: {ID: 10, Name: "Spinning", Instructor: "Ana", Weekday: "monday", StartTime: "18:00", DurationMinutes: 45, MaxParticipants: 3, IsActive: true},
		11: {ID: 11, Name: "Yoga", Instructor: "Rui", Weekday: "tuesday", StartTime: "07:00", DurationMinutes: 60, MaxParticipants: 10, IsActive: false},
	}}
	reservations := &fakeReservationStore{count: count, exists: exists}
	members := &fakeMemberStore{members: map[int64]*member.Member{
		1: {ID: 1, Name: "Carlos Mondlane", Status: member.StatusActive},
	}}
	db := &fakeDB{}
	svc := NewScheduleService(classes, reservations, members, db, zap.NewNop())
	return svc, db, reservations
}

func TestCreateReservationBooksSeat(t *testing.T) {
	svc, db, reservations := newTestService(2, false)

	res, err := svc.CreateReservation(context.Background(), &schedule.CreateReservationRequest{
		MemberID:        1,
		ClassID:         10,
		ReservationDate: "2026-09-07",
	})
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}

	if len(reservations.created) != 1 {
		t.Fatalf("created = %d, want 1", len(reservations.created))
	}
	if res.MemberID != 1 || res.ClassID != 10 {
		t.Errorf("reservation = %+v", res)
	}
	if len(db.txs) != 1 || !db.txs[0].committed {
		t.Error("expected one committed transaction")
	}
}

// The third seat of a three-seat class is the last one; the fourth booking
// must be rejected.
func TestCreateReservationFullClass(t *testing.T) {
	svc, db, reservations := newTestService(3, false)

	_, err := svc.CreateReservation(context.Background(), &schedule.CreateReservationRequest{
		MemberID:        1,
		ClassID:         10,
		ReservationDate: "2026-09-07",
	})
	if !errors.Is(err, xerrors.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}

	if len(reservations.created) != 0 {
		t.Error("full class must not gain a reservation")
	}
	if db.txs[0].committed {
		t.Error("rejected booking must not commit")
	}
}

func TestCreateReservationDuplicate(t *testing.T) {
	svc, _, reservations := newTestService(1, true)

	_, err := svc.CreateReservation(context.Background(), &schedule.CreateReservationRequest{
		MemberID:        1,
		ClassID:         10,
		ReservationDate: "2026-09-07",
	})
	if !errors.Is(err, xerrors.ErrDuplicateEntry) {
		t.Fatalf("err = %v, want ErrDuplicateEntry", err)
	}
	if len(reservations.created) != 0 {
		t.Error("duplicate booking must not be created")
	}
}

func TestCreateReservationInactiveClass(t *testing.T) {
	svc, _, _ := newTestService(0, false)

	_, err := svc.CreateReservation(context.Background(), &schedule.CreateReservationRequest{
		MemberID:        1,
		ClassID:         11,
		ReservationDate: "2026-09-08",
	})
	if !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestCreateReservationUnknownMember(t *testing.T) {
	svc, db, _ := newTestService(0, false)

	_, err := svc.CreateReservation(context.Background(), &schedule.CreateReservationRequest{
		MemberID:        42,
		ClassID:         10,
		ReservationDate: "2026-09-07",
	})
	if !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if len(db.txs) != 0 {
		t.Error("no transaction should begin for an unknown member")
	}
}

func TestCreateReservationBadDate(t *testing.T) {
	svc, _, _ := newTestService(0, false)

	_, err := svc.CreateReservation(context.Background(), &schedule.CreateReservationRequest{
		MemberID:        1,
		ClassID:         10,
		ReservationDate: "next monday",
	})
	if !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
