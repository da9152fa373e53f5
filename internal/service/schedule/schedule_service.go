package schedule

import (
	"context"
	"fmt"
	"time"

	"fitlife-service/internal/domain/member"
	"fitlife-service/internal/domain/schedule"
	xerrors "fitlife-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type TxBeginner interface {
	BeginTx(ctx context.Context) (pgx.Tx, error)
}

type ClassStore interface {
	Create(ctx context.Context, c *schedule.GymClass) error
	FindByID(ctx context.Context, id int64) (*schedule.GymClass, error)
	FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*schedule.GymClass, error)
	List(ctx context.Context) ([]schedule.GymClass, error)
	Update(ctx context.Context, id int64, c *schedule.GymClass) error
}

type ReservationStore interface {
	CountForClassDateWithTx(ctx context.Context, tx pgx.Tx, classID int64, date time.Time) (int, error)
	ExistsWithTx(ctx context.Context, tx pgx.Tx, memberID, classID int64, date time.Time) (bool, error)
	CreateWithTx(ctx context.Context, tx pgx.Tx, res *schedule.Reservation) error
	List(ctx context.Context, filters *schedule.ReservationListFilters) ([]schedule.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

type MemberStore interface {
	FindByID(ctx context.Context, id int64) (*member.Member, error)
}

type ScheduleService struct {
	classRepo       ClassStore
	reservationRepo ReservationStore
	memberRepo      MemberStore
	db              TxBeginner
	logger          *zap.Logger
}

func NewScheduleService(
	classRepo ClassStore,
	reservationRepo ReservationStore,
	memberRepo MemberStore,
	db TxBeginner,
	logger *zap.Logger,
) *ScheduleService {
	return &ScheduleService{
		classRepo:       classRepo,
		reservationRepo: reservationRepo,
		memberRepo:      memberRepo,
		db:              db,
		logger:          logger,
	}
}

// CreateReservation books a member into a class occurrence. The capacity
// count, duplicate check and insert all run in one transaction holding a
// row lock on the class, so two requests racing for the last seat
// serialize instead of overselling. The unique constraint on
// (member_id, class_id, reservation_date) backstops the duplicate check.
func (s *ScheduleService) CreateReservation(ctx context.Context, req *schedule.CreateReservationRequest) (*schedule.Reservation, error) {
	date, err := time.ParseInLocation(dateLayout, req.ReservationDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation date %q: %w", req.ReservationDate, xerrors.ErrInvalidInput)
	}

	if _, err := s.memberRepo.FindByID(ctx, req.MemberID); err != nil {
		return nil, xerrors.Wrap(err, "member not found")
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	class, err := s.classRepo.FindByIDForUpdate(ctx, tx, req.ClassID)
	if err != nil {
		return nil, xerrors.Wrap(err, "class not found")
	}

	if !class.IsActive {
		return nil, fmt.Errorf("class is not active: %w", xerrors.ErrInvalidInput)
	}

	count, err := s.reservationRepo.CountForClassDateWithTx(ctx, tx, class.ID, date)
	if err != nil {
		return nil, err
	}
	if count >= class.MaxParticipants {
		return nil, fmt.Errorf("class full: %w", xerrors.ErrConflict)
	}

	exists, err := s.reservationRepo.ExistsWithTx(ctx, tx, req.MemberID, class.ID, date)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("duplicate reservation: %w", xerrors.ErrDuplicateEntry)
	}

	res := &schedule.Reservation{
		MemberID:        req.MemberID,
		ClassID:         class.ID,
		ReservationDate: date,
	}
	if err := s.reservationRepo.CreateWithTx(ctx, tx, res); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("reservation created",
		zap.Int64("reservation_id", res.ID),
		zap.Int64("member_id", res.MemberID),
		zap.Int64("class_id", res.ClassID),
		zap.String("date", req.ReservationDate),
	)

	return res, nil
}

// ListReservations retrieves reservations with optional class/date filters.
func (s *ScheduleService) ListReservations(ctx context.Context, filters *schedule.ReservationListFilters) ([]schedule.Reservation, error) {
	return s.reservationRepo.List(ctx, filters)
}

// CancelReservation removes a booking.
func (s *ScheduleService) CancelReservation(ctx context.Context, id int64) error {
	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("reservation cancelled", zap.Int64("reservation_id", id))
	return nil
}

// CreateClass adds a class slot.
func (s *ScheduleService) CreateClass(ctx context.Context, req *schedule.CreateClassRequest) (*schedule.GymClass, error) {
	class := &schedule.GymClass{
		Name:            req.Name,
		Instructor:      req.Instructor,
		Weekday:         req.Weekday,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		MaxParticipants: req.MaxParticipants,
		IsActive:        true,
	}
	if err := s.classRepo.Create(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// GetClass retrieves a class by ID.
func (s *ScheduleService) GetClass(ctx context.Context, id int64) (*schedule.GymClass, error) {
	return s.classRepo.FindByID(ctx, id)
}

// ListClasses retrieves all classes.
func (s *ScheduleService) ListClasses(ctx context.Context) ([]schedule.GymClass, error) {
	return s.classRepo.List(ctx)
}

// UpdateClass mutates a class slot.
func (s *ScheduleService) UpdateClass(ctx context.Context, id int64, req *schedule.UpdateClassRequest) (*schedule.GymClass, error) {
	class, err := s.classRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		class.Name = *req.Name
	}
	if req.Instructor != nil {
		class.Instructor = *req.Instructor
	}
	if req.Weekday != nil {
		class.Weekday = *req.Weekday
	}
	if req.StartTime != nil {
		class.StartTime = *req.StartTime
	}
	if req.DurationMinutes != nil {
		class.DurationMinutes = *req.DurationMinutes
	}
	if req.MaxParticipants != nil {
		class.MaxParticipants = *req.MaxParticipants
	}
	if req.IsActive != nil {
		class.IsActive = *req.IsActive
	}

	if err := s.classRepo.Update(ctx, id, class); err != nil {
		return nil, err
	}

	return class, nil
}
