package checkin

import (
	"context"
	"fmt"
	"time"

	"fitlife-service/internal/domain/checkin"
	"fitlife-service/internal/domain/member"
	xerrors "fitlife-service/internal/pkg/errors"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type CheckinStore interface {
	Create(ctx context.Context, c *checkin.Checkin) error
	ListByDate(ctx context.Context, date time.Time) ([]checkin.Checkin, error)
	ListByMember(ctx context.Context, memberID int64) ([]checkin.Checkin, error)
}

type MemberStore interface {
	FindByID(ctx context.Context, id int64) (*member.Member, error)
}

type EventPublisher interface {
	Publish(eventType string, data interface{})
}

type CheckinService struct {
	checkinRepo CheckinStore
	memberRepo  MemberStore
	events      EventPublisher
	logger      *zap.Logger
}

func NewCheckinService(
	checkinRepo CheckinStore,
	memberRepo MemberStore,
	events EventPublisher,
	logger *zap.Logger,
) *CheckinService {
	return &CheckinService{
		checkinRepo: checkinRepo,
		memberRepo:  memberRepo,
		events:      events,
		logger:      logger,
	}
}

// CreateCheckin records an entry/exit event and returns it with the joined
// member name, plan and status for the front-desk listing.
func (s *CheckinService) CreateCheckin(ctx context.Context, req *checkin.CreateCheckinRequest) (*checkin.Checkin, error) {
	checkType := checkin.CheckType(req.CheckType)
	if !checkin.ValidCheckType(checkType) {
		return nil, fmt.Errorf("unknown check type %q: %w", req.CheckType, xerrors.ErrInvalidInput)
	}

	if _, err := s.memberRepo.FindByID(ctx, req.MemberID); err != nil {
		return nil, xerrors.Wrap(err, "member not found")
	}

	c := &checkin.Checkin{
		MemberID:  req.MemberID,
		CheckType: checkType,
	}
	if err := s.checkinRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("checkin recorded",
		zap.Int64("checkin_id", c.ID),
		zap.Int64("member_id", c.MemberID),
		zap.String("check_type", string(c.CheckType)),
	)

	if s.events != nil {
		s.events.Publish("checkin", c)
	}

	return c, nil
}

// ListCheckins retrieves one day's check-ins; an empty date means today.
func (s *CheckinService) ListCheckins(ctx context.Context, rawDate string) ([]checkin.Checkin, error) {
	date := time.Now()
	if rawDate != "" {
		parsed, err := time.ParseInLocation(dateLayout, rawDate, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", rawDate, xerrors.ErrInvalidInput)
		}
		date = parsed
	}
	return s.checkinRepo.ListByDate(ctx, date)
}

// ListMemberCheckins retrieves one member's check-in history.
func (s *CheckinService) ListMemberCheckins(ctx context.Context, memberID int64) ([]checkin.Checkin, error) {
	return s.checkinRepo.ListByMember(ctx, memberID)
}
