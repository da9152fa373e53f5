package member

import (
	"context"
	"fmt"
	"time"

	"fitlife-service/internal/domain/member"
	xerrors "fitlife-service/internal/pkg/errors"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type MemberStore interface {
	Create(ctx context.Context, m *member.Member) error
	FindByID(ctx context.Context, id int64) (*member.Member, error)
	List(ctx context.Context, filters *member.MemberListFilters) ([]member.Member, error)
	Update(ctx context.Context, id int64, m *member.Member) error
	UpdateStatus(ctx context.Context, id int64, status member.MemberStatus) error
}

type MemberService struct {
	memberRepo MemberStore
	logger     *zap.Logger
}

func NewMemberService(memberRepo MemberStore, logger *zap.Logger) *MemberService {
	return &MemberService{memberRepo: memberRepo, logger: logger}
}

// CreateMember registers a new member. Status defaults to "Pendente" until
// a first paid payment or an admin flips it.
func (s *MemberService) CreateMember(ctx context.Context, req *member.CreateMemberRequest) (*member.Member, error) {
	status := member.MemberStatus(req.Status)
	if req.Status == "" {
		status = member.StatusPending
	}
	if !member.ValidStatus(status) {
		return nil, fmt.Errorf("unknown member status %q: %w", req.Status, xerrors.ErrInvalidInput)
	}

	joinDate := time.Now()
	if req.JoinDate != "" {
		parsed, err := time.ParseInLocation(dateLayout, req.JoinDate, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid join date %q: %w", req.JoinDate, xerrors.ErrInvalidInput)
		}
		joinDate = parsed
	}

	m := &member.Member{
		Name:     req.Name,
		Email:    req.Email,
		Status:   status,
		JoinDate: joinDate,
	}
	if req.Phone != "" {
		m.Phone.String = req.Phone
		m.Phone.Valid = true
	}

	if err := s.memberRepo.Create(ctx, m); err != nil {
		if xerrors.Is(err, xerrors.ErrDuplicateEntry) {
			return nil, fmt.Errorf("email already registered: %w", xerrors.ErrDuplicateEntry)
		}
		return nil, err
	}

	s.logger.Info("member created", zap.Int64("member_id", m.ID))

	return m, nil
}

// GetMember retrieves a member by ID.
func (s *MemberService) GetMember(ctx context.Context, id int64) (*member.Member, error) {
	return s.memberRepo.FindByID(ctx, id)
}

// ListMembers retrieves members with optional filters.
func (s *MemberService) ListMembers(ctx context.Context, filters *member.MemberListFilters) ([]member.Member, error) {
	return s.memberRepo.List(ctx, filters)
}

// UpdateMember mutates the editable member fields. Plan and end date are
// off limits here: those belong to the payment renewal flow.
func (s *MemberService) UpdateMember(ctx context.Context, id int64, req *member.UpdateMemberRequest) (*member.Member, error) {
	m, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Email != nil {
		m.Email = *req.Email
	}
	if req.Phone != nil {
		m.Phone.String = *req.Phone
		m.Phone.Valid = *req.Phone != ""
	}
	if req.Status != nil {
		status := member.MemberStatus(*req.Status)
		if !member.ValidStatus(status) {
			return nil, fmt.Errorf("unknown member status %q: %w", *req.Status, xerrors.ErrInvalidInput)
		}
		m.Status = status
	}

	if err := s.memberRepo.Update(ctx, id, m); err != nil {
		return nil, err
	}

	s.logger.Info("member updated", zap.Int64("member_id", id))

	return m, nil
}

// DeactivateMember flips a member to "Inativo".
func (s *MemberService) DeactivateMember(ctx context.Context, id int64) error {
	if err := s.memberRepo.UpdateStatus(ctx, id, member.StatusInactive); err != nil {
		return err
	}
	s.logger.Info("member deactivated", zap.Int64("member_id", id))
	return nil
}
