package payment

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"fitlife-service/internal/domain/member"
	"fitlife-service/internal/domain/payment"
	"fitlife-service/internal/domain/plan"
	xerrors "fitlife-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	dateLayout     = "2006-01-02"
	maxRefAttempts = 5
)

// TxBeginner opens the transaction the payment + renewal pair runs in.
type TxBeginner interface {
	BeginTx(ctx context.Context) (pgx.Tx, error)
}

type MemberStore interface {
	FindByID(ctx context.Context, id int64) (*member.Member, error)
	UpdateRenewalWithTx(ctx context.Context, tx pgx.Tx, memberID, planID int64, planName string, endDate time.Time) error
}

type PlanStore interface {
	FindByID(ctx context.Context, id int64) (*plan.Plan, error)
}

type PaymentStore interface {
	CreateWithTx(ctx context.Context, tx pgx.Tx, p *payment.Payment) error
	FindByID(ctx context.Context, id int64) (*payment.Payment, error)
	List(ctx context.Context, filters *payment.PaymentListFilters) ([]payment.Payment, error)
	Update(ctx context.Context, id int64, p *payment.Payment) error
}

// EventPublisher pushes live events to the back-office websocket clients.
type EventPublisher interface {
	Publish(eventType string, data interface{})
}

type PaymentService struct {
	paymentRepo PaymentStore
	memberRepo  MemberStore
	planRepo    PlanStore
	db          TxBeginner
	events      EventPublisher
	logger      *zap.Logger
}

func NewPaymentService(
	paymentRepo PaymentStore,
	memberRepo MemberStore,
	planRepo PlanStore,
	db TxBeginner,
	events EventPublisher,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		memberRepo:  memberRepo,
		planRepo:    planRepo,
		db:          db,
		events:      events,
		logger:      logger,
	}
}

// CreatePayment records a payment and, when the payment settles immediately
// (status "Pago"), extends the member's membership to payment_date plus the
// plan's duration in the same transaction. Either both rows change or
// neither does.
//
// An omitted payment_date defaults to today, resolved server side.
func (s *PaymentService) CreatePayment(ctx context.Context, req *payment.CreatePaymentRequest) (*payment.Payment, error) {
	method := payment.PaymentMethod(req.Method)
	if !payment.ValidMethod(method) {
		return nil, fmt.Errorf("unknown payment method %q: %w", req.Method, xerrors.ErrInvalidInput)
	}

	status := payment.PaymentStatus(req.Status)
	if !payment.ValidStatus(status) {
		return nil, fmt.Errorf("unknown payment status %q: %w", req.Status, xerrors.ErrInvalidInput)
	}

	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", xerrors.ErrInvalidInput)
	}

	paymentDate, err := parsePaymentDate(req.PaymentDate)
	if err != nil {
		return nil, err
	}

	// Both lookups happen before any mutation: a bad reference returns a
	// clean 404 with zero writes.
	m, err := s.memberRepo.FindByID(ctx, req.MemberID)
	if err != nil {
		return nil, xerrors.Wrap(err, "member not found")
	}

	p, err := s.planRepo.FindByID(ctx, req.PlanID)
	if err != nil {
		return nil, xerrors.Wrap(err, "plan not found")
	}

	pay := &payment.Payment{
		MemberID:    m.ID,
		PlanID:      p.ID,
		PlanName:    p.Name, // snapshot: renaming the plan later must not relabel this payment
		Amount:      req.Amount,
		Method:      method,
		Status:      status,
		PaymentDate: paymentDate,
	}

	// The reference carries a unique constraint; on a collision the whole
	// transaction is retried with a fresh code.
	for attempt := 0; attempt < maxRefAttempts; attempt++ {
		pay.Reference = GenerateReference()

		err = s.createInTx(ctx, pay, p)
		if errors.Is(err, xerrors.ErrDuplicateEntry) {
			s.logger.Warn("payment reference collision, retrying",
				zap.String("reference", pay.Reference),
				zap.Int("attempt", attempt+1),
			)
			continue
		}
		if err != nil {
			return nil, err
		}

		s.logger.Info("payment created",
			zap.Int64("payment_id", pay.ID),
			zap.String("reference", pay.Reference),
			zap.Int64("member_id", m.ID),
			zap.String("plan", p.Name),
			zap.String("status", string(pay.Status)),
		)

		if s.events != nil {
			s.events.Publish("payment", pay)
		}

		return pay, nil
	}

	return nil, fmt.Errorf("exhausted payment reference attempts: %w", xerrors.ErrConflict)
}

// createInTx runs the insert plus the conditional renewal as one unit.
func (s *PaymentService) createInTx(ctx context.Context, pay *payment.Payment, p *plan.Plan) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.paymentRepo.CreateWithTx(ctx, tx, pay); err != nil {
		return err
	}

	// Renewal fires only at creation time and only for settled payments.
	if pay.Status == payment.StatusPaid {
		endDate := pay.PaymentDate.AddDate(0, 0, p.DurationDays)
		if err := s.memberRepo.UpdateRenewalWithTx(ctx, tx, pay.MemberID, p.ID, p.Name, endDate); err != nil {
			return fmt.Errorf("failed to extend membership: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// UpdatePayment mutates an existing payment row. This path never touches
// the member: flipping a payment back to "Pago" here does NOT extend the
// membership. Renewal belongs exclusively to CreatePayment.
func (s *PaymentService) UpdatePayment(ctx context.Context, id int64, req *payment.UpdatePaymentRequest) (*payment.Payment, error) {
	pay, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, xerrors.Wrap(err, "payment not found")
	}

	if req.Status != nil {
		status := payment.PaymentStatus(*req.Status)
		if !payment.ValidStatus(status) {
			return nil, fmt.Errorf("unknown payment status %q: %w", *req.Status, xerrors.ErrInvalidInput)
		}
		pay.Status = status
	}
	if req.Method != nil {
		method := payment.PaymentMethod(*req.Method)
		if !payment.ValidMethod(method) {
			return nil, fmt.Errorf("unknown payment method %q: %w", *req.Method, xerrors.ErrInvalidInput)
		}
		pay.Method = method
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, fmt.Errorf("amount must be positive: %w", xerrors.ErrInvalidInput)
		}
		pay.Amount = *req.Amount
	}
	if req.PaymentDate != nil {
		date, err := parsePaymentDate(*req.PaymentDate)
		if err != nil {
			return nil, err
		}
		pay.PaymentDate = date
	}

	if err := s.paymentRepo.Update(ctx, id, pay); err != nil {
		return nil, err
	}

	s.logger.Info("payment updated",
		zap.Int64("payment_id", id),
		zap.String("status", string(pay.Status)),
	)

	return pay, nil
}

// GetPayment retrieves a payment by ID.
func (s *PaymentService) GetPayment(ctx context.Context, id int64) (*payment.Payment, error) {
	return s.paymentRepo.FindByID(ctx, id)
}

// ListPayments retrieves payments with optional filters.
func (s *PaymentService) ListPayments(ctx context.Context, filters *payment.PaymentListFilters) ([]payment.Payment, error) {
	return s.paymentRepo.List(ctx, filters)
}

func parsePaymentDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid payment date %q: %w", raw, xerrors.ErrInvalidInput)
	}
	return date, nil
}

// GenerateReference builds the short human-readable payment code: "REF"
// followed by four random digits.
func GenerateReference() string {
	var b [4]byte
	rand.Read(b[:])
	n := binary.BigEndian.Uint32(b[:]) % 10000
	return fmt.Sprintf("REF%04d", n)
}
