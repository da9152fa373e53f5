package payment

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"fitlife-service/internal/domain/member"
	"fitlife-service/internal/domain/payment"
	"fitlife-service/internal/domain/plan"
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

type renewalCall struct {
	memberID int64
	planID   int64
	planName string
	endDate  time.Time
}

type fakeMemberStore struct {
	members  map[int64]*member.Member
	renewals []renewalCall
}

func (s *fakeMemberStore) FindByID(ctx context.Context, id int64) (*member.Member, error) {
	m, ok := s.members[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return m, nil
}

func (s *fakeMemberStore) UpdateRenewalWithTx(ctx context.Context, tx pgx.Tx, memberID, planID int64, planName string, endDate time.Time) error {
	s.renewals = append(s.renewals, renewalCall{memberID, planID, planName, endDate})
	return nil
}

type fakePlanStore struct {
	plans map[int64]*plan.Plan
}

func (s *fakePlanStore) FindByID(ctx context.Context, id int64) (*plan.Plan, error) {
	p, ok := s.plans[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return p, nil
}

type fakePaymentStore struct {
	created   []*payment.Payment
	updated   map[int64]*payment.Payment
	existing  map[int64]*payment.Payment
	failFirst int // number of CreateWithTx calls that return a duplicate error
	calls     int
}

func (s *fakePaymentStore) CreateWithTx(ctx context.Context, tx pgx.Tx, p *payment.Payment) error {
	s.calls++
	if s.calls <= s.failFirst {
		return xerrors.ErrDuplicateEntry
	}
	p.ID = int64(len(s.created) + 1)
	p.CreatedAt = time.Now()
	cp := *p
	s.created = append(s.created, &cp)
	return nil
}

func (s *fakePaymentStore) FindByID(ctx context.Context, id int64) (*payment.Payment, error) {
	p, ok := s.existing[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *fakePaymentStore) List(ctx context.Context, filters *payment.PaymentListFilters) ([]payment.Payment, error) {
	return nil, nil
}

func (s *fakePaymentStore) Update(ctx context.Context, id int64, p *payment.Payment) error {
	if s.updated == nil {
		s.updated = make(map[int64]*payment.Payment)
	}
	cp := *p
	s.updated[id] = &cp
	return nil
}

type fakeEvents struct {
	published []string
}

func (e *fakeEvents) Publish(eventType string, data interface{}) {
	e.published = append(e.published, eventType)
}

func newTestService(members *fakeMemberStore, plans *fakePlanStore, payments *fakePaymentStore) (*PaymentService, *fakeDB, *fakeEvents) {
	db := &fakeDB{}
	events := &fakeEvents{}
	svc := NewPaymentService(payments, members, plans, db, events, zap.NewNop())
	return svc, db, events
}

func defaultFixtures() (*fakeMemberStore, *fakePlanStore, *fakePaymentStore) {
	members := &fakeMemberStore{members: map[int64]*member.Member{
		1: {ID: 1, Name: "Carlos Mondlane", Email: "carlos@example.com", Status: member.StatusPending},
	}}
	plans := &fakePlanStore{plans: map[int64]*plan.Plan{
		2: {ID: 2, Name: "Premium", Price: 2500, DurationDays: 30, IsActive: true},
	}}
	payments := &fakePaymentStore{}
	return members, plans, payments
}

func TestCreatePaymentPaidExtendsMembership(t *testing.T) {
	members, plans, payments := defaultFixtures()
	svc, db, events := newTestService(members, plans, payments)

	p, err := svc.CreatePayment(context.Background(), &payment.CreatePaymentRequest{
		MemberID:    1,
		PlanID:      2,
		Amount:      2500,
		PaymentDate: "2026-03-01",
		Method:      "Mpesa",
		Status:      "Pago",
	})
	if err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}

	if p.PlanName != "Premium" {
		t.Errorf("plan name snapshot = %q, want Premium", p.PlanName)
	}
	if len(members.renewals) != 1 {
		t.Fatalf("renewals = %d, want 1", len(members.renewals))
	}

	r := members.renewals[0]
	wantEnd := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	if !r.endDate.Equal(wantEnd) {
		t.Errorf("end date = %v, want %v", r.endDate, wantEnd)
	}
	if r.memberID != 1 || r.planID != 2 || r.planName != "Premium" {
		t.Errorf("renewal call = %+v", r)
	}

	if len(db.txs) != 1 || !db.txs[0].committed {
		t.Error("expected exactly one committed transaction")
	}
	if len(events.published) != 1 || events.published[0] != "payment" {
		t.Errorf("events = %v, want [payment]", events.published)
	}
}

func TestCreatePaymentPendingLeavesMemberUntouched(t *testing.T) {
	members, plans, payments := defaultFixtures()
	svc, db, _ := newTestService(members, plans, payments)

	_, err := svc.CreatePayment(context.Background(), &payment.CreatePaymentRequest{
		MemberID: 1,
		PlanID:   2,
		Amount:   2500,
		Method:   "Cash",
		Status:   "Pendente",
	})
	if err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}

	if len(members.renewals) != 0 {
		t.Errorf("renewals = %d, want 0", len(members.renewals))
	}
	if len(payments.created) != 1 {
		t.Errorf("payments created = %d, want 1", len(payments.created))
	}
	if !db.txs[0].committed {
		t.Error("transaction not committed")
	}
}

func TestCreatePaymentUnknownMemberWritesNothing(t *testing.T) {
	members, plans, payments := defaultFixtures()
	svc, db, _ := newTestService(members, plans, payments)

	_, err := svc.CreatePayment(context.Background(), &payment.CreatePaymentRequest{
		MemberID: 99,
		PlanID:   2,
		Amount:   2500,
		Method:   "Mpesa",
		Status:   "Pago",
	})
	if !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	if len(db.txs) != 0 {
		t.Error("no transaction should begin for an unknown member")
	}
	if len(payments.created) != 0 || len(members.renewals) != 0 {
		t.Error("nothing should be written for an unknown member")
	}
}

func TestCreatePaymentUnknownPlanWritesNothing(t *testing.T) {
	members, plans, payments := defaultFixtures()
	svc, db, _ := newTestService(members, plans, payments)

	_, err := svc.CreatePayment(context.Background(), &payment.CreatePaymentRequest{
		MemberID: 1,
		PlanID:   77,
		Amount:   2500,
		Method:   "Mpesa",
		Status:   "Pago",
	})
	if !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if len(db.txs) != 0 || len(payments.created) != 0 {
		t.Error("nothing should be written for an unknown plan")
	}
}

func TestCreatePaymentValidation(t *testing.T) {
	cases := []struct {
		name string
		req  payment.CreatePaymentRequest
	}{
		{"bad method", payment.CreatePaymentRequest{MemberID: 1, PlanID: 2, Amount: 100, Method: "Bitcoin", Status: "Pago"}},
		{"bad status", payment.CreatePaymentRequest{MemberID: 1, PlanID: 2, Amount: 100, Method: "Cash", Status: "Maybe"}},
		{"zero amount", payment.CreatePaymentRequest{MemberID: 1, PlanID: 2, Amount: 0, Method: "Cash", Status: "Pago"}},
		{"bad date", payment.CreatePaymentRequest{MemberID: 1, PlanID: 2, Amount: 100, PaymentDate: "01/03/2026", Method: "Cash", Status: "Pago"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			members, plans, payments := defaultFixtures()
			svc, _, _ := newTestService(members, plans, payments)

			_, err := svc.CreatePayment(context.Background(), &tc.req)
			if !errors.Is(err, xerrors.ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestCreatePaymentDefaultsDateToToday(t *testing.T) {
	members, plans, payments := defaultFixtures()
	svc, _, _ := newTestService(members, plans, payments)

	p, err := svc.CreatePayment(context.Background(), &payment.CreatePaymentRequest{
		MemberID: 1,
		PlanID:   2,
		Amount:   2500,
		Method:   "Cash",
		Status:   "Pendente",
	})
	if err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}

	now := time.Now()
	want := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !p.PaymentDate.Equal(want) {
		t.Errorf("payment date = %v, want %v", p.PaymentDate, want)
	}
}

func TestCreatePaymentRetriesOnReferenceCollision(t *testing.T) {
	members, plans, payments := defaultFixtures()
	payments.failFirst = 2
	svc, db, _ := newTestService(members, plans, payments)

	p, err := svc.CreatePayment(context.Background(), &payment.CreatePaymentRequest{
		MemberID: 1,
		PlanID:   2,
		Amount:   2500,
		Method:   "Mpesa",
		Status:   "Pago",
	})
	if err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}

	if payments.calls != 3 {
		t.Errorf("insert attempts = %d, want 3", payments.calls)
	}
	// Each failed attempt gets its own transaction; only the last commits.
	if len(db.txs) != 3 {
		t.Fatalf("transactions = %d, want 3", len(db.txs))
	}
	if db.txs[0].committed || db.txs[1].committed {
		t.Error("failed attempts must not commit")
	}
	if !db.txs[2].committed {
		t.Error("final attempt must commit")
	}
	if p.Reference == "" {
		t.Error("payment reference missing")
	}
}

func TestCreatePaymentGivesUpAfterExhaustedReferences(t *testing.T) {
	members, plans, payments := defaultFixtures()
	payments.failFirst = 100
	svc, _, _ := newTestService(members, plans, payments)

	_, err := svc.CreatePayment(context.Background(), &payment.CreatePaymentRequest{
		MemberID: 1,
		PlanID:   2,
		Amount:   2500,
		Method:   "Mpesa",
		Status:   "Pago",
	})
	if !errors.Is(err, xerrors.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	if payments.calls != maxRefAttempts {
		t.Errorf("insert attempts = %d, want %d", payments.calls, maxRefAttempts)
	}
	if len(members.renewals) != 0 {
		t.Error("no renewal should happen when every attempt fails")
	}
}

// Flipping a payment to "Pago" after the fact must not extend the
// membership. Renewal fires only at creation time.
func TestUpdatePaymentNeverExtendsMembership(t *testing.T) {
	members, plans, payments := defaultFixtures()
	payments.existing = map[int64]*payment.Payment{
		5: {
			ID:          5,
			Reference:   "REF0042",
			MemberID:    1,
			PlanID:      2,
			PlanName:    "Premium",
			Amount:      2500,
			Method:      payment.MethodMpesa,
			Status:      payment.StatusPending,
			PaymentDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	svc, db, _ := newTestService(members, plans, payments)

	status := "Pago"
	p, err := svc.UpdatePayment(context.Background(), 5, &payment.UpdatePaymentRequest{Status: &status})
	if err != nil {
		t.Fatalf("UpdatePayment: %v", err)
	}

	if p.Status != payment.StatusPaid {
		t.Errorf("status = %q, want Pago", p.Status)
	}
	if len(members.renewals) != 0 {
		t.Error("update path must never touch the member")
	}
	if len(db.txs) != 0 {
		t.Error("update path must not open the renewal transaction")
	}
}

func TestUpdatePaymentValidation(t *testing.T) {
	members, plans, payments := defaultFixtures()
	payments.existing = map[int64]*payment.Payment{
		5: {ID: 5, Reference: "REF0042", MemberID: 1, PlanID: 2, Status: payment.StatusPending, Method: payment.MethodCash, Amount: 100},
	}
	svc, _, _ := newTestService(members, plans, payments)

	badStatus := "Refunded"
	if _, err := svc.UpdatePayment(context.Background(), 5, &payment.UpdatePaymentRequest{Status: &badStatus}); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Errorf("bad status: err = %v, want ErrInvalidInput", err)
	}

	badAmount := -10.0
	if _, err := svc.UpdatePayment(context.Background(), 5, &payment.UpdatePaymentRequest{Amount: &badAmount}); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Errorf("bad amount: err = %v, want ErrInvalidInput", err)
	}

	if _, err := svc.UpdatePayment(context.Background(), 404, &payment.UpdatePaymentRequest{}); !errors.Is(err, xerrors.ErrNotFound) {
		t.Errorf("missing payment: err = %v, want ErrNotFound", err)
	}
}

func TestGenerateReferenceFormat(t *testing.T) {
	re := regexp.MustCompile(`^REF\d{4}$`)
	for i := 0; i < 200; i++ {
		ref := GenerateReference()
		if !re.MatchString(ref) {
			t.Fatalf("reference %q does not match REF followed by four digits", ref)
		}
	}
}
