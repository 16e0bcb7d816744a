package service

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/prodlens/prodlens-core/internal/billing/domain"
	"github.com/prodlens/prodlens-core/internal/validate"
)

// The simulated charge takes noticeably longer than the auth calls.
const paymentDelay = 2 * time.Second

// PaymentService validates checkout drafts and simulates charges. No
// real payment processing happens; every well-formed card succeeds.
type PaymentService struct {
	delayScale float64
	logger     *zap.Logger
}

func NewPaymentService(delayScale float64, logger *zap.Logger) *PaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentService{delayScale: delayScale, logger: logger}
}

// Plans returns the subscription catalogue.
func (s *PaymentService) Plans() []domain.Plan {
	return domain.Plans()
}

// PlanByID looks a plan up by its identifier.
func (s *PaymentService) PlanByID(id string) (domain.Plan, bool) {
	for _, p := range domain.Plans() {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Plan{}, false
}

// ValidateCard recomputes the checkout form errors.
func (s *PaymentService) ValidateCard(d domain.CardDraft) validate.ErrorSet {
	errs := validate.NewErrorSet()
	validate.CardNumber(errs, "cardNumber", d.CardNumber)
	validate.RequiredString(errs, "cardName", d.CardName, "Cardholder name", 3, 0)
	validate.CardExpiry(errs, "expiryDate", d.ExpiryDate, time.Now())
	validate.CVV(errs, "cvv", d.CVV)
	return errs
}

// SubmitPayment validates the draft and, if it passes, simulates the
// charge: a fixed delay, then a tagged success with a payment reference.
// The free plan is never charged.
func (s *PaymentService) SubmitPayment(planID string, d domain.CardDraft) (domain.PaymentResult, validate.ErrorSet) {
	plan, ok := s.PlanByID(planID)
	if !ok || plan.Price == 0 {
		return domain.PaymentResult{Success: false, Error: "This plan cannot be purchased"}, validate.NewErrorSet()
	}

	errs := s.ValidateCard(d)
	if !errs.Valid() {
		return domain.PaymentResult{}, errs
	}

	s.sleep(paymentDelay)

	result := domain.PaymentResult{
		Success:   true,
		Reference: uuid.NewString(),
		PlanID:    plan.ID,
	}
	s.logger.Info("payment accepted",
		zap.String("plan", plan.ID),
		zap.String("reference", result.Reference))
	return result, errs
}

func (s *PaymentService) sleep(d time.Duration) {
	scaled := time.Duration(float64(d) * s.delayScale)
	if scaled > 0 {
		time.Sleep(scaled)
	}
}
