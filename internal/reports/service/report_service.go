package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/prodlens/prodlens-core/internal/reports/domain"
	"github.com/prodlens/prodlens-core/internal/validate"
)

// ReportService validates and accepts problem reports. Submission is
// synchronous and local; reports are logged, not transmitted anywhere.
type ReportService struct {
	logger *zap.Logger
}

func NewReportService(logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{logger: logger}
}

// ValidateDraft recomputes the report form errors. The contact email is
// optional but must be well-formed when present.
func (s *ReportService) ValidateDraft(d domain.Draft) validate.ErrorSet {
	errs := validate.NewErrorSet()
	if strings.TrimSpace(d.Type) == "" {
		errs.Add("type", "Please select a report type")
	}
	validate.RequiredString(errs, "subject", d.Subject, "Subject", 5, 100)
	if strings.TrimSpace(d.Description) == "" {
		errs.Add("description", "Description is required")
	} else if len(strings.TrimSpace(d.Description)) < 20 {
		errs.Add("description", "Please provide more details (at least 20 characters)")
	} else if len(strings.TrimSpace(d.Description)) > 2000 {
		errs.Add("description", "Description must be less than 2000 characters")
	}
	if strings.TrimSpace(d.Email) != "" {
		validate.Email(errs, "email", d.Email)
	}
	return errs
}

// Submit validates the draft and accepts it. An invalid draft returns
// the error set; nothing else happens.
func (s *ReportService) Submit(d domain.Draft) (*domain.Report, validate.ErrorSet) {
	errs := s.ValidateDraft(d)
	if !errs.Valid() {
		return nil, errs
	}

	report := &domain.Report{
		Type:             d.Type,
		Subject:          strings.TrimSpace(d.Subject),
		Description:      strings.TrimSpace(d.Description),
		Email:            strings.TrimSpace(d.Email),
		Priority:         d.Priority,
		AttachScreenshot: d.AttachScreenshot,
	}
	s.logger.Info("report submitted",
		zap.String("type", report.Type),
		zap.String("priority", report.Priority))
	return report, errs
}
