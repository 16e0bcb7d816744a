package service

import (
	"go.uber.org/zap"

	"github.com/prodlens/prodlens-core/internal/collection"
	"github.com/prodlens/prodlens-core/internal/settings/domain"
	"github.com/prodlens/prodlens-core/internal/storage"
	"github.com/prodlens/prodlens-core/internal/validate"
)

const storageKey = "userSettings"

// SettingsService owns the singleton settings document and the two forms
// on the settings screen: profile and change-password. The password form
// validates and reports only; credentials live with the auth gateway.
type SettingsService struct {
	doc    *collection.Object[domain.UserSettings]
	logger *zap.Logger
}

func NewSettingsService(st storage.Store, logger *zap.Logger) *SettingsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{
		doc:    collection.NewObject(storageKey, domain.Defaults(), st, logger),
		logger: logger,
	}
}

// Load returns the current settings, or the defaults when nothing has
// been saved yet.
func (s *SettingsService) Load() (domain.UserSettings, error) {
	return s.doc.Load()
}

// ValidateProfile recomputes the profile form errors.
func (s *SettingsService) ValidateProfile(settings domain.UserSettings) validate.ErrorSet {
	errs := validate.NewErrorSet()
	validate.RequiredString(errs, "fullName", settings.FullName, "Name", 2, 0)
	validate.Email(errs, "email", settings.Email)
	validate.OptionalPhone(errs, "phone", settings.Phone)
	return errs
}

// SaveProfile validates and persists the whole settings document.
func (s *SettingsService) SaveProfile(settings domain.UserSettings) (validate.ErrorSet, error) {
	errs := s.ValidateProfile(settings)
	if !errs.Valid() {
		return errs, nil
	}
	if err := s.doc.Save(settings); err != nil {
		return errs, err
	}
	s.logger.Info("settings saved")
	return errs, nil
}

// ValidatePasswordChange recomputes the change-password form errors.
func (s *SettingsService) ValidatePasswordChange(change domain.PasswordChange) validate.ErrorSet {
	errs := validate.NewErrorSet()
	if change.CurrentPassword == "" {
		errs.Add("currentPassword", "Current password is required")
	}
	validate.NewPassword(errs, "newPassword", change.NewPassword)
	validate.PasswordConfirm(errs, "confirmPassword", change.NewPassword, change.ConfirmPassword)
	return errs
}

// ChangePassword validates the form. On success it only reports; the
// screen never writes the new password anywhere.
func (s *SettingsService) ChangePassword(change domain.PasswordChange) validate.ErrorSet {
	errs := s.ValidatePasswordChange(change)
	if errs.Valid() {
		s.logger.Info("password change accepted")
	}
	return errs
}
