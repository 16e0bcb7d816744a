package domain

import "github.com/prodlens/prodlens-core/internal/validate"

// LoginForm is the sign-in screen's draft.
type LoginForm struct {
	Email      string
	Password   string
	RememberMe bool
}

// SignupForm is the registration screen's draft.
type SignupForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	AgreeToTerms    bool
}

// SSOForm is the single-sign-on discovery draft.
type SSOForm struct {
	CompanyDomain string
}

// ResetForm is the choose-a-new-password draft.
type ResetForm struct {
	Password        string
	ConfirmPassword string
}

// ValidateLogin recomputes the sign-in form errors.
func ValidateLogin(f LoginForm) validate.ErrorSet {
	errs := validate.NewErrorSet()
	validate.Email(errs, "email", f.Email)
	validate.Password(errs, "password", f.Password)
	return errs
}

// ValidateSignup recomputes the registration form errors.
func ValidateSignup(f SignupForm) validate.ErrorSet {
	errs := validate.NewErrorSet()
	validate.RequiredString(errs, "name", f.Name, "Name", 2, 50)
	validate.Email(errs, "email", f.Email)
	validate.StrongPassword(errs, "password", f.Password)
	validate.PasswordConfirm(errs, "confirmPassword", f.Password, f.ConfirmPassword)
	if !f.AgreeToTerms {
		errs.Add("agreeToTerms", "You must agree to the terms and conditions")
	}
	return errs
}

// ValidateSSO recomputes the discovery form errors.
func ValidateSSO(f SSOForm) validate.ErrorSet {
	errs := validate.NewErrorSet()
	validate.CompanyDomain(errs, "companyDomain", f.CompanyDomain)
	return errs
}

// ValidateForgot recomputes the forgot-password form errors.
func ValidateForgot(email string) validate.ErrorSet {
	errs := validate.NewErrorSet()
	validate.Email(errs, "email", email)
	return errs
}

// ValidateReset recomputes the new-password form errors.
func ValidateReset(f ResetForm) validate.ErrorSet {
	errs := validate.NewErrorSet()
	validate.StrongPassword(errs, "password", f.Password)
	validate.PasswordConfirm(errs, "confirmPassword", f.Password, f.ConfirmPassword)
	return errs
}
