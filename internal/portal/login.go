package portal

import (
	"context"
	"reflect"
	"strings"

	"flexzone/internal/api"
	"flexzone/internal/models"
	"flexzone/pkg/logger"

	"github.com/go-playground/validator/v10"
)

const (
	LoginErrorMessage        = "Login failed. Please try again."
	RegistrationErrorMessage = "Error in Registration"
	FormErrorMessage         = "Please correct the highlighted fields."
)

// FieldError is a single registration form problem
type FieldError struct {
	Field   string
	Message string
}

// LoginState is the outcome of a login or registration attempt
type LoginState struct {
	// Email to prefill on the registration form
	Email       string
	Redirect    Route
	Error       string
	FieldErrors []FieldError
}

// Login turns an OTP-verified email into a session, or sends new members to registration
type Login struct {
	backend  Backend
	session  *models.SessionStore
	validate *validator.Validate
}

func NewLogin(backend Backend, session *models.SessionStore) *Login {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Login{backend: backend, session: session, validate: validate}
}

// HandleOTPResult consumes the payload the OTP provider hands back after verification
func (l *Login) HandleOTPResult(ctx context.Context, user *models.OTPUser) (LoginState, error) {
	email, err := user.Email()
	if err != nil {
		return LoginState{Error: LoginErrorMessage}, err
	}
	return l.LoginWithEmail(ctx, email)
}

// LoginWithEmail exchanges a verified email for a session
func (l *Login) LoginWithEmail(ctx context.Context, email string) (LoginState, error) {
	email = strings.TrimSpace(email)
	result, err := l.backend.HandleLogin(ctx, email)
	if closed(ctx) {
		return LoginState{}, ErrViewClosed
	}
	if err != nil {
		logger.LogError(err, "Login failed")
		message := api.ErrorMessage(err)
		if message == "" {
			message = LoginErrorMessage
		}
		return LoginState{Email: email, Error: message}, nil
	}

	if result.NewUser {
		return LoginState{Email: email, Redirect: RouteRegister}, nil
	}

	if err := l.session.SetSession(result.Token, ""); err != nil {
		return LoginState{Email: email, Error: LoginErrorMessage}, err
	}

	logger.Info("Member logged in")
	return LoginState{Email: email, Redirect: RouteDashboard}, nil
}

// Register validates the form and creates the account. Invalid forms are not sent.
func (l *Login) Register(ctx context.Context, form models.RegistrationForm) (LoginState, error) {
	if err := l.validate.Struct(form); err != nil {
		return LoginState{
			Email:       form.Email,
			Error:       FormErrorMessage,
			FieldErrors: parseValidationErrors(err),
		}, nil
	}

	result, err := l.backend.Register(ctx, form)
	if closed(ctx) {
		return LoginState{}, ErrViewClosed
	}
	if err != nil {
		logger.LogError(err, "Registration failed")
		message := api.ErrorMessage(err)
		if message == "" {
			message = RegistrationErrorMessage
		}
		return LoginState{Email: form.Email, Error: message}, nil
	}

	if err := l.session.SetSession(result.Token, ""); err != nil {
		return LoginState{Email: form.Email, Error: RegistrationErrorMessage}, err
	}

	logger.Info("Member registered")
	return LoginState{Email: form.Email, Redirect: RouteDashboard}, nil
}

func parseValidationErrors(err error) []FieldError {
	var fieldErrors []FieldError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range validationErrors {
			fieldErrors = append(fieldErrors, FieldError{
				Field:   fe.Field(),
				Message: fieldErrorMessage(fe),
			})
		}
	}

	return fieldErrors
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "numeric":
		return fe.Field() + " must be a number"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}
