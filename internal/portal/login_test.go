package portal_test

import (
	"context"
	"net/http"
	"testing"

	"flexzone/internal/models"
	"flexzone/internal/portal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func otpUser(email string) *models.OTPUser {
	return &models.OTPUser{
		Identities: []models.OTPIdentity{{IdentityType: "EMAIL", IdentityValue: email}},
	}
}

func validForm() models.RegistrationForm {
	form := models.NewRegistrationForm("new@example.com")
	form.FullName = "Meera Nair"
	form.Age = "31"
	form.Gender = "female"
	form.PhoneNumber = "9876500000"
	form.EmergencyContact = "9876511111"
	form.Address = "4 Church Street"
	form.Pincode = "560001"
	return form
}

func TestLogin_ExistingMember(t *testing.T) {
	backend := new(MockBackend)
	session := newSession(t, "", "STALE-1")
	backend.On("HandleLogin", mock.Anything, "ravi@example.com").Return(&models.LoginResult{Token: "tok-9"}, nil)

	state, err := portal.NewLogin(backend, session).HandleOTPResult(context.Background(), otpUser("ravi@example.com"))
	require.NoError(t, err)

	assert.Equal(t, portal.RouteDashboard, state.Redirect)
	assert.Equal(t, "tok-9", session.GetToken())
	assert.Empty(t, session.GetMemberID())
}

func TestLogin_NewMemberGoesToRegistration(t *testing.T) {
	backend := new(MockBackend)
	session := newSession(t, "", "")
	backend.On("HandleLogin", mock.Anything, "new@example.com").Return(&models.LoginResult{NewUser: true}, nil)

	state, err := portal.NewLogin(backend, session).HandleOTPResult(context.Background(), otpUser("new@example.com"))
	require.NoError(t, err)

	assert.Equal(t, portal.RouteRegister, state.Redirect)
	assert.Equal(t, "new@example.com", state.Email)
	assert.Empty(t, session.GetToken())
}

func TestLogin_NoIdentity(t *testing.T) {
	backend := new(MockBackend)

	state, err := portal.NewLogin(backend, newSession(t, "", "")).HandleOTPResult(context.Background(), &models.OTPUser{})

	assert.ErrorIs(t, err, models.ErrNoOTPIdentity)
	assert.Equal(t, portal.LoginErrorMessage, state.Error)
	backend.AssertNotCalled(t, "HandleLogin", mock.Anything, mock.Anything)
}

func TestLogin_Failure(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "backend message", err: httpError(http.StatusForbidden, `{"error":"Account suspended"}`), message: "Account suspended"},
		{name: "generic", err: assert.AnError, message: portal.LoginErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := new(MockBackend)
			session := newSession(t, "", "")
			backend.On("HandleLogin", mock.Anything, "ravi@example.com").Return(nil, tt.err)

			state, err := portal.NewLogin(backend, session).LoginWithEmail(context.Background(), " ravi@example.com ")
			require.NoError(t, err)

			assert.Equal(t, tt.message, state.Error)
			assert.Equal(t, portal.RouteNone, state.Redirect)
			assert.Empty(t, session.GetToken())
		})
	}
}

func TestRegister_Success(t *testing.T) {
	backend := new(MockBackend)
	session := newSession(t, "", "")
	form := validForm()
	backend.On("Register", mock.Anything, form).Return(&models.RegistrationResult{Token: "tok-new"}, nil)

	state, err := portal.NewLogin(backend, session).Register(context.Background(), form)
	require.NoError(t, err)

	assert.Equal(t, portal.RouteDashboard, state.Redirect)
	assert.Equal(t, "tok-new", session.GetToken())
}

func TestRegister_InvalidFormIsNotSent(t *testing.T) {
	backend := new(MockBackend)
	form := validForm()
	form.FullName = ""
	form.Email = "not-an-email"
	form.Age = "thirty"
	form.Gender = "other"

	state, err := portal.NewLogin(backend, newSession(t, "", "")).Register(context.Background(), form)
	require.NoError(t, err)

	assert.Equal(t, portal.FormErrorMessage, state.Error)
	fields := map[string]string{}
	for _, fe := range state.FieldErrors {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "full_name is required", fields["full_name"])
	assert.Equal(t, "Invalid email format", fields["email"])
	assert.Equal(t, "age must be a number", fields["age"])
	assert.Equal(t, "gender must be one of: male female", fields["gender"])
	backend.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestRegister_OptionalFieldsMayBeEmpty(t *testing.T) {
	backend := new(MockBackend)
	form := validForm()
	form.Pincode = ""
	form.HealthCondition = ""
	backend.On("Register", mock.Anything, form).Return(&models.RegistrationResult{Token: "tok-new"}, nil)

	state, err := portal.NewLogin(backend, newSession(t, "", "")).Register(context.Background(), form)
	require.NoError(t, err)
	assert.Empty(t, state.FieldErrors)
	assert.Equal(t, portal.RouteDashboard, state.Redirect)
}

func TestRegister_BackendFailure(t *testing.T) {
	backend := new(MockBackend)
	form := validForm()
	backend.On("Register", mock.Anything, form).Return(nil, httpError(http.StatusInternalServerError, ``))

	state, err := portal.NewLogin(backend, newSession(t, "", "")).Register(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, portal.RegistrationErrorMessage, state.Error)
}
