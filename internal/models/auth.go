package models

// LoginResult is the handlelogin response. NewUser means the email must register first.
type LoginResult struct {
	Token   string `json:"token"`
	NewUser bool   `json:"newUser"`
	Error   string `json:"error,omitempty"`
}

// RegistrationForm holds the fields the register endpoint expects
type RegistrationForm struct {
	FullName         string `json:"full_name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Age              string `json:"age" validate:"required,numeric"`
	Gender           string `json:"gender" validate:"required,oneof=male female"`
	PhoneNumber      string `json:"phone_number" validate:"required"`
	EmergencyContact string `json:"emergency_contact" validate:"required"`
	Address          string `json:"address" validate:"required"`
	Pincode          string `json:"pincode"`
	HealthCondition  string `json:"health_condition"`
}

// NewRegistrationForm returns a form with the default selections filled in
func NewRegistrationForm(email string) RegistrationForm {
	return RegistrationForm{
		Email:           email,
		Gender:          "male",
		HealthCondition: "Normal",
	}
}

// RegistrationResult is the register response
type RegistrationResult struct {
	Token string `json:"token"`
	Error string `json:"error,omitempty"`
}

// OTPIdentity is one verified identity in the OTP provider's callback
type OTPIdentity struct {
	IdentityType  string `json:"identityType"`
	IdentityValue string `json:"identityValue"`
	Channel       string `json:"channel,omitempty"`
}

// OTPUser is the payload the OTP provider hands to the login callback
type OTPUser struct {
	Token      string        `json:"token,omitempty"`
	UserID     string        `json:"userId,omitempty"`
	Identities []OTPIdentity `json:"identities"`
}

// Email returns the first identity value, which the login flow treats as the email
func (u *OTPUser) Email() (string, error) {
	if u == nil || len(u.Identities) == 0 || u.Identities[0].IdentityValue == "" {
		return "", ErrNoOTPIdentity
	}
	return u.Identities[0].IdentityValue, nil
}
