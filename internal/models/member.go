package models

import "encoding/json"

// MembershipStatus is the backend's view of whether a membership is current
type MembershipStatus string

const (
	MembershipActive   MembershipStatus = "Active"
	MembershipInactive MembershipStatus = "Inactive"
)

// PaymentCompleted is the payment_status value that unlocks the member barcode
const PaymentCompleted = "completed"

// MemberProfile represents the member record returned by the profile endpoint
type MemberProfile struct {
	MembershipID     string           `json:"membershipID"`
	FullName         string           `json:"full_name"`
	Email            string           `json:"email"`
	MembershipStatus MembershipStatus `json:"membership_status"`
	MembershipPlan   string           `json:"membership_plan,omitempty"`
	PaymentStatus    string           `json:"payment_status,omitempty"`
	Age              json.Number      `json:"age,omitempty"`
	Gender           string           `json:"gender"`
	PhoneNumber      string           `json:"phone_number"`
	Address          string           `json:"address"`
}

// IsActive reports whether the membership is active. Anything else renders as inactive.
func (p *MemberProfile) IsActive() bool {
	return p.MembershipStatus == MembershipActive
}

// HasCompletedPayment reports whether the member's latest payment has settled
func (p *MemberProfile) HasCompletedPayment() bool {
	return p.PaymentStatus == PaymentCompleted
}

// Barcode contains the displayable barcode reference for a paid member
type Barcode struct {
	Success bool   `json:"success"`
	Barcode string `json:"barcode"`
}
