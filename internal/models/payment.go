package models

// PaymentRecord is the latest payment the backend holds for a member
type PaymentRecord struct {
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	AmountPaid     float64 `json:"amount_Paid"`
	PaymentDate    string  `json:"payment_date"`
	RenewalDate    string  `json:"renewal_date"`
	MembershipPlan string  `json:"membership_plan"`
	PaymentStatus  string  `json:"payment_status"`
	TransactionID  string  `json:"transactionID"`
}

// IsEmpty reports whether the backend returned an empty record
func (r *PaymentRecord) IsEmpty() bool {
	return r == nil || (*r == PaymentRecord{})
}

// OrderRequest is the create-order body. The amount is resolved by the backend.
type OrderRequest struct {
	MembershipPlan Plan `json:"membership_plan"`
}

// OrderResponse carries the hosted payment page URL
type OrderResponse struct {
	URL   string `json:"url"`
	Error string `json:"error,omitempty"`
}
