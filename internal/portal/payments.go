package portal

import (
	"context"
	"strings"

	"flexzone/internal/models"
	"flexzone/pkg/logger"

	"go.uber.org/zap"
)

const (
	PaymentErrorMessage  = "Failed to fetch payment details. Please try again."
	NoPaymentMessage     = "No payment history found."
	RenewalErrorMessage  = "Failed to fetch renewal date. Please try again."
	NoRenewalDateMessage = "No renewal date found."
)

// PaymentState is what a payment history activation produced
type PaymentState struct {
	Record *models.PaymentRecord
	Empty  bool

	// Error is a flat, user-facing message. A reload is the only retry.
	Error    string
	Redirect Route
}

// PaymentHistory shows the member's most recent payment record
type PaymentHistory struct {
	backend Backend
	session *models.SessionStore
}

func NewPaymentHistory(backend Backend, session *models.SessionStore) *PaymentHistory {
	return &PaymentHistory{backend: backend, session: session}
}

func (p *PaymentHistory) Load(ctx context.Context) (PaymentState, error) {
	record, state, err := fetchPaymentRecord(ctx, p.backend, p.session, PaymentErrorMessage)
	if err != nil || state.Error != "" {
		return state, err
	}

	state.Record = record
	state.Empty = record.IsEmpty()
	return state, nil
}

// NotificationState carries the renewal reminder
type NotificationState struct {
	RenewalDate string
	Empty       bool
	Error       string
	Redirect    Route
}

// Notifications shows when the membership is up for renewal
type Notifications struct {
	backend Backend
	session *models.SessionStore
}

func NewNotifications(backend Backend, session *models.SessionStore) *Notifications {
	return &Notifications{backend: backend, session: session}
}

func (n *Notifications) Load(ctx context.Context) (NotificationState, error) {
	record, payment, err := fetchPaymentRecord(ctx, n.backend, n.session, RenewalErrorMessage)
	state := NotificationState{Error: payment.Error, Redirect: payment.Redirect}
	if err != nil || state.Error != "" {
		return state, err
	}

	state.RenewalDate = strings.TrimSpace(record.RenewalDate)
	state.Empty = state.RenewalDate == ""
	return state, nil
}

func fetchPaymentRecord(ctx context.Context, backend Backend, session *models.SessionStore, failure string) (*models.PaymentRecord, PaymentState, error) {
	memberID := session.GetMemberID()
	if memberID == "" {
		return nil, PaymentState{Error: MissingMemberMessage, Redirect: RouteLogin}, nil
	}

	record, err := backend.GetPaymentDetails(ctx, memberID)
	if closed(ctx) {
		return nil, PaymentState{}, ErrViewClosed
	}
	if err != nil {
		logger.LogError(err, "Failed to fetch payment details", zap.String("member_id", memberID))
		return nil, PaymentState{Error: failure}, nil
	}
	if record == nil {
		record = &models.PaymentRecord{}
	}

	return record, PaymentState{}, nil
}
