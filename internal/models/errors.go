package models

import (
	"errors"
)

// Session-related errors
var (
	// ErrNoSession is returned when no bearer token is stored locally
	ErrNoSession = errors.New("not logged in")

	// ErrMissingMemberID is returned when the member identifier has not been persisted yet
	ErrMissingMemberID = errors.New("member ID is missing")
)

// Plan-related errors
var (
	// ErrUnknownPlan is returned when a plan name is not part of the catalog
	ErrUnknownPlan = errors.New("invalid membership plan")

	// ErrNoPlanSelected is returned when checkout is attempted before choosing a plan
	ErrNoPlanSelected = errors.New("no membership plan selected")

	// ErrInvalidPrice is returned when the selected plan has a missing or non-positive price
	ErrInvalidPrice = errors.New("membership plan price must be a positive number")
)

// Payment-related errors
var (
	// ErrMissingRedirectURL is returned when create-order succeeds without a payment URL
	ErrMissingRedirectURL = errors.New("payment order response did not include a redirect URL")

	// ErrCheckoutInProgress is returned when a checkout is submitted while another is outstanding
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

// ErrNoOTPIdentity is returned when the OTP callback payload carries no identity value
var ErrNoOTPIdentity = errors.New("no identity found in OTP response")
