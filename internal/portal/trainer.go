package portal

import (
	"context"
	"errors"
	"strings"
	"time"

	"flexzone/internal/api"
	"flexzone/internal/models"
	"flexzone/pkg/logger"

	"go.uber.org/zap"
)

// TrainerOutcome distinguishes the results of a trainer lookup
type TrainerOutcome int

const (
	TrainerAssigned TrainerOutcome = iota
	TrainerNone
	TrainerMemberNotFound
	TrainerFailed
)

const (
	NoTrainerMessage      = "No trainer assigned"
	MemberNotFoundMessage = "Member not found"
	TrainerErrorMessage   = "Failed to fetch trainer details. Please try again."
)

// TrainerState is what a trainer lookup produced
type TrainerState struct {
	Outcome        TrainerOutcome
	Trainer        *models.Trainer
	AvailableToday bool
	Message        string

	// Retryable is set for failures a reload may fix
	Retryable bool
	Redirect  Route
}

// TrainerView looks up the trainer assigned to the logged-in member
type TrainerView struct {
	backend Backend
	session *models.SessionStore

	// Now returns the current time; availability uses its local weekday
	Now func() time.Time
}

func NewTrainerView(backend Backend, session *models.SessionStore) *TrainerView {
	return &TrainerView{backend: backend, session: session, Now: time.Now}
}

// Load runs one activation of the trainer view
func (v *TrainerView) Load(ctx context.Context) (TrainerState, error) {
	memberID := v.session.GetMemberID()
	if memberID == "" {
		return TrainerState{
			Outcome:  TrainerFailed,
			Message:  MissingMemberMessage,
			Redirect: RouteLogin,
		}, nil
	}

	trainer, err := v.backend.GetAssignedTrainer(ctx, memberID)
	if closed(ctx) {
		return TrainerState{}, ErrViewClosed
	}

	switch {
	case err == nil:
	case errors.Is(err, api.ErrNoTrainerAssigned):
		return TrainerState{Outcome: TrainerNone, Message: NoTrainerMessage}, nil
	case api.IsNotFound(err):
		if strings.EqualFold(api.ErrorMessage(err), MemberNotFoundMessage) {
			return TrainerState{Outcome: TrainerMemberNotFound, Message: MemberNotFoundMessage}, nil
		}
		return TrainerState{Outcome: TrainerNone, Message: NoTrainerMessage}, nil
	default:
		logger.LogError(err, "Failed to fetch trainer", zap.String("member_id", memberID))
		return TrainerState{Outcome: TrainerFailed, Message: TrainerErrorMessage, Retryable: true}, nil
	}

	if trainer.Availability.Kind() == models.AvailabilityInvalid {
		logger.Warn("Trainer availability could not be parsed",
			zap.String("trainer_id", trainer.TrainerID),
			zap.Error(trainer.Availability.Err()))
	}

	return TrainerState{
		Outcome:        TrainerAssigned,
		Trainer:        trainer,
		AvailableToday: trainer.Availability.AvailableToday(v.Now()),
	}, nil
}
