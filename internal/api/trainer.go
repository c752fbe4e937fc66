package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"flexzone/internal/models"
)

// ErrNoTrainerAssigned is returned when the backend answers successfully but
// marks the member as having no trainer
var ErrNoTrainerAssigned = errors.New("no trainer assigned")

// GetAssignedTrainer fetches the trainer assigned to a member
func (c *Client) GetAssignedTrainer(ctx context.Context, memberID string) (*models.Trainer, error) {
	responseBody, err := c.Do(ctx, http.MethodGet, "/api/admin/trainers/"+url.PathEscape(memberID), nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeTrainer(responseBody)
}

func decodeTrainer(body []byte) (*models.Trainer, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrNoTrainerAssigned
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}

	if hasNoTrainerMarker(envelope) {
		return nil, ErrNoTrainerAssigned
	}

	payload := trimmed
	if wrapped, ok := envelope["trainer"]; ok {
		if bytes.Equal(bytes.TrimSpace(wrapped), []byte("null")) {
			return nil, ErrNoTrainerAssigned
		}
		payload = wrapped
	}

	var trainer models.Trainer
	if err := json.Unmarshal(payload, &trainer); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}
	if trainer.TrainerID == "" && trainer.TrainerName == "" {
		return nil, ErrNoTrainerAssigned
	}

	return &trainer, nil
}

func hasNoTrainerMarker(envelope map[string]json.RawMessage) bool {
	for _, key := range []string{"message", "error"} {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(text), "no trainer") {
			return true
		}
	}
	return false
}
