package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"flexzone/internal/models"
)

// GetPaymentDetails fetches the member's latest payment record. An empty body
// yields an empty record.
func (c *Client) GetPaymentDetails(ctx context.Context, memberID string) (*models.PaymentRecord, error) {
	responseBody, err := c.Do(ctx, http.MethodGet, "/api/payment/payment-details/"+url.PathEscape(memberID), nil, nil)
	if err != nil {
		return nil, err
	}

	record := &models.PaymentRecord{}
	trimmed := bytes.TrimSpace(responseBody)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return record, nil
	}

	if err := json.Unmarshal(trimmed, record); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}

	return record, nil
}

// CreateOrder starts a hosted payment session for the chosen plan. Only the
// plan is sent; the backend resolves the amount.
func (c *Client) CreateOrder(ctx context.Context, memberID string, plan models.Plan) (*models.OrderResponse, error) {
	var response models.OrderResponse
	request := models.OrderRequest{MembershipPlan: plan}

	if err := c.doJSON(ctx, http.MethodPost, "/api/payment/create-order/"+url.PathEscape(memberID), request, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
