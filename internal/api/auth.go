package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"flexzone/internal/models"
)

// HandleLogin exchanges the email verified by the OTP provider for a session
// token, or reports that the email has no account yet.
func (c *Client) HandleLogin(ctx context.Context, email string) (*models.LoginResult, error) {
	var result models.LoginResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/handlelogin", map[string]string{"email": email}, &result); err != nil {
		return nil, err
	}

	if !result.NewUser && result.Token == "" {
		return nil, fmt.Errorf("no authentication token found in server response")
	}

	return &result, nil
}

// Register creates a member account from the registration form
func (c *Client) Register(ctx context.Context, form models.RegistrationForm) (*models.RegistrationResult, error) {
	responseBody, err := c.Do(ctx, http.MethodPost, "/api/auth/register", form, nil)
	if err != nil {
		return nil, err
	}

	var result models.RegistrationResult
	if err := json.Unmarshal(responseBody, &result); err != nil {
		return nil, fmt.Errorf("error parsing response JSON: %w", err)
	}

	if result.Token == "" {
		if result.Error != "" {
			return nil, fmt.Errorf("registration failed: %s", result.Error)
		}
		return nil, fmt.Errorf("no authentication token found in server response")
	}

	return &result, nil
}
