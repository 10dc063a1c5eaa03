package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"linkbio-backend/config"
	"linkbio-backend/models"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// LeadNotifier emails the site owner when a new lead is captured, using the
// Resend API. Delivery is best-effort; when the integration is not
// configured the notifier is a no-op.
//
// Environment variables:
//   - RESEND_API_KEY: Resend API key; empty disables notifications
//   - RESEND_FROM_EMAIL: sender address (e.g. "Leads <leads@example.com>")
//   - LEAD_NOTIFY_EMAIL: recipient address for new-lead notifications
type LeadNotifier struct {
	apiKey    string
	fromEmail string
	toEmail   string
	client    *http.Client
}

func NewLeadNotifier() *LeadNotifier {
	cfg := config.New()
	return &LeadNotifier{
		apiKey:    config.GetString(cfg, "RESEND_API_KEY", ""),
		fromEmail: config.GetString(cfg, "RESEND_FROM_EMAIL", ""),
		toEmail:   config.GetString(cfg, "LEAD_NOTIFY_EMAIL", ""),
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NotifyNewLead sends a short email describing the captured contact.
func (n *LeadNotifier) NotifyNewLead(lead models.Lead) error {
	if n.apiKey == "" || n.fromEmail == "" || n.toEmail == "" {
		log.Debug().Msg("lead notifier not configured, skipping notification")
		return nil
	}

	email := ""
	if lead.Email != nil {
		email = *lead.Email
	}
	celular := ""
	if lead.Celular != nil {
		celular = *lead.Celular
	}

	payload := ResendEmailRequest{
		From:    n.fromEmail,
		To:      []string{n.toEmail},
		Subject: fmt.Sprintf("New lead from %s", lead.Source),
		Text:    fmt.Sprintf("New lead captured.\n\nEmail: %s\nCelular: %s\nSource: %s\n", email, celular, lead.Source),
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest("POST", resendEndpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Msg("Sent lead notification via Resend")
	}

	return nil
}
