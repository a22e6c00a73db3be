// Package payment implements the charge gateway over the provider's HTTP API.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"dormstay/internal/pkg/errs"
	"dormstay/internal/usecase/commands"
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type chargeRequest struct {
	ReferenceID string `json:"reference_id"`
	StudentID   string `json:"student_id"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
}

type chargeResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	DeclineReason string `json:"decline_reason"`
}

// Charge posts a charge to the provider. A transport or 5xx failure is
// returned as an error; a provider decline comes back as a non-approved
// result so the caller can tell the two apart.
func (c *Client) Charge(ctx context.Context, req commands.ChargeRequest) (*commands.ChargeResult, error) {
	body, err := json.Marshal(chargeRequest{
		ReferenceID: req.Reference,
		StudentID:   req.StudentID.String(),
		AmountCents: req.AmountCents,
		Currency:    "USD",
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode charge request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/charges", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build charge request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, errs.Wrap(err, "payment provider unreachable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusPaymentRequired || resp.StatusCode == http.StatusUnprocessableEntity:
		// Provider-side decline. Decode the reason if one was given.
		var out chargeResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			out.DeclineReason = "payment declined"
		}
		return &commands.ChargeResult{Approved: false, DeclineReason: out.DeclineReason}, nil
	case resp.StatusCode >= 300:
		return nil, errs.Newf("payment provider returned %s", resp.Status)
	}

	var out chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errs.Wrap(err, "failed to decode charge response")
	}
	if out.Status != "approved" {
		return &commands.ChargeResult{Approved: false, DeclineReason: out.DeclineReason}, nil
	}
	return &commands.ChargeResult{Approved: true, PaymentID: out.ID}, nil
}
