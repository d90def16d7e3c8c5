package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
)

// EnvelopeSigner is one recipient of a signing envelope
type EnvelopeSigner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EnvelopeRequest is the payload sent to the signing provider when an
// agreement is submitted for signature
type EnvelopeRequest struct {
	CMCode      string           `json:"cm_code"`
	Period      string           `json:"period"`
	DocumentURL string           `json:"document_url"`
	Signers     []EnvelopeSigner `json:"signers"`
}

type envelopeResponse struct {
	EnvelopeID string `json:"envelope_id"`
}

type envelopeStatusResponse struct {
	Status string `json:"status"`
}

// HTTPSigningClient talks to the external e-signature provider over its REST
// API. Transient failures are retried with backoff.
type HTTPSigningClient struct {
	client  *retryablehttp.Client
	baseURL string
	apiKey  string
}

// NewHTTPSigningClient creates a signing client for the given provider endpoint
func NewHTTPSigningClient(baseURL, apiKey string) *HTTPSigningClient {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.Logger = nil

	return &HTTPSigningClient{
		client:  retryClient,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// CreateEnvelope submits a document for signature and returns the provider's
// envelope ID.
func (c *HTTPSigningClient) CreateEnvelope(ctx context.Context, req *EnvelopeRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode envelope request: %w", err)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/envelopes", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build envelope request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("envelope request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("signing provider returned status %d", resp.StatusCode)
	}

	var out envelopeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode envelope response: %w", err)
	}
	return out.EnvelopeID, nil
}

// GetEnvelopeStatus polls the provider for an envelope's current status
func (c *HTTPSigningClient) GetEnvelopeStatus(ctx context.Context, envelopeID string) (string, error) {
	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/envelopes/"+envelopeID, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build status request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("status request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("signing provider returned status %d", resp.StatusCode)
	}

	var out envelopeStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode status response: %w", err)
	}
	return out.Status, nil
}
