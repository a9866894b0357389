package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/quotely/quote-service/internal/logger"
	"github.com/quotely/quote-service/internal/utils"
	"github.com/quotely/quote-service/models"
)

type httpQuoteClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewQuoteClient constructs an HTTP/REST implementation of [QuoteClient].
// It normalises and validates the base URL and configures the underlying
// HTTP client with the resolved base URL and request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewQuoteClient(address string, requestTimeout time.Duration, logger *logger.Logger) (QuoteClient, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid quote service address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout)

	return &httpQuoteClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateCustomer implements [QuoteClient]. It POSTs the customer payload to
// POST /api/customer and decodes the creation acknowledgement.
func (h *httpQuoteClient) CreateCustomer(ctx context.Context, customer models.Customer) (models.CustomerCreatedResponse, error) {
	var created models.CustomerCreatedResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(customer).
		SetResult(&created).
		Post("/api/customer")
	if err != nil {
		return models.CustomerCreatedResponse{}, fmt.Errorf("create customer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CustomerCreatedResponse{}, err
	}

	return created, nil
}

// AddVehicle implements [QuoteClient]. It POSTs the vehicle payload to
// POST /api/customer/{id}/vehicle and decodes the creation acknowledgement.
func (h *httpQuoteClient) AddVehicle(ctx context.Context, customerID int64, vehicle models.Vehicle) (models.VehicleCreatedResponse, error) {
	var created models.VehicleCreatedResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(vehicle).
		SetResult(&created).
		Post(fmt.Sprintf("/api/customer/%d/vehicle", customerID))
	if err != nil {
		return models.VehicleCreatedResponse{}, fmt.Errorf("add vehicle request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VehicleCreatedResponse{}, err
	}

	return created, nil
}

// RequestQuote implements [QuoteClient]. It GETs
// /api/quote/{customer_id}/{vehicle_id} and decodes the generated quote.
func (h *httpQuoteClient) RequestQuote(ctx context.Context, customerID, vehicleID int64) (models.QuoteResponse, error) {
	var quote models.QuoteResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&quote).
		Get(fmt.Sprintf("/api/quote/%d/%d", customerID, vehicleID))
	if err != nil {
		return models.QuoteResponse{}, fmt.Errorf("request quote request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.QuoteResponse{}, err
	}

	return quote, nil
}
