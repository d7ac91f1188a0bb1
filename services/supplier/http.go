package supplier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tripnest/models"

	"go.uber.org/zap"
)

// HTTPClient implements Client against the supplier's REST API.
type HTTPClient struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
	Logger  *zap.Logger
}

// NewHTTPClient returns a supplier client with a sane default timeout.
func NewHTTPClient(baseURL, apiKey string, logger *zap.Logger) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		Logger:  logger,
	}
}

// do issues one request and decodes the response into out (if non-nil).
// Non-2xx responses are decoded into an APIError.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("supplier request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		if decodeErr := json.NewDecoder(resp.Body).Decode(apiErr); decodeErr != nil || apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		c.Logger.Warn("supplier rejected request",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("code", apiErr.Code))
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode supplier response: %w", err)
	}
	return nil
}

func (c *HTTPClient) SearchPlaces(ctx context.Context, textQuery string) ([]models.Place, error) {
	var resp struct {
		Places []models.Place `json:"places"`
	}
	body := map[string]string{"textQuery": textQuery}
	if err := c.do(ctx, http.MethodPost, "/places/search", body, &resp); err != nil {
		return nil, err
	}
	return resp.Places, nil
}

func (c *HTTPClient) SearchRates(ctx context.Context, req models.SearchRequest) ([]models.HotelSummary, int, error) {
	var resp struct {
		Hotels []models.HotelSummary `json:"hotels"`
		Total  int                   `json:"total"`
	}
	if err := c.do(ctx, http.MethodPost, "/rates/search", req, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Hotels, resp.Total, nil
}

func (c *HTTPClient) HotelRates(ctx context.Context, hotelID string, req models.SearchRequest) (*models.HotelDetails, error) {
	var details models.HotelDetails
	if err := c.do(ctx, http.MethodPost, "/rates/"+url.PathEscape(hotelID), req, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (c *HTTPClient) Reviews(ctx context.Context, hotelID string, limit, offset int, sentiment bool) (*models.ReviewPage, error) {
	q := url.Values{}
	q.Set("hotelId", hotelID)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	q.Set("getSentiment", strconv.FormatBool(sentiment))

	var page models.ReviewPage
	if err := c.do(ctx, http.MethodGet, "/reviews?"+q.Encode(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) Prebook(ctx context.Context, offerIDs []string) ([]models.PrebookSession, error) {
	type prebookEntry struct {
		OfferID       string `json:"offerId"`
		UsePaymentSdk bool   `json:"usePaymentSdk"`
	}
	body := make([]prebookEntry, 0, len(offerIDs))
	for _, id := range offerIDs {
		body = append(body, prebookEntry{OfferID: id})
	}

	var resp struct {
		Sessions []models.PrebookSession `json:"sessions"`
	}
	if err := c.do(ctx, http.MethodPost, "/booking/prebook", body, &resp); err != nil {
		return nil, err
	}
	return resp.Sessions, nil
}

// submitRequest is shared by the plain and code-verified submit variants.
type submitRequest struct {
	SessionID string           `json:"sessionId"`
	Holder    models.GuestInfo `json:"holder"`
	OTPCode   string           `json:"otpCode,omitempty"`
}

func (c *HTTPClient) Submit(ctx context.Context, sessionID string, holder models.GuestInfo) (*models.Booking, error) {
	var booking models.Booking
	req := submitRequest{SessionID: sessionID, Holder: holder}
	if err := c.do(ctx, http.MethodPost, "/booking/submit", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *HTTPClient) SubmitWithCode(ctx context.Context, sessionID, code string, holder models.GuestInfo) (*models.Booking, error) {
	var booking models.Booking
	req := submitRequest{SessionID: sessionID, Holder: holder, OTPCode: code}
	if err := c.do(ctx, http.MethodPost, "/booking/submit", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *HTTPClient) ResendCode(ctx context.Context, sessionID string) error {
	body := map[string]string{"sessionId": sessionID}
	return c.do(ctx, http.MethodPost, "/booking/resend", body, nil)
}

func (c *HTTPClient) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(ctx, http.MethodGet, "/booking/"+url.PathEscape(bookingID), nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *HTTPClient) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var resp struct {
		Data []models.Booking `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/booking/list", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
