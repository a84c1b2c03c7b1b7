package catalogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
)

type client struct {
	logger     *slog.Logger
	baseURL    string
	httpClient *http.Client
}

func New(logger *slog.Logger, baseURL string, timeout time.Duration) Client {
	return client{
		logger:  logger,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (client client) GetEvents(ctx context.Context) ([]Event, error) {
	events := []Event{}

	err := client.sendRequest(ctx, http.MethodGet, "events", nil, &events)
	if err != nil {
		return nil, err
	}

	return events, nil
}

func (client client) CreateGuest(
	ctx context.Context,
	req GuestRequest,
) (*GuestRecord, error) {
	var record GuestRecord

	err := client.sendRequest(ctx, http.MethodPost, "guests", req, &record)
	if err != nil {
		return nil, err
	}

	return &record, nil
}

type errorResponse struct {
	Message string `json:"message"`
}

func (client client) sendRequest(
	ctx context.Context,
	method string,
	endpoint string,
	body any,
	dst any,
) error {
	u, err := url.Parse(fmt.Sprintf("%s/%s", client.baseURL, endpoint))
	if err != nil {
		return err
	}

	var req *http.Request
	if body != nil {
		var marshalled []byte
		marshalled, err = json.Marshal(body)
		if err != nil {
			return err
		}

		req, err = http.NewRequestWithContext(
			ctx,
			method,
			u.String(),
			bytes.NewBuffer(marshalled),
		)
		if err != nil {
			return err
		}

		req.Header.Add("Content-Type", "application/json")
	} else {
		req, err = http.NewRequestWithContext(ctx, method, u.String(), nil)
		if err != nil {
			return err
		}
	}

	req.Header.Add("Accept", "application/json")

	res, err := client.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK ||
		res.StatusCode >= http.StatusMultipleChoices {
		var errRes errorResponse
		if readErr := httptools.ReadJSON(res.Body, &errRes); readErr == nil &&
			errRes.Message != "" {
			return fmt.Errorf("%s", errRes.Message)
		}

		return fmt.Errorf("unexpected status %d from %s", res.StatusCode, endpoint)
	}

	err = httptools.ReadJSON(res.Body, dst)
	if err != nil && err.Error() != "body must not be empty" {
		return err
	}

	return nil
}
