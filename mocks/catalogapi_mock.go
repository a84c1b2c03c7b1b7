//nolint:exhaustruct,revive //ignore
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"eventdeck/pkg/catalogapi"
)

// MockCatalogClient is a configurable stand-in for the backend API.
type MockCatalogClient struct {
	Events         []catalogapi.Event
	GetEventsErr   error
	CreateGuestErr error
	InsertCalls    int
	Created        []catalogapi.GuestRequest
}

func NewMockCatalogClient() *MockCatalogClient {
	return &MockCatalogClient{}
}

func (client *MockCatalogClient) GetEvents(
	_ context.Context,
) ([]catalogapi.Event, error) {
	if client.GetEventsErr != nil {
		return nil, client.GetEventsErr
	}

	events := make([]catalogapi.Event, len(client.Events))
	copy(events, client.Events)

	return events, nil
}

func (client *MockCatalogClient) CreateGuest(
	_ context.Context,
	req catalogapi.GuestRequest,
) (*catalogapi.GuestRecord, error) {
	client.InsertCalls++

	if client.CreateGuestErr != nil {
		return nil, client.CreateGuestErr
	}

	client.Created = append(client.Created, req)

	return &catalogapi.GuestRecord{
		ID:                uuid.NewString(),
		EventID:           req.EventID,
		FullName:          req.FullName,
		Role:              req.Role,
		Company:           req.Company,
		Email:             req.Email,
		AdditionalRequest: req.AdditionalRequest,
		CreatedAt:         time.Now().UTC(),
	}, nil
}
