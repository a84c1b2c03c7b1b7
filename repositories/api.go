package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"eventdeck/dtos"
	"eventdeck/models"
	"eventdeck/pkg/catalogapi"
)

// APIEventRepository reads the catalog through the backend HTTP API.
type APIEventRepository struct {
	client catalogapi.Client
}

func (repo *APIEventRepository) GetAll(
	ctx context.Context,
) ([]models.Event, error) {
	wireEvents, err := repo.client.GetEvents(ctx)
	if err != nil {
		return nil, NewFetchError(err)
	}

	events := make([]models.Event, 0, len(wireEvents))
	for _, wireEvent := range wireEvents {
		events = append(events, toModelEvent(wireEvent))
	}

	return events, nil
}

func toModelEvent(e catalogapi.Event) models.Event {
	return models.Event{
		ID:                   e.ID,
		Title:                e.Title,
		Description:          e.Description,
		Date:                 e.Date,
		Location:             e.Location,
		RegistrationDeadline: e.Deadline(),
		Genres:               e.Genres,
		Capacity:             e.Capacity,
		Note:                 e.Note,
		ImageRef:             e.ImageRef,
	}
}

// APIGuestRepository submits guest registrations through the backend HTTP
// API.
type APIGuestRepository struct {
	client catalogapi.Client
}

func (repo *APIGuestRepository) Insert(
	ctx context.Context,
	dto dtos.GuestRegistrationDto,
) (*models.GuestRecord, error) {
	wireRecord, err := repo.client.CreateGuest(ctx, catalogapi.GuestRequest{
		EventID:           dto.EventID,
		FullName:          dto.FullName,
		Role:              dto.Role,
		Company:           dto.Company,
		Email:             dto.Email,
		AdditionalRequest: dto.AdditionalRequest,
	})
	if err != nil {
		return nil, NewSubmissionError(err)
	}

	id, err := uuid.Parse(wireRecord.ID)
	if err != nil {
		return nil, NewSubmissionError(
			fmt.Errorf("invalid record id %q: %w", wireRecord.ID, err),
		)
	}

	return &models.GuestRecord{
		ID:                id,
		EventID:           wireRecord.EventID,
		FullName:          wireRecord.FullName,
		Role:              wireRecord.Role,
		Company:           wireRecord.Company,
		Email:             wireRecord.Email,
		AdditionalRequest: wireRecord.AdditionalRequest,
		CreatedAt:         wireRecord.CreatedAt,
	}, nil
}
