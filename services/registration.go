package services

import (
	"context"
	"log/slog"

	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"eventdeck/dtos"
	"eventdeck/eventbus"
	"eventdeck/models"
	"eventdeck/repositories"
)

// RegistrationService validates and submits guest registrations. A
// successful insert marks the event as applied before the call returns, so
// registration success and "applied" are never observably out of sync.
type RegistrationService struct {
	logger  *slog.Logger
	bus     eventbus.EventBus
	guests  repositories.GuestRepository
	catalog *CatalogService
}

// Submit validates the form and inserts one guest record. Validation fails
// fast with a *dtos.ValidationError naming the first unmet field, before
// any network call. A backend failure returns a *repositories.
// SubmissionError and leaves the applied set untouched; the caller keeps
// the form input for a retry. On success a RegistrationCompletedEvent is
// published so the host clears its form state and navigates to the
// confirmation step.
func (service *RegistrationService) Submit(
	ctx context.Context,
	dto dtos.GuestRegistrationDto,
) (*models.GuestRecord, error) {
	dto.Normalize()

	if ok, errs := dto.Validate(); !ok {
		return nil, dtos.FirstValidationError(errs)
	}

	record, err := service.guests.Insert(ctx, dto)
	if err != nil {
		service.logger.Error("failed to submit registration", logging.ErrAttr(err))
		return nil, err
	}

	service.catalog.MarkApplied(dto.EventID)

	service.bus.Publish(eventbus.RegistrationCompletedEvent{
		EventID: dto.EventID,
		Record:  record,
	})

	return record, nil
}

// ResetApplied clears the applied set. The wishlist has no symmetric reset
// on this surface; hosts that want one can call the store directly.
func (service *RegistrationService) ResetApplied() error {
	return service.catalog.ResetApplied()
}
