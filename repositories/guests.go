package repositories

import (
	"context"

	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"eventdeck/dtos"
	"eventdeck/models"
)

// GuestRepository inserts one guest record per successful registration. The
// backend generates the record's own identifier and timestamp.
type GuestRepository interface {
	Insert(
		ctx context.Context,
		dto dtos.GuestRegistrationDto,
	) (*models.GuestRecord, error)
}

type PostgresGuestRepository struct {
	db postgres.DB
}

func (repo *PostgresGuestRepository) Insert(
	ctx context.Context,
	dto dtos.GuestRegistrationDto,
) (*models.GuestRecord, error) {
	query := `
		INSERT INTO guests (event_id, full_name, role, company, email, additional_request)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	//nolint:exhaustruct //ID and CreatedAt are scanned below
	record := models.GuestRecord{
		EventID:           dto.EventID,
		FullName:          dto.FullName,
		Role:              dto.Role,
		Company:           dto.Company,
		Email:             dto.Email,
		AdditionalRequest: dto.AdditionalRequest,
	}

	err := repo.db.QueryRow(
		ctx,
		query,
		dto.EventID,
		dto.FullName,
		dto.Role,
		dto.Company,
		dto.Email,
		dto.AdditionalRequest,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return nil, NewSubmissionError(err)
	}

	return &record, nil
}
