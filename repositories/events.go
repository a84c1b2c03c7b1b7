package repositories

import (
	"context"

	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"eventdeck/models"
)

// EventRepository reads the authoritative event collection, ordered by date
// ascending. Implementations never retry internally and never paginate.
type EventRepository interface {
	GetAll(ctx context.Context) ([]models.Event, error)
}

// PostgresEventRepository reads the catalog straight from the backend
// database, for deployments that skip the HTTP API.
type PostgresEventRepository struct {
	db postgres.DB
}

func (repo *PostgresEventRepository) GetAll(
	ctx context.Context,
) ([]models.Event, error) {
	query := `
		SELECT id, title, description, date, location,
		registration_deadline, genres, capacity, note, image_ref
		FROM events
		ORDER BY date ASC
	`

	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, NewFetchError(err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		//nolint:exhaustruct //fields are scanned below
		event := models.Event{}

		err = rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Date,
			&event.Location,
			&event.RegistrationDeadline,
			&event.Genres,
			&event.Capacity,
			&event.Note,
			&event.ImageRef,
		)
		if err != nil {
			return nil, NewFetchError(err)
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, NewFetchError(err)
	}

	return events, nil
}
