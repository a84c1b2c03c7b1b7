package catalogapi

import "context"

type Client interface {
	GetEvents(ctx context.Context) ([]Event, error)
	CreateGuest(ctx context.Context, req GuestRequest) (*GuestRecord, error)
}
