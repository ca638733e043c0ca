package turf

import "context"

type Repository interface {
	CreateTurf(ctx context.Context, ownerID int, req CreateTurfRequest) (*Turf, error)
	GetTurfByID(ctx context.Context, id int) (*Turf, error)
	ListTurfs(ctx context.Context, city string) ([]Turf, error)
	ListTurfsByOwner(ctx context.Context, ownerID int) ([]Turf, error)

	ReplaceOperatingHours(ctx context.Context, turfID int, windows []OperatingWindow) error
	GetOperatingHours(ctx context.Context, turfID int) ([]OperatingWindow, error)
	GetOperatingWindow(ctx context.Context, turfID, dayOfWeek int) (*OperatingWindow, error)

	CreateBookingType(ctx context.Context, turfID int, req CreateBookingTypeRequest) (*BookingType, error)
	ListBookingTypes(ctx context.Context, turfID int, onlyActive bool) ([]BookingType, error)

	CreateBlackout(ctx context.Context, turfID int, date string, start, end int, reason string) (*Blackout, error)
	ListBlackoutsForDate(ctx context.Context, turfID int, date string) ([]Blackout, error)
}
