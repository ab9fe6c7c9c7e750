package components

import (
	"time"

	"groundio/internal/domain/booking"
	"groundio/internal/pkg/clock"
	"groundio/internal/pkg/config"
	"groundio/internal/pkg/password"
	"groundio/internal/pkg/session"
	"groundio/internal/usecase"
	"groundio/internal/usecase/commands"
	"groundio/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	session.NewHub,
	NewSlotPolicy,
	NewBookingRuntime,
	NewBookingLocation,
	fx.Annotate(
		password.NewDefaultHasher,
		fx.As(new(commands.PasswordHasher)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewVenueCommands,
		commands.NewProfileCommands,
		commands.NewReviewCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewVenueQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewSlotPolicy fails startup on an unknown BOOKING_SLOT_POLICY.
func NewSlotPolicy(cfg config.Config) (booking.SlotPolicy, error) {
	return booking.NewSlotPolicy(cfg.Booking.SlotPolicy)
}

// NewBookingLocation is the zone booking dates and slot hours are read in.
func NewBookingLocation(cfg config.Config) *time.Location {
	return cfg.Booking.Location()
}

func NewBookingRuntime(cfg config.Config, clk clock.Clock, policy booking.SlotPolicy, loc *time.Location) commands.BookingRuntime {
	return commands.BookingRuntime{
		Clock:          clk,
		Location:       loc,
		Policy:         policy,
		IdempotencyTTL: cfg.Booking.IdempotencyTTL,
	}
}
