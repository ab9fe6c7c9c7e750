package components

import (
	"groundio/internal/handler"
	"groundio/internal/handler/api"
	"groundio/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewVenueHandler,
		api.NewBookingHandler,
		api.NewMerchantHandler,
		api.NewProfileHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth     *api.AuthHandler
	Venue    *api.VenueHandler
	Booking  *api.BookingHandler
	Merchant *api.MerchantHandler
	Profile  *api.ProfileHandler
	Review   *api.ReviewHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:     p.Auth,
		Venue:    p.Venue,
		Booking:  p.Booking,
		Merchant: p.Merchant,
		Profile:  p.Profile,
		Review:   p.Review,
	}
}
