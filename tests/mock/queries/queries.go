// Package queriesmock holds gomock mocks for the interfaces in internal/usecase/queries.
// They are kept by hand in mockgen's output shape; `go generate ./internal/usecase/queries`
// replaces this file with mockgen's own output.
package queriesmock

import (
	context "context"
	reflect "reflect"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
	session "groundio/internal/pkg/session"
	queries "groundio/internal/usecase/queries"
)

// MockUserQueries is a mock of UserQueries interface.
type MockUserQueries struct {
	ctrl     *gomock.Controller
	recorder *MockUserQueriesMockRecorder
	isgomock struct{}
}

// MockUserQueriesMockRecorder is the mock recorder for MockUserQueries.
type MockUserQueriesMockRecorder struct {
	mock *MockUserQueries
}

// NewMockUserQueries creates a new mock instance.
func NewMockUserQueries(ctrl *gomock.Controller) *MockUserQueries {
	mock := &MockUserQueries{ctrl: ctrl}
	mock.recorder = &MockUserQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserQueries) EXPECT() *MockUserQueriesMockRecorder {
	return m.recorder
}

// GetCurrentUser mocks base method.
func (m *MockUserQueries) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.UserView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCurrentUser", ctx, userID)
	ret0, _ := ret[0].(*queries.UserView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCurrentUser indicates an expected call of GetCurrentUser.
func (mr *MockUserQueriesMockRecorder) GetCurrentUser(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCurrentUser", reflect.TypeOf((*MockUserQueries)(nil).GetCurrentUser), ctx, userID)
}

// MockVenueQueries is a mock of VenueQueries interface.
type MockVenueQueries struct {
	ctrl     *gomock.Controller
	recorder *MockVenueQueriesMockRecorder
	isgomock struct{}
}

// MockVenueQueriesMockRecorder is the mock recorder for MockVenueQueries.
type MockVenueQueriesMockRecorder struct {
	mock *MockVenueQueries
}

// NewMockVenueQueries creates a new mock instance.
func NewMockVenueQueries(ctrl *gomock.Controller) *MockVenueQueries {
	mock := &MockVenueQueries{ctrl: ctrl}
	mock.recorder = &MockVenueQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVenueQueries) EXPECT() *MockVenueQueriesMockRecorder {
	return m.recorder
}

// GetVenue mocks base method.
func (m *MockVenueQueries) GetVenue(ctx context.Context, id uuid.UUID) (*queries.VenueView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetVenue", ctx, id)
	ret0, _ := ret[0].(*queries.VenueView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetVenue indicates an expected call of GetVenue.
func (mr *MockVenueQueriesMockRecorder) GetVenue(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetVenue", reflect.TypeOf((*MockVenueQueries)(nil).GetVenue), ctx, id)
}

// ListMerchantVenues mocks base method.
func (m *MockVenueQueries) ListMerchantVenues(ctx context.Context, merchantID uuid.UUID) ([]*queries.VenueView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListMerchantVenues", ctx, merchantID)
	ret0, _ := ret[0].([]*queries.VenueView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListMerchantVenues indicates an expected call of ListMerchantVenues.
func (mr *MockVenueQueriesMockRecorder) ListMerchantVenues(ctx, merchantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListMerchantVenues", reflect.TypeOf((*MockVenueQueries)(nil).ListMerchantVenues), ctx, merchantID)
}

// ListVenues mocks base method.
func (m *MockVenueQueries) ListVenues(ctx context.Context, category string, query string) ([]*queries.VenueView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListVenues", ctx, category, query)
	ret0, _ := ret[0].([]*queries.VenueView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListVenues indicates an expected call of ListVenues.
func (mr *MockVenueQueriesMockRecorder) ListVenues(ctx, category, query any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListVenues", reflect.TypeOf((*MockVenueQueries)(nil).ListVenues), ctx, category, query)
}

// MockBookingQueries is a mock of BookingQueries interface.
type MockBookingQueries struct {
	ctrl     *gomock.Controller
	recorder *MockBookingQueriesMockRecorder
	isgomock struct{}
}

// MockBookingQueriesMockRecorder is the mock recorder for MockBookingQueries.
type MockBookingQueriesMockRecorder struct {
	mock *MockBookingQueries
}

// NewMockBookingQueries creates a new mock instance.
func NewMockBookingQueries(ctrl *gomock.Controller) *MockBookingQueries {
	mock := &MockBookingQueries{ctrl: ctrl}
	mock.recorder = &MockBookingQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBookingQueries) EXPECT() *MockBookingQueriesMockRecorder {
	return m.recorder
}

// GetBooking mocks base method.
func (m *MockBookingQueries) GetBooking(ctx context.Context, id uuid.UUID, actor session.Principal) (*queries.BookingView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBooking", ctx, id, actor)
	ret0, _ := ret[0].(*queries.BookingView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBooking indicates an expected call of GetBooking.
func (mr *MockBookingQueriesMockRecorder) GetBooking(ctx, id, actor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBooking", reflect.TypeOf((*MockBookingQueries)(nil).GetBooking), ctx, id, actor)
}

// ListAvailableSlots mocks base method.
func (m *MockBookingQueries) ListAvailableSlots(ctx context.Context, venueID uuid.UUID, date string) (*queries.AvailabilityView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListAvailableSlots", ctx, venueID, date)
	ret0, _ := ret[0].(*queries.AvailabilityView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListAvailableSlots indicates an expected call of ListAvailableSlots.
func (mr *MockBookingQueriesMockRecorder) ListAvailableSlots(ctx, venueID, date any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListAvailableSlots", reflect.TypeOf((*MockBookingQueries)(nil).ListAvailableSlots), ctx, venueID, date)
}

// ListCustomerBookings mocks base method.
func (m *MockBookingQueries) ListCustomerBookings(ctx context.Context, customerID uuid.UUID, filters queries.BookingFilters, cursor *queries.Cursor, limit int) ([]*queries.BookingView, *queries.Cursor, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListCustomerBookings", ctx, customerID, filters, cursor, limit)
	ret0, _ := ret[0].([]*queries.BookingView)
	ret1, _ := ret[1].(*queries.Cursor)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListCustomerBookings indicates an expected call of ListCustomerBookings.
func (mr *MockBookingQueriesMockRecorder) ListCustomerBookings(ctx, customerID, filters, cursor, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListCustomerBookings", reflect.TypeOf((*MockBookingQueries)(nil).ListCustomerBookings), ctx, customerID, filters, cursor, limit)
}

// ListVenueBookings mocks base method.
func (m *MockBookingQueries) ListVenueBookings(ctx context.Context, venueID uuid.UUID, merchantID uuid.UUID, date *string) ([]*queries.BookingView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListVenueBookings", ctx, venueID, merchantID, date)
	ret0, _ := ret[0].([]*queries.BookingView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListVenueBookings indicates an expected call of ListVenueBookings.
func (mr *MockBookingQueriesMockRecorder) ListVenueBookings(ctx, venueID, merchantID, date any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListVenueBookings", reflect.TypeOf((*MockBookingQueries)(nil).ListVenueBookings), ctx, venueID, merchantID, date)
}

// MockReviewQueries is a mock of ReviewQueries interface.
type MockReviewQueries struct {
	ctrl     *gomock.Controller
	recorder *MockReviewQueriesMockRecorder
	isgomock struct{}
}

// MockReviewQueriesMockRecorder is the mock recorder for MockReviewQueries.
type MockReviewQueriesMockRecorder struct {
	mock *MockReviewQueries
}

// NewMockReviewQueries creates a new mock instance.
func NewMockReviewQueries(ctrl *gomock.Controller) *MockReviewQueries {
	mock := &MockReviewQueries{ctrl: ctrl}
	mock.recorder = &MockReviewQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReviewQueries) EXPECT() *MockReviewQueriesMockRecorder {
	return m.recorder
}

// ListByVenue mocks base method.
func (m *MockReviewQueries) ListByVenue(ctx context.Context, venueID uuid.UUID, cursor *queries.Cursor, limit int) ([]*queries.ReviewView, *queries.Cursor, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByVenue", ctx, venueID, cursor, limit)
	ret0, _ := ret[0].([]*queries.ReviewView)
	ret1, _ := ret[1].(*queries.Cursor)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListByVenue indicates an expected call of ListByVenue.
func (mr *MockReviewQueriesMockRecorder) ListByVenue(ctx, venueID, cursor, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByVenue", reflect.TypeOf((*MockReviewQueries)(nil).ListByVenue), ctx, venueID, cursor, limit)
}
