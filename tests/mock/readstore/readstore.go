// Package readstoremock holds gomock mocks for the interfaces in internal/infra/readstore.
// They are kept by hand in mockgen's output shape; `go generate ./internal/infra/readstore`
// replaces this file with mockgen's own output.
package readstoremock

import (
	context "context"
	reflect "reflect"

	uuid "github.com/google/uuid"
	pgtype "github.com/jackc/pgx/v5/pgtype"
	gomock "go.uber.org/mock/gomock"
	db "groundio/internal/infra/db"
	query "groundio/internal/infra/query"
)

// MockReviewViewQueries is a mock of ReviewViewQueries interface.
type MockReviewViewQueries struct {
	ctrl     *gomock.Controller
	recorder *MockReviewViewQueriesMockRecorder
	isgomock struct{}
}

// MockReviewViewQueriesMockRecorder is the mock recorder for MockReviewViewQueries.
type MockReviewViewQueriesMockRecorder struct {
	mock *MockReviewViewQueries
}

// NewMockReviewViewQueries creates a new mock instance.
func NewMockReviewViewQueries(ctrl *gomock.Controller) *MockReviewViewQueries {
	mock := &MockReviewViewQueries{ctrl: ctrl}
	mock.recorder = &MockReviewViewQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReviewViewQueries) EXPECT() *MockReviewViewQueriesMockRecorder {
	return m.recorder
}

// ListReviewsByVenue mocks base method.
func (m *MockReviewViewQueries) ListReviewsByVenue(ctx context.Context, db db.DBTX, arg query.ListReviewsByVenueParams) ([]query.ReviewRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListReviewsByVenue", ctx, db, arg)
	ret0, _ := ret[0].([]query.ReviewRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListReviewsByVenue indicates an expected call of ListReviewsByVenue.
func (mr *MockReviewViewQueriesMockRecorder) ListReviewsByVenue(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListReviewsByVenue", reflect.TypeOf((*MockReviewViewQueries)(nil).ListReviewsByVenue), ctx, db, arg)
}

// MockVenueViewQueries is a mock of VenueViewQueries interface.
type MockVenueViewQueries struct {
	ctrl     *gomock.Controller
	recorder *MockVenueViewQueriesMockRecorder
	isgomock struct{}
}

// MockVenueViewQueriesMockRecorder is the mock recorder for MockVenueViewQueries.
type MockVenueViewQueriesMockRecorder struct {
	mock *MockVenueViewQueries
}

// NewMockVenueViewQueries creates a new mock instance.
func NewMockVenueViewQueries(ctrl *gomock.Controller) *MockVenueViewQueries {
	mock := &MockVenueViewQueries{ctrl: ctrl}
	mock.recorder = &MockVenueViewQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVenueViewQueries) EXPECT() *MockVenueViewQueriesMockRecorder {
	return m.recorder
}

// GetVenueByID mocks base method.
func (m *MockVenueViewQueries) GetVenueByID(ctx context.Context, db db.DBTX, id uuid.UUID) (query.VenueRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetVenueByID", ctx, db, id)
	ret0, _ := ret[0].(query.VenueRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetVenueByID indicates an expected call of GetVenueByID.
func (mr *MockVenueViewQueriesMockRecorder) GetVenueByID(ctx, db, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetVenueByID", reflect.TypeOf((*MockVenueViewQueries)(nil).GetVenueByID), ctx, db, id)
}

// ListActiveVenues mocks base method.
func (m *MockVenueViewQueries) ListActiveVenues(ctx context.Context, db db.DBTX, category pgtype.Text) ([]query.VenueRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListActiveVenues", ctx, db, category)
	ret0, _ := ret[0].([]query.VenueRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListActiveVenues indicates an expected call of ListActiveVenues.
func (mr *MockVenueViewQueriesMockRecorder) ListActiveVenues(ctx, db, category any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListActiveVenues", reflect.TypeOf((*MockVenueViewQueries)(nil).ListActiveVenues), ctx, db, category)
}

// ListVenuesByMerchant mocks base method.
func (m *MockVenueViewQueries) ListVenuesByMerchant(ctx context.Context, db db.DBTX, merchantID uuid.UUID) ([]query.VenueRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListVenuesByMerchant", ctx, db, merchantID)
	ret0, _ := ret[0].([]query.VenueRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListVenuesByMerchant indicates an expected call of ListVenuesByMerchant.
func (mr *MockVenueViewQueriesMockRecorder) ListVenuesByMerchant(ctx, db, merchantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListVenuesByMerchant", reflect.TypeOf((*MockVenueViewQueries)(nil).ListVenuesByMerchant), ctx, db, merchantID)
}

// MockBookingViewQueries is a mock of BookingViewQueries interface.
type MockBookingViewQueries struct {
	ctrl     *gomock.Controller
	recorder *MockBookingViewQueriesMockRecorder
	isgomock struct{}
}

// MockBookingViewQueriesMockRecorder is the mock recorder for MockBookingViewQueries.
type MockBookingViewQueriesMockRecorder struct {
	mock *MockBookingViewQueries
}

// NewMockBookingViewQueries creates a new mock instance.
func NewMockBookingViewQueries(ctrl *gomock.Controller) *MockBookingViewQueries {
	mock := &MockBookingViewQueries{ctrl: ctrl}
	mock.recorder = &MockBookingViewQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBookingViewQueries) EXPECT() *MockBookingViewQueriesMockRecorder {
	return m.recorder
}

// GetBookingByID mocks base method.
func (m *MockBookingViewQueries) GetBookingByID(ctx context.Context, db db.DBTX, id uuid.UUID) (query.BookingRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBookingByID", ctx, db, id)
	ret0, _ := ret[0].(query.BookingRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBookingByID indicates an expected call of GetBookingByID.
func (mr *MockBookingViewQueriesMockRecorder) GetBookingByID(ctx, db, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBookingByID", reflect.TypeOf((*MockBookingViewQueries)(nil).GetBookingByID), ctx, db, id)
}

// ListBookingsByCustomer mocks base method.
func (m *MockBookingViewQueries) ListBookingsByCustomer(ctx context.Context, db db.DBTX, arg query.ListBookingsByCustomerParams) ([]query.BookingRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListBookingsByCustomer", ctx, db, arg)
	ret0, _ := ret[0].([]query.BookingRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListBookingsByCustomer indicates an expected call of ListBookingsByCustomer.
func (mr *MockBookingViewQueriesMockRecorder) ListBookingsByCustomer(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListBookingsByCustomer", reflect.TypeOf((*MockBookingViewQueries)(nil).ListBookingsByCustomer), ctx, db, arg)
}

// ListBookingsByVenue mocks base method.
func (m *MockBookingViewQueries) ListBookingsByVenue(ctx context.Context, db db.DBTX, venueID uuid.UUID, date pgtype.Date) ([]query.BookingRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListBookingsByVenue", ctx, db, venueID, date)
	ret0, _ := ret[0].([]query.BookingRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListBookingsByVenue indicates an expected call of ListBookingsByVenue.
func (mr *MockBookingViewQueriesMockRecorder) ListBookingsByVenue(ctx, db, venueID, date any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListBookingsByVenue", reflect.TypeOf((*MockBookingViewQueries)(nil).ListBookingsByVenue), ctx, db, venueID, date)
}

// ListHeldSlots mocks base method.
func (m *MockBookingViewQueries) ListHeldSlots(ctx context.Context, db db.DBTX, venueID uuid.UUID, date pgtype.Date) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListHeldSlots", ctx, db, venueID, date)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListHeldSlots indicates an expected call of ListHeldSlots.
func (mr *MockBookingViewQueriesMockRecorder) ListHeldSlots(ctx, db, venueID, date any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListHeldSlots", reflect.TypeOf((*MockBookingViewQueries)(nil).ListHeldSlots), ctx, db, venueID, date)
}
