// Package repositorymock holds gomock mocks for the interfaces in internal/infra/repository.
// They are kept by hand in mockgen's output shape; `go generate ./internal/infra/repository`
// replaces this file with mockgen's own output.
package repositorymock

import (
	context "context"
	reflect "reflect"
	time "time"

	uuid "github.com/google/uuid"
	pgtype "github.com/jackc/pgx/v5/pgtype"
	gomock "go.uber.org/mock/gomock"
	db "groundio/internal/infra/db"
	query "groundio/internal/infra/query"
)

// MockReviewWriteQueries is a mock of ReviewWriteQueries interface.
type MockReviewWriteQueries struct {
	ctrl     *gomock.Controller
	recorder *MockReviewWriteQueriesMockRecorder
	isgomock struct{}
}

// MockReviewWriteQueriesMockRecorder is the mock recorder for MockReviewWriteQueries.
type MockReviewWriteQueriesMockRecorder struct {
	mock *MockReviewWriteQueries
}

// NewMockReviewWriteQueries creates a new mock instance.
func NewMockReviewWriteQueries(ctrl *gomock.Controller) *MockReviewWriteQueries {
	mock := &MockReviewWriteQueries{ctrl: ctrl}
	mock.recorder = &MockReviewWriteQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReviewWriteQueries) EXPECT() *MockReviewWriteQueriesMockRecorder {
	return m.recorder
}

// CreateReview mocks base method.
func (m *MockReviewWriteQueries) CreateReview(ctx context.Context, db db.DBTX, arg query.CreateReviewParams) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateReview", ctx, db, arg)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateReview indicates an expected call of CreateReview.
func (mr *MockReviewWriteQueriesMockRecorder) CreateReview(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateReview", reflect.TypeOf((*MockReviewWriteQueries)(nil).CreateReview), ctx, db, arg)
}

// ReviewExistsForBooking mocks base method.
func (m *MockReviewWriteQueries) ReviewExistsForBooking(ctx context.Context, db db.DBTX, bookingID uuid.UUID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReviewExistsForBooking", ctx, db, bookingID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReviewExistsForBooking indicates an expected call of ReviewExistsForBooking.
func (mr *MockReviewWriteQueriesMockRecorder) ReviewExistsForBooking(ctx, db, bookingID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReviewExistsForBooking", reflect.TypeOf((*MockReviewWriteQueries)(nil).ReviewExistsForBooking), ctx, db, bookingID)
}

// MockBookingWriteQueries is a mock of BookingWriteQueries interface.
type MockBookingWriteQueries struct {
	ctrl     *gomock.Controller
	recorder *MockBookingWriteQueriesMockRecorder
	isgomock struct{}
}

// MockBookingWriteQueriesMockRecorder is the mock recorder for MockBookingWriteQueries.
type MockBookingWriteQueriesMockRecorder struct {
	mock *MockBookingWriteQueries
}

// NewMockBookingWriteQueries creates a new mock instance.
func NewMockBookingWriteQueries(ctrl *gomock.Controller) *MockBookingWriteQueries {
	mock := &MockBookingWriteQueries{ctrl: ctrl}
	mock.recorder = &MockBookingWriteQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBookingWriteQueries) EXPECT() *MockBookingWriteQueriesMockRecorder {
	return m.recorder
}

// CountUpcomingBookingsForVenue mocks base method.
func (m *MockBookingWriteQueries) CountUpcomingBookingsForVenue(ctx context.Context, db db.DBTX, venueID uuid.UUID, from pgtype.Date) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountUpcomingBookingsForVenue", ctx, db, venueID, from)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountUpcomingBookingsForVenue indicates an expected call of CountUpcomingBookingsForVenue.
func (mr *MockBookingWriteQueriesMockRecorder) CountUpcomingBookingsForVenue(ctx, db, venueID, from any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountUpcomingBookingsForVenue", reflect.TypeOf((*MockBookingWriteQueries)(nil).CountUpcomingBookingsForVenue), ctx, db, venueID, from)
}

// CreateBooking mocks base method.
func (m *MockBookingWriteQueries) CreateBooking(ctx context.Context, db db.DBTX, r query.BookingRow) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateBooking", ctx, db, r)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateBooking indicates an expected call of CreateBooking.
func (mr *MockBookingWriteQueriesMockRecorder) CreateBooking(ctx, db, r any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateBooking", reflect.TypeOf((*MockBookingWriteQueries)(nil).CreateBooking), ctx, db, r)
}

// GetBookingByID mocks base method.
func (m *MockBookingWriteQueries) GetBookingByID(ctx context.Context, db db.DBTX, id uuid.UUID) (query.BookingRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBookingByID", ctx, db, id)
	ret0, _ := ret[0].(query.BookingRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBookingByID indicates an expected call of GetBookingByID.
func (mr *MockBookingWriteQueriesMockRecorder) GetBookingByID(ctx, db, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBookingByID", reflect.TypeOf((*MockBookingWriteQueries)(nil).GetBookingByID), ctx, db, id)
}

// ListHeldSlots mocks base method.
func (m *MockBookingWriteQueries) ListHeldSlots(ctx context.Context, db db.DBTX, venueID uuid.UUID, date pgtype.Date) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListHeldSlots", ctx, db, venueID, date)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListHeldSlots indicates an expected call of ListHeldSlots.
func (mr *MockBookingWriteQueriesMockRecorder) ListHeldSlots(ctx, db, venueID, date any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListHeldSlots", reflect.TypeOf((*MockBookingWriteQueries)(nil).ListHeldSlots), ctx, db, venueID, date)
}

// UpdateBookingStatus mocks base method.
func (m *MockBookingWriteQueries) UpdateBookingStatus(ctx context.Context, db db.DBTX, id uuid.UUID, status string, at time.Time, from []string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateBookingStatus", ctx, db, id, status, at, from)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateBookingStatus indicates an expected call of UpdateBookingStatus.
func (mr *MockBookingWriteQueriesMockRecorder) UpdateBookingStatus(ctx, db, id, status, at, from any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateBookingStatus", reflect.TypeOf((*MockBookingWriteQueries)(nil).UpdateBookingStatus), ctx, db, id, status, at, from)
}
