// Package commandsmock holds gomock mocks for the interfaces in internal/usecase/commands.
// They are kept by hand in mockgen's output shape; `go generate ./internal/usecase/commands`
// replaces this file with mockgen's own output.
package commandsmock

import (
	context "context"
	reflect "reflect"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
	user "groundio/internal/domain/user"
	session "groundio/internal/pkg/session"
	commands "groundio/internal/usecase/commands"
)

// MockAuthCommands is a mock of AuthCommands interface.
type MockAuthCommands struct {
	ctrl     *gomock.Controller
	recorder *MockAuthCommandsMockRecorder
	isgomock struct{}
}

// MockAuthCommandsMockRecorder is the mock recorder for MockAuthCommands.
type MockAuthCommandsMockRecorder struct {
	mock *MockAuthCommands
}

// NewMockAuthCommands creates a new mock instance.
func NewMockAuthCommands(ctrl *gomock.Controller) *MockAuthCommands {
	mock := &MockAuthCommands{ctrl: ctrl}
	mock.recorder = &MockAuthCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuthCommands) EXPECT() *MockAuthCommandsMockRecorder {
	return m.recorder
}

// Login mocks base method.
func (m *MockAuthCommands) Login(ctx context.Context, in commands.LoginInput) (*commands.LoginResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Login", ctx, in)
	ret0, _ := ret[0].(*commands.LoginResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Login indicates an expected call of Login.
func (mr *MockAuthCommandsMockRecorder) Login(ctx, in any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Login", reflect.TypeOf((*MockAuthCommands)(nil).Login), ctx, in)
}

// Logout mocks base method.
func (m *MockAuthCommands) Logout(ctx context.Context, principal session.Principal) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Logout", ctx, principal)
}

// Logout indicates an expected call of Logout.
func (mr *MockAuthCommandsMockRecorder) Logout(ctx, principal any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Logout", reflect.TypeOf((*MockAuthCommands)(nil).Logout), ctx, principal)
}

// RefreshToken mocks base method.
func (m *MockAuthCommands) RefreshToken(ctx context.Context, refreshToken string) (*commands.TokenPair, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RefreshToken", ctx, refreshToken)
	ret0, _ := ret[0].(*commands.TokenPair)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RefreshToken indicates an expected call of RefreshToken.
func (mr *MockAuthCommandsMockRecorder) RefreshToken(ctx, refreshToken any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RefreshToken", reflect.TypeOf((*MockAuthCommands)(nil).RefreshToken), ctx, refreshToken)
}

// Signup mocks base method.
func (m *MockAuthCommands) Signup(ctx context.Context, in commands.SignupInput) (*commands.LoginResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Signup", ctx, in)
	ret0, _ := ret[0].(*commands.LoginResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Signup indicates an expected call of Signup.
func (mr *MockAuthCommandsMockRecorder) Signup(ctx, in any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Signup", reflect.TypeOf((*MockAuthCommands)(nil).Signup), ctx, in)
}

// MockBookingCommands is a mock of BookingCommands interface.
type MockBookingCommands struct {
	ctrl     *gomock.Controller
	recorder *MockBookingCommandsMockRecorder
	isgomock struct{}
}

// MockBookingCommandsMockRecorder is the mock recorder for MockBookingCommands.
type MockBookingCommandsMockRecorder struct {
	mock *MockBookingCommands
}

// NewMockBookingCommands creates a new mock instance.
func NewMockBookingCommands(ctrl *gomock.Controller) *MockBookingCommands {
	mock := &MockBookingCommands{ctrl: ctrl}
	mock.recorder = &MockBookingCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBookingCommands) EXPECT() *MockBookingCommandsMockRecorder {
	return m.recorder
}

// CancelBooking mocks base method.
func (m *MockBookingCommands) CancelBooking(ctx context.Context, bookingID uuid.UUID, actor session.Principal) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CancelBooking", ctx, bookingID, actor)
	ret0, _ := ret[0].(error)
	return ret0
}

// CancelBooking indicates an expected call of CancelBooking.
func (mr *MockBookingCommandsMockRecorder) CancelBooking(ctx, bookingID, actor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CancelBooking", reflect.TypeOf((*MockBookingCommands)(nil).CancelBooking), ctx, bookingID, actor)
}

// CompleteBooking mocks base method.
func (m *MockBookingCommands) CompleteBooking(ctx context.Context, bookingID uuid.UUID, actor session.Principal) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CompleteBooking", ctx, bookingID, actor)
	ret0, _ := ret[0].(error)
	return ret0
}

// CompleteBooking indicates an expected call of CompleteBooking.
func (mr *MockBookingCommandsMockRecorder) CompleteBooking(ctx, bookingID, actor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CompleteBooking", reflect.TypeOf((*MockBookingCommands)(nil).CompleteBooking), ctx, bookingID, actor)
}

// ConfirmBooking mocks base method.
func (m *MockBookingCommands) ConfirmBooking(ctx context.Context, bookingID uuid.UUID, actor session.Principal) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ConfirmBooking", ctx, bookingID, actor)
	ret0, _ := ret[0].(error)
	return ret0
}

// ConfirmBooking indicates an expected call of ConfirmBooking.
func (mr *MockBookingCommandsMockRecorder) ConfirmBooking(ctx, bookingID, actor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ConfirmBooking", reflect.TypeOf((*MockBookingCommands)(nil).ConfirmBooking), ctx, bookingID, actor)
}

// SubmitBooking mocks base method.
func (m *MockBookingCommands) SubmitBooking(ctx context.Context, in commands.SubmitBookingInput) (*commands.SubmitBookingResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SubmitBooking", ctx, in)
	ret0, _ := ret[0].(*commands.SubmitBookingResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SubmitBooking indicates an expected call of SubmitBooking.
func (mr *MockBookingCommandsMockRecorder) SubmitBooking(ctx, in any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SubmitBooking", reflect.TypeOf((*MockBookingCommands)(nil).SubmitBooking), ctx, in)
}

// MockVenueCommands is a mock of VenueCommands interface.
type MockVenueCommands struct {
	ctrl     *gomock.Controller
	recorder *MockVenueCommandsMockRecorder
	isgomock struct{}
}

// MockVenueCommandsMockRecorder is the mock recorder for MockVenueCommands.
type MockVenueCommandsMockRecorder struct {
	mock *MockVenueCommands
}

// NewMockVenueCommands creates a new mock instance.
func NewMockVenueCommands(ctrl *gomock.Controller) *MockVenueCommands {
	mock := &MockVenueCommands{ctrl: ctrl}
	mock.recorder = &MockVenueCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVenueCommands) EXPECT() *MockVenueCommandsMockRecorder {
	return m.recorder
}

// ActivateVenue mocks base method.
func (m *MockVenueCommands) ActivateVenue(ctx context.Context, actor session.Principal, venueID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ActivateVenue", ctx, actor, venueID)
	ret0, _ := ret[0].(error)
	return ret0
}

// ActivateVenue indicates an expected call of ActivateVenue.
func (mr *MockVenueCommandsMockRecorder) ActivateVenue(ctx, actor, venueID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ActivateVenue", reflect.TypeOf((*MockVenueCommands)(nil).ActivateVenue), ctx, actor, venueID)
}

// CreateVenue mocks base method.
func (m *MockVenueCommands) CreateVenue(ctx context.Context, actor session.Principal, in commands.VenueInput) (uuid.UUID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateVenue", ctx, actor, in)
	ret0, _ := ret[0].(uuid.UUID)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateVenue indicates an expected call of CreateVenue.
func (mr *MockVenueCommandsMockRecorder) CreateVenue(ctx, actor, in any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateVenue", reflect.TypeOf((*MockVenueCommands)(nil).CreateVenue), ctx, actor, in)
}

// DeactivateVenue mocks base method.
func (m *MockVenueCommands) DeactivateVenue(ctx context.Context, actor session.Principal, venueID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeactivateVenue", ctx, actor, venueID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeactivateVenue indicates an expected call of DeactivateVenue.
func (mr *MockVenueCommandsMockRecorder) DeactivateVenue(ctx, actor, venueID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeactivateVenue", reflect.TypeOf((*MockVenueCommands)(nil).DeactivateVenue), ctx, actor, venueID)
}

// DeleteVenue mocks base method.
func (m *MockVenueCommands) DeleteVenue(ctx context.Context, actor session.Principal, venueID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteVenue", ctx, actor, venueID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteVenue indicates an expected call of DeleteVenue.
func (mr *MockVenueCommandsMockRecorder) DeleteVenue(ctx, actor, venueID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteVenue", reflect.TypeOf((*MockVenueCommands)(nil).DeleteVenue), ctx, actor, venueID)
}

// UpdateVenue mocks base method.
func (m *MockVenueCommands) UpdateVenue(ctx context.Context, actor session.Principal, venueID uuid.UUID, p commands.VenuePatch) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateVenue", ctx, actor, venueID, p)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateVenue indicates an expected call of UpdateVenue.
func (mr *MockVenueCommandsMockRecorder) UpdateVenue(ctx, actor, venueID, p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateVenue", reflect.TypeOf((*MockVenueCommands)(nil).UpdateVenue), ctx, actor, venueID, p)
}

// MockProfileCommands is a mock of ProfileCommands interface.
type MockProfileCommands struct {
	ctrl     *gomock.Controller
	recorder *MockProfileCommandsMockRecorder
	isgomock struct{}
}

// MockProfileCommandsMockRecorder is the mock recorder for MockProfileCommands.
type MockProfileCommandsMockRecorder struct {
	mock *MockProfileCommands
}

// NewMockProfileCommands creates a new mock instance.
func NewMockProfileCommands(ctrl *gomock.Controller) *MockProfileCommands {
	mock := &MockProfileCommands{ctrl: ctrl}
	mock.recorder = &MockProfileCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockProfileCommands) EXPECT() *MockProfileCommandsMockRecorder {
	return m.recorder
}

// UpdateMerchantProfile mocks base method.
func (m *MockProfileCommands) UpdateMerchantProfile(ctx context.Context, userID uuid.UUID, in user.BusinessInput) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateMerchantProfile", ctx, userID, in)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateMerchantProfile indicates an expected call of UpdateMerchantProfile.
func (mr *MockProfileCommandsMockRecorder) UpdateMerchantProfile(ctx, userID, in any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateMerchantProfile", reflect.TypeOf((*MockProfileCommands)(nil).UpdateMerchantProfile), ctx, userID, in)
}

// UpdateProfile mocks base method.
func (m *MockProfileCommands) UpdateProfile(ctx context.Context, userID uuid.UUID, in commands.UpdateProfileInput) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateProfile", ctx, userID, in)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateProfile indicates an expected call of UpdateProfile.
func (mr *MockProfileCommandsMockRecorder) UpdateProfile(ctx, userID, in any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateProfile", reflect.TypeOf((*MockProfileCommands)(nil).UpdateProfile), ctx, userID, in)
}

// MockReviewCommands is a mock of ReviewCommands interface.
type MockReviewCommands struct {
	ctrl     *gomock.Controller
	recorder *MockReviewCommandsMockRecorder
	isgomock struct{}
}

// MockReviewCommandsMockRecorder is the mock recorder for MockReviewCommands.
type MockReviewCommandsMockRecorder struct {
	mock *MockReviewCommands
}

// NewMockReviewCommands creates a new mock instance.
func NewMockReviewCommands(ctrl *gomock.Controller) *MockReviewCommands {
	mock := &MockReviewCommands{ctrl: ctrl}
	mock.recorder = &MockReviewCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReviewCommands) EXPECT() *MockReviewCommandsMockRecorder {
	return m.recorder
}

// CreateReview mocks base method.
func (m *MockReviewCommands) CreateReview(ctx context.Context, userID uuid.UUID, in commands.CreateReviewInput) (*commands.CreateReviewResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateReview", ctx, userID, in)
	ret0, _ := ret[0].(*commands.CreateReviewResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateReview indicates an expected call of CreateReview.
func (mr *MockReviewCommandsMockRecorder) CreateReview(ctx, userID, in any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateReview", reflect.TypeOf((*MockReviewCommands)(nil).CreateReview), ctx, userID, in)
}
