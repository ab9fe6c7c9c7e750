//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"groundio/internal/domain/user"
	"groundio/internal/handler/api"
	reqdto "groundio/internal/handler/dto/request"
	resdto "groundio/internal/handler/dto/response"
	"groundio/internal/pkg/errs"
	"groundio/internal/usecase/commands"
	"groundio/internal/usecase/queries"
	"groundio/tests/common/builder"
	"groundio/tests/common/httptest"
	"groundio/tests/common/testutil"
	commandsmock "groundio/tests/mock/commands"
	queriesmock "groundio/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProfileHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProfileCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.ProfileHandler
	userID       uuid.UUID
}

func (s *ProfileHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProfileCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewProfileHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleMerchant)
		c.Next()
	}

	s.router.GET("/profile", authMiddleware, s.handler.Get)
	s.router.PUT("/profile", authMiddleware, s.handler.Update)
	s.router.PUT("/profile/merchant", authMiddleware, s.handler.UpdateMerchant)
}

func (s *ProfileHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProfileHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProfileHandlerTestSuite))
}

func (s *ProfileHandlerTestSuite) TestGet() {
	s.Run("success: never echoes the device token", func() {
		view := builder.NewUserBuilder().WithID(s.userID).BuildReadModel()
		token := "fcm-token"
		view.DeviceToken = &token
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/profile", nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(true, response["has_device_token"])
		s.NotContains(rec.Body.String(), "fcm-token")
	})

	s.Run("error: 404 for a deactivated account", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(nil, queries.ErrUserInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/profile", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Profile not found")
	})
}

func (s *ProfileHandlerTestSuite) TestUpdate() {
	name := "Asha R"
	phone := "+91 98450-12345"
	reqBody := reqdto.UpdateProfileRequest{DisplayName: &name, Phone: &phone}

	s.Run("success: returns the refreshed profile", func() {
		normalized := "+919845012345"
		view := builder.NewUserBuilder().WithID(s.userID).WithDisplayName(name).WithPhone(normalized).BuildReadModel()
		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), s.userID, commands.UpdateProfileInput{DisplayName: &name, Phone: &phone}).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/profile", reqBody, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(name, response.DisplayName)
		s.Equal(normalized, *response.Phone)
	})

	s.Run("error: 400 on oversized fields", func() {
		for _, mutate := range []func(map[string]any){
			testutil.Field("display_name", strings.Repeat("a", 81)),
			testutil.Field("phone", strings.Repeat("9", 21)),
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/profile", testutil.DtoMap(s.T(), reqBody, mutate), "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
		}
	})

	s.Run("error: 400 with the broken rule as detail", func() {
		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), s.userID, gomock.Any()).
			Return(errs.Wrap(errs.Mark(errs.New("phone must have 10 to 15 digits"), errs.ErrDomainValidation), "update profile")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/profile", reqBody, "")
		httptest.AssertErrorDetail(s.T(), rec, http.StatusBadRequest, "phone must have 10 to 15 digits")
	})
}

func (s *ProfileHandlerTestSuite) TestUpdateMerchant() {
	reqBody := reqdto.MerchantProfileRequest{
		BusinessName:    "Green Turf Sports LLP",
		BusinessAddress: "80 Feet Road, Koramangala",
		City:            "Bengaluru",
		PAN:             "ABCDE1234F",
		GSTIN:           "29ABCDE1234F1Z5",
	}

	s.Run("success: returns business profile pending verification", func() {
		view := builder.NewUserBuilder().WithID(s.userID).AsMerchant().BuildReadModel()
		view.Business = &queries.BusinessProfileView{
			BusinessName:       reqBody.BusinessName,
			PAN:                reqBody.PAN,
			VerificationStatus: string(user.VerificationPending),
		}
		s.mockCommands.EXPECT().UpdateMerchantProfile(gomock.Any(), s.userID, reqBody.ToInput()).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/profile/merchant", reqBody, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.Business)
		s.Equal("pending", response.Business.VerificationStatus)
	})

	s.Run("error: 400 when PAN is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/profile/merchant",
			testutil.DtoMap(s.T(), reqBody, testutil.Field("pan", nil)), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 403 for customers", func() {
		s.mockCommands.EXPECT().UpdateMerchantProfile(gomock.Any(), s.userID, gomock.Any()).Return(errs.ErrMerchantOnly).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/profile/merchant", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Merchant account required")
	})
}
