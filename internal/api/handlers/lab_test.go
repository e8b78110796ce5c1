package handlers_test

import (
	"net/http"
	"testing"

	"glass-connect-backend/internal/api/handlers"
	"glass-connect-backend/internal/auth"
	apperrors "glass-connect-backend/internal/errors"
	"glass-connect-backend/internal/mocks"
	"glass-connect-backend/internal/schema"
	"glass-connect-backend/internal/service"
	"glass-connect-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LabHandlerTestSuite defines the test suite for LabHandler
type LabHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockLabSvc *mocks.MockLabServiceInterface
	http       *testutils.HTTPTestSuite
	userID     uuid.UUID
}

func (suite *LabHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLabSvc = mocks.NewMockLabServiceInterface(suite.ctrl)
	suite.userID = uuid.New()

	handler := handlers.NewLabHandler(suite.mockLabSvc)

	suite.http = testutils.SetupHTTPTest(suite.T())
	labs := suite.http.API.Group("/labs")
	labs.GET("", handler.ListLabs)
	labs.POST("", handler.CreateLab)
	labs.GET("/:id", handler.GetLab)
	labs.PATCH("/:id", handler.UpdateLab)
	labs.DELETE("/:id", handler.DeleteLab)
}

func (suite *LabHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LabHandlerTestSuite) asOwner() testutils.RequestOption {
	return testutils.WithToken(suite.http.Token(suite.T(), suite.userID, false))
}

func (suite *LabHandlerTestSuite) TestListLabs_DefaultPagination() {
	suite.mockLabSvc.EXPECT().
		List(nil, service.LabListParams{Page: 1, PageSize: 20}).
		Return(&service.LabListResponse{Labs: []schema.Lab{{ID: 1}}, Total: 1, Page: 1, PageSize: 20}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/labs", nil)

	var got service.LabListResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), int64(1), got.Total)
	assert.Equal(suite.T(), 20, got.PageSize)
	assert.Contains(suite.T(), w.Body.String(), `"pageSize":20`)
}

func (suite *LabHandlerTestSuite) TestListLabs_Filters() {
	suite.mockLabSvc.EXPECT().
		List(gomock.Any(), service.LabListParams{Query: "protein", Status: "premier", ErcCode: "LS1", Mine: true, Page: 2, PageSize: 5}).
		DoAndReturn(func(actor *auth.Principal, _ service.LabListParams) (*service.LabListResponse, error) {
			assert.Equal(suite.T(), suite.userID, actor.UserID)
			return &service.LabListResponse{Labs: []schema.Lab{}, Page: 2, PageSize: 5}, nil
		})

	w := suite.http.MakeRequest(http.MethodGet, "/labs?q=+protein+&status=premier&erc=ls1&mine=true&page=2&page_size=5", nil, suite.asOwner())

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *LabHandlerTestSuite) TestListLabs_InvalidFilters() {
	w := suite.http.MakeRequest(http.MethodGet, "/labs?status=gold", nil)
	testutils.AssertValidationIssues(suite.T(), w, "status")

	w = suite.http.MakeRequest(http.MethodGet, "/labs?erc=XX9", nil)
	testutils.AssertValidationIssues(suite.T(), w, "erc")
}

func (suite *LabHandlerTestSuite) TestCreateLab_Success() {
	suite.mockLabSvc.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(actor *auth.Principal, in *schema.LabInput) (*schema.Lab, error) {
			assert.Equal(suite.T(), suite.userID, actor.UserID)
			assert.Equal(suite.T(), "Protein Lab", in.Name)
			return &schema.Lab{ID: 7, LabInput: *in}, nil
		})

	w := suite.http.MakeRequest(http.MethodPost, "/labs", map[string]interface{}{"name": "Protein Lab"}, suite.asOwner())

	var got schema.Lab
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	assert.Equal(suite.T(), int64(7), got.ID)
}

func (suite *LabHandlerTestSuite) TestCreateLab_ValidationError() {
	issues := schema.Issues{{Path: "name", Message: "must not be blank"}, {Path: "priorityEquipment", Message: "must contain at most 3 items"}}
	suite.mockLabSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, issues.Err())

	w := suite.http.MakeRequest(http.MethodPost, "/labs", map[string]interface{}{"name": " "}, suite.asOwner())

	testutils.AssertValidationIssues(suite.T(), w, "name", "priorityEquipment")
}

func (suite *LabHandlerTestSuite) TestCreateLab_Errors() {
	w := suite.http.MakeRequest(http.MethodPost, "/labs", "not an object", suite.asOwner())
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "validation failed")

	suite.mockLabSvc.EXPECT().Create(nil, gomock.Any()).Return(nil, apperrors.ErrMissingCredentials)
	w = suite.http.MakeRequest(http.MethodPost, "/labs", map[string]interface{}{"name": "Protein Lab"})
	testutils.AssertErrorResponse(suite.T(), w, http.StatusUnauthorized, "authentication required")

	suite.mockLabSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrRestrictedFieldWrite)
	w = suite.http.MakeRequest(http.MethodPost, "/labs", map[string]interface{}{"name": "Protein Lab", "labStatus": "premier"}, suite.asOwner())
	testutils.AssertErrorResponse(suite.T(), w, http.StatusForbidden, "administrators")
}

func (suite *LabHandlerTestSuite) TestGetLab() {
	w := suite.http.MakeRequest(http.MethodGet, "/labs/abc", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid lab ID")

	suite.mockLabSvc.EXPECT().GetByID(nil, int64(9)).Return(nil, apperrors.ErrLabNotFound)
	w = suite.http.MakeRequest(http.MethodGet, "/labs/9", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "lab not found")

	suite.mockLabSvc.EXPECT().GetByID(nil, int64(3)).Return(&schema.Lab{ID: 3, LabInput: schema.LabInput{Name: "Protein Lab"}}, nil)
	w = suite.http.MakeRequest(http.MethodGet, "/labs/3", nil)
	var got schema.Lab
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), "Protein Lab", got.Name)
}

func (suite *LabHandlerTestSuite) TestUpdateLab() {
	suite.mockLabSvc.EXPECT().Update(gomock.Any(), int64(3), gomock.Any()).
		DoAndReturn(func(_ *auth.Principal, _ int64, update *schema.LabUpdate) (*schema.Lab, error) {
			assert.True(suite.T(), update.LabManager.Present)
			assert.False(suite.T(), update.LabManager.Valid)
			return nil, apperrors.ErrNotOwner
		})

	w := suite.http.MakeRequest(http.MethodPatch, "/labs/3", map[string]interface{}{"labManager": nil}, suite.asOwner())

	testutils.AssertErrorResponse(suite.T(), w, http.StatusForbidden, "owner")
}

func (suite *LabHandlerTestSuite) TestDeleteLab() {
	suite.mockLabSvc.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/labs/3", nil, suite.asOwner())

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *LabHandlerTestSuite) TestInternalErrorHidesDetails() {
	suite.mockLabSvc.EXPECT().Delete(gomock.Any(), int64(3)).Return(assert.AnError)

	w := suite.http.MakeRequest(http.MethodDelete, "/labs/3", nil, suite.asOwner())

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Internal server error")
	assert.NotContains(suite.T(), w.Body.String(), assert.AnError.Error())
}

func TestLabHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LabHandlerTestSuite))
}
