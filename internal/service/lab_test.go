package service_test

import (
	"errors"
	"testing"
	"time"

	"glass-connect-backend/internal/auth"
	"glass-connect-backend/internal/database/models"
	apperrors "glass-connect-backend/internal/errors"
	"glass-connect-backend/internal/mocks"
	"glass-connect-backend/internal/repository"
	"glass-connect-backend/internal/schema"
	"glass-connect-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T {
	return &v
}

func newPrincipal(admin bool) *auth.Principal {
	return &auth.Principal{UserID: uuid.New(), Email: "user@example.org", Admin: admin}
}

func storedLab(id int64, owner *auth.Principal) *models.Lab {
	lab := &models.Lab{
		BaseModel: models.BaseModel{ID: id, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name:      "Protein Lab",
		LabStatus: string(schema.LabStatusListed),
		IsVisible: true,
	}
	if owner != nil {
		lab.OwnerUserID = &owner.UserID
	}
	return lab
}

type LabServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRepo   *mocks.MockLabRepositoryInterface
	labService *service.LabService
	owner      *auth.Principal
}

func (suite *LabServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockLabRepositoryInterface(suite.ctrl)
	suite.labService = service.NewLabService(suite.mockRepo)
	suite.owner = newPrincipal(false)
}

func (suite *LabServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LabServiceTestSuite) TestCreate_Success() {
	in := &schema.LabInput{Name: "  Protein Lab ", Website: ptr("lab.example")}

	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(lab *models.Lab) error {
		assert.Equal(suite.T(), "Protein Lab", lab.Name)
		assert.Equal(suite.T(), suite.owner.UserID, *lab.OwnerUserID)
		assert.Equal(suite.T(), string(schema.LabStatusListed), lab.LabStatus)
		assert.True(suite.T(), lab.IsVisible)
		lab.ID = 7
		return nil
	})

	lab, err := suite.labService.Create(suite.owner, in)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(7), lab.ID)
	assert.Equal(suite.T(), "https://lab.example", *lab.Website)
	assert.Equal(suite.T(), suite.owner.UserID.String(), *lab.OwnerUserID)
	assert.NotNil(suite.T(), lab.Photos)
}

func (suite *LabServiceTestSuite) TestCreate_RequiresActor() {
	_, err := suite.labService.Create(nil, &schema.LabInput{Name: "Lab"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrMissingCredentials)
}

func (suite *LabServiceTestSuite) TestCreate_ValidationError() {
	_, err := suite.labService.Create(suite.owner, &schema.LabInput{Name: " ", ContactEmail: ptr("nope")})

	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	paths := schema.Issues(apperrors.IssuesOf(err)).Paths()
	assert.Equal(suite.T(), []string{"name", "contactEmail"}, paths)
}

func (suite *LabServiceTestSuite) TestCreate_VerificationRequiresAdmin() {
	in := &schema.LabInput{Name: "Lab", LabStatus: schema.LabStatusPremier}
	_, err := suite.labService.Create(suite.owner, in)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRestrictedFieldWrite)

	admin := newPrincipal(true)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)
	lab, err := suite.labService.Create(admin, &schema.LabInput{Name: "Lab", LabStatus: schema.LabStatusPremier, AuditPassed: true})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), schema.LabStatusPremier, lab.LabStatus)
}

func (suite *LabServiceTestSuite) TestCreate_ForeignOwner() {
	in := &schema.LabInput{Name: "Lab", OwnerUserID: ptr(uuid.NewString())}
	_, err := suite.labService.Create(suite.owner, in)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotOwner)
}

func (suite *LabServiceTestSuite) TestCreate_RepositoryError() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(errors.New("db down"))

	_, err := suite.labService.Create(suite.owner, &schema.LabInput{Name: "Lab"})
	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to create lab")
}

func (suite *LabServiceTestSuite) TestGetByID() {
	suite.Run("visible", func() {
		suite.mockRepo.EXPECT().GetByID(int64(1)).Return(storedLab(1, suite.owner), nil)
		lab, err := suite.labService.GetByID(nil, 1)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Protein Lab", lab.Name)
	})

	suite.Run("not found", func() {
		suite.mockRepo.EXPECT().GetByID(int64(2)).Return(nil, gorm.ErrRecordNotFound)
		_, err := suite.labService.GetByID(nil, 2)
		assert.ErrorIs(suite.T(), err, apperrors.ErrLabNotFound)
	})

	suite.Run("hidden", func() {
		hidden := storedLab(3, suite.owner)
		hidden.IsVisible = false
		suite.mockRepo.EXPECT().GetByID(int64(3)).Return(hidden, nil).Times(3)

		_, err := suite.labService.GetByID(newPrincipal(false), 3)
		assert.ErrorIs(suite.T(), err, apperrors.ErrLabNotFound)

		_, err = suite.labService.GetByID(suite.owner, 3)
		assert.NoError(suite.T(), err)

		_, err = suite.labService.GetByID(newPrincipal(true), 3)
		assert.NoError(suite.T(), err)
	})
}

func (suite *LabServiceTestSuite) TestList() {
	suite.Run("public", func() {
		filter := repository.LabFilter{Query: "bio", ErcCode: "LS1", VisibleOnly: true}
		suite.mockRepo.EXPECT().List(filter, 10, 20).Return([]models.Lab{*storedLab(1, nil)}, int64(21), nil)

		resp, err := suite.labService.List(nil, service.LabListParams{Query: "bio", ErcCode: "LS1", Page: 3, PageSize: 10})
		require.NoError(suite.T(), err)
		assert.Len(suite.T(), resp.Labs, 1)
		assert.Equal(suite.T(), int64(21), resp.Total)
		assert.Equal(suite.T(), 3, resp.Page)
		assert.Equal(suite.T(), 10, resp.PageSize)
	})

	suite.Run("defaults and clamp", func() {
		suite.mockRepo.EXPECT().List(repository.LabFilter{VisibleOnly: true}, 20, 0).Return(nil, int64(0), nil)
		resp, err := suite.labService.List(nil, service.LabListParams{})
		require.NoError(suite.T(), err)
		assert.NotNil(suite.T(), resp.Labs)

		suite.mockRepo.EXPECT().List(repository.LabFilter{VisibleOnly: true}, 100, 0).Return(nil, int64(0), nil)
		resp, err = suite.labService.List(nil, service.LabListParams{Page: -1, PageSize: 500})
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 100, resp.PageSize)
	})

	suite.Run("mine", func() {
		filter := repository.LabFilter{OwnerUserID: &suite.owner.UserID}
		suite.mockRepo.EXPECT().List(filter, 20, 0).Return([]models.Lab{}, int64(0), nil)
		_, err := suite.labService.List(suite.owner, service.LabListParams{Mine: true})
		assert.NoError(suite.T(), err)

		_, err = suite.labService.List(nil, service.LabListParams{Mine: true})
		assert.ErrorIs(suite.T(), err, apperrors.ErrMissingCredentials)
	})

	suite.Run("admin sees hidden", func() {
		suite.mockRepo.EXPECT().List(repository.LabFilter{}, 20, 0).Return([]models.Lab{}, int64(0), nil)
		_, err := suite.labService.List(newPrincipal(true), service.LabListParams{})
		assert.NoError(suite.T(), err)
	})
}

func (suite *LabServiceTestSuite) TestUpdate_MergesAndRevalidates() {
	stored := storedLab(5, suite.owner)
	stored.Equipment = []string{"PCR"}
	suite.mockRepo.EXPECT().GetByID(int64(5)).Return(stored, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(lab *models.Lab) error {
		assert.Equal(suite.T(), "Renamed", lab.Name)
		assert.Equal(suite.T(), []string{"PCR"}, []string(lab.Equipment))
		return nil
	})

	lab, err := suite.labService.Update(suite.owner, 5, &schema.LabUpdate{Name: ptr("Renamed")})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Renamed", lab.Name)
	assert.Equal(suite.T(), []string{"PCR"}, lab.Equipment)
}

func (suite *LabServiceTestSuite) TestUpdate_ClearsNullableMember() {
	stored := storedLab(5, suite.owner)
	stored.LabManager = ptr("Ada")
	suite.mockRepo.EXPECT().GetByID(int64(5)).Return(stored, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	lab, err := suite.labService.Update(suite.owner, 5, &schema.LabUpdate{LabManager: schema.Null[string]()})

	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), lab.LabManager)
}

func (suite *LabServiceTestSuite) TestUpdate_Rejections() {
	suite.Run("empty", func() {
		_, err := suite.labService.Update(suite.owner, 5, &schema.LabUpdate{})
		assert.True(suite.T(), apperrors.IsValidation(err))
	})

	suite.Run("not owner", func() {
		suite.mockRepo.EXPECT().GetByID(int64(5)).Return(storedLab(5, suite.owner), nil)
		_, err := suite.labService.Update(newPrincipal(false), 5, &schema.LabUpdate{Name: ptr("X")})
		assert.ErrorIs(suite.T(), err, apperrors.ErrNotOwner)
	})

	suite.Run("verification field", func() {
		suite.mockRepo.EXPECT().GetByID(int64(5)).Return(storedLab(5, suite.owner), nil)
		_, err := suite.labService.Update(suite.owner, 5, &schema.LabUpdate{AuditPassed: ptr(true)})
		assert.ErrorIs(suite.T(), err, apperrors.ErrRestrictedFieldWrite)
	})

	suite.Run("ownership transfer", func() {
		suite.mockRepo.EXPECT().GetByID(int64(5)).Return(storedLab(5, suite.owner), nil)
		_, err := suite.labService.Update(suite.owner, 5, &schema.LabUpdate{OwnerUserID: ptr(uuid.NewString())})
		assert.ErrorIs(suite.T(), err, apperrors.ErrNotOwner)
	})

	suite.Run("missing", func() {
		suite.mockRepo.EXPECT().GetByID(int64(6)).Return(nil, gorm.ErrRecordNotFound)
		_, err := suite.labService.Update(suite.owner, 6, &schema.LabUpdate{Name: ptr("X")})
		assert.ErrorIs(suite.T(), err, apperrors.ErrLabNotFound)
	})
}

func (suite *LabServiceTestSuite) TestUpdate_AdminVerifies() {
	admin := newPrincipal(true)
	suite.mockRepo.EXPECT().GetByID(int64(5)).Return(storedLab(5, suite.owner), nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	status := schema.LabStatusVerifiedActive
	lab, err := suite.labService.Update(admin, 5, &schema.LabUpdate{
		LabStatus:     &status,
		AuditPassed:   ptr(true),
		AuditPassedAt: ptr("2025-03-01T10:00:00Z"),
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), schema.LabStatusVerifiedActive, lab.LabStatus)
	assert.Equal(suite.T(), "2025-03-01T10:00:00Z", *lab.AuditPassedAt)
	assert.Equal(suite.T(), suite.owner.UserID.String(), *lab.OwnerUserID)
}

func (suite *LabServiceTestSuite) TestDelete() {
	suite.Run("owner", func() {
		suite.mockRepo.EXPECT().GetByID(int64(5)).Return(storedLab(5, suite.owner), nil)
		suite.mockRepo.EXPECT().Delete(int64(5)).Return(nil)
		assert.NoError(suite.T(), suite.labService.Delete(suite.owner, 5))
	})

	suite.Run("not owner", func() {
		suite.mockRepo.EXPECT().GetByID(int64(5)).Return(storedLab(5, suite.owner), nil)
		assert.ErrorIs(suite.T(), suite.labService.Delete(newPrincipal(false), 5), apperrors.ErrNotOwner)
	})

	suite.Run("anonymous", func() {
		assert.ErrorIs(suite.T(), suite.labService.Delete(nil, 5), apperrors.ErrMissingCredentials)
	})

	suite.Run("unowned lab needs admin", func() {
		suite.mockRepo.EXPECT().GetByID(int64(8)).Return(storedLab(8, nil), nil).Times(2)
		assert.ErrorIs(suite.T(), suite.labService.Delete(suite.owner, 8), apperrors.ErrNotOwner)

		suite.mockRepo.EXPECT().Delete(int64(8)).Return(nil)
		assert.NoError(suite.T(), suite.labService.Delete(newPrincipal(true), 8))
	})
}

func TestLabServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LabServiceTestSuite))
}
