package service_test

import (
	"errors"
	"testing"

	"sustainability-portal-backend/internal/database/models"
	apperrors "sustainability-portal-backend/internal/errors"
	"sustainability-portal-backend/internal/mocks"
	"sustainability-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type IdentityResolverTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockComponentRepo *mocks.MockComponentRepositoryInterface
	resolver          *service.IdentityResolver
}

func (suite *IdentityResolverTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockComponentRepo = mocks.NewMockComponentRepositoryInterface(suite.ctrl)
	suite.resolver = service.NewIdentityResolver(suite.mockComponentRepo)
}

func (suite *IdentityResolverTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *IdentityResolverTestSuite) TestResolve_ExistingComponent() {
	id := uuid.New()
	component := &models.ComponentDetail{ComponentCode: "C1", Version: 3}
	component.ID = id

	suite.mockComponentRepo.EXPECT().GetLatestActiveByCode("C1").Return(component, nil)

	identity, err := suite.resolver.Resolve("C1")

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), identity.Exists)
	assert.Equal(suite.T(), 3, identity.CurrentVersion)
	assert.Equal(suite.T(), id, identity.ComponentID)
}

func (suite *IdentityResolverTestSuite) TestResolve_UnknownComponent_NotAnError() {
	suite.mockComponentRepo.EXPECT().GetLatestActiveByCode("C404").Return(nil, gorm.ErrRecordNotFound)

	identity, err := suite.resolver.Resolve("C404")

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), identity.Exists)
	assert.Equal(suite.T(), 0, identity.CurrentVersion)
}

func (suite *IdentityResolverTestSuite) TestResolve_EmptyCode_ValidationError() {
	identity, err := suite.resolver.Resolve("")

	assert.Nil(suite.T(), identity)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *IdentityResolverTestSuite) TestResolve_RepositoryFailure() {
	suite.mockComponentRepo.EXPECT().GetLatestActiveByCode("C1").Return(nil, errors.New("connection reset"))

	identity, err := suite.resolver.Resolve("C1")

	assert.Nil(suite.T(), identity)
	assert.Error(suite.T(), err)
}

func TestIdentityResolverTestSuite(t *testing.T) {
	suite.Run(t, new(IdentityResolverTestSuite))
}
