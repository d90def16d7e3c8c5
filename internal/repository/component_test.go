//go:build integration
// +build integration

package repository

import (
	"testing"

	"sustainability-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ComponentRepositoryTestSuite tests the ComponentRepository
type ComponentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ComponentRepository
	factory       *testutils.ComponentFactory
}

func (suite *ComponentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewComponentRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewComponentFactory()
}

func (suite *ComponentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *ComponentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *ComponentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGetLatestActiveByCode tests that the highest active version wins
func (suite *ComponentRepositoryTestSuite) TestGetLatestActiveByCode() {
	v1 := suite.factory.WithVersion("C1", 1)
	v2 := suite.factory.WithVersion("C1", 2)
	v3 := suite.factory.WithVersion("C1", 3)
	v3.IsActive = false
	suite.NoError(suite.baseTestSuite.DB.Create(v1).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(v2).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(v3).Error)

	latest, err := suite.repo.GetLatestActiveByCode("C1")

	suite.NoError(err)
	suite.Equal(2, latest.Version)
}

// TestGetByCodeAndVersion tests addressing one historical version
func (suite *ComponentRepositoryTestSuite) TestGetByCodeAndVersion() {
	v1 := suite.factory.WithVersion("C1", 1)
	v2 := suite.factory.WithVersion("C1", 2)
	suite.NoError(suite.baseTestSuite.DB.Create(v1).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(v2).Error)

	found, err := suite.repo.GetByCodeAndVersion("C1", 1)

	suite.NoError(err)
	suite.Equal(v1.ID, found.ID)
}

// TestGetVersionsByCode tests the full history ordered newest first
func (suite *ComponentRepositoryTestSuite) TestGetVersionsByCode() {
	v1 := suite.factory.WithVersion("C1", 1)
	v2 := suite.factory.WithVersion("C1", 2)
	other := suite.factory.WithCode("C2")
	suite.NoError(suite.baseTestSuite.DB.Create(v1).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(v2).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(other).Error)

	versions, err := suite.repo.GetVersionsByCode("C1")

	suite.NoError(err)
	suite.Len(versions, 2)
	suite.Equal(2, versions[0].Version)
	suite.Equal(1, versions[1].Version)
}

// TestFindActiveByDescription tests the normalized description match
func (suite *ComponentRepositoryTestSuite) TestFindActiveByDescription() {
	c := suite.factory.WithCode("C1")
	c.Description = "Clear PET Bottle 500ml"
	suite.NoError(suite.baseTestSuite.DB.Create(c).Error)

	found, err := suite.repo.FindActiveByDescription("  clear pet bottle 500ML ")

	suite.NoError(err)
	suite.Equal(c.ID, found.ID)
}

// TestDeactivate tests marking all versions of a code inactive
func (suite *ComponentRepositoryTestSuite) TestDeactivate() {
	v1 := suite.factory.WithVersion("C1", 1)
	v2 := suite.factory.WithVersion("C1", 2)
	suite.NoError(suite.baseTestSuite.DB.Create(v1).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(v2).Error)

	suite.NoError(suite.repo.Deactivate("C1", "tester"))

	latest, err := suite.repo.GetLatestActiveByCode("C1")
	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(latest)

	// History rows survive deactivation.
	versions, err := suite.repo.GetVersionsByCode("C1")
	suite.NoError(err)
	suite.Len(versions, 2)
	suite.Equal("tester", versions[0].UpdatedBy)
}

// Run the test suite
func TestComponentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ComponentRepositoryTestSuite))
}
