//go:build integration
// +build integration

package repository

import (
	"testing"

	"sustainability-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SkuRepositoryTestSuite tests the SkuRepository
type SkuRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SkuRepository
	factory       *testutils.SkuFactory
}

func (suite *SkuRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSkuRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewSkuFactory()
}

func (suite *SkuRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *SkuRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *SkuRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGetByCodeAndPeriod tests that the same code in two periods resolves distinctly
func (suite *SkuRepositoryTestSuite) TestGetByCodeAndPeriod() {
	older := suite.factory.WithPeriod("SKU-100", "2024")
	older.SkuDescription = "Bottled water 2024"
	newer := suite.factory.WithPeriod("SKU-100", "2025")
	newer.SkuDescription = "Bottled water 2025"
	suite.NoError(suite.baseTestSuite.DB.Create(older).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(newer).Error)

	found, err := suite.repo.GetByCodeAndPeriod("SKU-100", "2024")

	suite.NoError(err)
	suite.Equal(older.ID, found.ID)
}

// TestGetLatestByCode tests that the most recent period wins
func (suite *SkuRepositoryTestSuite) TestGetLatestByCode() {
	older := suite.factory.WithPeriod("SKU-100", "2024")
	older.SkuDescription = "Bottled water 2024"
	newer := suite.factory.WithPeriod("SKU-100", "2025")
	newer.SkuDescription = "Bottled water 2025"
	suite.NoError(suite.baseTestSuite.DB.Create(older).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(newer).Error)

	latest, err := suite.repo.GetLatestByCode("SKU-100")

	suite.NoError(err)
	suite.Equal("2025", latest.Period)
}

// TestGetLatestByCodeNotFound tests an unknown code
func (suite *SkuRepositoryTestSuite) TestGetLatestByCodeNotFound() {
	sku, err := suite.repo.GetLatestByCode("SKU-NONE")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(sku)
}

// TestFindActiveByDescription tests the normalized description match
func (suite *SkuRepositoryTestSuite) TestFindActiveByDescription() {
	sku := suite.factory.WithCode("SKU-100")
	sku.SkuDescription = "Bottled Water 500ml"
	suite.NoError(suite.baseTestSuite.DB.Create(sku).Error)

	// Case and surrounding whitespace must not matter.
	found, err := suite.repo.FindActiveByDescription("  bottled water 500ML ")

	suite.NoError(err)
	suite.Equal(sku.ID, found.ID)
}

// TestFindActiveByDescriptionIgnoresInactive tests that inactive rows never match
func (suite *SkuRepositoryTestSuite) TestFindActiveByDescriptionIgnoresInactive() {
	sku := suite.factory.WithCode("SKU-100")
	sku.SkuDescription = "Bottled Water 500ml"
	sku.IsActive = false
	suite.NoError(suite.baseTestSuite.DB.Create(sku).Error)

	found, err := suite.repo.FindActiveByDescription("Bottled Water 500ml")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(found)
}

// TestGetByCM tests the per-CM listing with pagination
func (suite *SkuRepositoryTestSuite) TestGetByCM() {
	a := suite.factory.WithCode("SKU-A")
	b := suite.factory.WithCode("SKU-B")
	c := suite.factory.WithCode("SKU-C")
	c.CMCode = "CM02"
	suite.NoError(suite.baseTestSuite.DB.Create(a).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(b).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(c).Error)

	skus, total, err := suite.repo.GetByCM("CM01", 10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(skus, 2)
	suite.Equal("SKU-A", skus[0].SkuCode)
	suite.Equal("SKU-B", skus[1].SkuCode)
}

// TestUpdate tests persisting attribute changes
func (suite *SkuRepositoryTestSuite) TestUpdate() {
	sku := suite.factory.WithCode("SKU-100")
	suite.NoError(suite.baseTestSuite.DB.Create(sku).Error)

	sku.Site = "Plant B"
	sku.IsApproved = true
	suite.NoError(suite.repo.Update(sku))

	reloaded, err := suite.repo.GetByID(sku.ID)
	suite.NoError(err)
	suite.Equal("Plant B", reloaded.Site)
	suite.True(reloaded.IsApproved)
}

// Run the test suite
func TestSkuRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SkuRepositoryTestSuite))
}
