package service_test

import (
	"errors"
	"testing"

	"sustainability-portal-backend/internal/database/models"
	apperrors "sustainability-portal-backend/internal/errors"
	"sustainability-portal-backend/internal/mocks"
	"sustainability-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type SkuServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockSkuRepo     *mocks.MockSkuRepositoryInterface
	mockMappingRepo *mocks.MockMappingRepositoryInterface
	mockPeriodRepo  *mocks.MockPeriodRepositoryInterface
	mockAuditRepo   *mocks.MockAuditLogRepositoryInterface
	svc             *service.SkuService
	activePeriod    *models.ReportingPeriod
}

func (suite *SkuServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSkuRepo = mocks.NewMockSkuRepositoryInterface(suite.ctrl)
	suite.mockMappingRepo = mocks.NewMockMappingRepositoryInterface(suite.ctrl)
	suite.mockPeriodRepo = mocks.NewMockPeriodRepositoryInterface(suite.ctrl)
	suite.mockAuditRepo = mocks.NewMockAuditLogRepositoryInterface(suite.ctrl)

	audit := service.NewAuditRecorder(suite.mockAuditRepo, nil)
	sync := service.NewMappingSynchronizer(suite.mockMappingRepo, audit, nil)

	suite.svc = service.NewSkuService(
		suite.mockSkuRepo,
		suite.mockMappingRepo,
		suite.mockPeriodRepo,
		sync,
		audit,
		nil,
		validator.New(),
	)
	suite.activePeriod = &models.ReportingPeriod{Period: "2025", IsActive: true}
}

func (suite *SkuServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func skuRow(code, period string) *models.Sku {
	s := &models.Sku{
		SkuCode:           code,
		SkuDescription:    code + " description",
		CMCode:            "CM01",
		Period:            period,
		SkuType:           models.SkuTypeExternal,
		Site:              "Plant A",
		PurchasedQuantity: 1000,
		IsApproved:        true,
		IsActive:          true,
	}
	s.ID = uuid.New()
	return s
}

func (suite *SkuServiceTestSuite) TestCreateSku_DefaultsToActivePeriodAndExternal() {
	suite.mockPeriodRepo.EXPECT().GetActive().Return(suite.activePeriod, nil)
	suite.mockSkuRepo.EXPECT().GetByCodeAndPeriod("SKU-100", "2025").Return(nil, gorm.ErrRecordNotFound)
	suite.mockSkuRepo.EXPECT().FindActiveByDescription("Bottled water 500ml").Return(nil, gorm.ErrRecordNotFound)
	suite.mockSkuRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *models.Sku) error {
		assert.Equal(suite.T(), "2025", s.Period)
		assert.Equal(suite.T(), models.SkuTypeExternal, s.SkuType)
		assert.True(suite.T(), s.IsActive)
		return nil
	})
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	sku, err := suite.svc.CreateSku(&service.SkuCreateRequest{
		SkuCode:        "SKU-100",
		SkuDescription: "Bottled water 500ml",
		CMCode:         "CM01",
		CreatedBy:      "tester",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "SKU-100", sku.SkuCode)
}

func (suite *SkuServiceTestSuite) TestCreateSku_AlreadyExistsForPeriod() {
	suite.mockSkuRepo.EXPECT().GetByCodeAndPeriod("SKU-100", "2025").Return(skuRow("SKU-100", "2025"), nil)

	sku, err := suite.svc.CreateSku(&service.SkuCreateRequest{
		SkuCode:        "SKU-100",
		SkuDescription: "Bottled water 500ml",
		CMCode:         "CM01",
		Period:         "2025",
		CreatedBy:      "tester",
	})

	assert.Nil(suite.T(), sku)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSkuExists)
}

func (suite *SkuServiceTestSuite) TestCreateSku_DescriptionTakenByOtherCode() {
	other := skuRow("SKU-999", "2025")
	suite.mockSkuRepo.EXPECT().GetByCodeAndPeriod("SKU-100", "2025").Return(nil, gorm.ErrRecordNotFound)
	suite.mockSkuRepo.EXPECT().FindActiveByDescription("Bottled water 500ml").Return(other, nil)

	sku, err := suite.svc.CreateSku(&service.SkuCreateRequest{
		SkuCode:        "SKU-100",
		SkuDescription: "Bottled water 500ml",
		CMCode:         "CM01",
		Period:         "2025",
		CreatedBy:      "tester",
	})

	assert.Nil(suite.T(), sku)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSkuDescriptionTaken)
}

func (suite *SkuServiceTestSuite) TestCreateSku_ExternalWithComponents_InsertsMappings() {
	suite.mockPeriodRepo.EXPECT().GetActive().Return(suite.activePeriod, nil)
	suite.mockSkuRepo.EXPECT().GetByCodeAndPeriod("SKU-100", "2025").Return(nil, gorm.ErrRecordNotFound)
	suite.mockSkuRepo.EXPECT().FindActiveByDescription("Bottled water 500ml").Return(nil, gorm.ErrRecordNotFound)
	suite.mockSkuRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockMappingRepo.EXPECT().
		FindByTuple("CM01", "SKU-100", "C1", 1, "2025").
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockMappingRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil).AnyTimes()

	_, err := suite.svc.CreateSku(&service.SkuCreateRequest{
		SkuCode:        "SKU-100",
		SkuDescription: "Bottled water 500ml",
		CMCode:         "CM01",
		Components:     []service.ComponentEntry{{ComponentCode: "C1", Version: 1}},
		CreatedBy:      "tester",
	})

	assert.NoError(suite.T(), err)
}

func (suite *SkuServiceTestSuite) TestUpdateSku_SwitchToInternal_DeletesAllMappings() {
	sku := skuRow("SKU-100", "2025")
	old := []models.SkuComponentMapping{{CMCode: "CM01", SkuCode: "SKU-100", ComponentCode: "C1", Version: 1}}
	old[0].ID = uuid.New()

	suite.mockSkuRepo.EXPECT().GetByCodeAndPeriod("SKU-100", "2025").Return(sku, nil)
	suite.mockSkuRepo.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockMappingRepo.EXPECT().GetByCMAndSku("CM01", "SKU-100").Return(old, nil)
	suite.mockMappingRepo.EXPECT().DeleteByCMAndSku("CM01", "SKU-100").Return(int64(1), nil)
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil).AnyTimes()

	internal := models.SkuTypeInternal
	resp, err := suite.svc.UpdateSku(&service.SkuUpdateRequest{
		SkuCode:    "SKU-100",
		CMCode:     "CM01",
		Period:     "2025",
		SkuType:    &internal,
		Components: []service.ComponentEntry{{ComponentCode: "C1", Version: 1}},
		Reason:     "made in-house now",
		Actor:      "tester",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.SkuTypeInternal, resp.Sku.SkuType)
	assert.Equal(suite.T(), int64(1), resp.Mappings.Deleted.DeletedCount)
	assert.Nil(suite.T(), resp.Mappings.Inserted)
}

func (suite *SkuServiceTestSuite) TestUpdateSku_NilComponents_NoMappingTransition() {
	sku := skuRow("SKU-100", "2025")
	suite.mockSkuRepo.EXPECT().GetByCodeAndPeriod("SKU-100", "2025").Return(sku, nil)
	suite.mockSkuRepo.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil)
	// No mapping repository calls expected.

	site := "Plant B"
	resp, err := suite.svc.UpdateSku(&service.SkuUpdateRequest{
		SkuCode: "SKU-100",
		CMCode:  "CM01",
		Period:  "2025",
		Site:    &site,
		Actor:   "tester",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Plant B", resp.Sku.Site)
	assert.Nil(suite.T(), resp.Mappings)
}

func (suite *SkuServiceTestSuite) TestUpdateSku_InvalidSkuType() {
	sku := skuRow("SKU-100", "2025")
	suite.mockSkuRepo.EXPECT().GetByCodeAndPeriod("SKU-100", "2025").Return(sku, nil)

	bad := models.SkuType("hybrid")
	resp, err := suite.svc.UpdateSku(&service.SkuUpdateRequest{
		SkuCode: "SKU-100",
		CMCode:  "CM01",
		Period:  "2025",
		SkuType: &bad,
		Actor:   "tester",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidSkuType)
}

func (suite *SkuServiceTestSuite) TestUpdateSku_NotFound() {
	suite.mockSkuRepo.EXPECT().GetByCodeAndPeriod("SKU-404", "2025").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.UpdateSku(&service.SkuUpdateRequest{
		SkuCode: "SKU-404",
		CMCode:  "CM01",
		Period:  "2025",
		Actor:   "tester",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSkuNotFound)
}

func (suite *SkuServiceTestSuite) TestCopyToPeriod_UnknownTargetPeriod() {
	suite.mockPeriodRepo.EXPECT().GetByPeriod("2026").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.CopySkusToPeriod(&service.CopyToPeriodRequest{
		CMCode:       "CM01",
		TargetPeriod: "2026",
		SkuCodes:     []string{"SKU-100"},
		Actor:        "tester",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPeriodNotFound)
}

func (suite *SkuServiceTestSuite) TestCopyToPeriod_ExistingTargetRow_SkippedWithZeroWrites() {
	existing := skuRow("SKU-100", "2026")
	suite.mockPeriodRepo.EXPECT().GetByPeriod("2026").Return(&models.ReportingPeriod{Period: "2026"}, nil)
	suite.mockSkuRepo.EXPECT().GetByCodeAndPeriod("SKU-100", "2026").Return(existing, nil)
	// No Create, mapping, or audit calls expected: a skip performs zero writes.

	resp, err := suite.svc.CopySkusToPeriod(&service.CopyToPeriodRequest{
		CMCode:       "CM01",
		TargetPeriod: "2026",
		SkuCodes:     []string{"SKU-100"},
		Actor:        "tester",
	})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Results, 1)
	assert.Equal(suite.T(), service.CopyActionSkipped, resp.Results[0].Action)
	assert.Equal(suite.T(), existing.ID, resp.Results[0].SkuID)
	assert.Empty(suite.T(), resp.Errors)
}

func (suite *SkuServiceTestSuite) TestCopyToPeriod_KnownCode_CopiedWithFlagsReset() {
	source := skuRow("SKU-100", "2025")
	source.IsSendForApproval = true
	source.IsCMApproved = true

	suite.mockPeriodRepo.EXPECT().GetByPeriod("2026").Return(&models.ReportingPeriod{Period: "2026"}, nil)
	suite.mockSkuRepo.EXPECT().GetByCodeAndPeriod("SKU-100", "2026").Return(nil, gorm.ErrRecordNotFound)
	suite.mockSkuRepo.EXPECT().GetLatestByCode("SKU-100").Return(source, nil)
	suite.mockSkuRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *models.Sku) error {
		assert.Equal(suite.T(), "2026", s.Period)
		assert.True(suite.T(), s.IsCopied)
		assert.False(suite.T(), s.IsApproved)
		assert.False(suite.T(), s.IsSendForApproval)
		assert.False(suite.T(), s.IsCMApproved)
		assert.Equal(suite.T(), source.SkuDescription, s.SkuDescription)
		return nil
	})
	suite.mockMappingRepo.EXPECT().GetActiveByCMAndSku("CM01", "SKU-100").
		Return([]models.SkuComponentMapping{{CMCode: "CM01", SkuCode: "SKU-100", ComponentCode: "C1", Version: 2, PeriodID: "2025"}}, nil)
	suite.mockMappingRepo.EXPECT().
		FindByTuple("CM01", "SKU-100", "C1", 2, "2026").
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockMappingRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.SkuComponentMapping) error {
		assert.Equal(suite.T(), "2026", m.PeriodID)
		assert.Equal(suite.T(), 2, m.Version)
		return nil
	})
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil).AnyTimes()

	resp, err := suite.svc.CopySkusToPeriod(&service.CopyToPeriodRequest{
		CMCode:       "CM01",
		TargetPeriod: "2026",
		SkuCodes:     []string{"SKU-100"},
		Actor:        "tester",
	})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Results, 1)
	assert.Equal(suite.T(), service.CopyActionCopied, resp.Results[0].Action)
	assert.Equal(suite.T(), 1, resp.Results[0].MappingsCloned)
}

func (suite *SkuServiceTestSuite) TestCopyToPeriod_UnknownCode_MinimalRowCreated() {
	suite.mockPeriodRepo.EXPECT().GetByPeriod("2026").Return(&models.ReportingPeriod{Period: "2026"}, nil)
	suite.mockSkuRepo.EXPECT().GetByCodeAndPeriod("SKU-NEW", "2026").Return(nil, gorm.ErrRecordNotFound)
	suite.mockSkuRepo.EXPECT().GetLatestByCode("SKU-NEW").Return(nil, gorm.ErrRecordNotFound)
	suite.mockSkuRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *models.Sku) error {
		assert.Equal(suite.T(), "SKU-NEW", s.SkuDescription)
		assert.Equal(suite.T(), models.SkuTypeExternal, s.SkuType)
		assert.False(suite.T(), s.IsCopied)
		return nil
	})
	suite.mockMappingRepo.EXPECT().GetActiveByCMAndSku("CM01", "SKU-NEW").Return(nil, nil)
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.svc.CopySkusToPeriod(&service.CopyToPeriodRequest{
		CMCode:       "CM01",
		TargetPeriod: "2026",
		SkuCodes:     []string{"SKU-NEW"},
		Actor:        "tester",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.CopyActionCreated, resp.Results[0].Action)
	assert.Equal(suite.T(), 0, resp.Results[0].MappingsCloned)
}

func (suite *SkuServiceTestSuite) TestCopyToPeriod_BatchContinuesPastFailures() {
	suite.mockPeriodRepo.EXPECT().GetByPeriod("2026").Return(&models.ReportingPeriod{Period: "2026"}, nil)

	// First code fails at the existence check.
	suite.mockSkuRepo.EXPECT().GetByCodeAndPeriod("SKU-BAD", "2026").Return(nil, errors.New("connection reset"))

	// Second code succeeds as a skip.
	suite.mockSkuRepo.EXPECT().GetByCodeAndPeriod("SKU-OK", "2026").Return(skuRow("SKU-OK", "2026"), nil)

	resp, err := suite.svc.CopySkusToPeriod(&service.CopyToPeriodRequest{
		CMCode:       "CM01",
		TargetPeriod: "2026",
		SkuCodes:     []string{"SKU-BAD", "SKU-OK"},
		Actor:        "tester",
	})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Errors, 1)
	assert.Equal(suite.T(), "SKU-BAD", resp.Errors[0].SkuCode)
	assert.Len(suite.T(), resp.Results, 1)
	assert.Equal(suite.T(), "SKU-OK", resp.Results[0].SkuCode)
}

func TestSkuServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SkuServiceTestSuite))
}
