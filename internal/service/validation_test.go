package service_test

import (
	"testing"
	"time"

	"sustainability-portal-backend/internal/database/models"
	apperrors "sustainability-portal-backend/internal/errors"
	"sustainability-portal-backend/internal/mocks"
	"sustainability-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ValidityValidatorTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockComponentRepo *mocks.MockComponentRepositoryInterface
	validator         *service.ValidityValidator
	period            *models.ReportingPeriod
}

func (suite *ValidityValidatorTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockComponentRepo = mocks.NewMockComponentRepositoryInterface(suite.ctrl)
	suite.validator = service.NewValidityValidator(suite.mockComponentRepo)
	suite.period = &models.ReportingPeriod{Period: "2025", IsActive: true}
}

func (suite *ValidityValidatorTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func date(year, month, day int) *time.Time {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &d
}

func (suite *ValidityValidatorTestSuite) TestValidateWindow_ValidRange() {
	result, err := suite.validator.ValidateWindow(date(2025, 1, 1), date(2026, 12, 31), suite.period)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), result.IsValid)
	assert.Empty(suite.T(), result.Errors)
}

func (suite *ValidityValidatorTestSuite) TestValidateWindow_FromBeforePeriodYear() {
	result, err := suite.validator.ValidateWindow(date(2024, 6, 1), nil, suite.period)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), result.IsValid)
	assert.Contains(suite.T(), result.FieldErrors, "component_valid_from")
}

func (suite *ValidityValidatorTestSuite) TestValidateWindow_ToWithinPeriodYear() {
	result, err := suite.validator.ValidateWindow(nil, date(2025, 12, 31), suite.period)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), result.IsValid)
	assert.Contains(suite.T(), result.FieldErrors, "component_valid_to")
}

func (suite *ValidityValidatorTestSuite) TestValidateWindow_FromNotBeforeTo() {
	result, err := suite.validator.ValidateWindow(date(2026, 6, 1), date(2026, 6, 1), suite.period)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), result.IsValid)
	assert.Contains(suite.T(), result.FieldErrors, "dateRange")
}

func (suite *ValidityValidatorTestSuite) TestValidateWindow_AllViolationsCollected() {
	// from < period year, to <= period year, and from >= to: all three reported
	result, err := suite.validator.ValidateWindow(date(2024, 6, 1), date(2024, 1, 1), suite.period)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), result.IsValid)
	assert.Len(suite.T(), result.Errors, 3)
	assert.Contains(suite.T(), result.FieldErrors, "component_valid_from")
	assert.Contains(suite.T(), result.FieldErrors, "component_valid_to")
	assert.Contains(suite.T(), result.FieldErrors, "dateRange")
}

func (suite *ValidityValidatorTestSuite) TestValidateWindow_NilPeriod_Fails() {
	result, err := suite.validator.ValidateWindow(date(2025, 1, 1), nil, nil)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNoActivePeriod)
}

func (suite *ValidityValidatorTestSuite) TestValidateWindow_BadPeriodValue() {
	result, err := suite.validator.ValidateWindow(date(2025, 1, 1), nil, &models.ReportingPeriod{Period: "xx"})

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPeriodFormat)
}

func (suite *ValidityValidatorTestSuite) TestCheckDuplicateDescription_Conflict() {
	existing := &models.ComponentDetail{ComponentCode: "C2", Description: "Clear PET bottle 500ml"}
	suite.mockComponentRepo.EXPECT().FindActiveByDescription("Clear PET bottle 500ml").Return(existing, nil)

	err := suite.validator.CheckDuplicateDescription("Clear PET bottle 500ml", "C1")

	assert.True(suite.T(), apperrors.IsDuplicateDescription(err))
	var dup *apperrors.DuplicateDescriptionError
	assert.ErrorAs(suite.T(), err, &dup)
	assert.Equal(suite.T(), "C2", dup.ComponentCode)
}

func (suite *ValidityValidatorTestSuite) TestCheckDuplicateDescription_SameCode_OK() {
	existing := &models.ComponentDetail{ComponentCode: "C1", Description: "Clear PET bottle 500ml"}
	suite.mockComponentRepo.EXPECT().FindActiveByDescription("Clear PET bottle 500ml").Return(existing, nil)

	err := suite.validator.CheckDuplicateDescription("Clear PET bottle 500ml", "C1")

	assert.NoError(suite.T(), err)
}

func (suite *ValidityValidatorTestSuite) TestCheckDuplicateDescription_Unused_OK() {
	suite.mockComponentRepo.EXPECT().FindActiveByDescription("fresh description").Return(nil, gorm.ErrRecordNotFound)

	err := suite.validator.CheckDuplicateDescription("fresh description", "C1")

	assert.NoError(suite.T(), err)
}

func TestValidityValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidityValidatorTestSuite))
}
