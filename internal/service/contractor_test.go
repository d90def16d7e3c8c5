package service_test

import (
	"testing"

	"sustainability-portal-backend/internal/database/models"
	apperrors "sustainability-portal-backend/internal/errors"
	"sustainability-portal-backend/internal/mocks"
	"sustainability-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ContractorServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockContractorRepo *mocks.MockContractorRepositoryInterface
	mockAuditRepo      *mocks.MockAuditLogRepositoryInterface
	svc                *service.ContractorService
}

func (suite *ContractorServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockContractorRepo = mocks.NewMockContractorRepositoryInterface(suite.ctrl)
	suite.mockAuditRepo = mocks.NewMockAuditLogRepositoryInterface(suite.ctrl)

	audit := service.NewAuditRecorder(suite.mockAuditRepo, nil)
	suite.svc = service.NewContractorService(suite.mockContractorRepo, audit, validator.New())
}

func (suite *ContractorServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ContractorServiceTestSuite) TestCreateContractor_WithContacts() {
	suite.mockContractorRepo.EXPECT().GetByCMCode("CM01").Return(nil, gorm.ErrRecordNotFound)
	suite.mockContractorRepo.EXPECT().CreateWithContacts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(c *models.Contractor, contacts []models.ContractorContact) error {
			assert.Equal(suite.T(), "CM01", c.CMCode)
			assert.True(suite.T(), c.IsActive)
			assert.Len(suite.T(), contacts, 2)
			assert.Equal(suite.T(), models.ContactRoleSPOC, contacts[0].Role)
			assert.Equal(suite.T(), "CM01", contacts[0].CMCode)
			return nil
		})
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	contractor, err := suite.svc.CreateContractor(&service.ContractorCreateRequest{
		CMCode:        "CM01",
		CMDescription: "Acme Packaging",
		Region:        "EMEA",
		Contacts: []service.ContactInput{
			{Name: "Alice", Email: "alice@example.com", Role: models.ContactRoleSPOC},
			{Name: "Bob", Email: "bob@example.com", Role: models.ContactRoleSRM},
		},
		CreatedBy: "tester",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "CM01", contractor.CMCode)
}

func (suite *ContractorServiceTestSuite) TestCreateContractor_AlreadyExists() {
	suite.mockContractorRepo.EXPECT().GetByCMCode("CM01").Return(&models.Contractor{CMCode: "CM01"}, nil)

	contractor, err := suite.svc.CreateContractor(&service.ContractorCreateRequest{
		CMCode:        "CM01",
		CMDescription: "Acme Packaging",
		Contacts: []service.ContactInput{
			{Name: "Alice", Email: "alice@example.com", Role: models.ContactRoleSPOC},
		},
		CreatedBy: "tester",
	})

	assert.Nil(suite.T(), contractor)
	assert.ErrorIs(suite.T(), err, apperrors.ErrContractorExists)
}

func (suite *ContractorServiceTestSuite) TestCreateContractor_RequiresContacts() {
	contractor, err := suite.svc.CreateContractor(&service.ContractorCreateRequest{
		CMCode:        "CM01",
		CMDescription: "Acme Packaging",
		Contacts:      []service.ContactInput{},
		CreatedBy:     "tester",
	})

	assert.Nil(suite.T(), contractor)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ContractorServiceTestSuite) TestCreateContractor_RejectsUnknownRole() {
	contractor, err := suite.svc.CreateContractor(&service.ContractorCreateRequest{
		CMCode:        "CM01",
		CMDescription: "Acme Packaging",
		Contacts: []service.ContactInput{
			{Name: "Alice", Email: "alice@example.com", Role: models.ContactRole("MANAGER")},
		},
		CreatedBy: "tester",
	})

	assert.Nil(suite.T(), contractor)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ContractorServiceTestSuite) TestGetContractor_NotFound() {
	suite.mockContractorRepo.EXPECT().GetWithContacts("CM404").Return(nil, gorm.ErrRecordNotFound)

	contractor, err := suite.svc.GetContractor("CM404")

	assert.Nil(suite.T(), contractor)
	assert.ErrorIs(suite.T(), err, apperrors.ErrContractorNotFound)
}

func TestContractorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContractorServiceTestSuite))
}
