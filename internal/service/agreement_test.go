package service_test

import (
	"context"
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

type AgreementServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockAgreementRepo  *mocks.MockAgreementRepositoryInterface
	mockContractorRepo *mocks.MockContractorRepositoryInterface
	mockAuditRepo      *mocks.MockAuditLogRepositoryInterface
	mockSigning        *mocks.MockSigningClient
	mockNotifier       *mocks.MockNotifier
	svc                *service.AgreementService
}

func (suite *AgreementServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAgreementRepo = mocks.NewMockAgreementRepositoryInterface(suite.ctrl)
	suite.mockContractorRepo = mocks.NewMockContractorRepositoryInterface(suite.ctrl)
	suite.mockAuditRepo = mocks.NewMockAuditLogRepositoryInterface(suite.ctrl)
	suite.mockSigning = mocks.NewMockSigningClient(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotifier(suite.ctrl)

	audit := service.NewAuditRecorder(suite.mockAuditRepo, nil)
	suite.svc = service.NewAgreementService(
		suite.mockAgreementRepo,
		suite.mockContractorRepo,
		suite.mockSigning,
		suite.mockNotifier,
		audit,
		validator.New(),
	)
}

func (suite *AgreementServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func draftAgreement() *models.SignoffAgreement {
	a := &models.SignoffAgreement{
		CMCode:      "CM01",
		Period:      "2025",
		Status:      models.AgreementStatusDraft,
		DocumentURL: "https://docs.example.com/agreements/cm01-2025.pdf",
	}
	a.ID = uuid.New()
	return a
}

func contractorWithContacts() *models.Contractor {
	c := &models.Contractor{
		CMCode:        "CM01",
		CMDescription: "Acme Packaging",
		Contacts: []models.ContractorContact{
			{Name: "Alice", Email: "alice@example.com", Role: models.ContactRoleSPOC, IsActive: true},
			{Name: "Bob", Email: "bob@example.com", Role: models.ContactRoleSRM, IsActive: false},
		},
	}
	c.ID = uuid.New()
	return c
}

func (suite *AgreementServiceTestSuite) TestCreateAgreement_Draft() {
	suite.mockContractorRepo.EXPECT().GetByCMCode("CM01").Return(&models.Contractor{CMCode: "CM01"}, nil)
	suite.mockAgreementRepo.EXPECT().GetByCMAndPeriod("CM01", "2025").Return(nil, gorm.ErrRecordNotFound)
	suite.mockAgreementRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.SignoffAgreement) error {
		assert.Equal(suite.T(), models.AgreementStatusDraft, a.Status)
		return nil
	})
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	agreement, err := suite.svc.CreateAgreement(&service.AgreementCreateRequest{
		CMCode:    "CM01",
		Period:    "2025",
		CreatedBy: "tester",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.AgreementStatusDraft, agreement.Status)
}

func (suite *AgreementServiceTestSuite) TestCreateAgreement_DuplicateForPeriod() {
	suite.mockContractorRepo.EXPECT().GetByCMCode("CM01").Return(&models.Contractor{CMCode: "CM01"}, nil)
	suite.mockAgreementRepo.EXPECT().GetByCMAndPeriod("CM01", "2025").Return(draftAgreement(), nil)

	agreement, err := suite.svc.CreateAgreement(&service.AgreementCreateRequest{
		CMCode:    "CM01",
		Period:    "2025",
		CreatedBy: "tester",
	})

	assert.Nil(suite.T(), agreement)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAgreementExists)
}

func (suite *AgreementServiceTestSuite) TestSendForSignature_DraftBecomesSent() {
	agreement := draftAgreement()
	contractor := contractorWithContacts()

	suite.mockAgreementRepo.EXPECT().GetByID(agreement.ID).Return(agreement, nil)
	suite.mockContractorRepo.EXPECT().GetWithContacts("CM01").Return(contractor, nil)
	suite.mockSigning.EXPECT().CreateEnvelope(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, env *service.EnvelopeRequest) (string, error) {
			// Only active contacts become signers.
			assert.Len(suite.T(), env.Signers, 1)
			assert.Equal(suite.T(), "alice@example.com", env.Signers[0].Email)
			return "env-123", nil
		})
	suite.mockAgreementRepo.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockNotifier.EXPECT().Notify([]string{"alice@example.com"}, gomock.Any(), gomock.Any()).Return(nil)

	updated, err := suite.svc.SendForSignature(context.Background(), agreement.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.AgreementStatusSent, updated.Status)
	assert.Equal(suite.T(), "env-123", updated.EnvelopeID)
}

func (suite *AgreementServiceTestSuite) TestSendForSignature_AlreadySent() {
	agreement := draftAgreement()
	agreement.Status = models.AgreementStatusSent

	suite.mockAgreementRepo.EXPECT().GetByID(agreement.ID).Return(agreement, nil)

	updated, err := suite.svc.SendForSignature(context.Background(), agreement.ID)

	assert.Nil(suite.T(), updated)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAgreementNotDraft)
}

func (suite *AgreementServiceTestSuite) TestSendForSignature_ProviderFailure_NoStateChange() {
	agreement := draftAgreement()
	contractor := contractorWithContacts()

	suite.mockAgreementRepo.EXPECT().GetByID(agreement.ID).Return(agreement, nil)
	suite.mockContractorRepo.EXPECT().GetWithContacts("CM01").Return(contractor, nil)
	suite.mockSigning.EXPECT().CreateEnvelope(gomock.Any(), gomock.Any()).Return("", errors.New("provider unavailable"))
	// No Update expected: the agreement stays draft.

	updated, err := suite.svc.SendForSignature(context.Background(), agreement.ID)

	assert.Nil(suite.T(), updated)
	assert.Error(suite.T(), err)
}

func (suite *AgreementServiceTestSuite) TestUpdateStatus_SignedSetsTimestamp() {
	agreement := draftAgreement()
	agreement.Status = models.AgreementStatusSent
	agreement.EnvelopeID = "env-123"

	suite.mockAgreementRepo.EXPECT().GetByEnvelopeID("env-123").Return(agreement, nil)
	suite.mockAgreementRepo.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockContractorRepo.EXPECT().GetWithContacts("CM01").Return(contractorWithContacts(), nil)
	suite.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	updated, err := suite.svc.UpdateStatus(&service.AgreementStatusRequest{
		EnvelopeID: "env-123",
		Status:     models.AgreementStatusSigned,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.AgreementStatusSigned, updated.Status)
	assert.NotNil(suite.T(), updated.SignedAt)
}

func (suite *AgreementServiceTestSuite) TestUpdateStatus_NotifierFailureSwallowed() {
	agreement := draftAgreement()
	agreement.Status = models.AgreementStatusSent
	agreement.EnvelopeID = "env-123"

	suite.mockAgreementRepo.EXPECT().GetByEnvelopeID("env-123").Return(agreement, nil)
	suite.mockAgreementRepo.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockContractorRepo.EXPECT().GetWithContacts("CM01").Return(contractorWithContacts(), nil)
	suite.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	updated, err := suite.svc.UpdateStatus(&service.AgreementStatusRequest{
		EnvelopeID: "env-123",
		Status:     models.AgreementStatusDeclined,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.AgreementStatusDeclined, updated.Status)
}

func (suite *AgreementServiceTestSuite) TestUpdateStatus_RejectsNonTerminalStatus() {
	updated, err := suite.svc.UpdateStatus(&service.AgreementStatusRequest{
		EnvelopeID: "env-123",
		Status:     models.AgreementStatusSent,
	})

	assert.Nil(suite.T(), updated)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
}

func (suite *AgreementServiceTestSuite) TestUpdateStatus_OnlyFromSent() {
	agreement := draftAgreement() // still draft
	agreement.EnvelopeID = "env-123"

	suite.mockAgreementRepo.EXPECT().GetByEnvelopeID("env-123").Return(agreement, nil)

	updated, err := suite.svc.UpdateStatus(&service.AgreementStatusRequest{
		EnvelopeID: "env-123",
		Status:     models.AgreementStatusSigned,
	})

	assert.Nil(suite.T(), updated)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
}

func TestAgreementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AgreementServiceTestSuite))
}
