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

type EvidenceServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockEvidenceRepo  *mocks.MockEvidenceRepositoryInterface
	mockComponentRepo *mocks.MockComponentRepositoryInterface
	mockAuditRepo     *mocks.MockAuditLogRepositoryInterface
	mockBlobs         *mocks.MockBlobStore
	svc               *service.EvidenceService
}

func (suite *EvidenceServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEvidenceRepo = mocks.NewMockEvidenceRepositoryInterface(suite.ctrl)
	suite.mockComponentRepo = mocks.NewMockComponentRepositoryInterface(suite.ctrl)
	suite.mockAuditRepo = mocks.NewMockAuditLogRepositoryInterface(suite.ctrl)
	suite.mockBlobs = mocks.NewMockBlobStore(suite.ctrl)

	audit := service.NewAuditRecorder(suite.mockAuditRepo, nil)
	suite.svc = service.NewEvidenceService(
		suite.mockEvidenceRepo,
		suite.mockComponentRepo,
		suite.mockBlobs,
		audit,
		validator.New(),
	)
}

func (suite *EvidenceServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EvidenceServiceTestSuite) TestUpload_CurrentVersion() {
	component := componentV("C1", 2)

	suite.mockComponentRepo.EXPECT().GetLatestActiveByCode("C1").Return(component, nil)
	suite.mockBlobs.EXPECT().
		Upload(gomock.Any(), "cert.pdf", "application/pdf", []byte("pdf-bytes"), "components", "C1", "v2").
		Return("gs://evidence/components/C1/v2/cert.pdf", nil)
	suite.mockEvidenceRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(f *models.EvidenceFile) error {
		assert.Equal(suite.T(), component.ID, f.ComponentDetailID)
		assert.Equal(suite.T(), 2, f.Version)
		assert.Equal(suite.T(), "gs://evidence/components/C1/v2/cert.pdf", f.BlobURL)
		return nil
	})
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	file, err := suite.svc.Upload(context.Background(), &service.EvidenceUploadRequest{
		ComponentCode: "C1",
		FileName:      "cert.pdf",
		ContentType:   "application/pdf",
		Category:      "recyclability",
		Data:          []byte("pdf-bytes"),
		Actor:         "tester",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "cert.pdf", file.FileName)
}

func (suite *EvidenceServiceTestSuite) TestUpload_ExplicitVersion() {
	component := componentV("C1", 1)

	suite.mockComponentRepo.EXPECT().GetByCodeAndVersion("C1", 1).Return(component, nil)
	suite.mockBlobs.EXPECT().
		Upload(gomock.Any(), "cert.pdf", "application/pdf", gomock.Any(), "components", "C1", "v1").
		Return("gs://evidence/components/C1/v1/cert.pdf", nil)
	suite.mockEvidenceRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	_, err := suite.svc.Upload(context.Background(), &service.EvidenceUploadRequest{
		ComponentCode: "C1",
		Version:       1,
		FileName:      "cert.pdf",
		ContentType:   "application/pdf",
		Data:          []byte("pdf-bytes"),
		Actor:         "tester",
	})

	assert.NoError(suite.T(), err)
}

func (suite *EvidenceServiceTestSuite) TestUpload_UnknownComponent() {
	suite.mockComponentRepo.EXPECT().GetLatestActiveByCode("C404").Return(nil, gorm.ErrRecordNotFound)

	file, err := suite.svc.Upload(context.Background(), &service.EvidenceUploadRequest{
		ComponentCode: "C404",
		FileName:      "cert.pdf",
		Data:          []byte("pdf-bytes"),
		Actor:         "tester",
	})

	assert.Nil(suite.T(), file)
	assert.ErrorIs(suite.T(), err, apperrors.ErrComponentNotFound)
}

func (suite *EvidenceServiceTestSuite) TestUpload_BlobFailure_NoRow() {
	component := componentV("C1", 1)
	suite.mockComponentRepo.EXPECT().GetLatestActiveByCode("C1").Return(component, nil)
	suite.mockBlobs.EXPECT().
		Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("bucket unavailable"))
	// No Create expected when the blob upload fails.

	file, err := suite.svc.Upload(context.Background(), &service.EvidenceUploadRequest{
		ComponentCode: "C1",
		FileName:      "cert.pdf",
		Data:          []byte("pdf-bytes"),
		Actor:         "tester",
	})

	assert.Nil(suite.T(), file)
	assert.Error(suite.T(), err)
}

// unconfiguredService mirrors the wiring when no GCS bucket is configured:
// the blob store dependency is nil and the service must cope without it.
func (suite *EvidenceServiceTestSuite) unconfiguredService() *service.EvidenceService {
	audit := service.NewAuditRecorder(suite.mockAuditRepo, nil)
	return service.NewEvidenceService(
		suite.mockEvidenceRepo,
		suite.mockComponentRepo,
		nil,
		audit,
		validator.New(),
	)
}

func (suite *EvidenceServiceTestSuite) TestUpload_NoBlobStore_Rejected() {
	svc := suite.unconfiguredService()
	// No component lookup, row create or audit expected.

	file, err := svc.Upload(context.Background(), &service.EvidenceUploadRequest{
		ComponentCode: "C1",
		FileName:      "cert.pdf",
		Data:          []byte("pdf-bytes"),
		Actor:         "tester",
	})

	assert.Nil(suite.T(), file)
	assert.ErrorIs(suite.T(), err, apperrors.ErrBlobStoreUnavailable)
	assert.True(suite.T(), apperrors.IsConfiguration(err))
}

func (suite *EvidenceServiceTestSuite) TestDelete_NoBlobStore_RemovesRowOnly() {
	svc := suite.unconfiguredService()
	id := uuid.New()
	file := &models.EvidenceFile{ComponentCode: "C1", Version: 1, BlobURL: "gs://evidence/components/C1/v1/cert.pdf"}
	file.ID = id

	suite.mockEvidenceRepo.EXPECT().GetByID(id).Return(file, nil)
	suite.mockEvidenceRepo.EXPECT().Delete(id).Return(nil)
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	err := svc.Delete(context.Background(), id, "tester")

	assert.NoError(suite.T(), err)
}

func (suite *EvidenceServiceTestSuite) TestDelete_RemovesBlobAndRow() {
	id := uuid.New()
	file := &models.EvidenceFile{ComponentCode: "C1", Version: 1, BlobURL: "gs://evidence/components/C1/v1/cert.pdf"}
	file.ID = id

	suite.mockEvidenceRepo.EXPECT().GetByID(id).Return(file, nil)
	suite.mockBlobs.EXPECT().Delete(gomock.Any(), file.BlobURL).Return(nil)
	suite.mockEvidenceRepo.EXPECT().Delete(id).Return(nil)
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	err := suite.svc.Delete(context.Background(), id, "tester")

	assert.NoError(suite.T(), err)
}

func (suite *EvidenceServiceTestSuite) TestDelete_BlobFailureStillDeletesRow() {
	id := uuid.New()
	file := &models.EvidenceFile{ComponentCode: "C1", Version: 1, BlobURL: "gs://evidence/components/C1/v1/cert.pdf"}
	file.ID = id

	suite.mockEvidenceRepo.EXPECT().GetByID(id).Return(file, nil)
	suite.mockBlobs.EXPECT().Delete(gomock.Any(), file.BlobURL).Return(errors.New("object lock"))
	suite.mockEvidenceRepo.EXPECT().Delete(id).Return(nil)
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	err := suite.svc.Delete(context.Background(), id, "tester")

	assert.NoError(suite.T(), err)
}

func (suite *EvidenceServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	suite.mockEvidenceRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.svc.Delete(context.Background(), id, "tester")

	assert.ErrorIs(suite.T(), err, apperrors.ErrEvidenceNotFound)
}

func TestEvidenceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EvidenceServiceTestSuite))
}
