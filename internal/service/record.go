package service

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"fuelapi/internal/models"
	"fuelapi/internal/repository"
	"fuelapi/internal/storage"

	"go.uber.org/zap"
)

// ValidationError carries a human-readable message that is surfaced to
// the client verbatim with a 400 status.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func validationErrorf(format string, args ...interface{}) error {
	return NewValidationError(fmt.Sprintf(format, args...))
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

// ProofFile is an uploaded payment proof pending validation.
type ProofFile struct {
	Name string
	Size int64
	Data io.Reader
}

// CreateRecordInput holds the client-supplied fields of a new record.
type CreateRecordInput struct {
	DispenserNo   string
	Quantity      float64
	VehicleNumber string
	PaymentMode   string
}

type RecordService interface {
	Create(userID int64, input CreateRecordInput, proof *ProofFile) (*models.DispensingRecord, error)
	List(userID int64, filter models.RecordFilter) ([]models.DispensingRecord, error)
}

type recordService struct {
	repo        repository.RecordRepository
	files       *storage.FileStore
	maxFileSize int64
	logger      *zap.Logger
}

func NewRecordService(repo repository.RecordRepository, files *storage.FileStore, maxFileSize int64, logger *zap.Logger) RecordService {
	return &recordService{repo: repo, files: files, maxFileSize: maxFileSize, logger: logger}
}

// Create validates the input fail-fast (first violation wins), stores the
// proof file under a generated name, then inserts the record. If the
// insert fails after the file was written, the file is removed best
// effort so the directory does not accumulate orphans.
func (s *recordService) Create(userID int64, input CreateRecordInput, proof *ProofFile) (*models.DispensingRecord, error) {
	if strings.TrimSpace(input.DispenserNo) == "" || strings.TrimSpace(input.VehicleNumber) == "" {
		return nil, validationErrorf("Dispenser No and Vehicle Number are required.")
	}

	if input.Quantity <= 0 {
		return nil, validationErrorf("Quantity must be greater than 0.")
	}

	if proof == nil || proof.Size == 0 {
		return nil, validationErrorf("Payment proof file is required.")
	}

	ext := strings.ToLower(filepath.Ext(proof.Name))
	if !allowedExtensions[ext] {
		return nil, validationErrorf("Only .jpg, .png, and .pdf files are allowed.")
	}

	if proof.Size > s.maxFileSize {
		return nil, validationErrorf("File size must not exceed %d MB.", s.maxFileSize/(1024*1024))
	}

	if !models.ValidPaymentMode(input.PaymentMode) {
		return nil, validationErrorf("Payment mode must be one of %s, %s or %s.",
			models.PaymentModeCash, models.PaymentModeCreditCard, models.PaymentModeUPI)
	}

	storedName, err := s.files.Save(proof.Name, proof.Data)
	if err != nil {
		if errors.Is(err, storage.ErrEmptyFilename) {
			return nil, validationErrorf("Payment proof file is required.")
		}
		s.logger.Error("Failed to store payment proof", zap.Error(err))
		return nil, fmt.Errorf("failed to store payment proof: %w", err)
	}

	record := &models.DispensingRecord{
		UserID:               userID,
		DispenserNo:          input.DispenserNo,
		Quantity:             input.Quantity,
		VehicleNumber:        input.VehicleNumber,
		PaymentMode:          input.PaymentMode,
		PaymentProofFilename: &storedName,
	}

	if err := s.repo.Create(record); err != nil {
		if rmErr := s.files.Remove(storedName); rmErr != nil {
			s.logger.Warn("Failed to remove file after insert failure",
				zap.String("filename", storedName), zap.Error(rmErr))
		}
		s.logger.Error("Failed to insert dispensing record", zap.Int64("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	return record, nil
}

func (s *recordService) List(userID int64, filter models.RecordFilter) ([]models.DispensingRecord, error) {
	return s.repo.ListByUser(userID, filter)
}
