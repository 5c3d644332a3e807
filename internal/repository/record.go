package repository

import (
	"fmt"

	"fuelapi/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type RecordRepository interface {
	Create(record *models.DispensingRecord) error
	ListByUser(userID int64, filter models.RecordFilter) ([]models.DispensingRecord, error)
}

type recordRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRecordRepository(db *sqlx.DB, logger *zap.Logger) RecordRepository {
	return &recordRepository{db: db, logger: logger}
}

func (r *recordRepository) Create(record *models.DispensingRecord) error {
	query := `INSERT INTO dispensing_records (user_id, dispenser_no, quantity, vehicle_number, payment_mode, payment_proof_filename)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	return r.db.QueryRowx(query, record.UserID, record.DispenserNo, record.Quantity,
		record.VehicleNumber, record.PaymentMode, record.PaymentProofFilename).StructScan(record)
}

func (r *recordRepository) ListByUser(userID int64, filter models.RecordFilter) ([]models.DispensingRecord, error) {
	query := `SELECT id, user_id, dispenser_no, quantity, vehicle_number, payment_mode, payment_proof_filename, created_at
	          FROM dispensing_records WHERE user_id = $1`
	args := []interface{}{userID}

	if filter.DispenserNo != "" && filter.DispenserNo != models.AllDispensers {
		args = append(args, filter.DispenserNo)
		query += fmt.Sprintf(" AND dispenser_no = $%d", len(args))
	}

	if filter.PaymentMode != "" && filter.PaymentMode != models.AllPaymentModes {
		args = append(args, filter.PaymentMode)
		query += fmt.Sprintf(" AND payment_mode = $%d", len(args))
	}

	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}

	// End date is inclusive of its whole calendar day.
	if filter.EndDate != nil {
		args = append(args, filter.EndDate.AddDate(0, 0, 1))
		query += fmt.Sprintf(" AND created_at < $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	records := []models.DispensingRecord{}
	if err := r.db.Select(&records, query, args...); err != nil {
		r.logger.Error("Failed to list dispensing records", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	return records, nil
}
