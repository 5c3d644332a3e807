package models

import "time"

// Payment modes accepted on a dispensing record.
const (
	PaymentModeCash       = "Cash"
	PaymentModeCreditCard = "Credit Card"
	PaymentModeUPI        = "UPI"
)

// Sentinel filter values meaning "no constraint".
const (
	AllDispensers   = "ALL DISPENSERS"
	AllPaymentModes = "ALL PAYMENT MODES"
)

// ValidPaymentMode reports whether mode is one of the accepted payment modes.
func ValidPaymentMode(mode string) bool {
	switch mode {
	case PaymentModeCash, PaymentModeCreditCard, PaymentModeUPI:
		return true
	}
	return false
}

// DispensingRecord represents one fuel dispensing event.
type DispensingRecord struct {
	ID                   int64     `db:"id" json:"id"`
	UserID               int64     `db:"user_id" json:"userId"`
	DispenserNo          string    `db:"dispenser_no" json:"dispenserNo"`
	Quantity             float64   `db:"quantity" json:"quantity"`
	VehicleNumber        string    `db:"vehicle_number" json:"vehicleNumber"`
	PaymentMode          string    `db:"payment_mode" json:"paymentMode"`
	PaymentProofFilename *string   `db:"payment_proof_filename" json:"paymentProofFilename"`
	CreatedAt            time.Time `db:"created_at" json:"createdAt"`
}

// RecordFilter narrows a listing query. Zero-valued or sentinel fields
// impose no constraint.
type RecordFilter struct {
	DispenserNo string     `json:"dispenserNo"`
	PaymentMode string     `json:"paymentMode"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}
