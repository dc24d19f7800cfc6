package entities

import "time"

// PaymentRecord marks a student as paid for one billing month.
// At most one record exists per (StudentID, MonthYear); the primary key is
// derived from that pair by PaymentID.
type PaymentRecord struct {
	ID        string `gorm:"column:id;primaryKey" json:"id"`
	StudentID string `gorm:"column:studentId" json:"studentId" validate:"required"`
	MonthYear string `gorm:"column:monthYear;index:idx_payment_records_month" json:"monthYear" validate:"required,monthyear"`
	DatePaid  string `gorm:"column:datePaid" json:"datePaid"`
}

func (PaymentRecord) TableName() string {
	return "payment_records"
}

// PaymentID derives the primary key of a payment record.
func PaymentID(studentID, monthYear string) string {
	return studentID + "-" + monthYear
}

// NewPaymentRecord builds the record stating that studentID paid monthYear at paidAt.
func NewPaymentRecord(studentID, monthYear string, paidAt time.Time) PaymentRecord {
	return PaymentRecord{
		ID:        PaymentID(studentID, monthYear),
		StudentID: studentID,
		MonthYear: monthYear,
		DatePaid:  Timestamp(paidAt),
	}
}
