package entities

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Presente"
	AttendanceAbsent  AttendanceStatus = "Ausente"
	AttendancePending AttendanceStatus = "Pendente"
)

// AttendanceLog is one student's outcome for one class session on one date.
// StudentID, ClassID and LogDate never change once the row exists; an upsert
// only rewrites Status, Topics and the attachment fields.
type AttendanceLog struct {
	ID                string           `gorm:"column:id;primaryKey" json:"id"`
	StudentID         string           `gorm:"column:studentId" json:"studentId" validate:"required"`
	ClassID           string           `gorm:"column:classId;index:idx_attendance_logs_class_date,priority:1" json:"classId" validate:"required"`
	LogDate           string           `gorm:"column:logDate;index:idx_attendance_logs_class_date,priority:2" json:"logDate" validate:"required,isodate"`
	Status            AttendanceStatus `gorm:"column:status" json:"status" validate:"required,oneof=Presente Ausente Pendente"`
	Topics            *string          `gorm:"column:topics" json:"topics"`
	AttachmentName    *string          `gorm:"column:attachmentName" json:"attachmentName"`
	AttachmentContent *string          `gorm:"column:attachmentContent" json:"attachmentContent"`
}

func (AttendanceLog) TableName() string {
	return "attendance_logs"
}

// AttendanceID derives the primary key of an attendance log.
func AttendanceID(studentID, classID, logDate string) string {
	return studentID + "-" + classID + "-" + logDate
}

// DerivedID returns the key this log must be stored under.
func (l AttendanceLog) DerivedID() string {
	return AttendanceID(l.StudentID, l.ClassID, l.LogDate)
}

// PendingAttendance is the entry shown for a student with no log yet.
func PendingAttendance(studentID, classID, logDate string) AttendanceLog {
	return AttendanceLog{
		ID:        AttendanceID(studentID, classID, logDate),
		StudentID: studentID,
		ClassID:   classID,
		LogDate:   logDate,
		Status:    AttendancePending,
	}
}
