package entities

// Itinerary is a study plan entry for one student.
type Itinerary struct {
	ID                string  `gorm:"column:id;primaryKey" json:"id" validate:"required"`
	StudentID         string  `gorm:"column:studentId;index:idx_itineraries_student" json:"studentId" validate:"required"`
	Title             string  `gorm:"column:title" json:"title"`
	Instructions      string  `gorm:"column:instructions" json:"instructions"`
	AttachmentName    *string `gorm:"column:attachmentName" json:"attachmentName"`
	AttachmentContent *string `gorm:"column:attachmentContent" json:"attachmentContent"`
	CreatedDate       string  `gorm:"column:createdDate" json:"createdDate"`
}

func (Itinerary) TableName() string {
	return "itineraries"
}
