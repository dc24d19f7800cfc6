package entities

// Student is a pupil enrolled in one of the tutoring groups.
// ID and RegistrationDate are fixed at creation; every other field is
// replaced by an update.
type Student struct {
	ID               string  `gorm:"column:id;primaryKey" json:"id" validate:"required"`
	Name             string  `gorm:"column:name" json:"name" validate:"required"`
	Guardian         string  `gorm:"column:guardian" json:"guardian"`
	Contact          string  `gorm:"column:contact" json:"contact"`
	School           string  `gorm:"column:school" json:"school"`
	Grade            string  `gorm:"column:grade" json:"grade"`
	Report           string  `gorm:"column:report" json:"report"`
	Allergy          string  `gorm:"column:allergy" json:"allergy"`
	ClassID          string  `gorm:"column:classId" json:"classId"`
	PaymentDay       int     `gorm:"column:paymentDay" json:"paymentDay" validate:"min=1,max=31"`
	Amount           float64 `gorm:"column:amount" json:"amount" validate:"gte=0"`
	RegistrationDate string  `gorm:"column:registrationDate" json:"registrationDate"`
}

func (Student) TableName() string {
	return "students"
}

// Known class groups.
const (
	ClassA = "A"
	ClassB = "B"
)
