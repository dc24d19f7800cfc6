package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/reforco/internal/entities"
)

// StudentStore defines database operations for student management.
type StudentStore interface {
	StudentGetter
	GetStudents(ctx context.Context) ([]entities.Student, error)
	GetStudentsByClass(ctx context.Context, classID string) ([]entities.Student, error)
	AddStudent(ctx context.Context, student *entities.Student) error
	UpdateStudent(ctx context.Context, student *entities.Student) (int64, error)
	DeleteStudent(ctx context.Context, id string) (int64, error)
	GetPaymentsForStudent(ctx context.Context, studentID string) ([]entities.PaymentRecord, error)
	GetAttendanceForStudent(ctx context.Context, studentID string) ([]entities.AttendanceLog, error)
}

type StudentsController struct {
	store StudentStore
	now   func() time.Time
}

func NewStudentsController(store StudentStore, now func() time.Time) *StudentsController {
	return &StudentsController{store: store, now: now}
}

// ListStudents returns every student ordered by name, or one class when
// classId is given.
// GET /api/students?classId=A
func (sc *StudentsController) ListStudents(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		students []entities.Student
		err      error
	)
	if classID := c.Query("classId"); classID != "" {
		students, err = sc.store.GetStudentsByClass(ctx, classID)
	} else {
		students, err = sc.store.GetStudents(ctx)
	}
	if err != nil {
		respondInternalError(c, err, "list students")
		return
	}
	c.JSON(http.StatusOK, students)
}

// GetStudent returns one student.
// GET /api/students/:id
func (sc *StudentsController) GetStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	student, err := sc.store.GetStudentByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "student", "get student")
		return
	}
	c.JSON(http.StatusOK, student)
}

// CreateStudent registers a student. The ID and registration date are
// generated when the body leaves them empty.
// POST /api/students
func (sc *StudentsController) CreateStudent(c *gin.Context) {
	var student entities.Student
	if err := c.ShouldBindJSON(&student); err != nil {
		respondBadRequest(c, "invalid student payload")
		return
	}
	if student.ID == "" {
		student.ID = entities.NewStudentID()
	}
	if student.RegistrationDate == "" {
		student.RegistrationDate = entities.Timestamp(sc.now())
	}

	if err := sc.store.AddStudent(c.Request.Context(), &student); err != nil {
		respondStoreError(c, err, "student", "create student")
		return
	}
	respondCreated(c, student)
}

// UpdateStudent replaces the mutable fields of a student.
// PUT /api/students/:id
func (sc *StudentsController) UpdateStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var student entities.Student
	if err := c.ShouldBindJSON(&student); err != nil {
		respondBadRequest(c, "invalid student payload")
		return
	}
	student.ID = id

	ctx := c.Request.Context()
	rows, err := sc.store.UpdateStudent(ctx, &student)
	if err != nil {
		respondStoreError(c, err, "student", "update student")
		return
	}
	if rows == 0 {
		respondNotFound(c, "student")
		return
	}

	updated, err := sc.store.GetStudentByID(ctx, id)
	if err != nil {
		respondStoreError(c, err, "student", "reload student")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteStudent removes a student with its payments, attendance and itineraries.
// DELETE /api/students/:id
func (sc *StudentsController) DeleteStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rows, err := sc.store.DeleteStudent(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "delete student")
		return
	}
	if rows == 0 {
		respondNotFound(c, "student")
		return
	}
	respondSuccess(c, "student deleted")
}

// ListPayments returns a student's payment history, newest month first.
// GET /api/students/:id/payments
func (sc *StudentsController) ListPayments(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	payments, err := sc.store.GetPaymentsForStudent(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "list student payments")
		return
	}
	c.JSON(http.StatusOK, payments)
}

// ListAttendance returns a student's attendance history, newest date first.
// GET /api/students/:id/attendance
func (sc *StudentsController) ListAttendance(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	logs, err := sc.store.GetAttendanceForStudent(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "list student attendance")
		return
	}
	c.JSON(http.StatusOK, logs)
}
