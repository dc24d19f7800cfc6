// Command generate_demo creates a demo database with a full term of sample
// students, payments, attendance and itineraries.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db] [-months 3]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/gorm/logger"

	"github.com/mrlokans/reforco/internal/database"
	"github.com/mrlokans/reforco/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	months := flag.Int("months", 3, "number of past months to fill with payments and attendance")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0755); err != nil {
		log.Fatalf("Failed to create demo directory: %v", err)
	}

	db, err := database.NewDatabase(*dbPath, database.WithLogLevel(logger.Silent))
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	roster := demoStudents(now.AddDate(0, -*months, 0))

	for i := range roster {
		if err := db.AddStudent(ctx, &roster[i]); err != nil {
			log.Printf("Failed to save student %s: %v", roster[i].Name, err)
			continue
		}
		log.Printf("Saved: %s (class %s)", roster[i].Name, roster[i].ClassID)
	}

	payments := addPayments(ctx, db, roster, now, *months)
	logs := addAttendance(ctx, db, roster, now, *months)
	plans := addItineraries(ctx, db, roster, now)

	log.Printf("Demo database generated: %d students, %d payments, %d attendance logs, %d itineraries",
		len(roster), payments, logs, plans)
}

var demoNames = []struct {
	name, guardian, school, grade string
}{
	{"Ana Silva", "Maria Silva", "Escola Municipal Aurora", "5º ano"},
	{"Bruno Costa", "João Costa", "Colégio Horizonte", "6º ano"},
	{"Carla Mendes", "Paula Mendes", "Escola Municipal Aurora", "4º ano"},
	{"Davi Rocha", "Rita Rocha", "Colégio Horizonte", "7º ano"},
	{"Eduarda Lima", "Carlos Lima", "Escola Estadual Ipê", "5º ano"},
	{"Felipe Araújo", "Sandra Araújo", "Escola Estadual Ipê", "3º ano"},
	{"Gabriela Nunes", "Marcos Nunes", "Colégio Horizonte", "8º ano"},
	{"Heitor Souza", "Luciana Souza", "Escola Municipal Aurora", "6º ano"},
}

func demoStudents(registeredAt time.Time) []entities.Student {
	students := make([]entities.Student, 0, len(demoNames))
	for i, n := range demoNames {
		classID := entities.ClassA
		if i%2 == 1 {
			classID = entities.ClassB
		}
		students = append(students, entities.Student{
			ID:               fmt.Sprintf("demo%02d", i+1),
			Name:             n.name,
			Guardian:         n.guardian,
			Contact:          fmt.Sprintf("(11) 9%04d-%04d", 1000+i*37, 2000+i*53),
			School:           n.school,
			Grade:            n.grade,
			ClassID:          classID,
			PaymentDay:       []int{5, 10, 15, 20}[i%4],
			Amount:           250 + float64(i%3)*25,
			RegistrationDate: entities.Timestamp(registeredAt.AddDate(0, 0, i)),
		})
		if i%3 == 0 {
			students[i].Allergy = "Amendoim"
		}
	}
	return students
}

// addPayments pays every past month in full and leaves roughly a third of
// the roster unpaid for the current month.
func addPayments(ctx context.Context, db *database.Database, students []entities.Student, now time.Time, months int) int {
	count := 0
	for m := months; m >= 0; m-- {
		monthYear := entities.MonthYear(now.AddDate(0, -m, 0))
		for i, st := range students {
			if m == 0 && i%3 == 2 {
				continue
			}
			if _, err := db.RecordPayment(ctx, st.ID, monthYear); err != nil {
				log.Printf("Failed to record payment %s %s: %v", st.ID, monthYear, err)
				continue
			}
			count++
		}
	}
	return count
}

var demoTopics = []string{
	"Frações equivalentes",
	"Leitura e interpretação de texto",
	"Tabuada do 7 e do 8",
	"Ortografia: uso de s e z",
	"Problemas com as quatro operações",
	"Ciclo da água",
}

// addAttendance records one session per class every weekday of the last
// weeks, with an occasional absence.
func addAttendance(ctx context.Context, db *database.Database, students []entities.Student, now time.Time, months int) int {
	count := 0
	start := now.AddDate(0, -months, 0)
	for day := start; !day.After(now); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		logDate := entities.LogDate(day)
		topic := demoTopics[day.YearDay()%len(demoTopics)]
		for i, st := range students {
			status := entities.AttendancePresent
			var topics *string
			if (day.YearDay()+i)%9 == 0 {
				status = entities.AttendanceAbsent
			} else {
				t := topic
				topics = &t
			}
			err := db.UpsertAttendance(ctx, &entities.AttendanceLog{
				StudentID: st.ID,
				ClassID:   st.ClassID,
				LogDate:   logDate,
				Status:    status,
				Topics:    topics,
			})
			if err != nil {
				log.Printf("Failed to record attendance %s %s: %v", st.ID, logDate, err)
				continue
			}
			count++
		}
	}
	return count
}

func addItineraries(ctx context.Context, db *database.Database, students []entities.Student, now time.Time) int {
	count := 0
	for i, st := range students {
		for j := 0; j < 2; j++ {
			title := demoTopics[(i+j)%len(demoTopics)]
			it := entities.Itinerary{
				ID:           fmt.Sprintf("it-%s-%d", st.ID, j+1),
				StudentID:    st.ID,
				Title:        title,
				Instructions: fmt.Sprintf("Revisar %s e resolver a lista %d.", title, j+1),
				CreatedDate:  entities.Timestamp(now.AddDate(0, 0, -7*(2-j))),
			}
			if j == 1 {
				name := fmt.Sprintf("lista-%d.txt", j+1)
				content := "1) 3/4 + 1/4 =\n2) 2/3 de 12 =\n"
				it.AttachmentName = &name
				it.AttachmentContent = &content
			}
			if err := db.AddItinerary(ctx, &it); err != nil {
				log.Printf("Failed to save itinerary %s: %v", it.ID, err)
				continue
			}
			count++
		}
	}
	return count
}
