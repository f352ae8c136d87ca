// Command seed fills the database with demo leads and job postings for
// local development.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/crewboard/crewboard-back/config"
	"github.com/crewboard/crewboard-back/pkg/jobboard"
	"github.com/crewboard/crewboard-back/pkg/leads"
)

func main() {
	leadCount := flag.Int("leads", 200, "number of demo leads")
	jobCount := flag.Int("jobs", 6, "number of demo job postings")
	flag.Parse()

	cfg := config.Load()

	store, err := leads.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	seedLeads(ctx, store, *leadCount)
	seedJobs(ctx, jobboard.NewPostgresStore(store.DB()), *jobCount)
}

func seedLeads(ctx context.Context, store leads.Store, count int) {
	statuses := []leads.Status{leads.StatusNew, leads.StatusContacted, leads.StatusPriority, leads.StatusRejected}

	batch := make([]leads.Lead, 0, count)
	for i := 0; i < count; i++ {
		company := gofakeit.Company()
		handle := strings.ToLower(strings.ReplaceAll(company, " ", ""))

		batch = append(batch, leads.Lead{
			Title:      company,
			Phone:      gofakeit.Phone(),
			Email1:     gofakeit.Email(),
			Website:    gofakeit.URL(),
			Instagram1: "https://instagram.com/" + handle,
			City:       gofakeit.City(),
			Notes:      gofakeit.Sentence(8),
			Status:     statuses[gofakeit.Number(0, len(statuses)-1)],
			UploadedAt: time.Now().UTC(),
		})
	}

	created, err := store.CreateBatch(ctx, batch)
	if err != nil {
		log.Fatalf("❌ Failed to seed leads: %v", err)
	}
	log.Printf("✅ Seeded %d leads", len(created))
}

func seedJobs(ctx context.Context, store jobboard.Store, count int) {
	titles := []string{
		"Event Staff", "Bartender", "Brand Ambassador", "Stage Crew",
		"Catering Server", "Security Staff", "Registration Host", "AV Technician",
	}
	types := []string{"part-time", "full-time", "seasonal"}

	for i := 0; i < count; i++ {
		job := jobboard.Job{
			Title:       titles[i%len(titles)],
			Location:    gofakeit.City(),
			Type:        types[gofakeit.Number(0, len(types)-1)],
			Pay:         fmt.Sprintf("$%d/hr", gofakeit.Number(16, 35)),
			Description: gofakeit.Paragraph(1, 3, 12, " "),
			Open:        true,
			CreatedAt:   time.Now().UTC(),
		}
		if _, err := store.CreateJob(ctx, job); err != nil {
			log.Fatalf("❌ Failed to seed jobs: %v", err)
		}
	}
	log.Printf("✅ Seeded %d job postings", count)
}
