package main

import (
	"database/sql"
	"fmt"
	"log"

	"go-contacthub/internal/config"
	"go-contacthub/internal/database"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// Seeds the five origin tables with a small demo dataset. Safe to run more
// than once: tables are created if absent and rows are inserted with fresh
// ids each run.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open(cfg.OriginDBDriver, cfg.OriginDBDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("origin database unreachable: %v", err)
	}

	fmt.Println("🌱 Seeding origin contact tables...")

	origin := &database.OriginDB{DB: db, Driver: cfg.OriginDBDriver}
	ph := func(count int) string {
		out := ""
		for i := 1; i <= count; i++ {
			if i > 1 {
				out += ", "
			}
			out += origin.Placeholder(i)
		}
		return out
	}

	schemas := []string{
		`CREATE TABLE IF NOT EXISTS contacts (
			id VARCHAR(64) PRIMARY KEY,
			first_name VARCHAR(128), last_name VARCHAR(128), name VARCHAR(256),
			email VARCHAR(256), phone VARCHAR(64),
			address VARCHAR(256), city VARCHAR(128), state VARCHAR(64), zip_code VARCHAR(32),
			engagement_score VARCHAR(32), donor_stage VARCHAR(64),
			total_lifetime_giving DOUBLE PRECISION, last_gift_date TIMESTAMP NULL,
			do_not_email BOOLEAN, do_not_call BOOLEAN, do_not_mail BOOLEAN, do_not_text BOOLEAN,
			email_opt_in BOOLEAN, newsletter_opt_in BOOLEAN,
			deleted BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP, updated_at TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS clients (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(256), email VARCHAR(256), phone VARCHAR(64),
			address VARCHAR(256), city VARCHAR(128), state VARCHAR(64), zip_code VARCHAR(32),
			status VARCHAR(32) DEFAULT 'active',
			created_at TIMESTAMP, updated_at TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS organizations (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(256), email VARCHAR(256), phone VARCHAR(64),
			address VARCHAR(256), city VARCHAR(128), state VARCHAR(64), zip_code VARCHAR(32),
			total_donations DOUBLE PRECISION, last_donation_date TIMESTAMP NULL,
			deleted BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP, updated_at TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS team_members (
			id VARCHAR(64) PRIMARY KEY,
			first_name VARCHAR(128), last_name VARCHAR(128),
			email VARCHAR(256), phone VARCHAR(64), profile_picture VARCHAR(512),
			active BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMP, updated_at TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS volunteers (
			id VARCHAR(64) PRIMARY KEY,
			first_name VARCHAR(128), last_name VARCHAR(128), name VARCHAR(256),
			email VARCHAR(256), phone VARCHAR(64),
			active BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMP, updated_at TIMESTAMP
		)`,
	}

	for _, ddl := range schemas {
		if _, err := db.Exec(ddl); err != nil {
			log.Fatalf("failed to create table: %v", err)
		}
	}

	insertContact := fmt.Sprintf(`INSERT INTO contacts
		(id, first_name, last_name, name, email, phone, engagement_score, donor_stage,
		 total_lifetime_giving, do_not_email, do_not_call, do_not_mail, do_not_text,
		 email_opt_in, newsletter_opt_in, deleted, created_at, updated_at)
		VALUES (%s, NOW(), NOW())`, ph(16))

	contacts := [][]interface{}{
		{uuid.NewString(), "Maria", "Lopez", "Maria Lopez", "maria.lopez@example.org", "+1-555-0101",
			"high", "Major Donor", 25000.0, false, false, false, false, true, true, false},
		{uuid.NewString(), "James", "Carter", "James Carter", "james.carter@example.org", "+1-555-0102",
			"medium", "Repeat Donor", 1800.0, false, true, false, false, true, false, false},
		{uuid.NewString(), "Priya", "Shah", "Priya Shah", "priya.shah@example.org", "+1-555-0103",
			"low", "Prospect", 0.0, false, false, false, false, true, false, false},
	}
	for _, row := range contacts {
		if _, err := db.Exec(insertContact, row...); err != nil {
			log.Fatalf("failed to insert contact: %v", err)
		}
	}
	fmt.Printf("Inserted %d contacts\n", len(contacts))

	insertClient := fmt.Sprintf(`INSERT INTO clients
		(id, name, email, phone, city, state, status, created_at, updated_at)
		VALUES (%s, NOW(), NOW())`, ph(7))

	clients := [][]interface{}{
		{uuid.NewString(), "Harbor Light Services", "office@harborlight.example", "+1-555-0201", "Portland", "OR", "active"},
		{uuid.NewString(), "Eastside Family Care", "contact@eastside.example", "+1-555-0202", "Austin", "TX", "active"},
	}
	for _, row := range clients {
		if _, err := db.Exec(insertClient, row...); err != nil {
			log.Fatalf("failed to insert client: %v", err)
		}
	}
	fmt.Printf("Inserted %d clients\n", len(clients))

	insertOrg := fmt.Sprintf(`INSERT INTO organizations
		(id, name, email, phone, total_donations, deleted, created_at, updated_at)
		VALUES (%s, NOW(), NOW())`, ph(6))

	orgs := [][]interface{}{
		{uuid.NewString(), "Riverbend Foundation", "grants@riverbend.example", "+1-555-0301", 15000.0, false},
		{uuid.NewString(), "Oak Street Trust", "info@oakstreet.example", "+1-555-0302", 2400.0, false},
		{uuid.NewString(), "New Leaf Collective", "hello@newleaf.example", "+1-555-0303", 0.0, false},
	}
	for _, row := range orgs {
		if _, err := db.Exec(insertOrg, row...); err != nil {
			log.Fatalf("failed to insert organization: %v", err)
		}
	}
	fmt.Printf("Inserted %d organizations\n", len(orgs))

	insertTeam := fmt.Sprintf(`INSERT INTO team_members
		(id, first_name, last_name, email, phone, profile_picture, active, created_at, updated_at)
		VALUES (%s, NOW(), NOW())`, ph(7))

	team := [][]interface{}{
		{uuid.NewString(), "Dana", "Wright", "dana@ourteam.example", "+1-555-0401", "https://cdn.example/avatars/dana.png", true},
		{uuid.NewString(), "Sam", "Nguyen", "sam@ourteam.example", "+1-555-0402", "", true},
	}
	for _, row := range team {
		if _, err := db.Exec(insertTeam, row...); err != nil {
			log.Fatalf("failed to insert team member: %v", err)
		}
	}
	fmt.Printf("Inserted %d team members\n", len(team))

	insertVolunteer := fmt.Sprintf(`INSERT INTO volunteers
		(id, first_name, last_name, name, email, phone, active, created_at, updated_at)
		VALUES (%s, NOW(), NOW())`, ph(7))

	volunteers := [][]interface{}{
		{uuid.NewString(), "Ana", "Diaz", "", "ana.diaz@example.org", "+1-555-0501", true},
		{uuid.NewString(), "", "", "Chris Okafor", "chris.okafor@example.org", "+1-555-0502", true},
	}
	for _, row := range volunteers {
		if _, err := db.Exec(insertVolunteer, row...); err != nil {
			log.Fatalf("failed to insert volunteer: %v", err)
		}
	}
	fmt.Printf("Inserted %d volunteers\n", len(volunteers))

	fmt.Println("✅ Origin tables seeded")
}
