package contact

import (
	"context"
	"database/sql"
	"errors"

	"go-contacthub/internal/database"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
)

// OriginRepository reads the five origin tables. Selects are filtered to
// active/non-deleted rows and ordered by display name; there is no pagination,
// each call is one unbounded fetch.
type OriginRepository interface {
	ListContacts(ctx context.Context) ([]ContactRow, error)
	ListClients(ctx context.Context) ([]ClientRow, error)
	ListOrganizations(ctx context.Context) ([]OrganizationRow, error)
	ListTeamMembers(ctx context.Context) ([]TeamMemberRow, error)
	ListVolunteers(ctx context.Context) ([]VolunteerRow, error)
	CountOrigin(ctx context.Context, origin OriginType) (int64, error)
}

// ErrOriginTableMissing marks a not-yet-provisioned origin table. Callers
// treat it as an empty result, not a failure.
var ErrOriginTableMissing = errors.New("origin table not provisioned")

type OriginRepositoryImpl struct {
	db *database.OriginDB
}

func NewOriginRepository(db *database.OriginDB) OriginRepository {
	return &OriginRepositoryImpl{db: db}
}

const (
	contactsQuery = `SELECT id, first_name, last_name, name, email, phone, address, city, state, zip_code,
		engagement_score, donor_stage, total_lifetime_giving, last_gift_date,
		do_not_email, do_not_call, do_not_mail, do_not_text, email_opt_in, newsletter_opt_in,
		created_at, updated_at
		FROM contacts WHERE deleted = FALSE ORDER BY name`

	clientsQuery = `SELECT id, name, email, phone, address, city, state, zip_code, created_at, updated_at
		FROM clients WHERE status = 'active' ORDER BY name`

	organizationsQuery = `SELECT id, name, email, phone, address, city, state, zip_code,
		total_donations, last_donation_date, created_at, updated_at
		FROM organizations WHERE deleted = FALSE ORDER BY name`

	teamMembersQuery = `SELECT id, first_name, last_name, email, phone, profile_picture, created_at, updated_at
		FROM team_members WHERE active = TRUE ORDER BY first_name, last_name`

	volunteersQuery = `SELECT id, first_name, last_name, name, email, phone, created_at, updated_at
		FROM volunteers WHERE active = TRUE ORDER BY first_name, last_name`
)

var countQueries = map[OriginType]string{
	OriginContact:      `SELECT COUNT(*) FROM contacts WHERE deleted = FALSE`,
	OriginClient:       `SELECT COUNT(*) FROM clients WHERE status = 'active'`,
	OriginOrganization: `SELECT COUNT(*) FROM organizations WHERE deleted = FALSE`,
	OriginTeam:         `SELECT COUNT(*) FROM team_members WHERE active = TRUE`,
	OriginVolunteer:    `SELECT COUNT(*) FROM volunteers WHERE active = TRUE`,
}

func (r *OriginRepositoryImpl) ListContacts(ctx context.Context) ([]ContactRow, error) {
	rows, err := r.db.DB.QueryContext(ctx, contactsQuery)
	if err != nil {
		return nil, classifyTableError(err)
	}
	defer rows.Close()

	var out []ContactRow
	for rows.Next() {
		var row ContactRow
		if err := rows.Scan(
			&row.ID, &row.FirstName, &row.LastName, &row.Name, &row.Email, &row.Phone,
			&row.Address, &row.City, &row.State, &row.ZipCode,
			&row.EngagementScore, &row.DonorStage, &row.TotalLifetimeGiving, &row.LastGiftDate,
			&row.DoNotEmail, &row.DoNotCall, &row.DoNotMail, &row.DoNotText,
			&row.EmailOptIn, &row.NewsletterOptIn,
			&row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *OriginRepositoryImpl) ListClients(ctx context.Context) ([]ClientRow, error) {
	rows, err := r.db.DB.QueryContext(ctx, clientsQuery)
	if err != nil {
		return nil, classifyTableError(err)
	}
	defer rows.Close()

	var out []ClientRow
	for rows.Next() {
		var row ClientRow
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Email, &row.Phone,
			&row.Address, &row.City, &row.State, &row.ZipCode,
			&row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *OriginRepositoryImpl) ListOrganizations(ctx context.Context) ([]OrganizationRow, error) {
	rows, err := r.db.DB.QueryContext(ctx, organizationsQuery)
	if err != nil {
		return nil, classifyTableError(err)
	}
	defer rows.Close()

	var out []OrganizationRow
	for rows.Next() {
		var row OrganizationRow
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Email, &row.Phone,
			&row.Address, &row.City, &row.State, &row.ZipCode,
			&row.TotalDonations, &row.LastDonationDate,
			&row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *OriginRepositoryImpl) ListTeamMembers(ctx context.Context) ([]TeamMemberRow, error) {
	rows, err := r.db.DB.QueryContext(ctx, teamMembersQuery)
	if err != nil {
		return nil, classifyTableError(err)
	}
	defer rows.Close()

	var out []TeamMemberRow
	for rows.Next() {
		var row TeamMemberRow
		if err := rows.Scan(
			&row.ID, &row.FirstName, &row.LastName, &row.Email, &row.Phone,
			&row.ProfilePicture, &row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *OriginRepositoryImpl) ListVolunteers(ctx context.Context) ([]VolunteerRow, error) {
	rows, err := r.db.DB.QueryContext(ctx, volunteersQuery)
	if err != nil {
		return nil, classifyTableError(err)
	}
	defer rows.Close()

	var out []VolunteerRow
	for rows.Next() {
		var row VolunteerRow
		if err := rows.Scan(
			&row.ID, &row.FirstName, &row.LastName, &row.Name, &row.Email, &row.Phone,
			&row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *OriginRepositoryImpl) CountOrigin(ctx context.Context, origin OriginType) (int64, error) {
	query, ok := countQueries[origin]
	if !ok {
		return 0, errors.New("unknown origin: " + string(origin))
	}

	var count int64
	if err := r.db.DB.QueryRowContext(ctx, query).Scan(&count); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, classifyTableError(err)
	}
	return count, nil
}

// classifyTableError maps driver-specific "relation does not exist" errors to
// ErrOriginTableMissing so partially provisioned backends degrade to empty.
func classifyTableError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "42P01" {
		return ErrOriginTableMissing
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1146 {
		return ErrOriginTableMissing
	}

	return err
}
