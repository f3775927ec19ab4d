// Package store is the profile/record store collaborator: simple key
// lookups for raw records and inserts for audit rows. The core library never
// depends on this package; the surrounding application wires it in.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/fairwork-za/wilmatch/internal/records"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// Connect establishes and verifies a connection pool.
func Connect(ctx context.Context, databaseURL string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to store: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping store: %w", err)
	}

	return &Store{pool: pool, logger: logger}, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// GetStudentProfile fetches one raw profile by subject identifier.
func (s *Store) GetStudentProfile(ctx context.Context, subjectID string) (*records.StudentProfile, error) {
	var profile records.StudentProfile

	err := s.pool.QueryRow(ctx,
		`SELECT subject_id, national_id, profile_links, cv_link, date_of_birth, race, nationality,
		        field_of_study, qualification, institution, location, languages, gender, skills,
		        experience, headline, year_of_study
		 FROM student_profiles WHERE subject_id = $1`,
		subjectID,
	).Scan(
		&profile.SubjectID, &profile.NationalID, &profile.ProfileLinks, &profile.CVLink,
		&profile.DateOfBirth, &profile.Race, &profile.Nationality,
		&profile.FieldOfStudy, &profile.Qualification, &profile.Institution, &profile.Location,
		&profile.Languages, &profile.Gender, &profile.Skills,
		&profile.Experience, &profile.Headline, &profile.YearOfStudy,
	)
	if err != nil {
		return nil, fmt.Errorf("get student profile %q: %w", subjectID, err)
	}

	return &profile, nil
}

// GetOpportunity fetches one posting by identifier.
func (s *Store) GetOpportunity(ctx context.Context, id string) (*records.Opportunity, error) {
	var opportunity records.Opportunity

	err := s.pool.QueryRow(ctx,
		`SELECT id, title, company, industry, fields_of_study, location, type, description,
		        requirements, stipend_min, stipend_max, deadline
		 FROM opportunities WHERE id = $1`,
		id,
	).Scan(
		&opportunity.ID, &opportunity.Title, &opportunity.Company, &opportunity.Industry,
		&opportunity.FieldsOfStudy, &opportunity.Location, &opportunity.Type,
		&opportunity.Description, &opportunity.Requirements,
		&opportunity.StipendMin, &opportunity.StipendMax, &opportunity.Deadline,
	)
	if err != nil {
		return nil, fmt.Errorf("get opportunity %q: %w", id, err)
	}

	return &opportunity, nil
}

// ListPlacements fetches every placement record. Lifecycle filtering is the
// caller's concern.
func (s *Store) ListPlacements(ctx context.Context) ([]*records.Placement, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, student_id, institution, employer, type, status, hours_required,
		        hours_completed, assessment_score, supervisor_email, risk_factors
		 FROM placements`,
	)
	if err != nil {
		return nil, fmt.Errorf("list placements: %w", err)
	}
	defer rows.Close()

	var placements []*records.Placement
	for rows.Next() {
		var p records.Placement
		if err := rows.Scan(
			&p.ID, &p.StudentID, &p.Institution, &p.Employer, &p.Type, &p.Status,
			&p.HoursRequired, &p.HoursCompleted, &p.AssessmentScore,
			&p.SupervisorEmail, &p.RiskFactors,
		); err != nil {
			return nil, fmt.Errorf("scan placement: %w", err)
		}
		placements = append(placements, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list placements: %w", err)
	}

	return placements, nil
}
