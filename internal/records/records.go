// Package records defines the raw profile, opportunity and placement records
// supplied by the surrounding application's store. The core never mutates or
// persists them; it only receives transient copies.
package records

// Placement statuses.
const (
	StatusPending   = "pending"
	StatusActive    = "active"
	StatusPlaced    = "placed"
	StatusCompleted = "completed"
	StatusWithdrawn = "withdrawn"
)

// StudentProfile is the raw student record as the store returns it.
// Identity fields are privacy-sensitive and must be stripped before the
// record leaves this process; see the privacy package.
type StudentProfile struct {
	SubjectID    string   `json:"subject_id,omitempty"`
	NationalID   string   `json:"national_id,omitempty"`
	ProfileLinks []string `json:"profile_links,omitempty"`
	CVLink       string   `json:"cv_link,omitempty"`
	DateOfBirth  string   `json:"date_of_birth,omitempty"`
	Race         string   `json:"race,omitempty"`
	Nationality  string   `json:"nationality,omitempty"`

	FieldOfStudy  string   `json:"field_of_study,omitempty"`
	Qualification string   `json:"qualification,omitempty"`
	Institution   string   `json:"institution,omitempty"`
	Location      string   `json:"location,omitempty"`
	Languages     string   `json:"languages,omitempty"`
	Gender        string   `json:"gender,omitempty"`
	Skills        []string `json:"skills,omitempty"`
	Experience    string   `json:"experience,omitempty"`
	Headline      string   `json:"headline,omitempty"`
	YearOfStudy   int      `json:"year_of_study,omitempty"`
}

// Opportunity is an employer-supplied posting. Read-only input.
type Opportunity struct {
	ID             string   `json:"id,omitempty"`
	Title          string   `json:"title,omitempty" validate:"required"`
	Company        string   `json:"company,omitempty"`
	Industry       string   `json:"industry,omitempty"`
	FieldsOfStudy  []string `json:"fields_of_study,omitempty"`
	Location       string   `json:"location,omitempty"`
	Type           string   `json:"type,omitempty"`
	Description    string   `json:"description,omitempty"`
	Requirements   string   `json:"requirements,omitempty"`
	StipendMin     int      `json:"stipend_min,omitempty" validate:"gte=0"`
	StipendMax     int      `json:"stipend_max,omitempty" validate:"gte=0"`
	Deadline       string   `json:"deadline,omitempty"`
	PostedAt       string   `json:"posted_at,omitempty"`
}

// Placement is a work-integrated-learning placement record. It is created
// when a placement begins and mutated by status, hours and assessment
// updates over its lifecycle. Records are never deleted; the status moves to
// completed or withdrawn instead.
type Placement struct {
	ID               string   `json:"id,omitempty"`
	StudentID        string   `json:"student_id,omitempty"`
	Institution      string   `json:"institution,omitempty"`
	Employer         string   `json:"employer,omitempty"`
	Type             string   `json:"type,omitempty"`
	Status           string   `json:"status,omitempty" validate:"omitempty,oneof=pending active placed completed withdrawn"`
	HoursRequired    int      `json:"hours_required,omitempty" validate:"gte=0"`
	HoursCompleted   int      `json:"hours_completed,omitempty" validate:"gte=0"`
	AssessmentScore  *float64 `json:"assessment_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	SupervisorEmail  string   `json:"supervisor_email,omitempty"`
	RiskFactors      []string `json:"risk_factors,omitempty"`
	EmployerFeedback string   `json:"employer_feedback,omitempty"`
	StudentFeedback  string   `json:"student_feedback,omitempty"`
}
