package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"

	"github.com/hireloop/swipematch/internal/datasources"
	"github.com/hireloop/swipematch/internal/domain"
)

// mysqlDuplicateEntry is the server error number for a unique key violation.
// Duplicate swipes are detected through this structured code, never by
// matching error message text.
const mysqlDuplicateEntry = 1062

var _ datasources.RecordStore = (*Repository)(nil)
var _ datasources.ApplicationStore = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const candidateColumns = `id, full_name, bio, skills, years_experience,
	city, state, country, preferred_job_type,
	education, experience, resumes, vector, vector_updated_at`

func (r *Repository) FetchCandidate(ctx context.Context, candidateID string) (domain.CandidateProfile, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+candidateColumns+" FROM candidates WHERE id = ?", candidateID)

	candidate, err := scanCandidate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CandidateProfile{}, fmt.Errorf("candidate [%s]: %w", candidateID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.CandidateProfile{}, fmt.Errorf("fetching candidate [%s]: %w", candidateID, err)
	}

	return candidate, nil
}

func scanCandidate(row *sql.Row) (domain.CandidateProfile, error) {
	var c domain.CandidateProfile
	var skills, education, experience, resumes sql.NullString
	var years sql.NullInt64
	var vector []byte
	var vectorUpdatedAt sql.NullTime

	err := row.Scan(
		&c.ID, &c.FullName, &c.Bio, &skills, &years,
		&c.City, &c.State, &c.Country, &c.PreferredJobType,
		&education, &experience, &resumes, &vector, &vectorUpdatedAt,
	)
	if err != nil {
		return domain.CandidateProfile{}, err
	}

	if years.Valid {
		y := int(years.Int64)
		c.YearsExperience = &y
	}
	if err := decodeJSONColumn(skills, &c.Skills); err != nil {
		return domain.CandidateProfile{}, fmt.Errorf("decoding skills: %w", err)
	}
	if err := decodeJSONColumn(education, &c.Education); err != nil {
		return domain.CandidateProfile{}, fmt.Errorf("decoding education: %w", err)
	}
	if err := decodeJSONColumn(experience, &c.Experience); err != nil {
		return domain.CandidateProfile{}, fmt.Errorf("decoding experience: %w", err)
	}
	if err := decodeJSONColumn(resumes, &c.Resumes); err != nil {
		return domain.CandidateProfile{}, fmt.Errorf("decoding resumes: %w", err)
	}
	if vector != nil {
		c.Vector, err = bytesToFloat32Slice(vector)
		if err != nil {
			return domain.CandidateProfile{}, fmt.Errorf("decoding vector: %w", err)
		}
	}
	if vectorUpdatedAt.Valid {
		c.VectorUpdatedAt = &vectorUpdatedAt.Time
	}

	return c, nil
}

const jobColumns = `id, recruiter_id, title, description, required_skills, job_type,
	salary_min, salary_max, salary_currency,
	min_experience_years, max_experience_years, education_level,
	location, status, deadline, posted_at, vector, vector_updated_at`

func (r *Repository) FetchJob(ctx context.Context, jobID string) (domain.JobPosting, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+jobColumns+" FROM jobs WHERE id = ?", jobID)
	if err != nil {
		return domain.JobPosting{}, fmt.Errorf("fetching job [%s]: %w", jobID, err)
	}

	jobs, err := collectJobs(rows)
	if err != nil {
		return domain.JobPosting{}, fmt.Errorf("fetching job [%s]: %w", jobID, err)
	}
	if len(jobs) == 0 {
		return domain.JobPosting{}, fmt.Errorf("job [%s]: %w", jobID, domain.ErrNotFound)
	}

	return jobs[0], nil
}

func (r *Repository) FetchJobsByID(ctx context.Context, jobIDs []string) ([]domain.JobPosting, error) {
	if len(jobIDs) == 0 {
		return nil, nil
	}

	sb := sqlbuilder.Select(jobColumns)
	sb.From("jobs")
	sb.Where(sb.In("id", sqlbuilder.List(jobIDs)))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching jobs by ID: %w", err)
	}

	jobs, err := collectJobs(rows)
	if err != nil {
		return nil, fmt.Errorf("fetching jobs by ID: %w", err)
	}

	// Return jobs in the same order as the input IDs.
	jobsByID := make(map[string]domain.JobPosting, len(jobs))
	for _, job := range jobs {
		jobsByID[job.ID] = job
	}

	ordered := make([]domain.JobPosting, 0, len(jobIDs))
	for _, id := range jobIDs {
		if job, exists := jobsByID[id]; exists {
			ordered = append(ordered, job)
		}
	}
	return ordered, nil
}

func (r *Repository) ListLatestJobs(
	ctx context.Context,
	filters domain.JobFilters,
	options domain.JobListOptions,
) ([]domain.JobPosting, error) {
	sb := sqlbuilder.Select(jobColumns)
	sb.From("jobs")

	conds := buildJobConditions(sb, filters)
	if len(conds) > 0 {
		sb.Where(conds...)
	}

	orderings, err := buildJobOrder(options)
	if err != nil {
		return nil, fmt.Errorf("building jobs order by clause: %w", err)
	}

	sb.OrderBy(orderings...)
	sb.Offset((options.Page - 1) * options.PageSize)
	sb.Limit(options.PageSize)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running jobs query: %w", err)
	}

	jobs, err := collectJobs(rows)
	if err != nil {
		return nil, fmt.Errorf("listing latest jobs: %w", err)
	}
	return jobs, nil
}

func buildJobConditions(sb *sqlbuilder.SelectBuilder, filters domain.JobFilters) []string {
	var conds []string

	if len(filters.OnlyStatuses) > 0 {
		statuses := make([]any, 0, len(filters.OnlyStatuses))
		for _, s := range filters.OnlyStatuses {
			statuses = append(statuses, string(s))
		}
		conds = append(conds, sb.In("status", statuses...))
	}

	if filters.RecruiterID != "" {
		conds = append(conds, sb.Equal("recruiter_id", filters.RecruiterID))
	}

	return conds
}

func buildJobOrder(options domain.JobListOptions) ([]string, error) {
	if len(options.Ordering) == 0 {
		return []string{"posted_at DESC"}, nil
	}

	orderings := make([]string, 0, len(options.Ordering))
	for _, ordering := range options.Ordering {
		valid := false
		for _, field := range domain.ValidJobOrderingFields {
			if ordering.Field == field {
				valid = true
				break
			}
		}
		if !valid {
			return nil, fmt.Errorf("unrecognised job ordering field: %s", ordering.Field)
		}

		clause := string(ordering.Field)
		if ordering.Desc {
			clause += " DESC"
		}
		orderings = append(orderings, clause)
	}

	return orderings, nil
}

func collectJobs(rows *sql.Rows) ([]domain.JobPosting, error) {
	defer func() { _ = rows.Close() }()

	jobs := []domain.JobPosting{}
	for rows.Next() {
		var j domain.JobPosting
		var requiredSkills sql.NullString
		var minYears, maxYears sql.NullInt64
		var deadline, vectorUpdatedAt sql.NullTime
		var vector []byte

		if err := rows.Scan(
			&j.ID, &j.RecruiterID, &j.Title, &j.Description, &requiredSkills, &j.JobType,
			&j.SalaryMin, &j.SalaryMax, &j.SalaryCurrency,
			&minYears, &maxYears, &j.EducationLevel,
			&j.Location, &j.Status, &deadline, &j.PostedAt, &vector, &vectorUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning job: %w", err)
		}

		// NULL required_skills means the posting carries no skills
		// requirement; an empty JSON array means one was listed with no
		// specific skills. The scorer relies on the distinction.
		if requiredSkills.Valid {
			j.RequiredSkills = []string{}
			if err := json.Unmarshal([]byte(requiredSkills.String), &j.RequiredSkills); err != nil {
				return nil, fmt.Errorf("decoding required skills: %w", err)
			}
			if j.RequiredSkills == nil {
				j.RequiredSkills = []string{}
			}
		}
		if minYears.Valid {
			y := int(minYears.Int64)
			j.MinExperienceYears = &y
		}
		if maxYears.Valid {
			y := int(maxYears.Int64)
			j.MaxExperienceYears = &y
		}
		if deadline.Valid {
			j.Deadline = &deadline.Time
		}
		if vector != nil {
			var err error
			j.Vector, err = bytesToFloat32Slice(vector)
			if err != nil {
				return nil, fmt.Errorf("decoding vector: %w", err)
			}
		}
		if vectorUpdatedAt.Valid {
			j.VectorUpdatedAt = &vectorUpdatedAt.Time
		}

		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return jobs, nil
}

func (r *Repository) UpdateCandidateVector(
	ctx context.Context, candidateID string, vector []float32, updatedAt time.Time,
) error {
	return r.updateVector(ctx, "candidates", candidateID, vector, updatedAt)
}

func (r *Repository) UpdateJobVector(
	ctx context.Context, jobID string, vector []float32, updatedAt time.Time,
) error {
	return r.updateVector(ctx, "jobs", jobID, vector, updatedAt)
}

func (r *Repository) updateVector(
	ctx context.Context, table, id string, vector []float32, updatedAt time.Time,
) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE "+table+" SET vector = ?, vector_updated_at = ? WHERE id = ?",
		float32SliceToBytes(vector), updatedAt, id)
	if err != nil {
		return fmt.Errorf("updating vector in %s [%s]: %w", table, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking vector update in %s [%s]: %w", table, id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s [%s]: %w", table, id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repository) ListCandidateIDsMissingVectors(ctx context.Context, limit int) ([]string, error) {
	return r.listIDsMissingVectors(ctx, "candidates", limit)
}

func (r *Repository) ListJobIDsMissingVectors(ctx context.Context, limit int) ([]string, error) {
	return r.listIDsMissingVectors(ctx, "jobs", limit)
}

func (r *Repository) listIDsMissingVectors(ctx context.Context, table string, limit int) ([]string, error) {
	sb := sqlbuilder.Select("id")
	sb.From(table)
	sb.Where(sb.IsNull("vector"))
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running missing vector query on %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning %s id: %w", table, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return ids, nil
}

const applicationColumns = `id, candidate_id, job_id, status, cover_note, source, created_at, decided_at`

// CreateApplication inserts the pending application for the pair. The unique
// (candidate_id, job_id) index makes the store the arbiter of races between
// concurrent swipes: a duplicate key is reported as CreateResultAlreadyExists
// alongside the existing record, not as an error.
func (r *Repository) CreateApplication(
	ctx context.Context,
	candidateID, jobID, coverNote string,
	source domain.SwipeSource,
) (domain.Application, datasources.CreateResult, error) {
	application := domain.Application{
		ID:          uuid.NewString(),
		CandidateID: candidateID,
		JobID:       jobID,
		Status:      domain.ApplicationStatusPending,
		CoverNote:   coverNote,
		Source:      source,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO applications (id, candidate_id, job_id, status, cover_note, source, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		application.ID, application.CandidateID, application.JobID,
		application.Status, application.CoverNote, application.Source, application.CreatedAt,
	)
	if err != nil {
		var mysqlErr *mysqldriver.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			existing, getErr := r.getApplicationByPair(ctx, candidateID, jobID)
			if getErr != nil {
				return domain.Application{}, datasources.CreateResultAlreadyExists,
					fmt.Errorf("fetching existing application: %w", getErr)
			}
			return existing, datasources.CreateResultAlreadyExists, nil
		}
		return domain.Application{}, datasources.CreateResultCreated,
			fmt.Errorf("inserting application: %w", err)
	}

	return application, datasources.CreateResultCreated, nil
}

func (r *Repository) GetApplication(ctx context.Context, applicationID string) (domain.Application, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+applicationColumns+" FROM applications WHERE id = ?", applicationID)

	application, err := scanApplication(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Application{}, fmt.Errorf("application [%s]: %w", applicationID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Application{}, fmt.Errorf("fetching application [%s]: %w", applicationID, err)
	}
	return application, nil
}

func (r *Repository) getApplicationByPair(
	ctx context.Context, candidateID, jobID string,
) (domain.Application, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+applicationColumns+" FROM applications WHERE candidate_id = ? AND job_id = ?",
		candidateID, jobID)
	return scanApplication(row.Scan)
}

// DecideApplication transitions pending to accepted or rejected exactly once.
// The row lock serializes concurrent recruiter decisions.
func (r *Repository) DecideApplication(
	ctx context.Context,
	applicationID string,
	status domain.ApplicationStatus,
) (domain.Application, error) {
	if status != domain.ApplicationStatusAccepted && status != domain.ApplicationStatusRejected {
		return domain.Application{}, fmt.Errorf(
			"cannot decide application to status [%s]: %w", status, domain.ErrInvalidTransition)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Application{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx,
		"SELECT "+applicationColumns+" FROM applications WHERE id = ? FOR UPDATE", applicationID)

	application, err := scanApplication(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Application{}, fmt.Errorf("application [%s]: %w", applicationID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Application{}, fmt.Errorf("locking application [%s]: %w", applicationID, err)
	}

	if !application.CanDecide() {
		return domain.Application{}, fmt.Errorf(
			"application [%s] already [%s]: %w", applicationID, application.Status, domain.ErrInvalidTransition)
	}

	decidedAt := time.Now().UTC().Truncate(time.Second)
	if _, err := tx.ExecContext(ctx,
		"UPDATE applications SET status = ?, decided_at = ? WHERE id = ?",
		status, decidedAt, applicationID,
	); err != nil {
		return domain.Application{}, fmt.Errorf("updating application [%s]: %w", applicationID, err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Application{}, fmt.Errorf("committing transaction: %w", err)
	}

	application.Status = status
	application.DecidedAt = &decidedAt
	return application, nil
}

func scanApplication(scan func(dest ...any) error) (domain.Application, error) {
	var a domain.Application
	var decidedAt sql.NullTime

	err := scan(
		&a.ID, &a.CandidateID, &a.JobID, &a.Status,
		&a.CoverNote, &a.Source, &a.CreatedAt, &decidedAt,
	)
	if err != nil {
		return domain.Application{}, err
	}

	if decidedAt.Valid {
		a.DecidedAt = &decidedAt.Time
	}
	return a, nil
}

// UpdateJobStatus performs a free transition among the valid job statuses.
func (r *Repository) UpdateJobStatus(ctx context.Context, jobID string, status domain.JobStatus) error {
	if !status.Valid() {
		return fmt.Errorf("unknown job status [%s]: %w", status, domain.ErrInvalidTransition)
	}

	res, err := r.db.ExecContext(ctx,
		"UPDATE jobs SET status = ? WHERE id = ?", status, jobID)
	if err != nil {
		return fmt.Errorf("updating job status [%s]: %w", jobID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking job status update [%s]: %w", jobID, err)
	}
	if affected == 0 {
		return fmt.Errorf("job [%s]: %w", jobID, domain.ErrNotFound)
	}
	return nil
}

func decodeJSONColumn[T any](column sql.NullString, dest *T) error {
	if !column.Valid || column.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(column.String), dest)
}
