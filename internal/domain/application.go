package domain

import "time"

// ApplicationStatus values understood by storage. Only Applied is set here.
type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusSelected    ApplicationStatus = "selected"
)

// Application is one student's application to one job.
type Application struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"user_id"`
	JobID       int64             `json:"job_id"`
	ResumeURL   *string           `json:"resume_url"`
	CoverLetter *string           `json:"cover_letter"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"applied_at"`
}

// StudentApplication is an application joined with the job's display fields.
type StudentApplication struct {
	Application
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
}

// JobApplicant is an application joined with the applicant's profile.
type JobApplicant struct {
	Application
	StudentName    string  `json:"student_name"`
	StudentEmail   string  `json:"student_email"`
	Branch         *string `json:"branch"`
	GraduationYear *int    `json:"graduation_year"`
}
