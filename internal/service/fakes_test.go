package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/placement-portal/api/internal/domain"
	"github.com/placement-portal/api/internal/repository"
)

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.User
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type appKey struct{ user, job int64 }

// fakeApplicationRepo mirrors the ON CONFLICT upsert under a mutex.
type fakeApplicationRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[appKey]*domain.Application
	jobs   map[int64]domain.Job
	users  *fakeUserRepo
	now    func() time.Time
}

func newFakeApplicationRepo(users *fakeUserRepo, jobs ...domain.Job) *fakeApplicationRepo {
	r := &fakeApplicationRepo{rows: map[appKey]*domain.Application{}, jobs: map[int64]domain.Job{}, users: users, now: time.Now}
	for _, j := range jobs {
		r.jobs[j.ID] = j
	}
	return r
}

func (r *fakeApplicationRepo) Upsert(_ context.Context, app *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[app.JobID]; !ok {
		return repository.ErrJobNotFound
	}
	key := appKey{app.UserID, app.JobID}
	row, ok := r.rows[key]
	if !ok {
		r.nextID++
		row = &domain.Application{
			ID:        r.nextID,
			UserID:    app.UserID,
			JobID:     app.JobID,
			Status:    domain.ApplicationStatusApplied,
			AppliedAt: r.now(),
		}
		r.rows[key] = row
	}
	row.ResumeURL = app.ResumeURL
	row.CoverLetter = app.CoverLetter
	*app = *row
	return nil
}

func (r *fakeApplicationRepo) ListByStudent(_ context.Context, userID int64) ([]domain.StudentApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.StudentApplication, 0)
	for key, row := range r.rows {
		if key.user != userID {
			continue
		}
		job := r.jobs[key.job]
		result = append(result, domain.StudentApplication{Application: *row, Title: job.Title, Company: job.Company, Location: job.Location})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AppliedAt.After(result[j].AppliedAt) })
	return result, nil
}

func (r *fakeApplicationRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.JobApplicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.JobApplicant, 0)
	for key, row := range r.rows {
		if key.job != jobID {
			continue
		}
		u, _ := r.users.GetByID(ctx, key.user)
		item := domain.JobApplicant{Application: *row}
		if u != nil {
			item.StudentName, item.StudentEmail, item.Branch, item.GraduationYear = u.Name, u.Email, u.Branch, u.GraduationYear
		}
		result = append(result, item)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AppliedAt.After(result[j].AppliedAt) })
	return result, nil
}

func (r *fakeApplicationRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

type fakeJobRepo struct {
	nextID int64
	jobs   map[int64]domain.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[int64]domain.Job{}}
}

func (r *fakeJobRepo) List(context.Context) ([]domain.Job, error) {
	result := make([]domain.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		result = append(result, j)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id int64) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &j, nil
}

func (r *fakeJobRepo) Create(_ context.Context, job *domain.Job) error {
	r.nextID++
	job.ID = r.nextID
	job.CreatedAt = time.Now()
	r.jobs[job.ID] = *job
	return nil
}

func (r *fakeJobRepo) Update(_ context.Context, job *domain.Job) error {
	existing, ok := r.jobs[job.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	job.CreatedBy = existing.CreatedBy
	job.CreatedAt = existing.CreatedAt
	r.jobs[job.ID] = *job
	return nil
}

func (r *fakeJobRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.jobs[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.jobs, id)
	return nil
}
