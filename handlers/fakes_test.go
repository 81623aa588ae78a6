package handlers

import (
	"context"
	"sort"
	"sync"
	"time"

	"leads-backend/models"
	"leads-backend/notifier"
	"leads-backend/repository"

	"github.com/google/uuid"
)

type memCandidates struct {
	mu   sync.Mutex
	rows map[string]models.Candidate
}

func (m *memCandidates) Create(ctx context.Context, c *models.Candidate) (*models.Candidate, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.rows[c.Email]; ok {
		return &existing, false, nil
	}
	row := *c
	row.Status = models.StatusPending
	row.CreatedAt = time.Now()
	row.UpdatedAt = row.CreatedAt
	m.rows[c.Email] = row
	return &row, true, nil
}

func (m *memCandidates) GetByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

func (m *memCandidates) Update(ctx context.Context, email string, patch models.CandidatePatch) (*models.Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.FullName != nil {
		row.FullName = *patch.FullName
	}
	if patch.ResumeFile != nil {
		row.ResumeFile = patch.ResumeFile
	}
	if patch.Status != nil {
		row.Status = *patch.Status
	}
	m.rows[email] = row
	return &row, nil
}

func (m *memCandidates) List(ctx context.Context) ([]*models.Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.Candidate, 0, len(m.rows))
	for _, row := range m.rows {
		out = append(out, &row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

type memAttorneys struct {
	mu   sync.Mutex
	rows map[string]models.Attorney
}

func (m *memAttorneys) Create(ctx context.Context, a *models.Attorney) (*models.Attorney, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.rows[a.Username]; ok {
		return &existing, false, nil
	}
	row := *a
	m.rows[a.Username] = row
	return &row, true, nil
}

func (m *memAttorneys) GetByUsername(ctx context.Context, username string) (*models.Attorney, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

type memFiles struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.File
}

func (m *memFiles) Create(ctx context.Context, f *models.File) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	f.CreatedAt = time.Now()
	m.rows[f.ID] = *f
	return nil
}

func (m *memFiles) GetByID(ctx context.Context, id uuid.UUID) (*models.File, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

type countingNotifier struct {
	mu    sync.Mutex
	kinds []notifier.TemplateKind
}

func (n *countingNotifier) Notify(ctx context.Context, address string, kind notifier.TemplateKind, data map[string]string) notifier.Outcome {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.kinds = append(n.kinds, kind)
	return notifier.Outcome{Status: notifier.StatusDelivered}
}

func (n *countingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.kinds)
}
