// Package session keeps per-visitor page state in memory: the form, the two
// result slots, their busy flags and a pending notification.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/buildwise/smart-estimator/internal/buildwise/domain"
	"github.com/buildwise/smart-estimator/internal/buildwise/form"
	"github.com/buildwise/smart-estimator/internal/logging"
)

// Notifications shown after a failed request.
const (
	NoticeEstimateFailed = "Error connecting to backend"
	NoticePlanFailed     = "Error generating plan"
)

type Estimator interface {
	Estimate(ctx context.Context, in domain.EstimateRequest) (*domain.EstimateResult, error)
}

type Planner interface {
	GeneratePlan(ctx context.Context, description string) (*domain.PlanResult, error)
}

// Workspace is one visitor's page. Each request writes only its own slot and
// busy flag; when requests overlap the last one to finish wins.
type Workspace struct {
	id string

	mu           sync.Mutex
	form         *form.State
	estimate     *domain.EstimateResult
	plan         *domain.PlanResult
	estimating   bool
	planning     bool
	notification string
	updatedAt    time.Time
}

// View is a copy of a workspace for rendering. Results are shared but never
// mutated once stored.
type View struct {
	ID           string                 `json:"session_id"`
	Form         domain.FormInput       `json:"form"`
	Estimate     *domain.EstimateResult `json:"estimate,omitempty"`
	Plan         *domain.PlanResult     `json:"plan,omitempty"`
	Estimating   bool                   `json:"estimating"`
	Planning     bool                   `json:"planning"`
	Notification string                 `json:"notification,omitempty"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

func NewWorkspace(id string) *Workspace {
	return &Workspace{id: id, form: form.New(), updatedAt: time.Now().UTC()}
}

func (w *Workspace) ID() string { return w.id }

// SetField records one form edit.
func (w *Workspace) SetField(name, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()
	return w.form.Set(name, value)
}

// UpdateForm records several form edits.
func (w *Workspace) UpdateForm(values map[string]string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()
	return w.form.SetAll(values)
}

// SubmitEstimate coerces the current form and sends it. On failure the
// previous estimate is kept and a notification is queued.
func (w *Workspace) SubmitEstimate(ctx context.Context, est Estimator) (*domain.EstimateResult, error) {
	w.mu.Lock()
	req := w.form.EstimateRequest()
	w.estimating = true
	w.touch()
	w.mu.Unlock()

	res, err := est.Estimate(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.estimating = false
	w.touch()
	if err != nil {
		logging.NewLogger(ctx).LogError("submit_estimate", err)
		w.notification = NoticeEstimateFailed
		return nil, err
	}
	w.estimate = res
	return res, nil
}

// GeneratePlan sends the current description. Failure policy matches
// SubmitEstimate.
func (w *Workspace) GeneratePlan(ctx context.Context, planner Planner) (*domain.PlanResult, error) {
	w.mu.Lock()
	description := w.form.Description()
	w.planning = true
	w.touch()
	w.mu.Unlock()

	res, err := planner.GeneratePlan(ctx, description)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.planning = false
	w.touch()
	if err != nil {
		logging.NewLogger(ctx).LogError("generate_plan", err)
		w.notification = NoticePlanFailed
		return nil, err
	}
	w.plan = res
	return res, nil
}

func (w *Workspace) Snapshot() View {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot()
}

// TakeSnapshot returns the view and clears the pending notification, so it is
// shown once.
func (w *Workspace) TakeSnapshot() View {
	w.mu.Lock()
	defer w.mu.Unlock()
	v := w.snapshot()
	w.notification = ""
	return v
}

func (w *Workspace) snapshot() View {
	return View{
		ID:           w.id,
		Form:         w.form.Values(),
		Estimate:     w.estimate,
		Plan:         w.plan,
		Estimating:   w.estimating,
		Planning:     w.planning,
		Notification: w.notification,
		UpdatedAt:    w.updatedAt,
	}
}

func (w *Workspace) touch() { w.updatedAt = time.Now().UTC() }
