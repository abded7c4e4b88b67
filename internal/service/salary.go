package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/OblivionLi/salaries-management-system/internal/cache"
	"github.com/OblivionLi/salaries-management-system/internal/models"
	"github.com/OblivionLi/salaries-management-system/internal/repository"
	"github.com/OblivionLi/salaries-management-system/internal/response"
)

// Notifier publishes a change event for a saved record, best-effort.
type Notifier interface {
	Notify(ctx context.Context, salary *models.Salary)
}

// SalaryInput carries the already-validated fields of an add/edit request.
// The handler layer guarantees employee is non-empty, salary is strictly
// positive and the date is present before the service is reached.
type SalaryInput struct {
	Salary     float64
	Employee   string
	SalaryDate *time.Time
}

// SalaryService orchestrates the read and write paths over the store, the
// envelope cache and the change notifier. Cache and notifier failures never
// affect the caller-visible outcome; only store failures and missing ids do.
type SalaryService struct {
	repo    repository.Repository
	cache   cache.EnvelopeCache
	notify  Notifier
	version string
}

func New(repo repository.Repository, envCache cache.EnvelopeCache, notify Notifier) *SalaryService {
	return &SalaryService{
		repo:    repo,
		cache:   envCache,
		notify:  notify,
		version: "v1",
	}
}

// List is the cache-aside read path: probe the cache, fall back to the
// store, cache non-empty results for the next reader. An empty store yields
// a 404 sentinel envelope that is deliberately not cached, so a later add
// is visible immediately. A store failure is returned for the handler to
// surface as an internal error.
func (s *SalaryService) List(ctx context.Context) (*response.Envelope, int, error) {
	mainLinks := []response.Link{{Rel: "self", Href: "/api/" + s.version + "/salaries", Method: "GET", Version: s.version}}

	cached, err := s.cache.Get(ctx)
	if err != nil {
		log.Printf("service: cache probe failed, falling back to store: %v", err)
	}
	if cached != nil {
		log.Printf("service: salaries served from cache")
		return cached, http.StatusOK, nil
	}

	salaries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("retrieve salaries: %w", err)
	}

	if len(salaries) == 0 {
		log.Printf("service: no salaries found")
		env := &response.Envelope{
			Data:  []response.SalaryView{response.SentinelView(s.version)},
			Links: mainLinks,
		}
		return env, http.StatusNotFound, nil
	}

	env := s.buildListEnvelope(salaries, mainLinks)
	if err := s.cache.Set(ctx, env); err != nil {
		log.Printf("service: cache populate failed: %v", err)
	}
	return env, http.StatusOK, nil
}

func (s *SalaryService) buildListEnvelope(salaries []models.Salary, mainLinks []response.Link) *response.Envelope {
	views := make([]response.SalaryView, 0, len(salaries))
	for i := range salaries {
		views = append(views, response.NewSalaryView(&salaries[i], "get", s.version))
	}
	return &response.Envelope{Data: views, Links: mainLinks}
}

// Add creates a new record from the input. The store assigns the id.
func (s *SalaryService) Add(ctx context.Context, input SalaryInput) (*response.SalaryView, int) {
	return s.saveAndRespond(ctx, &models.Salary{}, input)
}

// Edit replaces all mutable fields of an existing record.
func (s *SalaryService) Edit(ctx context.Context, id int64, input SalaryInput) (*response.SalaryView, int) {
	salary, err := s.repo.FindByID(ctx, id)
	if err != nil {
		view := response.ErrorView(id, "edit", "PATCH", s.version)
		if errors.Is(err, repository.ErrNotFound) {
			log.Printf("service: edit: salary %d not found", id)
			return &view, http.StatusNotFound
		}
		log.Printf("service: edit: find salary %d: %v", id, err)
		return &view, http.StatusInternalServerError
	}
	return s.saveAndRespond(ctx, salary, input)
}

// saveAndRespond is the shared mutate-and-save routine behind Add and Edit.
// On success it notifies and invalidates the cache; on store failure it does
// neither and returns the shaped error view.
func (s *SalaryService) saveAndRespond(ctx context.Context, salary *models.Salary, input SalaryInput) (*response.SalaryView, int) {
	salary.Salary = input.Salary
	salary.SalaryDate = input.SalaryDate
	salary.Employee = input.Employee

	if err := s.repo.Save(ctx, salary); err != nil {
		log.Printf("service: save salary: %v", err)
		view := response.ErrorView(-1, "add", "POST", s.version)
		return &view, http.StatusInternalServerError
	}

	s.notify.Notify(ctx, salary)
	s.invalidateCache(ctx)

	view := response.NewSalaryView(salary, "add", s.version)
	return &view, http.StatusCreated
}

// Delete removes a record. The success view is captured before the delete so
// the response shows the pre-delete state. On a failed delete the cache is
// left alone and an error envelope is returned without verifying whether the
// row actually went away.
func (s *SalaryService) Delete(ctx context.Context, id int64) (*response.Envelope, int) {
	idStr := strconv.FormatInt(id, 10)
	mainLinks := []response.Link{{Rel: "self", Href: "/salaries/delete/" + idStr, Method: "DELETE", Version: s.version}}

	salary, err := s.repo.FindByID(ctx, id)
	if err != nil {
		env := &response.Envelope{
			Data:  []response.SalaryView{response.ErrorView(id, "delete", "DELETE", s.version)},
			Links: mainLinks,
		}
		if errors.Is(err, repository.ErrNotFound) {
			log.Printf("service: delete: salary %d not found", id)
			return env, http.StatusNotFound
		}
		log.Printf("service: delete: find salary %d: %v", id, err)
		return env, http.StatusInternalServerError
	}

	captured := response.NewSalaryView(salary, "delete", s.version)

	if err := s.repo.Delete(ctx, salary); err != nil {
		log.Printf("service: delete salary %d: %v", id, err)
		env := &response.Envelope{
			Data:  []response.SalaryView{response.ErrorView(id, "delete", "DELETE", s.version)},
			Links: mainLinks,
		}
		return env, http.StatusInternalServerError
	}

	s.invalidateCache(ctx)
	return &response.Envelope{
		Data:  []response.SalaryView{captured},
		Links: mainLinks,
	}, http.StatusOK
}

// RefreshCache rebuilds the cached list envelope from the store. An empty
// store leaves the cache untouched: absence is never cached. The error is
// returned for callers that care, but failures here are advisory.
func (s *SalaryService) RefreshCache(ctx context.Context) error {
	salaries, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Printf("service: refresh cache: %v", err)
		return err
	}
	if len(salaries) == 0 {
		return nil
	}

	mainLinks := []response.Link{{Rel: "self", Href: "/api/" + s.version + "/salaries", Method: "GET", Version: s.version}}
	if err := s.cache.Set(ctx, s.buildListEnvelope(salaries, mainLinks)); err != nil {
		log.Printf("service: refresh cache: %v", err)
		return err
	}
	log.Printf("service: salaries cache refreshed")
	return nil
}

func (s *SalaryService) invalidateCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("service: cache invalidate failed: %v", err)
		return
	}
	log.Printf("service: salaries cache cleared")
}
