package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/OblivionLi/salaries-management-system/internal/config"
	"github.com/OblivionLi/salaries-management-system/internal/models"
	"github.com/OblivionLi/salaries-management-system/internal/repository"
	"github.com/OblivionLi/salaries-management-system/internal/response"
	"github.com/OblivionLi/salaries-management-system/internal/router"
	"github.com/OblivionLi/salaries-management-system/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------- in-memory fakes --------

type memRepo struct {
	salaries []models.Salary
	nextID   int64
}

func (m *memRepo) FindAll(ctx context.Context) ([]models.Salary, error) {
	out := make([]models.Salary, len(m.salaries))
	copy(out, m.salaries)
	return out, nil
}

func (m *memRepo) FindByID(ctx context.Context, id int64) (*models.Salary, error) {
	for i := range m.salaries {
		if m.salaries[i].ID == id {
			s := m.salaries[i]
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memRepo) Save(ctx context.Context, salary *models.Salary) error {
	if salary.ID == 0 {
		m.nextID++
		salary.ID = m.nextID
		m.salaries = append(m.salaries, *salary)
		return nil
	}
	for i := range m.salaries {
		if m.salaries[i].ID == salary.ID {
			m.salaries[i] = *salary
			return nil
		}
	}
	m.salaries = append(m.salaries, *salary)
	return nil
}

func (m *memRepo) Delete(ctx context.Context, salary *models.Salary) error {
	for i := range m.salaries {
		if m.salaries[i].ID == salary.ID {
			m.salaries = append(m.salaries[:i], m.salaries[i+1:]...)
			return nil
		}
	}
	return nil
}

type memCache struct {
	env *response.Envelope
}

func (m *memCache) Get(ctx context.Context) (*response.Envelope, error) { return m.env, nil }
func (m *memCache) Set(ctx context.Context, env *response.Envelope) error {
	m.env = env
	return nil
}
func (m *memCache) Invalidate(ctx context.Context) error {
	m.env = nil
	return nil
}

type noopNotifier struct{}

func (noopNotifier) Notify(ctx context.Context, salary *models.Salary) {}

func newTestRouter() *gin.Engine {
	repo := &memRepo{}
	svc := service.New(repo, &memCache{}, noopNotifier{})
	cfg := &config.Config{Server: config.ServerConfig{Mode: gin.TestMode}}
	return router.SetupRouter(cfg, svc, repo)
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validBody = `{"employee":"John Doe","salary":4200.50,"salaryDate":"2024-06-01T00:00:00Z"}`

// -------- validation boundary --------

func TestAddSalary_ValidationRejections(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"zero amount", `{"employee":"John Doe","salary":0,"salaryDate":"2024-06-01T00:00:00Z"}`},
		{"negative amount", `{"employee":"John Doe","salary":-5,"salaryDate":"2024-06-01T00:00:00Z"}`},
		{"missing employee", `{"salary":100,"salaryDate":"2024-06-01T00:00:00Z"}`},
		{"blank employee", `{"employee":"   ","salary":100,"salaryDate":"2024-06-01T00:00:00Z"}`},
		{"missing date", `{"employee":"John Doe","salary":100}`},
		{"malformed json", `{"employee":`},
	}

	r := newTestRouter()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/v1/salaries/add", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestEditSalary_BadID(t *testing.T) {
	r := newTestRouter()

	for _, id := range []string{"abc", "0", "-3"} {
		w := doJSON(r, http.MethodPatch, "/api/v1/salaries/edit/"+id, validBody)
		assert.Equal(t, http.StatusBadRequest, w.Code, "id %q", id)
	}
}

func TestDeleteSalary_BadID(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodDelete, "/api/v1/salaries/delete/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// -------- full CRUD flow through the router --------

func TestSalariesCRUDFlow(t *testing.T) {
	r := newTestRouter()

	// empty list → sentinel 404
	w := doJSON(r, http.MethodGet, "/api/v1/salaries/", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Data, 1)
	assert.Equal(t, int64(-1), env.Data[0].SalaryID)
	assert.Equal(t, response.MsgNoSalaries, env.Data[0].Message)

	// add → 201
	w = doJSON(r, http.MethodPost, "/api/v1/salaries/add", validBody)
	require.Equal(t, http.StatusCreated, w.Code)
	var view response.SalaryView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, int64(1), view.SalaryID)
	assert.Equal(t, "John Doe", view.Employee)
	assert.Len(t, view.Links, 4)

	// list → 200 with one record
	w = doJSON(r, http.MethodGet, "/api/v1/salaries/", "")
	require.Equal(t, http.StatusOK, w.Code)
	env = response.Envelope{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Data, 1)
	assert.Equal(t, int64(1), env.Data[0].SalaryID)

	// edit → 201, list reflects the write (cache does not mask it)
	w = doJSON(r, http.MethodPatch, "/api/v1/salaries/edit/1",
		`{"employee":"Jane Doe","salary":9000,"salaryDate":"2024-07-01T00:00:00Z"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/salaries/", "")
	require.Equal(t, http.StatusOK, w.Code)
	env = response.Envelope{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Data, 1)
	assert.Equal(t, "Jane Doe", env.Data[0].Employee)
	assert.Equal(t, 9000.0, env.Data[0].Salary)

	// edit a missing id → 404 shaped error view
	w = doJSON(r, http.MethodPatch, "/api/v1/salaries/edit/99", validBody)
	require.Equal(t, http.StatusNotFound, w.Code)
	view = response.SalaryView{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, response.MsgError, view.Message)
	require.Len(t, view.Links, 1)
	assert.Equal(t, "edit", view.Links[0].Rel)

	// delete → 200 envelope carrying the pre-delete view
	w = doJSON(r, http.MethodDelete, "/api/v1/salaries/delete/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	env = response.Envelope{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Data, 1)
	assert.Equal(t, int64(1), env.Data[0].SalaryID)
	assert.Equal(t, "Jane Doe", env.Data[0].Employee)

	// list → back to sentinel
	w = doJSON(r, http.MethodGet, "/api/v1/salaries/", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// -------- exports --------

func TestExportCSV(t *testing.T) {
	r := newTestRouter()
	doJSON(r, http.MethodPost, "/api/v1/salaries/add", validBody)

	w := doJSON(r, http.MethodGet, "/api/v1/salaries/export/csv", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Body.String(), "John Doe")
	assert.Contains(t, w.Body.String(), "4200.50")
}

func TestExportXLSX(t *testing.T) {
	r := newTestRouter()
	doJSON(r, http.MethodPost, "/api/v1/salaries/add", validBody)

	w := doJSON(r, http.MethodGet, "/api/v1/salaries/export/xlsx", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.NotZero(t, w.Body.Len())
}
