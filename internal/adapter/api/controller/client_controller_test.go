package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/farmaciags/backend/internal/adapter/repository"
	clientdomain "github.com/farmaciags/backend/internal/domain/client"
	"github.com/farmaciags/backend/pkg/logger"
)

// fakeClientRepo implementa client.Repository en memoria para las pruebas
type fakeClientRepo struct {
	clients []*clientdomain.Client
	nextID  int64
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{nextID: 1}
}

func (f *fakeClientRepo) Create(_ context.Context, c *clientdomain.Client) error {
	c.ID = f.nextID
	f.nextID++
	f.clients = append(f.clients, c)
	return nil
}

func (f *fakeClientRepo) FindByID(_ context.Context, id int64) (*clientdomain.Client, error) {
	for _, c := range f.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repository.ErrClientNotFound
}

func (f *fakeClientRepo) List(_ context.Context, _, _ int) ([]*clientdomain.Client, error) {
	return f.clients, nil
}

func (f *fakeClientRepo) Count(_ context.Context) (int, error) { return len(f.clients), nil }

func (f *fakeClientRepo) Update(_ context.Context, _ *clientdomain.Client) error { return nil }

func (f *fakeClientRepo) Delete(_ context.Context, _ int64) error { return nil }

func (f *fakeClientRepo) ExistsByEmail(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, c := range f.clients {
		if strings.EqualFold(c.Email, email) && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeClientRepo) ExistsByPhone(_ context.Context, phone string, excludeID int64) (bool, error) {
	for _, c := range f.clients {
		if c.Phone == phone && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeClientRepo) ExistsByCedula(_ context.Context, cedula string, excludeID int64) (bool, error) {
	for _, c := range f.clients {
		if c.Cedula == cedula && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeClientRepo) ExistsByRNC(_ context.Context, rnc string, excludeID int64) (bool, error) {
	for _, c := range f.clients {
		if c.RNC == rnc && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func newClientRouter(repo *fakeClientRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewClientController(repo, clientdomain.NewChecker(repo), logger.NewLogger())

	r := gin.New()
	r.POST("/clients", ctrl.Create)
	r.POST("/clients/check", ctrl.Check)
	r.PUT("/clients/:id", ctrl.Update)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestClientController_Create_OK(t *testing.T) {
	r := newClientRouter(newFakeClientRepo())

	w := doJSON(t, r, http.MethodPost, "/clients",
		`{"name":"Ana Pérez","email":"ana@example.com","phone":"809-555-0101"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, float64(1), resp["id"])
	require.Equal(t, "Ana Pérez", resp["name"])
}

func TestClientController_Create_CorreoDuplicado(t *testing.T) {
	repo := newFakeClientRepo()
	r := newClientRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/clients",
		`{"name":"Ana","email":"ana@example.com","phone":"809-555-0101"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// El mismo correo con otras mayúsculas sigue siendo un duplicado.
	w = doJSON(t, r, http.MethodPost, "/clients",
		`{"name":"Otra","email":"ANA@Example.com","phone":"809-555-0202"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var result clientdomain.CheckResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.False(t, result.IsValid)
	require.Equal(t, clientdomain.MsgDuplicateEmail, result.Message)
}

func TestClientController_Create_CamposRequeridos(t *testing.T) {
	r := newClientRouter(newFakeClientRepo())

	w := doJSON(t, r, http.MethodPost, "/clients", `{"name":"Ana"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var result clientdomain.CheckResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.False(t, result.IsValid)
	require.Equal(t, clientdomain.MsgRequiredFields, result.Message)
}

func TestClientController_Check_NoGuarda(t *testing.T) {
	repo := newFakeClientRepo()
	r := newClientRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/clients/check",
		`{"name":"Ana","email":"ana@example.com","phone":"809-555-0101"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result clientdomain.CheckResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.True(t, result.IsValid)
	require.Empty(t, repo.clients)
}

func TestClientController_Update_ExcluyeAlPropioCliente(t *testing.T) {
	repo := newFakeClientRepo()
	r := newClientRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/clients",
		`{"name":"Ana","email":"ana@example.com","phone":"809-555-0101"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// Actualizar al cliente con sus propios datos no es un duplicado.
	w = doJSON(t, r, http.MethodPut, "/clients/1",
		`{"name":"Ana María","email":"ana@example.com","phone":"809-555-0101"}`)
	require.Equal(t, http.StatusOK, w.Code)
}
