package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/farmaciags/backend/internal/adapter/api/dto"
	"github.com/farmaciags/backend/internal/adapter/repository"
	saledomain "github.com/farmaciags/backend/internal/domain/sale"
	"github.com/farmaciags/backend/pkg/auth"
	"github.com/farmaciags/backend/pkg/logger"
	"github.com/farmaciags/backend/pkg/validator"
)

// fakeSaleRepo implementa sale.Repository en memoria para las pruebas
type fakeSaleRepo struct {
	sales  []*saledomain.Sale
	nextID int64
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{nextID: 1}
}

func (f *fakeSaleRepo) Create(_ context.Context, s *saledomain.Sale) error {
	s.ID = f.nextID
	f.nextID++
	f.sales = append(f.sales, s)
	return nil
}

func (f *fakeSaleRepo) FindByID(_ context.Context, id int64) (*saledomain.Sale, error) {
	for _, s := range f.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, repository.ErrSaleNotFound
}

func (f *fakeSaleRepo) List(_ context.Context, _, _ int) ([]*saledomain.Sale, error) {
	return f.sales, nil
}

func (f *fakeSaleRepo) Count(_ context.Context) (int, error) { return len(f.sales), nil }

func (f *fakeSaleRepo) Cancel(_ context.Context, id int64) error {
	for _, s := range f.sales {
		if s.ID == id {
			return s.Cancel()
		}
	}
	return repository.ErrSaleNotFound
}

func (f *fakeSaleRepo) FindByPeriod(_ context.Context, from, to time.Time) ([]*saledomain.Sale, error) {
	out := make([]*saledomain.Sale, 0)
	for _, s := range f.sales {
		if s.Cancelled() {
			continue
		}
		if !s.CreatedAt.Before(from) && s.CreatedAt.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSaleRepo) FindByPeriodWithItems(ctx context.Context, from, to time.Time) ([]*saledomain.Sale, error) {
	return f.FindByPeriod(ctx, from, to)
}

func newSaleRouter(repo *fakeSaleRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewSaleController(repo, validator.New(), logger.NewLogger())

	r := gin.New()
	// Simula el middleware de autenticación dejando el usuario en contexto.
	r.Use(func(c *gin.Context) { c.Set(auth.CtxUserID, int64(1)) })
	r.POST("/sales", ctrl.Create)
	r.GET("/cashbox/summary", ctrl.CashboxSummary)
	r.GET("/cashbox/details", ctrl.CashboxDetails)
	return r
}

func TestSaleController_Create_OK(t *testing.T) {
	repo := newFakeSaleRepo()
	r := newSaleRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/sales",
		`{"clientId":0,"total":100,"paymentMethod":"cash","details":[{"medicineId":10,"quantity":2,"price":50}]}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SaleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, float64(100), resp.Total)
	require.Equal(t, "Cliente ocasional", resp.ClientName)
	require.Len(t, repo.sales, 1)
	require.Nil(t, repo.sales[0].ClientID)
}

func TestSaleController_Create_CantidadInvalida(t *testing.T) {
	r := newSaleRouter(newFakeSaleRepo())

	w := doJSON(t, r, http.MethodPost, "/sales",
		`{"clientId":0,"total":100,"details":[{"medicineId":10,"quantity":0,"price":50}]}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp.Errors, "details[0].quantity")
}

func TestSaleController_Create_SinLineas(t *testing.T) {
	r := newSaleRouter(newFakeSaleRepo())

	w := doJSON(t, r, http.MethodPost, "/sales", `{"clientId":0,"total":0,"details":[]}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp.Errors, "details")
}

func TestSaleController_CashboxSummary(t *testing.T) {
	repo := newFakeSaleRepo()
	r := newSaleRouter(repo)

	for _, body := range []string{
		`{"clientId":0,"total":100,"paymentMethod":"cash","details":[{"medicineId":1,"quantity":2,"price":50}]}`,
		`{"clientId":0,"total":20,"paymentMethod":"card","details":[{"medicineId":2,"quantity":1,"price":20}]}`,
		`{"clientId":0,"total":30,"paymentMethod":"cash","details":[{"medicineId":3,"quantity":3,"price":10}]}`,
	} {
		w := doJSON(t, r, http.MethodPost, "/sales", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/cashbox/summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var summary saledomain.CashboxSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.Equal(t, float64(150), summary.TotalSales)
	require.Equal(t, 3, summary.TotalTransactions)
	require.Equal(t, float64(130), summary.ByPaymentMethod["cash"])
	require.Equal(t, float64(20), summary.ByPaymentMethod["card"])
}

func TestSaleController_CashboxDetails_ExcluyeCanceladas(t *testing.T) {
	repo := newFakeSaleRepo()
	r := newSaleRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/sales",
		`{"clientId":0,"total":100,"paymentMethod":"cash","details":[{"medicineId":1,"quantity":2,"price":50}]}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/sales",
		`{"clientId":0,"total":20,"paymentMethod":"card","details":[{"medicineId":2,"quantity":1,"price":20}]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	require.NoError(t, repo.Cancel(context.Background(), 2))

	req := httptest.NewRequest(http.MethodGet, "/cashbox/details", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.CashboxDetailsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, float64(100), resp.Summary.TotalSales)
	require.Equal(t, 1, resp.Summary.TotalTransactions)
	require.Len(t, resp.Sales, 1)
}
