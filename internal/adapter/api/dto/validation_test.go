package dto

import (
	"encoding/json"
	"testing"

	"github.com/farmaciags/backend/pkg/validator"
	"github.com/stretchr/testify/require"
)

func decodeMedicine(t *testing.T, body string) MedicineRequest {
	t.Helper()
	var req MedicineRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func decodeSale(t *testing.T, body string) SaleRequest {
	t.Helper()
	var req SaleRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestMedicineSchemaAcceptsWellFormedPayload(t *testing.T) {
	v := validator.New()
	req := decodeMedicine(t, `{
		"name": "Paracetamol 500mg",
		"stock": 0,
		"price": 0.01,
		"expirationDate": "2030-01-01",
		"lot": "L1"
	}`)

	require.Nil(t, v.ValidateStruct(req))
}

func TestMedicineSchemaRejectsNegativeStock(t *testing.T) {
	v := validator.New()
	req := decodeMedicine(t, `{
		"name": "Paracetamol",
		"stock": -1,
		"price": 10,
		"expirationDate": "2030-01-01",
		"lot": "L1"
	}`)

	errs := v.ValidateStruct(req)
	require.NotNil(t, errs)
	require.Contains(t, errs, "stock")
}

func TestMedicineSchemaRejectsNegativePrice(t *testing.T) {
	v := validator.New()
	req := decodeMedicine(t, `{
		"name": "Paracetamol",
		"stock": 5,
		"price": -0.5,
		"expirationDate": "2030-01-01",
		"lot": "L1"
	}`)

	errs := v.ValidateStruct(req)
	require.NotNil(t, errs)
	require.Contains(t, errs, "price")
}

func TestMedicineSchemaRejectsUnparseableDate(t *testing.T) {
	v := validator.New()
	for _, date := range []string{"no-es-fecha", "2030-13-45", "01/01/2030"} {
		req := decodeMedicine(t, `{
			"name": "Paracetamol",
			"stock": 5,
			"price": 10,
			"expirationDate": "`+date+`",
			"lot": "L1"
		}`)

		errs := v.ValidateStruct(req)
		require.NotNil(t, errs, "fecha %q debió rechazarse", date)
		require.Contains(t, errs, "expirationDate")
	}
}

func TestMedicineSchemaRejectsMissingFields(t *testing.T) {
	v := validator.New()
	req := decodeMedicine(t, `{"description": "sin nada más"}`)

	errs := v.ValidateStruct(req)
	require.NotNil(t, errs)
	for _, field := range []string{"name", "stock", "price", "expirationDate", "lot"} {
		require.Contains(t, errs, field)
	}
}

func TestSaleSchemaAcceptsWellFormedPayload(t *testing.T) {
	v := validator.New()
	req := decodeSale(t, `{
		"clientId": 1,
		"total": 25.5,
		"details": [
			{"medicineId": 3, "quantity": 2, "price": 10},
			{"medicineId": 4, "quantity": 1, "price": 5.5}
		]
	}`)

	require.Nil(t, v.ValidateStruct(req))
}

func TestSaleSchemaRejectsEmptyDetails(t *testing.T) {
	v := validator.New()
	req := decodeSale(t, `{"clientId": 1, "total": 0, "details": []}`)

	errs := v.ValidateStruct(req)
	require.NotNil(t, errs)
	require.Contains(t, errs, "details")
}

func TestSaleSchemaRejectsNonPositiveQuantity(t *testing.T) {
	v := validator.New()
	for _, qty := range []string{"0", "-3"} {
		req := decodeSale(t, `{
			"clientId": 1,
			"total": 10,
			"details": [{"medicineId": 3, "quantity": `+qty+`, "price": 10}]
		}`)

		errs := v.ValidateStruct(req)
		require.NotNil(t, errs, "cantidad %s debió rechazarse", qty)
		require.Contains(t, errs, "details[0].quantity")
	}
}

func TestSaleSchemaRejectsNegativeTotal(t *testing.T) {
	v := validator.New()
	req := decodeSale(t, `{
		"clientId": 1,
		"total": -1,
		"details": [{"medicineId": 3, "quantity": 1, "price": 10}]
	}`)

	errs := v.ValidateStruct(req)
	require.NotNil(t, errs)
	require.Contains(t, errs, "total")
}

func TestSaleSchemaZeroTotalIsValid(t *testing.T) {
	v := validator.New()
	req := decodeSale(t, `{
		"clientId": 1,
		"total": 0,
		"details": [{"medicineId": 3, "quantity": 1, "price": 0}]
	}`)

	require.Nil(t, v.ValidateStruct(req))
}
