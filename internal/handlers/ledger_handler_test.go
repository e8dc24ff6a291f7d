package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "safespend/internal/errors"
	"safespend/internal/models"
	"safespend/internal/pagination"
	"safespend/internal/services"
)

// --- mock ledger service ---

type mockLedgerService struct {
	recordSpendFn        func(userID uint, amount float64, category, description string, date time.Time) (*models.Transaction, error)
	listTransactionsFn   func(userID uint, page pagination.PageRequest, filter services.LedgerFilter) (*pagination.PageResponse[models.Transaction], error)
	getTransactionByIDFn func(userID, transactionID uint) (*models.Transaction, error)
}

func (m *mockLedgerService) RecordSpend(userID uint, amount float64, category, description string, date time.Time) (*models.Transaction, error) {
	if m.recordSpendFn != nil {
		return m.recordSpendFn(userID, amount, category, description, date)
	}
	return &models.Transaction{}, nil
}

func (m *mockLedgerService) ListTransactions(userID uint, page pagination.PageRequest, filter services.LedgerFilter) (*pagination.PageResponse[models.Transaction], error) {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn(userID, page, filter)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockLedgerService) GetTransactionByID(userID, transactionID uint) (*models.Transaction, error) {
	if m.getTransactionByIDFn != nil {
		return m.getTransactionByIDFn(userID, transactionID)
	}
	return &models.Transaction{}, nil
}

var _ services.LedgerServicer = (*mockLedgerService)(nil)

func setupLedgerRouter(handler *LedgerHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/transactions", handler.RecordSpend)
	auth.GET("/transactions", handler.GetTransactions)
	auth.GET("/transactions/:id", handler.GetTransaction)
	return r
}

func TestLedgerHandler_RecordSpend(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockLedgerService{
			recordSpendFn: func(_ uint, amount float64, category, description string, _ time.Time) (*models.Transaction, error) {
				return &models.Transaction{
					Base:        models.Base{ID: 1},
					UserID:      1,
					Amount:      amount,
					Category:    category,
					Description: description,
					Type:        models.TransactionTypeDebit,
				}, nil
			},
		}
		handler := NewLedgerHandler(svc, &mockAuditService{})
		r := setupLedgerRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"amount":250,"category":"Food","description":"Lunch"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		transaction := result["transaction"].(map[string]interface{})
		if transaction["amount"].(float64) != 250 {
			t.Errorf("expected amount=250, got %v", transaction["amount"])
		}
		if transaction["type"] != "debit" {
			t.Errorf("expected debit, got %v", transaction["type"])
		}
	})

	t.Run("passes backdated date to service", func(t *testing.T) {
		var capturedDate time.Time
		svc := &mockLedgerService{
			recordSpendFn: func(_ uint, _ float64, _, _ string, date time.Time) (*models.Transaction, error) {
				capturedDate = date
				return &models.Transaction{}, nil
			},
		}
		handler := NewLedgerHandler(svc, &mockAuditService{})
		r := setupLedgerRouter(handler)

		doRequest(r, "POST", "/transactions",
			`{"amount":100,"category":"Food","date":"2025-06-10T12:00:00Z"}`)

		want := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
		if !capturedDate.Equal(want) {
			t.Errorf("expected date %v, got %v", want, capturedDate)
		}
	})

	t.Run("passes zero date when omitted", func(t *testing.T) {
		var capturedDate time.Time
		svc := &mockLedgerService{
			recordSpendFn: func(_ uint, _ float64, _, _ string, date time.Time) (*models.Transaction, error) {
				capturedDate = date
				return &models.Transaction{}, nil
			},
		}
		handler := NewLedgerHandler(svc, &mockAuditService{})
		r := setupLedgerRouter(handler)

		doRequest(r, "POST", "/transactions", `{"amount":100,"category":"Food"}`)

		if !capturedDate.IsZero() {
			t.Errorf("expected zero date, got %v", capturedDate)
		}
	})

	t.Run("returns 400 on missing amount", func(t *testing.T) {
		handler := NewLedgerHandler(&mockLedgerService{}, &mockAuditService{})
		r := setupLedgerRouter(handler)

		rec := doRequest(r, "POST", "/transactions", `{"category":"Food"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on zero amount", func(t *testing.T) {
		handler := NewLedgerHandler(&mockLedgerService{}, &mockAuditService{})
		r := setupLedgerRouter(handler)

		rec := doRequest(r, "POST", "/transactions", `{"amount":0,"category":"Food"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on negative amount", func(t *testing.T) {
		handler := NewLedgerHandler(&mockLedgerService{}, &mockAuditService{})
		r := setupLedgerRouter(handler)

		rec := doRequest(r, "POST", "/transactions", `{"amount":-50,"category":"Food"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on missing category", func(t *testing.T) {
		handler := NewLedgerHandler(&mockLedgerService{}, &mockAuditService{})
		r := setupLedgerRouter(handler)

		rec := doRequest(r, "POST", "/transactions", `{"amount":100}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewLedgerHandler(&mockLedgerService{}, &mockAuditService{})
		r := gin.New()
		r.POST("/transactions", handler.RecordSpend)

		rec := doRequest(r, "POST", "/transactions", `{"amount":100,"category":"Food"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestLedgerHandler_GetTransactions(t *testing.T) {
	t.Run("returns 200 with paginated transactions", func(t *testing.T) {
		svc := &mockLedgerService{
			listTransactionsFn: func(_ uint, _ pagination.PageRequest, _ services.LedgerFilter) (*pagination.PageResponse[models.Transaction], error) {
				resp := pagination.NewPageResponse([]models.Transaction{
					{Base: models.Base{ID: 1}, Description: "Lunch"},
					{Base: models.Base{ID: 2}, Description: "Coffee"},
				}, 1, 20, 2)
				return &resp, nil
			},
		}
		handler := NewLedgerHandler(svc, &mockAuditService{})
		r := setupLedgerRouter(handler)

		rec := doRequest(r, "GET", "/transactions", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 2 {
			t.Errorf("expected 2 transactions, got %d", len(data))
		}
		if result["total_items"].(float64) != 2 {
			t.Errorf("expected total_items=2, got %v", result["total_items"])
		}
	})

	t.Run("passes filter params to service", func(t *testing.T) {
		var captured services.LedgerFilter
		svc := &mockLedgerService{
			listTransactionsFn: func(_ uint, _ pagination.PageRequest, filter services.LedgerFilter) (*pagination.PageResponse[models.Transaction], error) {
				captured = filter
				resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
				return &resp, nil
			},
		}
		handler := NewLedgerHandler(svc, &mockAuditService{})
		r := setupLedgerRouter(handler)

		doRequest(r, "GET", "/transactions?category=Food&type=debit&from_date=2025-06-01T00:00:00Z", "")

		if captured.Category == nil || *captured.Category != "Food" {
			t.Error("expected category=Food to be passed")
		}
		if captured.Type == nil || *captured.Type != models.TransactionTypeDebit {
			t.Error("expected type=debit to be passed")
		}
		if captured.FromDate == nil || captured.FromDate.Day() != 1 {
			t.Error("expected from_date to be passed")
		}
	})

	t.Run("returns 400 on invalid type", func(t *testing.T) {
		handler := NewLedgerHandler(&mockLedgerService{}, &mockAuditService{})
		r := setupLedgerRouter(handler)

		rec := doRequest(r, "GET", "/transactions?type=transfer", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on malformed from_date", func(t *testing.T) {
		handler := NewLedgerHandler(&mockLedgerService{}, &mockAuditService{})
		r := setupLedgerRouter(handler)

		rec := doRequest(r, "GET", "/transactions?from_date=yesterday", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestLedgerHandler_GetTransaction(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		svc := &mockLedgerService{
			getTransactionByIDFn: func(_, transactionID uint) (*models.Transaction, error) {
				return &models.Transaction{
					Base:        models.Base{ID: transactionID},
					Description: "Lunch",
					Amount:      250,
				}, nil
			},
		}
		handler := NewLedgerHandler(svc, &mockAuditService{})
		r := setupLedgerRouter(handler)

		rec := doRequest(r, "GET", "/transactions/1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		transaction := result["transaction"].(map[string]interface{})
		if transaction["description"] != "Lunch" {
			t.Errorf("expected Lunch, got %v", transaction["description"])
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockLedgerService{
			getTransactionByIDFn: func(_, _ uint) (*models.Transaction, error) {
				return nil, apperrors.ErrTransactionNotFound
			},
		}
		handler := NewLedgerHandler(svc, &mockAuditService{})
		r := setupLedgerRouter(handler)

		rec := doRequest(r, "GET", "/transactions/999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})

	t.Run("returns 400 on invalid ID", func(t *testing.T) {
		handler := NewLedgerHandler(&mockLedgerService{}, &mockAuditService{})
		r := setupLedgerRouter(handler)

		rec := doRequest(r, "GET", "/transactions/abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
