package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/wealthflow/internal/adapter/http/dto"
	"github.com/wealthflow/wealthflow/internal/domain"
)

func balanceOf(t *testing.T, accounts []domain.Account, id string) decimal.Decimal {
	t.Helper()

	for _, a := range accounts {
		if a.ID == id {
			return a.Balance
		}
	}

	t.Fatalf("account %s not found", id)
	return decimal.Zero
}

func TestTransactionHandler_CreateAndDelete(t *testing.T) {
	store := newLoadedStore(t)
	handler := NewTransactionHandler(store)

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewBufferString(
		`{"accountId":"acc_1","date":"2023-10-27","amount":1000,"type":"expense","category":"飲食","description":"晚餐"}`))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var tx domain.Transaction
	decodeBody(t, rec, &tx)
	if tx.ID == "" || tx.Type != domain.TransactionExpense || tx.Date.String() != "2023-10-27" {
		t.Fatalf("unexpected transaction: %+v", tx)
	}

	if got := balanceOf(t, store.Accounts(), "acc_1"); !got.Equal(decimal.NewFromInt(149000)) {
		t.Fatalf("expected balance 149000, got %s", got)
	}

	if first := store.Transactions()[0]; first.ID != tx.ID {
		t.Fatalf("expected new transaction first, got %s", first.ID)
	}

	del := withURLParam(httptest.NewRequest(http.MethodDelete, "/transactions/"+tx.ID, nil), "id", tx.ID)
	rec = httptest.NewRecorder()

	handler.Delete(rec, del)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	if got := balanceOf(t, store.Accounts(), "acc_1"); !got.Equal(decimal.NewFromInt(150000)) {
		t.Fatalf("expected balance restored to 150000, got %s", got)
	}
}

func TestTransactionHandler_Create_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad json", `{"accountId":`},
		{"unknown type", `{"accountId":"acc_1","date":"2023-10-27","amount":1,"type":"refund"}`},
		{"impossible date", `{"accountId":"acc_1","date":"2023-02-30","amount":1,"type":"income"}`},
		{"negative amount", `{"accountId":"acc_1","date":"2023-10-27","amount":-5,"type":"income"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newLoadedStore(t)
			handler := NewTransactionHandler(store)

			req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}

			if got := len(store.Transactions()); got != 3 {
				t.Fatalf("expected no transaction to be recorded, got %d", got)
			}
		})
	}
}

func TestTransactionHandler_List(t *testing.T) {
	handler := NewTransactionHandler(newLoadedStore(t))

	tests := []struct {
		query string
		code  int
		total int
	}{
		{"", http.StatusOK, 3},
		{"?type=all", http.StatusOK, 3},
		{"?type=income", http.StatusOK, 1},
		{"?type=expense", http.StatusOK, 2},
		{"?type=refund", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/transactions"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.List(rec, req)

			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
			if tt.code != http.StatusOK {
				return
			}

			var resp dto.ListTransactionsResponse
			decodeBody(t, rec, &resp)
			if resp.Total != tt.total || len(resp.Transactions) != tt.total {
				t.Fatalf("expected %d transactions, got %+v", tt.total, resp)
			}
		})
	}
}

func TestTransactionHandler_Delete_Unknown(t *testing.T) {
	store := newLoadedStore(t)
	handler := NewTransactionHandler(store)

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/transactions/tx_404", nil), "id", "tx_404")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	if got := len(store.Transactions()); got != 3 {
		t.Fatalf("expected transactions unchanged, got %d", got)
	}
}

func TestTransactionHandler_Categories(t *testing.T) {
	handler := NewTransactionHandler(newLoadedStore(t))

	tests := []struct {
		query string
		code  int
		types []domain.TransactionType
	}{
		{"", http.StatusOK, []domain.TransactionType{domain.TransactionIncome, domain.TransactionExpense}},
		{"?type=expense", http.StatusOK, []domain.TransactionType{domain.TransactionExpense}},
		{"?type=refund", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/categories"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.Categories(rec, req)

			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
			if tt.code != http.StatusOK {
				return
			}

			var resp dto.CategoriesResponse
			decodeBody(t, rec, &resp)
			if len(resp.Categories) != len(tt.types) {
				t.Fatalf("expected %d types, got %v", len(tt.types), resp.Categories)
			}
			for _, typ := range tt.types {
				if len(resp.Categories[typ]) != len(domain.Categories[typ]) {
					t.Fatalf("unexpected %s categories %v", typ, resp.Categories[typ])
				}
			}
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/categories?type=expense", nil)
	rec := httptest.NewRecorder()
	handler.Categories(rec, req)

	var resp dto.CategoriesResponse
	decodeBody(t, rec, &resp)
	if resp.Categories[domain.TransactionExpense][0] != "飲食" {
		t.Fatalf("expected 飲食 first, got %v", resp.Categories[domain.TransactionExpense])
	}
}
