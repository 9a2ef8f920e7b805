package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/wealthflow/internal/adapter/http/dto"
	"github.com/wealthflow/wealthflow/internal/domain"
	"github.com/wealthflow/wealthflow/internal/usecase"
)

type refresherStub struct {
	stocks []domain.StockPosition
	err    error
}

func (s refresherStub) Refresh(context.Context) ([]domain.StockPosition, error) {
	return s.stocks, s.err
}

func TestStockHandler_Create_DefaultsCurrentPrice(t *testing.T) {
	store := newLoadedStore(t)
	handler := NewStockHandler(store, refresherStub{})

	req := httptest.NewRequest(http.MethodPost, "/stocks", bytes.NewBufferString(
		`{"symbol":"2317.TW","name":"鴻海","shares":100,"averageCost":105.5,"currency":"TWD"}`))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.StockResponse
	decodeBody(t, rec, &resp)
	if !resp.CurrentPrice.Equal(decimal.RequireFromString("105.5")) {
		t.Fatalf("expected current price to default to average cost, got %s", resp.CurrentPrice)
	}
	if !resp.Profit.IsZero() || resp.ProfitPercent == nil || !resp.ProfitPercent.IsZero() {
		t.Fatalf("expected zero profit, got %+v", resp)
	}
}

func TestStockHandler_Create_Invalid(t *testing.T) {
	handler := NewStockHandler(newLoadedStore(t), refresherStub{})

	req := httptest.NewRequest(http.MethodPost, "/stocks", bytes.NewBufferString(
		`{"symbol":"  ","shares":1,"averageCost":1,"currency":"TWD"}`))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestStockHandler_List(t *testing.T) {
	handler := NewStockHandler(newLoadedStore(t), refresherStub{})

	req := httptest.NewRequest(http.MethodGet, "/stocks", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	var resp dto.ListStocksResponse
	decodeBody(t, rec, &resp)

	if resp.Total != 3 {
		t.Fatalf("expected 3 stocks, got %d", resp.Total)
	}

	tsmc := resp.Stocks[0]
	if tsmc.Symbol != "2330.TW" || !tsmc.MarketValue.Equal(decimal.NewFromInt(780000)) || !tsmc.Profit.Equal(decimal.NewFromInt(230000)) {
		t.Fatalf("unexpected performance: %+v", tsmc)
	}
	if tsmc.ProfitPercent == nil || tsmc.ProfitPercent.String() != "41.82" {
		t.Fatalf("expected 41.82%% profit, got %v", tsmc.ProfitPercent)
	}
}

func TestStockHandler_UpdatePriceAndDelete(t *testing.T) {
	store := newLoadedStore(t)
	handler := NewStockHandler(store, refresherStub{})

	req := withURLParam(httptest.NewRequest(http.MethodPut, "/stocks/stk_1/price", bytes.NewBufferString(`{"price":"800.5"}`)), "id", "stk_1")
	rec := httptest.NewRecorder()

	handler.UpdatePrice(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := store.Stocks()[0].CurrentPrice; !got.Equal(decimal.RequireFromString("800.5")) {
		t.Fatalf("expected price 800.5, got %s", got)
	}

	req = withURLParam(httptest.NewRequest(http.MethodPut, "/stocks/stk_1/price", bytes.NewBufferString(`{"price":-1}`)), "id", "stk_1")
	rec = httptest.NewRecorder()
	handler.UpdatePrice(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative price, got %d", rec.Code)
	}

	req = withURLParam(httptest.NewRequest(http.MethodDelete, "/stocks/stk_2", nil), "id", "stk_2")
	rec = httptest.NewRecorder()
	handler.Delete(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if got := len(store.Stocks()); got != 2 {
		t.Fatalf("expected 2 stocks after remove, got %d", got)
	}
}

func TestStockHandler_Refresh(t *testing.T) {
	store := newLoadedStore(t)
	handler := NewStockHandler(store, usecase.NewPriceRefresher(store, func() float64 { return 0.5 }))

	req := httptest.NewRequest(http.MethodPost, "/stocks/refresh", nil)
	rec := httptest.NewRecorder()

	handler.Refresh(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListStocksResponse
	decodeBody(t, rec, &resp)

	// u = 0.5 leaves prices unchanged.
	if resp.Total != 3 || !resp.Stocks[0].CurrentPrice.Equal(decimal.NewFromInt(780)) {
		t.Fatalf("unexpected refresh result: %+v", resp)
	}
}

func TestStockHandler_Refresh_NotReady(t *testing.T) {
	handler := NewStockHandler(newLoadedStore(t), refresherStub{err: domain.ErrStoreNotReady})

	rec := httptest.NewRecorder()
	handler.Refresh(rec, httptest.NewRequest(http.MethodPost, "/stocks/refresh", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	handler = NewStockHandler(newLoadedStore(t), refresherStub{err: errors.New("boom")})
	rec = httptest.NewRecorder()
	handler.Refresh(rec, httptest.NewRequest(http.MethodPost, "/stocks/refresh", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
