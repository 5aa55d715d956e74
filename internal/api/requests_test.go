package api_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/api"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/domain"
)

func TestServiceListEncodesFilters(t *testing.T) {
	var gotQuery string
	r := chi.NewRouter()
	r.Get("/api/service-requests", func(w http.ResponseWriter, req *http.Request) {
		gotQuery = req.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":7,"serviceName":"laundry","quantity":2,"status":"OPEN"}]`))
	})

	c := api.NewServicesClient(testBackend(t, r))
	orders, err := c.List(context.Background(), domain.RequestListOptions{Status: "OPEN", BookingID: 42})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(orders) != 1 || orders[0].ServiceName != "laundry" {
		t.Errorf("orders = %+v", orders)
	}
	if !strings.Contains(gotQuery, "status=OPEN") || !strings.Contains(gotQuery, "bookingId=42") {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestServiceUpdateCarriesGuestToken(t *testing.T) {
	var gotToken, gotAuth string
	r := chi.NewRouter()
	r.Put("/api/service-requests/7", func(w http.ResponseWriter, req *http.Request) {
		gotToken = req.URL.Query().Get("token")
		gotAuth = req.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":7,"serviceName":"laundry","quantity":3,"status":"OPEN"}`))
	})

	c := api.NewServicesClient(testBackend(t, r))
	qty := 3
	sr, err := c.Update(context.Background(), 7, &domain.RequestUpdate{Quantity: &qty}, "mailed-token")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if sr.Quantity != 3 {
		t.Errorf("quantity = %d", sr.Quantity)
	}
	if gotToken != "mailed-token" {
		t.Errorf("token = %q", gotToken)
	}
	if gotAuth != "" {
		t.Errorf("guest call carried Authorization %q", gotAuth)
	}
}

func TestServiceCancelHitsCancelEndpoint(t *testing.T) {
	var called bool
	r := chi.NewRouter()
	r.Post("/api/service-requests/7/cancel", func(w http.ResponseWriter, req *http.Request) {
		called = true
		w.Write([]byte(`{"message":"canceled"}`))
	})

	c := api.NewServicesClient(testBackend(t, r))
	if err := c.Cancel(context.Background(), 7, "mailed-token"); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if !called {
		t.Error("cancel endpoint not called")
	}
}

func TestHousekeepingGetDecodesOwnership(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/housekeeping/9", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":9,"bookingId":42,"guestEmail":"guest@example.test","roomNumber":"304","status":"OPEN"}`))
	})

	c := api.NewHousekeepingClient(testBackend(t, r))
	hr, err := c.Get(context.Background(), 9, "mailed-token")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hr.CustomerID != 0 || hr.GuestEmail != "guest@example.test" {
		t.Errorf("ownership = customer %d guest %q", hr.CustomerID, hr.GuestEmail)
	}
}

func TestHousekeepingCancelSurfacesBackendError(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/housekeeping/9/cancel", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"Request already completed","code":"CONFLICT"}`))
	})

	c := api.NewHousekeepingClient(testBackend(t, r))
	err := c.Cancel(context.Background(), 9, "")
	if err == nil {
		t.Fatal("expected error for conflict")
	}
}
