package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/client"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/models/dtos"
)

func newGatewayClient(serverURL string) *client.Client {
	return client.New(serverURL, 2*time.Second, client.StaticToken("admin-token"))
}

func TestPilots_List_ActiveFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/all-users" {
			t.Errorf("Expected path /admin/all-users, got %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("page") != "1" || q.Get("limit") != "10" {
			t.Errorf("Expected page=1 limit=10, got page=%s limit=%s", q.Get("page"), q.Get("limit"))
		}
		if q.Get("status") != "ACTIVE" {
			t.Errorf("Expected status=ACTIVE, got %s", q.Get("status"))
		}
		if q.Has("search") {
			t.Error("Empty search must not be sent")
		}

		data := dtos.PilotListData{
			Users: []dtos.PilotUser{
				{ID: "p1", FullName: "Amira Khan", Status: dtos.StatusActive},
				{ID: "p2", FullName: "Tomas Silva", Status: dtos.StatusActive},
				{ID: "p3", FullName: "Lena Fischer", Status: dtos.StatusActive},
			},
			TotalUsers:  3,
			CurrentPage: 1,
			TotalPages:  1,
		}
		writeEnvelope(t, w, data)
	}))
	defer server.Close()

	g := NewPilots(newGatewayClient(server.URL))

	result, err := g.List(context.Background(), ListQuery{Page: 1, Limit: 10, Status: "ACTIVE"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.Items) != 3 {
		t.Errorf("Expected 3 items, got %d", len(result.Items))
	}
	if result.Total != 3 {
		t.Errorf("Expected total 3, got %d", result.Total)
	}
}

func TestPilots_List_AllStatusOmitsFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("status") {
			t.Error("Status ALL must not be sent to the backend")
		}
		writeEnvelope(t, w, dtos.PilotListData{Users: []dtos.PilotUser{}, TotalUsers: 0})
	}))
	defer server.Close()

	g := NewPilots(newGatewayClient(server.URL))

	if _, err := g.List(context.Background(), ListQuery{Page: 1, Limit: 10, Status: "ALL"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func TestPilots_LastPageShorterThanLimit(t *testing.T) {
	// total=25 limit=10: page 3 holds the trailing 5 rows.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "3" {
			t.Errorf("Expected page=3, got %s", r.URL.Query().Get("page"))
		}
		users := make([]dtos.PilotUser, 5)
		for i := range users {
			users[i] = dtos.PilotUser{ID: fmt.Sprintf("p%d", 21+i), Status: dtos.StatusActive}
		}
		writeEnvelope(t, w, dtos.PilotListData{Users: users, TotalUsers: 25, CurrentPage: 3, TotalPages: 3})
	}))
	defer server.Close()

	g := NewPilots(newGatewayClient(server.URL))

	result, err := g.List(context.Background(), ListQuery{Page: 3, Limit: 10})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.Items) != 5 {
		t.Errorf("Expected 5 items on the last page, got %d", len(result.Items))
	}
	if result.Total != 25 {
		t.Errorf("Expected total 25, got %d", result.Total)
	}
}

func TestPilots_Activate_ReturnsUpdatedRow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PATCH" {
			t.Errorf("Expected PATCH request, got %s", r.Method)
		}
		if r.URL.Path != "/admin/to-active-user/p7" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		writeEnvelope(t, w, dtos.PilotUser{ID: "p7", FullName: "Amira Khan", Status: dtos.StatusActive})
	}))
	defer server.Close()

	g := NewPilots(newGatewayClient(server.URL))

	pilot, err := g.Activate(context.Background(), "p7")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if pilot.Status != dtos.StatusActive {
		t.Errorf("Expected ACTIVE status, got %s", pilot.Status)
	}
}

func TestInstructors_DeleteErrorPassthrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Instructor not found"}`))
	}))
	defer server.Close()

	g := NewInstructors(newGatewayClient(server.URL))

	err := g.Delete(context.Background(), "missing")
	if err == nil {
		t.Fatal("Expected error for 404 delete")
	}
	if client.Message(err) != "Instructor not found" {
		t.Errorf("Expected server message verbatim, got %q", client.Message(err))
	}
}

func TestLogbook_ListUsesTypeParameter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("type"); got != dtos.FlightTypeSolo {
			t.Errorf("Expected type=SOLO, got %q", got)
		}
		if r.URL.Query().Has("status") {
			t.Error("Logbook list must not send a status parameter")
		}
		writeEnvelope(t, w, dtos.LogbookListData{
			Entries:    []dtos.LogbookEntry{{ID: "l1", Aircraft: "C172", FlightType: dtos.FlightTypeSolo}},
			Pagination: dtos.Pagination{TotalItems: 1},
		})
	}))
	defer server.Close()

	g := NewLogbook(newGatewayClient(server.URL))

	result, err := g.List(context.Background(), ListQuery{Page: 1, Limit: 10, Status: dtos.FlightTypeSolo})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Total != 1 || len(result.Items) != 1 {
		t.Errorf("Expected one entry, got total=%d len=%d", result.Total, len(result.Items))
	}
}

func TestMemberships_UpdateUsesPut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PUT" {
			t.Errorf("Expected PUT request, got %s", r.Method)
		}
		writeEnvelope(t, w, dtos.Membership{ID: "m1", Name: "Gold", Status: dtos.StatusActive})
	}))
	defer server.Close()

	g := NewMemberships(newGatewayClient(server.URL))

	if _, err := g.Update(context.Background(), "m1", dtos.MembershipInput{Name: "Gold"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, data any) {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("Failed to marshal fixture: %v", err)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dtos.APIEnvelope{Success: true, Message: "ok", Data: raw})
}
