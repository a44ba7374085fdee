package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"zoo-ops/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_AnimalLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// anonymous gets 401
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/animals", "", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 for anonymous list, got %d", st)
		}
	}

	// admin creates a species, then an animal referencing it
	speciesID := createEntity(t, ts.URL, "admin-1", "admin", "/api/species", map[string]any{
		"commonName":     "African Lion",
		"scientificName": "Panthera leo",
		"category":       "mammals",
	}, "species")

	var created map[string]any
	{
		st, body := doReq(t, ts.URL, "POST", "/api/animals", "admin-1", "admin", map[string]any{
			"name":     "Simba",
			"species":  speciesID,
			"category": "mammals",
			"age":      4,
			"weight":   190.5,
			"sex":      "Male",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 create animal, got %d body=%s", st, string(body))
		}
		created = entity(t, body, "animal")
	}
	animalID, _ := created["id"].(string)
	if animalID == "" {
		t.Fatalf("create animal: missing id %v", created)
	}
	if created["status"] != "healthy" {
		t.Errorf("default status = %v, want healthy", created["status"])
	}
	if created["createdAt"] != created["updatedAt"] {
		t.Errorf("fresh entity should have createdAt == updatedAt: %v vs %v", created["createdAt"], created["updatedAt"])
	}

	// any authenticated role can read; species comes back populated
	{
		st, body := doReq(t, ts.URL, "GET", "/api/animals/"+animalID, "doc-1", "doctor", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get animal, got %d body=%s", st, string(body))
		}
		a := entity(t, body, "animal")
		sp, ok := a["species"].(map[string]any)
		if !ok {
			t.Fatalf("species should be populated on reads, got %T (%v)", a["species"], a["species"])
		}
		if sp["commonName"] != "African Lion" {
			t.Errorf("species commonName = %v", sp["commonName"])
		}
	}

	// doctor cannot write animals
	{
		st, _ := doReq(t, ts.URL, "PUT", "/api/animals/"+animalID, "doc-1", "doctor", map[string]any{
			"status": "sick",
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 doctor updating animal, got %d", st)
		}
	}

	// caretaker can
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/animals/"+animalID, "keeper-1", "caretaker", map[string]any{
			"status": "sick",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 caretaker updating animal, got %d body=%s", st, string(body))
		}
		if a := entity(t, body, "animal"); a["status"] != "sick" {
			t.Errorf("status after update = %v, want sick", a["status"])
		}
	}

	// delete, then both get and delete return 404
	{
		st, body := doReq(t, ts.URL, "DELETE", "/api/animals/"+animalID, "admin-1", "admin", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete animal, got %d body=%s", st, string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/animals/"+animalID, "admin-1", "admin", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 get after delete, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/animals/"+animalID, "admin-1", "admin", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 delete after delete, got %d", st)
		}
	}
}

func TestHTTP_InventoryRestockAndFilters(t *testing.T) {
	ts := newTestServer(t)

	itemID := createEntity(t, ts.URL, "keeper-1", "caretaker", "/api/inventory", map[string]any{
		"name":         "Hay bales",
		"category":     "food",
		"quantity":     3,
		"unit":         "bales",
		"minThreshold": 10,
		"maxThreshold": 100,
	}, "inventoryItem")

	// below threshold: shows up in the lowStock view with status low
	{
		st, body := doReq(t, ts.URL, "GET", "/api/inventory?lowStock=true", "keeper-1", "caretaker", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 lowStock list, got %d body=%s", st, string(body))
		}
		var resp struct {
			InventoryItems []map[string]any `json:"inventoryItems"`
			Count          int              `json:"count"`
		}
		mustDecode(t, body, &resp)
		if resp.Count != 1 || len(resp.InventoryItems) != 1 {
			t.Fatalf("lowStock count = %d, want 1", resp.Count)
		}
		if resp.InventoryItems[0]["stockStatus"] != "low" {
			t.Errorf("stockStatus = %v, want low", resp.InventoryItems[0]["stockStatus"])
		}
	}

	// restock past the threshold
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/inventory/"+itemID+"/restock", "keeper-1", "caretaker", map[string]any{
			"quantity": 20,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 restock, got %d body=%s", st, string(body))
		}
		it := entity(t, body, "inventoryItem")
		if it["quantity"] != float64(23) {
			t.Errorf("quantity after restock = %v, want 23", it["quantity"])
		}
		if it["stockStatus"] != "normal" {
			t.Errorf("stockStatus after restock = %v, want normal", it["stockStatus"])
		}
	}

	// missing and non-positive quantities are 400
	{
		st, _ := doReq(t, ts.URL, "PUT", "/api/inventory/"+itemID+"/restock", "keeper-1", "caretaker", map[string]any{})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 restock without quantity, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "PUT", "/api/inventory/"+itemID+"/restock", "keeper-1", "caretaker", map[string]any{
			"quantity": -5,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 restock with negative quantity, got %d", st)
		}
	}

	// lowStock view is empty now
	{
		st, body := doReq(t, ts.URL, "GET", "/api/inventory?lowStock=true", "keeper-1", "caretaker", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var resp struct {
			Count int `json:"count"`
		}
		mustDecode(t, body, &resp)
		if resp.Count != 0 {
			t.Errorf("lowStock count after restock = %d, want 0", resp.Count)
		}
	}

	// bad boolean is a 400, not silently ignored
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/inventory?lowStock=maybe", "keeper-1", "caretaker", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for lowStock=maybe, got %d", st)
		}
	}
}

func TestHTTP_MedicalPermissionsAndCheckupStamp(t *testing.T) {
	ts := newTestServer(t)

	speciesID := createEntity(t, ts.URL, "admin-1", "admin", "/api/species", map[string]any{
		"commonName": "Red Panda",
		"category":   "mammals",
	}, "species")
	animalID := createEntity(t, ts.URL, "admin-1", "admin", "/api/animals", map[string]any{
		"name":     "Pabu",
		"species":  speciesID,
		"category": "mammals",
	}, "animal")

	// caretaker cannot create medical records
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/medical-records", "keeper-1", "caretaker", map[string]any{
			"animalId": animalID,
			"doctorId": "doc-1",
			"type":     "checkup",
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 caretaker creating medical record, got %d", st)
		}
	}

	// unknown animal is a 404
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/medical-records", "doc-1", "doctor", map[string]any{
			"animalId": "nope",
			"doctorId": "doc-1",
			"type":     "checkup",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown animal, got %d", st)
		}
	}

	// checkup create stamps the animal's lastCheckup
	{
		st, body := doReq(t, ts.URL, "POST", "/api/medical-records", "doc-1", "doctor", map[string]any{
			"animalId":  animalID,
			"doctorId":  "doc-1",
			"type":      "checkup",
			"diagnosis": "healthy",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 create medical record, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/api/animals/"+animalID, "doc-1", "doctor", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		if a := entity(t, body, "animal"); a["lastCheckup"] == nil {
			t.Error("checkup record should stamp the animal's lastCheckup")
		}
	}
}

func TestHTTP_AuditTrailAdminOnly(t *testing.T) {
	ts := newTestServer(t)

	createEntity(t, ts.URL, "admin-1", "admin", "/api/species", map[string]any{
		"commonName": "Green Iguana",
		"category":   "reptiles",
	}, "species")

	// non-admins cannot read the trail
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/audit-logs", "doc-1", "doctor", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 doctor reading audit logs, got %d", st)
		}
	}

	// admin sees the create entry
	{
		st, body := doReq(t, ts.URL, "GET", "/api/audit-logs?resource=species", "admin-1", "admin", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 audit list, got %d body=%s", st, string(body))
		}
		var resp struct {
			AuditLogs []map[string]any `json:"auditLogs"`
		}
		mustDecode(t, body, &resp)
		if len(resp.AuditLogs) == 0 {
			t.Fatal("expected at least one audit entry for the species create")
		}
		e := resp.AuditLogs[0]
		if e["action"] != "CREATE" || e["userId"] != "admin-1" {
			t.Errorf("audit entry = %v", e)
		}
	}
}

func TestHTTP_DashboardStats(t *testing.T) {
	ts := newTestServer(t)

	speciesID := createEntity(t, ts.URL, "admin-1", "admin", "/api/species", map[string]any{
		"commonName": "Gray Wolf",
		"category":   "mammals",
	}, "species")
	createEntity(t, ts.URL, "admin-1", "admin", "/api/animals", map[string]any{
		"name": "Ghost", "species": speciesID, "category": "mammals",
	}, "animal")
	createEntity(t, ts.URL, "admin-1", "admin", "/api/animals", map[string]any{
		"name": "Nymeria", "species": speciesID, "category": "mammals", "status": "sick",
	}, "animal")
	createEntity(t, ts.URL, "admin-1", "admin", "/api/enclosures", map[string]any{
		"name": "Wolf Woods", "type": "forest", "capacity": 6,
	}, "enclosure")
	createEntity(t, ts.URL, "admin-1", "admin", "/api/inventory", map[string]any{
		"name": "Meat", "category": "food", "quantity": 2, "minThreshold": 10, "unit": "kg",
	}, "inventoryItem")

	st, body := doReq(t, ts.URL, "GET", "/api/dashboard/stats", "keeper-1", "caretaker", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 dashboard stats, got %d body=%s", st, string(body))
	}

	var resp struct {
		Stats struct {
			TotalAnimals      int            `json:"totalAnimals"`
			HealthyAnimals    int            `json:"healthyAnimals"`
			SickAnimals       int            `json:"sickAnimals"`
			TotalEnclosures   int            `json:"totalEnclosures"`
			LowInventoryItems int            `json:"lowInventoryItems"`
			CategoryCounts    map[string]int `json:"categoryCounts"`
		} `json:"stats"`
	}
	mustDecode(t, body, &resp)

	if resp.Stats.TotalAnimals != 2 {
		t.Errorf("totalAnimals = %d, want 2", resp.Stats.TotalAnimals)
	}
	if resp.Stats.HealthyAnimals != 1 || resp.Stats.SickAnimals != 1 {
		t.Errorf("healthy/sick = %d/%d, want 1/1", resp.Stats.HealthyAnimals, resp.Stats.SickAnimals)
	}
	if resp.Stats.TotalEnclosures != 1 {
		t.Errorf("totalEnclosures = %d, want 1", resp.Stats.TotalEnclosures)
	}
	if resp.Stats.LowInventoryItems != 1 {
		t.Errorf("lowInventoryItems = %d, want 1", resp.Stats.LowInventoryItems)
	}
	if resp.Stats.CategoryCounts["mammals"] != 2 {
		t.Errorf("categoryCounts = %v", resp.Stats.CategoryCounts)
	}
}

func TestHTTP_EnclosureOccupancyDerived(t *testing.T) {
	ts := newTestServer(t)

	speciesID := createEntity(t, ts.URL, "admin-1", "admin", "/api/species", map[string]any{
		"commonName": "Meerkat", "category": "mammals",
	}, "species")
	enclosureID := createEntity(t, ts.URL, "admin-1", "admin", "/api/enclosures", map[string]any{
		"name": "Meerkat Manor", "type": "savanna", "capacity": 10,
	}, "enclosure")

	for _, name := range []string{"Timon", "Flower", "Shakespeare"} {
		createEntity(t, ts.URL, "admin-1", "admin", "/api/animals", map[string]any{
			"name": name, "species": speciesID, "category": "mammals", "enclosureId": enclosureID,
		}, "animal")
	}

	st, body := doReq(t, ts.URL, "GET", "/api/enclosures/"+enclosureID, "keeper-1", "caretaker", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get enclosure, got %d body=%s", st, string(body))
	}
	e := entity(t, body, "enclosure")
	if e["currentOccupancy"] != float64(3) {
		t.Errorf("currentOccupancy = %v, want 3", e["currentOccupancy"])
	}
	if e["occupancyPercentage"] != float64(30) {
		t.Errorf("occupancyPercentage = %v, want 30", e["occupancyPercentage"])
	}

	// capacity must stay positive
	stBad, _ := doReq(t, ts.URL, "POST", "/api/enclosures", "admin-1", "admin", map[string]any{
		"name": "Void", "type": "void", "capacity": 0,
	})
	if stBad != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero capacity, got %d", stBad)
	}
}

func TestHTTP_NotificationsFlow(t *testing.T) {
	ts := newTestServer(t)

	// targeted at keeper-1 plus one broadcast
	{
		st, body := doReq(t, ts.URL, "POST", "/api/notifications", "admin-1", "admin", map[string]any{
			"title": "Restock hay", "type": "low_inventory", "priority": "high", "userId": "keeper-1",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 create notification, got %d body=%s", st, string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/notifications", "admin-1", "admin", map[string]any{
			"title": "Fire drill at noon",
		})
		if st != http.StatusOK {
			t.Fatal("broadcast create failed")
		}
	}

	// keeper sees both, doctor only the broadcast
	assertUnread := func(user string, want int) {
		t.Helper()
		st, body := doReq(t, ts.URL, "GET", "/api/notifications/unread-count", user, "caretaker", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 unread-count, got %d", st)
		}
		var resp struct {
			UnreadCount int `json:"unreadCount"`
		}
		mustDecode(t, body, &resp)
		if resp.UnreadCount != want {
			t.Errorf("%s unreadCount = %d, want %d", user, resp.UnreadCount, want)
		}
	}
	assertUnread("keeper-1", 2)
	assertUnread("doc-1", 1)

	// mark all read for keeper
	{
		st, _ := doReq(t, ts.URL, "PUT", "/api/notifications/mark-all-read", "keeper-1", "caretaker", nil)
		if st != http.StatusOK {
			t.Fatal("mark-all-read failed")
		}
	}
	assertUnread("keeper-1", 0)
}

func createEntity(t *testing.T, baseURL, userID, role, path string, payload map[string]any, field string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, userID, role, payload)
	if st != http.StatusOK {
		t.Fatalf("expected 200 create %s, got %d body=%s", field, st, string(body))
	}
	e := entity(t, body, field)
	id, _ := e["id"].(string)
	if id == "" {
		t.Fatalf("create %s: missing id body=%s", field, string(body))
	}
	return id
}

// entity pulls the named object out of the response envelope.
func entity(t *testing.T, body []byte, field string) map[string]any {
	t.Helper()

	var resp map[string]json.RawMessage
	mustDecode(t, body, &resp)
	if s := resp["success"]; string(s) != "true" {
		t.Fatalf("envelope success != true body=%s", string(body))
	}

	var e map[string]any
	if err := json.Unmarshal(resp[field], &e); err != nil {
		t.Fatalf("decode %s from %s: %v", field, string(body), err)
	}
	return e
}

func mustDecode(t *testing.T, body []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("decode %s: %v", string(body), err)
	}
}

func doReq(t *testing.T, baseURL, method, path, userID, role string, payload map[string]any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-Debug-User-ID", userID)
		req.Header.Set("X-Debug-Role", role)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, raw
}
