package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	sqls "pet-care-tracker/internal/adapters/storage/sqlstore"
	"pet-care-tracker/internal/router"
)

// newSQLiteServer levanta la app completa sobre un sqlite migrado.
func newSQLiteServer(t *testing.T) *httptest.Server {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "petcare.db")
	if err := sqls.Migrate(nil, sqls.DriverSQLite, dsn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db, err := sqls.Open(sqls.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	app, err := router.New(router.Options{DB: db, SessionSecret: "test-secret"})
	if err != nil {
		t.Fatalf("router.New: %v", err)
	}
	ts := httptest.NewServer(app.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_SQLite_SessionAndRecords(t *testing.T) {
	ts := newSQLiteServer(t)
	c := signedIn(t, ts.URL)

	// la sesión vive en la tabla sessions
	{
		st, body := c.do("GET", "/api/user_data", nil)
		if st != http.StatusOK || decodeObject(t, body)["email"] != "owner@x.com" {
			t.Fatalf("expected signed in owner, got %d body=%s", st, string(body))
		}
	}

	// mismo email => 409 desde la constraint UNIQUE
	{
		st, _ := newClient(t, ts.URL).do("POST", "/api/signup", map[string]any{"email": "owner@x.com", "password": "pw"})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicated signup, got %d", st)
		}
	}

	// pet info: decimal y entero sin redondeo
	{
		st, body := c.do("POST", "/api/petinfo", map[string]any{"pet_name": "Milo", "breed": "mixed", "weight": 12.345, "age": 3})
		if st != http.StatusOK {
			t.Fatalf("expected 200 petinfo, got %d body=%s", st, string(body))
		}
		_, body = c.do("GET", "/api/petinfo", nil)
		var items []map[string]any
		if err := json.Unmarshal(body, &items); err != nil || len(items) != 1 {
			t.Fatalf("expected one pet, body=%s", string(body))
		}
		if items[0]["weight"] != 12.345 || items[0]["age"] != float64(3) {
			t.Fatalf("unexpected pet values: %s", string(body))
		}
	}

	// fechas: DATE se lee de vuelta como YYYY-MM-DD
	{
		st, body := c.do("POST", "/api/vaccines", map[string]any{"vaccineName": "rabies", "vaccineDate": "2024-03-01"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 vaccine, got %d body=%s", st, string(body))
		}
		_, body = c.do("GET", "/api/vaccines", nil)
		var items []map[string]any
		if err := json.Unmarshal(body, &items); err != nil || len(items) != 1 {
			t.Fatalf("expected one vaccine, body=%s", string(body))
		}
		if items[0]["vaccineDate"] != "2024-03-01" || items[0]["expires"] != nil {
			t.Fatalf("unexpected vaccine dates: %s", string(body))
		}
		if _, ok := items[0]["createdAt"].(string); !ok {
			t.Fatalf("expected createdAt: %s", string(body))
		}
	}

	// ids: borrar el último no libera su id
	{
		first := createDiet(t, c)
		if st, body := c.do("DELETE", "/api/diet/"+strconv.FormatInt(first, 10), nil); st != http.StatusOK {
			t.Fatalf("expected 200 delete, got %d body=%s", st, string(body))
		}
		if st, _ := c.do("DELETE", "/api/diet/"+strconv.FormatInt(first, 10), nil); st != http.StatusNotFound {
			t.Fatalf("expected 404 second delete, got %d", st)
		}
		if second := createDiet(t, c); second <= first {
			t.Fatalf("expected id after %d, got %d", first, second)
		}
	}

	// logout borra la fila de sesión
	{
		if st, _ := c.do("GET", "/logout", nil); st != http.StatusFound {
			t.Fatalf("expected 302 logout, got %d", st)
		}
		if st, _ := c.do("GET", "/api/diet", nil); st != http.StatusUnauthorized {
			t.Fatalf("expected 401 after logout, got %d", st)
		}
	}
}

func createDiet(t *testing.T, c *client) int64 {
	t.Helper()
	st, body := c.do("POST", "/api/diet", map[string]any{"mealType": "dinner"})
	if st != http.StatusOK {
		t.Fatalf("expected 200 create diet, got %d body=%s", st, string(body))
	}
	f, _ := decodeObject(t, body)["id"].(float64)
	if f <= 0 {
		t.Fatalf("expected positive id: %s", string(body))
	}
	return int64(f)
}
