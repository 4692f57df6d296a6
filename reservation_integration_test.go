package main

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/clduval/resto-resa/models"
	"github.com/clduval/resto-resa/router"
	"github.com/clduval/resto-resa/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// TestEndToEndReservationFlow menguji flow utama:
// 0. Seed admin + client + meja + jam buka, lalu login -> token
// 1. Cek availability untuk tanggal buka
// 2. Client membuat reservasi -> pending + meja terpasang
// 3. Client melihat my-reservations
// 4. Admin mengkonfirmasi reservasi
// 5. Update setelah confirmed -> ditolak
func TestEndToEndReservationFlow(t *testing.T) {
	db := setupIntegrationDB()
	r := router.SetupRouter(db)

	clientToken := loginAs(t, r, "client@example.com")
	adminToken := loginAs(t, r, "admin@example.com")

	checkAvailability(t, r)
	reservationID := createReservation(t, r, clientToken)
	checkMyReservations(t, r, clientToken)
	confirmReservation(t, r, adminToken, reservationID)
	updateAfterConfirmFails(t, r, clientToken, reservationID)
}

// setupIntegrationDB -> migrasi model di SQLite in-memory + seed data.
func setupIntegrationDB() *gorm.DB {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:integration?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.OpeningSlot{},
		&models.ExceptionalDate{},
		&models.ExceptionalSlot{},
		&models.Reservation{},
		&models.ReservationTable{},
		&models.MenuItem{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	db.Create(&models.User{Email: "admin@example.com", PasswordHash: string(hashed), Role: models.RoleAdmin})
	db.Create(&models.User{Email: "client@example.com", PasswordHash: string(hashed), Role: models.RoleClient})

	db.Create(&models.Table{Seats: 2, Name: "T1"})
	db.Create(&models.Table{Seats: 4, Name: "T2"})

	// 2025-06-02 adalah hari Senin.
	db.Create(&models.OpeningSlot{DayOfWeek: 1, Time: "19:00:00", Duration: 90, IsActive: true})

	return db
}

func loginAs(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"email": email, "password": "secret123"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("login fail: code=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.Token == "" {
		t.Fatalf("login: token empty")
	}
	return resp.Data.Token
}

func checkAvailability(t *testing.T, r *gin.Engine) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/availability?date=2025-06-02", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("availability fail: code=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			IsClosed bool `json:"is_closed"`
			Slots    []struct {
				Time string `json:"time"`
			} `json:"available_slots"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.IsClosed || len(resp.Data.Slots) != 1 || resp.Data.Slots[0].Time != "19:00:00" {
		t.Fatalf("availability: unexpected payload %s", w.Body.String())
	}
}

func createReservation(t *testing.T, r *gin.Engine, token string) uint {
	t.Helper()

	body, _ := json.Marshal(map[string]interface{}{
		"number_of_people": 5,
		"date":             "2025-06-02",
		"time":             "19:00",
		"note":             "integration",
	})
	req := httptest.NewRequest(http.MethodPost, "/reservations", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("create reservation fail: code=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			ID     uint   `json:"id"`
			Status string `json:"status"`
			Tables []struct {
				Seats int `json:"seats"`
			} `json:"tables"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.Status != models.ReservationPending {
		t.Fatalf("create reservation: status=%s", resp.Data.Status)
	}
	// Rombongan 5 -> meja 2 + 4.
	if len(resp.Data.Tables) != 2 {
		t.Fatalf("create reservation: expected 2 tables, got %d", len(resp.Data.Tables))
	}
	return resp.Data.ID
}

func checkMyReservations(t *testing.T, r *gin.Engine, token string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/reservations/my-reservations", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("my-reservations fail: code=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Data []struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Data) != 1 {
		t.Fatalf("my-reservations: expected 1, got %d", len(resp.Data))
	}
}

func confirmReservation(t *testing.T, r *gin.Engine, token string, id uint) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPatch,
		"/reservations/"+strconv.Itoa(int(id))+"/validate", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("validate fail: code=%d, body=%s", w.Code, w.Body.String())
	}
}

func updateAfterConfirmFails(t *testing.T, r *gin.Engine, token string, id uint) {
	t.Helper()

	body, _ := json.Marshal(map[string]interface{}{"note": "too late"})
	req := httptest.NewRequest(http.MethodPut,
		"/reservations/"+strconv.Itoa(int(id)), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("update after confirm: expected 404, got %d (%s)", w.Code, w.Body.String())
	}
}
