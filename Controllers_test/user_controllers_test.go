package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/clduval/resto-resa/controllers"
	"github.com/clduval/resto-resa/models"
	"github.com/clduval/resto-resa/utils"
)

func setupTestDBForUsers(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		panic(err)
	}
	return db
}

func setupUserRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	userCtrl := controllers.NewUserController(db)
	router.POST("/auth/signup", userCtrl.Signup)
	router.POST("/auth/login", userCtrl.Login)
	return router
}

func TestSignupAndLogin(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForUsers(t)
	router := setupUserRouter(db)

	// --- Signup ---
	signupPayload := map[string]string{
		"email":     "marie@example.com",
		"password":  "password123",
		"firstname": "Marie",
		"lastname":  "Dupont",
		"phone":     "0601020304",
	}
	payloadBytes, err := json.Marshal(signupPayload)
	assert.NoError(t, err)

	req, err := http.NewRequest("POST", "/auth/signup", bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var signupResponse map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &signupResponse)
	assert.NoError(t, err)
	assert.Equal(t, true, signupResponse["status"])
	data := signupResponse["data"].(map[string]interface{})
	assert.NotNil(t, data["user_id"])

	// Role selalu client saat signup.
	var user models.User
	db.First(&user)
	assert.Equal(t, models.RoleClient, user.Role)

	// --- Email yang sama tidak bisa didaftarkan lagi ---
	req, _ = http.NewRequest("POST", "/auth/signup", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// --- Login ---
	loginPayload := map[string]string{
		"email":    "marie@example.com",
		"password": "password123",
	}
	payloadBytes, err = json.Marshal(loginPayload)
	assert.NoError(t, err)

	req, err = http.NewRequest("POST", "/auth/login", bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var loginResponse map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &loginResponse)
	assert.NoError(t, err)
	assert.Equal(t, true, loginResponse["status"])
	data = loginResponse["data"].(map[string]interface{})
	token, ok := data["token"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, token)
	assert.Equal(t, "client", data["role"])

	// --- Password salah ---
	loginPayload["password"] = "wrong"
	payloadBytes, _ = json.Marshal(loginPayload)
	req, _ = http.NewRequest("POST", "/auth/login", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
