package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"addiswheels-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestRegister_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = (.+)`).
		WithArgs("test@example.com", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/register", Register)

	userData := map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "Password123",
	}
	jsonData, _ := json.Marshal(userData)

	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.NotEmpty(t, respBody["token"])

	user, ok := respBody["user"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "test@example.com", user["email"])
	assert.Empty(t, user["password"])
}

func TestRegister_WeakPassword(t *testing.T) {
	testCases := []struct {
		name     string
		password string
	}{
		{"OnlyLowercase", "password123"},
		{"OnlyUppercase", "PASSWORD123"},
		{"NoDigits", "PasswordOnly"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := testutils.SetupTestRouter()
			r.POST("/register", Register)

			userData := map[string]string{
				"name":     "Test User",
				"email":    "test@example.com",
				"password": tc.password,
			}
			jsonData, _ := json.Marshal(userData)

			req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(jsonData))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()

			r.ServeHTTP(resp, req)

			assert.Equal(t, http.StatusBadRequest, resp.Code)

			var respBody map[string]string
			json.Unmarshal(resp.Body.Bytes(), &respBody)
			assert.Equal(t, "The password must contain at least one lowercase, one uppercase and one digit", respBody["error"])
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = (.+)`).
		WithArgs("taken@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow(7, "taken@example.com"))

	r := testutils.SetupTestRouter()
	r.POST("/register", Register)

	userData := map[string]string{
		"name":     "Test User",
		"email":    "taken@example.com",
		"password": "Password123",
	}
	jsonData, _ := json.Marshal(userData)

	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "This email is already used", respBody["error"])
}

func TestLogin_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = (.+)`).
		WithArgs("test@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "role", "blocked"}).
			AddRow(1, "test@example.com", string(hash), "USER", false))

	r := testutils.SetupTestRouter()
	r.POST("/login", Login)

	loginData := map[string]string{
		"email":    "test@example.com",
		"password": "Password123",
	}
	jsonData, _ := json.Marshal(loginData)

	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.NotEmpty(t, respBody["token"])
}

func TestLogin_WrongPassword(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = (.+)`).
		WithArgs("test@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "role", "blocked"}).
			AddRow(1, "test@example.com", string(hash), "USER", false))

	r := testutils.SetupTestRouter()
	r.POST("/login", Login)

	loginData := map[string]string{
		"email":    "test@example.com",
		"password": "WrongPassword1",
	}
	jsonData, _ := json.Marshal(loginData)

	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Wrong credentials", respBody["error"])
}

func TestLogin_BlockedAccount(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = (.+)`).
		WithArgs("blocked@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "role", "blocked"}).
			AddRow(2, "blocked@example.com", string(hash), "USER", true))

	r := testutils.SetupTestRouter()
	r.POST("/login", Login)

	loginData := map[string]string{
		"email":    "blocked@example.com",
		"password": "Password123",
	}
	jsonData, _ := json.Marshal(loginData)

	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Your account has been blocked", respBody["error"])
}
