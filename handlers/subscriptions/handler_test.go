package subscriptions

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"addiswheels-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestGetPlans(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.GET("/subscriptions/plans", GetPlans)

	req, _ := http.NewRequest(http.MethodGet, "/subscriptions/plans", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody []map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Len(t, respBody, 3)
	assert.Equal(t, "MONTHLY", respBody[0]["planType"])
	assert.Equal(t, float64(30), respBody[0]["days"])
	assert.Equal(t, float64(365), respBody[2]["days"])
}

func TestSubmit_NotVerified(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "is_verified"}).
			AddRow(3, "user@example.com", false))

	r := testutils.SetupTestRouter()
	r.POST("/subscriptions/submit", func(c *gin.Context) {
		c.Set("user_id", uint(3))
		Submit(c)
	})

	subData := map[string]interface{}{
		"planType":        "MONTHLY",
		"amount":          500,
		"paymentMethod":   "CBE",
		"referenceNumber": "TX99",
	}
	jsonData, _ := json.Marshal(subData)

	req, _ := http.NewRequest(http.MethodPost, "/subscriptions/submit", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, true, respBody["requiresVerification"])
}

func TestSubmit_PendingExists(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "is_verified"}).
			AddRow(3, "user@example.com", true))
	mock.ExpectQuery(`SELECT (.+) FROM "subscriptions" WHERE user_id = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "status"}).
			AddRow(7, 3, "PENDING"))

	r := testutils.SetupTestRouter()
	r.POST("/subscriptions/submit", func(c *gin.Context) {
		c.Set("user_id", uint(3))
		Submit(c)
	})

	subData := map[string]interface{}{
		"planType":        "MONTHLY",
		"amount":          500,
		"paymentMethod":   "CBE",
		"referenceNumber": "TX99",
	}
	jsonData, _ := json.Marshal(subData)

	req, _ := http.NewRequest(http.MethodPost, "/subscriptions/submit", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestSubmit_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "is_verified"}).
			AddRow(3, "user@example.com", true))
	mock.ExpectQuery(`SELECT (.+) FROM "subscriptions" WHERE user_id = (.+)`).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "subscriptions" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/subscriptions/submit", func(c *gin.Context) {
		c.Set("user_id", uint(3))
		Submit(c)
	})

	subData := map[string]interface{}{
		"planType":        "QUARTERLY",
		"amount":          1350,
		"paymentMethod":   "TELEBIRR",
		"referenceNumber": "TX100",
	}
	jsonData, _ := json.Marshal(subData)

	req, _ := http.NewRequest(http.MethodPost, "/subscriptions/submit", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "PENDING", respBody["status"])
	assert.Equal(t, "QUARTERLY", respBody["planType"])
}

func TestApprove_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "subscriptions" WHERE (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "plan_type", "status"}).
			AddRow(7, 3, "MONTHLY", "PENDING"))
	mock.ExpectExec(`UPDATE "subscriptions" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "users" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Best-effort notification after commit
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "notifications" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/admin/subscriptions/:id/approve", func(c *gin.Context) {
		c.Set("user_id", uint(99))
		c.Set("role", "ADMIN")
		Approve(c)
	})

	req, _ := http.NewRequest(http.MethodPost, "/admin/subscriptions/7/approve", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApprove_AlreadyProcessed(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "subscriptions" WHERE (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "plan_type", "status"}).
			AddRow(7, 3, "MONTHLY", "APPROVED"))
	mock.ExpectRollback()

	r := testutils.SetupTestRouter()
	r.POST("/admin/subscriptions/:id/approve", func(c *gin.Context) {
		c.Set("user_id", uint(99))
		c.Set("role", "ADMIN")
		Approve(c)
	})

	req, _ := http.NewRequest(http.MethodPost, "/admin/subscriptions/7/approve", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Subscription already APPROVED", respBody["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActive_Subscriber(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expiry := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_subscriber", "subscription_expires_at"}).
			AddRow(3, true, expiry))

	r := testutils.SetupTestRouter()
	r.GET("/subscriptions/active", func(c *gin.Context) {
		c.Set("user_id", uint(3))
		GetActive(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/subscriptions/active", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, true, respBody["isSubscriber"])
}
