package payments

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
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestSubmit_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "payments" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/payments/submit", func(c *gin.Context) {
		c.Set("user_id", uint(3))
		Submit(c)
	})

	paymentData := map[string]interface{}{
		"amount":          200,
		"paymentMethod":   "TELEBIRR",
		"referenceNumber": "TX123456",
		"screenshot":      "https://images.example.com/receipt.jpg",
	}
	jsonData, _ := json.Marshal(paymentData)

	req, _ := http.NewRequest(http.MethodPost, "/payments/submit", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "PENDING", respBody["status"])
}

func TestSubmit_MissingReference(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/payments/submit", func(c *gin.Context) {
		c.Set("user_id", uint(3))
		Submit(c)
	})

	paymentData := map[string]interface{}{
		"amount":        200,
		"paymentMethod": "TELEBIRR",
	}
	jsonData, _ := json.Marshal(paymentData)

	req, _ := http.NewRequest(http.MethodPost, "/payments/submit", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestApprove_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "payments" WHERE (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "amount", "status"}).
			AddRow(1, 3, 200.0, "PENDING"))
	mock.ExpectExec(`UPDATE "payments" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "users" SET "extra_listings"=extra_listings \+ (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Best-effort notification after commit
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "notifications" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/admin/payments/:id/approve", func(c *gin.Context) {
		c.Set("user_id", uint(99))
		c.Set("role", "ADMIN")
		Approve(c)
	})

	req, _ := http.NewRequest(http.MethodPost, "/admin/payments/1/approve", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApprove_AlreadyProcessed(t *testing.T) {
	testCases := []struct {
		name   string
		status string
	}{
		{"AlreadyApproved", "APPROVED"},
		{"AlreadyRejected", "REJECTED"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, mock, cleanup := testutils.SetupTestDB(t)
			defer cleanup()

			mock.ExpectBegin()
			mock.ExpectQuery(`SELECT (.+) FROM "payments" WHERE (.+) FOR UPDATE`).
				WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "amount", "status"}).
					AddRow(1, 3, 200.0, tc.status))
			mock.ExpectRollback()

			r := testutils.SetupTestRouter()
			r.POST("/admin/payments/:id/approve", func(c *gin.Context) {
				c.Set("user_id", uint(99))
				c.Set("role", "ADMIN")
				Approve(c)
			})

			req, _ := http.NewRequest(http.MethodPost, "/admin/payments/1/approve", nil)
			resp := httptest.NewRecorder()

			r.ServeHTTP(resp, req)

			assert.Equal(t, http.StatusBadRequest, resp.Code)

			var respBody map[string]string
			json.Unmarshal(resp.Body.Bytes(), &respBody)
			assert.Equal(t, "Payment already "+tc.status, respBody["error"])

			// The terminal-state rejection must not write anything further
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReject_AlreadyProcessed(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "payments" WHERE (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "amount", "status"}).
			AddRow(1, 3, 200.0, "APPROVED"))
	mock.ExpectRollback()

	r := testutils.SetupTestRouter()
	r.POST("/admin/payments/:id/reject", func(c *gin.Context) {
		c.Set("user_id", uint(99))
		c.Set("role", "ADMIN")
		Reject(c)
	})

	req, _ := http.NewRequest(http.MethodPost, "/admin/payments/1/reject", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Payment already APPROVED", respBody["error"])
}

func TestApprove_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "payments" WHERE (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "amount", "status"}))
	mock.ExpectRollback()

	r := testutils.SetupTestRouter()
	r.POST("/admin/payments/:id/approve", func(c *gin.Context) {
		c.Set("user_id", uint(99))
		c.Set("role", "ADMIN")
		Approve(c)
	})

	req, _ := http.NewRequest(http.MethodPost, "/admin/payments/42/approve", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
