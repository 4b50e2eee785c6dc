package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/BerniceZTT/estate_crm/models"
	"github.com/BerniceZTT/estate_crm/service"
	"github.com/BerniceZTT/estate_crm/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	os.Exit(m.Run())
}

type listResponse struct {
	Customers []models.Customer `json:"customers"`
	Total     int               `json:"total"`
}

func listCustomers(t *testing.T, query string) (*httptest.ResponseRecorder, listResponse) {
	t.Helper()

	router := gin.New()
	router.GET("/api/customers", ListCustomers)

	req := httptest.NewRequest(http.MethodGet, "/api/customers"+query, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	var body listResponse
	if recorder.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	}
	return recorder, body
}

func TestListCustomersComposesFromSnapshot(t *testing.T) {
	now := time.Date(2025, 10, 16, 13, 0, 0, 0, time.Local)
	timeNow = func() time.Time { return now }
	defer func() { timeNow = time.Now }()

	store := service.Store()
	store.ReplaceCustomers([]models.Customer{
		{ID: "x", Name: "X", Status: models.CustomerStatusNew},
		{ID: "y", Name: "Y", Status: models.CustomerStatusNew},
	})
	store.ReplaceMeetings([]models.Meeting{
		{ID: "m1", CustomerID: "x", Date: "2025-10-16T14:00"},
		{ID: "m2", CustomerID: "y", Date: "2025-10-16T09:00"},
	})
	defer func() {
		store.ReplaceCustomers(nil)
		store.ReplaceMeetings(nil)
	}()

	recorder, body := listCustomers(t, "?filter=meeting-today")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, 2, body.Total)
	assert.Equal(t, "y", body.Customers[0].ID)
	assert.Equal(t, "x", body.Customers[1].ID)
}

func TestListCustomersSearchAndDefaultFilter(t *testing.T) {
	store := service.Store()
	store.ReplaceCustomers([]models.Customer{
		{ID: "a", Name: "홍길동", Phone: "010-1234-5678", Status: models.CustomerStatusNew},
		{ID: "b", Name: "김철수", Phone: "010-9876-5432", Status: models.CustomerStatusHold},
	})
	defer store.ReplaceCustomers(nil)

	recorder, body := listCustomers(t, "?search=9876")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "b", body.Customers[0].ID)
}

func TestListCustomersUnknownFilter(t *testing.T) {
	recorder, _ := listCustomers(t, "?filter=bogus")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
