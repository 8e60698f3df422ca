package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"retiree-registry/internal/adapters/persistence/models"
	"retiree-registry/internal/core/domain"
	"retiree-registry/internal/core/services"
	"retiree-registry/internal/pkg/logger"
	"retiree-registry/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupReportApp(t *testing.T) (*fiber.App, *testutil.InMemoryMemberStore) {
	t.Helper()
	store := testutil.NewInMemoryMemberStore()
	handler := NewReportHandler(services.NewReportService(store, nil, logger.NewNop(), 12))

	app := fiber.New()
	app.Get("/reports", handler.ListReports)
	app.Get("/reports/:kind", handler.GenerateReport)
	return app, store
}

func addMember(t *testing.T, store *testutil.InMemoryMemberStore, m models.Member) {
	t.Helper()
	require.NoError(t, store.Create(context.Background(), &m))
}

func TestGenerateReport_PDF(t *testing.T) {
	app, store := setupReportApp(t)
	birth := time.Date(1955, time.May, 10, 0, 0, 0, 0, time.UTC)
	addMember(t, store, models.Member{FullName: "Ana", NationalID: "V-1", Status: domain.StatusRetiree, IsActiveMember: true, BirthDate: &birth})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reports/active-members", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "active-members-")
	assert.NotEmpty(t, resp.Header.Get("X-Report-ID"))
	assert.Equal(t, "1", resp.Header.Get("X-Report-Pages"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(body[:5]))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/reports/birthdays?date=10/05", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGenerateReport_Errors(t *testing.T) {
	app, _ := setupReportApp(t)

	testCases := []struct {
		name   string
		path   string
		status int
	}{
		{name: "empty_report", path: "/reports/survivors", status: http.StatusNotFound},
		{name: "unknown_kind", path: "/reports/payroll", status: http.StatusBadRequest},
		{name: "birthday_without_date", path: "/reports/birthdays", status: http.StatusBadRequest},
		{name: "birthday_bad_month", path: "/reports/birthdays?date=10/13", status: http.StatusBadRequest},
		{name: "birthday_no_match", path: "/reports/birthdays?date=31/02", status: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tc.path, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
		})
	}
}

func TestListReports(t *testing.T) {
	app, _ := setupReportApp(t)
	resp, body := doJSON(t, app, http.MethodGet, "/reports", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["reports"], 5)
}
