package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"retiree-registry/internal/adapters/persistence/models"
	"retiree-registry/internal/core/domain"
	"retiree-registry/internal/pkg/logger"
	"retiree-registry/internal/pkg/metrics"
	"retiree-registry/internal/testutil"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var reportClock = time.Date(2024, time.May, 10, 8, 0, 0, 0, time.UTC)

type ReportServiceSuite struct {
	suite.Suite
	ctx     context.Context
	repo    *testutil.InMemoryMemberStore
	metrics *metrics.Registry
	members *MemberService
	service *ReportService
}

func TestReportService(t *testing.T) {
	suite.Run(t, new(ReportServiceSuite))
}

func (s *ReportServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = testutil.NewInMemoryMemberStore()
	s.metrics = metrics.New()
	s.members = NewMemberService(s.repo, s.metrics, logger.NewNop())
	s.service = NewReportService(s.repo, s.metrics, logger.NewNop(), 12)
	s.service.now = func() time.Time { return reportClock }
}

func (s *ReportServiceSuite) seed() {
	for _, in := range []MemberInput{
		{FullName: "Ana Activa", NationalID: "V-3000", Status: "Retiree", IsActiveMember: true, BirthDate: "10/05/1955"},
		{FullName: "Bruno Jubilado", NationalID: "V-2000", Status: "Retiree", BirthDate: "11/05/1950"},
		{FullName: "Carla Viuda", NationalID: "V-1000", Status: "Survivor", DeceasedName: "Dario", DeathDate: "15/06/2023"},
		{FullName: "Elena Fallecida", NationalID: "V-4000", Status: "Retiree", IsActiveMember: true, DeathDate: "10/03/2021"},
	} {
		_, err := s.members.Create(s.ctx, in)
		s.Require().NoError(err)
	}
}

func (s *ReportServiceSuite) TestGenerate_EachKind() {
	s.seed()

	expected := map[ReportKind]int{
		ReportActiveMembers: 1,
		ReportRetirees:      2,
		ReportSurvivors:     1,
		ReportDeceased:      2,
	}
	for kind, rows := range expected {
		report, err := s.service.Generate(s.ctx, ReportRequest{Kind: kind})
		s.Require().NoError(err, kind)
		s.Equal(rows, report.Rows, kind)
		s.Equal(1, report.Pages)
		s.True(bytes.HasPrefix(report.PDF, []byte("%PDF-")))
		s.Contains(report.Filename, string(kind)+"-2024-05-10-")
		s.NotEmpty(report.ID)
	}

	s.Equal(1.0, promtestutil.ToFloat64(s.metrics.ReportsGenerated.WithLabelValues(string(ReportDeceased))))
}

func (s *ReportServiceSuite) TestGenerate_Birthdays() {
	s.seed()

	report, err := s.service.Generate(s.ctx, ReportRequest{Kind: ReportBirthdays, Day: 10, Month: 5})
	s.Require().NoError(err)
	s.Equal(1, report.Rows)
	s.Equal("Birthdays on 10 May", report.Title)

	_, err = s.service.Generate(s.ctx, ReportRequest{Kind: ReportBirthdays, Day: 1, Month: 13})
	s.ErrorIs(err, domain.ErrInvalidBirthday)
}

func (s *ReportServiceSuite) TestGenerate_EmptyReport() {
	_, err := s.service.Generate(s.ctx, ReportRequest{Kind: ReportSurvivors})
	s.ErrorIs(err, domain.ErrEmptyReport)
	s.Equal(0, promtestutil.CollectAndCount(s.metrics.ReportsGenerated))
}

func (s *ReportServiceSuite) TestGenerate_UnknownKind() {
	_, err := s.service.Generate(s.ctx, ReportRequest{Kind: "everyone"})
	s.ErrorIs(err, domain.ErrUnknownReport)
}

func (s *ReportServiceSuite) TestGenerate_StorageFailure() {
	s.repo.FailOn["list"] = errors.New("timeout")
	_, err := s.service.Generate(s.ctx, ReportRequest{Kind: ReportRetirees})
	s.ErrorIs(err, domain.ErrStorageFailure)
}

func (s *ReportServiceSuite) TestGenerate_Paginates() {
	for i := 0; i < 120; i++ {
		_, err := s.members.Create(s.ctx, MemberInput{
			FullName:   "Miembro",
			NationalID: fmt.Sprintf("V-%d", i+1),
			Status:     "Retiree",
		})
		s.Require().NoError(err)
	}

	report, err := s.service.Generate(s.ctx, ReportRequest{Kind: ReportRetirees})
	s.Require().NoError(err)
	s.Equal(120, report.Rows)
	s.Greater(report.Pages, 1)
}

func TestParseReportKind(t *testing.T) {
	kind, err := ParseReportKind(" Active-Members ")
	require.NoError(t, err)
	assert.Equal(t, ReportActiveMembers, kind)

	_, err = ParseReportKind("payroll")
	assert.ErrorIs(t, err, domain.ErrUnknownReport)

	for _, k := range ReportKinds() {
		_, err := ParseReportKind(string(k))
		assert.NoError(t, err)
	}
}

func TestBuildTable_Survivors(t *testing.T) {
	deceased := "Dario"
	death := time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)
	table := buildTable(reportCatalog[ReportSurvivors], []*models.Member{
		{FullName: "Carla Viuda", NationalID: "V-1000", Status: domain.StatusSurvivor, DeceasedName: &deceased, DeathDate: &death},
	})

	keys := make([]string, len(table.Columns))
	weights := make([]float64, len(table.Columns))
	for i, c := range table.Columns {
		keys[i] = c.Key
		weights[i] = c.Weight
	}
	assert.Equal(t, []string{colIndex, colFullName, colNationalID, colDeceasedName, colDeathDate, colPhone}, keys)
	assert.Equal(t, []float64{2, 25, 10, 25, 10, 10}, weights)
	assert.Equal(t, []string{"Survivors Report"}, table.Title)
	assert.Equal(t, [][]string{{"1", "Carla Viuda", "V-1000", "Dario", "15/06/2023", ""}}, table.Rows)
}

func TestBuildTable_DeceasedColumns(t *testing.T) {
	table := buildTable(reportCatalog[ReportDeceased], []*models.Member{{FullName: "X", IsActiveMember: true}})

	headers := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		headers[i] = c.Header
	}
	assert.Equal(t, []string{"#", "Member", "Deceased name", "Birth date", "Death date"}, headers)
	assert.Equal(t, []string{"1", "Yes", "", "", ""}, table.Rows[0])
}

func TestCronService_RunOnce(t *testing.T) {
	repo := testutil.NewInMemoryMemberStore()
	members := NewMemberService(repo, nil, logger.NewNop())
	reportsSvc := NewReportService(repo, nil, logger.NewNop(), 12)
	reportsSvc.now = func() time.Time { return reportClock }

	dir := t.TempDir()
	cronSvc := NewCronService(reportsSvc, filepath.Join(dir, "out"), "0 8 * * *", logger.NewNop())
	cronSvc.now = func() time.Time { return reportClock }

	_, err := cronSvc.RunOnce(context.Background())
	assert.ErrorIs(t, err, domain.ErrEmptyReport)

	_, err = members.Create(context.Background(), MemberInput{
		FullName: "Ana", NationalID: "V-1", Status: "Retiree", BirthDate: "10/05/1955",
	})
	require.NoError(t, err)

	path, err := cronSvc.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Regexp(t, `birthdays-2024-05-10-[0-9a-f-]{36}\.pdf$`, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestCronService_InvalidSchedule(t *testing.T) {
	cronSvc := NewCronService(nil, t.TempDir(), "every morning", logger.NewNop())
	assert.Error(t, cronSvc.Start())
}
