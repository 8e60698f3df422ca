package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"retiree-registry/internal/adapters/persistence/models"
	"retiree-registry/internal/adapters/persistence/repositories"
	"retiree-registry/internal/core/domain"
	"retiree-registry/internal/core/reports"
	"retiree-registry/internal/pkg/dateutil"
	"retiree-registry/internal/pkg/logger"
	"retiree-registry/internal/pkg/metrics"
	"retiree-registry/internal/pkg/pdftable"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// ReportKind names a report of the catalog
type ReportKind string

const (
	ReportActiveMembers ReportKind = "active-members"
	ReportRetirees      ReportKind = "retirees"
	ReportSurvivors     ReportKind = "survivors"
	ReportDeceased      ReportKind = "deceased"
	ReportBirthdays     ReportKind = "birthdays"
)

// Column keys of a member table
const (
	colIndex        = "index"
	colFullName     = "full_name"
	colNationalID   = "national_id"
	colStatus       = "status"
	colActiveMember = "is_active_member"
	colDeceasedName = "deceased_name"
	colBirthDate    = "birth_date"
	colDeathDate    = "death_date"
	colPhone        = "phone"
)

var memberColumns = []pdftable.Column{
	{Key: colIndex, Header: "#"},
	{Key: colFullName, Header: "Full name"},
	{Key: colNationalID, Header: "National ID"},
	{Key: colStatus, Header: "Status"},
	{Key: colActiveMember, Header: "Member"},
	{Key: colDeceasedName, Header: "Deceased name"},
	{Key: colBirthDate, Header: "Birth date"},
	{Key: colDeathDate, Header: "Death date"},
	{Key: colPhone, Header: "Phone"},
}

// reportDefinition is the per-report configuration: which members, which columns
type reportDefinition struct {
	title    string
	exclude  []string
	weights  map[string]float64
	headers  map[string]string
	fontSize float64
	filter   func([]*models.Member) []*models.Member
}

var reportCatalog = map[ReportKind]reportDefinition{
	ReportActiveMembers: {
		title:   "Active Members Report",
		exclude: []string{colDeathDate, colDeceasedName},
		filter:  reports.ActiveMembers,
	},
	ReportRetirees: {
		title:   "Active Retirees Report",
		exclude: []string{colDeathDate, colDeceasedName},
		filter:  reports.Retirees,
	},
	ReportSurvivors: {
		title:   "Survivors Report",
		exclude: []string{colStatus, colBirthDate, colActiveMember},
		weights: map[string]float64{
			colIndex:        2,
			colFullName:     25,
			colNationalID:   10,
			colDeceasedName: 25,
			colDeathDate:    10,
			colPhone:        10,
		},
		headers: map[string]string{
			colDeceasedName: "Deceased",
			colDeathDate:    "Date of death",
		},
		fontSize: 11,
		filter:   reports.Survivors,
	},
	ReportDeceased: {
		title:   "Deceased Report",
		exclude: []string{colFullName, colNationalID, colStatus, colPhone},
		filter:  reports.Deceased,
	},
	ReportBirthdays: {
		// title and filter depend on the requested day
	},
}

// ParseReportKind validates a report name
func ParseReportKind(s string) (ReportKind, error) {
	kind := ReportKind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := reportCatalog[kind]; !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownReport, s)
	}
	return kind, nil
}

// ReportKinds lists the catalog in a stable order
func ReportKinds() []ReportKind {
	return []ReportKind{ReportActiveMembers, ReportRetirees, ReportSurvivors, ReportDeceased, ReportBirthdays}
}

// ReportRequest selects a report. Day and Month are only used by birthdays.
type ReportRequest struct {
	Kind  ReportKind
	Day   int
	Month int
}

// Report is a rendered document
type Report struct {
	ID          string
	Kind        ReportKind
	Title       string
	Filename    string
	Rows        int
	Pages       int
	GeneratedAt time.Time
	PDF         []byte
}

// ReportService turns the member collection into PDF listings
type ReportService struct {
	repo     repositories.MemberRepository
	metrics  *metrics.Registry
	log      *logger.Logger
	fontSize float64
	now      func() time.Time
}

// NewReportService creates a new report service. fontSize is the default
// data font size; reports with their own size keep it.
func NewReportService(repo repositories.MemberRepository, m *metrics.Registry, log *logger.Logger, fontSize float64) *ReportService {
	return &ReportService{
		repo:     repo,
		metrics:  m,
		log:      log,
		fontSize: fontSize,
		now:      time.Now,
	}
}

// Generate loads all members, filters them for the report and renders the PDF.
// An empty selection returns domain.ErrEmptyReport and no document.
func (s *ReportService) Generate(ctx context.Context, req ReportRequest) (*Report, error) {
	def, ok := reportCatalog[req.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownReport, req.Kind)
	}

	if req.Kind == ReportBirthdays {
		if err := reports.ValidateDayMonth(req.Day, req.Month); err != nil {
			return nil, err
		}
		day, month := req.Day, req.Month
		def.title = fmt.Sprintf("Birthdays on %d %s", day, time.Month(month))
		def.filter = func(members []*models.Member) []*models.Member {
			matched, _ := reports.BirthdayMatch(members, day, month)
			return matched
		}
	}

	members, err := s.repo.ListAll(ctx, domain.OrderByNationalID)
	if err != nil {
		return nil, translateStoreError(err)
	}

	selected := def.filter(members)
	if len(selected) == 0 {
		return nil, domain.ErrEmptyReport
	}

	generatedAt := s.now()
	fontSize := def.fontSize
	if fontSize <= 0 {
		fontSize = s.fontSize
	}

	doc, err := pdftable.Layout(buildTable(def, selected), pdftable.Options{
		PageSize:    pdftable.Letter,
		Orientation: pdftable.Landscape,
		FontSize:    fontSize,
		GeneratedAt: generatedAt,
	})
	if err != nil {
		if errors.Is(err, pdftable.ErrEmptyReport) {
			return nil, domain.ErrEmptyReport
		}
		return nil, fmt.Errorf("layout %s report: %w", req.Kind, err)
	}

	pdf, err := pdftable.Draw(doc)
	if err != nil {
		return nil, fmt.Errorf("render %s report: %w", req.Kind, err)
	}

	id := uuid.NewString()
	report := &Report{
		ID:          id,
		Kind:        req.Kind,
		Title:       def.title,
		Filename:    fmt.Sprintf("%s-%s-%s.pdf", req.Kind, generatedAt.Format(dateutil.StorageLayout), id),
		Rows:        len(selected),
		Pages:       doc.PageCount(),
		GeneratedAt: generatedAt,
		PDF:         pdf,
	}

	s.metrics.ObserveReport(string(req.Kind), report.Pages)
	s.log.Infow("Report generated",
		"report_id", id,
		"kind", req.Kind,
		"rows", report.Rows,
		"pages", report.Pages,
	)
	return report, nil
}

// buildTable projects members onto the report's visible columns
func buildTable(def reportDefinition, members []*models.Member) pdftable.Table {
	columns := lo.FilterMap(memberColumns, func(c pdftable.Column, _ int) (pdftable.Column, bool) {
		if lo.Contains(def.exclude, c.Key) {
			return c, false
		}
		if header, ok := def.headers[c.Key]; ok {
			c.Header = header
		}
		if weight, ok := def.weights[c.Key]; ok {
			c.Weight = weight
		}
		return c, true
	})

	rows := lo.Map(members, func(m *models.Member, i int) []string {
		values := memberValues(m, i+1)
		return lo.Map(columns, func(c pdftable.Column, _ int) string {
			return values[c.Key]
		})
	})

	return pdftable.Table{
		Title:   []string{def.title},
		Columns: columns,
		Rows:    rows,
	}
}

func memberValues(m *models.Member, index int) map[string]string {
	active := "No"
	if m.IsActiveMember {
		active = "Yes"
	}
	return map[string]string{
		colIndex:        strconv.Itoa(index),
		colFullName:     m.FullName,
		colNationalID:   m.NationalID,
		colStatus:       string(m.Status),
		colActiveMember: active,
		colDeceasedName: lo.FromPtr(m.DeceasedName),
		colBirthDate:    dateutil.ToDisplay(m.BirthDate),
		colDeathDate:    dateutil.ToDisplay(m.DeathDate),
		colPhone:        lo.FromPtr(m.Phone),
	}
}
