package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"retiree-registry/internal/core/domain"
	"retiree-registry/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// CronService writes the birthday report of the day to disk on a schedule
type CronService struct {
	reports   *ReportService
	outputDir string
	schedule  string
	log       *logger.Logger
	cron      *cron.Cron
	now       func() time.Time
}

// NewCronService creates a new cron service. schedule is a standard 5-field cron expression.
func NewCronService(reports *ReportService, outputDir, schedule string, log *logger.Logger) *CronService {
	return &CronService{
		reports:   reports,
		outputDir: outputDir,
		schedule:  schedule,
		log:       log,
		cron:      cron.New(),
		now:       time.Now,
	}
}

// Start registers the job and starts the scheduler
func (s *CronService) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.run); err != nil {
		return fmt.Errorf("invalid REPORT_CRON %q: %w", s.schedule, err)
	}
	s.cron.Start()
	s.log.Infow("🚀 CronService started", "schedule", s.schedule, "output_dir", s.outputDir)
	return nil
}

// Stop waits for a running job to finish
func (s *CronService) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("🛑 CronService stopped")
}

func (s *CronService) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	path, err := s.RunOnce(ctx)
	switch {
	case errors.Is(err, domain.ErrEmptyReport):
		s.log.Info("No birthdays today, report skipped")
	case err != nil:
		s.log.Errorw("Birthday report failed", "error", err)
	default:
		s.log.Infow("Birthday report written", "path", path)
	}
}

// RunOnce renders today's birthday report and writes it to the output directory.
// It returns the written path.
func (s *CronService) RunOnce(ctx context.Context) (string, error) {
	today := s.now()
	report, err := s.reports.Generate(ctx, ReportRequest{
		Kind:  ReportBirthdays,
		Day:   today.Day(),
		Month: int(today.Month()),
	})
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	path := filepath.Join(s.outputDir, report.Filename)
	if err := os.WriteFile(path, report.PDF, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
