package services

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resumatch/analyzer-api/internal/analysis"
	"resumatch/analyzer-api/internal/catalog"
	"resumatch/analyzer-api/internal/models"
	"resumatch/analyzer-api/internal/repositories"
	"resumatch/analyzer-api/internal/salary"
)

// AnalyzerService runs one queued analysis end to end: parse the stored
// file, score it, price the target role, build the improvement plan, and
// persist the assembled report.
type AnalyzerService interface {
	ProcessAnalysis(ctx context.Context, analysisID uuid.UUID) error
}

// AnalysisDocument is the full report persisted as JSON and returned to
// clients verbatim.
type AnalysisDocument struct {
	*analysis.Report
	TargetRole       string           `json:"target_role"`
	ImprovementPlan  *ImprovementPlan `json:"improvement_plan"`
	TailoredKeywords []string         `json:"tailored_keywords"`
	Salary           salary.Analysis  `json:"salary_analysis"`
}

type analyzerService struct {
	analysisRepo repositories.AnalysisRepository
	parser       ResumeParserService
	storage      StorageService
	planService  PlanService
	logger       *zap.Logger
}

func NewAnalyzerService(
	analysisRepo repositories.AnalysisRepository,
	parser ResumeParserService,
	storage StorageService,
	planService PlanService,
	logger *zap.Logger,
) AnalyzerService {
	return &analyzerService{
		analysisRepo: analysisRepo,
		parser:       parser,
		storage:      storage,
		planService:  planService,
		logger:       logger,
	}
}

// ProcessAnalysis implements AnalyzerService.
func (s *analyzerService) ProcessAnalysis(ctx context.Context, analysisID uuid.UUID) error {
	record, err := s.analysisRepo.FindByID(analysisID)
	if err != nil {
		return fmt.Errorf("failed to load analysis: %w", err)
	}

	if err := s.analysisRepo.UpdateStatus(analysisID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to mark analysis processing: %w", err)
	}

	rawText, err := s.parser.ExtractText(record.FilePath)
	if err != nil {
		return s.fail(analysisID, fmt.Errorf("failed to extract resume text: %w", err))
	}
	rawText = CleanText(rawText)

	jobDescription := catalog.Lookup(record.TargetRole)
	if record.CustomJD != nil && *record.CustomJD != "" {
		jobDescription = *record.CustomJD
	}

	report := analysis.Analyze(rawText, jobDescription)

	salaryAnalysis := salary.Analyze(
		record.TargetRole,
		record.Location,
		string(report.CareerStage),
		report.RoleAlignment.Score,
	)

	plan := s.planService.GeneratePlan(ctx, report, record.TargetRole)
	keywords := s.planService.TailoredKeywords(ctx, record.TargetRole, rawText)

	doc := AnalysisDocument{
		Report:           report,
		TargetRole:       record.TargetRole,
		ImprovementPlan:  plan,
		TailoredKeywords: keywords,
		Salary:           salaryAnalysis,
	}

	reportJSON, err := json.Marshal(doc)
	if err != nil {
		return s.fail(analysisID, fmt.Errorf("failed to encode report: %w", err))
	}

	result := &repositories.AnalysisResultData{
		OverallScore: report.OverallScore,
		ATSVerdict:   report.ATSReadiness.Verdict,
		ReportJSON:   string(reportJSON),
	}

	if err := s.analysisRepo.UpdateResult(analysisID, result); err != nil {
		return fmt.Errorf("failed to store result: %w", err)
	}

	// The parsed report is self-contained; the upload is no longer needed.
	storedName := filepath.Base(record.FilePath)
	if err := s.storage.DeleteFile(storedName); err != nil {
		s.logger.Warn("failed to delete processed upload",
			zap.String("filename", storedName),
			zap.Error(err))
	}

	s.logger.Info("analysis completed",
		zap.String("analysis_id", analysisID.String()),
		zap.Int("overall_score", report.OverallScore),
		zap.String("career_stage", string(report.CareerStage)))

	return nil
}

func (s *analyzerService) fail(analysisID uuid.UUID, cause error) error {
	if err := s.analysisRepo.UpdateError(analysisID, cause.Error()); err != nil {
		s.logger.Error("failed to record analysis error",
			zap.String("analysis_id", analysisID.String()),
			zap.Error(err))
	}
	return cause
}
