package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"resumatch/analyzer-api/internal/analysis"
	"resumatch/analyzer-api/internal/catalog"
)

// ImprovementPlan is a 12-month roadmap built from the analysis report.
type ImprovementPlan struct {
	SkillsToAcquire        []string            `json:"skills_to_acquire"`
	ProjectsToBuild        []string            `json:"projects_to_build"`
	PortfolioSignals       []string            `json:"portfolio_signals"`
	NetworkingApplications []string            `json:"networking_applications"`
	QuarterlyMilestones    map[string][]string `json:"quarterly_milestones"`
	GeminiKeywords         []string            `json:"gemini_keywords,omitempty"`
}

type PlanService interface {
	GeneratePlan(ctx context.Context, report *analysis.Report, targetRole string) *ImprovementPlan
	TailoredKeywords(ctx context.Context, targetRole, resumeText string) []string
}

type planService struct {
	gemini GeminiService
	logger *zap.Logger
}

// NewPlanService builds a plan generator. gemini may be nil; the service
// then produces rule-based plans only.
func NewPlanService(gemini GeminiService, logger *zap.Logger) PlanService {
	return &planService{
		gemini: gemini,
		logger: logger,
	}
}

// GeneratePlan builds the rule-based plan and, when a Gemini client is
// configured, layers one model-refined suggestion onto each section. Any
// model failure degrades to the rule-based plan.
func (s *planService) GeneratePlan(ctx context.Context, report *analysis.Report, targetRole string) *ImprovementPlan {
	plan := ruleBasedPlan(report, targetRole)

	if s.gemini == nil {
		return plan
	}

	prompt := enhancementPrompt(report, targetRole)

	text, err := s.gemini.GenerateTextWithRetry(ctx, prompt, 0.7, 2)
	if err != nil {
		s.logger.Warn("plan enhancement failed, using rule-based plan", zap.Error(err))
		return plan
	}

	enh := parsePlanEnhancement(text)
	if enh.Skills != "" {
		plan.SkillsToAcquire = append([]string{enh.Skills}, plan.SkillsToAcquire...)
	}
	if enh.Projects != "" {
		plan.ProjectsToBuild = append([]string{enh.Projects}, plan.ProjectsToBuild...)
	}
	if enh.Portfolio != "" {
		plan.PortfolioSignals = append([]string{enh.Portfolio}, plan.PortfolioSignals...)
	}
	if enh.Networking != "" {
		plan.NetworkingApplications = append([]string{enh.Networking}, plan.NetworkingApplications...)
	}
	if len(enh.Keywords) > 10 {
		enh.Keywords = enh.Keywords[:10]
	}
	plan.GeminiKeywords = enh.Keywords

	return plan
}

// TailoredKeywords asks the model for role-specific impact verbs. Without a
// model it falls back to impact verbs the resume does not use yet.
func (s *planService) TailoredKeywords(ctx context.Context, targetRole, resumeText string) []string {
	if s.gemini != nil {
		jd := catalog.Lookup(targetRole)
		prompt := fmt.Sprintf(`Based on this %s job description:
%s

List 6-10 powerful action verbs and impact keywords that would resonate with hiring managers for this role.
Focus on verbs that demonstrate the required skills and responsibilities.

Return only the keywords, comma-separated.`, targetRole, jd)

		text, err := s.gemini.GenerateTextWithRetry(ctx, prompt, 0.7, 2)
		if err == nil {
			keywords := splitKeywords(text)
			if len(keywords) > 0 {
				if len(keywords) > 10 {
					keywords = keywords[:10]
				}
				return keywords
			}
		} else {
			s.logger.Warn("tailored keywords failed, using fallback", zap.Error(err))
		}
	}

	return analysis.FallbackKeywords(resumeText)
}

func ruleBasedPlan(report *analysis.Report, targetRole string) *ImprovementPlan {
	plan := &ImprovementPlan{
		SkillsToAcquire:        []string{},
		ProjectsToBuild:        []string{},
		PortfolioSignals:       []string{},
		NetworkingApplications: []string{},
		QuarterlyMilestones:    map[string][]string{},
	}

	gaps := report.RoleAlignment.Gaps
	if len(gaps) > 5 {
		gaps = gaps[:5]
	}
	for _, gap := range gaps {
		plan.SkillsToAcquire = append(plan.SkillsToAcquire, "Learn "+titleCase(gap))
	}

	switch report.CareerStage {
	case analysis.StageStudent, analysis.StageRecentGraduate:
		plan.ProjectsToBuild = append(plan.ProjectsToBuild,
			"Build 2-3 end-to-end projects demonstrating skills in "+targetRole,
			"Contribute to 1-2 open source projects in relevant domain",
			"Complete online certifications or courses in key technologies",
		)
	case analysis.StageMidLevel:
		plan.ProjectsToBuild = append(plan.ProjectsToBuild,
			"Lead a complex technical project with measurable impact",
			"Publish technical blog posts or speak at meetups",
			"Mentor junior team members or contribute to knowledge sharing",
		)
	default:
		plan.ProjectsToBuild = append(plan.ProjectsToBuild,
			"Drive strategic initiatives with cross-functional impact",
			"Contribute to open source or industry standards",
			"Build thought leadership through publications and speaking",
		)
	}

	for _, detail := range report.Completeness.Details {
		if detail == "Missing: LinkedIn, GitHub, or portfolio URL" {
			plan.PortfolioSignals = append(plan.PortfolioSignals,
				"Create LinkedIn profile highlighting key achievements",
				"Build GitHub portfolio with 3-5 polished projects",
			)
			break
		}
	}

	plan.PortfolioSignals = append(plan.PortfolioSignals,
		"Quantify all achievements with metrics (%, $, scale)",
		"Document projects with clear problem/solution/impact structure",
	)

	plan.NetworkingApplications = append(plan.NetworkingApplications,
		"Join professional communities and attend industry events",
		"Network with 5-10 professionals in target role via informational interviews",
		"Apply to 10-15 relevant positions tailored to target role",
		"Get resume reviewed by 2-3 industry professionals",
	)

	plan.QuarterlyMilestones["Q1"] = []string{
		"Complete skills gap analysis and enroll in 1-2 courses",
		"Update resume with quantified achievements",
		"Start building portfolio project #1",
	}
	plan.QuarterlyMilestones["Q2"] = []string{
		"Complete portfolio project #1 with documentation",
		"Start portfolio project #2",
		"Begin networking with target companies",
	}
	plan.QuarterlyMilestones["Q3"] = []string{
		"Complete portfolio project #2",
		"Polish LinkedIn and GitHub profiles",
		"Apply to 5-10 positions and gather feedback",
	}
	plan.QuarterlyMilestones["Q4"] = []string{
		"Complete any remaining projects",
		"Intensify job applications (10-15 companies)",
		"Prepare for technical interviews and behavioral questions",
		"Secure interviews and offers in target role",
	}

	return plan
}

func enhancementPrompt(report *analysis.Report, targetRole string) string {
	jd := catalog.Lookup(targetRole)

	gaps := report.RoleAlignment.Gaps
	if len(gaps) > 5 {
		gaps = gaps[:5]
	}

	return fmt.Sprintf(`You are a career advisor helping someone transition to a %s role.

Typical %s Job Description:
%s

Current career stage: %s
Resume analysis summary:
- Overall score: %d/%d
- Role alignment: %d%%
- Key gaps: %s

Based on the job description requirements above, provide:
1. 6-10 tailored impact keywords/action verbs that match this role's requirements
2. One refined, specific suggestion for each section based on what employers want

Keep response concise and actionable. Format as:
KEYWORDS: keyword1, keyword2, keyword3, ...
SKILLS: one specific skill recommendation aligned with job requirements
PROJECTS: one specific project recommendation that demonstrates required skills
PORTFOLIO: one specific portfolio recommendation to stand out to hiring managers
NETWORKING: one specific networking recommendation to break into this field`,
		targetRole, targetRole, jd,
		report.CareerStage,
		report.OverallScore, report.MaxScore,
		report.RoleAlignment.Score,
		strings.Join(gaps, ", "))
}

// planEnhancement is the parsed form of a model response in the
// KEYWORDS:/SKILLS:/PROJECTS:/PORTFOLIO:/NETWORKING: format.
type planEnhancement struct {
	Keywords   []string
	Skills     string
	Projects   string
	Portfolio  string
	Networking string
}

func parsePlanEnhancement(text string) planEnhancement {
	return planEnhancement{
		Keywords:   splitKeywords(firstLineAfter(text, "KEYWORDS:")),
		Skills:     firstLineAfter(text, "SKILLS:"),
		Projects:   firstLineAfter(text, "PROJECTS:"),
		Portfolio:  firstLineAfter(text, "PORTFOLIO:"),
		Networking: firstLineAfter(text, "NETWORKING:"),
	}
}

// firstLineAfter returns the trimmed remainder of the line containing
// marker, or "" when the marker is absent.
func firstLineAfter(text, marker string) string {
	idx := strings.Index(text, marker)
	if idx < 0 {
		return ""
	}

	rest := text[idx+len(marker):]
	if nl := strings.Index(rest, "\n"); nl >= 0 {
		rest = rest[:nl]
	}

	return strings.TrimSpace(rest)
}

func splitKeywords(line string) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	var keywords []string
	for _, part := range strings.Split(line, ",") {
		if part = strings.TrimSpace(part); part != "" {
			keywords = append(keywords, part)
		}
	}
	return keywords
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
