package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
Email: jane.doe@example.com Phone: 555-123-4567
LinkedIn: linkedin.com/in/janedoe GitHub: github.com/janedoe

Professional Summary
Data scientist with six years of shipping fraud detection models in fintech,
covering python and sql pipelines that cut false positives by 40% across 2M+ transactions
while serving 500k+ users on low latency scoring endpoints every single day.

Experience
Senior Data Scientist, Acme Corp
January 2019 - Present
* Led a team of 4 analysts and improved fraud model accuracy by 18% year over year
* Reduced batch scoring time by 35% after moving feature generation onto spark clusters
* Deployed 12 production models behind rest endpoints serving 500k+ users at peak load
* Automated retraining pipelines in airflow so releases ship weekly instead of monthly
* Presented quarterly model health reviews to executives and regulators alike

Data Analyst, Beta Inc
2016 - 2019
* Built revenue dashboards in tableau adopted by 30+ stakeholders across three offices
* Automated weekly reporting with python scripts, saving 10 hours of manual work
* Mentored two junior analysts on sql style and reproducible notebooks
* Designed experiment readouts that informed pricing changes worth real money

Education
BS Computer Science, State University, 2016
GPA: 3.8
* Completed senior thesis on anomaly detection in streaming payments data

Skills
* python, sql, spark, tableau, airflow, docker, git
`

const sampleJD = "Looking for a data scientist with 5+ years experience in Python, SQL, Spark and Docker. PyTorch a plus."

func TestAnalyzeReportInvariants(t *testing.T) {
	report := Analyze(sampleResume, sampleJD)
	require.NotNil(t, report)

	assert.Equal(t, 120, report.MaxScore)
	assert.GreaterOrEqual(t, report.OverallScore, 0)
	assert.LessOrEqual(t, report.OverallScore, 120)

	sum := report.Completeness.Score + report.Summary.Score +
		report.Education.Score + report.Employment.Score
	assert.Equal(t, sum, report.OverallScore)

	for _, category := range []CategoryResult{
		report.Completeness, report.Summary, report.Education, report.Employment,
	} {
		assert.Equal(t, 30, category.MaxScore)
		assert.GreaterOrEqual(t, category.Score, 0)
		assert.LessOrEqual(t, category.Score, category.MaxScore)
		assert.NotEmpty(t, category.Details)
		assert.NotEmpty(t, category.Band)
	}

	assert.Contains(t, []string{VerdictHigh, VerdictMedium, VerdictLow}, report.Verdict)
	assert.Contains(t, []string{atsPass, atsAtRisk}, report.ATSReadiness.Verdict)
}

func TestAnalyzeSampleResume(t *testing.T) {
	report := Analyze(sampleResume, sampleJD)

	// Two overlapping stints from 2016 onward put this resume well past
	// the eight-year senior threshold.
	assert.Equal(t, StageSenior, report.CareerStage)
	assert.Equal(t, 30, report.Completeness.Score)
	assert.Equal(t, atsPass, report.ATSReadiness.Verdict)
}

func TestAnalyzeRoleAlignment(t *testing.T) {
	report := Analyze(sampleResume, sampleJD)
	alignment := report.RoleAlignment

	assert.Equal(t, 6, alignment.TotalRequired)
	assert.Equal(t, []string{"pytorch"}, alignment.Gaps)
	assert.Equal(t, 83, alignment.Score)
	assert.Equal(t, StageSenior, alignment.Level)
}

func TestAnalyzeNoJobDescription(t *testing.T) {
	report := Analyze(sampleResume, "")

	assert.Equal(t, 0, report.RoleAlignment.Score)
	assert.Contains(t, strings.Join(report.RoleAlignment.Details, " "),
		"Could not extract requirements")
}

func TestFallbackKeywords(t *testing.T) {
	keywords := FallbackKeywords(sampleResume)
	require.NotEmpty(t, keywords)
	assert.LessOrEqual(t, len(keywords), 10)

	lower := strings.ToLower(sampleResume)
	for _, kw := range keywords {
		assert.NotContains(t, lower, kw)
	}

	assert.Len(t, FallbackKeywords(""), 10)
}
