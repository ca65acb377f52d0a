// Package salary estimates market compensation from static BLS wage
// percentile tables, keyed by role family and metro area.
package salary

import "strings"

// dataSource labels where the percentile tables come from.
const dataSource = "U.S. Bureau of Labor Statistics (BLS) - Occupational Employment and Wage Statistics (May 2024)"

// defaultLocation is the middle-market fallback for unrecognized metros.
const defaultLocation = "Austin"

// Percentiles are annual salaries in thousands of USD.
type Percentiles struct {
	P10    int `json:"10th"`
	P25    int `json:"25th"`
	Median int `json:"median"`
	P75    int `json:"75th"`
	P90    int `json:"90th"`
}

// Analysis is the salary portion of a resume report. Available is false
// when no table covers the requested role.
type Analysis struct {
	Available          bool        `json:"available"`
	Message            string      `json:"message,omitempty"`
	Role               string      `json:"role,omitempty"`
	NormalizedRole     string      `json:"normalized_role,omitempty"`
	Location           string      `json:"location,omitempty"`
	NormalizedLocation string      `json:"normalized_location,omitempty"`
	ExpectedSalary     int         `json:"current_expected_salary,omitempty"`
	TargetSalary       int         `json:"target_salary_after_improvement,omitempty"`
	HikeAmount         int         `json:"potential_hike_amount,omitempty"`
	HikePercent        int         `json:"potential_hike_percent,omitempty"`
	MarketPercentiles  Percentiles `json:"market_percentiles,omitempty"`
	DataSource         string      `json:"data_source,omitempty"`
	CareerStage        string      `json:"career_stage,omitempty"`
	AlignmentScore     int         `json:"alignment_score,omitempty"`
}

var validLocations = []string{
	"NYC/NJ", "SFO", "LA", "San Diego", "Boston",
	"DC", "Raleigh/Durham", "Houston", "Dallas", "Austin",
}

// percentile order: 10th, 25th, median, 75th, 90th.
var salaryDatabase = map[string]map[string][5]int{
	"data scientist": {
		"NYC/NJ":         {88, 110, 142, 175, 215},
		"SFO":            {95, 120, 150, 185, 230},
		"LA":             {78, 98, 128, 160, 195},
		"San Diego":      {72, 92, 120, 152, 188},
		"Boston":         {80, 100, 130, 165, 200},
		"DC":             {82, 103, 135, 168, 205},
		"Raleigh/Durham": {68, 85, 112, 142, 175},
		"Houston":        {70, 88, 115, 145, 180},
		"Dallas":         {72, 90, 118, 150, 185},
		"Austin":         {70, 88, 115, 145, 180},
	},
	"software engineer": {
		"NYC/NJ":         {92, 118, 155, 192, 235},
		"SFO":            {100, 130, 165, 205, 250},
		"LA":             {80, 102, 135, 170, 208},
		"San Diego":      {75, 96, 128, 162, 198},
		"Boston":         {82, 105, 138, 173, 212},
		"DC":             {85, 108, 142, 178, 218},
		"Raleigh/Durham": {72, 92, 122, 155, 190},
		"Houston":        {75, 95, 125, 158, 195},
		"Dallas":         {74, 95, 125, 158, 195},
		"Austin":         {75, 95, 125, 158, 195},
	},
	"frontend developer": {
		"NYC/NJ":         {78, 102, 135, 170, 208},
		"SFO":            {85, 110, 142, 178, 218},
		"LA":             {65, 88, 118, 150, 185},
		"San Diego":      {62, 84, 112, 142, 175},
		"Boston":         {68, 90, 120, 152, 188},
		"DC":             {70, 92, 123, 156, 192},
		"Raleigh/Durham": {58, 78, 105, 135, 168},
		"Houston":        {62, 82, 108, 138, 172},
		"Dallas":         {60, 80, 108, 138, 172},
		"Austin":         {62, 82, 108, 138, 172},
	},
	"devops engineer": {
		"NYC/NJ":         {95, 122, 160, 200, 245},
		"SFO":            {105, 135, 172, 215, 265},
		"LA":             {82, 108, 142, 180, 222},
		"San Diego":      {78, 102, 135, 172, 212},
		"Boston":         {85, 110, 145, 182, 225},
		"DC":             {88, 113, 150, 188, 232},
		"Raleigh/Durham": {72, 95, 128, 162, 200},
		"Houston":        {78, 100, 132, 168, 208},
		"Dallas":         {75, 98, 130, 165, 205},
		"Austin":         {78, 100, 132, 168, 208},
	},
	"data analyst": {
		"NYC/NJ":         {65, 84, 112, 140, 172},
		"SFO":            {70, 90, 118, 148, 182},
		"LA":             {55, 72, 96, 122, 152},
		"San Diego":      {52, 68, 92, 118, 148},
		"Boston":         {58, 75, 100, 128, 158},
		"DC":             {60, 78, 105, 132, 162},
		"Raleigh/Durham": {48, 62, 85, 110, 138},
		"Houston":        {52, 68, 90, 115, 145},
		"Dallas":         {50, 65, 88, 112, 140},
		"Austin":         {52, 68, 90, 115, 145},
	},
}

// Analyze estimates expected and post-improvement salaries for a role,
// metro, career stage and alignment score. Unknown metros fall back to the
// default; unknown roles map onto the nearest covered role family.
func Analyze(role, location, careerStage string, alignmentScore int) Analysis {
	normalizedRole := normalizeRole(role)
	normalizedLocation := normalizeLocation(location)

	roleData, ok := salaryDatabase[normalizedRole]
	if !ok {
		return Analysis{
			Available: false,
			Message:   "Salary data not available for " + role + ". Add more common roles to receive salary insights.",
		}
	}

	p := roleData[normalizedLocation]
	expected, target := adjustForCareerStage(p, careerStage)

	return Analysis{
		Available:          true,
		Role:               role,
		NormalizedRole:     titleWords(normalizedRole),
		Location:           location,
		NormalizedLocation: normalizedLocation,
		ExpectedSalary:     int(expected),
		TargetSalary:       int(target),
		HikeAmount:         int(target - expected),
		HikePercent:        int((target - expected) / expected * 100),
		MarketPercentiles: Percentiles{
			P10:    p[0],
			P25:    p[1],
			Median: p[2],
			P75:    p[3],
			P90:    p[4],
		},
		DataSource:     dataSource,
		CareerStage:    careerStage,
		AlignmentScore: alignmentScore,
	}
}

func normalizeLocation(location string) string {
	clean := strings.TrimSpace(location)
	for _, valid := range validLocations {
		if clean == valid {
			return clean
		}
	}
	return defaultLocation
}

// normalizeRole maps arbitrary role names onto the covered role families.
func normalizeRole(role string) string {
	lower := strings.ToLower(strings.TrimSpace(role))

	if _, ok := salaryDatabase[lower]; ok {
		return lower
	}

	switch {
	case strings.Contains(lower, "data scien"),
		strings.Contains(lower, "machine learning"),
		strings.Contains(lower, "mle"),
		strings.Contains(lower, "ai engineer"):
		return "data scientist"
	case strings.Contains(lower, "frontend"), strings.Contains(lower, "front end"):
		return "frontend developer"
	case strings.Contains(lower, "devops"), strings.Contains(lower, "cloud"):
		return "devops engineer"
	case strings.Contains(lower, "data anal"):
		return "data analyst"
	default:
		return "software engineer"
	}
}

// adjustForCareerStage positions the expected salary within the percentile
// band for the stage and sets the post-improvement target one band higher.
func adjustForCareerStage(p [5]int, careerStage string) (expected, target float64) {
	switch careerStage {
	case "Student", "Recent Graduate":
		return float64(p[0]+p[1]) / 2, float64(p[2])
	case "Mid-Level":
		return float64(p[1]+p[2]) / 2, float64(p[3])
	case "Senior":
		return float64(p[2]+p[3]) / 2, float64(p[4])
	default:
		return float64(p[2]), float64(p[3])
	}
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
