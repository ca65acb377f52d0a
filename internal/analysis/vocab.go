package analysis

// Curated vocabularies used by the extractors and scorers. All matching is
// plain lower-case substring containment unless a regex is named explicitly,
// so every entry here must already be lower-cased.

type sectionHints struct {
	Name  string
	Hints []string
}

// sectionTaxonomy is ordered; section detection iterates it top to bottom and
// the first hint hit on a line wins for that section name.
var sectionTaxonomy = []sectionHints{
	{"summary", []string{"summary", "objective", "profile", "about", "professional summary", "career objective"}},
	{"experience", []string{"experience", "employment", "work history", "professional experience", "work experience"}},
	{"education", []string{"education", "academic background", "qualifications", "academic history"}},
	{"skills", []string{"skills", "technical skills", "core competencies", "technical competencies", "proficiencies"}},
	{"projects", []string{"projects", "personal projects", "side projects", "portfolio"}},
	{"leadership", []string{"leadership", "leadership experience"}},
	{"research", []string{"research", "research experience"}},
	{"publications", []string{"publications", "papers", "articles"}},
	{"awards", []string{"awards", "honors", "achievements", "recognitions"}},
	{"certifications", []string{"certifications", "certificates", "licenses"}},
	{"volunteer", []string{"volunteer", "volunteering", "community service", "volunteer work"}},
	{"opensource", []string{"open source", "opensource", "oss contributions"}},
	{"misc", []string{"interests", "hobbies", "activities", "additional information"}},
}

// bonusSections score nothing in Completeness but trigger a thin-section
// warning when present with fewer than two bullets.
var bonusSections = []string{
	"projects", "leadership", "research", "publications",
	"awards", "certifications", "volunteer", "opensource",
}

var toolHints = []string{
	"python", "r", "sql", "pyspark", "spark", "mlflow", "tensorflow", "pytorch",
	"sklearn", "scikit-learn", "xgboost", "lightgbm", "keras", "tableau", "power bi",
	"dash", "plotly", "flask", "django", "streamlit", "airflow", "dbt", "snowflake",
	"bigquery", "databricks", "sagemaker", "azure", "aws", "gcp", "docker",
	"kubernetes", "terraform", "git", "linux", "jupyter", "pandas", "numpy",
	"scipy", "statsmodels", "seaborn", "matplotlib", "excel", "jira", "confluence",
	"slack", "redis", "mongodb", "postgresql", "mysql", "cassandra", "elasticsearch",
	"kafka", "spark streaming", "flink", "hadoop", "hive", "presto", "redshift",
	"lambda", "ec2", "s3", "emr", "glue", "athena", "kinesis", "cloud functions",
	"cloud run", "vertex ai", "azure ml", "jenkins", "circleci", "github actions",
	"gitlab ci", "travis ci", "ansible", "puppet", "chef", "prometheus", "grafana",
	"datadog", "new relic", "splunk", "looker", "mode", "metabase", "superset",
}

var domainHints = []string{
	"manufacturing", "steel", "healthcare", "fintech", "financial services",
	"retail", "ecommerce", "e-commerce", "adtech", "advertising", "martech",
	"government", "gov", "defense", "nuclear", "semiconductor", "telecom",
	"telecommunications", "insurance", "logistics", "supply chain", "automotive",
	"pharma", "pharmaceutical", "biotech", "education", "edtech", "gaming",
	"entertainment", "media", "social media", "saas", "b2b", "b2c", "enterprise",
	"startup", "consulting", "real estate", "proptech", "agriculture", "agtech",
	"energy", "cleantech", "oil and gas", "construction", "hospitality", "travel",
	"transportation", "aerospace", "legal", "legaltech", "hr", "hrtech", "cybersecurity",
	"security", "fraud detection", "risk management", "credit", "banking", "payments",
	"blockchain", "cryptocurrency", "web3", "iot", "robotics", "autonomous vehicles",
}

var roleTitles = []string{
	"data scientist", "machine learning engineer", "ml engineer", "data engineer",
	"analytics engineer", "research scientist", "applied scientist", "quant",
	"quantitative analyst", "data analyst", "business analyst", "mlops engineer",
	"ai engineer", "deep learning engineer", "nlp engineer", "computer vision engineer",
	"engineering manager", "product manager", "technical program manager", "tpm",
	"researcher", "postdoc", "phd student", "intern", "software engineer",
	"backend engineer", "frontend engineer", "full stack engineer", "devops engineer",
	"site reliability engineer", "sre", "platform engineer", "infrastructure engineer",
	"cloud engineer", "security engineer", "qa engineer", "test engineer",
	"principal engineer", "staff engineer", "senior engineer", "lead engineer",
	"architect", "solutions architect", "technical architect", "head of data",
	"head of ml", "head of engineering", "vp engineering", "cto", "chief data officer",
}

var impactVerbs = []string{
	"optimized", "automated", "accelerated", "reduced", "improved", "increased",
	"scaled", "stabilized", "launched", "deployed", "migrated", "orchestrated",
	"streamlined", "hardened", "benchmarked", "refactored", "designed", "built",
	"delivered", "led", "owned", "drove", "instrumented", "monitored", "implemented",
	"developed", "created", "established", "architected", "engineered", "maintained",
	"enhanced", "integrated", "collaborated", "coordinated", "managed", "supervised",
	"trained", "mentored", "presented", "published", "researched", "analyzed",
	"evaluated", "validated", "tested", "debugged", "troubleshot", "resolved",
	"achieved", "exceeded", "outperformed", "won", "awarded", "recognized",
	"spearheaded", "pioneered", "innovated", "transformed", "revolutionized",
	"modernized", "consolidated", "standardized", "unified", "simplified",
	"eliminated", "prevented", "mitigated", "minimized", "maximized",
}

var educationKeywords = []string{
	"bachelor", "bs", "ba", "bsc", "master", "ms", "ma", "msc", "mba",
	"phd", "doctorate", "md", "jd", "undergraduate", "graduate", "postgraduate",
	"degree", "diploma", "certificate", "associate", "aa", "as",
}

var leadershipKeywords = []string{
	"led", "managed", "supervised", "mentored", "trained", "coached", "directed",
	"spearheaded", "pioneered", "coordinated", "organized", "facilitated",
	"team lead", "tech lead", "technical lead", "project lead", "manager",
	"leadership", "team of", "cross-functional", "stakeholder management",
}

var honorsKeywords = []string{
	"honors", "summa cum laude", "magna cum laude", "cum laude",
	"dean's list", "distinction", "merit",
}

// technicalTerms is the curated requirement vocabulary scanned against job
// descriptions: languages, ML/AI, frameworks, cloud/DevOps, databases and
// data infra, security, testing, methodology, leadership and analytics.
var technicalTerms = []string{
	"python", "java", "javascript", "typescript", "golang", "scala", "kotlin",
	"swift", "ruby", "php", "rust", "c++", "c#", "sql", "nosql", "html", "css", "bash",

	"machine learning", "deep learning", "neural network", "nlp", "computer vision",
	"llm", "prompt engineering", "fine-tuning", "rag", "embeddings", "vector database",
	"transformers", "statistical modeling", "statistical analysis", "statistics",
	"data analysis", "data visualization", "a/b testing", "experimentation",
	"feature engineering", "model evaluation", "predictive modeling", "time series",
	"forecasting", "reinforcement learning", "model deployment", "model serving",

	"react", "vue", "angular", "node.js", "django", "flask", "fastapi", "spring",
	"tensorflow", "pytorch", "keras", "scikit-learn", "pandas", "numpy", "jax",
	"xgboost", "graphql", "rest api", "restful", "microservices", "grpc",

	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "cloudformation",
	"pulumi", "jenkins", "gitlab ci", "github actions", "circleci", "ci/cd",
	"linux", "unix", "serverless", "prometheus", "grafana", "datadog", "new relic",
	"infrastructure as code", "monitoring", "observability", "mlflow", "kubeflow",
	"sagemaker", "vertex ai",

	"postgresql", "mysql", "mongodb", "redis", "elasticsearch", "cassandra",
	"dynamodb", "snowflake", "bigquery", "redshift", "spark", "hadoop", "kafka",
	"rabbitmq", "airflow", "dbt", "databricks", "etl", "data warehouse",
	"data pipeline", "streaming", "data modeling", "data quality",

	"oauth", "jwt", "authentication", "authorization", "encryption", "compliance",

	"unit testing", "integration testing", "test-driven development", "tdd",
	"jest", "cypress", "playwright", "selenium", "pytest", "debugging",

	"agile", "scrum", "kanban", "devops", "mlops", "version control", "git",
	"code review", "microservices architecture",

	"leadership", "mentoring", "mentorship", "stakeholder management",
	"cross-functional", "project management", "hiring", "performance management",
	"roadmap", "communication",

	"tableau", "power bi", "looker", "excel", "business intelligence",
	"dashboards", "analytics", "reporting",
}

// acronymBlacklist drops generic or administrative ALL-CAPS tokens from
// requirement extraction: country/state codes, pronouns, degree
// abbreviations and shouting section-heading words.
var acronymBlacklist = map[string]bool{
	"us": true, "usa": true, "uk": true, "eu": true, "emea": true, "apac": true,
	"ny": true, "nyc": true, "ca": true, "tx": true, "wa": true, "dc": true,
	"la": true, "sf": true, "il": true, "ma": true, "nj": true,

	"we": true, "he": true, "she": true, "you": true, "our": true, "they": true,
	"his": true, "her": true, "its": true,

	"bs": true, "ba": true, "bsc": true, "ms": true, "msc": true, "mba": true,
	"phd": true, "md": true, "jd": true, "gpa": true,

	"and": true, "the": true, "for": true, "with": true, "not": true, "all": true,
	"plus": true, "note": true, "summary": true, "skills": true, "education": true,
	"experience": true, "requirements": true, "responsibilities": true,
	"qualifications": true, "benefits": true, "about": true,

	"llc": true, "inc": true, "ltd": true, "eeo": true, "hr": true, "pto": true,
	"faq": true, "etc": true, "eg": true, "ie": true, "ok": true,
}
