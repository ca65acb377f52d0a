// Package catalog holds the predefined job descriptions a caller can target
// by role name instead of pasting a full job description.
package catalog

import "strings"

// RoleOptions are the selectable role names, in display order.
var RoleOptions = []string{
	"Data Science",
	"Senior Data Science",
	"MLE",
	"AI Engineer",
	"Full Stack Web Developer",
	"Software Engineer",
	"Backend Developer",
	"Frontend Developer",
	"DevOps Engineer",
	"Cloud Architect",
	"Technology Manager",
	"Data Analyst",
}

// genericJD is returned for role names that match nothing in the catalog.
const genericJD = `
Generic Tech Role Requirements:
- Strong programming skills in relevant languages
- Problem-solving and analytical abilities
- Collaboration and communication skills
- Experience with modern development tools and practices
- Continuous learning mindset
`

// Lookup resolves a role name to its job description: exact match first,
// then substring match in either direction, then the generic fallback.
// Matching is case-insensitive.
func Lookup(targetRole string) string {
	role := strings.ToLower(strings.TrimSpace(targetRole))

	if jd, ok := jobDescriptions[role]; ok {
		return jd
	}

	for key, jd := range jobDescriptions {
		if strings.Contains(role, key) || strings.Contains(key, role) {
			return jd
		}
	}

	return genericJD
}

var jobDescriptions = map[string]string{
	"data science": `
Requirements:
- 2+ years of experience in data analysis and statistical modeling
- Proficiency in Python or R, SQL, and data visualization tools
- Strong statistical and analytical skills
- Experience with machine learning techniques
- Ability to communicate complex findings to non-technical stakeholders
- Experience with A/B testing and experimentation
- Knowledge of business intelligence tools (Tableau, Power BI)
Responsibilities:
- Analyze large datasets to identify trends and patterns
- Build predictive models and data-driven solutions
- Create data visualizations and dashboards
- Collaborate with business teams to solve problems with data
- Present findings and recommendations to stakeholders
`,

	"senior data science": `
Requirements:
- 5+ years of experience in data science and advanced analytics
- Expert-level proficiency in Python, R, SQL, and statistical modeling
- Deep expertise in machine learning, deep learning, and statistical inference
- Experience leading data science projects and mentoring junior data scientists
- Strong communication skills with ability to influence senior leadership
- PhD or Master's in quantitative field preferred
- Experience with big data technologies (Spark, Hadoop) and cloud platforms
- Track record of deploying production ML systems at scale
Responsibilities:
- Lead complex data science initiatives with significant business impact
- Design and implement advanced ML models and statistical frameworks
- Define data science strategy and best practices for the organization
- Mentor and guide junior data scientists and analysts
- Collaborate with executives to translate business problems into analytical solutions
- Drive innovation in ML/AI capabilities across the organization
`,

	"mle": `
Requirements:
- 3+ years of experience in machine learning and data science
- Strong programming skills in Python (NumPy, Pandas, Scikit-learn)
- Experience with deep learning frameworks (TensorFlow, PyTorch, JAX)
- Knowledge of ML algorithms, feature engineering, and model evaluation
- Experience deploying ML models to production
- Solid understanding of statistics, linear algebra, and optimization
- Experience with MLOps tools (MLflow, Kubeflow, Weights & Biases)
- Experience with big data tools (Spark, Hadoop) is a plus
- Publications or contributions to ML community preferred
Responsibilities:
- Design and implement machine learning models and algorithms
- Analyze large datasets to extract meaningful insights
- Deploy and monitor ML models in production environments
- Build ML pipelines and infrastructure for model training and serving
- Collaborate with data scientists and engineers to improve model performance
- Stay current with latest ML research and technologies
`,

	"ai engineer": `
Requirements:
- 3+ years of experience building AI-powered applications
- Strong programming skills in Python and experience with AI frameworks
- Expertise in LLMs, prompt engineering, and AI model fine-tuning
- Experience with OpenAI, Anthropic, Google AI, or similar APIs
- Knowledge of vector databases (Pinecone, Weaviate, Chroma)
- Experience building RAG (Retrieval Augmented Generation) systems
- Understanding of transformer architectures and attention mechanisms
- Experience with AI safety, alignment, and responsible AI practices
Responsibilities:
- Design and build AI-powered features and applications
- Integrate LLMs and AI models into production systems
- Develop prompt engineering strategies and evaluation frameworks
- Build and optimize vector search and embedding pipelines
- Implement AI safety guardrails and monitoring systems
- Stay current with rapidly evolving AI/LLM landscape
`,

	"full stack web developer": `
Requirements:
- 3+ years of full stack web development experience
- Proficiency in frontend (React/Vue/Angular) and backend (Node.js/Python/Java)
- Strong knowledge of HTML, CSS, JavaScript/TypeScript
- Experience with databases (PostgreSQL, MongoDB, MySQL)
- Knowledge of cloud platforms (AWS, Azure, GCP) and deployment
- Understanding of DevOps practices and CI/CD pipelines
- Experience with version control (Git) and agile methodologies
- Strong problem-solving and communication skills
Responsibilities:
- Develop end-to-end web features from UI to database
- Design and implement RESTful APIs and GraphQL endpoints
- Build responsive and performant user interfaces
- Deploy applications to cloud infrastructure
- Collaborate with product teams to define requirements
- Optimize application performance and user experience
`,

	"software engineer": `
Requirements:
- 3+ years of experience in software development
- Proficiency in Python, Java, C++, or Go
- Experience with cloud platforms (AWS, Azure, GCP)
- Strong understanding of data structures and algorithms
- Experience with version control (Git), CI/CD pipelines
- RESTful API design and microservices architecture
- Database design (SQL and NoSQL)
- Excellent problem-solving and debugging skills
- Experience with testing frameworks and test-driven development
Responsibilities:
- Design, develop, and maintain scalable software systems
- Collaborate with cross-functional teams to define and ship features
- Write clean, maintainable, and well-tested code
- Participate in code reviews and technical discussions
- Optimize application performance and scalability
- Debug and resolve production issues
`,

	"backend developer": `
Requirements:
- 3+ years of backend development experience
- Strong knowledge of server-side languages (Python, Java, Go, Node.js)
- Experience with relational and NoSQL databases
- Understanding of RESTful and GraphQL API design
- Knowledge of authentication and authorization (OAuth, JWT)
- Experience with message queues (RabbitMQ, Kafka, Redis)
- Understanding of microservices architecture
- Experience with containerization (Docker, Kubernetes)
- Knowledge of caching strategies and performance optimization
Responsibilities:
- Design and develop scalable backend services and APIs
- Optimize database queries and system performance
- Implement security and data protection measures
- Integrate with third-party services and APIs
- Monitor and troubleshoot production issues
- Design data models and database schemas
`,

	"frontend developer": `
Requirements:
- 3+ years of experience in frontend development
- Expert knowledge of HTML, CSS, JavaScript/TypeScript
- Strong experience with modern frameworks (React, Vue, Angular)
- Understanding of responsive design and cross-browser compatibility
- Experience with state management (Redux, Zustand, Context API)
- Knowledge of web performance optimization and Core Web Vitals
- Familiarity with RESTful APIs and GraphQL
- Experience with testing frameworks (Jest, Cypress, Playwright)
- Understanding of accessibility (WCAG) and SEO best practices
Responsibilities:
- Build responsive and performant user interfaces
- Collaborate with designers to implement pixel-perfect designs
- Optimize applications for maximum speed and scalability
- Write reusable, testable, and efficient code
- Participate in code reviews and mentor junior developers
- Implement A/B tests and analytics tracking
`,

	"devops engineer": `
Requirements:
- 3+ years of DevOps or infrastructure engineering experience
- Strong knowledge of Linux/Unix systems
- Experience with cloud platforms (AWS, Azure, GCP)
- Proficiency in infrastructure as code (Terraform, CloudFormation, Pulumi)
- Experience with containerization and orchestration (Docker, Kubernetes)
- Knowledge of CI/CD tools (Jenkins, GitLab CI, GitHub Actions, CircleCI)
- Scripting skills in Python, Bash, or Go
- Experience with monitoring tools (Prometheus, Grafana, Datadog, New Relic)
- Understanding of networking, security, and compliance
Responsibilities:
- Design and maintain cloud infrastructure
- Implement CI/CD pipelines for automated deployments
- Monitor system performance and troubleshoot issues
- Improve system reliability, availability, and scalability
- Implement security best practices and compliance requirements
- Automate operational tasks and reduce manual intervention
`,

	"cloud architect": `
Requirements:
- 5+ years of experience in cloud architecture and infrastructure design
- Deep expertise in AWS, Azure, or GCP (multi-cloud experience preferred)
- Strong understanding of cloud-native architectures and design patterns
- Experience with infrastructure as code (Terraform, CloudFormation)
- Knowledge of serverless, microservices, and event-driven architectures
- Expertise in cloud security, compliance, and cost optimization
- Experience with disaster recovery and high availability design
- Cloud certifications (AWS Solutions Architect, Azure Architect) preferred
- Excellent communication and stakeholder management skills
Responsibilities:
- Design scalable, secure, and cost-effective cloud architectures
- Lead cloud migration and modernization initiatives
- Define cloud standards, best practices, and governance policies
- Conduct architecture reviews and provide technical guidance
- Optimize cloud costs and resource utilization
- Collaborate with security teams to ensure compliance and data protection
- Mentor engineering teams on cloud technologies
`,

	"technology manager": `
Requirements:
- 5+ years of software engineering experience with 2+ years in management
- Strong technical background in software development
- Proven experience leading and mentoring engineering teams
- Excellent project management and stakeholder communication skills
- Experience with agile methodologies (Scrum, Kanban)
- Understanding of software development lifecycle and best practices
- Ability to balance technical decisions with business objectives
- Strong problem-solving and conflict resolution skills
- Experience with hiring, performance management, and career development
Responsibilities:
- Lead and manage software engineering teams (5-15 engineers)
- Define technical roadmaps and project priorities
- Conduct 1-on-1s, performance reviews, and career development planning
- Collaborate with product managers and stakeholders to define requirements
- Make architectural and technology decisions
- Recruit, hire, and onboard new team members
- Foster team culture of innovation, collaboration, and continuous improvement
- Remove blockers and ensure team productivity
`,

	"data analyst": `
Requirements:
- 1-3 years of experience in data analysis or business intelligence
- Proficiency in SQL and data querying
- Experience with data visualization tools (Tableau, Power BI, Looker)
- Knowledge of Excel/Google Sheets for advanced data manipulation
- Basic understanding of statistics and data interpretation
- Strong analytical and problem-solving skills
- Ability to communicate insights to non-technical stakeholders
- Python or R skills are a plus
Responsibilities:
- Extract, clean, and analyze data from various sources
- Create dashboards and reports to track key business metrics
- Identify trends, patterns, and insights from data
- Support business teams with ad-hoc analysis requests
- Collaborate with stakeholders to understand data needs
- Document data processes and maintain data quality
- Present findings and recommendations to management
`,
}
