package matching

import "github.com/jonathan/resume-screener/internal/textnorm"

// Catalog is the dictionary of skills recognized in resume text regardless of
// what a job requires. Results record every catalog skill found, so the query
// layer can filter on skills a role never asked for.
var Catalog = []string{
	"Python", "Java", "JavaScript", "TypeScript", "Go", "Rust", "C", "C++",
	"C#", "PHP", "Ruby", "Scala", "Kotlin", "Swift", "R", "MATLAB", "Bash",
	"PowerShell", "SQL", "NoSQL", "HTML", "CSS", "Sass",
	"React", "Angular", "Vue", "NodeJS", "Express", "Django", "Flask",
	"Spring", "Rails", "Laravel", "jQuery", "Bootstrap", "Tailwind",
	"Redux", "GraphQL", "REST", "gRPC", "Microservices", "WebSocket",
	"MySQL", "PostgreSQL", "MongoDB", "Redis", "Elasticsearch", "SQLite",
	"Cassandra", "DynamoDB", "Oracle", "Snowflake", "Kafka", "RabbitMQ",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Ansible",
	"Jenkins", "Git", "GitHub", "GitLab", "CI/CD", "Linux", "Unix", "Nginx",
	"Serverless", "Lambda", "S3", "EC2", "CloudFormation", "Helm",
	"Prometheus", "Grafana", "DevOps", "SRE",
	"Machine Learning", "Deep Learning", "Data Science", "Data Analysis",
	"Data Engineering", "NLP", "Computer Vision", "TensorFlow", "PyTorch",
	"Keras", "Pandas", "NumPy", "SciPy", "Scikit-learn", "Spark", "Hadoop",
	"ETL", "Data Warehousing", "Big Data", "Tableau", "Power BI", "Excel",
	"Agile", "Scrum", "Kanban", "Jira", "Confluence", "Project Management",
	"Product Management", "Leadership", "Communication", "Teamwork",
	"Problem Solving", "Critical Thinking", "Time Management",
	"UI/UX", "Figma", "Photoshop", "Illustrator", "Responsive Design",
	"Accessibility", "SEO", "Selenium", "Cypress", "Jest", "Mocha",
	"Unit Testing", "Integration Testing", "QA", "Debugging",
	"Android", "iOS", "Flutter", "React Native", "Mobile Development",
	"Security", "Penetration Testing", "Networking", "OAuth", "JWT",
	"Blockchain", "Solidity",
	"Recruiting", "Talent Acquisition", "Onboarding", "Payroll",
	"Performance Management", "Employee Engagement",
	"Accounting", "Financial Analysis", "Budgeting", "Forecasting",
	"Financial Modeling", "Audit", "GAAP", "QuickBooks",
	"Digital Marketing", "Content Marketing", "Email Marketing",
	"Google Analytics", "Salesforce", "CRM", "Lead Generation",
	"Customer Support", "Technical Support", "Zendesk",
	"Supply Chain Management", "Inventory Management", "Logistics",
	"Six Sigma", "Lean", "SAP",
}

// FoundSkills returns every catalog skill present in the normalized resume
// text, in catalog order. Matching uses the same boundary rules as Match.
func FoundSkills(resume textnorm.NormalizedText) []string {
	found := make([]string, 0, 16)
	for _, skill := range Catalog {
		phrase := textnorm.NormalizeSkill(skill)
		if phrase != "" && containsSkill(resume.Text, phrase) {
			found = append(found, skill)
		}
	}
	return found
}
