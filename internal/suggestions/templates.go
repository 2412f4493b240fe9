package suggestions

import (
	"fmt"
	"strings"
)

var dotnetFamily = map[string]bool{"c#": true, ".net": true, "asp.net": true, "asp.net core": true}

var scriptFamily = map[string]bool{"javascript": true, "typescript": true, "node.js": true}

func technicalAction(kw, sourceText string) string {
	text := strings.ToLower(sourceText)

	switch {
	case dotnetFamily[kw]:
		if strings.Contains(text, "api") || strings.Contains(text, "rest") {
			return fmt.Sprintf("Add %s to your skills and describe REST API development experience. Include specific frameworks and patterns used.", kw)
		}
		return fmt.Sprintf("Add %s to your skills section and describe enterprise application development experience.", kw)

	case strings.Contains(kw, "sql") || strings.Contains(kw, "database") || strings.HasSuffix(kw, "db"):
		return fmt.Sprintf("Add %s database skills. Include query optimization, stored procedures, and database design experience.", kw)

	case strings.Contains(kw, "test"):
		return fmt.Sprintf("Add %s experience to your skills. Describe test-driven development practices and testing frameworks used.", kw)

	case kw == "docker" || kw == "kubernetes" || kw == "devops" || kw == "ci/cd":
		return fmt.Sprintf("Highlight %s containerization and deployment experience. Mention CI/CD pipelines and infrastructure management.", kw)

	case scriptFamily[kw] || strings.HasSuffix(kw, ".js"):
		if strings.Contains(text, "angular") || strings.Contains(text, "react") {
			return fmt.Sprintf("Emphasize %s frontend development skills. Include component-based architecture and state management experience.", kw)
		}
		if strings.Contains(text, "node") {
			return fmt.Sprintf("Highlight %s backend development with Node.js. Mention API development and server-side experience.", kw)
		}
		return fmt.Sprintf("Add %s to your skills and describe both frontend and backend development experience.", kw)

	default:
		return fmt.Sprintf("Add %s to your skills section and provide specific examples of projects where you implemented %s solutions.", kw, kw)
	}
}

func softSkillAction(skill, sourceText string) string {
	text := strings.ToLower(sourceText)

	switch skill {
	case "communication", "writing":
		if strings.Contains(text, "documentation") || strings.Contains(text, "technical writing") {
			return fmt.Sprintf("Highlight your %s skills by mentioning technical documentation, API documentation, or user guides you've created.", skill)
		}
		return fmt.Sprintf("Include examples of %s in cross-functional team settings, client presentations, or stakeholder meetings.", skill)
	case "leadership", "mentoring":
		return fmt.Sprintf("Demonstrate %s by describing team projects you led, mentoring experience, or process improvements you initiated.", skill)
	case "problem solving", "analytical thinking", "critical thinking":
		return fmt.Sprintf("Show %s abilities through examples of complex technical challenges you solved and the methodologies you used.", skill)
	case "collaboration", "teamwork":
		return fmt.Sprintf("Highlight %s through examples of successful cross-functional projects, pair programming, or agile team participation.", skill)
	default:
		return fmt.Sprintf("Include specific examples demonstrating your %s abilities in your experience section with measurable outcomes.", skill)
	}
}

func industryAction(kw string) string {
	return fmt.Sprintf("Add '%s' to relevant sections to show industry knowledge and improve keyword matching.", kw)
}

var technicalExamples = map[string]string{
	"c#":               "Developed enterprise applications using C# and .NET with clean architecture patterns.",
	".net":             "Built scalable web applications using .NET Core with Entity Framework and dependency injection.",
	"javascript":       "Implemented interactive web features using modern JavaScript (ES6+) and asynchronous programming.",
	"angular":          "Created responsive single-page applications using Angular with TypeScript and RxJS.",
	"sql":              "Designed and optimized database schemas with complex queries, achieving a 40% performance improvement.",
	"docker":           "Containerized applications using Docker multi-stage builds, reducing deployment time by 60%.",
	"microservices":    "Architected microservices-based solutions with API gateways and service discovery.",
	"swagger":          "Documented REST APIs using Swagger/OpenAPI specifications for a better developer experience.",
	"unit testing":     "Implemented comprehensive unit testing achieving 85% code coverage using TDD.",
	"entity framework": "Designed a data access layer using Entity Framework Core with a Code First approach.",
	"authorization":    "Implemented role-based authorization with JWT tokens and custom middleware.",
}

var softSkillExamples = map[string]string{
	"communication":       "Facilitated daily standups and sprint reviews, improving team communication and reducing project delays by 25%.",
	"leadership":          "Led a cross-functional team of 8 developers and designers, delivering the project 2 weeks ahead of schedule.",
	"problem solving":     "Identified and resolved a critical performance bottleneck, improving application response time by 60%.",
	"collaboration":       "Collaborated with UX and product managers to deliver user-centric features with a 95% satisfaction rate.",
	"analytical thinking": "Analyzed user behavior data to identify optimization opportunities, increasing conversion rate by 15%.",
	"teamwork":            "Worked effectively in an agile environment, contributing to a 98% sprint completion rate over 12 months.",
}

func technicalExample(kw string) string {
	if example, ok := technicalExamples[kw]; ok {
		return example
	}
	return fmt.Sprintf("Successfully implemented %s solutions in production environments with measurable business impact.", kw)
}

func softSkillExample(skill string) string {
	if example, ok := softSkillExamples[skill]; ok {
		return example
	}
	return fmt.Sprintf("Demonstrated strong %s skills through successful project delivery and stakeholder engagement.", skill)
}
