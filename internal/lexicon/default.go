package lexicon

import "github.com/spigell/resume-matcher/internal/keywords"

func tech(canonical string, p Priority, variations ...string) Entry {
	return Entry{Canonical: canonical, Category: keywords.Technical, Priority: p, Variations: variations}
}

func soft(canonical string, variations ...string) Entry {
	return Entry{Canonical: canonical, Category: keywords.SoftSkills, Variations: variations}
}

func industry(canonical string, variations ...string) Entry {
	return Entry{Canonical: canonical, Category: keywords.Other, Variations: variations}
}

var defaultEntries = []Entry{
	// core languages and frameworks
	tech("c#", PriorityCritical, "csharp", "c sharp"),
	tech(".net", PriorityCritical, "dotnet"),
	tech("asp.net", PriorityCritical, "aspnet", "asp net"),
	tech("sql server", PriorityCritical, "sqlserver", "mssql"),
	tech("javascript", PriorityCritical, "js"),
	tech("python", PriorityCritical),
	tech("java", PriorityCritical),
	tech("sql", PriorityCritical),
	tech("react", PriorityCritical, "reactjs", "react.js"),
	tech("angular", PriorityCritical, "angularjs", "angular.js"),

	tech("typescript", PriorityHigh, "ts"),
	tech("node.js", PriorityHigh, "nodejs", "node js"),
	tech("mongodb", PriorityHigh, "mongo"),
	tech("asp.net core", PriorityHigh, "aspnet core", "asp net core"),
	tech("entity framework", PriorityHigh, "ef", "ef core", "entity framework core"),
	tech("web api", PriorityHigh),
	tech("rest", PriorityHigh, "rest api"),
	tech("microservices", PriorityHigh, "micro services", "micro-services"),
	tech("go", PriorityHigh, "golang"),
	tech("postgresql", PriorityHigh, "postgres"),
	tech("docker", PriorityMedium),
	tech("kubernetes", PriorityMedium, "k8s"),
	tech("aws", PriorityMedium, "amazon web services"),
	tech("azure", PriorityMedium, "microsoft azure"),
	tech("html", PriorityMedium, "html5"),
	tech("css", PriorityMedium, "css3"),
	tech("git", PriorityMedium),
	tech("ci/cd", PriorityMedium, "cicd", "continuous integration", "continuous deployment", "continuous delivery"),

	tech("c++", PriorityNone, "cpp"),
	tech("php", PriorityNone),
	tech("ruby", PriorityNone),
	tech("rust", PriorityNone),
	tech("kotlin", PriorityNone),
	tech("swift", PriorityNone),
	tech("scala", PriorityNone),
	tech("vue", PriorityNone, "vue.js", "vuejs"),
	tech("django", PriorityNone),
	tech("flask", PriorityNone),
	tech("fastapi", PriorityNone),
	tech("spring boot", PriorityNone, "springboot"),
	tech("spring mvc", PriorityNone),
	tech("hibernate", PriorityNone),
	tech("jquery", PriorityNone),
	tech("bootstrap", PriorityNone),
	tech("tailwind", PriorityNone, "tailwindcss", "tailwind css"),
	tech("sass", PriorityNone, "scss"),
	tech("webpack", PriorityNone),
	tech("npm", PriorityNone),
	tech("yarn", PriorityNone),
	tech("rxjs", PriorityNone),
	tech("ngrx", PriorityNone),
	tech("signalr", PriorityNone),
	tech("mvc", PriorityNone),
	tech("blazor", PriorityNone),
	tech("razor", PriorityNone),
	tech("linq", PriorityNone),
	tech("httpclient", PriorityNone),
	tech("observables", PriorityNone),
	tech("dependency injection", PriorityNone),
	tech("graphql", PriorityNone),
	tech("grpc", PriorityNone),
	tech("api", PriorityNone),
	tech("jwt", PriorityNone, "json web token", "json web tokens"),
	tech("oauth", PriorityNone, "oauth2"),
	tech("rbac", PriorityNone, "role based access control", "role-based access control", "role based access", "role-based access"),
	tech("authentication", PriorityNone),
	tech("authorization", PriorityNone),
	tech("swagger", PriorityNone, "openapi"),
	tech("postman", PriorityNone),
	tech("mysql", PriorityNone),
	tech("redis", PriorityNone),
	tech("elasticsearch", PriorityNone),
	tech("kafka", PriorityNone),
	tech("database", PriorityNone),
	tech("stored procedures", PriorityNone),
	tech("orm", PriorityNone),
	tech("sqlalchemy", PriorityNone),
	tech("github", PriorityNone),
	tech("github actions", PriorityNone),
	tech("jenkins", PriorityNone),
	tech("terraform", PriorityNone),
	tech("gcp", PriorityNone, "google cloud"),
	tech("linux", PriorityNone),
	tech("iis", PriorityNone),
	tech("unit testing", PriorityNone, "unit tests"),
	tech("integration testing", PriorityNone, "integration tests"),
	tech("xunit", PriorityNone),
	tech("nunit", PriorityNone),
	tech("moq", PriorityNone),
	tech("jest", PriorityNone),
	tech("cypress", PriorityNone),
	tech("selenium", PriorityNone),
	tech("visual studio", PriorityNone),
	tech("vs code", PriorityNone, "vscode", "visual studio code"),
	tech("machine learning", PriorityNone, "ml"),
	tech("ai", PriorityNone, "artificial intelligence"),
	tech("llm", PriorityNone, "large language models"),
	tech("tensorflow", PriorityNone),
	tech("pytorch", PriorityNone),
	tech("pandas", PriorityNone),
	tech("numpy", PriorityNone),
	tech("opencv", PriorityNone),
	tech("blockchain", PriorityNone),

	soft("communication", "communication skills"),
	soft("collaboration", "collaborative"),
	soft("leadership", "team leadership"),
	soft("teamwork", "team work", "team player"),
	soft("problem solving", "problem-solving"),
	soft("critical thinking"),
	soft("analytical thinking", "analytical"),
	soft("project management"),
	soft("time management"),
	soft("adaptability", "adaptable"),
	soft("innovation", "innovative"),
	soft("creativity", "creative"),
	soft("attention to detail", "detail-oriented", "detail oriented"),
	soft("self-motivated", "self motivated"),
	soft("multitasking", "multi-tasking"),
	soft("mentoring", "coaching"),
	soft("training"),
	soft("presentation", "presentations"),
	soft("negotiation"),
	soft("decision making", "decision-making"),
	soft("conflict resolution"),
	soft("research"),
	soft("planning"),
	soft("coordination"),
	soft("writing", "technical writing"),
	soft("debugging"),
	soft("troubleshooting"),

	industry("agile"),
	industry("scrum"),
	industry("devops"),
	industry("frontend", "front-end", "front end"),
	industry("backend", "back-end", "back end"),
	industry("full stack", "full-stack", "fullstack"),
	industry("cross-platform", "cross platform"),
	industry("scalable", "scalability"),
	industry("secure", "security"),
	industry("responsive"),
	industry("performance"),
	industry("maintainable", "maintainability"),
	industry("extensible", "extensibility"),
	industry("architecture"),
	industry("framework"),
	industry("component"),
	industry("service"),
	industry("technology"),
	industry("integration"),
	industry("deployment"),
	industry("environment"),
	industry("configuration"),
	industry("workflow"),
	industry("automation"),
	industry("testing"),
	industry("quality"),
	industry("production"),
	industry("software"),
	industry("platform"),
	industry("solution"),
	industry("documentation"),
	industry("code review", "code reviews"),
	industry("best practices"),
	industry("design patterns"),
	industry("clean code"),
	industry("cloud"),
}

var builtin = MustNew(defaultEntries)

// Default returns the built-in lexicon. The value is shared and must not be
// modified; use Extend to derive a customized one.
func Default() *Lexicon {
	return builtin
}
