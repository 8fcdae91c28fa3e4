// Package catalog defines the fixed set of tracked skills and the textual
// matcher that extracts claimed skills from resume text.
package catalog

// Skill is one tracked catalog entry. Terms holds the lower-cased strings
// searched for in resume text: the skill name plus registered synonyms.
// Names that would over-match as bare substrings (e.g. "Go") register
// safer synonym forms instead.
type Skill struct {
	Name  string
	Terms []string
}

// skills is the catalog in presentation order. Scan breakdowns follow
// this order.
var skills = []Skill{
	// Languages
	{Name: "JavaScript", Terms: []string{"javascript", "es6", "ecmascript"}},
	{Name: "TypeScript", Terms: []string{"typescript"}},
	{Name: "Python", Terms: []string{"python"}},
	{Name: "Java", Terms: []string{"java"}},
	{Name: "Go", Terms: []string{"golang", "go lang"}},
	{Name: "Ruby", Terms: []string{"ruby"}},
	{Name: "PHP", Terms: []string{"php"}},
	{Name: "C++", Terms: []string{"c++", "cpp"}},
	{Name: "C#", Terms: []string{"c#", "csharp", ".net"}},
	{Name: "Rust", Terms: []string{"rust"}},
	{Name: "Swift", Terms: []string{"swift"}},
	{Name: "Kotlin", Terms: []string{"kotlin"}},
	{Name: "HTML/CSS", Terms: []string{"html", "css", "sass", "scss"}},
	{Name: "SQL", Terms: []string{"sql"}},

	// Frontend frameworks
	{Name: "React", Terms: []string{"react", "reactjs"}},
	{Name: "Next.js", Terms: []string{"next.js", "nextjs"}},
	{Name: "Vue", Terms: []string{"vue", "vuejs"}},
	{Name: "Angular", Terms: []string{"angular"}},
	{Name: "Tailwind CSS", Terms: []string{"tailwind"}},

	// Backend frameworks and runtimes
	{Name: "Node.js", Terms: []string{"node.js", "nodejs", "node js"}},
	{Name: "Express", Terms: []string{"express"}},
	{Name: "Django", Terms: []string{"django"}},
	{Name: "Flask", Terms: []string{"flask"}},
	{Name: "FastAPI", Terms: []string{"fastapi", "fast api"}},
	{Name: "Spring Boot", Terms: []string{"spring boot", "spring-boot", "springboot"}},

	// API styles
	{Name: "REST API", Terms: []string{"rest api", "restful", "rest apis"}},
	{Name: "GraphQL", Terms: []string{"graphql"}},

	// Databases and caches
	{Name: "PostgreSQL", Terms: []string{"postgresql", "postgres"}},
	{Name: "MySQL", Terms: []string{"mysql"}},
	{Name: "MongoDB", Terms: []string{"mongodb", "mongo"}},
	{Name: "Redis", Terms: []string{"redis"}},

	// Infrastructure and tooling
	{Name: "Docker", Terms: []string{"docker", "dockerfile", "containerization"}},
	{Name: "Kubernetes", Terms: []string{"kubernetes", "k8s"}},
	{Name: "AWS", Terms: []string{"aws", "amazon web services"}},
	{Name: "CI/CD", Terms: []string{"ci/cd", "cicd", "continuous integration", "github actions"}},
}

// All returns the catalog in presentation order.
func All() []Skill {
	return skills
}

// Names returns every catalog skill name in presentation order.
func Names() []string {
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}
	return names
}
