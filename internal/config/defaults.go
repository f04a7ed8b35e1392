package config

// Default returns the built-in policy: the weights, tables, and thresholds
// the engine ships with. A config file overrides individual fields.
func Default() *Config {
	return &Config{
		Sections: SectionWeights{
			BasicInfo:  0.20,
			About:      0.25,
			Experience: 0.25,
			Skills:     0.15,
			Education:  0.15,
		},
		Match: MatchWeights{
			Skills:     0.40,
			Experience: 0.30,
			Keywords:   0.20,
			Education:  0.10,
		},
		Quality: QualityThresholds{
			Fair:      1,
			Good:      3,
			Excellent: 6,
		},

		ActionVerbs: []string{
			"led", "managed", "developed", "created", "implemented", "designed",
			"built", "improved", "increased", "reduced", "optimized", "delivered",
			"achieved", "launched", "established", "coordinated", "executed",
		},

		StopWords: []string{
			"the", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with",
			"by", "from", "up", "about", "into", "through", "during", "before",
			"after", "above", "below", "between", "among", "within", "without",
			"under", "over", "is", "are", "was", "were", "be", "been", "being",
			"have", "has", "had", "do", "does", "did", "will", "would", "could",
			"should", "may", "might", "must", "can", "this", "that", "these",
			"those", "you", "your", "our", "their", "they", "them", "his", "her",
			"its", "we", "who", "what", "when", "where", "how", "all", "each",
			"more", "most", "other", "some", "such", "than", "too", "very",
			"looking", "seeking", "required", "preferred", "plus", "strong",
			"ability", "experience", "years", "work", "team", "role", "candidate",
		},

		Synonyms: map[string][]string{
			"javascript":       {"js", "ecmascript", "node.js", "nodejs"},
			"typescript":       {"ts"},
			"python":           {"py", "django", "flask", "fastapi"},
			"go":               {"golang"},
			"react":            {"reactjs", "react.js"},
			"angular":          {"angularjs", "angular.js"},
			"kubernetes":       {"k8s"},
			"machine learning": {"ml", "artificial intelligence", "ai"},
			"database":         {"db", "sql", "mysql", "postgresql", "mongodb"},
			"leadership":       {"team leadership", "people management"},
			"amazon web services": {"aws"},
		},

		Categories: map[string][]string{
			"technical": {
				"python", "javascript", "typescript", "java", "go", "rust", "c++",
				"react", "angular", "vue", "node.js", "sql", "nosql", "aws", "gcp",
				"azure", "docker", "kubernetes", "terraform", "git", "linux",
				"machine learning", "data science", "devops", "api", "backend",
				"frontend", "full stack", "cloud",
			},
			"management": {
				"leadership", "project management", "team management", "agile",
				"scrum", "kanban", "mentoring", "hiring", "roadmap", "stakeholder",
				"program management",
			},
			"marketing": {
				"seo", "sem", "social media", "content marketing", "digital marketing",
				"analytics", "branding", "copywriting", "email marketing",
				"growth",
			},
			"design": {
				"ui/ux", "ui", "ux", "photoshop", "figma", "sketch", "adobe",
				"illustrator", "design thinking", "wireframing", "prototyping",
				"graphic design",
			},
			"business": {
				"sales", "business development", "negotiation", "strategy",
				"finance", "accounting", "operations", "consulting",
				"customer success", "partnerships",
			},
		},

		KnownSkills: []string{
			"python", "javascript", "typescript", "java", "go", "c++", "c#",
			"react", "angular", "vue", "node.js", "sql", "nosql", "aws", "gcp",
			"azure", "docker", "kubernetes", "terraform", "git", "linux",
			"machine learning", "artificial intelligence", "data science",
			"devops", "full stack", "backend", "frontend", "microservices",
			"rest", "graphql", "project management", "agile", "scrum",
			"leadership", "communication",
		},

		MinKeywordLength:       4,
		AboutTargetWords:       80,
		SkillTarget:            10,
		ExperienceTarget:       3,
		DescriptionTargetWords: 25,

		RecencyHorizonYears:    10,
		RecencyFloor:           0.25,
		EducationPartialCredit: 0.5,
	}
}
