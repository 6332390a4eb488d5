package results

// Confidence is the score behind the recommendation screen.
const Confidence = 78

// Verdict is the recommendation tier.
type Verdict string

const (
	VerdictYes   Verdict = "yes"
	VerdictMaybe Verdict = "maybe"
	VerdictNo    Verdict = "no"
)

// Recommendation is the headline of the recommendation screen.
type Recommendation struct {
	Verdict     Verdict
	Title       string
	Description string
}

// ShowsPlan reports whether the learning path and projects are shown.
func (r Recommendation) ShowsPlan() bool {
	return r.Verdict != VerdictNo
}

// RecommendationFor classifies a confidence score.
func RecommendationFor(score int) Recommendation {
	switch {
	case score >= 80:
		return Recommendation{VerdictYes, "Highly Recommended", "You show strong potential for a successful DevOps career"}
	case score >= 65:
		return Recommendation{VerdictMaybe, "Conditionally Recommended", "You have good foundation but should address key areas first"}
	}
	return Recommendation{VerdictNo, "Not Recommended Currently", "Consider foundational learning before pursuing DevOps"}
}

// Note is a strength or a development area.
type Note struct {
	Title  string
	Detail string
}

var Strengths = []Note{
	{"Strong Learning Motivation", "High scores in growth mindset and curiosity"},
	{"Collaborative Mindset", "Good fit for cross-functional DevOps teams"},
	{"Problem-Solving Approach", "Analytical thinking style suits DevOps challenges"},
}

var DevelopmentAreas = []Note{
	{"Technical Skills Gap", "Need stronger foundation in core DevOps tools"},
	{"Real-World Experience", "Limited exposure to production environments"},
	{"Cloud Knowledge", "Need familiarity with cloud platforms"},
}

// Resource is a study resource. Free resources cost nothing.
type Resource struct {
	Name string
	Free bool
}

// Phase is one stage of the learning path.
type Phase struct {
	Name      string
	Items     []string
	Resources []Resource
}

var LearningPath = []Phase{
	{
		Name: "Foundation (1-2 months)",
		Items: []string{
			"Master Linux command line basics",
			"Learn Git version control fundamentals",
			"Understand networking concepts (TCP/IP, DNS, HTTP)",
			"Basic scripting (Bash/Python)",
		},
		Resources: []Resource{{"Linux Journey", true}, {"Git Handbook", true}, {"Networking Basics Course", false}},
	},
	{
		Name: "Core DevOps (2-3 months)",
		Items: []string{
			"CI/CD pipeline concepts and Jenkins",
			"Docker containerization",
			"Infrastructure as Code (Terraform)",
			"Configuration management (Ansible)",
		},
		Resources: []Resource{{"Docker Getting Started", true}, {"Jenkins Documentation", true}, {"Terraform Learn", true}},
	},
	{
		Name: "Advanced & Specialization (3-4 months)",
		Items: []string{
			"Kubernetes orchestration",
			"Cloud platforms (AWS/Azure/GCP)",
			"Monitoring and logging (Prometheus, ELK)",
			"Security practices (DevSecOps)",
		},
		Resources: []Resource{{"Kubernetes Documentation", true}, {"AWS Training", false}, {"Cloud Native Computing Foundation", true}},
	},
}

// Project is a suggested portfolio project.
type Project struct {
	Title       string
	Level       string
	Description string
	Skills      []string
}

var Projects = []Project{
	{
		Title:       "Personal CI/CD Pipeline",
		Level:       "Beginner",
		Description: "Set up a simple CI/CD pipeline for a personal project using GitHub Actions",
		Skills:      []string{"Git", "GitHub Actions", "Testing", "Deployment"},
	},
	{
		Title:       "Containerized Web Application",
		Level:       "Intermediate",
		Description: "Dockerize a web application and deploy it using docker-compose",
		Skills:      []string{"Docker", "Containerization", "Networking", "Configuration"},
	},
	{
		Title:       "Infrastructure as Code Project",
		Level:       "Advanced",
		Description: "Use Terraform to provision cloud infrastructure and deploy an application",
		Skills:      []string{"Terraform", "Cloud Services", "Infrastructure Management", "Automation"},
	},
}

// Overlap is how much an alternative role shares with DevOps.
type Overlap string

const (
	OverlapHigh   Overlap = "High"
	OverlapMedium Overlap = "Medium"
	OverlapLow    Overlap = "Low"
)

// Alternative is a related role that can lead to DevOps.
type Alternative struct {
	Role        string
	Description string
	Overlap     Overlap
	Reasoning   string
}

var Alternatives = []Alternative{
	{"System Administrator", "Manage and maintain computer systems and networks", OverlapHigh, "Strong foundation for transitioning to DevOps later"},
	{"Cloud Support Engineer", "Provide technical support for cloud-based solutions", OverlapMedium, "Good entry point to cloud technologies"},
	{"Software Developer", "Focus on application development with some DevOps practices", OverlapMedium, "Strong coding skills can complement DevOps knowledge"},
	{"QA Engineer", "Specialize in testing automation and quality assurance", OverlapLow, "Can evolve into DevOps with automation expertise"},
}
