package results

// TimeToReady is the preparation estimate shown for every career role.
const TimeToReady = "6-12 months to ready"

// Tier groups a role match percentage.
type Tier int

const (
	TierLow Tier = iota
	TierGood
	TierStrong
)

// MatchTier classifies a role match percentage.
func MatchTier(match int) Tier {
	switch {
	case match >= 75:
		return TierStrong
	case match >= 65:
		return TierGood
	}
	return TierLow
}

// CareerRole is a target role on the guidance screen.
type CareerRole struct {
	Title       string
	Description string
	Salary      string
	Demand      string
	Skills      []string
	Match       int
}

// Tier classifies the role's match.
func (c CareerRole) Tier() Tier {
	return MatchTier(c.Match)
}

var CareerRoles = []CareerRole{
	{
		Title:       "DevOps Engineer",
		Description: "Automate CI/CD pipelines, manage cloud infrastructure",
		Salary:      "$85k - $130k",
		Demand:      "High",
		Skills:      []string{"Docker", "Kubernetes", "Jenkins", "AWS/Azure", "Terraform"},
		Match:       78,
	},
	{
		Title:       "Site Reliability Engineer",
		Description: "Ensure system reliability, uptime, and performance",
		Salary:      "$95k - $150k",
		Demand:      "Very High",
		Skills:      []string{"Monitoring", "Incident Response", "Automation", "Linux", "Python"},
		Match:       65,
	},
	{
		Title:       "Cloud Engineer",
		Description: "Architect and maintain cloud infrastructure solutions",
		Salary:      "$80k - $125k",
		Demand:      "High",
		Skills:      []string{"AWS/Azure/GCP", "Networking", "Security", "IaC", "Cost Optimization"},
		Match:       72,
	},
}
