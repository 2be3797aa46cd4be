package usecase

type DemoCredentials struct {
	AdminEmail    string `json:"admin_email"`
	AdminPassword string `json:"admin_password"`
}

type DemoInfo struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Church      string          `json:"church"`
	Location    string          `json:"location"`
	Description string          `json:"description"`
	Features    []string        `json:"features"`
	Credentials DemoCredentials `json:"credentials"`
}

var demoFeatures = []string{
	"Convert Management",
	"Health Scoring",
	"Alert System",
	"Voice Agent with AI Calling",
	"Call Scripts",
	"Dashboard & Analytics",
	"Follow-up Tracking",
	"Workflow Automation",
	"House Fellowship Management",
}

// NewDemoInfo describes the public demo. The credentials are the seeded admin's and
// are published on purpose so visitors can log in.
func NewDemoInfo(input SeedDemoInput) DemoInfo {
	return DemoInfo{
		Name:        "Evangelism CRM Demo",
		Version:     "2.0.0",
		Church:      input.ChurchName,
		Location:    "Lagos, Nigeria",
		Description: "Demo with realistic Nigerian church data and a simulated voice agent",
		Features:    demoFeatures,
		Credentials: DemoCredentials{
			AdminEmail:    input.AdminEmail,
			AdminPassword: input.AdminPassword,
		},
	}
}
