package types

// ConsultationForm is the free-consultation request form.
type ConsultationForm struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// AgentApplicationForm is submitted by a user applying to become an agent.
type AgentApplicationForm struct {
	FullName          string `json:"full_name"`
	Phone             string `json:"phone"`
	PassportNumber    string `json:"passport_number"`
	PassportIssuedBy  string `json:"passport_issued_by"`
	PassportIssueDate string `json:"passport_issue_date"`
	Address           string `json:"address"`
}

// AgentApplication is a submitted application as seen by an admin.
type AgentApplication struct {
	ID        ApplicationID `json:"id"`
	Applicant string        `json:"applicant"`
	Status    string        `json:"status"`
	AgentApplicationForm
}

// AdminStats is the dashboard counters payload.
type AdminStats struct {
	TotalUsers    int64 `json:"total_users"`
	TotalAgents   int64 `json:"total_agents"`
	TotalHouses   int64 `json:"total_houses"`
	PendingHouses int64 `json:"pending_houses"`
	TotalPosts    int64 `json:"total_posts"`
}
