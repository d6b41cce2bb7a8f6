package contact

// Request bodies for the transactional email endpoints. Field names follow
// what the site's forms post.

type bookingEmailRequest struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone,omitempty"`
	CompanyName    string   `json:"companyName,omitempty"`
	AdditionalInfo string   `json:"additionalInfo,omitempty"`
	Services       []string `json:"services"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	Duration       string   `json:"duration"`
	Notes          string   `json:"notes,omitempty"`
}

type contactEmailRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
}

type maintenanceEmailRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Plan  string `json:"plan"`
	// EmailTemplate is accepted for compatibility with the form payload but
	// the rendered template is chosen by the endpoint, not the client.
	EmailTemplate string `json:"emailTemplate,omitempty"`
}
