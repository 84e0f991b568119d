package dto

import "github.com/kgnconstruction/kgnbackend/forms"

// Presence and enum checks are left to forms.Validate so every missing field
// is reported at once; binding tags here would stop at the first.
type QuoteRequestDTO struct {
	FullName    string `json:"fullName" form:"fullName"`
	Email       string `json:"email" form:"email"`
	Phone       string `json:"phone" form:"phone"`
	ProjectType string `json:"projectType" form:"projectType"`
	Location    string `json:"location" form:"location"`
	Budget      string `json:"budget" form:"budget"`
	Message     string `json:"message" form:"message"`
}

func (d QuoteRequestDTO) Values() forms.Values {
	return forms.Values{
		"fullName":    d.FullName,
		"email":       d.Email,
		"phone":       d.Phone,
		"projectType": d.ProjectType,
		"location":    d.Location,
		"budget":      d.Budget,
		"message":     d.Message,
	}
}
