package dto

import "github.com/kgnconstruction/kgnbackend/forms"

type ContactMessageDTO struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

func (d ContactMessageDTO) Values() forms.Values {
	return forms.Values{
		"name":    d.Name,
		"email":   d.Email,
		"phone":   d.Phone,
		"subject": d.Subject,
		"message": d.Message,
	}
}
