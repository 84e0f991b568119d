package models

// ContactMessage comes from the contact section of the landing page.
type ContactMessage struct {
	Name    string  `json:"name" bson:"name"`
	Email   string  `json:"email" bson:"email"`
	Phone   string  `json:"phone" bson:"phone"`
	Subject *string `json:"subject" bson:"subject"`
	Message string  `json:"message" bson:"message"`
}

func (m ContactMessage) Table() string { return TableContactMessages }

func (m ContactMessage) Row() Row {
	return Row{
		"name":    m.Name,
		"email":   m.Email,
		"phone":   m.Phone,
		"subject": nullable(m.Subject),
		"message": m.Message,
	}
}
