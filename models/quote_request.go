package models

type ProjectType string

const (
	ProjectTypeResidential ProjectType = "residential"
	ProjectTypeCommercial  ProjectType = "commercial"
	ProjectTypeRenovation  ProjectType = "renovation"
)

var ProjectTypeOptions = []Option{
	{Value: string(ProjectTypeResidential), Label: "Residential Construction"},
	{Value: string(ProjectTypeCommercial), Label: "Commercial Construction"},
	{Value: string(ProjectTypeRenovation), Label: "Renovation & Remodeling"},
}

// QuoteRequest is a free-quote lead from the /quote page.
type QuoteRequest struct {
	FullName    string      `json:"full_name" bson:"full_name"`
	Email       string      `json:"email" bson:"email"`
	Phone       string      `json:"phone" bson:"phone"`
	ProjectType ProjectType `json:"project_type" bson:"project_type"`

	Location *string `json:"location" bson:"location"`
	Budget   *string `json:"budget" bson:"budget"`
	Message  *string `json:"message" bson:"message"`
}

func (q QuoteRequest) Table() string { return TableQuotes }

func (q QuoteRequest) Row() Row {
	return Row{
		"full_name":    q.FullName,
		"email":        q.Email,
		"phone":        q.Phone,
		"project_type": string(q.ProjectType),
		"location":     nullable(q.Location),
		"budget":       nullable(q.Budget),
		"message":      nullable(q.Message),
	}
}
