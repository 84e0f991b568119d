package dto

import "github.com/kgnconstruction/kgnbackend/forms"

type CustomProjectDTO struct {
	FullName            string `json:"fullName" form:"fullName"`
	Email               string `json:"email" form:"email"`
	Phone               string `json:"phone" form:"phone"`
	ProjectLocation     string `json:"projectLocation" form:"projectLocation"`
	PropertyType        string `json:"propertyType" form:"propertyType"`
	PlotSize            string `json:"plotSize" form:"plotSize"`
	Budget              string `json:"budget" form:"budget"`
	Bedrooms            string `json:"bedrooms" form:"bedrooms"`
	Bathrooms           string `json:"bathrooms" form:"bathrooms"`
	Floors              string `json:"floors" form:"floors"`
	PreferredStyle      string `json:"preferredStyle" form:"preferredStyle"`
	Timeline            string `json:"timeline" form:"timeline"`
	SpecialRequirements string `json:"specialRequirements" form:"specialRequirements"`
	HasPlot             string `json:"hasPlot" form:"hasPlot"`
}

func (d CustomProjectDTO) Values() forms.Values {
	return forms.Values{
		"fullName":            d.FullName,
		"email":               d.Email,
		"phone":               d.Phone,
		"projectLocation":     d.ProjectLocation,
		"propertyType":        d.PropertyType,
		"plotSize":            d.PlotSize,
		"budget":              d.Budget,
		"bedrooms":            d.Bedrooms,
		"bathrooms":           d.Bathrooms,
		"floors":              d.Floors,
		"preferredStyle":      d.PreferredStyle,
		"timeline":            d.Timeline,
		"specialRequirements": d.SpecialRequirements,
		"hasPlot":             d.HasPlot,
	}
}
