package models

type PropertyType string

const (
	PropertyIndependentHouse PropertyType = "independent-house"
	PropertyVilla            PropertyType = "villa"
	PropertyDuplex           PropertyType = "duplex"
	PropertyApartment        PropertyType = "apartment"
	PropertyCommercial       PropertyType = "commercial"
)

var PropertyTypeOptions = []Option{
	{Value: string(PropertyIndependentHouse), Label: "Independent House"},
	{Value: string(PropertyVilla), Label: "Villa"},
	{Value: string(PropertyDuplex), Label: "Duplex"},
	{Value: string(PropertyApartment), Label: "Apartment"},
	{Value: string(PropertyCommercial), Label: "Commercial Building"},
}

// RoomCount is used for both bedrooms and bathrooms.
type RoomCount string

var BedroomOptions = []Option{
	{Value: "1", Label: "1 BHK"},
	{Value: "2", Label: "2 BHK"},
	{Value: "3", Label: "3 BHK"},
	{Value: "4", Label: "4 BHK"},
	{Value: "5+", Label: "5+ BHK"},
}

var BathroomOptions = []Option{
	{Value: "1", Label: "1"},
	{Value: "2", Label: "2"},
	{Value: "3", Label: "3"},
	{Value: "4", Label: "4"},
	{Value: "5+", Label: "5+"},
}

type FloorCount string

var FloorOptions = []Option{
	{Value: "1", Label: "Ground Floor Only"},
	{Value: "2", Label: "Ground + 1 Floor"},
	{Value: "3", Label: "Ground + 2 Floors"},
	{Value: "4+", Label: "Ground + 3+ Floors"},
}

type ArchitecturalStyle string

const (
	StyleModern        ArchitecturalStyle = "modern"
	StyleTraditional   ArchitecturalStyle = "traditional"
	StyleContemporary  ArchitecturalStyle = "contemporary"
	StyleMinimalist    ArchitecturalStyle = "minimalist"
	StyleColonial      ArchitecturalStyle = "colonial"
	StyleMediterranean ArchitecturalStyle = "mediterranean"
)

var StyleOptions = []Option{
	{Value: string(StyleModern), Label: "Modern"},
	{Value: string(StyleTraditional), Label: "Traditional"},
	{Value: string(StyleContemporary), Label: "Contemporary"},
	{Value: string(StyleMinimalist), Label: "Minimalist"},
	{Value: string(StyleColonial), Label: "Colonial"},
	{Value: string(StyleMediterranean), Label: "Mediterranean"},
}

type Timeline string

var TimelineOptions = []Option{
	{Value: "3-6-months", Label: "3-6 months"},
	{Value: "6-12-months", Label: "6-12 months"},
	{Value: "1-2-years", Label: "1-2 years"},
	{Value: "flexible", Label: "Flexible"},
}

type PlotStatus string

const (
	PlotYes     PlotStatus = "yes"
	PlotNo      PlotStatus = "no"
	PlotLooking PlotStatus = "looking"
)

var PlotStatusOptions = []Option{
	{Value: string(PlotYes), Label: "Yes, I have a plot"},
	{Value: string(PlotNo), Label: "No, need help finding one"},
	{Value: string(PlotLooking), Label: "Currently looking for a plot"},
}

// CustomProjectRequest is a lead from the /custom-project page.
type CustomProjectRequest struct {
	FullName        string `json:"full_name" bson:"full_name"`
	Email           string `json:"email" bson:"email"`
	Phone           string `json:"phone" bson:"phone"`
	ProjectLocation string `json:"project_location" bson:"project_location"`

	PropertyType        *PropertyType       `json:"property_type" bson:"property_type"`
	PlotSize            *string             `json:"plot_size" bson:"plot_size"`
	Budget              *string             `json:"budget" bson:"budget"`
	Bedrooms            *RoomCount          `json:"bedrooms" bson:"bedrooms"`
	Bathrooms           *RoomCount          `json:"bathrooms" bson:"bathrooms"`
	Floors              *FloorCount         `json:"floors" bson:"floors"`
	PreferredStyle      *ArchitecturalStyle `json:"preferred_style" bson:"preferred_style"`
	Timeline            *Timeline           `json:"timeline" bson:"timeline"`
	SpecialRequirements *string             `json:"special_requirements" bson:"special_requirements"`
	HasPlot             *PlotStatus         `json:"has_plot" bson:"has_plot"`
}

func (p CustomProjectRequest) Table() string { return TableCustomProjects }

func (p CustomProjectRequest) Row() Row {
	return Row{
		"full_name":            p.FullName,
		"email":                p.Email,
		"phone":                p.Phone,
		"project_location":     p.ProjectLocation,
		"property_type":        nullable(p.PropertyType),
		"plot_size":            nullable(p.PlotSize),
		"budget":               nullable(p.Budget),
		"bedrooms":             nullable(p.Bedrooms),
		"bathrooms":            nullable(p.Bathrooms),
		"floors":               nullable(p.Floors),
		"preferred_style":      nullable(p.PreferredStyle),
		"timeline":             nullable(p.Timeline),
		"special_requirements": nullable(p.SpecialRequirements),
		"has_plot":             nullable(p.HasPlot),
	}
}

// OptionalEnum is OptionalString for the typed enums above.
func OptionalEnum[T ~string](v string) *T {
	s := OptionalString(v)
	if s == nil {
		return nil
	}
	t := T(*s)
	return &t
}
