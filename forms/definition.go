// Package forms holds the lead-capture pipeline shared by every form on the
// site: field state, validation, the single store write and the outcome shown
// to the visitor.
package forms

import (
	"strings"

	"github.com/samber/lo"

	"github.com/kgnconstruction/kgnbackend/models"
)

type FieldKind string

const (
	KindText     FieldKind = "text"
	KindEmail    FieldKind = "email"
	KindPhone    FieldKind = "tel"
	KindSelect   FieldKind = "select"
	KindTextArea FieldKind = "textarea"
)

// Field describes one input of a form and the column it lands in.
type Field struct {
	Name        string
	Column      string
	Label       string
	Kind        FieldKind
	Required    bool
	Placeholder string
	Options     []models.Option
}

// Definition is everything that differs between two lead forms.
type Definition struct {
	Slug   string
	Title  string
	Table  string
	Fields []Field

	// ReferencePrefix is prepended to the timestamp-derived reference token.
	ReferencePrefix string
	// ConfirmOnSuccess keeps the form in the submitted phase after a write so the
	// visitor sees the reference; when false the form goes straight back to editing.
	ConfirmOnSuccess bool

	Success            Notification
	FailureDescription string

	Build func(Values) models.Record
}

// Field returns the field with the given form name.
func (d *Definition) Field(name string) (Field, bool) {
	return lo.Find(d.Fields, func(f Field) bool { return f.Name == name })
}

// Labels maps field names to their display labels, keeping order.
func (d *Definition) Labels(names []string) []string {
	return lo.Map(names, func(name string, _ int) string {
		if f, ok := d.Field(name); ok {
			return f.Label
		}
		return name
	})
}

var QuoteForm = &Definition{
	Slug:             "quote",
	Title:            "Get Your Free Quote",
	Table:            models.TableQuotes,
	ConfirmOnSuccess: true,
	Fields: []Field{
		{Name: "fullName", Column: "full_name", Label: "Full Name", Kind: KindText, Required: true, Placeholder: "Enter your full name"},
		{Name: "email", Column: "email", Label: "Email Address", Kind: KindEmail, Required: true, Placeholder: "Enter your email"},
		{Name: "phone", Column: "phone", Label: "Phone Number", Kind: KindPhone, Required: true, Placeholder: "+91 XXXXX XXXXX"},
		{Name: "projectType", Column: "project_type", Label: "Project Type", Kind: KindSelect, Required: true, Options: models.ProjectTypeOptions},
		{Name: "location", Column: "location", Label: "Project Location", Kind: KindText, Placeholder: "City, State"},
		{Name: "budget", Column: "budget", Label: "Approximate Budget", Kind: KindText, Placeholder: "e.g., ₹10-15 Lakhs"},
		{Name: "message", Column: "message", Label: "Project Requirements", Kind: KindTextArea, Placeholder: "Please describe your project requirements, timeline, and any specific needs..."},
	},
	Success: Notification{
		Title:       "Quote Request Submitted!",
		Description: "We'll get back to you within 24 hours with a detailed quote.",
	},
	FailureDescription: "There was an error submitting your quote request. Please try again.",
	Build: func(v Values) models.Record {
		return models.QuoteRequest{
			FullName:    Clean(v["fullName"]),
			Email:       strings.TrimSpace(v["email"]),
			Phone:       Clean(v["phone"]),
			ProjectType: models.ProjectType(strings.TrimSpace(v["projectType"])),
			Location:    models.OptionalString(Clean(v["location"])),
			Budget:      models.OptionalString(Clean(v["budget"])),
			Message:     models.OptionalString(Clean(v["message"])),
		}
	},
}

var CustomProjectForm = &Definition{
	Slug:             "custom-project",
	Title:            "Discuss Your Custom Project",
	Table:            models.TableCustomProjects,
	ReferencePrefix:  "CP-",
	ConfirmOnSuccess: true,
	Fields: []Field{
		{Name: "fullName", Column: "full_name", Label: "Full Name", Kind: KindText, Required: true, Placeholder: "Enter your full name"},
		{Name: "email", Column: "email", Label: "Email Address", Kind: KindEmail, Required: true, Placeholder: "Enter your email"},
		{Name: "phone", Column: "phone", Label: "Phone Number", Kind: KindPhone, Required: true, Placeholder: "+91 XXXXX XXXXX"},
		{Name: "projectLocation", Column: "project_location", Label: "Project Location", Kind: KindText, Required: true, Placeholder: "City, Area"},
		{Name: "propertyType", Column: "property_type", Label: "Property Type", Kind: KindSelect, Options: models.PropertyTypeOptions},
		{Name: "hasPlot", Column: "has_plot", Label: "Do you have a plot?", Kind: KindSelect, Options: models.PlotStatusOptions},
		{Name: "plotSize", Column: "plot_size", Label: "Plot Size", Kind: KindText, Placeholder: "e.g., 30x40 ft"},
		{Name: "budget", Column: "budget", Label: "Approximate Budget", Kind: KindText, Placeholder: "e.g., ₹50-75 Lakhs"},
		{Name: "bedrooms", Column: "bedrooms", Label: "Bedrooms", Kind: KindSelect, Options: models.BedroomOptions},
		{Name: "bathrooms", Column: "bathrooms", Label: "Bathrooms", Kind: KindSelect, Options: models.BathroomOptions},
		{Name: "floors", Column: "floors", Label: "Number of Floors", Kind: KindSelect, Options: models.FloorOptions},
		{Name: "preferredStyle", Column: "preferred_style", Label: "Preferred Style", Kind: KindSelect, Options: models.StyleOptions},
		{Name: "timeline", Column: "timeline", Label: "Timeline", Kind: KindSelect, Options: models.TimelineOptions},
		{Name: "specialRequirements", Column: "special_requirements", Label: "Special Requirements", Kind: KindTextArea, Placeholder: "Tell us about any special features, rooms, or requirements..."},
	},
	Success: Notification{
		Title:       "Project Discussion Request Submitted!",
		Description: "We'll contact you within 24 hours to discuss your custom project.",
	},
	FailureDescription: "There was an error submitting your project details. Please try again.",
	Build: func(v Values) models.Record {
		return models.CustomProjectRequest{
			FullName:            Clean(v["fullName"]),
			Email:               strings.TrimSpace(v["email"]),
			Phone:               Clean(v["phone"]),
			ProjectLocation:     Clean(v["projectLocation"]),
			PropertyType:        models.OptionalEnum[models.PropertyType](v["propertyType"]),
			PlotSize:            models.OptionalString(Clean(v["plotSize"])),
			Budget:              models.OptionalString(Clean(v["budget"])),
			Bedrooms:            models.OptionalEnum[models.RoomCount](v["bedrooms"]),
			Bathrooms:           models.OptionalEnum[models.RoomCount](v["bathrooms"]),
			Floors:              models.OptionalEnum[models.FloorCount](v["floors"]),
			PreferredStyle:      models.OptionalEnum[models.ArchitecturalStyle](v["preferredStyle"]),
			Timeline:            models.OptionalEnum[models.Timeline](v["timeline"]),
			SpecialRequirements: models.OptionalString(Clean(v["specialRequirements"])),
			HasPlot:             models.OptionalEnum[models.PlotStatus](v["hasPlot"]),
		}
	},
}

var ContactForm = &Definition{
	Slug:            "contact",
	Title:           "Get In Touch",
	Table:           models.TableContactMessages,
	ReferencePrefix: "CM-",
	Fields: []Field{
		{Name: "name", Column: "name", Label: "Full Name", Kind: KindText, Required: true, Placeholder: "Your full name"},
		{Name: "email", Column: "email", Label: "Email Address", Kind: KindEmail, Required: true, Placeholder: "your.email@example.com"},
		{Name: "phone", Column: "phone", Label: "Phone Number", Kind: KindPhone, Required: true, Placeholder: "+91 XXXXX XXXXX"},
		{Name: "subject", Column: "subject", Label: "Subject", Kind: KindText, Placeholder: "What's this about?"},
		{Name: "message", Column: "message", Label: "Message", Kind: KindTextArea, Required: true, Placeholder: "Tell us about your project..."},
	},
	Success: Notification{
		Title:       "Message Sent Successfully!",
		Description: "Thank you for contacting us. We'll get back to you within 24 hours.",
	},
	FailureDescription: "There was an error sending your message. Please try again.",
	Build: func(v Values) models.Record {
		return models.ContactMessage{
			Name:    Clean(v["name"]),
			Email:   strings.TrimSpace(v["email"]),
			Phone:   Clean(v["phone"]),
			Subject: models.OptionalString(Clean(v["subject"])),
			Message: Clean(v["message"]),
		}
	},
}

// Definitions lists every lead form served by the site.
func Definitions() []*Definition {
	return []*Definition{QuoteForm, CustomProjectForm, ContactForm}
}

// ByTable finds the definition that writes to table.
func ByTable(table string) (*Definition, bool) {
	return lo.Find(Definitions(), func(d *Definition) bool { return d.Table == table })
}
