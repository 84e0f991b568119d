package models

// PortfolioProject is a past or ongoing build shown in the portfolio section.
type PortfolioProject struct {
	Slug        string `yaml:"slug" json:"slug"`
	Title       string `yaml:"title" json:"title"`
	Location    string `yaml:"location" json:"location"`
	Year        string `yaml:"year" json:"year"`
	Area        string `yaml:"area" json:"area"`
	Type        string `yaml:"type" json:"type"`
	Status      string `yaml:"status" json:"status"`
	Image       string `yaml:"image" json:"image"`
	Description string `yaml:"description" json:"description"`
}

// ReadyHouse is a finished house listed for sale.
type ReadyHouse struct {
	Slug        string   `yaml:"slug" json:"slug"`
	Title       string   `yaml:"title" json:"title"`
	Location    string   `yaml:"location" json:"location"`
	Price       string   `yaml:"price" json:"price"`
	Area        string   `yaml:"area" json:"area"`
	Bedrooms    int      `yaml:"bedrooms" json:"bedrooms"`
	Bathrooms   int      `yaml:"bathrooms" json:"bathrooms"`
	Parking     int      `yaml:"parking" json:"parking"`
	Status      string   `yaml:"status" json:"status"`
	Features    []string `yaml:"features" json:"features"`
	Image       string   `yaml:"image" json:"image"`
	Description string   `yaml:"description" json:"description"`
}
