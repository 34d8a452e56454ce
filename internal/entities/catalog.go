package entities

// LessonOffering is static catalog data shown on the booking page.
type LessonOffering struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	BasePrice     int      `json:"basePrice"`
	DurationLabel string   `json:"durationLabel"`
	Description   string   `json:"description"`
	Features      []string `json:"features,omitempty"`
}

// DurationOption is one of the fixed lesson lengths offered to students.
type DurationOption struct {
	Minutes int    `json:"minutes"`
	Label   string `json:"label"`
	Price   int    `json:"price"`
}
