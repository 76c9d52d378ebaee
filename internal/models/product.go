package models

const (
	AvailabilityInStock    = "In Stock"
	AvailabilityOutOfStock = "Out of Stock"
)

// Product is one watch listing pulled from a search-results card. A Product
// only exists once name, brand and price all parsed; cards missing any of
// them are skipped during extraction.
type Product struct {
	Name         string `json:"name"`
	Brand        string `json:"brand"`
	Price        int    `json:"price"`
	Availability string `json:"availability"`
}

// ScrapeSummary is the per-run accounting returned by the pipeline.
type ScrapeSummary struct {
	RunID      string `json:"run_id"`
	URL        string `json:"url"`
	Accepted   int    `json:"accepted"`
	Skipped    int    `json:"skipped"`
	OutputPath string `json:"output_path,omitempty"`
}

func (p *Product) Validate() []string {
	var errors []string

	if p.Name == "" {
		errors = append(errors, "Name is required")
	}

	if p.Brand == "" {
		errors = append(errors, "Brand is required")
	}

	if p.Price < 0 {
		errors = append(errors, "Price must not be negative")
	}

	if p.Availability == "" {
		errors = append(errors, "Availability is required")
	}

	return errors
}
