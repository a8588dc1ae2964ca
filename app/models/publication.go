package models

import "time"

// Validate checks if the publication meets all validation requirements
func (p *Publication) Validate() error {
	if err := validate.Struct(p); err != nil {
		return validationError("publication", err)
	}
	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Publication) BeforeCreate() {
	if p.Images == nil {
		p.Images = []string{}
	}
	stamp(&p.CreatedAt, &p.UpdatedAt)
}

// Touch marks the publication as modified now.
func (p *Publication) Touch() {
	if p.Images == nil {
		p.Images = []string{}
	}
	p.UpdatedAt = time.Now().UTC()
}
