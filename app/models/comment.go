package models

import "time"

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	if err := validate.Struct(c); err != nil {
		return validationError("comment", err)
	}
	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (c *Comment) BeforeCreate() {
	stamp(&c.CreatedAt, &c.UpdatedAt)
}

// Touch marks the comment as modified now.
func (c *Comment) Touch() {
	c.UpdatedAt = time.Now().UTC()
}
