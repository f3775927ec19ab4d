package records

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the placement against its field constraints. Absent fields
// are allowed; present fields must be well-formed.
func (p *Placement) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("placement %q: %w", p.ID, err)
	}
	return nil
}

// Validate checks the opportunity against its field constraints.
func (o *Opportunity) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("opportunity %q: %w", o.ID, err)
	}
	return nil
}
