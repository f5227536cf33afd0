package domain

// ProvisionInput carries the fields for a new office or stakeholder account.
// Kind selects the saga variant; the remaining fields are role-specific and
// validated by the provisioning coordinator.
type ProvisionInput struct {
	Kind     Role   `json:"kind" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`

	// Office accounts
	OfficeName string  `json:"office_name,omitempty"`
	Gender     *string `json:"gender,omitempty"`

	// Stakeholder accounts
	Community        *string `json:"community,omitempty"`
	PermanentAddress *string `json:"permanent_address,omitempty"`
	CurrentAddress   *string `json:"current_address,omitempty"`

	// Shared optional fields
	Age     *int    `json:"age,omitempty"`
	Contact *string `json:"contact,omitempty"`
}

// OfficeProfileRow builds the profile row for an office provisioning input.
func (in ProvisionInput) OfficeProfileRow(common ProfileCommon) *OfficeProfile {
	return &OfficeProfile{
		ProfileCommon: common,
		OfficeName:    in.OfficeName,
		Age:           in.Age,
		Gender:        in.Gender,
		Contact:       in.Contact,
	}
}

// StakeholderProfileRow builds the profile row for a stakeholder provisioning
// input.
func (in ProvisionInput) StakeholderProfileRow(common ProfileCommon) *StakeholderProfile {
	return &StakeholderProfile{
		ProfileCommon:    common,
		Age:              in.Age,
		Community:        in.Community,
		Contact:          in.Contact,
		PermanentAddress: in.PermanentAddress,
		CurrentAddress:   in.CurrentAddress,
	}
}
