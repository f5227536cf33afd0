package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProfileCommon holds the fields shared by every resolved profile variant.
type ProfileCommon struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile is the resolved view of an authenticated account: a closed union
// over the admin, office and stakeholder variants. Consumers switch on the
// concrete type (or Role()) and must not probe for field overlap beyond
// Common().
type Profile interface {
	Role() Role
	Common() ProfileCommon
}

// AdminProfile is synthesized from server configuration. Administrators have
// no identity at the provider and no profile row; the zero UUID marks the
// configured administrator account.
type AdminProfile struct {
	ProfileCommon
}

func (p *AdminProfile) Role() Role            { return RoleAdmin }
func (p *AdminProfile) Common() ProfileCommon { return p.ProfileCommon }

// OfficeProfile is the office-role record keyed 1:1 by identity id.
type OfficeProfile struct {
	ProfileCommon
	OfficeName string  `json:"office_name"`
	Age        *int    `json:"age,omitempty"`
	Gender     *string `json:"gender,omitempty"`
	Contact    *string `json:"contact,omitempty"`
}

func (p *OfficeProfile) Role() Role            { return RoleOffice }
func (p *OfficeProfile) Common() ProfileCommon { return p.ProfileCommon }

// StakeholderProfile is the stakeholder-role record keyed 1:1 by identity id.
type StakeholderProfile struct {
	ProfileCommon
	Age              *int    `json:"age,omitempty"`
	Community        *string `json:"community,omitempty"`
	Contact          *string `json:"contact,omitempty"`
	PermanentAddress *string `json:"permanent_address,omitempty"`
	CurrentAddress   *string `json:"current_address,omitempty"`
}

func (p *StakeholderProfile) Role() Role            { return RoleStakeholder }
func (p *StakeholderProfile) Common() ProfileCommon { return p.ProfileCommon }

// ProfileUpdate carries the caller-editable profile fields. Role, email and id
// are immutable after provisioning and are deliberately absent.
type ProfileUpdate struct {
	Name             string  `json:"name"`
	Age              *int    `json:"age,omitempty"`
	Contact          *string `json:"contact,omitempty"`
	Community        *string `json:"community,omitempty"`
	PermanentAddress *string `json:"permanent_address,omitempty"`
	CurrentAddress   *string `json:"current_address,omitempty"`
}

// NewAdminProfile builds the configured administrator's profile view.
func NewAdminProfile(name, email string) *AdminProfile {
	now := time.Now().UTC()
	return &AdminProfile{
		ProfileCommon: ProfileCommon{
			ID:        uuid.Nil,
			Name:      name,
			Email:     email,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
