package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		value   string
		want    Role
		wantErr bool
	}{
		{value: "admin", want: RoleAdmin},
		{value: "office", want: RoleOffice},
		{value: "stakeholder", want: RoleStakeholder},
		{value: "", wantErr: true},
		{value: "Office", wantErr: true},
		{value: "superuser", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			role, err := ParseRole(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, role)
		})
	}
}

func TestRoleProvisionable(t *testing.T) {
	assert.False(t, RoleAdmin.Provisionable())
	assert.True(t, RoleOffice.Provisionable())
	assert.True(t, RoleStakeholder.Provisionable())
	assert.False(t, Role("superuser").Provisionable())
}

func TestLandingPath(t *testing.T) {
	assert.Equal(t, "/admin/dashboard", RoleAdmin.LandingPath())
	assert.Equal(t, "/office/dashboard", RoleOffice.LandingPath())
	assert.Equal(t, "/stakeholder/dashboard", RoleStakeholder.LandingPath())
	assert.Equal(t, "/auth/login", Role("").LandingPath())
}
