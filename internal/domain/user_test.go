package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasRoleHierarchy(t *testing.T) {
	tests := []struct {
		name     string
		userRole UserRole
		required UserRole
		want     bool
	}{
		{"employee covers employee", RoleEmployee, RoleEmployee, true},
		{"employee lacks fleet-manager", RoleEmployee, RoleFleetManager, false},
		{"employee lacks owner", RoleEmployee, RoleOwner, false},
		{"fleet-manager covers employee", RoleFleetManager, RoleEmployee, true},
		{"fleet-manager covers fleet-manager", RoleFleetManager, RoleFleetManager, true},
		{"fleet-manager lacks owner", RoleFleetManager, RoleOwner, false},
		{"owner covers employee", RoleOwner, RoleEmployee, true},
		{"owner covers fleet-manager", RoleOwner, RoleFleetManager, true},
		{"owner covers owner", RoleOwner, RoleOwner, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &User{Role: string(tt.userRole)}
			assert.Equal(t, tt.want, user.HasRole(string(tt.required)))
		})
	}
}

func TestHasRoleUnknownRequired(t *testing.T) {
	user := &User{Role: string(RoleOwner)}
	assert.False(t, user.HasRole("superadmin"))
}

func TestCreateUserInputValidate(t *testing.T) {
	valid := CreateUserInput{
		Email:    "ana@renta-autos.test",
		Password: "long-enough",
		FullName: "Ana Torres",
		Role:     string(RoleEmployee),
	}
	assert.NoError(t, valid.Validate())

	shortPassword := valid
	shortPassword.Password = "short"
	assert.ErrorIs(t, shortPassword.Validate(), ErrValidation)

	badRole := valid
	badRole.Role = "janitor"
	assert.ErrorIs(t, badRole.Validate(), ErrValidation)
}
