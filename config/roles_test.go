package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleOperator))
	assert.True(t, IsValidRole(RoleShiftIncharge))
	assert.True(t, IsValidRole(RoleSupervisor))
	assert.True(t, IsValidRole(RoleManager))
	assert.True(t, IsValidRole(RoleAdmin))
	assert.False(t, IsValidRole("SUPERUSER"))
	assert.False(t, IsValidRole(""))
}

func TestHasRight(t *testing.T) {
	assert.True(t, HasRight(RoleOperator, "getStock"))
	assert.False(t, HasRight(RoleOperator, "createInward"))

	assert.True(t, HasRight(RoleShiftIncharge, "createInward"))
	assert.True(t, HasRight(RoleShiftIncharge, "createOutward"))
	assert.False(t, HasRight(RoleShiftIncharge, "approveInwards"))

	assert.True(t, HasRight(RoleSupervisor, "approveInwards"))
	assert.False(t, HasRight(RoleSupervisor, "manageProducts"))

	assert.True(t, HasRight(RoleManager, "manageProducts"))
	assert.True(t, HasRight(RoleManager, "getReports"))
	assert.False(t, HasRight(RoleManager, "manageUsers"))

	assert.True(t, HasRight(RoleAdmin, "manageUsers"))
	assert.True(t, HasRight(RoleAdmin, "managePlants"))
	assert.True(t, HasRight(RoleAdmin, "approveInwards"))
}

func TestIsAtLeast(t *testing.T) {
	assert.True(t, IsAtLeast(RoleAdmin, RoleOperator))
	assert.True(t, IsAtLeast(RoleSupervisor, RoleSupervisor))
	assert.False(t, IsAtLeast(RoleShiftIncharge, RoleSupervisor))
	assert.False(t, IsAtLeast("UNKNOWN", RoleOperator))
	assert.False(t, IsAtLeast(RoleAdmin, "UNKNOWN"))
}

func TestCanSelfApprove(t *testing.T) {
	assert.False(t, CanSelfApprove(RoleOperator))
	assert.False(t, CanSelfApprove(RoleShiftIncharge))
	assert.True(t, CanSelfApprove(RoleSupervisor))
	assert.True(t, CanSelfApprove(RoleManager))
	assert.True(t, CanSelfApprove(RoleAdmin))
}
