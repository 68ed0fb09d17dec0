package models

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeRoles(t *testing.T) {
	cases := []struct {
		name      string
		requested []string
		want      []string
	}{
		{"empty", nil, []string{RoleUser}},
		{"user only", []string{"USER"}, []string{RoleUser}},
		{"seller requested", []string{"SELLER"}, []string{RoleUser, RoleSeller}},
		{"seller lowercase", []string{"seller"}, []string{RoleUser, RoleSeller}},
		{"unknown ignored", []string{"ADMIN"}, []string{RoleUser}},
		{"mixed", []string{"ADMIN", "seller"}, []string{RoleUser, RoleSeller}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeRoles(tc.requested))
		})
	}
}

func TestHasRole(t *testing.T) {
	u := &User{Roles: pq.StringArray{RoleUser, RoleSeller}}

	assert.True(t, u.HasRole(RoleSeller))
	assert.False(t, u.HasRole("ADMIN"))
}
