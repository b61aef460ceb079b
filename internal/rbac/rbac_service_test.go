package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService()
	require.NoError(t, err)
	return svc
}

func TestService_Enforce(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name    string
		req     EnforceRequest
		allowed bool
	}{
		{"user reads employees", EnforceRequest{Role: "user", Resource: "employee", Action: "read"}, true},
		{"user restores settings", EnforceRequest{Role: "user", Resource: "setting", Action: "restore"}, true},
		{"user cannot manage system accounts", EnforceRequest{Role: "user", Resource: "user", Action: "read"}, false},
		{"user cannot hard delete accounts", EnforceRequest{Role: "user", Resource: "user", Action: "delete"}, false},
		{"administrator manages accounts", EnforceRequest{Role: "administrator", Resource: "user", Action: "delete"}, true},
		{"administrator inherits user rights", EnforceRequest{Role: "administrator", Resource: "employee", Action: "export"}, true},
		{"deprecated role has nothing", EnforceRequest{Role: "management", Resource: "employee", Action: "read"}, false},
		{"anonymous has nothing", EnforceRequest{Resource: "employee", Action: "read"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := svc.Enforce(tt.req)

			assert.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

func TestService_Permissions(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Permissions("user")

	require.NoError(t, err)
	assert.Equal(t, []string{"read", "update"}, resp.Permissions["preference"])
	assert.NotContains(t, resp.Permissions, "user")

	admin, err := svc.Permissions("administrator")
	require.NoError(t, err)
	assert.Equal(t, []string{"*"}, admin.Permissions["*"])
	assert.Contains(t, admin.Permissions, "employee")
}

func TestNewServiceFromPolicy_InvalidYAML(t *testing.T) {
	_, err := NewServiceFromPolicy([]byte("roles: ["))

	assert.Error(t, err)
}
