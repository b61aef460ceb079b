package rbac

type EnforceRequest struct {
	Role     string `json:"role"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionsResponse struct {
	Role        string              `json:"role"`
	Permissions map[string][]string `json:"permissions"`
}

type policyFile struct {
	Roles map[string]rolePolicy `yaml:"roles"`
}

type rolePolicy struct {
	Inherits    []string     `yaml:"inherits"`
	Permissions []permission `yaml:"permissions"`
}

type permission struct {
	Resource string   `yaml:"resource"`
	Actions  []string `yaml:"actions"`
}
