package preference

import "github.com/vbasilioo/workly-web/internal/shared/apperror"

type UpdatePreferenceRequest struct {
	SidebarCollapsed *bool `json:"sidebarCollapsed" binding:"required"`
}

func (r UpdatePreferenceRequest) Validate() error {
	return apperror.Validate(r)
}
