package setting

import (
	"regexp"

	settingerrors "github.com/vbasilioo/workly-web/internal/setting/errors"
	"github.com/vbasilioo/workly-web/internal/shared/apperror"
)

var keyPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// FormValue is the raw input of the settings form, typed by Kind.
type FormValue struct {
	Kind ValueKind `json:"kind" binding:"required,oneof=string number boolean array object"`
	Raw  string    `json:"raw"`
}

type CreateSettingRequest struct {
	Key         string     `json:"key" yaml:"key" binding:"required,max=100"`
	Value       any        `json:"value" yaml:"value"`
	Group       string     `json:"group" yaml:"group" binding:"required,max=50"`
	Description string     `json:"description" yaml:"description" binding:"omitempty,max=255"`
	IsPublic    bool       `json:"isPublic" yaml:"isPublic"`
	Form        *FormValue `json:"form,omitempty" yaml:"-"`
}

// ApplyForm replaces Value with the parsed form input, if any.
func (r *CreateSettingRequest) ApplyForm() error {
	if r.Form == nil {
		return nil
	}
	v, err := ParseValue(r.Form.Kind, r.Form.Raw)
	if err != nil {
		return err
	}
	r.Value, r.Form = v, nil
	return nil
}

func (r CreateSettingRequest) Validate() error {
	if err := apperror.Validate(r); err != nil {
		return err
	}
	if !keyPattern.MatchString(r.Key) {
		return settingerrors.ErrInvalidKey
	}
	if r.Value == nil {
		return settingerrors.ErrValueRequired
	}
	return nil
}

// UpdateSettingRequest may repeat the current key; any other key is rejected.
type UpdateSettingRequest struct {
	Key         *string    `json:"key,omitempty"`
	Value       any        `json:"value,omitempty"`
	Group       *string    `json:"group,omitempty" binding:"omitempty,min=1,max=50"`
	Description *string    `json:"description,omitempty" binding:"omitempty,max=255"`
	IsPublic    *bool      `json:"isPublic,omitempty"`
	Form        *FormValue `json:"form,omitempty"`
}

func (r *UpdateSettingRequest) ApplyForm() error {
	if r.Form == nil {
		return nil
	}
	v, err := ParseValue(r.Form.Kind, r.Form.Raw)
	if err != nil {
		return err
	}
	r.Value, r.Form = v, nil
	return nil
}

func (r UpdateSettingRequest) Validate() error {
	return apperror.Validate(r)
}

// updateBody is what the API receives on update: the key never travels.
type updateBody struct {
	Value       any     `json:"value,omitempty"`
	Group       *string `json:"group,omitempty"`
	Description *string `json:"description,omitempty"`
	IsPublic    *bool   `json:"isPublic,omitempty"`
}

func (r UpdateSettingRequest) body() updateBody {
	return updateBody{
		Value:       r.Value,
		Group:       r.Group,
		Description: r.Description,
		IsPublic:    r.IsPublic,
	}
}
