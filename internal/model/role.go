package model

// Role groups users by authority. Lower level means more authority; level 1 is
// the platform administrator.
//
// swagger:model Role
type Role struct {
	BaseModel
	Name        string     `gorm:"column:name;size:100;not null" json:"name"`
	Description string     `gorm:"column:description;size:255" json:"description"`
	Level       int        `gorm:"column:level;not null" json:"level"`
	IsActive    bool       `gorm:"column:is_active;default:true" json:"isActive"`
	MenuAccess  StringList `gorm:"column:menu_access;type:text" json:"menuAccess"`
}

func (Role) TableName() string {
	return "roles"
}

// RoleUpdate is the partial-update payload for a role. Level is deliberately
// absent: authority level is assigned at creation and never mutable through the
// update path. Nil pointer means "field not supplied", so setting IsActive to
// false is distinguishable from leaving it alone.
type RoleUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// Changes builds the column map handed to the backend, keyed by external
// snake_case names. Only supplied fields appear.
func (u *RoleUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if u.Name != nil {
		changes["name"] = *u.Name
	}
	if u.Description != nil {
		changes["description"] = *u.Description
	}
	if u.IsActive != nil {
		changes["is_active"] = *u.IsActive
	}
	return changes
}
