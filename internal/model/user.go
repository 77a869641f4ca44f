package model

import "time"

// swagger:model User
type User struct {
	BaseModel
	Email        string     `gorm:"column:email;size:100;unique;not null" json:"email"`
	PasswordHash string     `gorm:"column:password_hash;size:100;not null" json:"-"`
	FullName     string     `gorm:"column:full_name;size:100;not null" json:"fullName"`
	RoleID       uint       `gorm:"column:role_id;not null" json:"roleId"`
	Role         *Role      `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Jurisdiction string     `gorm:"column:jurisdiction;size:100" json:"jurisdiction"`
	Zone         string     `gorm:"column:zone;size:100" json:"zone"`
	Region       string     `gorm:"column:region;size:100" json:"region"`
	District     string     `gorm:"column:district;size:100" json:"district"`
	EmployeeID   string     `gorm:"column:employee_id;size:50" json:"employeeId"`
	Phone        string     `gorm:"column:phone;size:20" json:"phone"`
	IsActive     bool       `gorm:"column:is_active;default:true" json:"isActive"`
	LastLogin    *time.Time `gorm:"column:last_login" json:"lastLogin,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// UserUpdate is the partial-update payload for a user. Presence is tracked per
// field: a nil pointer means the field was not supplied.
type UserUpdate struct {
	FullName     *string `json:"fullName"`
	RoleID       *uint   `json:"roleId"`
	Jurisdiction *string `json:"jurisdiction"`
	Zone         *string `json:"zone"`
	Region       *string `json:"region"`
	District     *string `json:"district"`
	EmployeeID   *string `json:"employeeId"`
	Phone        *string `json:"phone"`
	IsActive     *bool   `json:"isActive"`
}

func (u *UserUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if u.FullName != nil {
		changes["full_name"] = *u.FullName
	}
	if u.RoleID != nil {
		changes["role_id"] = *u.RoleID
	}
	if u.Jurisdiction != nil {
		changes["jurisdiction"] = *u.Jurisdiction
	}
	if u.Zone != nil {
		changes["zone"] = *u.Zone
	}
	if u.Region != nil {
		changes["region"] = *u.Region
	}
	if u.District != nil {
		changes["district"] = *u.District
	}
	if u.EmployeeID != nil {
		changes["employee_id"] = *u.EmployeeID
	}
	if u.Phone != nil {
		changes["phone"] = *u.Phone
	}
	if u.IsActive != nil {
		changes["is_active"] = *u.IsActive
	}
	return changes
}
