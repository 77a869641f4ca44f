package model

// SystemSetting is a typed key/value pair grouped by category. The value is an
// opaque string; ValueType only declares how a frontend should render and
// validate it.
//
// swagger:model SystemSetting
type SystemSetting struct {
	BaseModel
	Category      string     `gorm:"column:category;size:50;not null;index" json:"category"`
	SettingKey    string     `gorm:"column:setting_key;size:100;not null;uniqueIndex" json:"settingKey"`
	SettingValue  string     `gorm:"column:setting_value;type:text" json:"settingValue"`
	Description   string     `gorm:"column:description;size:255" json:"description"`
	ValueType     string     `gorm:"column:value_type;size:20;default:'string'" json:"valueType"`
	IsEditable    bool       `gorm:"column:is_editable;default:true" json:"isEditable"`
	AllowedValues StringList `gorm:"column:allowed_values;type:text" json:"allowedValues,omitempty"`
	UpdatedBy     string     `gorm:"column:updated_by;size:100" json:"updatedBy"`
}

func (SystemSetting) TableName() string {
	return "system_settings"
}
