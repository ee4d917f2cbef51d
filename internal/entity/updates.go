package entity

import "strings"

// UserUpdates 用户更新字段
type UserUpdates struct {
	Username     *string
	PasswordHash *string
	IsAdmin      *bool
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u UserUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Username != nil {
		updates["username"] = *u.Username
	}
	if u.PasswordHash != nil {
		updates["password_hash"] = *u.PasswordHash
	}
	if u.IsAdmin != nil {
		updates["is_admin"] = *u.IsAdmin
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u UserUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// TipUpdates 安全提示更新字段
type TipUpdates struct {
	Title   *string
	Content *string
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u TipUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Title != nil {
		updates["title"] = *u.Title
	}
	if u.Content != nil {
		updates["content"] = *u.Content
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u TipUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// UserChanges carries plaintext edits requested by a caller. Nil or empty
// username/password mean "leave unchanged".
type UserChanges struct {
	Username *string
	Password *string
	IsAdmin  *bool
}

// Normalised returns a copy with surrounding whitespace removed from the
// username. Passwords are kept as typed.
func (c UserChanges) Normalised() UserChanges {
	if c.Username != nil {
		name := strings.TrimSpace(*c.Username)
		c.Username = &name
	}
	return c
}

// HasUsername reports whether a non-empty username was supplied.
func (c UserChanges) HasUsername() bool {
	return c.Username != nil && *c.Username != ""
}

// HasPassword reports whether a non-empty password was supplied.
func (c UserChanges) HasPassword() bool {
	return c.Password != nil && *c.Password != ""
}

// IsEmpty reports whether nothing would be changed.
func (c UserChanges) IsEmpty() bool {
	return !c.HasUsername() && !c.HasPassword() && c.IsAdmin == nil
}
