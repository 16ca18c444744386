// Package entity 定义领域实体
package entity

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// UserRole 用户角色
type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleArtist    UserRole = "artist"
	UserRoleCollector UserRole = "collector"
)

// UserSettings 用户设置
type UserSettings struct {
	Theme            string `json:"theme,omitempty"`
	Language         string `json:"language,omitempty"`
	NotifyOnComplete bool   `json:"notify_on_complete,omitempty"`
}

// User 用户实体
type User struct {
	ID           string        `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string        `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string        `json:"-" gorm:"type:varchar(255)"`
	Name         string        `json:"name" gorm:"type:varchar(255)"`
	AvatarURL    string        `json:"avatar_url,omitempty" gorm:"type:text"`
	Role         UserRole      `json:"role" gorm:"type:varchar(50);default:'collector'"`
	// InstagramUserID 已连接社交账号的外部标识，连接账号生成策略依赖此字段
	InstagramUserID string        `json:"instagram_user_id,omitempty" gorm:"type:varchar(255)"`
	Settings        *UserSettings `json:"settings,omitempty" gorm:"type:jsonb;serializer:json"`
	LastLoginAt     *time.Time    `json:"last_login_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// NewUser 创建新用户
func NewUser(email, name string, role UserRole) *User {
	now := time.Now()
	return &User{
		Email:     email,
		Name:      name,
		Role:      role,
		Settings:  &UserSettings{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsAdmin 检查用户是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// IsArtist 检查用户是否为创作者
func (u *User) IsArtist() bool {
	return u.Role == UserRoleArtist || u.Role == UserRoleAdmin
}

// HasConnectedAccount 检查用户是否连接了社交账号
func (u *User) HasConnectedAccount() bool {
	return u.InstagramUserID != ""
}

// SetPassword 设置并散列密码
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword 校验密码
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}
