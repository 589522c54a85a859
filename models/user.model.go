package models

import "time"

// User is the identity row owned by the auth subsystem. The course handlers
// only ever read it to answer "does this user exist".
type User struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Email         string    `json:"email" gorm:"unique;not null"`
	EmailVerified bool      `json:"emailVerified" gorm:"not null;default:false"`
	Image         string    `json:"image"`
	CreatedAt     time.Time `json:"createdAt" gorm:"autoCreateTime;not null"`
	UpdatedAt     time.Time `json:"updatedAt" gorm:"autoUpdateTime;not null"`

	Sessions []Session `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Accounts []Account `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// Session is a server-side login session
type Session struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null"`
	Token     string    `json:"token" gorm:"unique;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime;not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime;not null"`
	IPAddress string    `json:"ipAddress"`
	UserAgent string    `json:"userAgent"`
	UserID    string    `json:"userId" gorm:"index;not null"`
}

// Account links a user to a credential or social provider
type Account struct {
	ID                    string     `json:"id" gorm:"primaryKey"`
	AccountID             string     `json:"accountId" gorm:"not null"`
	ProviderID            string     `json:"providerId" gorm:"not null"`
	UserID                string     `json:"userId" gorm:"index;not null"`
	AccessToken           string     `json:"-"`
	RefreshToken          string     `json:"-"`
	IDToken               string     `json:"-"`
	AccessTokenExpiresAt  *time.Time `json:"-"`
	RefreshTokenExpiresAt *time.Time `json:"-"`
	Scope                 string     `json:"scope"`
	Password              string     `json:"-"` // bcrypt hash for credential accounts
	CreatedAt             time.Time  `json:"createdAt" gorm:"autoCreateTime;not null"`
	UpdatedAt             time.Time  `json:"updatedAt" gorm:"autoUpdateTime;not null"`
}

// Verification stores pending email verification tokens
type Verification struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Identifier string    `json:"identifier" gorm:"not null"`
	Value      string    `json:"value" gorm:"not null"`
	ExpiresAt  time.Time `json:"expiresAt" gorm:"not null"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
