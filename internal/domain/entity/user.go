package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role names used across the marketplace portals
const (
	RoleBuyer     = "buyer"
	RoleSeller    = "seller"
	RoleLogistics = "logistics"
	RoleAdmin     = "admin"
)

// User represents a marketplace account: buyer, seller or logistics partner
type User struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FirstName   string         `gorm:"size:255;not null" json:"first_name"`
	LastName    string         `gorm:"size:255;not null" json:"last_name"`
	Email       string         `gorm:"size:255;unique;not null" json:"email"`
	Password    string         `gorm:"size:255" json:"-"`
	Role        string         `gorm:"size:50;not null;default:'buyer'" json:"role"`
	CompanyName *string        `gorm:"size:255" json:"company_name,omitempty"`
	Phone       *string        `gorm:"size:50" json:"phone,omitempty"`
	Address     *string        `gorm:"type:text" json:"address,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Products []Product `gorm:"foreignKey:SellerID" json:"-"`
	Orders   []Order   `gorm:"foreignKey:BuyerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsSeller reports whether the account can list produce
func (u *User) IsSeller() bool {
	return u.Role == RoleSeller || u.Role == RoleAdmin
}

// IsLogistics reports whether the account owns a logistics profile
func (u *User) IsLogistics() bool {
	return u.Role == RoleLogistics || u.Role == RoleAdmin
}
