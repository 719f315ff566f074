package domain

import "time"

// User represents an account holder. PasswordHash and token material never
// leave the domain layer in JSON form.
type User struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Avatar       string `json:"avatar,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Role groups permissions and is assigned to users many-to-many.
type Role struct {
	RoleID      string `json:"role_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Permission is a named capability string gating one operation.
type Permission struct {
	PermissionID string `json:"permission_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
}

// Permission names seeded by the migrations and checked by the handlers.
const (
	AbilityCreateTransaction   = "create_transaction"
	AbilityViewTransaction     = "view_transaction"
	AbilityViewAllTransactions = "view_all_transactions"
	AbilityDeleteTransaction   = "delete_transaction"
	AbilityManageUsers         = "manage_users"
	AbilityViewDashboard       = "view_dashboard"
	AbilityViewAllCategories   = "view_all_categories"
	AbilityViewCategory        = "view_category"
	AbilityCreateCategory      = "create_category"
	AbilityUpdateCategory      = "update_category"
	AbilityDeleteCategory      = "delete_category"
)
