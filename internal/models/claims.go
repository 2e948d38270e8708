package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	PermissionBankRead      = "bank:read"
	PermissionBankWrite     = "bank:write"
	PermissionTransferRead  = "transfer:read"
	PermissionTransferWrite = "transfer:write"
)

type OperatorClaims struct {
	jwt.RegisteredClaims
	OperatorID   uint     `json:"operator_id"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	Permissions  []string `json:"permissions"`
	TokenVersion int      `json:"token_version"`
}

// HasPermission checks if the claims include a specific permission
func (c *OperatorClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case RoleAdmin:
		return []string{
			PermissionBankRead,
			PermissionBankWrite,
			PermissionTransferRead,
			PermissionTransferWrite,
		}
	case RoleOperator:
		return []string{
			PermissionBankRead,
			PermissionTransferRead,
			PermissionTransferWrite,
		}
	default:
		return []string{}
	}
}
