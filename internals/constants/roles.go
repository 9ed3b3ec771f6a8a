package constants

import (
	"fmt"
	"strings"
)

// Role pengguna back office. Hanya dua nilai yang sah.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// Capability = hak akses yang dicek oleh middleware.
type Capability string

const (
	CapManageMembers Capability = "members:manage"
	CapManageLedger  Capability = "ledger:manage"
	CapDeleteLedger  Capability = "ledger:delete"
	CapManageStock   Capability = "stock:manage"
	CapExportReports Capability = "reports:export"
)

var roleCapabilities = map[Role]map[Capability]struct{}{
	RoleAdmin: {
		CapManageMembers: {},
		CapManageLedger:  {},
		CapManageStock:   {},
		CapExportReports: {},
	},
	RoleSuperAdmin: {
		CapManageMembers: {},
		CapManageLedger:  {},
		CapDeleteLedger:  {},
		CapManageStock:   {},
		CapExportReports: {},
	},
}

// Template pesan error role
const ErrCapabilityRequired = "❌ Akses ditolak: butuh hak %s."

func RoleErrorCapability(c Capability) string {
	return fmt.Sprintf(ErrCapabilityRequired, c)
}

// ParseRole menolak string selain admin / superadmin.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := roleCapabilities[r]; !ok {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

func (r Role) Valid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// Can → apakah role memiliki capability tersebut.
func (r Role) Can(c Capability) bool {
	caps, ok := roleCapabilities[r]
	if !ok {
		return false
	}
	_, ok = caps[c]
	return ok
}

func (r Role) String() string { return string(r) }
