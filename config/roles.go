package config

// Role names, dari level terendah sampai tertinggi.
const (
	RoleOperator      = "OPERATOR"
	RoleShiftIncharge = "SHIFT_INCHARGE"
	RoleSupervisor    = "SUPERVISOR"
	RoleManager       = "MANAGER"
	RoleAdmin         = "ADMIN"
)

// roleRank menentukan hirarki role. Role dengan rank lebih tinggi
// otomatis dianggap "di atas" role di bawahnya untuk cek minimum role.
var roleRank = map[string]int{
	RoleOperator:      1,
	RoleShiftIncharge: 2,
	RoleSupervisor:    3,
	RoleManager:       4,
	RoleAdmin:         5,
}

// RoleRights memetakan role ke daftar hak aksesnya.
var RoleRights = map[string][]string{
	RoleOperator: {"getProducts", "getSuppliers", "getStock"},
	RoleShiftIncharge: {
		"getProducts", "getSuppliers", "getStock",
		"createInward", "createOutward", "manageOwnInwards",
	},
	RoleSupervisor: {
		"getProducts", "getSuppliers", "getStock",
		"createInward", "createOutward",
		"approveInwards", "manageSupervisorInwards",
	},
	RoleManager: {
		"getProducts", "getSuppliers", "manageSuppliers", "getStock",
		"createInward", "createOutward", "manageProducts",
		"getReports", "getCategories", "manageCategories",
	},
	RoleAdmin: {
		"getUsers", "manageUsers", "getPlants", "managePlants",
		"getProducts", "manageProducts", "getSuppliers", "manageSuppliers",
		"getStock", "createInward", "createOutward", "approveInwards",
		"getReports", "getCategories", "manageCategories",
	},
}

// IsValidRole memeriksa apakah nama role dikenal.
func IsValidRole(role string) bool {
	_, ok := roleRank[role]
	return ok
}

// HasRight memeriksa apakah role punya hak akses tertentu.
func HasRight(role string, right string) bool {
	for _, r := range RoleRights[role] {
		if r == right {
			return true
		}
	}
	return false
}

// IsAtLeast memeriksa apakah role berada di level minimum atau lebih tinggi.
func IsAtLeast(role string, minimum string) bool {
	rank, ok := roleRank[role]
	minRank, okMin := roleRank[minimum]
	if !ok || !okMin {
		return false
	}
	return rank >= minRank
}

// CanSelfApprove: inward MANUFACTURED dibuat oleh supervisor ke atas
// langsung APPROVED tanpa tahap approval kedua.
func CanSelfApprove(role string) bool {
	return IsAtLeast(role, RoleSupervisor)
}
