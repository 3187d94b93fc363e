package auth

// Operation names a role-gated action. Handlers never hardcode role lists;
// they name the operation and the single table below decides.
type Operation string

const (
	OpEmployeeRead   Operation = "employee.read"
	OpEmployeeWrite  Operation = "employee.write"
	OpEmployeeDelete Operation = "employee.delete"

	OpProjectRead   Operation = "project.read"
	OpProjectWrite  Operation = "project.write"
	OpProjectDelete Operation = "project.delete"

	OpDeductionRead  Operation = "deduction.read"
	OpDeductionWrite Operation = "deduction.write"

	OpAttendanceRead   Operation = "attendance.read"
	OpAttendanceWrite  Operation = "attendance.write"
	OpAttendanceDelete Operation = "attendance.delete"

	OpPayrollRead   Operation = "payroll.read"
	OpPayrollWrite  Operation = "payroll.write"
	OpPayrollDelete Operation = "payroll.delete"

	OpPayRecordRead  Operation = "payrecord.read"
	OpPayRecordWrite Operation = "payrecord.write"

	OpUserManage Operation = "user.manage"
)

// policy maps each operation to the roles allowed to perform it.
// super_admin is a strict superset of admin: deletes and account management
// are super_admin only, everything else is open to both.
var policy = map[Operation][]string{
	OpEmployeeRead:   {RoleAdmin, RoleSuperAdmin},
	OpEmployeeWrite:  {RoleAdmin, RoleSuperAdmin},
	OpEmployeeDelete: {RoleSuperAdmin},

	OpProjectRead:   {RoleAdmin, RoleSuperAdmin},
	OpProjectWrite:  {RoleAdmin, RoleSuperAdmin},
	OpProjectDelete: {RoleSuperAdmin},

	OpDeductionRead:  {RoleAdmin, RoleSuperAdmin},
	OpDeductionWrite: {RoleAdmin, RoleSuperAdmin},

	OpAttendanceRead:   {RoleAdmin, RoleSuperAdmin},
	OpAttendanceWrite:  {RoleAdmin, RoleSuperAdmin},
	OpAttendanceDelete: {RoleSuperAdmin},

	OpPayrollRead:   {RoleAdmin, RoleSuperAdmin},
	OpPayrollWrite:  {RoleAdmin, RoleSuperAdmin},
	OpPayrollDelete: {RoleSuperAdmin},

	OpPayRecordRead:  {RoleAdmin, RoleSuperAdmin},
	OpPayRecordWrite: {RoleAdmin, RoleSuperAdmin},

	OpUserManage: {RoleSuperAdmin},
}

// AllowedRoles returns the roles permitted for op. Unknown operations allow
// nobody.
func AllowedRoles(op Operation) []string {
	return policy[op]
}

func RoleAllowed(role string, op Operation) bool {
	for _, allowed := range policy[op] {
		if role == allowed {
			return true
		}
	}
	return false
}
