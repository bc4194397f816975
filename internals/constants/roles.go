package constants

// User types carried in the JWT "userType" claim.
const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
	RoleHod     = "hod"
)

var AllRoles = []string{
	RoleStudent,
	RoleFaculty,
	RoleHod,
}
