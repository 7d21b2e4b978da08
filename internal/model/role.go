package model

type UserRole string

const (
	Admin      UserRole = "admin"
	Instructor UserRole = "instructor"
	Learner    UserRole = "learner"
)

// DefaultRole is what a session degrades to when its role claim is
// absent or malformed.
const DefaultRole = Learner

var roleLabels = map[UserRole]string{
	Admin:      "Administrator",
	Instructor: "Instructor",
	Learner:    "Learner",
}

var roleDescriptions = map[UserRole]string{
	Admin:      "Full access to user management and every course",
	Instructor: "Creates and manages own courses, lessons and quizzes",
	Learner:    "Enrolls in courses and tracks own progress",
}

var rolePriorities = map[UserRole]int{
	Admin:      3,
	Instructor: 2,
	Learner:    1,
}

func IsValidRole(s string) bool {
	_, ok := rolePriorities[UserRole(s)]
	return ok
}

func RoleLabel(r UserRole) string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return "Unknown Role"
}

func RoleDescription(r UserRole) string {
	if desc, ok := roleDescriptions[r]; ok {
		return desc
	}
	return "Unknown Role"
}

// RolePriority returns 0 for any value outside the enum.
func RolePriority(r UserRole) int {
	return rolePriorities[r]
}

func HasHigherOrEqualRole(a, b UserRole) bool {
	return RolePriority(a) >= RolePriority(b)
}

// RoleAtLeast is the single authorization policy of the API: admin passes
// every check, instructor passes instructor- and learner-level checks,
// learner passes only learner-level checks. Unknown values are denied on
// both sides.
func RoleAtLeast(userRole, required UserRole) bool {
	up, rp := RolePriority(userRole), RolePriority(required)
	if up == 0 || rp == 0 {
		return false
	}
	return up >= rp
}
