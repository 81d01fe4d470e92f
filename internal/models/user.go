package models

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
	RoleAdmin   UserRole = "admin"
)

// User is resolved from Casdoor; this service does not persist users.
type User struct {
	ID       string   `json:"id"`
	FullName string   `json:"full_name"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// CanAuthorQuizzes reports whether the user may generate or deactivate quizzes.
func (u *User) CanAuthorQuizzes() bool {
	return u != nil && (u.Role == RoleTeacher || u.Role == RoleAdmin)
}
