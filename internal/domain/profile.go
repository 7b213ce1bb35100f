package domain

import (
	"context"
	"time"
)

// StudentProfile holds the student's contact, academic, and volunteering
// details. One row per user; saved with upsert semantics.
// swagger:model StudentProfile
type StudentProfile struct {
	UserID                   string     `json:"user_id"`
	Phone                    string     `json:"phone"`
	Birthdate                *time.Time `json:"birthdate"`
	Address                  string     `json:"address"`
	City                     string     `json:"city"`
	State                    string     `json:"state"`
	Zipcode                  string     `json:"zipcode"`
	University               string     `json:"university"`
	College                  string     `json:"college"`
	Degree                   string     `json:"degree"`
	Major                    string     `json:"major"`
	GraduationYear           string     `json:"graduation_year"`
	CurrentYear              string     `json:"current_year"`
	Marks                    string     `json:"marks"`
	Bio                      string     `json:"bio"`
	Interests                string     `json:"interests"`
	Skills                   string     `json:"skills"`
	Languages                string     `json:"languages"`
	EventTypes               string     `json:"event_types"`
	Availability             string     `json:"availability"`
	VolunteerExperience      string     `json:"volunteer_experience"`
	EmergencyContactName     string     `json:"emergency_contact_name"`
	EmergencyContactPhone    string     `json:"emergency_contact_phone"`
	EmergencyContactRelation string     `json:"emergency_contact_relation"`
}

// ManagerProfile holds the manager's experience details shown to organizers.
// swagger:model ManagerProfile
type ManagerProfile struct {
	UserID          string `json:"user_id"`
	Phone           string `json:"phone"`
	YearsExperience int    `json:"years_experience"`
	Specializations string `json:"specializations"`
	Availability    string `json:"availability"`
	Bio             string `json:"bio"`
}

// StudentProfileView is a student profile together with the user's name and email.
type StudentProfileView struct {
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Profile *StudentProfile `json:"profile"`
}

// ManagerProfileView is a manager profile together with the user's name and email.
type ManagerProfileView struct {
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Profile *ManagerProfile `json:"profile"`
}

// StudentProfileRepository defines storage operations for student profiles.
// Get returns ErrNotFound when the user has no profile yet.
type StudentProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*StudentProfile, error)
	Upsert(ctx context.Context, profile *StudentProfile) error
}

// ManagerProfileRepository defines storage operations for manager profiles.
// Get returns ErrNotFound when the user has no profile yet.
type ManagerProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*ManagerProfile, error)
	Upsert(ctx context.Context, profile *ManagerProfile) error
}

// ProfileService defines profile reads and upserts for students and managers.
// Reads for a user without a saved profile return an empty profile rather
// than an error so the UI can render a blank form.
type ProfileService interface {
	GetStudentProfile(ctx context.Context, userID string) (*StudentProfileView, error)
	SaveStudentProfile(ctx context.Context, profile *StudentProfile, profileCompleted bool) (*StudentProfile, error)
	GetManagerProfile(ctx context.Context, userID string) (*ManagerProfileView, error)
	SaveManagerProfile(ctx context.Context, profile *ManagerProfile, profileCompleted bool) (*ManagerProfile, error)
}
