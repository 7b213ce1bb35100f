package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventstaffing/internal/domain"
)

type studentProfileRepository struct {
	DB *sql.DB
}

func NewStudentProfileRepository(db *sql.DB) domain.StudentProfileRepository {
	return &studentProfileRepository{
		DB: db,
	}
}

func (r *studentProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.StudentProfile, error) {
	query := `
		SELECT user_id, phone, birthdate, address, city, state, zipcode,
		       university, college, degree, major, graduation_year, current_year,
		       marks, bio, interests, skills, languages, event_types, availability,
		       volunteer_experience, emergency_contact_name, emergency_contact_phone,
		       emergency_contact_relation
		FROM student_profiles
		WHERE user_id = $1
	`
	p := &domain.StudentProfile{}
	var birthdate sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.Phone, &birthdate, &p.Address, &p.City, &p.State, &p.Zipcode,
		&p.University, &p.College, &p.Degree, &p.Major, &p.GraduationYear,
		&p.CurrentYear, &p.Marks, &p.Bio, &p.Interests, &p.Skills, &p.Languages,
		&p.EventTypes, &p.Availability, &p.VolunteerExperience,
		&p.EmergencyContactName, &p.EmergencyContactPhone, &p.EmergencyContactRelation,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if birthdate.Valid {
		p.Birthdate = &birthdate.Time
	}
	return p, nil
}

func (r *studentProfileRepository) Upsert(ctx context.Context, p *domain.StudentProfile) error {
	query := `
		INSERT INTO student_profiles (user_id, phone, birthdate, address, city, state, zipcode,
			university, college, degree, major, graduation_year, current_year,
			marks, bio, interests, skills, languages, event_types, availability,
			volunteer_experience, emergency_contact_name, emergency_contact_phone,
			emergency_contact_relation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		ON CONFLICT (user_id) DO UPDATE SET
			phone = EXCLUDED.phone, birthdate = EXCLUDED.birthdate,
			address = EXCLUDED.address, city = EXCLUDED.city, state = EXCLUDED.state,
			zipcode = EXCLUDED.zipcode, university = EXCLUDED.university,
			college = EXCLUDED.college, degree = EXCLUDED.degree, major = EXCLUDED.major,
			graduation_year = EXCLUDED.graduation_year, current_year = EXCLUDED.current_year,
			marks = EXCLUDED.marks, bio = EXCLUDED.bio, interests = EXCLUDED.interests,
			skills = EXCLUDED.skills, languages = EXCLUDED.languages,
			event_types = EXCLUDED.event_types, availability = EXCLUDED.availability,
			volunteer_experience = EXCLUDED.volunteer_experience,
			emergency_contact_name = EXCLUDED.emergency_contact_name,
			emergency_contact_phone = EXCLUDED.emergency_contact_phone,
			emergency_contact_relation = EXCLUDED.emergency_contact_relation
	`
	_, err := r.DB.ExecContext(ctx, query,
		p.UserID, p.Phone, p.Birthdate, p.Address, p.City, p.State, p.Zipcode,
		p.University, p.College, p.Degree, p.Major, p.GraduationYear, p.CurrentYear,
		p.Marks, p.Bio, p.Interests, p.Skills, p.Languages, p.EventTypes,
		p.Availability, p.VolunteerExperience, p.EmergencyContactName,
		p.EmergencyContactPhone, p.EmergencyContactRelation,
	)
	return err
}

type managerProfileRepository struct {
	DB *sql.DB
}

func NewManagerProfileRepository(db *sql.DB) domain.ManagerProfileRepository {
	return &managerProfileRepository{
		DB: db,
	}
}

func (r *managerProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.ManagerProfile, error) {
	query := `
		SELECT user_id, phone, years_experience, specializations, availability, bio
		FROM manager_profiles
		WHERE user_id = $1
	`
	p := &domain.ManagerProfile{}
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.Phone, &p.YearsExperience, &p.Specializations, &p.Availability, &p.Bio,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *managerProfileRepository) Upsert(ctx context.Context, p *domain.ManagerProfile) error {
	query := `
		INSERT INTO manager_profiles (user_id, phone, years_experience, specializations, availability, bio)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			phone = EXCLUDED.phone, years_experience = EXCLUDED.years_experience,
			specializations = EXCLUDED.specializations,
			availability = EXCLUDED.availability, bio = EXCLUDED.bio
	`
	_, err := r.DB.ExecContext(ctx, query,
		p.UserID, p.Phone, p.YearsExperience, p.Specializations, p.Availability, p.Bio,
	)
	return err
}
