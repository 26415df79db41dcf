package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository           *UserRepository
	StudentProfileRepository *StudentProfileRepository
	TeacherProfileRepository *TeacherProfileRepository
	OpportunityRepository    *OpportunityRepository
	ApplicationRepository    *ApplicationRepository
	StatRepository           *StatRepository
	MessageRepository        *MessageRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:           NewUserRepository(db),
		StudentProfileRepository: NewStudentProfileRepository(db),
		TeacherProfileRepository: NewTeacherProfileRepository(db),
		OpportunityRepository:    NewOpportunityRepository(db),
		ApplicationRepository:    NewApplicationRepository(db),
		StatRepository:           NewStatRepository(db),
		MessageRepository:        NewMessageRepository(db),
	}
}
