package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	TokenRepository      *TokenRepository
	DepartmentRepository *DepartmentRepository
	CourseRepository     *CourseRepository
	DocumentRepository   *DocumentRepository
	NoteRepository       *NoteRepository
	EnrollmentRepository *EnrollmentRepository
	MessageRepository    *MessageRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		TokenRepository:      NewTokenRepository(db),
		DepartmentRepository: NewDepartmentRepository(db),
		CourseRepository:     NewCourseRepository(db),
		DocumentRepository:   NewDocumentRepository(db),
		NoteRepository:       NewNoteRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		MessageRepository:    NewMessageRepository(db),
	}
}
