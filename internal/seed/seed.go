package seed

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/selimk/coursehub/internal/app/models"
	appRepos "github.com/selimk/coursehub/internal/app/repositories"
	"github.com/selimk/coursehub/internal/config"
	"github.com/selimk/coursehub/internal/pkg/apperrors"
	"github.com/selimk/coursehub/internal/pkg/auth"
)

// CreateDefaultData seeds the default departments, sample courses and the
// admin account. Every step tolerates already-existing rows so repeated
// startups converge on the same state.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if !cfg.Seed.Enabled {
		lgr.Info().Msg("Seeding disabled, skipping default data")
		return nil
	}

	departmentRepo := appRepos.NewDepartmentRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)
	noteRepo := appRepos.NewNoteRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/creating default data...")
	var finalErr error

	departments := []struct {
		name string
		code string
	}{
		{"Technology", "TECH"},
		{"Engineering", "ENG"},
		{"Business", "BUS"},
	}

	departmentIDs := map[string]int64{}
	for _, d := range departments {
		id, err := departmentRepo.CreateDepartment(ctx, &appModels.Department{Name: d.name, Code: d.code})
		switch {
		case err == nil:
			departmentIDs[d.code] = id
		case errors.Is(err, apperrors.ErrDepartmentAlreadyExists):
			existing, errGet := departmentRepo.GetDepartmentByCode(ctx, d.code)
			if errGet != nil {
				lgr.Error().Err(errGet).Str("code", d.code).Msg("Error resolving existing department")
				finalErr = errors.Join(finalErr, errGet)
				continue
			}
			departmentIDs[d.code] = existing.ID
		default:
			lgr.Error().Err(err).Str("code", d.code).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	courses := []struct {
		title    string
		code     string
		deptCode string
	}{
		{"Computer Science", "CS-301", "TECH"},
		{"Railway Engineering", "RE-210", "ENG"},
	}

	courseIDs := map[string]int64{}
	for _, c := range courses {
		deptID, ok := departmentIDs[c.deptCode]
		if !ok {
			continue
		}
		id, err := courseRepo.CreateCourse(ctx, &appModels.Course{
			Title:        c.title,
			CourseCode:   c.code,
			DepartmentID: deptID,
		})
		switch {
		case err == nil:
			courseIDs[c.code] = id
		case errors.Is(err, apperrors.ErrCourseAlreadyExists):
			existing, errGet := courseRepo.GetCourseByCode(ctx, c.code)
			if errGet != nil {
				lgr.Error().Err(errGet).Str("courseCode", c.code).Msg("Error resolving existing course")
				finalErr = errors.Join(finalErr, errGet)
				continue
			}
			courseIDs[c.code] = existing.ID
		default:
			lgr.Error().Err(err).Str("courseCode", c.code).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if err := createWelcomeNote(ctx, noteRepo, courseIDs["CS-301"], lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if err := createAdminUser(ctx, userRepo, cfg, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

// createWelcomeNote seeds one featured orientation note under the sample
// course. A course that already has notes is left alone.
func createWelcomeNote(ctx context.Context, noteRepo *appRepos.NoteRepository, courseID int64, lgr zerolog.Logger) error {
	if courseID == 0 {
		return nil
	}

	_, total, err := noteRepo.ListNotes(ctx, &courseID, nil, nil, 0, 1)
	if err != nil {
		lgr.Error().Err(err).Int64("courseID", courseID).Msg("Error checking existing notes")
		return err
	}
	if total > 0 {
		return nil
	}

	content := "Welcome to the course. Start with the syllabus under course documents, " +
		"then work through the lecture notes in order."
	note := &appModels.CourseNote{
		Title:             "Course Orientation",
		CourseID:          courseID,
		Category:          appModels.NoteCategoryLecture,
		DifficultyLevel:   appModels.DifficultyBeginner,
		Content:           content,
		Tags:              "orientation,getting-started",
		IsFeatured:        true,
		EstimatedReadTime: 1,
		IsActive:          true,
	}

	if _, err := noteRepo.CreateNote(ctx, note); err != nil {
		lgr.Error().Err(err).Int64("courseID", courseID).Msg("Error creating orientation note")
		return err
	}

	lgr.Info().Int64("courseID", courseID).Msg("Orientation note created")
	return nil
}

func createAdminUser(ctx context.Context, userRepo *appRepos.UserRepository, cfg *config.Config, lgr zerolog.Logger) error {
	email := strings.ToLower(cfg.Seed.AdminEmail)
	if email == "" || cfg.Seed.AdminPassword == "" {
		lgr.Warn().Msg("Seed admin credentials not configured, skipping admin account")
		return nil
	}

	exists, err := userRepo.EmailExists(ctx, email)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking admin account existence")
		return err
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &appModels.User{
		Email:       email,
		Username:    "admin",
		Password:    hashed,
		FirstName:   "Admin",
		LastName:    "User",
		IsStaff:     true,
		IsSuperuser: true,
		IsActive:    true,
	}

	if _, err := userRepo.CreateUser(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) || errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating admin account")
		return err
	}

	lgr.Info().Str("email", email).Msg("Default admin account created")
	return nil
}
