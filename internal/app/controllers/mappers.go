package controllers

import (
	"github.com/selimk/coursehub/internal/app/models"
	"github.com/selimk/coursehub/internal/app/models/dto"
)

func toUserProfile(user *models.User) dto.UserProfile {
	return dto.UserProfile{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsStudent:    user.IsStudent,
		IsStaff:      user.IsStaff,
		ProfilePhoto: user.ProfilePhotoPath,
		PhoneNumber:  user.PhoneNumber,
	}
}

func toUserSummary(user *models.User) *dto.UserSummary {
	if user == nil {
		return nil
	}
	return &dto.UserSummary{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

func toDepartmentResponse(department *models.Department, courseCount int) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:          department.ID,
		Name:        department.Name,
		Code:        department.Code,
		Description: department.Description,
		CourseCount: courseCount,
	}
}

func toCourseResponse(course *models.Course) dto.CourseResponse {
	resp := dto.CourseResponse{
		ID:           course.ID,
		Title:        course.Title,
		CourseCode:   course.CourseCode,
		DepartmentID: course.DepartmentID,
		Description:  course.Description,
		IconName:     course.IconName,
		ColorCode:    course.ColorCode,
		IsActive:     true,
	}
	if course.Department != nil {
		resp.DepartmentName = course.Department.Name
		resp.DepartmentCode = course.Department.Code
	}
	return resp
}

func toCourseResponses(courses []*models.Course) []dto.CourseResponse {
	out := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		out = append(out, toCourseResponse(course))
	}
	return out
}

func toNoteResponse(note *models.CourseNote, creator *models.User) dto.NoteResponse {
	return dto.NoteResponse{
		ID:                note.ID,
		Title:             note.Title,
		CourseID:          note.CourseID,
		Category:          string(note.Category),
		DifficultyLevel:   string(note.DifficultyLevel),
		Content:           note.Content,
		Tags:              note.Tags,
		TagList:           note.TagList(),
		WordCount:         note.WordCount(),
		IsFeatured:        note.IsFeatured,
		Order:             note.Order,
		EstimatedReadTime: note.EstimatedReadTime,
		CreatedBy:         toUserSummary(creator),
		CreatedAt:         note.CreatedAt,
		UpdatedAt:         note.UpdatedAt,
	}
}

func toEnrollmentResponse(enrollment *models.Enrollment) dto.EnrollmentResponse {
	resp := dto.EnrollmentResponse{
		ID:         enrollment.ID,
		EnrolledAt: enrollment.EnrolledAt,
		IsActive:   enrollment.IsActive,
	}
	if enrollment.Student != nil {
		resp.Student = toUserSummary(enrollment.Student)
	}
	if enrollment.Course != nil {
		course := toCourseResponse(enrollment.Course)
		resp.Course = &course
	}
	return resp
}

func toMessageResponse(message *models.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:      message.ID,
		Subject: message.Subject,
		Body:    message.Body,
		Sender:  toUserSummary(message.Sender),
		SentAt:  message.SentAt,
		IsRead:  message.IsRead,
	}
}
