package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/selimk/coursehub/internal/app/controllers"
	"github.com/selimk/coursehub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	departmentController *controllers.DepartmentController,
	courseController *controllers.CourseController,
	documentController *controllers.DocumentController,
	noteController *controllers.NoteController,
	enrollmentController *controllers.EnrollmentController,
	messageController *controllers.MessageController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
	}

	// Everything else requires a valid token
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	authAccount := authenticated.Group("/auth")
	{
		authAccount.POST("/logout", authController.Logout)
		authAccount.POST("/change-password", authController.ChangePassword)
		authAccount.GET("/profile", authController.GetProfile)
		authAccount.PUT("/profile-photo", authController.UpdateProfilePhoto)
	}

	departments := authenticated.Group("/departments")
	{
		departments.GET("", departmentController.ListDepartments)
		departments.GET("/:id", departmentController.GetDepartment)

		departmentsStaff := departments.Group("")
		departmentsStaff.Use(authMiddleware.StaffRequired())
		{
			departmentsStaff.POST("", departmentController.CreateDepartment)
			departmentsStaff.PUT("/:id", departmentController.UpdateDepartment)
			departmentsStaff.DELETE("/:id", departmentController.DeleteDepartment)
		}
	}

	courses := authenticated.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourse)
		courses.POST("/:id/enroll", courseController.Enroll)

		coursesStaff := courses.Group("")
		coursesStaff.Use(authMiddleware.StaffRequired())
		{
			coursesStaff.POST("", courseController.CreateCourse)
			coursesStaff.PUT("/:id", courseController.UpdateCourse)
			coursesStaff.DELETE("/:id", courseController.DeleteCourse)
		}
	}

	documents := authenticated.Group("/documents")
	{
		documents.GET("", documentController.ListDocuments)
		documents.GET("/:id", documentController.GetDocument)
		documents.POST("", documentController.UploadDocument)
		documents.PUT("/:id", documentController.UpdateDocument)
		documents.DELETE("/:id", documentController.DeleteDocument)
	}

	notes := authenticated.Group("/notes")
	{
		notes.GET("", noteController.ListNotes)
		notes.GET("/featured", noteController.ListFeaturedNotes)
		notes.GET("/by_course", noteController.ListNotesByCourse)
		notes.GET("/:id", noteController.GetNote)
		notes.POST("", noteController.CreateNote)
		notes.PUT("/:id", noteController.UpdateNote)
		notes.DELETE("/:id", noteController.DeleteNote)
	}

	enrollments := authenticated.Group("/enrollments")
	{
		enrollments.GET("", enrollmentController.ListEnrollments)
		enrollments.GET("/my_courses", enrollmentController.MyCourses)
		enrollments.DELETE("/:id", enrollmentController.Unenroll)
	}

	messages := authenticated.Group("/messages")
	{
		messages.GET("", messageController.ListMessages)
		messages.GET("/:id", messageController.GetMessage)
		messages.POST("/send", messageController.SendMessage)
		messages.DELETE("/:id", messageController.DeleteMessage)
	}
}
