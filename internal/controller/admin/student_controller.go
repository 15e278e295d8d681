package admin

import (
	"errors"
	"net/http"

	"github.com/algo-odyssey/backend/internal/dto"
	"github.com/algo-odyssey/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type StudentController struct {
	studentService service.StudentService
}

func NewStudentController(ss service.StudentService) *StudentController {
	return &StudentController{studentService: ss}
}

// RegisterStudent godoc
// @Summary (Admin) Register a student with a reference face image
// @Description Extracts the 128-dimension face descriptor from the image via the face comparator and stores it for proctoring.
// @Tags Admin - Students
// @Accept json
// @Produce json
// @Param student body dto.RegisterStudentRequest true "Student details and base64 image"
// @Success 201 {object} dto.StudentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body, no face detected, or email taken"
// @Failure 503 {object} dto.ErrorResponse "Face comparator not ready"
// @Router /admin/students [post]
func (c *StudentController) RegisterStudent(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	student, err := c.studentService.RegisterStudent(ctx.Request.Context(), req)
	if errors.Is(err, service.ErrEmailTaken) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Email already registered."})
		return
	}
	if errors.Is(err, service.ErrNoFace) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "No face detected in the uploaded image."})
		return
	}
	if errors.Is(err, service.ErrComparatorNotReady) {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: "Face comparator not ready."})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("RegisterStudent: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to register student", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, student)
}

// ListStudents godoc
// @Summary (Admin) List all registered students
// @Tags Admin - Students
// @Produce json
// @Success 200 {array} dto.StudentResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents()
	if err != nil {
		log.Error().Err(err).Msg("ListStudents: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list students", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, students)
}
