package roster

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SchmidtMatheus/gym-simulator-web/internal/api"
	"github.com/SchmidtMatheus/gym-simulator-web/internal/apperr"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func respondError(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Message: apperr.MessageOf(err)})
}

// ListStudents godoc
// @Summary      List students
// @Tags         students
// @Produce      json
// @Param        page      query     int  false  "Page number"      default(1)
// @Param        pageSize  query     int  false  "Items per page"   default(10)
// @Success      200       {object}  StudentListResponse
// @Failure      400       {object}  api.ErrorResponse
// @Router       /api/students [get]
func (h *Handler) ListStudents(c *gin.Context) {
	var page api.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: api.BindMessage(err)})
		return
	}

	resp, err := h.service.ListStudents(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetStudent godoc
// @Summary      Get student
// @Tags         students
// @Produce      json
// @Param        studentID  path      string  true  "Student ID"
// @Success      200        {object}  Student
// @Failure      404        {object}  api.ErrorResponse
// @Router       /api/students/{studentID} [get]
func (h *Handler) GetStudent(c *gin.Context) {
	student, err := h.service.GetStudent(c.Request.Context(), c.Param("studentID"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

// CreateStudent godoc
// @Summary      Create student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        student  body      CreateStudentRequest  true  "Student"
// @Success      201      {object}  Student
// @Failure      400      {object}  api.ErrorResponse
// @Router       /api/students [post]
func (h *Handler) CreateStudent(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: api.BindMessage(err)})
		return
	}

	student, err := h.service.CreateStudent(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, student)
}

// UpdateStudent godoc
// @Summary      Update student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        studentID  path      string                true  "Student ID"
// @Param        student    body      UpdateStudentRequest  true  "Student"
// @Success      200        {object}  Student
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /api/students/{studentID} [put]
func (h *Handler) UpdateStudent(c *gin.Context) {
	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: api.BindMessage(err)})
		return
	}

	student, err := h.service.UpdateStudent(c.Request.Context(), c.Param("studentID"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

// ListClasses godoc
// @Summary      List classes
// @Tags         classes
// @Produce      json
// @Param        page      query     int  false  "Page number"     default(1)
// @Param        pageSize  query     int  false  "Items per page"  default(10)
// @Success      200       {object}  ClassListResponse
// @Failure      400       {object}  api.ErrorResponse
// @Router       /api/classes [get]
func (h *Handler) ListClasses(c *gin.Context) {
	var page api.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: api.BindMessage(err)})
		return
	}

	resp, err := h.service.ListClasses(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListAvailableClasses godoc
// @Summary      List bookable classes
// @Description  Returns only classes that are not cancelled and still have
// @Description  free seats, ordered by schedule.
// @Tags         classes
// @Produce      json
// @Param        page      query     int  false  "Page number"     default(1)
// @Param        pageSize  query     int  false  "Items per page"  default(10)
// @Success      200       {object}  ClassListResponse
// @Failure      400       {object}  api.ErrorResponse
// @Router       /api/classes/list/available [get]
func (h *Handler) ListAvailableClasses(c *gin.Context) {
	var page api.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: api.BindMessage(err)})
		return
	}

	resp, err := h.service.ListAvailableClasses(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetClass godoc
// @Summary      Get class
// @Tags         classes
// @Produce      json
// @Param        classID  path      string  true  "Class ID"
// @Success      200      {object}  Class
// @Failure      404      {object}  api.ErrorResponse
// @Router       /api/classes/{classID} [get]
func (h *Handler) GetClass(c *gin.Context) {
	class, err := h.service.GetClass(c.Request.Context(), c.Param("classID"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, class)
}

// CreateClass godoc
// @Summary      Create class
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        class  body      CreateClassRequest  true  "Class"
// @Success      201    {object}  Class
// @Failure      400    {object}  api.ErrorResponse
// @Router       /api/classes [post]
func (h *Handler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: api.BindMessage(err)})
		return
	}

	class, err := h.service.CreateClass(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, class)
}

// CancelClass godoc
// @Summary      Cancel class
// @Description  A cancelled class stops accepting bookings regardless of
// @Description  remaining capacity.
// @Tags         classes
// @Produce      json
// @Param        classID  path  string  true  "Class ID"
// @Success      204
// @Failure      409  {object}  api.ErrorResponse
// @Router       /api/classes/{classID}/cancel [post]
func (h *Handler) CancelClass(c *gin.Context) {
	if err := h.service.CancelClass(c.Request.Context(), c.Param("classID")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
