package catalog

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

// ListPlanTypes godoc
// @Summary      List plan types
// @Tags         plan-types
// @Produce      json
// @Success      200  {array}   PlanType
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/plan-types [get]
func (h *Handler) ListPlanTypes(c *gin.Context) {
	plans, err := h.service.ListPlanTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

// CreatePlanType godoc
// @Summary      Create plan type
// @Tags         plan-types
// @Accept       json
// @Produce      json
// @Param        plan  body      PlanTypeRequest  true  "Plan type"
// @Success      201   {object}  PlanType
// @Failure      400   {object}  api.ErrorResponse
// @Router       /api/plan-types [post]
func (h *Handler) CreatePlanType(c *gin.Context) {
	var req PlanTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: api.BindMessage(err)})
		return
	}

	pt, err := h.service.CreatePlanType(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pt)
}

// UpdatePlanType godoc
// @Summary      Update plan type
// @Tags         plan-types
// @Accept       json
// @Produce      json
// @Param        planTypeID  path      string           true  "Plan type ID"
// @Param        plan        body      PlanTypeRequest  true  "Plan type"
// @Success      200         {object}  PlanType
// @Failure      404         {object}  api.ErrorResponse
// @Router       /api/plan-types/{planTypeID} [put]
func (h *Handler) UpdatePlanType(c *gin.Context) {
	var req PlanTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: api.BindMessage(err)})
		return
	}

	pt, err := h.service.UpdatePlanType(c.Request.Context(), c.Param("planTypeID"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pt)
}

// DeletePlanType godoc
// @Summary      Delete plan type
// @Description  Fails with 409 while active students reference the plan.
// @Tags         plan-types
// @Produce      json
// @Param        planTypeID  path  string  true  "Plan type ID"
// @Success      204
// @Failure      404  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Router       /api/plan-types/{planTypeID} [delete]
func (h *Handler) DeletePlanType(c *gin.Context) {
	if err := h.service.DeletePlanType(c.Request.Context(), c.Param("planTypeID")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListClassTypes godoc
// @Summary      List class types
// @Tags         class-types
// @Produce      json
// @Success      200  {array}   ClassType
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/class-types [get]
func (h *Handler) ListClassTypes(c *gin.Context) {
	types, err := h.service.ListClassTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types)
}

// CreateClassType godoc
// @Summary      Create class type
// @Tags         class-types
// @Accept       json
// @Produce      json
// @Param        classType  body      ClassTypeRequest  true  "Class type"
// @Success      201        {object}  ClassType
// @Failure      400        {object}  api.ErrorResponse
// @Router       /api/class-types [post]
func (h *Handler) CreateClassType(c *gin.Context) {
	var req ClassTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: api.BindMessage(err)})
		return
	}

	ct, err := h.service.CreateClassType(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ct)
}

// UpdateClassType godoc
// @Summary      Update class type
// @Tags         class-types
// @Accept       json
// @Produce      json
// @Param        classTypeID  path      string            true  "Class type ID"
// @Param        classType    body      ClassTypeRequest  true  "Class type"
// @Success      200          {object}  ClassType
// @Failure      404          {object}  api.ErrorResponse
// @Router       /api/class-types/{classTypeID} [put]
func (h *Handler) UpdateClassType(c *gin.Context) {
	var req ClassTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: api.BindMessage(err)})
		return
	}

	ct, err := h.service.UpdateClassType(c.Request.Context(), c.Param("classTypeID"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ct)
}

// DeleteClassType godoc
// @Summary      Delete class type
// @Description  Fails with 409 while classes reference the type.
// @Tags         class-types
// @Produce      json
// @Param        classTypeID  path  string  true  "Class type ID"
// @Success      204
// @Failure      404  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Router       /api/class-types/{classTypeID} [delete]
func (h *Handler) DeleteClassType(c *gin.Context) {
	if err := h.service.DeleteClassType(c.Request.Context(), c.Param("classTypeID")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
