package api

import (
	"net/http"

	"vacation-desk/internal/domain/employee"
	"vacation-desk/internal/domain/vacation"
	reqdto "vacation-desk/internal/handler/dto/request"
	resdto "vacation-desk/internal/handler/dto/response"
	"vacation-desk/internal/handler/middleware"
	"vacation-desk/internal/usecase/commands"
	"vacation-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const msgDecisionFailed = "Could not save the decision, please try again"

type ApprovalHandler struct {
	commands commands.VacationCommands
	queries  queries.VacationQueries
	errors   errorMapper
}

func NewApprovalHandler(cmd commands.VacationCommands, q queries.VacationQueries, policy vacation.Policy) *ApprovalHandler {
	return &ApprovalHandler{
		commands: cmd,
		queries:  q,
		errors:   errorMapper{policy: policy},
	}
}

// @Summary List vacation requests for approval
// @Description Newest first. q searches the requester name.
// @Tags approvals
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, approved or rejected"
// @Param q query string false "Requester name search"
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size (1-200)"
// @Success 200 {object} resdto.VacationRequestListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/approvals [get]
func (h *ApprovalHandler) List(c *gin.Context) {
	var req reqdto.ListVacationRequests
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err, "Invalid query parameters")
		return
	}

	var cursor *queries.Cursor
	if req.After != "" {
		cursor = &queries.Cursor{After: req.After}
	}

	views, next, err := h.queries.ListAll(c.Request.Context(), queries.ListFilter{Status: req.Status, Search: req.Search}, cursor, req.Limit)
	if err != nil {
		h.errors.write(c, err, msgLoadFailed)
		return
	}

	items, err := resdto.FromVacationRequestViews(views)
	if err != nil {
		h.errors.write(c, err, msgLoadFailed)
		return
	}
	resp := resdto.VacationRequestListResponse{Items: items}
	if next != nil {
		resp.NextCursor = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Approve vacation request
// @Tags approvals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vacation request ID"
// @Success 200 {object} resdto.VacationRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/approvals/{id}/approve [post]
func (h *ApprovalHandler) Approve(c *gin.Context) {
	approver, id, ok := h.decisionTarget(c)
	if !ok {
		return
	}

	decided, err := h.commands.ApproveVacationRequest(c.Request.Context(), approver, id)
	if err != nil {
		h.errors.write(c, err, msgDecisionFailed)
		return
	}
	h.respondDecided(c, decided)
}

// @Summary Reject vacation request
// @Tags approvals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vacation request ID"
// @Param request body reqdto.RejectVacationRequest true "Rejection reason"
// @Success 200 {object} resdto.VacationRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/approvals/{id}/reject [post]
func (h *ApprovalHandler) Reject(c *gin.Context) {
	approver, id, ok := h.decisionTarget(c)
	if !ok {
		return
	}

	var req reqdto.RejectVacationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "A rejection reason of at most 500 characters is required")
		return
	}

	decided, err := h.commands.RejectVacationRequest(c.Request.Context(), approver, id, req.Reason)
	if err != nil {
		h.errors.write(c, err, msgDecisionFailed)
		return
	}
	h.respondDecided(c, decided)
}

func (h *ApprovalHandler) decisionTarget(c *gin.Context) (approver employee.Requester, id uuid.UUID, ok bool) {
	approver, ok = middleware.GetRequester(c)
	if !ok {
		internalError(c)
		return approver, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid vacation request ID format")
		return approver, uuid.Nil, false
	}
	return approver, id, true
}

func (h *ApprovalHandler) respondDecided(c *gin.Context, decided *vacation.Request) {
	item, err := resdto.FromVacationRequestView(queries.ToView(decided))
	if err != nil {
		h.errors.write(c, err, msgDecisionFailed)
		return
	}
	c.JSON(http.StatusOK, item)
}
