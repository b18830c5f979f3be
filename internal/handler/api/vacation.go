package api

import (
	"fmt"
	"net/http"

	"vacation-desk/internal/domain/vacation"
	reqdto "vacation-desk/internal/handler/dto/request"
	resdto "vacation-desk/internal/handler/dto/response"
	"vacation-desk/internal/handler/middleware"
	"vacation-desk/internal/usecase/commands"
	"vacation-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VacationHandler struct {
	commands commands.VacationCommands
	queries  queries.VacationQueries
	errors   errorMapper
}

func NewVacationHandler(cmd commands.VacationCommands, q queries.VacationQueries, policy vacation.Policy) *VacationHandler {
	return &VacationHandler{
		commands: cmd,
		queries:  q,
		errors:   errorMapper{policy: policy},
	}
}

// @Summary Request vacation
// @Description Validate and submit a vacation request for the current employee. Dates use DD/MM/YYYY.
// @Tags vacations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitVacationRequest true "Vacation request"
// @Success 201 {object} resdto.SubmitVacationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/vacations [post]
func (h *VacationHandler) Submit(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		internalError(c)
		return
	}

	var req reqdto.SubmitVacationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format, dates must be DD/MM/YYYY")
		return
	}
	input, err := req.ToInput()
	if err != nil {
		badRequest(c, err, "Invalid request format, dates must be DD/MM/YYYY")
		return
	}

	result, err := h.commands.SubmitVacationRequest(c.Request.Context(), requester, input)
	if err != nil {
		h.errors.write(c, err, msgSaveFailed)
		return
	}

	item, err := resdto.FromVacationRequestView(queries.ToView(result.Request))
	if err != nil {
		h.errors.write(c, err, msgSaveFailed)
		return
	}

	c.Header("Location", "/api/vacations/"+item.ID)
	c.JSON(http.StatusCreated, resdto.SubmitVacationResponse{
		Request: item,
		Balance: resdto.FromBalanceView(queries.ToBalanceView(result.Balance)),
		Message: confirmationMessage(result.Request),
	})
}

func confirmationMessage(r *vacation.Request) string {
	period := r.Period()
	return fmt.Sprintf("Vacation requested from %s to %s (%d days)",
		period.Start().Format(reqdto.DisplayDateLayout),
		period.End().Format(reqdto.DisplayDateLayout),
		r.RequestedDays(),
	)
}

// @Summary List my vacation requests
// @Tags vacations
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, approved or rejected"
// @Success 200 {object} resdto.VacationRequestListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/vacations [get]
func (h *VacationHandler) ListMine(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		internalError(c)
		return
	}

	var req reqdto.ListVacationRequests
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err, "Invalid query parameters")
		return
	}

	views, err := h.queries.ListMine(c.Request.Context(), requester.ID(), queries.ListFilter{Status: req.Status})
	if err != nil {
		h.errors.write(c, err, msgLoadFailed)
		return
	}

	items, err := resdto.FromVacationRequestViews(views)
	if err != nil {
		h.errors.write(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.VacationRequestListResponse{Items: items})
}

// @Summary Get my balance
// @Tags vacations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BalanceResponse
// @Failure 401 {object} httperr.Response
// @Router /api/vacations/balance [get]
func (h *VacationHandler) Balance(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		internalError(c)
		return
	}

	balance, err := h.queries.GetBalance(c.Request.Context(), requester.ID())
	if err != nil {
		h.errors.write(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBalanceView(balance))
}

// @Summary Get vacation request
// @Description Owners and approvers can read a request.
// @Tags vacations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vacation request ID"
// @Success 200 {object} resdto.VacationRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/vacations/{id} [get]
func (h *VacationHandler) Get(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		internalError(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid vacation request ID format")
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), requester, id)
	if err != nil {
		h.errors.write(c, err, msgLoadFailed)
		return
	}

	item, err := resdto.FromVacationRequestView(view)
	if err != nil {
		h.errors.write(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, item)
}
