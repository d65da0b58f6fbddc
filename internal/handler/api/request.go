package api

import (
	"errors"
	"net/http"

	domain "shootflow/internal/domain/request"
	reqdto "shootflow/internal/handler/dto/request"
	resdto "shootflow/internal/handler/dto/response"
	"shootflow/internal/pkg/errs"
	"shootflow/internal/usecase/commands"
	"shootflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RequestHandler struct {
	commands commands.RequestCommands
	queries  queries.RequestQueries
}

func NewRequestHandler(cmds commands.RequestCommands, qrs queries.RequestQueries) *RequestHandler {
	return &RequestHandler{
		commands: cmds,
		queries:  qrs,
	}
}

func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req reqdto.CreateShootRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
		return
	}

	views, err := h.commands.Create(c.Request.Context(), params)
	if err != nil {
		respondTransitionError(c, err)
		return
	}

	response := make([]*resdto.ShootRequestResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromRequestView(v)
	}
	c.JSON(http.StatusCreated, response)
}

func (h *RequestHandler) ListRequests(c *gin.Context) {
	items, err := h.queries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ShootRequestListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromRequestListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

func (h *RequestHandler) GetRequest(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Request not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

func (h *RequestHandler) GetGroup(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetGroup(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Request not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromGroupView(view))
}

func (h *RequestHandler) SendToVendor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.respondTransition(c)(h.commands.SendToVendor(c.Request.Context(), id))
}

func (h *RequestHandler) SubmitQuote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.SubmitQuoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	h.respondTransition(c)(h.commands.SubmitQuote(c.Request.Context(), id, req.ToParams()))
}

func (h *RequestHandler) Approve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.commands.Approve(c.Request.Context(), id)
	if err != nil {
		respondTransitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGroupResult(result))
}

func (h *RequestHandler) Reject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.RejectRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.commands.Reject(c.Request.Context(), id, req.Reason)
	if err != nil {
		respondTransitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGroupResult(result))
}

func (h *RequestHandler) UploadInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.UploadInvoiceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	h.respondTransition(c)(h.commands.UploadInvoice(c.Request.Context(), id, req.Name, req.Document))
}

func (h *RequestHandler) MarkPaid(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.respondTransition(c)(h.commands.MarkPaid(c.Request.Context(), id))
}

func (h *RequestHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.CancelRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	h.respondTransition(c)(h.commands.Cancel(c.Request.Context(), id, req.Reason))
}

func (h *RequestHandler) AmendPricing(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.AmendPricingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	h.respondTransition(c)(h.commands.AmendPricing(c.Request.Context(), id, req.Amount))
}

func (h *RequestHandler) respondTransition(c *gin.Context) func(*commands.TransitionResult, error) {
	return func(result *commands.TransitionResult, err error) {
		if err != nil {
			respondTransitionError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromTransitionResult(result))
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// respondTransitionError maps command errors onto HTTP statuses: unknown ids
// are 404, transitions refused by the current status are 409, everything the
// payload got wrong is 422.
func respondTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Request not found",
		})
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrTerminalState):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
	case commands.IsPrecondition(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
