//go:build unit

package api_test

import (
	"net/http"
	"testing"

	domain "shootflow/internal/domain/request"
	"shootflow/internal/handler/api"
	resdto "shootflow/internal/handler/dto/response"
	"shootflow/internal/pkg/errs"
	"shootflow/internal/usecase/commands"
	"shootflow/internal/usecase/queries"
	"shootflow/tests/common/builder"
	"shootflow/tests/common/httptest"
	commandsmock "shootflow/tests/mock/commands"
	queriesmock "shootflow/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRequestCommands
	mockQueries  *queriesmock.MockRequestQueries
	handler      *api.RequestHandler
}

func (s *RequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRequestQueries(s.mockCtrl)
	s.handler = api.NewRequestHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/requests", s.handler.CreateRequest)
	s.router.GET("/api/requests", s.handler.ListRequests)
	s.router.GET("/api/requests/:id", s.handler.GetRequest)
	s.router.GET("/api/requests/:id/group", s.handler.GetGroup)
	s.router.POST("/api/requests/:id/send-to-vendor", s.handler.SendToVendor)
	s.router.POST("/api/requests/:id/quote", s.handler.SubmitQuote)
	s.router.POST("/api/requests/:id/approve", s.handler.Approve)
	s.router.POST("/api/requests/:id/reject", s.handler.Reject)
	s.router.POST("/api/requests/:id/invoice", s.handler.UploadInvoice)
	s.router.POST("/api/requests/:id/paid", s.handler.MarkPaid)
	s.router.POST("/api/requests/:id/cancel", s.handler.Cancel)
	s.router.POST("/api/requests/:id/pricing", s.handler.AmendPricing)
}

func (s *RequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(RequestHandlerTestSuite))
}

func (s *RequestHandlerTestSuite) transitionResult() *commands.TransitionResult {
	return &commands.TransitionResult{
		Request:   builder.NewRequestBuilder().BuildView(),
		Persisted: true,
	}
}

// ================================================================================
// Create
// ================================================================================

func (s *RequestHandlerTestSuite) TestCreateRequest() {
	url := "/api/requests"
	reqBody := builder.NewRequestBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 with created requests", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return([]*queries.RequestView{builder.NewRequestBuilder().BuildView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response []*resdto.ShootRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Require().Len(response, 1)
		s.Equal("new_request", response[0].Status)
	})

	s.Run("invalid body: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"requestor_name": "Priya",
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("domain refusal: returns 422", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(domain.ErrNoEquipment, commands.ErrPreconditionFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}

// ================================================================================
// Reads
// ================================================================================

func (s *RequestHandlerTestSuite) TestGetRequest() {
	view := builder.NewRequestBuilder().BuildView()

	s.Run("success: returns 200", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/requests/"+view.ID.String(), nil)

		var response resdto.ShootRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("unknown id: returns 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/requests/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Request not found")
	})

	s.Run("malformed id: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/requests/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request ID")
	})
}

func (s *RequestHandlerTestSuite) TestListRequests() {
	s.mockQueries.EXPECT().List(gomock.Any()).
		Return([]*queries.RequestListItem{{ID: uuid.New(), Status: "new_request"}}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/requests", nil)

	var response []*resdto.ShootRequestListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Len(response, 1)
}

func (s *RequestHandlerTestSuite) TestGetGroup() {
	id := uuid.New()
	groupID := uuid.New()
	group := &queries.GroupView{
		GroupID:    &groupID,
		Size:       2,
		GrandTotal: decimal.NewFromInt(900),
		Members: []*queries.RequestView{
			builder.NewRequestBuilder().BuildView(),
			builder.NewRequestBuilder().BuildView(),
		},
	}
	s.mockQueries.EXPECT().GetGroup(gomock.Any(), id).Return(group, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/requests/"+id.String()+"/group", nil)

	var response resdto.GroupResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(2, response.Size)
	s.True(response.GrandTotal.Equal(decimal.NewFromInt(900)))
}

// ================================================================================
// Transitions
// ================================================================================

func (s *RequestHandlerTestSuite) TestSendToVendor() {
	id := uuid.New()
	url := "/api/requests/" + id.String() + "/send-to-vendor"

	s.Run("success: returns 200 with transition result", func() {
		s.mockCommands.EXPECT().SendToVendor(gomock.Any(), id).
			Return(s.transitionResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var response resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Persisted)
	})

	s.Run("invalid transition: returns 409", func() {
		s.mockCommands.EXPECT().SendToVendor(gomock.Any(), id).
			Return(nil, errs.Mark(domain.ErrInvalidTransition, commands.ErrPreconditionFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("terminal state: returns 409", func() {
		s.mockCommands.EXPECT().SendToVendor(gomock.Any(), id).
			Return(nil, errs.Mark(domain.ErrTerminalState, commands.ErrPreconditionFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("unknown id: returns 404", func() {
		s.mockCommands.EXPECT().SendToVendor(gomock.Any(), id).
			Return(nil, commands.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Request not found")
	})
}

func (s *RequestHandlerTestSuite) TestSubmitQuote() {
	id := uuid.New()
	url := "/api/requests/" + id.String() + "/quote"

	s.Run("success: returns 200", func() {
		s.mockCommands.EXPECT().SubmitQuote(gomock.Any(), id, gomock.Any()).
			Return(s.transitionResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"amount": "850.00",
			"notes":  "includes delivery",
		})

		var response resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	})

	s.Run("missing amount: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"notes": "no amount",
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *RequestHandlerTestSuite) TestApprove() {
	id := uuid.New()
	url := "/api/requests/" + id.String() + "/approve"

	s.Run("success: returns group outcome", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), id).
			Return(&commands.GroupResult{
				Members: []commands.GroupMemberOutcome{
					{ID: uuid.New(), Status: "ready_for_shoot", Persisted: true},
					{ID: uuid.New(), Status: "ready_for_shoot", Persisted: true},
				},
				Consistent: true,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var response resdto.GroupTransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Consistent)
		s.Len(response.Members, 2)
	})

	s.Run("quote missing: returns 422", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), id).
			Return(nil, errs.Mark(domain.ErrQuoteMissing, commands.ErrPreconditionFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}

func (s *RequestHandlerTestSuite) TestReject() {
	id := uuid.New()
	url := "/api/requests/" + id.String() + "/reject"

	s.Run("success: returns group outcome", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), id, "too expensive").
			Return(&commands.GroupResult{
				Members:    []commands.GroupMemberOutcome{{ID: uuid.New(), Status: "with_vendor", Persisted: true}},
				Consistent: true,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"reason": "too expensive",
		})

		var response resdto.GroupTransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	})

	s.Run("missing reason: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *RequestHandlerTestSuite) TestUploadInvoice() {
	id := uuid.New()
	url := "/api/requests/" + id.String() + "/invoice"

	s.Run("success: returns 200", func() {
		s.mockCommands.EXPECT().UploadInvoice(gomock.Any(), id, "inv-042.pdf", gomock.Any()).
			Return(s.transitionResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"name":     "inv-042.pdf",
			"document": []byte("pdf-bytes"),
		})

		var response resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	})

	s.Run("missing name: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *RequestHandlerTestSuite) TestMarkPaid() {
	id := uuid.New()
	url := "/api/requests/" + id.String() + "/paid"

	s.Run("invoice missing: returns 422", func() {
		s.mockCommands.EXPECT().MarkPaid(gomock.Any(), id).
			Return(nil, errs.Mark(domain.ErrInvoiceMissing, commands.ErrPreconditionFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}

func (s *RequestHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/api/requests/" + id.String() + "/cancel"

	s.mockCommands.EXPECT().Cancel(gomock.Any(), id, "postponed").
		Return(s.transitionResult(), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
		"reason": "postponed",
	})

	var response resdto.TransitionResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
}

func (s *RequestHandlerTestSuite) TestAmendPricing() {
	id := uuid.New()
	url := "/api/requests/" + id.String() + "/pricing"

	s.Run("success: returns 200", func() {
		s.mockCommands.EXPECT().AmendPricing(gomock.Any(), id, gomock.Any()).
			Return(s.transitionResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"amount": "1250.00",
		})

		var response resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	})

	s.Run("not approved yet: returns 422", func() {
		s.mockCommands.EXPECT().AmendPricing(gomock.Any(), id, gomock.Any()).
			Return(nil, errs.Mark(domain.ErrNotApprovedYet, commands.ErrPreconditionFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"amount": "1250.00",
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}
