package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/usecase/income"
	domainerror "github.com/smartspend/backend/internal/domain/error"
	"github.com/smartspend/backend/internal/integration/entrypoint/dto"
	"github.com/smartspend/backend/internal/integration/entrypoint/middleware"
)

// IncomeController handles income endpoints.
type IncomeController struct {
	createIncomeUseCase *income.CreateIncomeUseCase
	listIncomesUseCase  *income.ListIncomesUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	createIncomeUseCase *income.CreateIncomeUseCase,
	listIncomesUseCase *income.ListIncomesUseCase,
) *IncomeController {
	return &IncomeController{
		createIncomeUseCase: createIncomeUseCase,
		listIncomesUseCase:  listIncomesUseCase,
	}
}

// Create handles POST /income requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingRecordFields),
		})
		return
	}

	input := income.CreateIncomeInput{
		UserID:         userID,
		Amount:         decimal.NewFromFloat(req.Amount),
		PayFrequency:   req.PayFrequency,
		WeeklyDays:     req.WeeklyDays,
		BiweeklyAnchor: req.BiweeklyAnchor,
		MonthlyDate:    req.MonthlyDate,
		OtherNote:      req.OtherNote,
	}

	output, err := c.createIncomeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIncomeResponse(output.Income))
}

// List handles GET /income requests.
func (c *IncomeController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listIncomesUseCase.Execute(ctx.Request.Context(), income.ListIncomesInput{UserID: userID})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	incomes := make([]dto.IncomeResponse, len(output.Incomes))
	for i, inc := range output.Incomes {
		incomes[i] = dto.ToIncomeResponse(inc)
	}

	ctx.JSON(http.StatusOK, dto.ListIncomesResponse{Incomes: incomes})
}

// handleRecordError handles record validation errors and returns appropriate
// HTTP responses. It is shared by the income, expense and transaction
// controllers.
func handleRecordError(ctx *gin.Context, err error) {
	var recordErr *domainerror.RecordError
	if errors.As(err, &recordErr) {
		statusCode := getStatusCodeForRecordError(recordErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  string(recordErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForRecordError maps record error codes to HTTP status codes.
func getStatusCodeForRecordError(code domainerror.RecordErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidExpenseCategory,
		domainerror.ErrCodeInvalidExpenseDate,
		domainerror.ErrCodeMissingRecordFields,
		domainerror.ErrCodeMissingBillName:
		return http.StatusBadRequest
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
