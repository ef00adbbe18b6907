package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/usecase/transaction"
	domainerror "github.com/smartspend/backend/internal/domain/error"
	"github.com/smartspend/backend/internal/integration/entrypoint/dto"
	"github.com/smartspend/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createTransactionUseCase *transaction.CreateTransactionUseCase
	listTransactionsUseCase  *transaction.ListTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createTransactionUseCase *transaction.CreateTransactionUseCase,
	listTransactionsUseCase *transaction.ListTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		createTransactionUseCase: createTransactionUseCase,
		listTransactionsUseCase:  listTransactionsUseCase,
	}
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingRecordFields),
		})
		return
	}

	incomeID, err := parseOptionalUUID(req.IncomeID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "income_id must be a valid UUID",
			Code:  string(domainerror.ErrCodeMissingRecordFields),
		})
		return
	}
	expenseID, err := parseOptionalUUID(req.ExpenseID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "expense_id must be a valid UUID",
			Code:  string(domainerror.ErrCodeMissingRecordFields),
		})
		return
	}

	input := transaction.CreateTransactionInput{
		UserID:    userID,
		IncomeID:  incomeID,
		ExpenseID: expenseID,
		Merchant:  req.Merchant,
	}

	output, err := c.createTransactionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// List handles GET /transactions requests. Filters, range and sort order come
// from query parameters; unknown keywords fall back to the defaults.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	amtMin, err := parseOptionalAmount(ctx.Query("amt_min"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "amt_min must be a number",
			Code:  string(domainerror.ErrCodeInvalidAmount),
		})
		return
	}
	amtMax, err := parseOptionalAmount(ctx.Query("amt_max"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "amt_max must be a number",
			Code:  string(domainerror.ErrCodeInvalidAmount),
		})
		return
	}

	input := transaction.ListTransactionsInput{
		UserID:   userID,
		Merchant: ctx.Query("merchant"),
		Category: ctx.Query("category"),
		Mood:     ctx.Query("mood"),
		AmtMin:   amtMin,
		AmtMax:   amtMax,
		Range:    ctx.DefaultQuery("range", transaction.RangeAll),
		Sort:     ctx.Query("sort"),
	}

	output, err := c.listTransactionsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	items := make([]dto.TransactionResponse, len(output.Items))
	for i, view := range output.Items {
		items[i] = dto.ToTransactionViewResponse(view)
	}

	ctx.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Items:  items,
		Rollup: dto.ToRollupResponse(output.Rollup),
	})
}

func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseOptionalAmount(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}
