package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/usecase/expense"
	domainerror "github.com/smartspend/backend/internal/domain/error"
	"github.com/smartspend/backend/internal/domain/valueobject"
	"github.com/smartspend/backend/internal/integration/entrypoint/dto"
	"github.com/smartspend/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	createExpenseUseCase *expense.CreateExpenseUseCase
	listExpensesUseCase  *expense.ListExpensesUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createExpenseUseCase *expense.CreateExpenseUseCase,
	listExpensesUseCase *expense.ListExpensesUseCase,
) *ExpenseController {
	return &ExpenseController{
		createExpenseUseCase: createExpenseUseCase,
		listExpensesUseCase:  listExpensesUseCase,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingRecordFields),
		})
		return
	}

	input := expense.CreateExpenseInput{
		UserID:       userID,
		Amount:       decimal.NewFromFloat(req.Amount),
		Category:     valueobject.Category(req.Category),
		Recurring:    req.Recurring,
		Date:         req.Date,
		Time:         req.Time,
		Merchant:     req.Merchant,
		Mood:         req.Mood,
		BillName:     req.BillName,
		BillCategory: valueobject.Category(req.BillCategory),
		Cadence:      req.Cadence,
		Note:         req.Note,
	}

	output, err := c.createExpenseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	response := dto.CreateExpenseResponse{
		Expense: dto.ToExpenseResponse(output.Expense),
	}
	if output.Bill != nil {
		bill := dto.ToBillResponse(output.Bill)
		response.Bill = &bill
	}

	ctx.JSON(http.StatusCreated, response)
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listExpensesUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{UserID: userID})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	expenses := make([]dto.ExpenseResponse, len(output.Expenses))
	for i, e := range output.Expenses {
		expenses[i] = dto.ToExpenseResponse(e)
	}

	ctx.JSON(http.StatusOK, dto.ListExpensesResponse{Expenses: expenses})
}
