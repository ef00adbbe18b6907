package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/usecase/bill"
	domainerror "github.com/smartspend/backend/internal/domain/error"
	"github.com/smartspend/backend/internal/integration/entrypoint/dto"
	"github.com/smartspend/backend/internal/integration/entrypoint/middleware"
)

// BillController handles bill endpoints.
type BillController struct {
	listBillsUseCase  *bill.ListBillsUseCase
	updateBillUseCase *bill.UpdateBillUseCase
	deleteBillUseCase *bill.DeleteBillUseCase
	markPaidUseCase   *bill.MarkPaidUseCase
}

// NewBillController creates a new bill controller instance.
func NewBillController(
	listBillsUseCase *bill.ListBillsUseCase,
	updateBillUseCase *bill.UpdateBillUseCase,
	deleteBillUseCase *bill.DeleteBillUseCase,
	markPaidUseCase *bill.MarkPaidUseCase,
) *BillController {
	return &BillController{
		listBillsUseCase:  listBillsUseCase,
		updateBillUseCase: updateBillUseCase,
		deleteBillUseCase: deleteBillUseCase,
		markPaidUseCase:   markPaidUseCase,
	}
}

// List handles GET /bills requests. All filters are optional query
// parameters; unknown due keywords are ignored.
func (c *BillController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := bill.ListBillsInput{
		UserID:   userID,
		Search:   ctx.Query("search"),
		Status:   ctx.Query("status"),
		Cadence:  ctx.Query("cadence"),
		Category: ctx.Query("category"),
		Due:      ctx.Query("due"),
	}

	output, err := c.listBillsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	bills := make([]dto.BillResponse, len(output.Bills))
	for i, b := range output.Bills {
		bills[i] = dto.ToBillResponse(b)
	}

	ctx.JSON(http.StatusOK, dto.ListBillsResponse{
		Bills:   bills,
		Summary: dto.ToBillSummaryResponse(output.Summary),
	})
}

// Update handles PATCH /bills/:id requests.
func (c *BillController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	billID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Bill ID must be a valid UUID",
			Code:  string(domainerror.ErrCodeBillNotFound),
		})
		return
	}

	var req dto.UpdateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingBillFields),
		})
		return
	}

	input := bill.UpdateBillInput{
		UserID:   userID,
		BillID:   billID,
		Name:     req.Name,
		Category: req.Category,
		Cadence:  req.Cadence,
		NextDue:  req.NextDue,
		Status:   req.Status,
		Notes:    req.Notes,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	output, err := c.updateBillUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillResponse(output.Bill))
}

// Delete handles DELETE /bills/:id requests.
func (c *BillController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	billID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Bill ID must be a valid UUID",
			Code:  string(domainerror.ErrCodeBillNotFound),
		})
		return
	}

	input := bill.DeleteBillInput{
		UserID: userID,
		BillID: billID,
	}

	if err := c.deleteBillUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Bill deleted",
	})
}

// MarkPaid handles POST /bills/:id/pay requests.
func (c *BillController) MarkPaid(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	billID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Bill ID must be a valid UUID",
			Code:  string(domainerror.ErrCodeBillNotFound),
		})
		return
	}

	input := bill.MarkPaidInput{
		UserID: userID,
		BillID: billID,
	}

	output, err := c.markPaidUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	transactionResponse := dto.ToTransactionResponse(output.Transaction)
	transactionResponse.Amount = output.Bill.Amount.String()

	ctx.JSON(http.StatusOK, dto.MarkPaidResponse{
		Bill:        dto.ToBillResponse(output.Bill),
		Transaction: transactionResponse,
	})
}

// handleBillError handles bill errors and returns appropriate HTTP responses.
func (c *BillController) handleBillError(ctx *gin.Context, err error) {
	var billErr *domainerror.BillError
	if errors.As(err, &billErr) {
		statusCode := c.getStatusCodeForBillError(billErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: billErr.Message,
			Code:  string(billErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBillError maps bill error codes to HTTP status codes.
func (c *BillController) getStatusCodeForBillError(code domainerror.BillErrorCode) int {
	switch code {
	case domainerror.ErrCodeBillNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeBillAlreadyAdvanced:
		return http.StatusConflict
	case domainerror.ErrCodeNoBillFields,
		domainerror.ErrCodeInvalidBillAmount,
		domainerror.ErrCodeInvalidBillDueDate,
		domainerror.ErrCodeMissingBillFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
