package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartspend/backend/internal/application/usecase/insight"
	domainerror "github.com/smartspend/backend/internal/domain/error"
	"github.com/smartspend/backend/internal/integration/entrypoint/dto"
	"github.com/smartspend/backend/internal/integration/entrypoint/middleware"
)

// InsightController handles spending insight endpoints.
type InsightController struct {
	getSpendingInsightUseCase *insight.GetSpendingInsightUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(getSpendingInsightUseCase *insight.GetSpendingInsightUseCase) *InsightController {
	return &InsightController{
		getSpendingInsightUseCase: getSpendingInsightUseCase,
	}
}

// GetSpendingInsight handles GET /insights/spending requests.
func (c *InsightController) GetSpendingInsight(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getSpendingInsightUseCase.Execute(ctx.Request.Context(), insight.GetSpendingInsightInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.InsightResponse{
		Insight:   output.Insight,
		Generated: output.Generated,
	})
}
