package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderwise/internal/models/request_models"
	"wanderwise/internal/services"
	"wanderwise/pkg/utils"
)

type BudgetController struct {
	budgetService services.BudgetService
}

func NewBudgetController(budgetService services.BudgetService) *BudgetController {
	return &BudgetController{budgetService: budgetService}
}

// GetBudget godoc
// @Summary Trip budget breakdown
// @Tags Budget
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Router /trips/{id}/budget [get]
func (b *BudgetController) GetBudget(c *gin.Context) {
	tripID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	budget, err := b.budgetService.GetBudget(c.Request.Context(), tripID, callerID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, budget, "Budget fetched successfully")
}

// UpdateCategory godoc
// @Summary Set planned or spent amount of a category
// @Tags Budget
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param category path string true "transport|accommodation|activities|food|shopping|other"
// @Param request body request_models.UpdateBudgetRequest true "Amounts"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/budget/{category} [put]
func (b *BudgetController) UpdateCategory(c *gin.Context) {
	userID, ok := requireCaller(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	budget, err := b.budgetService.UpdateCategory(c.Request.Context(), tripID, userID, c.Param("category"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, budget, "Budget updated successfully")
}
