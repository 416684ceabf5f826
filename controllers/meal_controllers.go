package controllers

import (
	"errors"
	"net/http"

	"github.com/canteen-ops/meal-tracker/services"
	"github.com/canteen-ops/meal-tracker/utils"
	"github.com/gin-gonic/gin"
)

type MealController struct {
	Meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{Meals: meals}
}

// LogMeal -> records today's claim for the supplied employee code
func (mc *MealController) LogMeal(c *gin.Context) {
	type reqBody struct {
		Code string `json:"code" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := mc.Meals.LogMeal(req.Code)
	switch {
	case errors.Is(err, services.ErrInvalidCode):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrAlreadyLoggedToday):
		utils.RespondError(c, http.StatusConflict, err)
	case err != nil:
		utils.RespondError(c, http.StatusInternalServerError, err)
	default:
		utils.RespondJSON(c, http.StatusCreated, "Meal logged", order)
	}
}
