package controllers

import (
	"errors"
	"net/http"

	"github.com/canteen-ops/meal-tracker/database"
	"github.com/canteen-ops/meal-tracker/services"
	"github.com/canteen-ops/meal-tracker/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CustomerController struct {
	DB         *gorm.DB
	Roster     *services.RosterService
	Alternates *services.AlternateService
}

func NewCustomerController(db *gorm.DB, roster *services.RosterService, alternates *services.AlternateService) *CustomerController {
	return &CustomerController{DB: db, Roster: roster, Alternates: alternates}
}

// CreateCustomer -> manual single-employee insertion
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	type reqBody struct {
		Name string `json:"name" binding:"required"`
		Code string `json:"code" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer, err := cc.Roster.AddCustomer(req.Name, req.Code)
	switch {
	case errors.Is(err, services.ErrCodeFormat):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, services.ErrCodeTaken):
		utils.RespondError(c, http.StatusConflict, err)
	case err != nil:
		utils.RespondError(c, http.StatusInternalServerError, err)
	default:
		utils.RespondJSON(c, http.StatusCreated, "Customer created", customer)
	}
}

// ImportRoster -> bulk CSV upload; conflicting or malformed rows are skipped
// and tallied, never fatal
func (cc *CustomerController) ImportRoster(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	imported, skipped, err := cc.Roster.ImportCSV(file)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Roster imported", gin.H{
		"imported": imported,
		"skipped":  skipped,
	})
}

// ListAlternates -> every customer paired with their alternate's name
func (cc *CustomerController) ListAlternates(c *gin.Context) {
	rows, err := cc.Alternates.ListCustomersWithAlternates()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customers with alternates", rows)
}

// CreateAlternate -> pair a customer with a substitute
func (cc *CustomerController) CreateAlternate(c *gin.Context) {
	type reqBody struct {
		CustomerCode  string `json:"customer_code" binding:"required"`
		AlternateCode string `json:"alternate_code" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	alternate, err := cc.Alternates.AddAlternate(req.CustomerCode, req.AlternateCode)
	switch {
	case errors.Is(err, services.ErrUnknownAlternateEndpoint):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrAlternateTaken):
		utils.RespondError(c, http.StatusConflict, err)
	case err != nil:
		utils.RespondError(c, http.StatusInternalServerError, err)
	default:
		utils.RespondJSON(c, http.StatusCreated, "Alternate assigned", alternate)
	}
}

// ClearAllData -> empties every table
func (cc *CustomerController) ClearAllData(c *gin.Context) {
	if err := database.ClearAllData(cc.DB); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All data cleared", nil)
}
