package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/altruist/ucp-payments/internal/dto"
	"github.com/altruist/ucp-payments/internal/middleware"
	"github.com/altruist/ucp-payments/internal/model"
	"github.com/altruist/ucp-payments/internal/service"
)

type RuleHandler struct {
	svc *service.RuleService
}

func NewRuleHandler(svc *service.RuleService) *RuleHandler {
	return &RuleHandler{svc: svc}
}

func (h *RuleHandler) List(c *gin.Context) {
	rules, err := h.svc.ListRules(c.Request.Context())
	if err != nil {
		status, errResp := middleware.MapDBError(err)
		c.JSON(status, errResp)
		return
	}
	c.JSON(http.StatusOK, rules)
}

func (h *RuleHandler) GetByCountry(c *gin.Context) {
	rule, err := h.svc.GetByCountry(c.Request.Context(), c.Param("countryCode"))
	if err != nil {
		status, errResp := middleware.MapDBError(err)
		c.JSON(status, errResp)
		return
	}
	if rule == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "resource not found"})
		return
	}
	c.JSON(http.StatusOK, rule)
}

func (h *RuleHandler) Create(c *gin.Context) {
	var rule model.CountryPaymentRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid request body: " + err.Error(),
		})
		return
	}

	if err := h.svc.CreateRule(c.Request.Context(), &rule); err != nil {
		status, errResp := middleware.MapDBError(err)
		c.JSON(status, errResp)
		return
	}
	c.JSON(http.StatusCreated, rule)
}

func (h *RuleHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid rule id"})
		return
	}

	var rule model.CountryPaymentRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid request body: " + err.Error(),
		})
		return
	}

	if err := h.svc.UpdateRule(c.Request.Context(), id, &rule); err != nil {
		status, errResp := middleware.MapDBError(err)
		c.JSON(status, errResp)
		return
	}
	c.JSON(http.StatusOK, rule)
}
