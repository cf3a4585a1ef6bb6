// controllers/inventory_controller.go
package controllers

import (
	"net/http"
	"strings"

	"resort-backend/models"
	"resort-backend/services"

	"github.com/gin-gonic/gin"
)

type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

type InventoryController struct {
	InventorySvc *services.InventoryService
	Activity     *services.ActivityService
}

func NewInventoryController(inventorySvc *services.InventoryService, activity *services.ActivityService) *InventoryController {
	return &InventoryController{InventorySvc: inventorySvc, Activity: activity}
}

func (ctrl *InventoryController) GetItems(c *gin.Context) {
	items, err := ctrl.InventorySvc.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ctrl *InventoryController) GetLowStock(c *gin.Context) {
	items, err := ctrl.InventorySvc.LowStock()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ctrl *InventoryController) CreateItem(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": err.Error()}})
		return
	}

	created, err := ctrl.InventorySvc.Create(item)
	if err != nil {
		msg := err.Error()
		if strings.Contains(msg, "invalid_item") || strings.Contains(msg, "invalid_quantity") {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "Name and a non-negative quantity are required"}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": msg}})
		return
	}

	ctrl.Activity.Record(adminIDFromContext(c), "create", "inventory_item", created.ID, gin.H{"name": created.Name})
	c.JSON(http.StatusCreated, created)
}

func (ctrl *InventoryController) AdjustStock(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "delta is required and must be non-zero"}})
		return
	}

	item, err := ctrl.InventorySvc.AdjustQuantity(id, req.Delta)
	if err != nil {
		msg := err.Error()
		switch {
		case strings.Contains(msg, "item_not_found"):
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.itemNotFound", "message": "Inventory item not found"}})
		case strings.Contains(msg, "insufficient_stock"):
			c.JSON(http.StatusConflict, gin.H{"error": gin.H{"code": "error.insufficientStock", "message": "Adjustment would drive stock below zero"}})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": msg}})
		}
		return
	}

	ctrl.Activity.Record(adminIDFromContext(c), "adjust", "inventory_item", id, gin.H{"delta": req.Delta, "quantity": item.Quantity})
	c.JSON(http.StatusOK, item)
}

func (ctrl *InventoryController) UpdateItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": err.Error()}})
		return
	}
	item.ID = id
	if err := ctrl.InventorySvc.Update(item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item updated"})
}

func (ctrl *InventoryController) DeleteItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.InventorySvc.Delete(int(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}
	ctrl.Activity.Record(adminIDFromContext(c), "delete", "inventory_item", id, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}
