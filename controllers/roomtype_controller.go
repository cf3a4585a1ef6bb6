package controllers

import (
	"net/http"

	"resort-backend/config"
	"resort-backend/models"
	"resort-backend/services"

	"github.com/gin-gonic/gin"
)

var roomTypeSvc = services.RoomTypeService{}

func GetRoomTypes(c *gin.Context) {
	types, err := roomTypeSvc.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}
	c.JSON(http.StatusOK, types)
}

func GetRoomTypeByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	rt, err := roomTypeSvc.GetByID(int(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.roomTypeNotFound", "message": "Room type not found"}})
		return
	}
	c.JSON(http.StatusOK, rt)
}

func CreateRoomType(c *gin.Context) {
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": err.Error()}})
		return
	}
	if rt.TotalRooms < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "total_rooms must be >= 0"}})
		return
	}

	if err := roomTypeSvc.Create(rt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}
	c.JSON(http.StatusCreated, rt)
}

func UpdateRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": err.Error()}})
		return
	}
	if rt.TotalRooms < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "total_rooms must be >= 0"}})
		return
	}
	rt.ID = id
	if err := roomTypeSvc.Update(rt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room type updated"})
}

func DeleteRoomType(c *gin.Context) {
	id := c.Param("id")
	config.DB.Delete(&models.RoomType{}, id)
	c.JSON(http.StatusOK, gin.H{"message": "Room type deleted"})
}
