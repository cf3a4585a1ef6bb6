package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"resort-backend/config"
	"resort-backend/models"
	"resort-backend/services"

	"github.com/gin-gonic/gin"
)

// ----------------------------------------------------
// 1. Get Rooms (GET /api/admin/rooms)
// ----------------------------------------------------

var roomSvc = services.RoomService{}

func GetRooms(c *gin.Context) {
	rooms, err := roomSvc.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "Database error"}})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// 2. Create Room (POST /api/admin/rooms)
// ----------------------------------------------------

func CreateRoom(c *gin.Context) {
	var room models.Room

	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "error.invalidPayload", "message": "Invalid request payload", "details": err.Error()},
		})
		return
	}

	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "error.invalidPayload", "message": "Room number is required"},
		})
		return
	}

	// Pointer FK: verify the referenced type exists instead of inserting 0.
	if room.RoomTypeID != nil {
		var rt models.RoomType
		if err := config.DB.Where("id = ?", *room.RoomTypeID).First(&rt).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{"code": "error.invalidPayload", "message": "Invalid room_type_id provided"},
			})
			return
		}
	}

	if result := config.DB.Create(&room); result.Error != nil {
		if strings.Contains(result.Error.Error(), "Duplicate entry") || strings.Contains(result.Error.Error(), "UNIQUE constraint failed") {
			c.JSON(http.StatusConflict, gin.H{
				"error": gin.H{"code": "error.duplicateRoomNumber", "message": fmt.Sprintf("Room number '%s' already exists", room.RoomNumber)},
			})
			return
		}
		log.Printf("CreateRoom db error: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "Database error"}})
		return
	}

	c.JSON(http.StatusCreated, room)
}

// ----------------------------------------------------
// 3. Update / Delete
// ----------------------------------------------------

func UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.roomNotFound", "message": "Room not found"}})
		return
	}

	var payload models.Room
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": err.Error()}})
		return
	}
	payload.ID = room.ID

	if err := config.DB.Model(&room).Updates(payload).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "Database error"}})
		return
	}
	c.JSON(http.StatusOK, room)
}

func DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := roomSvc.Delete(int(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "Database error"}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted"})
}
