// services/inventory_service.go
package services

import (
	"errors"
	"fmt"

	"resort-backend/models"

	"gorm.io/gorm"
)

type InventoryService struct {
	DB *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{DB: db}
}

func (s *InventoryService) Create(item models.InventoryItem) (models.InventoryItem, error) {
	if item.Name == "" {
		return item, errors.New("invalid_item")
	}
	if item.Quantity < 0 {
		return item, errors.New("invalid_quantity")
	}
	err := s.DB.Create(&item).Error
	return item, err
}

func (s *InventoryService) GetAll() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := s.DB.Order("category, name").Find(&items).Error
	return items, err
}

// AdjustQuantity applies a signed delta inside a transaction, rejecting any
// adjustment that would drive stock negative.
func (s *InventoryService) AdjustQuantity(id uint, delta int) (models.InventoryItem, error) {
	var item models.InventoryItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("item_not_found")
			}
			return err
		}
		next := item.Quantity + delta
		if next < 0 {
			return errors.New("insufficient_stock")
		}
		if err := tx.Model(&item).Update("quantity", next).Error; err != nil {
			return err
		}
		item.Quantity = next
		return nil
	})
	if err != nil {
		return item, err
	}
	return item, nil
}

func (s *InventoryService) Update(item models.InventoryItem) error {
	if item.Quantity < 0 {
		return errors.New("invalid_quantity")
	}
	return s.DB.Model(&models.InventoryItem{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
		"name":          item.Name,
		"category":      item.Category,
		"unit":          item.Unit,
		"quantity":      item.Quantity,
		"reorder_level": item.ReorderLevel,
	}).Error
}

func (s *InventoryService) Delete(id int) error {
	return s.DB.Delete(&models.InventoryItem{}, id).Error
}

// LowStock lists items at or below their reorder level.
func (s *InventoryService) LowStock() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := s.DB.Where("quantity <= reorder_level").Order("quantity ASC").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock: %w", err)
	}
	return items, nil
}
