// Package orderrepo persists order aggregates and their items with GORM.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row behind an order. Status is stored in its
// wire form so the reporting queries can filter on it directly.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RetailerID  uuid.UUID `gorm:"type:uuid;index"`
	OrderDate   time.Time `gorm:"index"`
	TotalAmount float64
	Status      string         `gorm:"type:varchar(20);index"`
	Items       []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
	Active      bool
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one immutable line of an order. The price is the one
// frozen at checkout, never the product's current price.
type OrderItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	ProductID       uuid.UUID `gorm:"type:uuid;index"`
	Quantity        int
	PriceAtPurchase float64
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			ID:              item.ID().Bytes(),
			OrderID:         o.ID().Bytes(),
			ProductID:       item.ProductID().Bytes(),
			Quantity:        item.Quantity(),
			PriceAtPurchase: item.PriceAtPurchase(),
		})
	}

	return OrderDTO{
		ID:          o.ID().Bytes(),
		RetailerID:  o.RetailerID().Bytes(),
		OrderDate:   o.OrderDate(),
		TotalAmount: o.TotalAmount(),
		Status:      o.Status().String(),
		Items:       itemDTOs,
		Active:      o.IsActive(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	retailerID, err := kernel.UUIDFromBytes(dto.RetailerID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		productID, prodErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if prodErr != nil {
			return nil, prodErr
		}

		item, newErr := order.NewItem(itemID, productID, itemDTO.Quantity, itemDTO.PriceAtPurchase)
		if newErr != nil {
			return nil, newErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, retailerID, items, dto.OrderDate, status, dto.Active)
}
