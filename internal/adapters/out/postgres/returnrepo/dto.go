// Package returnrepo persists return requests with GORM.
package returnrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/returns"

	"github.com/google/uuid"
)

// ReturnRequestDTO is the database row behind a return request.
type ReturnRequestDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderItemID uuid.UUID `gorm:"type:uuid;index"`
	RetailerID  uuid.UUID `gorm:"type:uuid;index"`
	Quantity    int
	Reason      string
	Status      string    `gorm:"type:varchar(20);index"`
	RequestDate time.Time `gorm:"index"`
	UpdatedDate time.Time
}

func (ReturnRequestDTO) TableName() string {
	return "return_requests"
}

func fromDomain(request *returns.Request) ReturnRequestDTO {
	return ReturnRequestDTO{
		ID:          request.ID().Bytes(),
		OrderItemID: request.OrderItemID().Bytes(),
		RetailerID:  request.RetailerID().Bytes(),
		Quantity:    request.Quantity(),
		Reason:      request.Reason(),
		Status:      request.Status().String(),
		RequestDate: request.RequestDate(),
		UpdatedDate: request.UpdatedDate(),
	}
}

func toDomain(dto ReturnRequestDTO) (*returns.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderItemID, err := kernel.UUIDFromBytes(dto.OrderItemID[:])
	if err != nil {
		return nil, err
	}
	retailerID, err := kernel.UUIDFromBytes(dto.RetailerID[:])
	if err != nil {
		return nil, err
	}
	status, err := returns.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return returns.RestoreRequest(
		id, orderItemID, retailerID,
		dto.Quantity, dto.Reason, status,
		dto.RequestDate, dto.UpdatedDate,
	)
}
