package payment

import (
	"github.com/AlekSi/pointer"

	"engine/internal/entities"
)

func ToDomain(i *IntentDB) *entities.PaymentIntent {
	if i == nil {
		return nil
	}
	return &entities.PaymentIntent{
		ID:                      i.ID,
		ShipmentID:              i.ShipmentID,
		Method:                  entities.PaymentMethodType(i.Method),
		AmountCents:             i.AmountCents,
		Status:                  entities.PaymentIntentStatusType(i.Status),
		ExpiresAt:               i.ExpiresAt,
		FallbackPaymentIntentID: i.FallbackPaymentIntentID,
		CreatedAt:               i.CreatedAt,
		UpdatedAt:               i.UpdatedAt,
	}
}

func FromDomainModify(m *entities.PaymentIntentModify) *IntentModifyDB {
	if m == nil {
		return nil
	}
	modifyDB := &IntentModifyDB{}

	if m.ID != nil {
		modifyDB.ID = m.ID
	}
	if m.ShipmentID != nil {
		modifyDB.ShipmentID = m.ShipmentID
	}
	if m.Method != nil {
		modifyDB.Method = pointer.To(m.Method.String())
	}
	if m.AmountCents != nil {
		modifyDB.AmountCents = m.AmountCents
	}
	if m.Status != nil {
		modifyDB.Status = pointer.To(m.Status.String())
	}
	if m.ExpiresAt != nil {
		modifyDB.ExpiresAt = m.ExpiresAt
	}
	if m.FallbackPaymentIntentID != nil {
		modifyDB.FallbackPaymentIntentID = m.FallbackPaymentIntentID
	}

	return modifyDB
}
