package returns

import (
	"github.com/AlekSi/pointer"

	"engine/internal/entities"
)

func ToDomain(o *ReturnOrderDB) *entities.ReturnOrder {
	if o == nil {
		return nil
	}
	return &entities.ReturnOrder{
		ID:                 o.ID,
		OriginalShipmentID: o.OriginalShipmentID,
		ReturnShipmentID:   o.ReturnShipmentID,
		ReasonCode:         o.ReasonCode,
		CreatedAt:          o.CreatedAt,
	}
}

func ToHoldDomain(h *HoldDB) *entities.ReturnPolicyHold {
	if h == nil {
		return nil
	}
	hold := &entities.ReturnPolicyHold{
		ID:               h.ID,
		ReturnOrderID:    h.ReturnOrderID,
		HoldStartAt:      h.HoldStartAt,
		HoldUntilAt:      h.HoldUntilAt,
		CustomerPickupAt: h.CustomerPickupAt,
		DecidedAt:        h.DecidedAt,
	}
	if h.FinalAction != nil {
		hold.FinalAction = pointer.To(entities.ReturnFinalActionType(*h.FinalAction))
	}
	return hold
}
