package shipment

import "engine/internal/entities"

// transitionTable перечисляет легальных преемников каждого статуса. Рёбра
// выведены из пяти фаз жизненного цикла: приём, забор, перевозка, доставка,
// возврат/закрытие. ISSUE обрабатывается отдельно: он достижим из любого
// нетерминального статуса, а выход из него валидируется по сохранённому
// pre-issue статусу.
var transitionTable = map[entities.ShipmentStatusType][]entities.ShipmentStatusType{
	entities.ShipmentBooked:            {entities.ShipmentPriceEstimated},
	entities.ShipmentPriceEstimated:    {entities.ShipmentBranchAssigned},
	entities.ShipmentBranchAssigned:    {entities.ShipmentPickupScheduled},
	entities.ShipmentPickupScheduled:   {entities.ShipmentPickupRescheduled, entities.ShipmentOnTheWayPickup},
	entities.ShipmentPickupRescheduled: {entities.ShipmentPickupRescheduled, entities.ShipmentOnTheWayPickup},
	entities.ShipmentOnTheWayPickup:    {entities.ShipmentVerifiedItem},
	entities.ShipmentVerifiedItem:      {entities.ShipmentConfirmedPrice, entities.ShipmentAdjustItem},
	entities.ShipmentAdjustItem:        {entities.ShipmentAdjustedPrice},
	entities.ShipmentConfirmedPrice:    {entities.ShipmentPendingPayment},
	entities.ShipmentAdjustedPrice:     {entities.ShipmentPendingPayment},
	entities.ShipmentPendingPayment:    {entities.ShipmentConfirmPayment},
	entities.ShipmentConfirmPayment:    {entities.ShipmentPaymentConfirmed},
	entities.ShipmentPaymentConfirmed:  {entities.ShipmentPickupComplete},
	entities.ShipmentPickupComplete:    {entities.ShipmentPickupCompleted},
	entities.ShipmentPickupCompleted:   {entities.ShipmentInOriginWarehouse},
	entities.ShipmentInOriginWarehouse: {entities.ShipmentInTransit},
	entities.ShipmentInTransit:         {entities.ShipmentInDestWarehouse},
	entities.ShipmentInDestWarehouse:   {entities.ShipmentOutForDelivery},
	entities.ShipmentOutForDelivery:    {entities.ShipmentDeliveredSuccess, entities.ShipmentDeliveryFailed},
	entities.ShipmentDeliveryFailed:    {entities.ShipmentOutForDelivery, entities.ShipmentReturnCreated},
	entities.ShipmentDeliveredSuccess:  {entities.ShipmentClosed},
	entities.ShipmentReturnCreated:     {entities.ShipmentReturnInTransit},
	entities.ShipmentReturnInTransit:   {entities.ShipmentReturnedToOrigin},
	entities.ShipmentReturnedToOrigin:  {entities.ShipmentReturnCompleted, entities.ShipmentDisposed, entities.ShipmentOutForDelivery},
	entities.ShipmentReturnCompleted:   {entities.ShipmentClosed},
	entities.ShipmentDisposed:          {entities.ShipmentClosed},
	entities.ShipmentIssue:             nil,
	entities.ShipmentClosed:            nil,
}

func hasEdge(from, to entities.ShipmentStatusType) bool {
	for _, successor := range transitionTable[from] {
		if successor == to {
			return true
		}
	}
	return false
}

// canTransition проверяет достижимость target из current по таблице.
// Для выхода из ISSUE преемники берутся от сохранённого pre-issue статуса:
// допустим сам pre-issue статус (возобновление с места) или любой его
// легальный преемник.
func canTransition(current, target entities.ShipmentStatusType, preIssue *entities.ShipmentStatusType) bool {
	if current == target {
		return current == entities.ShipmentPickupRescheduled
	}

	if target == entities.ShipmentIssue {
		return !current.IsTerminal() && current != entities.ShipmentIssue
	}

	if current == entities.ShipmentIssue {
		if preIssue == nil {
			return false
		}
		return target == *preIssue || hasEdge(*preIssue, target)
	}

	return hasEdge(current, target)
}
