package return_hold

import (
	"time"
)

// HoldPolicyFactory считает длительность окна ожидания по коду причины
// возврата. Окно — срок, в течение которого получатель ещё может забрать
// отправку сам, прежде чем оператор примет финальное решение.
type HoldPolicyFactory struct{}

func New() *HoldPolicyFactory {
	return &HoldPolicyFactory{}
}

func (f *HoldPolicyFactory) HoldDuration(reasonCode string) time.Duration {
	switch reasonCode {
	case "receiver_unreachable":
		return 24 * time.Hour * 7
	case "receiver_refused":
		return 24 * time.Hour * 3
	case "address_invalid":
		return 24 * time.Hour * 5
	case "damaged_in_transit":
		return 24 * time.Hour
	default:
		return 24 * time.Hour * 7
	}
}
