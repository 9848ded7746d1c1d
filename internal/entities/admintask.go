package entities

import "time"

type AdminTaskStatusType string

const (
	AdminTaskOpen     AdminTaskStatusType = "OPEN"
	AdminTaskResolved AdminTaskStatusType = "RESOLVED"
)

func (s AdminTaskStatusType) String() string {
	return string(s)
}

type AdminTaskKindType string

const (
	AdminTaskShipmentIssue      AdminTaskKindType = "shipment_issue"
	AdminTaskCapacityExhausted  AdminTaskKindType = "capacity_exhausted"
	AdminTaskPaymentFailed      AdminTaskKindType = "payment_failed"
	AdminTaskReturnDecisionDue  AdminTaskKindType = "return_decision_due"
	AdminTaskLoadMismatch       AdminTaskKindType = "load_mismatch"
	AdminTaskContactUnreachable AdminTaskKindType = "contact_unreachable"
)

func (k AdminTaskKindType) String() string {
	return string(k)
}

// AdminTask — ручная задача для оператора. Создаётся любым компонентом, когда
// автоматическое продвижение заблокировано; закрывается только человеком,
// движок сам её никогда не резолвит.
type AdminTask struct {
	ID         int64
	Kind       AdminTaskKindType
	RefType    string
	RefID      int64
	Note       string
	Status     AdminTaskStatusType
	CreatedAt  time.Time
	ResolvedAt *time.Time
	ResolvedBy *int64
}
