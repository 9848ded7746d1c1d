package admintask

import "time"

type TaskDB struct {
	ID         int64
	Kind       string
	RefType    string
	RefID      int64
	Note       string
	Status     string
	CreatedAt  time.Time
	ResolvedAt *time.Time
	ResolvedBy *int64
}
