package admintask

import (
	"engine/internal/entities"
)

func ToDomain(t *TaskDB) *entities.AdminTask {
	if t == nil {
		return nil
	}
	return &entities.AdminTask{
		ID:         t.ID,
		Kind:       entities.AdminTaskKindType(t.Kind),
		RefType:    t.RefType,
		RefID:      t.RefID,
		Note:       t.Note,
		Status:     entities.AdminTaskStatusType(t.Status),
		CreatedAt:  t.CreatedAt,
		ResolvedAt: t.ResolvedAt,
		ResolvedBy: t.ResolvedBy,
	}
}

func ToDomainList(tasks []TaskDB) []entities.AdminTask {
	result := make([]entities.AdminTask, 0, len(tasks))
	for i := range tasks {
		result = append(result, *ToDomain(&tasks[i]))
	}
	return result
}
