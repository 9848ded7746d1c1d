package shipment

import (
	"context"
	"fmt"

	"engine/internal/entities"
)

// BackfillLegacyStatuses обходит отправки курсором фиксированными чанками и
// переводит устаревшие алиасы статусов в каноничные значения. Строки, уже
// равные целевому значению, пропускаются, поэтому повторные запуски
// безопасны. Возвращает число обновлённых строк.
func (m *Machine) BackfillLegacyStatuses(ctx context.Context, chunkSize int64) (int64, error) {
	if chunkSize <= 0 {
		return 0, fmt.Errorf("invalid chunk size %d", chunkSize)
	}

	var updated int64
	var cursor int64

	for {
		var rows []BackfillRow
		err := m.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
			chunk, err := m.repository.ListStatusBackfillChunk(ctx, cursor, chunkSize)
			if err != nil {
				return fmt.Errorf("list backfill chunk: %w", err)
			}
			rows = chunk

			for _, row := range rows {
				canonical, ok := entities.CanonicalShipmentStatus(row.RawStatus)
				if !ok {
					// Неизвестное значение чинит человек, не бэкфилл.
					_, err := m.adminTasks.Open(ctx, entities.AdminTaskShipmentIssue,
						"shipment", row.ID,
						fmt.Sprintf("backfill: unknown status %q", row.RawStatus))
					if err != nil {
						return fmt.Errorf("open backfill admin task: %w", err)
					}
					continue
				}
				if string(canonical) == row.RawStatus {
					continue
				}
				if err := m.repository.UpdateStatusRaw(ctx, row.ID, canonical); err != nil {
					return fmt.Errorf("backfill shipment %d: %w", row.ID, err)
				}
				updated++
			}
			return nil
		})
		if err != nil {
			return updated, err
		}

		if int64(len(rows)) < chunkSize {
			return updated, nil
		}
		cursor = rows[len(rows)-1].ID
	}
}
