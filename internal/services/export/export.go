// Package services реализует выгрузку финансовых записей пользователя
// в формате CSV или JSON. Выгрузка — premium-функция: доступ проверяется
// на уровне HTTP до вызова сервиса.
package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shobhanapappu/groweasytracker/internal/aggregate"
	"github.com/shobhanapappu/groweasytracker/internal/models"
)

// Форматы выгрузки.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// RecordsProvider отдаёт записи пользователя с применёнными фильтрами.
type RecordsProvider interface {
	Records(ctx context.Context, userUID string, opts models.FilterOptions) ([]aggregate.Record, error)
}

// ExportService собирает файл выгрузки из записей пользователя.
type ExportService struct {
	records RecordsProvider
}

// NewExportService создает новый экземпляр ExportService.
func NewExportService(records RecordsProvider) *ExportService {
	return &ExportService{records: records}
}

// Export возвращает содержимое файла выгрузки и его MIME-тип.
// Неизвестный формат — ошибка.
func (s *ExportService) Export(ctx context.Context, userUID, format string, opts models.FilterOptions) ([]byte, string, error) {
	records, err := s.records.Records(ctx, userUID, opts)
	if err != nil {
		return nil, "", err
	}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, "", err
		}
		return data, "application/json", nil
	case FormatCSV:
		data, err := marshalCSV(records)
		if err != nil {
			return nil, "", err
		}
		return data, "text/csv", nil
	default:
		return nil, "", fmt.Errorf("unsupported export format: %s", format)
	}
}

func marshalCSV(records []aggregate.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "type", "amount", "category", "date", "notes"}); err != nil {
		return nil, err
	}
	for _, r := range records {
		row := []string{
			r.ID,
			r.Kind,
			strconv.FormatFloat(r.Amount, 'f', 2, 64),
			r.Category,
			r.Date.Format(models.DateLayout),
			r.Notes,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
