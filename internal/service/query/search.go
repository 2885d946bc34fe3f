package query

import (
	"fmt"
	"strings"
	"time"

	"ordertracker/internal/entities"
)

// BuildSearch приводит параметры удаленного поиска к каноничному виду.
// Выполнение запроса - забота Order Repository.
func BuildSearch(name, number, fromDate, toDate string) (entities.SearchQuery, error) {
	q := entities.SearchQuery{
		Name:     strings.TrimSpace(name),
		Number:   strings.TrimSpace(number),
		FromDate: strings.TrimSpace(fromDate),
		ToDate:   strings.TrimSpace(toDate),
	}

	for _, date := range []string{q.FromDate, q.ToDate} {
		if date == "" {
			continue
		}
		if _, err := time.Parse(dayLayout, date); err != nil {
			return entities.SearchQuery{}, fmt.Errorf("%q: %w", date, ErrInvalidSearchDate)
		}
	}

	return q, nil
}
