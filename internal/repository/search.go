package repository

import (
	"context"
	"strings"
)

// searchNames loads every {id, name} row of model in id order and keeps the
// names that contain term, ignoring case. The empty term keeps every row.
func (s *Store) searchNames(ctx context.Context, model any, term string) (SearchResult, error) {
	var refs []EntityRef
	if err := s.db.WithContext(ctx).
		Model(model).
		Select("id", "name").
		Order("id ASC").
		Find(&refs).Error; err != nil {
		return SearchResult{}, classify("search", err)
	}
	return matchNames(refs, term), nil
}

func matchNames(refs []EntityRef, term string) SearchResult {
	needle := strings.ToLower(term)
	data := make([]EntityRef, 0, len(refs))
	for _, r := range refs {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			data = append(data, r)
		}
	}
	return SearchResult{Count: len(data), Data: data}
}
