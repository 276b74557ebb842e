package bookshelf

import (
	"sort"
	"strings"
)

const (
	PageDefault = 1
	SizeDefault = 50
)

type ListQuery struct {
	Search string // подстрока для поиска по названию, без учёта регистра
	Sort   string // имя поля, ведущий `-` — сортировка по убыванию
	Page   int
	Size   int
}

type Page struct {
	Items []*Book `json:"items"`
	Total int     `json:"total"`
	Page  int     `json:"page"`
	Size  int     `json:"size"`
	Pages int     `json:"pages"`
}

// sortKey отдаёт значение поля книги по имени; поле id намеренно
// не сортируемое — в исходном контракте сортировка идёт только
// по объявленным полям модели Book.
func sortKey(field string) func(*Book) string {
	switch field {
	case "title":
		return func(b *Book) string { return b.Title }
	case "author":
		return func(b *Book) string { return b.Author }
	case "description":
		return func(b *Book) string { return b.Description }
	}

	return nil
}

// processQuery прогоняет полный список книг через фильтр, сортировку
// и пагинацию. Неизвестное поле сортировки — не ошибка: список просто
// возвращается в исходном порядке.
func processQuery(all []*Book, q *ListQuery) *Page {
	filtered := make([]*Book, 0, len(all))
	search := strings.ToLower(q.Search)
	for _, b := range all {
		if search == "" || strings.Contains(strings.ToLower(b.Title), search) {
			filtered = append(filtered, b)
		}
	}

	if q.Sort != "" {
		reverse := strings.HasPrefix(q.Sort, "-")
		field := strings.TrimLeft(q.Sort, "-")
		if key := sortKey(field); key != nil {
			sort.SliceStable(filtered, func(i, j int) bool {
				if reverse {
					return key(filtered[i]) > key(filtered[j])
				}
				return key(filtered[i]) < key(filtered[j])
			})
		}
	}

	page := q.Page
	if page < 1 {
		page = PageDefault
	}
	size := q.Size
	if size < 1 {
		size = SizeDefault
	}

	total := len(filtered)
	pages := (total + size - 1) / size

	// страница за пределами списка — пустой результат, не ошибка
	items := make([]*Book, 0, size)
	start := (page - 1) * size
	if start < total {
		end := start + size
		if end > total {
			end = total
		}
		items = append(items, filtered[start:end]...)
	}

	return &Page{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
		Pages: pages,
	}
}
