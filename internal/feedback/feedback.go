package feedback

import "time"

// Record - публичная запись отзыва. Не содержит ни одного поля,
// по которому можно восстановить адрес кошелька отправителя.
type Record struct {
	ID                  string    `json:"id"` // uuid
	Text                string    `json:"feedback"`
	Category            string    `json:"category"`
	XHandle             string    `json:"xHandle,omitempty"`
	PaymentAmount       string    `json:"paymentAmount"`
	AnonymizedTimestamp time.Time `json:"timestamp"`
}

// Категории отзывов, совпадают со списком в форме обратной связи.
const (
	CategorySpeedPerformance    = "speed_performance"
	CategoryEaseOfUse           = "ease_of_use"
	CategoryApps                = "apps"
	CategoryIdeasRequests       = "ideas_requests"
	CategoryCommunitySupport    = "community_support"
	CategoryDeveloperExperience = "developer_experience"
	CategoryOther               = "other"
)

var knownCategories = map[string]struct{}{
	CategorySpeedPerformance:    {},
	CategoryEaseOfUse:           {},
	CategoryApps:                {},
	CategoryIdeasRequests:       {},
	CategoryCommunitySupport:    {},
	CategoryDeveloperExperience: {},
	CategoryOther:               {},
}

// KnownCategory - проверяет, что категория входит в фиксированный набор
func KnownCategory(category string) bool {
	_, ok := knownCategories[category]
	return ok
}

// Categories - возвращает список всех категорий
func Categories() []string {
	return []string{
		CategorySpeedPerformance,
		CategoryEaseOfUse,
		CategoryApps,
		CategoryIdeasRequests,
		CategoryCommunitySupport,
		CategoryDeveloperExperience,
		CategoryOther,
	}
}
