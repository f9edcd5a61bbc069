package domain

import "time"

// CityNotSpecified подставляется в поле city ответа, когда город в запросе не задан.
const CityNotSpecified = "Not specified"

// PriceRecord — запись о продаже товара во внешнем хранилище цен.
// Сервис её только читает; владеет данными внешняя система.
type PriceRecord struct {
	ID        int
	Title     string
	ListPrice int
	SellPrice int
	City      string
	Cashless  bool
}

// PriceStats — результат резолвера: сколько записей подошло под фильтр
// и мода цены (самая частая list_price; при равной частоте — большая).
// При Count == 0 рекомендации нет, Mode не имеет смысла.
type PriceStats struct {
	Count int
	Mode  int
}

// PriceContent — содержимое ответа: поля рекомендации при status 200,
// либо только Message при status 404.
type PriceContent struct {
	Item            string `json:"item,omitempty"`
	ItemCount       int    `json:"item_count,omitempty"`
	PriceSuggestion int    `json:"price_suggestion,omitempty"`
	City            string `json:"city,omitempty"`
	Message         string `json:"message,omitempty"`
}

// PricePayload — ответ сервиса. Status дублируется в HTTP-коде ответа.
type PricePayload struct {
	Status  int          `json:"status"`
	Content PriceContent `json:"content"`
}

// NotFoundPayload — единый ответ «не найдено»: item не передан или под фильтр
// не подошла ни одна запись. Никогда не попадает в кэш.
var NotFoundPayload = PricePayload{
	Status:  404,
	Content: PriceContent{Message: "Not found"},
}

// Lookup — событие одного обращения к резолверу (уходит в Kafka, оседает в аналитике).
type Lookup struct {
	Item            string    `json:"item"`
	City            string    `json:"city"`
	ItemCount       int       `json:"item_count"`
	PriceSuggestion int       `json:"price_suggestion"`
	Timestamp       time.Time `json:"timestamp"`
}
