package price

// SuggestContent — содержимое ответа: поля рекомендации при status 200,
// либо только message при status 404 (зеркало domain.PriceContent для swagger).
type SuggestContent struct {
	Item            string `json:"item,omitempty"`
	ItemCount       int    `json:"item_count,omitempty"`
	PriceSuggestion int    `json:"price_suggestion,omitempty"`
	City            string `json:"city,omitempty"`
	Message         string `json:"message,omitempty"`
}

// SuggestResponse — ответ сервиса (для GET /item-price-service/).
type SuggestResponse struct {
	Status  int            `json:"status"`
	Content SuggestContent `json:"content"`
}

// ErrorResponse — ответ при внутренней ошибке (кэш и хранилище недоступны и т.п.).
type ErrorResponse struct {
	Error string `json:"error"`
}
