package price

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"lizzyPrice/internal/ports"
)

// Controller — маршрут подбора цены: /item-price-service/.
type Controller struct {
	uc  ports.IPriceUseCase
	log *slog.Logger
}

// New создаёт контроллер подбора цены.
func New(uc ports.IPriceUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/item-price-service/", c.suggest)
}

// @Summary Рекомендованная цена товара
// @Description Возвращает моду исторических цен (list_price) по товару, опционально в пределах города. Ответ кэшируется на 5 минут.
// @Tags price
// @Produce json
// @Param item query string true "Название товара"
// @Param city query string false "Город; без него агрегация по всем городам"
// @Success 200 {object} SuggestResponse "Рекомендация"
// @Failure 404 {object} SuggestResponse "Товар не передан или записей нет"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /item-price-service/ [get]
func (c *Controller) suggest(ctx *gin.Context) {
	item := ctx.Query("item")
	city := ctx.Query("city")

	payload, err := c.uc.Suggest(ctx.Request.Context(), item, city)
	if err != nil {
		c.log.Error("suggest failed", "item", item, "city", city, "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	// HTTP-код повторяет status из тела ответа (200 или 404).
	ctx.JSON(payload.Status, payload)
}
