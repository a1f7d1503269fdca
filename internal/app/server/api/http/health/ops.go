package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        h.path,
		Summary:     "Проверка состояния",
		Description: "Отвечает OK, пока сервер принимает запросы. Хранилище не проверяется.",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
