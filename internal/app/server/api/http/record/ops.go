package record

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) readOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-read",
		Method:      http.MethodGet,
		Path:        h.itemPath,
		Summary:     "Получить запись",
		Tags:        []string{"records"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "records-create",
		Method:        http.MethodPost,
		Path:          h.collectionPath,
		Summary:       "Создать запись",
		Description:   "Поля name и description обязательны. Из name удаляется разметка.",
		Tags:          []string{"records"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusInternalServerError},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-update",
		Method:      http.MethodPut,
		Path:        h.itemPath,
		Summary:     "Обновить запись",
		Description: "Частичное обновление: пустые и отсутствующие поля не меняются. " +
			"Кроме 404 и 500 может вернуть 400, если name длиннее 255 символов.",
		Tags:        []string{"records"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-delete",
		Method:      http.MethodDelete,
		Path:        h.itemPath,
		Summary:     "Удалить запись",
		Tags:        []string{"records"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
		Middlewares: h.middleware,
	}
}
