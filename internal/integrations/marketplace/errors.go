package marketplace

import "errors"

var (
	// ErrLocationNotFound возвращается, когда локация (или связанный ресурс) не найдена
	ErrLocationNotFound = errors.New("marketplace client: location not found")

	// ErrBadRequest возвращается, когда API отклонил запрос как некорректный
	ErrBadRequest = errors.New("marketplace client: bad request")

	// ErrUnauthorized возвращается при отказе в доступе со стороны API
	ErrUnauthorized = errors.New("marketplace client: unauthorized")

	// ErrConflict возвращается, когда API сообщает о конфликте (уже есть ожидающее предложение)
	ErrConflict = errors.New("marketplace client: conflict")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("marketplace client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("marketplace client: invalid response")

	// ErrNetworkFetch возвращается, когда API недоступен (сеть, таймаут, 5xx)
	ErrNetworkFetch = errors.New("marketplace client: network fetch failed")

	// ErrServiceDegraded возвращается при применении graceful degradation
	ErrServiceDegraded = errors.New("marketplace unavailable: graceful degradation applied")
)
