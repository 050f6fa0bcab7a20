package kommo

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured   = errors.New("kommo não configurado")
	ErrContactNotFound = errors.New("contato não encontrado")
	ErrEmptyResponse   = errors.New("kommo não devolveu o ID criado")
)

// APIError é uma resposta fora da faixa 2xx.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("kommo %s: status %d - %s", e.Op, e.StatusCode, e.Body)
}
