package usecase

import "errors"

var (
	ErrLeadNotFound       = errors.New("lead não encontrado no funil")
	ErrContactUnavailable = errors.New("não foi possível criar nem encontrar o contato")
	ErrMissingPayload     = errors.New("webhook sem payload")
)
