package catalog

import "errors"

var (
	// ErrInternal возвращается при инфраструктурных ошибках
	ErrInternal = errors.New("catalog: internal error")
)
