package operday

import "errors"

var (
	// ErrDayNotFound возвращается, когда строка операционного дня отсутствует
	// (БД не инициализирована миграциями)
	ErrDayNotFound = errors.New("operday.repository: operating day row not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("operday.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("operday.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("operday.repository: failed to scan row")
)
