package booking

import "github.com/damn-devil/bath.book/pkg/txmanager"

// DBExecutor интерфейс выполнения запросов, общий для *sql.DB и *sql.Tx
type DBExecutor = txmanager.Executor
