package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/playgrid/SlotBookingService/pkg/dbmetrics"
)

// ErrTransaction возвращается при ошибках управления транзакцией
var ErrTransaction = errors.New("txmanager: transaction error")

// TxBeginner источник транзакций (*dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функции в транзакции.
// Транзакция передается через контекст (dbmetrics.WithTx), репозитории
// подхватывают её через dbmetrics.GetExecutor - сервисный слой не знает
// о транзакции ничего, кроме границ.
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции READ COMMITTED.
// Взаимное исключение обеспечивают блокировки строк (FOR UPDATE) и условные
// обновления, а не уровень изоляции: на READ COMMITTED заблокированное
// чтение после коммита конкурента перечитывает актуальную строку, тогда как
// на SERIALIZABLE оно завершилось бы ошибкой сериализации (SQLSTATE 40001).
// При ошибке fn транзакция откатывается; ошибка возвращается как есть,
// чтобы вызывающий мог проверить её через errors.Is.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
	}

	txCtx := dbmetrics.WithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w: rollback after %v: %v", ErrTransaction, err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrTransaction, err)
	}

	return nil
}
