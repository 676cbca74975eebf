package memory

import "context"

type TxManager struct{}

func NewTxManager() TxManager {
	return TxManager{}
}

func (TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
