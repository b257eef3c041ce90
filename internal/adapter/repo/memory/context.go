package memory

import "context"

type txCtxKey struct{}

// withTx marks the context as running inside the store lock so repo calls
// made from TxManager do not lock again.
func withTx(ctx context.Context) context.Context {
	return context.WithValue(ctx, txCtxKey{}, true)
}

func inTx(ctx context.Context) bool {
	held, _ := ctx.Value(txCtxKey{}).(bool)
	return held
}
