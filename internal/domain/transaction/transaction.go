package transaction

import "context"

// Manager 事务边界
// fn内通过ctx执行的所有Repository操作处于同一事务：
// fn返回error时回滚，返回nil时提交。
type Manager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
