package order

import (
	"github.com/shopspring/decimal"
)

// LineTotal 单行金额 = 单价 × 数量
// 全程decimal运算，不经过浮点数
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// OrderTotal 对明细上已捕获的价格求和，不按图书当前价格重算
func OrderTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price)
	}
	return total
}
