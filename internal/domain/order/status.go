package order

import (
	"strings"
	"time"
)

// Status 订单状态(封闭枚举)
type Status string

const (
	StatusNew        Status = "NEW"
	StatusPaid       Status = "PAID"
	StatusProcessing Status = "PROCESSING"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

// AllStatuses 全部状态，按正向流转顺序
var AllStatuses = []Status{StatusNew, StatusPaid, StatusProcessing, StatusDelivered, StatusCancelled}

// ParseStatus 解析状态名，先trim并转大写再匹配
func ParseStatus(name string) (Status, error) {
	normalized := Status(strings.ToUpper(strings.TrimSpace(name)))
	for _, s := range AllStatuses {
		if s == normalized {
			return s, nil
		}
	}
	return "", ErrInvalidStatus.WithMessagef("无效的订单状态: %s", name)
}

// IsTerminal 是否为终态
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// forward 严格模式下的正向流转
var forward = map[Status]Status{
	StatusNew:        StatusPaid,
	StatusPaid:       StatusProcessing,
	StatusProcessing: StatusDelivered,
}

// StatusMachine 订单状态机
// 调用方必须先完成管理员权限校验，状态机本身不检查权限
//
// 宽松模式(默认):接受任何合法的状态名，不校验流转是否合法
// 严格模式:NEW→PAID→PROCESSING→DELIVERED，任何非终态可以→CANCELLED,
// 设置为当前状态视为幂等成功
type StatusMachine struct {
	strict bool
}

// NewStatusMachine 创建状态机
func NewStatusMachine(strict bool) *StatusMachine {
	return &StatusMachine{strict: strict}
}

// Strict 是否为严格模式
func (m *StatusMachine) Strict() bool {
	return m.strict
}

// CanTransition 检查from→to是否允许
func (m *StatusMachine) CanTransition(from, to Status) bool {
	if !m.strict || from == to {
		return true
	}
	if from.IsTerminal() {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	return forward[from] == to
}

// Apply 对订单应用目标状态
func (m *StatusMachine) Apply(o *Order, target Status) error {
	if !m.CanTransition(o.Status, target) {
		return ErrInvalidStatusTransition.WithMessagef("订单状态不允许从%s变更为%s", o.Status, target)
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return nil
}
