package relay

import "github.com/google/uuid"

// ListenerID 标识一次 swarm.ListenOn 调用建立的监听器。
//
// 监听器由 swarm 协作者在 ListenOn 返回时分配，中继管理器用它
// 在 waiting/connected 状态机中关联一个候选中继与其对应的电路监听。
type ListenerID string

// NewListenerID 生成一个新的 ListenerID
//
// 真实的 swarm 实现会分配自己的 ListenerID；这里提供的生成器
// 供测试替身（fake swarm）和独立运行的场景使用。
func NewListenerID() ListenerID {
	return ListenerID(uuid.NewString())
}

// EmptyListenerID 空监听器 ID
const EmptyListenerID ListenerID = ""

// ConnectionID 标识一次入站或出站连接。
//
// 预留健康跟踪器使用它关联同一次拨号尝试产生的多个事件
// （例如一次入站连接先触发 OnIncomingConnection 再触发
// OnConnectionEstablished 或 OnIncomingConnectionError）。
type ConnectionID string

// NewConnectionID 生成一个新的 ConnectionID
func NewConnectionID() ConnectionID {
	return ConnectionID(uuid.NewString())
}

// EmptyConnectionID 空连接 ID
const EmptyConnectionID ConnectionID = ""
