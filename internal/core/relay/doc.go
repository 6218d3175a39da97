// Package relay 实现客户端中继管理器
//
// 中继管理器代表一个位于 NAT 之后的私有节点，负责发现、预留、维护
// 并淘汰中继服务器，使该节点可以通过这些中继被其他节点拨入。
//
// # 架构组件
//
// relay 包包含三个协作组件：
//
//	┌──────────────────────────────────────────────────────────────┐
//	│                         Manager                                │
//	│        (候选队列 + 预留状态机 + 淘汰策略，单线程协作式)          │
//	├───────────────────────────┬─────────────────────────────────┤
//	│                           │                                  │
//	│   Address Crafter         │      Reservation Health Tracker  │
//	│   (craft.go)              │      (health.go)                 │
//	│                           │                                  │
//	│  • CraftRelayAddress      │  • OnIncomingConnection           │
//	│  • IsRelayedAddr          │  • OnConnectionEstablished        │
//	│  • SupportsRelayStop      │  • OnIncomingConnectionError       │
//	│                           │  • IsFaulty                        │
//	└───────────────────────────┴─────────────────────────────────┘
//
// # 组件职责
//
// ## Manager (manager.go)
//
// 单一入口，驱动外部 swarm 协作者完成中继生命周期：
//   - AddCandidate(): 接受发现源推送的候选中继
//   - TryConnect(): 周期性驱动（淘汰故障中继、尝试连接新中继）
//   - KeepAlive(): 判断某个节点是否处于等待或已连接状态
//   - OnReservationAccepted()/OnListenerClosed(): 处理 swarm 事件
//
// ## Address Crafter (craft.go)
//
// 纯函数式的多地址变换：从中继的传输地址中取出 IPv4 与 UDP 组件，
// 拼装成 `/ip4/.../udp/.../quic-v1/p2p/<中继>/p2p-circuit` 形式的中继监听地址，
// 并识别一个地址是否已经是中继地址。
//
// ## Reservation Health Tracker (health.go)
//
// 跟踪每个中继在入站连接上的历史表现，按远端节点去重多中继并发
// 拨号的竞态结果，为淘汰故障中继提供依据。
//
// # 协作关系
//
//	发现源 → Manager.AddCandidate() → craft.SupportsRelayStop() 过滤 → 候选队列
//	Manager.TryConnect() → 淘汰故障中继 → 从候选中均匀随机采样
//	                     → swarm.ListenOn() 发起监听
//	swarm 事件 → Manager.OnReservationAccepted/OnListenerClosed
//	          → health.OnConnectionEstablished/OnIncomingConnectionError
//
// # 设计原则
//
//   - 单线程协作式：所有状态转换发生在对 Manager 方法的同步调用内，
//     不启动内部 goroutine，不持有内部锁。调用方负责串行化调用。
//   - 静默丢弃：格式错误或过期的 swarm 事件被直接丢弃，不向调用方
//     传播错误，也不 panic。
//   - 不做地理位置/延迟/费用选型：候选采样是均匀随机的。
package relay

import (
	"github.com/dep2p/relay-manager/internal/util/logger"
)

var log = logger.Logger("core/relay")
