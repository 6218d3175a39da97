// Package relay 提供客户端中继管理器的实现
package relay

// ============================================================================
//                              协议 ID
// ============================================================================

// ProtocolRelayStop 是中继在停止端（被拨入节点）暴露的协议 ID。
//
// 值与 libp2p circuit-relay/v0.2 规范保持一致，Address Crafter 用它
// 判断某个候选节点是否支持作为中继使用。
const ProtocolRelayStop = "/libp2p/circuit/relay/0.2.0/stop"
