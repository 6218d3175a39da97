// Package types 定义中继管理器的公共数据结构
//
// 这是整个系统的最底层包，不依赖任何其他内部包。
// 所有类型都是纯值类型，用于在各模块间传递数据。
//
// # 职能
//
// pkg/types 的职能是定义 **Go 内部数据结构**：
//   - 模块间数据传递
//   - API 参数/返回值
//
// # 文件组织
//
//   - ids.go        - PeerID, StreamID
//   - base58.go     - Base58 编解码
//   - multiaddr.go  - Multiaddr 多地址类型
//   - protocol.go   - ProtocolID 辅助函数, 协议前缀常量
//   - errors.go     - 公共错误定义
//
// # 类型分类
//
// ID 类型:
//   - PeerID     - 节点唯一标识（公钥派生，Base58 编码）
//   - ProtocolID - 协议标识（如 /dep2p/sys/ping/1.0.0）
//   - StreamID   - 流标识
//
// # 设计原则
//
//  1. 不可变性：类型创建后尽量不可修改，使用值类型
//  2. 可比较性：实现 Equal 方法，支持作为 map key
//  3. 零依赖：不依赖任何其他内部包（最底层）
//
// # 使用示例
//
//	import "github.com/dep2p/relay-manager/pkg/types"
//
//	// 解析 PeerID
//	peerID, err := types.ParsePeerID("12D3KooW...")
package types
