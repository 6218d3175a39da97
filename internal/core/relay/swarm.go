package relay

import "github.com/dep2p/relay-manager/pkg/types"

// Swarm 是中继管理器向 transport/swarm 协作者索取的最小能力集合。
// Manager 从不跨调用持有 Swarm 引用：每个需要它的方法都以参数形式接收。
type Swarm interface {
	// ListenOn 请求 swarm 开始监听 addr（一个已拼装好的中继电路地址）。
	// 成功时返回 swarm 为该监听器分配的 ListenerID。
	ListenOn(addr types.Multiaddr) (ListenerID, error)

	// RemoveListener 关闭一个先前打开的监听器。
	RemoveListener(id ListenerID) error

	// AddExternalAddress 把 addr 声明为本节点可达的外部地址。
	AddExternalAddress(addr types.Multiaddr)

	// RemoveExternalAddress 撤回一个先前声明过的外部地址。
	RemoveExternalAddress(addr types.Multiaddr)
}

// BadNodesOracle 报告某个节点是否已知行为不良，从而不应被用作
// （或继续保留为）中继。
type BadNodesOracle interface {
	// Lookup 返回 peer 是否已被记录，以及若已记录则是否为不良节点。
	Lookup(peer types.PeerID) (isBad bool, known bool)
}
