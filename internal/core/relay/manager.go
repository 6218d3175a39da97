package relay

import (
	"math/rand"

	"github.com/dep2p/relay-manager/pkg/types"
)

// candidateEntry 是候选队列中的一项：一个候选中继及其已拼装好的电路地址。
type candidateEntry struct {
	peer types.PeerID
	addr types.Multiaddr
}

// Manager 是中继管理器的唯一入口：拥有候选队列和预留状态机，驱动外部
// Swarm 完成中继的发现、预留、维护与淘汰。
//
// Manager 单线程协作式运行：所有导出方法都同步运行至完成，不持有内部
// 锁，也不启动内部 goroutine；唯一的内部重入是 evictFaulty 对
// OnListenerClosed 的显式调用。嵌入方负责串行化调用——通常是一个周期性
// 的 tick 调用 TryConnect，与 swarm 事件回调交替执行。
type Manager struct {
	cfg *Config

	selfPeerID types.PeerID

	candidates []candidateEntry

	waiting   map[types.PeerID]types.Multiaddr
	connected map[types.PeerID]types.Multiaddr

	listenerToPeer map[ListenerID]types.PeerID
	peerToListener map[types.PeerID]ListenerID

	health *HealthTracker

	metrics *managerMetrics

	rng *rand.Rand
}

// NewManager 为 selfPeerID 创建一个中继管理器；cfg 为 nil 时使用 DefaultConfig()。
func NewManager(selfPeerID types.PeerID, cfg *Config) *Manager {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	m := &Manager{
		cfg:            cfg,
		selfPeerID:     selfPeerID,
		waiting:        make(map[types.PeerID]types.Multiaddr),
		connected:      make(map[types.PeerID]types.Multiaddr),
		listenerToPeer: make(map[ListenerID]types.PeerID),
		peerToListener: make(map[types.PeerID]ListenerID),
		health:         NewHealthTracker(cfg),
		rng:            rand.New(rand.NewSource(rand.Int63())),
	}

	if cfg.EnableMetrics {
		m.metrics = newManagerMetrics()
	}

	return m
}

// KeepAlive 返回 true 当且仅当 peer 位于 waiting 或 connected 中。
// 传输层用它决定是否保留一条已建立的、指向某个候选中继的连接。
func (m *Manager) KeepAlive(peer types.PeerID) bool {
	if _, ok := m.waiting[peer]; ok {
		return true
	}
	_, ok := m.connected[peer]
	return ok
}

// AddCandidate 接受一个发现源推送的候选中继。
//
// 候选队列已满（达到 MaxCandidates）时为空操作；protocols 不包含
// relay-stop 标识符时也为空操作。调用方应预先过滤只传入可中继的节点，
// 本方法不重复校验。
//
// 当 addrs 包含多个地址时，本实现确定性地选择 addrs[0] ——
// 规范把这一选择留作未指定，只要求实现文档化并在测试下保持确定。
func (m *Manager) AddCandidate(peer types.PeerID, addrs []types.Multiaddr, protocols []string) {
	if len(m.candidates) >= m.cfg.MaxCandidates {
		return
	}
	if !SupportsRelayStop(protocols) {
		return
	}
	if len(addrs) == 0 {
		return
	}

	crafted, ok := CraftRelayAddress(addrs[0], peer)
	if !ok {
		return
	}

	m.candidates = append(m.candidates, candidateEntry{peer: peer, addr: crafted})
	m.refreshGauges()
}

// TryConnect 推动候选队列向 MaxActiveRelays 个已连接中继靠拢。
// 应由嵌入方周期性调用。
//
// 首先淘汰在本次调用开始时即为故障的中继（evictFaulty 观察到的分数
// 不包含本次调用内稍后产生的更新）。随后从剩余候选中不放回地均匀
// 随机采样，直到达到活跃中继目标或候选队列耗尽。
func (m *Manager) TryConnect(swarm Swarm, badNodes BadNodesOracle) {
	m.evictFaulty(swarm)

	if len(m.connected) >= m.cfg.MaxActiveRelays || len(m.candidates) == 0 {
		return
	}

	need := m.cfg.MaxActiveRelays - len(m.connected)
	for i := 0; i < need; i++ {
		if len(m.candidates) == 0 {
			break
		}

		idx := m.rng.Intn(len(m.candidates))
		entry := m.candidates[idx]
		m.candidates = append(m.candidates[:idx], m.candidates[idx+1:]...)

		if badNodes != nil {
			if isBad, known := badNodes.Lookup(entry.peer); known && isBad {
				continue
			}
		}

		if _, ok := m.waiting[entry.peer]; ok {
			continue
		}
		if _, ok := m.connected[entry.peer]; ok {
			continue
		}

		listenerID, err := swarm.ListenOn(entry.addr)
		if err != nil {
			if m.metrics != nil {
				m.metrics.reservationsFailed.Inc()
			}
			log.Warn("relay listen failed, dropping candidate", "peer", entry.peer.ShortString(), "err", err)
			continue
		}

		m.listenerToPeer[listenerID] = entry.peer
		m.peerToListener[entry.peer] = listenerID
		m.waiting[entry.peer] = entry.addr

		if m.metrics != nil {
			m.metrics.reservationsIssued.Inc()
		}
	}

	m.refreshGauges()
}

// OnReservationAccepted 把 peer 从 waiting 移入 connected，并请求 swarm
// 把预留地址声明为外部地址。对不在 waiting 中的 peer（过期或重复的
// 确认）静默忽略。
func (m *Manager) OnReservationAccepted(peer types.PeerID, swarm Swarm) {
	addr, ok := m.waiting[peer]
	if !ok {
		return
	}

	delete(m.waiting, peer)
	m.connected[peer] = addr

	swarm.AddExternalAddress(addr)
	m.refreshGauges()
}

// OnListenerClosed 查出 listenerID 背后的中继，并把它从 waiting 或
// connected 中移除。未知的监听器 ID 被静默忽略（对重复的关闭事件幂等）。
func (m *Manager) OnListenerClosed(listenerID ListenerID, swarm Swarm) {
	peer, ok := m.listenerToPeer[listenerID]
	if !ok {
		return
	}

	delete(m.listenerToPeer, listenerID)
	delete(m.peerToListener, peer)

	if addr, ok := m.connected[peer]; ok {
		delete(m.connected, peer)

		swarm.RemoveExternalAddress(addr)
		// 部分 swarm 实现会在 p2p-circuit 之后追加我们自己的 PeerID，
		// 两种形式都要撤回。
		if selfAddr, err := types.NewMultiaddr("/p2p/" + m.selfPeerID.String()); err == nil {
			swarm.RemoveExternalAddress(addr.Encapsulate(selfAddr))
		}

		m.health.deleteScore(peer)
	} else {
		delete(m.waiting, peer)
	}

	m.refreshGauges()
}

// evictFaulty 关闭每一个当前被判定为故障的中继的监听器，然后清理孤立的
// 健康分数条目。
func (m *Manager) evictFaulty(swarm Swarm) {
	faulty := m.health.FaultyRelays()
	for _, peer := range faulty {
		listenerID, ok := m.peerToListener[peer]
		if !ok {
			continue
		}

		if err := swarm.RemoveListener(listenerID); err != nil {
			log.Warn("failed to close listener for faulty relay", "peer", peer.ShortString(), "err", err)
		}

		m.OnListenerClosed(listenerID, swarm)

		if m.metrics != nil {
			m.metrics.evictions.Inc()
		}
	}

	m.health.CleanupScores(m.connected)
}

// OnIncomingConnection 转发给健康跟踪器。
func (m *Manager) OnIncomingConnection(connID ConnectionID, localAddr, sendBackAddr types.Multiaddr) {
	m.health.OnIncomingConnection(connID, localAddr, sendBackAddr)
}

// OnConnectionEstablished 转发给健康跟踪器。
func (m *Manager) OnConnectionEstablished(fromPeer types.PeerID, connID ConnectionID) {
	m.health.OnConnectionEstablished(fromPeer, connID)
}

// OnIncomingConnectionError 转发给健康跟踪器。
func (m *Manager) OnIncomingConnectionError(sendBackAddr types.Multiaddr, connID ConnectionID) {
	m.health.OnIncomingConnectionError(sendBackAddr, connID)
}

// Connected 返回当前已连接中继的快照。
func (m *Manager) Connected() map[types.PeerID]types.Multiaddr {
	out := make(map[types.PeerID]types.Multiaddr, len(m.connected))
	for k, v := range m.connected {
		out[k] = v
	}
	return out
}

// Waiting 返回当前等待预留确认的中继的快照。
func (m *Manager) Waiting() map[types.PeerID]types.Multiaddr {
	out := make(map[types.PeerID]types.Multiaddr, len(m.waiting))
	for k, v := range m.waiting {
		out[k] = v
	}
	return out
}

// CandidateCount 返回当前候选队列中的条目数。
func (m *Manager) CandidateCount() int {
	return len(m.candidates)
}
