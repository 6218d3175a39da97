package relay

import (
	"time"

	"github.com/dep2p/relay-manager/pkg/types"
)

// ingressOutcome 是某一次入站拨号尝试的最终结果。
type ingressOutcome int

const (
	outcomeUnknown ingressOutcome = iota
	outcomeSuccess
	outcomeFailure
)

// ingressAttempt 是一次通过某个中继观察到的入站拨号尝试。
type ingressAttempt struct {
	relay     types.PeerID
	conn      ConnectionID
	firstSeen time.Time
	outcome   ingressOutcome
}

// relayScore 是一个中继的累计入站成败计数。
type relayScore struct {
	succeeded uint64
	errored   uint64
}

// HealthTracker 关联入站连接事件与每个中继的成败计数，
// 决定一个中继何时应被判定为"故障"。
//
// 一个远端节点可能在同一时间窗口内通过多个中继拨入我们；
// flush 过程对这种竞态按远端节点去重：只要有一条路径成功，
// 同一组内的失败路径就不计入任何中继的错误计数（反诬陷语义）。
type HealthTracker struct {
	cfg *Config

	// pending 按远端节点分组的待决入站尝试
	pending map[types.PeerID][]ingressAttempt

	// scores 按中继 PeerID 索引的累计成败计数
	scores map[types.PeerID]*relayScore

	now func() time.Time
}

// NewHealthTracker 创建一个新的预留健康跟踪器
func NewHealthTracker(cfg *Config) *HealthTracker {
	return &HealthTracker{
		cfg:     cfg,
		pending: make(map[types.PeerID][]ingressAttempt),
		scores:  make(map[types.PeerID]*relayScore),
		now:     time.Now,
	}
}

// OnIncomingConnection 记录一次入站拨号尝试。
//
// 仅当 localAddr 包含 P2pCircuit 组件时才处理；中继的 PeerID 取自
// localAddr 的 P2p 组件，远端节点的 PeerID 取自 sendBackAddr 的 P2p
// 组件。任一 PeerID 缺失时事件被静默丢弃。
func (h *HealthTracker) OnIncomingConnection(connID ConnectionID, localAddr, sendBackAddr types.Multiaddr) {
	if !IsRelayedAddr([]types.Multiaddr{localAddr}) {
		return
	}

	relay, err := types.GetPeerID(localAddr)
	if err != nil || relay.IsEmpty() {
		return
	}

	fromPeer, err := types.GetPeerID(sendBackAddr)
	if err != nil || fromPeer.IsEmpty() {
		return
	}

	h.pending[fromPeer] = append(h.pending[fromPeer], ingressAttempt{
		relay:     relay,
		conn:      connID,
		firstSeen: h.now(),
		outcome:   outcomeUnknown,
	})
}

// OnConnectionEstablished 把 fromPeer 名下 connID 对应的尝试标记为成功，然后 flush。
func (h *HealthTracker) OnConnectionEstablished(fromPeer types.PeerID, connID ConnectionID) {
	h.markOutcome(fromPeer, connID, outcomeSuccess)
	h.flush()
}

// OnIncomingConnectionError 从 sendBackAddr 提取远端节点，把对应尝试标记为失败，然后 flush。
func (h *HealthTracker) OnIncomingConnectionError(sendBackAddr types.Multiaddr, connID ConnectionID) {
	fromPeer, err := types.GetPeerID(sendBackAddr)
	if err != nil || fromPeer.IsEmpty() {
		return
	}
	h.markOutcome(fromPeer, connID, outcomeFailure)
	h.flush()
}

func (h *HealthTracker) markOutcome(fromPeer types.PeerID, connID ConnectionID, outcome ingressOutcome) {
	attempts, ok := h.pending[fromPeer]
	if !ok {
		return
	}
	for i := range attempts {
		if attempts[i].conn == connID {
			attempts[i].outcome = outcome
			return
		}
	}
}

// flush 处理每一组已经过了 TrackWindow 的待决尝试。
func (h *HealthTracker) flush() {
	for fromPeer, attempts := range h.pending {
		if len(attempts) == 0 {
			delete(h.pending, fromPeer)
			continue
		}

		newest := attempts[0].firstSeen
		for _, a := range attempts[1:] {
			if a.firstSeen.After(newest) {
				newest = a.firstSeen
			}
		}
		if h.now().Sub(newest) < h.cfg.TrackWindow {
			continue // 仍在收集窗口内
		}

		anySuccess := false
		for _, a := range attempts {
			if a.outcome == outcomeSuccess {
				anySuccess = true
				break
			}
		}

		if anySuccess {
			for _, a := range attempts {
				if a.outcome == outcomeSuccess {
					h.bump(a.relay, true)
				}
				// failure 和 unknown 在同组内一律不计入错误：反诬陷语义。
			}
		} else {
			for _, a := range attempts {
				if a.outcome == outcomeFailure {
					h.bump(a.relay, false)
				}
				// unknown 既不计成功也不计失败，直接丢弃。
			}
		}

		delete(h.pending, fromPeer)
	}
}

// bump 以非饱和方式递增一个计数器：溢出时该计数器重置为 1，
// 相反方向的计数器清零。这防止陈年的成功历史掩盖当前的故障。
func (h *HealthTracker) bump(relay types.PeerID, success bool) {
	s, ok := h.scores[relay]
	if !ok {
		s = &relayScore{}
		h.scores[relay] = s
	}
	if success {
		if s.succeeded == ^uint64(0) {
			s.succeeded = 1
			s.errored = 0
		} else {
			s.succeeded++
		}
	} else {
		if s.errored == ^uint64(0) {
			s.errored = 1
			s.succeeded = 0
		} else {
			s.errored++
		}
	}
}

// IsFaulty 按分级阈值判定一个中继当前是否故障。
//
//	t < 30          → 未故障（宽限期）
//	30 <= t < 100   → 故障当且仅当 s/t < 0.5
//	t >= 100        → 故障当且仅当 s/t < 0.9
func (h *HealthTracker) IsFaulty(relay types.PeerID) bool {
	s, ok := h.scores[relay]
	if !ok {
		return false
	}
	total := s.succeeded + s.errored
	if total < uint64(h.cfg.FaultyMinSamplesTier1) {
		return false
	}
	rate := float64(s.succeeded) / float64(total)
	if total < uint64(h.cfg.FaultyMinSamplesTier2) {
		return rate < h.cfg.FaultySuccessFloorTier1
	}
	return rate < h.cfg.FaultySuccessFloorTier2
}

// FaultyRelays 返回当前所有被判定为故障的中继。
func (h *HealthTracker) FaultyRelays() []types.PeerID {
	var faulty []types.PeerID
	for relay := range h.scores {
		if h.IsFaulty(relay) {
			faulty = append(faulty, relay)
		}
	}
	return faulty
}

// CleanupScores 删除所有不在 connected 中的中继的分数条目。
func (h *HealthTracker) CleanupScores(connected map[types.PeerID]types.Multiaddr) {
	for relay := range h.scores {
		if _, ok := connected[relay]; !ok {
			delete(h.scores, relay)
		}
	}
}

// deleteScore 移除单个中继的分数条目（用于淘汰时的直接清理）。
func (h *HealthTracker) deleteScore(relay types.PeerID) {
	delete(h.scores, relay)
}
