package relay

import (
	"github.com/dep2p/relay-manager/pkg/types"
)

// CraftRelayAddress 把一个远端节点的传输地址折叠成可拨号的中继监听地址。
//
// 从输入地址中提取第一个 IPv4 组件和第一个 UDP 组件（两者在输入中的
// 出现顺序无关紧要，缺一即失败）。生成的新地址遵循固定顺序：
// IPv4 · UDP · QUIC-v1 · P2p(relayPeerID，若未显式给出则取输入中的第
// 一个 P2p 组件) · P2pCircuit。
//
// 如果既没有显式的中继 PeerID，输入中也不包含 P2p 组件，返回 (nil, false)。
func CraftRelayAddress(addr types.Multiaddr, relayPeerID types.PeerID) (types.Multiaddr, bool) {
	if types.IsEmpty(addr) {
		return nil, false
	}

	var ip4, udp string
	var haveIP4, haveUDP bool
	var embeddedPeer types.PeerID
	var haveEmbedded bool

	types.ForEach(addr, func(c types.Component) bool {
		switch c.Protocol().Code {
		case types.P_IP4:
			if !haveIP4 {
				ip4 = c.Value()
				haveIP4 = true
			}
		case types.P_UDP:
			if !haveUDP {
				udp = c.Value()
				haveUDP = true
			}
		case types.P_P2P:
			if !haveEmbedded {
				embeddedPeer = types.PeerID(c.Value())
				haveEmbedded = true
			}
		}
		return true
	})

	if !haveIP4 || !haveUDP {
		return nil, false
	}

	relay := relayPeerID
	if relay.IsEmpty() {
		if !haveEmbedded || embeddedPeer.IsEmpty() {
			return nil, false
		}
		relay = embeddedPeer
	}

	crafted, err := types.NewMultiaddr(
		"/ip4/" + ip4 + "/udp/" + udp + "/quic-v1/p2p/" + relay.String() + "/p2p-circuit",
	)
	if err != nil {
		return nil, false
	}

	return crafted, true
}

// IsRelayedAddr 返回 true 当且仅当 addrs 中存在至少一个包含
// P2pCircuit 组件的多地址。
func IsRelayedAddr(addrs []types.Multiaddr) bool {
	for _, addr := range addrs {
		relayed := false
		types.ForEach(addr, func(c types.Component) bool {
			if c.Protocol().Code == types.P_CIRCUIT {
				relayed = true
				return false
			}
			return true
		})
		if relayed {
			return true
		}
	}
	return false
}

// SupportsRelayStop 返回 true 当且仅当 protocols 中包含 circuit-relay/v0.2
// 停止端协议的确切标识符。
func SupportsRelayStop(protocols []string) bool {
	for _, p := range protocols {
		if p == ProtocolRelayStop {
			return true
		}
	}
	return false
}
