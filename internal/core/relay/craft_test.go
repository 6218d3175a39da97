package relay

import (
	"testing"

	"github.com/dep2p/relay-manager/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAddr(t *testing.T, s string) types.Multiaddr {
	t.Helper()
	a, err := types.NewMultiaddr(s)
	require.NoError(t, err)
	return a
}

func TestCraftRelayAddress(t *testing.T) {
	const relayPeer = types.PeerID("12D3KooWRelay1111111111111111111111111111")

	t.Run("显式中继节点ID", func(t *testing.T) {
		in := mustAddr(t, "/ip4/10.0.0.1/udp/4001/quic-v1")
		out, ok := CraftRelayAddress(in, relayPeer)
		require.True(t, ok)
		assert.Equal(t, "/ip4/10.0.0.1/udp/4001/quic-v1/p2p/"+relayPeer.String()+"/p2p-circuit", out.String())
	})

	t.Run("从内嵌p2p组件提取中继节点ID", func(t *testing.T) {
		in := mustAddr(t, "/ip4/10.0.0.1/udp/4001/quic-v1/p2p/"+relayPeer.String())
		out, ok := CraftRelayAddress(in, types.EmptyPeerID)
		require.True(t, ok)
		assert.Equal(t, "/ip4/10.0.0.1/udp/4001/quic-v1/p2p/"+relayPeer.String()+"/p2p-circuit", out.String())
	})

	t.Run("显式节点ID优先于内嵌", func(t *testing.T) {
		embedded := types.PeerID("12D3KooWEmbedded22222222222222222222222222")
		in := mustAddr(t, "/ip4/10.0.0.1/udp/4001/quic-v1/p2p/"+embedded.String())
		out, ok := CraftRelayAddress(in, relayPeer)
		require.True(t, ok)
		assert.Equal(t, "/ip4/10.0.0.1/udp/4001/quic-v1/p2p/"+relayPeer.String()+"/p2p-circuit", out.String())
	})

	t.Run("缺少IP4组件", func(t *testing.T) {
		in := mustAddr(t, "/udp/4001/quic-v1")
		_, ok := CraftRelayAddress(in, relayPeer)
		assert.False(t, ok)
	})

	t.Run("缺少UDP组件", func(t *testing.T) {
		in := mustAddr(t, "/ip4/10.0.0.1/quic-v1")
		_, ok := CraftRelayAddress(in, relayPeer)
		assert.False(t, ok)
	})

	t.Run("既无显式也无内嵌中继节点ID", func(t *testing.T) {
		in := mustAddr(t, "/ip4/10.0.0.1/udp/4001/quic-v1")
		_, ok := CraftRelayAddress(in, types.EmptyPeerID)
		assert.False(t, ok)
	})

	t.Run("空地址", func(t *testing.T) {
		_, ok := CraftRelayAddress(nil, relayPeer)
		assert.False(t, ok)
	})

	t.Run("拼装结果再次拼装保持不变", func(t *testing.T) {
		in := mustAddr(t, "/ip4/10.0.0.1/udp/4001/quic-v1")
		crafted, ok := CraftRelayAddress(in, relayPeer)
		require.True(t, ok)

		again, ok := CraftRelayAddress(crafted, relayPeer)
		require.True(t, ok)
		assert.Equal(t, crafted.String(), again.String())
	})
}

func TestIsRelayedAddr(t *testing.T) {
	t.Run("包含p2p-circuit组件", func(t *testing.T) {
		addr := mustAddr(t, "/ip4/10.0.0.1/udp/4001/quic-v1/p2p/12D3KooWRelay/p2p-circuit")
		assert.True(t, IsRelayedAddr([]types.Multiaddr{addr}))
	})

	t.Run("不包含p2p-circuit组件", func(t *testing.T) {
		addr := mustAddr(t, "/ip4/10.0.0.1/udp/4001/quic-v1")
		assert.False(t, IsRelayedAddr([]types.Multiaddr{addr}))
	})

	t.Run("多个地址中至少一个是中继地址", func(t *testing.T) {
		plain := mustAddr(t, "/ip4/10.0.0.1/udp/4001/quic-v1")
		relayed := mustAddr(t, "/ip4/10.0.0.2/udp/4002/quic-v1/p2p/12D3KooWRelay/p2p-circuit")
		assert.True(t, IsRelayedAddr([]types.Multiaddr{plain, relayed}))
	})

	t.Run("空切片", func(t *testing.T) {
		assert.False(t, IsRelayedAddr(nil))
	})
}

func TestSupportsRelayStop(t *testing.T) {
	t.Run("包含确切标识符", func(t *testing.T) {
		assert.True(t, SupportsRelayStop([]string{"/some/other/1.0.0", ProtocolRelayStop}))
	})

	t.Run("不包含", func(t *testing.T) {
		assert.False(t, SupportsRelayStop([]string{"/some/other/1.0.0"}))
	})

	t.Run("相似但不完全匹配的协议串不算支持", func(t *testing.T) {
		assert.False(t, SupportsRelayStop([]string{"/libp2p/circuit/relay/0.1.0/stop"}))
	})

	t.Run("空列表", func(t *testing.T) {
		assert.False(t, SupportsRelayStop(nil))
	})
}
