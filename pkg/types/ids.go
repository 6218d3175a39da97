// Package types 定义 DeP2P 的基础类型
//
// 本文件定义所有 ID 类型，是整个系统的核心标识类型。
// 这些类型是纯值类型，不依赖任何其他 dep2p 内部包。
package types

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
)

// ============================================================================
//                              PeerID / NodeID - 节点标识
// ============================================================================

// PeerID 节点唯一标识符
//
// PeerID 由公钥派生，确保全网唯一性和可验证性。
// 外部表示格式为 Base58 编码（用户可读、可分享）。
//
// 示例：
//
//	id, err := types.ParsePeerID("12D3KooWLYGJ...")
//	fmt.Println(id.ShortString()) // 前 8 个字符 + "..." + 后 3 个字符，如 "12D3KooW...xyz"
type PeerID string

// NodeID 是 PeerID 的别名，用于 DHT 和路由场景
//
// 在 Kademlia DHT 中，节点使用 256 位 ID 空间进行路由。
// NodeID 表示 DHT 路由表中的节点标识。
type NodeID = PeerID

// EmptyPeerID 空节点ID
const EmptyPeerID PeerID = ""

// String 返回 PeerID 的字符串表示
func (id PeerID) String() string {
	return string(id)
}

// ShortString 返回 PeerID 的短字符串表示
//
// 格式：前 8 字符 + "..." + 后 3 字符，用于日志中的简短标识。
// 符合 NodeID 规范 (L1_identity/nodeid.md)。
func (id PeerID) ShortString() string {
	s := string(id)
	if len(s) <= 14 {
		return s
	}
	return s[:8] + "..." + s[len(s)-3:]
}

// Bytes 返回 PeerID 的字节切片
func (id PeerID) Bytes() []byte {
	return []byte(id)
}

// IsEmpty 检查 PeerID 是否为空
func (id PeerID) IsEmpty() bool {
	return id == EmptyPeerID
}

// Validate 验证 PeerID 格式
//
// 验证流程：
//  1. 检查是否为空
//  2. Base58 解码验证
//  3. 长度验证（支持 DeP2P 格式和 Multihash 格式）
//
// 支持的格式：
//   - DeP2P 格式: Base58(SHA256(pubKey)) - 32 字节
//   - Multihash 格式: [类型码][长度][数据] - 用于 libp2p 兼容
func (id PeerID) Validate() error {
	if id.IsEmpty() {
		return ErrEmptyPeerID
	}
	
	// Base58 解码验证
	decoded, err := Base58Decode(string(id))
	if err != nil {
		return fmt.Errorf("invalid base58: %w", err)
	}
	
	// 检查解码后的长度
	// DeP2P 使用 Base58(SHA256(pubKey))，SHA256 输出是 32 字节
	if len(decoded) == 32 {
		// DeP2P 原生格式：32 字节 SHA256 哈希
		return nil
	}
	
	// 尝试 Multihash 格式验证（用于 libp2p 兼容）
	// Multihash 格式: [类型码(1字节)][长度(1字节)][数据]
	if len(decoded) >= 2 {
		hashLen := int(decoded[1])
		if len(decoded) == 2+hashLen {
			// 有效的 Multihash 格式
			return nil
		}
	}
	
	// 既不是 DeP2P 格式，也不是有效的 Multihash 格式
	return fmt.Errorf("invalid peer id: length %d (expected 32 for SHA256 or valid multihash)", len(decoded))
}

// Equal 比较两个 PeerID 是否相等
func (id PeerID) Equal(other PeerID) bool {
	return id == other
}

// Hash 返回 PeerID 的 SHA256 哈希值（32字节）
//
// 用于 DHT 路由中的 XOR 距离计算。
func (id PeerID) Hash() [32]byte {
	return sha256.Sum256([]byte(id))
}

// XOR 计算两个 PeerID 的 XOR 距离
//
// 返回 32 字节的距离值，用于 Kademlia DHT 路由。
// 距离越小，两个节点在 DHT 空间中越接近。
func (id PeerID) XOR(other PeerID) [32]byte {
	h1 := id.Hash()
	h2 := other.Hash()
	var result [32]byte
	for i := 0; i < 32; i++ {
		result[i] = h1[i] ^ h2[i]
	}
	return result
}

// DistanceCmp 比较 id 到 a 和 b 的距离
//
// 返回值：
//   - -1: id 距离 a 更近
//   - 0: 距离相等
//   - 1: id 距离 b 更近
//
// 用于 DHT 路由表排序。
func (id PeerID) DistanceCmp(a, b PeerID) int {
	da := id.XOR(a)
	db := id.XOR(b)
	for i := 0; i < 32; i++ {
		if da[i] < db[i] {
			return -1
		}
		if da[i] > db[i] {
			return 1
		}
	}
	return 0
}

// CommonPrefixLen 计算两个 PeerID 的公共前缀位数
//
// 用于 Kademlia DHT 的 k-bucket 索引。
func (id PeerID) CommonPrefixLen(other PeerID) int {
	xorDist := id.XOR(other)
	for i := 0; i < 32; i++ {
		for j := 7; j >= 0; j-- {
			if (xorDist[i]>>j)&1 != 0 {
				return i*8 + (7 - j)
			}
		}
	}
	return 256 // 完全相同
}

// ErrPeerIDNoEmbeddedKey PeerID 不包含内嵌公钥
var ErrPeerIDNoEmbeddedKey = errors.New("peer ID does not contain embedded public key")

// ExtractPublicKey 从 PeerID 中提取内嵌的公钥
//
// 仅适用于 identity multihash 格式的 PeerID（内嵌完整公钥）。
// 对于 DeP2P 原生格式和 SHA256 派生的 PeerID，返回 ErrPeerIDNoEmbeddedKey。
//
// 支持的格式：
//   - DeP2P 原生格式: Base58(SHA256(pubKey)) - 32 字节，不含公钥
//   - Multihash identity (0x00): 内嵌完整公钥
//   - Multihash SHA256 (0x12): 仅包含哈希，不含公钥
func (id PeerID) ExtractPublicKey() ([]byte, error) {
	if id.IsEmpty() {
		return nil, ErrEmptyPeerID
	}
	
	// Base58 解码
	decoded, err := Base58Decode(string(id))
	if err != nil {
		return nil, fmt.Errorf("invalid base58: %w", err)
	}
	
	// DeP2P 原生格式：32 字节 SHA256 哈希
	// 不包含公钥，无法提取
	if len(decoded) == 32 {
		return nil, ErrPeerIDNoEmbeddedKey
	}
	
	// Multihash 格式需要至少 2 字节（类型码 + 长度）
	if len(decoded) < 2 {
		return nil, ErrInvalidPeerID
	}
	
	// 检查 multihash 类型码
	hashType := decoded[0]
	hashLen := int(decoded[1])
	
	// 仅 identity hash (0x00) 包含内嵌公钥
	if hashType == 0x00 {
		if len(decoded) < 2+hashLen {
			return nil, fmt.Errorf("invalid multihash: length mismatch")
		}
		pubKey := make([]byte, hashLen)
		copy(pubKey, decoded[2:2+hashLen])
		return pubKey, nil
	}
	
	// 其他类型（如 SHA256 0x12）不包含公钥
	return nil, ErrPeerIDNoEmbeddedKey
}

// MatchesPublicKey 验证 PeerID 是否与给定公钥匹配
//
// 对于 identity multihash，直接比较内嵌公钥。
// 对于 SHA256 multihash，重新计算 PeerID 并比较。
func (id PeerID) MatchesPublicKey(pubKey []byte) bool {
	if id.IsEmpty() || len(pubKey) == 0 {
		return false
	}
	
	// 尝试从 PeerID 提取公钥
	extractedPubKey, err := id.ExtractPublicKey()
	if err == nil {
		// identity multihash: 直接比较公钥
		if len(extractedPubKey) != len(pubKey) {
			return false
		}
		for i := 0; i < len(pubKey); i++ {
			if extractedPubKey[i] != pubKey[i] {
				return false
			}
		}
		return true
	}
	
	// SHA256 multihash: 重新计算 PeerID
	derivedID, err := PeerIDFromPublicKey(pubKey)
	if err != nil {
		return false
	}
	
	return id == derivedID
}

// ParsePeerID 从字符串解析 PeerID
//
// 支持 Base58 编码格式（用于用户输入和配置）。
func ParsePeerID(s string) (PeerID, error) {
	if s == "" {
		return EmptyPeerID, ErrEmptyPeerID
	}
	id := PeerID(s)
	if err := id.Validate(); err != nil {
		return EmptyPeerID, err
	}
	return id, nil
}

// PeerIDFromBytes 从字节切片创建 PeerID
func PeerIDFromBytes(b []byte) (PeerID, error) {
	if len(b) == 0 {
		return EmptyPeerID, ErrEmptyPeerID
	}
	return PeerID(b), nil
}

// PeerIDFromPublicKey 从公钥派生 PeerID
//
// DeP2P 派生算法：Base58(SHA256(pubKey))
// 生成 32 字节 SHA256 哈希的 Base58 编码。
// 注意：这不是 Multihash 格式，不包含内嵌公钥。
func PeerIDFromPublicKey(pubKey []byte) (PeerID, error) {
	if len(pubKey) == 0 {
		return EmptyPeerID, errors.New("empty public key")
	}
	// SHA256 哈希
	hash := sha256.Sum256(pubKey)
	// Base58 编码
	encoded := Base58Encode(hash[:])
	return PeerID(encoded), nil
}

// 注：ProtocolID 类型定义在 protocol.go 中

// ============================================================================
//                              StreamID - 流标识
// ============================================================================

// StreamID 流唯一标识符
type StreamID uint64

// String 返回 StreamID 的字符串表示
func (id StreamID) String() string {
	return hex.EncodeToString([]byte{
		byte(id >> 56), byte(id >> 48), byte(id >> 40), byte(id >> 32),
		byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id),
	})
}

// ============================================================================
//                              辅助类型
// ============================================================================

// PeerIDSlice 用于排序的 PeerID 切片
type PeerIDSlice []PeerID

func (s PeerIDSlice) Len() int           { return len(s) }
func (s PeerIDSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s PeerIDSlice) Less(i, j int) bool { return string(s[i]) < string(s[j]) }
