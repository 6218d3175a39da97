// Package relay 提供客户端中继管理器的实现
//
// 本文件定义中继管理器的内置默认值。这些值经过调优，与上游
// autonomi 实现保持一致，用户可以通过 Config 覆盖它们。
package relay

import "time"

// ════════════════════════════════════════════════════════════════════════════
// 容量默认值
// ════════════════════════════════════════════════════════════════════════════

const (
	// DefaultMaxActiveRelays 同时保持的最大活跃中继连接数
	DefaultMaxActiveRelays = 4

	// DefaultMaxCandidates 候选队列的最大容量
	DefaultMaxCandidates = 1000
)

// ════════════════════════════════════════════════════════════════════════════
// 预留健康跟踪默认值
// ════════════════════════════════════════════════════════════════════════════

const (
	// DefaultTrackWindow 同一远端节点在多中继竞态拨号中被去重合并的时间窗口
	DefaultTrackWindow = 20 * time.Second

	// DefaultFaultyMinSamplesTier1 进入第一档故障判定所需的最少样本数
	DefaultFaultyMinSamplesTier1 = 30

	// DefaultFaultyMinSamplesTier2 进入第二档（更严格）故障判定所需的最少样本数
	DefaultFaultyMinSamplesTier2 = 100

	// DefaultFaultySuccessFloorTier1 第一档（30 <= 样本 < 100）的最低成功率
	DefaultFaultySuccessFloorTier1 = 0.5

	// DefaultFaultySuccessFloorTier2 第二档（样本 >= 100）的最低成功率
	DefaultFaultySuccessFloorTier2 = 0.9
)

// ════════════════════════════════════════════════════════════════════════════
// 默认配置构造
// ════════════════════════════════════════════════════════════════════════════

// RelayDefaults 中继管理器内置默认值
type RelayDefaults struct {
	MaxActiveRelays         int
	MaxCandidates           int
	TrackWindow             time.Duration
	FaultyMinSamplesTier1   int
	FaultyMinSamplesTier2   int
	FaultySuccessFloorTier1 float64
	FaultySuccessFloorTier2 float64
}

// GetRelayDefaults 返回中继管理器的内置默认配置
func GetRelayDefaults() RelayDefaults {
	return RelayDefaults{
		MaxActiveRelays:         DefaultMaxActiveRelays,
		MaxCandidates:           DefaultMaxCandidates,
		TrackWindow:             DefaultTrackWindow,
		FaultyMinSamplesTier1:   DefaultFaultyMinSamplesTier1,
		FaultyMinSamplesTier2:   DefaultFaultyMinSamplesTier2,
		FaultySuccessFloorTier1: DefaultFaultySuccessFloorTier1,
		FaultySuccessFloorTier2: DefaultFaultySuccessFloorTier2,
	}
}
