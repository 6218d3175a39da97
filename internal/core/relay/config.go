package relay

import (
	"errors"
	"time"

	"go.uber.org/multierr"
)

// Config 中继管理器配置
type Config struct {
	// MaxActiveRelays 同时保持的最大活跃中继连接数
	MaxActiveRelays int

	// MaxCandidates 候选队列的最大容量，超出后丢弃新增候选
	MaxCandidates int

	// TrackWindow 预留健康跟踪器对同一远端节点去重的时间窗口
	TrackWindow time.Duration

	// FaultyMinSamplesTier1 第一档故障判定所需的最少样本数
	FaultyMinSamplesTier1 int

	// FaultyMinSamplesTier2 第二档故障判定所需的最少样本数
	FaultyMinSamplesTier2 int

	// FaultySuccessFloorTier1 第一档（>= Tier1 样本, < Tier2 样本）的最低成功率
	FaultySuccessFloorTier1 float64

	// FaultySuccessFloorTier2 第二档（>= Tier2 样本）的最低成功率
	FaultySuccessFloorTier2 float64

	// EnableMetrics 是否把中继管理器指标导出到该 Manager 私有的 Prometheus 注册表（见 Manager.Registry）
	EnableMetrics bool
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	d := GetRelayDefaults()
	return &Config{
		MaxActiveRelays:         d.MaxActiveRelays,
		MaxCandidates:           d.MaxCandidates,
		TrackWindow:             d.TrackWindow,
		FaultyMinSamplesTier1:   d.FaultyMinSamplesTier1,
		FaultyMinSamplesTier2:   d.FaultyMinSamplesTier2,
		FaultySuccessFloorTier1: d.FaultySuccessFloorTier1,
		FaultySuccessFloorTier2: d.FaultySuccessFloorTier2,
		EnableMetrics:           false,
	}
}

// Validate 验证配置，返回所有校验失败项的合并错误
func (c *Config) Validate() error {
	var err error

	if c.MaxActiveRelays < 1 {
		err = multierr.Append(err, errors.New("MaxActiveRelays must be >= 1"))
	}
	if c.MaxCandidates < 1 {
		err = multierr.Append(err, errors.New("MaxCandidates must be >= 1"))
	}
	if c.TrackWindow <= 0 {
		err = multierr.Append(err, errors.New("TrackWindow must be > 0"))
	}
	if c.FaultyMinSamplesTier1 < 1 {
		err = multierr.Append(err, errors.New("FaultyMinSamplesTier1 must be >= 1"))
	}
	if c.FaultyMinSamplesTier2 < c.FaultyMinSamplesTier1 {
		err = multierr.Append(err, errors.New("FaultyMinSamplesTier2 must be >= FaultyMinSamplesTier1"))
	}
	if c.FaultySuccessFloorTier1 < 0 || c.FaultySuccessFloorTier1 > 1 {
		err = multierr.Append(err, errors.New("FaultySuccessFloorTier1 must be within [0,1]"))
	}
	if c.FaultySuccessFloorTier2 < 0 || c.FaultySuccessFloorTier2 > 1 {
		err = multierr.Append(err, errors.New("FaultySuccessFloorTier2 must be within [0,1]"))
	}

	return err
}
