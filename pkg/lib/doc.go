// Package lib 包含基础设施工具库
//
// 本目录包含与架构组件无关的通用工具库：
//
//   - multiaddr: 多地址格式解析
//
// # 与 pkg/types 的关系
//
// pkg/types 定义公共数据结构，lib 提供这些结构依赖的底层编解码设施。
//
// # 使用示例
//
//	import (
//	    "github.com/dep2p/relay-manager/pkg/lib/multiaddr"
//	)
package lib
