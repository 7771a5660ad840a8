//go:build !mobile

package utils

import "os"

// IsMobile 报告是否以移动端方式运行（触摸操作，无键盘提示）
// 桌面端可设置 CONFETTI_MOBILE_EMULATE=1 模拟
func IsMobile() bool {
	return os.Getenv("CONFETTI_MOBILE_EMULATE") == "1"
}
