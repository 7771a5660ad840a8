//go:build !mobile

// 桌面构建只编译此文件；查看器入口见 mobile.go（-tags mobile）
package mobile

// Dummy 保证 go build ./... 在桌面端也能解析该包
func Dummy() {}
