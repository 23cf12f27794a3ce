//go:build !mobile

// Package mobile 在桌面构建中只保留占位导出，
// 绑定入口见 mobile.go（需 -tags mobile）。
package mobile

// Dummy 占位导出，保证 go build ./... 在桌面端也能通过
func Dummy() {}
