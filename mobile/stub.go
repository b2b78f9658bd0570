//go:build !mobile

// stub.go - 桌面端构建时的占位文件
//
// 移动端入口在 mobile.go 中，仅在使用 -tags mobile 时编译；
// 这里保证 go build ./... 在桌面端也能通过。
package mobile

// Dummy 桌面端的空实现
func Dummy() {}
