//go:build !android

package utils

// EnsureStorageDir gdata 在桌面平台会自行创建目录
func EnsureStorageDir() error {
	return nil
}
