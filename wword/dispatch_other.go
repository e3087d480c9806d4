//go:build !amd64 && !arm64

package wword

func init() {
	setNative(scalarLanes, "scalar")
}
