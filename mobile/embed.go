//go:build mobile

// embed.go - 移动端配置嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// go:embed 不能引用包目录之外的文件，构建前需先复制配置：
//
//	mkdir -p mobile/data && cp data/game.yaml data/spritesheets.yaml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/game.yaml data/spritesheets.yaml
var dataFS embed.FS
