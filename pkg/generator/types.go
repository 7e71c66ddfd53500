package generator

const (
	// DefaultWorkers は同時に描画するサイズ数の既定値です。1 の場合は完全に逐次処理になります。
	DefaultWorkers = 1
)
