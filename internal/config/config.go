package config

import (
	"log/slog"
	"strconv"

	"github.com/shouni/go-favicon-kit/pkg/domain"
	"github.com/shouni/go-favicon-kit/pkg/raster"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultOutputDir = "public" // Web サイトの公開ディレクトリに直接書き出すのだ
	DefaultRenderer  = raster.RendererVector
	DefaultAntialias = false
	DefaultWorkers   = 1
)

// Config はアイコン生成全体の設定を保持する構造体なのだ。
type Config struct {
	OutputDir string
	Renderer  string
	Antialias bool
	Workers   int

	Sizes   []int
	Palette domain.Palette
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
// 何も設定されていなければ、引数なしで実行したときと同じデフォルトになるのだ。
func LoadConfig() *Config {
	cfg := &Config{
		OutputDir: envutil.GetEnv("FAVICON_OUTPUT_DIR", DefaultOutputDir),
		Renderer:  envutil.GetEnv("FAVICON_RENDERER", DefaultRenderer),
		Antialias: parseBool("FAVICON_ANTIALIAS", DefaultAntialias),
		Workers:   parseInt("FAVICON_WORKERS", DefaultWorkers),
		Sizes:     append([]int(nil), domain.DefaultSizes...),
		Palette:   domain.TeaPalette,
	}
	return cfg
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	OutputDir string // --output-dir
	Renderer  string // --renderer
	Antialias bool   // --antialias
	Workers   int    // --workers
}

func parseBool(key string, fallback bool) bool {
	raw := envutil.GetEnv(key, strconv.FormatBool(fallback))
	v, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("環境変数を真偽値として解釈できないので、デフォルト値を使うのだ", "key", key, "value", raw)
		return fallback
	}
	return v
}

func parseInt(key string, fallback int) int {
	raw := envutil.GetEnv(key, strconv.Itoa(fallback))
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		slog.Warn("環境変数を正の整数として解釈できないので、デフォルト値を使うのだ", "key", key, "value", raw)
		return fallback
	}
	return v
}
