package cmd

import (
	"log/slog"
	"os"

	"github.com/shouni/go-favicon-kit/internal/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

const appName = "favicon-kit"

// opts はフラグから受け取る実行時のパラメータなのだ。
var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
// 値は環境変数より優先されるけど、指定されなかったフラグは環境変数の値を残すのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- 出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.OutputDir, "output-dir", "o", config.DefaultOutputDir, "ICO と PNG を書き出す先（ローカル、gs://、s3://）なのだ。")

	// --- 描画設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.Renderer, "renderer", "r", config.DefaultRenderer, "使用するレンダラー（vector または gg）なのだ。")
	rootCmd.PersistentFlags().BoolVar(&opts.Antialias, "antialias", config.DefaultAntialias, "vector レンダラーで輪郭をアンチエイリアスするのだ。")
	rootCmd.PersistentFlags().IntVarP(&opts.Workers, "workers", "w", config.DefaultWorkers, "同時に描画するサイズ数なのだ（1 で逐次処理）。")
}

// preRunAppE は、--verbose が指定されたらデバッグログまで出すようにするのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if clibase.Flags.Verbose {
		level = slog.LevelDebug
	}
	slog.SetLogLoggerLevel(level)
	return nil
}

// loadConfig は環境変数から設定を読み込み、明示されたフラグだけを上書きするのだ。
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.LoadConfig()
	flags := cmd.Flags()

	if flags.Changed("output-dir") {
		cfg.OutputDir = opts.OutputDir
	}
	if flags.Changed("renderer") {
		cfg.Renderer = opts.Renderer
	}
	if flags.Changed("antialias") {
		cfg.Antialias = opts.Antialias
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.Workers
	}
	return cfg
}

// newRootCmd は clibase のルートコマンドを土台に、引数なしの実行を generate にするのだ。
func newRootCmd() *cobra.Command {
	rootCmd := clibase.NewRootCmd(appName, addAppFlags, preRunAppE)
	rootCmd.Short = "茶葉のファビコン（ICO と PNG）を生成するのだ。"
	rootCmd.Long = `ティーフォレストの背景にティーゴールドの茶葉を描き、16〜256px のマルチサイズ ICO と各サイズの PNG を書き出すのだ。`
	rootCmd.Args = cobra.NoArgs
	rootCmd.Run = nil
	rootCmd.RunE = generateCommand
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(newGenerateCmd(), newVerifyCmd())
	return rootCmd
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
