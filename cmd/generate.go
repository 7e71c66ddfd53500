package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-favicon-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// newGenerateCmd は、茶葉アイコンの描画と ICO / PNG の保存を実行するのだ。
func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "ファビコンを描画して保存するのだ。",
		Long: `16, 32, 64, 128, 256px のキャンバスに茶葉を描き、
favicon.ico と favicon-<size>.png を出力ディレクトリに書き出すのだ。何度実行しても同じファイルになるのだよ。`,
		Args: cobra.NoArgs,
		RunE: generateCommand,
	}
}

func generateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig(cmd)

	slog.Info("ファビコン生成パイプラインを起動するのだ！",
		"output_dir", cfg.OutputDir,
		"renderer", cfg.Renderer,
		"antialias", cfg.Antialias,
		"workers", cfg.Workers)

	if _, err := pipeline.Execute(ctx, cfg); err != nil {
		return fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}
	return nil
}
