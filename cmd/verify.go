package cmd

import (
	"log/slog"

	"github.com/shouni/go-favicon-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// newVerifyCmd は、書き出し済みの favicon.ico と各 PNG が食い違っていないかを確認するのだ。
func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "出力済みの ICO と PNG を検証するのだ。",
		Long: `favicon.ico に全サイズがちょうど格納されていて、
各エントリが同じサイズの favicon-<size>.png とピクセル単位で一致するかを確認するのだ。`,
		Args: cobra.NoArgs,
		RunE: verifyCommand,
	}
}

func verifyCommand(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	slog.Info("成果物の検証を開始するのだ", "output_dir", cfg.OutputDir)
	return pipeline.ExecuteVerify(cmd.Context(), cfg)
}
