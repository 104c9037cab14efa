// Package config はapbacardsコマンドの設定管理を行います
package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/shiroemons/go-apbacard/pkg/carddeck"
)

const Version = "0.1.0"

// Config はアプリケーションの設定を保持します
type Config struct {
	PlayersPath string
	TablesDir   string
	OutputDir   string
	Stride      int
	CP437       bool
	Parallel    bool
	Workers     int
	DebugMode   bool
	DryRun      bool
	ShowVersion bool
}

// ParseFlags はコマンドライン引数を解析して設定を返します
func ParseFlags() *Config {
	config := &Config{}

	// カスタムUsage関数を設定（ダブルハイフン表示）
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "  --players string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tpath to PLAYERS.DAT file (e.g. 1921S.WDD/PLAYERS.DAT)")
		fmt.Fprintln(flag.CommandLine.Output(), "  -p string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tpath to PLAYERS.DAT file (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --tables string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tdirectory containing .TBL/.MSG outcome table pairs")
		fmt.Fprintln(flag.CommandLine.Output(), "  -t string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tdirectory containing .TBL/.MSG outcome table pairs (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  -o string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \toutput directory for the generated JSON file (default \".\")")
		fmt.Fprintln(flag.CommandLine.Output(), "  --stride int")
		fmt.Fprintf(flag.CommandLine.Output(), "    \tplayer record stride in bytes (default %d)\n", carddeck.RecordStride)
		fmt.Fprintln(flag.CommandLine.Output(), "  --cp437")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tdecode outcome messages as IBM code page 437")
		fmt.Fprintln(flag.CommandLine.Output(), "  --parallel")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tdecode player records on a worker pool")
		fmt.Fprintln(flag.CommandLine.Output(), "  -w int")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tnumber of worker goroutines for parallel decoding (default 4)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --debug")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tenable debug output")
		fmt.Fprintln(flag.CommandLine.Output(), "  -d\tenable debug output (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --dry-run")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tperform a dry run without writing the output file")
		fmt.Fprintln(flag.CommandLine.Output(), "  -n\tperform a dry run without writing the output file (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --version")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tshow version information")
		fmt.Fprintln(flag.CommandLine.Output(), "  -v\tshow version information (shorthand)")
	}

	// 選手ファイルフラグ
	flag.StringVar(&config.PlayersPath, "players", "", "path to PLAYERS.DAT file (e.g. 1921S.WDD/PLAYERS.DAT)")
	flag.StringVar(&config.PlayersPath, "p", "", "path to PLAYERS.DAT file (shorthand)")

	// テーブルディレクトリフラグ
	flag.StringVar(&config.TablesDir, "tables", "", "directory containing .TBL/.MSG outcome table pairs")
	flag.StringVar(&config.TablesDir, "t", "", "directory containing .TBL/.MSG outcome table pairs (shorthand)")

	// 出力ディレクトリ
	flag.StringVar(&config.OutputDir, "o", ".", "output directory for the generated JSON file")

	// レコードストライド
	flag.IntVar(&config.Stride, "stride", carddeck.RecordStride, "player record stride in bytes")

	// CP437モード
	flag.BoolVar(&config.CP437, "cp437", false, "decode outcome messages as IBM code page 437")

	// 並列デコード
	flag.BoolVar(&config.Parallel, "parallel", false, "decode player records on a worker pool")
	flag.IntVar(&config.Workers, "w", 4, "number of worker goroutines for parallel decoding")

	// デバッグモード
	flag.BoolVar(&config.DebugMode, "debug", false, "enable debug output")
	flag.BoolVar(&config.DebugMode, "d", false, "enable debug output (shorthand)")

	// ドライランモード
	flag.BoolVar(&config.DryRun, "dry-run", false, "perform a dry run without writing the output file")
	flag.BoolVar(&config.DryRun, "n", false, "perform a dry run without writing the output file (shorthand)")

	// バージョン表示
	flag.BoolVar(&config.ShowVersion, "version", false, "show version information")
	flag.BoolVar(&config.ShowVersion, "v", false, "show version information (shorthand)")

	flag.Parse()

	return config
}

// HandleVersion はバージョン表示を処理します
func HandleVersion(showVersion bool) {
	if showVersion {
		fmt.Printf("apbacards version %s\n", Version)
		os.Exit(0)
	}
}

// DebugLogger はデバッグ出力を管理します
type DebugLogger struct {
	enabled bool
}

// NewDebugLogger は新しいDebugLoggerを作成します
func NewDebugLogger(enabled bool) *DebugLogger {
	return &DebugLogger{enabled: enabled}
}

// Printf はデバッグモードが有効な場合のみメッセージを表示します
func (d *DebugLogger) Printf(format string, a ...any) {
	if d.enabled {
		fmt.Printf(format, a...)
	}
}
